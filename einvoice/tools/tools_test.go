package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/einvoicedev/einvoice-mcp/einvoice/api"
	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
)

// fakeConversion is a ConversionService that returns fixed values.
type fakeConversion struct {
	xml string
	raw json.RawMessage
	bin []byte
	err error
}

func (f *fakeConversion) JSONToUBL(ctx context.Context, inv *model.Invoice) (string, error) {
	return f.xml, f.err
}
func (f *fakeConversion) JSONToCII(ctx context.Context, inv *model.Invoice) (string, error) {
	return f.xml, f.err
}
func (f *fakeConversion) UBLToJSON(ctx context.Context, xml string) (json.RawMessage, error) {
	return f.raw, f.err
}
func (f *fakeConversion) CIIToJSON(ctx context.Context, xml string) (json.RawMessage, error) {
	return f.raw, f.err
}
func (f *fakeConversion) JSONToXLSX(ctx context.Context, invoices []model.Invoice) ([]byte, error) {
	return f.bin, f.err
}
func (f *fakeConversion) JSONToZugferd(ctx context.Context, req *model.ZugferdRequest) ([]byte, error) {
	return f.bin, f.err
}
func (f *fakeConversion) ZugferdToJSON(ctx context.Context, pdf []byte) (json.RawMessage, error) {
	return f.raw, f.err
}

func callReq(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func minimalInvoiceArgs() map[string]interface{} {
	address := func() map[string]interface{} {
		return map[string]interface{}{
			"line1":        "Hauptstr. 1",
			"city":         "Berlin",
			"postal_code":  "10115",
			"country_code": "DE",
		}
	}
	return map[string]interface{}{
		"invoice_number": "RE-1",
		"invoice_type":   "outgoing",
		"invoice_date":   "2024-06-15",
		"currency_code":  "EUR",
		"description":    "Services",
		"seller":         map[string]interface{}{"name": "Acme", "address": address()},
		"buyer":          map[string]interface{}{"name": "Widget", "address": address()},
		"payment_information": map[string]interface{}{
			"payment_type": "credit_transfer",
		},
		"totals": map[string]interface{}{
			"total_amount_without_vat": 100.0,
			"total_amount_with_vat":    119.0,
			"vat_amount":               19.0,
			"amount_due":               119.0,
			"paid_amount":              0.0,
		},
		"items": []interface{}{
			map[string]interface{}{
				"quantity":              1.0,
				"unit_code":             "H87",
				"total_amount_with_vat": 119.0,
				"price_details": map[string]interface{}{
					"unit_price_without_vat": 100.0,
					"unit_price_with_vat":    119.0,
					"vat_rate":               19.0,
					"vat_category":           "S",
				},
			},
		},
	}
}

func TestJSONToXMLHandler_Inline(t *testing.T) {
	d := &Deps{Conversion: &fakeConversion{xml: "<Invoice/>"}}
	handler := jsonToXMLHandler(d.Conversion.JSONToUBL)

	res, err := handler(context.Background(), callReq(map[string]interface{}{
		"invoice": minimalInvoiceArgs(),
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "<Invoice/>", textOf(t, res))
}

func TestJSONToXMLHandler_OutputPath(t *testing.T) {
	d := &Deps{Conversion: &fakeConversion{xml: "<Invoice/>"}}
	handler := jsonToXMLHandler(d.Conversion.JSONToUBL)

	out := filepath.Join(t.TempDir(), "invoice.xml")
	res, err := handler(context.Background(), callReq(map[string]interface{}{
		"invoice":     minimalInvoiceArgs(),
		"output_path": out,
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	text := textOf(t, res)
	assert.Contains(t, text, out)
	assert.NotContains(t, text, "<Invoice/>", "no inline content when saving to disk")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<Invoice/>", string(data))
}

func TestJSONToXMLHandler_InvalidInvoice(t *testing.T) {
	d := &Deps{Conversion: &fakeConversion{xml: "<Invoice/>"}}
	handler := jsonToXMLHandler(d.Conversion.JSONToUBL)

	args := minimalInvoiceArgs()
	delete(args, "invoice_number")

	res, err := handler(context.Background(), callReq(map[string]interface{}{"invoice": args}))
	require.NoError(t, err, "domain failures never surface as Go errors")
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "invoice_number")
}

func TestJSONToXMLHandler_RemoteFailure(t *testing.T) {
	d := &Deps{Conversion: &fakeConversion{err: &api.RequestError{StatusCode: 402}}}
	handler := jsonToXMLHandler(d.Conversion.JSONToUBL)

	res, err := handler(context.Background(), callReq(map[string]interface{}{
		"invoice": minimalInvoiceArgs(),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "Insufficient credits")
}

func TestXMLToJSONHandler(t *testing.T) {
	d := &Deps{Conversion: &fakeConversion{raw: json.RawMessage(`{"invoice_number":"RE-1"}`)}}
	handler := xmlToJSONHandler(d.Conversion.UBLToJSON)

	res, err := handler(context.Background(), callReq(map[string]interface{}{
		"xml_content": "<Invoice/>",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, textOf(t, res), "\"invoice_number\": \"RE-1\"")
}

func TestXMLToJSONHandler_MissingInput(t *testing.T) {
	d := &Deps{Conversion: &fakeConversion{}}
	handler := xmlToJSONHandler(d.Conversion.UBLToJSON)

	res, err := handler(context.Background(), callReq(map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, textOf(t, res), "either xml_content or xml_path is required")
}

func TestXMLToJSONHandler_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.xml")
	require.NoError(t, os.WriteFile(path, []byte("<Invoice/>"), 0o644))

	d := &Deps{Conversion: &fakeConversion{raw: json.RawMessage(`{}`)}}
	handler := xmlToJSONHandler(d.Conversion.UBLToJSON)

	res, err := handler(context.Background(), callReq(map[string]interface{}{
		"xml_path": path,
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
}

func TestXMLInput_BothGiven(t *testing.T) {
	_, err := xmlInput(map[string]interface{}{
		"xml_content": "<a/>",
		"xml_path":    "/tmp/x.xml",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}

func TestContentTypeByExt(t *testing.T) {
	assert.Equal(t, "application/pdf", contentTypeByExt("scan.PDF"))
	assert.Equal(t, "image/png", contentTypeByExt("photo.png"))
	assert.Equal(t, "image/jpeg", contentTypeByExt("photo.jpeg"))
	assert.Equal(t, "application/octet-stream", contentTypeByExt("blob"))
}
