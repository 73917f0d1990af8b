package api

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
)

type ConversionService interface {
	JSONToUBL(ctx context.Context, invoice *model.Invoice) (string, error)
	JSONToCII(ctx context.Context, invoice *model.Invoice) (string, error)
	UBLToJSON(ctx context.Context, xml string) (json.RawMessage, error)
	CIIToJSON(ctx context.Context, xml string) (json.RawMessage, error)
	JSONToXLSX(ctx context.Context, invoices []model.Invoice) ([]byte, error)
	JSONToZugferd(ctx context.Context, req *model.ZugferdRequest) ([]byte, error)
	ZugferdToJSON(ctx context.Context, pdf []byte) (json.RawMessage, error)
}

type conversion struct {
	client Client
}

func NewConversionService(client Client) ConversionService {
	return &conversion{client: client}
}

// JSONToUBL renders an invoice document as UBL XML
func (c *conversion) JSONToUBL(ctx context.Context, invoice *model.Invoice) (string, error) {
	log.Debug("convert JSON to UBL")
	return c.client.PostJSONText(ctx, "/api/v1/json/ubl", invoice)
}

// JSONToCII renders an invoice document as CII XML
func (c *conversion) JSONToCII(ctx context.Context, invoice *model.Invoice) (string, error) {
	log.Debug("convert JSON to CII")
	return c.client.PostJSONText(ctx, "/api/v1/json/cii", invoice)
}

func (c *conversion) UBLToJSON(ctx context.Context, xml string) (json.RawMessage, error) {
	log.Debug("convert UBL to JSON")

	var res json.RawMessage
	if err := c.client.PostXML(ctx, "/api/v1/ubl/json", xml, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *conversion) CIIToJSON(ctx context.Context, xml string) (json.RawMessage, error) {
	log.Debug("convert CII to JSON")

	var res json.RawMessage
	if err := c.client.PostXML(ctx, "/api/v1/cii/json", xml, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// JSONToXLSX renders one or more invoices as a spreadsheet. The response is
// the raw .xlsx file.
func (c *conversion) JSONToXLSX(ctx context.Context, invoices []model.Invoice) ([]byte, error) {
	log.Debugf("convert %d invoice(s) to XLSX", len(invoices))
	return c.client.PostJSONBinary(ctx, "/api/v1/json/xlsx", model.XlsxRequest{Invoices: invoices})
}

// JSONToZugferd embeds invoice data into the given PDF, producing a hybrid
// ZUGFeRD / Factur-X document. The response is the raw PDF.
func (c *conversion) JSONToZugferd(ctx context.Context, req *model.ZugferdRequest) ([]byte, error) {
	log.Debug("convert JSON to ZUGFeRD PDF")
	return c.client.PostJSONBinary(ctx, "/api/v1/json/zugferd", req)
}

// ZugferdToJSON extracts the embedded invoice data from a ZUGFeRD PDF
func (c *conversion) ZugferdToJSON(ctx context.Context, pdf []byte) (json.RawMessage, error) {
	log.Debug("convert ZUGFeRD PDF to JSON")

	var res json.RawMessage
	if err := c.client.PostBinary(ctx, "/api/v1/zugferd/json", pdf, "application/pdf", &res); err != nil {
		return nil, err
	}
	return res, nil
}
