package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
)

// newFakeAPI records the last request and serves canned JSON per endpoint.
func newFakeAPI(t *testing.T, responses map[string]string) (*httptest.Server, *http.Request) {
	t.Helper()
	var last http.Request

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last = *r
		body, ok := responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &last
}

func TestValidationService_Endpoints(t *testing.T) {
	srv, last := newFakeAPI(t, map[string]string{
		"/api/v1/ubl/validate": `{"valid":true}`,
		"/api/v1/cii/validate": `{"valid":false,"errors":[{"message":"bad"}]}`,
		"/api/v1/xml/validate": `{"valid":true}`,
	})
	svc := NewValidationService(New(srv.URL, "k", false))
	ctx := context.Background()

	res, err := svc.ValidateUBL(ctx, "<Invoice/>")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "/api/v1/ubl/validate", last.URL.Path)

	res, err = svc.ValidateCII(ctx, "<CrossIndustryInvoice/>")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "bad", res.Errors[0].Message)

	_, err = svc.ValidateXML(ctx, "<Invoice/>")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/xml/validate", last.URL.Path)
}

func TestExtractionService_QRFlag(t *testing.T) {
	srv, last := newFakeAPI(t, map[string]string{
		"/api/v1/file/qr": `{"found":true,"payload":"BCD..."}`,
	})
	svc := NewExtractionService(New(srv.URL, "k", false))
	ctx := context.Background()

	res, err := svc.ExtractQR(ctx, []byte{0xff, 0xd8}, "image/jpeg", false)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Empty(t, last.URL.RawQuery)

	_, err = svc.ExtractQR(ctx, []byte{0xff, 0xd8}, "image/jpeg", true)
	require.NoError(t, err)
	assert.Equal(t, "extract_payment_data=true", last.URL.RawQuery)
}

func TestUserService_Info(t *testing.T) {
	srv, _ := newFakeAPI(t, map[string]string{
		"/api/v1/user": `{"email":"dev@example.com","role":"member","credits":{"available":90,"used":10,"monthly_quota":100,"extra":0}}`,
	})
	svc := NewUserService(New(srv.URL, "k", false))

	info, err := svc.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", info.Email)
	assert.Equal(t, "member", info.Role)
	assert.Equal(t, 90, info.Credits.Available)
	assert.Equal(t, 100, info.Credits.MonthlyQuota)
}

func TestBatchService_Convert(t *testing.T) {
	srv, _ := newFakeAPI(t, map[string]string{
		"/api/v1/batch/convert": `{
			"results":[
				{"id":"a","success":true,"output":"<Invoice/>"},
				{"id":"b","success":false,"error":"schema mismatch"}
			],
			"summary":{"total":2,"successful":1,"failed":1}
		}`,
	})
	svc := NewBatchService(New(srv.URL, "k", false))

	res, err := svc.Convert(context.Background(), []model.BatchOperation{
		{ID: "a", Operation: model.BatchUBLToJSON, Input: json.RawMessage(`"<Invoice/>"`)},
		{ID: "b", Operation: model.BatchCIIToJSON, Input: json.RawMessage(`"<x/>"`)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Summary.Total)
	assert.Equal(t, 1, res.Summary.Successful)
	require.Len(t, res.Results, 2)
	assert.True(t, res.Results[0].Success)
	assert.Equal(t, "schema mismatch", res.Results[1].Error)
}

func TestConversionService_Endpoints(t *testing.T) {
	srv, last := newFakeAPI(t, map[string]string{
		"/api/v1/ubl/json":     `{"invoice_number":"RE-1"}`,
		"/api/v1/cii/json":     `{"invoice_number":"RE-2"}`,
		"/api/v1/zugferd/json": `{"invoice_number":"RE-3"}`,
	})
	svc := NewConversionService(New(srv.URL, "k", false))
	ctx := context.Background()

	raw, err := svc.UBLToJSON(ctx, "<Invoice/>")
	require.NoError(t, err)
	assert.JSONEq(t, `{"invoice_number":"RE-1"}`, string(raw))

	_, err = svc.CIIToJSON(ctx, "<x/>")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/cii/json", last.URL.Path)

	_, err = svc.ZugferdToJSON(ctx, []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/zugferd/json", last.URL.Path)
	assert.Equal(t, "application/pdf", last.Header.Get("Content-Type"))
}
