package api

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
)

type ExtractionService interface {
	// ExtractInvoice runs the remote OCR/extraction pipeline on a PDF or
	// image and returns the structured invoice JSON.
	ExtractInvoice(ctx context.Context, data []byte, contentType string) (json.RawMessage, error)
	// ExtractQR decodes a QR code found in an invoice image. With
	// extractPaymentData the service additionally parses the payload into
	// structured payment fields.
	ExtractQR(ctx context.Context, data []byte, contentType string, extractPaymentData bool) (*model.QRResponse, error)
}

type extraction struct {
	client Client
}

func NewExtractionService(client Client) ExtractionService {
	return &extraction{client: client}
}

func (e *extraction) ExtractInvoice(ctx context.Context, data []byte, contentType string) (json.RawMessage, error) {
	log.Debugf("extract invoice from %d bytes of %s", len(data), contentType)

	var res json.RawMessage
	if err := e.client.PostBinary(ctx, "/api/v1/file/json", data, contentType, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *extraction) ExtractQR(ctx context.Context, data []byte, contentType string, extractPaymentData bool) (*model.QRResponse, error) {
	log.Debug("extract QR payload from image")

	endpoint := "/api/v1/file/qr"
	if extractPaymentData {
		endpoint += "?extract_payment_data=true"
	}

	res := &model.QRResponse{}
	if err := e.client.PostBinary(ctx, endpoint, data, contentType, res); err != nil {
		return nil, err
	}
	return res, nil
}
