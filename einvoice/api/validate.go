package api

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
)

// ValidationService checks XML invoices against the XRechnung 3.0.2 and
// EN 16931 rule sets on the remote service side.
type ValidationService interface {
	ValidateUBL(ctx context.Context, xml string) (*model.ValidationResponse, error)
	ValidateCII(ctx context.Context, xml string) (*model.ValidationResponse, error)
	// ValidateXML lets the service auto-detect whether the document is UBL or CII.
	ValidateXML(ctx context.Context, xml string) (*model.ValidationResponse, error)
}

type validation struct {
	client Client
}

func NewValidationService(client Client) ValidationService {
	return &validation{client: client}
}

func (v *validation) ValidateUBL(ctx context.Context, xml string) (*model.ValidationResponse, error) {
	log.Debug("validate UBL document")
	return v.post(ctx, "/api/v1/ubl/validate", xml)
}

func (v *validation) ValidateCII(ctx context.Context, xml string) (*model.ValidationResponse, error) {
	log.Debug("validate CII document")
	return v.post(ctx, "/api/v1/cii/validate", xml)
}

func (v *validation) ValidateXML(ctx context.Context, xml string) (*model.ValidationResponse, error) {
	log.Debug("validate XML document (auto-detect)")
	return v.post(ctx, "/api/v1/xml/validate", xml)
}

func (v *validation) post(ctx context.Context, endpoint, xml string) (*model.ValidationResponse, error) {
	res := &model.ValidationResponse{}
	if err := v.client.PostXML(ctx, endpoint, xml, res); err != nil {
		return nil, err
	}
	return res, nil
}
