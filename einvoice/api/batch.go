package api

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
)

type BatchService interface {
	// Convert submits up to 100 heterogeneous conversion operations in one
	// request. Each operation succeeds or fails on its own, the response
	// reports every outcome independently.
	Convert(ctx context.Context, operations []model.BatchOperation) (*model.BatchResponse, error)
}

type batch struct {
	client Client
}

func NewBatchService(client Client) BatchService {
	return &batch{client: client}
}

func (b *batch) Convert(ctx context.Context, operations []model.BatchOperation) (*model.BatchResponse, error) {
	log.Debugf("batch convert with %d operation(s)", len(operations))

	res := &model.BatchResponse{}
	if err := b.client.PostJSON(ctx, "/api/v1/batch/convert", model.BatchRequest{Operations: operations}, res); err != nil {
		return nil, err
	}
	return res, nil
}
