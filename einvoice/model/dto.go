package model

import (
	"encoding/json"

	"github.com/go-faster/errors"
)

// BatchOperationType conversion kind inside a batch request
type BatchOperationType string

const (
	BatchJSONToUBL     BatchOperationType = "json_to_ubl"
	BatchJSONToCII     BatchOperationType = "json_to_cii"
	BatchUBLToJSON     BatchOperationType = "ubl_to_json"
	BatchCIIToJSON     BatchOperationType = "cii_to_json"
	BatchZugferdToJSON BatchOperationType = "zugferd_to_json"
)

var BatchOperationTypes = []BatchOperationType{
	BatchJSONToUBL, BatchJSONToCII, BatchUBLToJSON, BatchCIIToJSON, BatchZugferdToJSON,
}

// BatchOperation one entry of a batch convert request. Input is a tagged
// union: the wire field stays raw JSON and DecodePayload resolves it against
// the Operation tag (Invoice document for json_to_*, XML string otherwise).
type BatchOperation struct {
	ID        string             `json:"id"`
	Operation BatchOperationType `json:"operation"`
	Input     json.RawMessage    `json:"input"`
}

// BatchPayload decoded form of BatchOperation.Input, exactly one field set
type BatchPayload struct {
	Invoice *Invoice
	XML     string
}

// DecodePayload resolves the input union against the operation tag.
func (o *BatchOperation) DecodePayload() (*BatchPayload, error) {
	switch o.Operation {
	case BatchJSONToUBL, BatchJSONToCII:
		var inv Invoice
		if err := json.Unmarshal(o.Input, &inv); err != nil {
			return nil, errors.Wrapf(err, "operation %s expects an invoice object as input", o.Operation)
		}
		return &BatchPayload{Invoice: &inv}, nil
	case BatchUBLToJSON, BatchCIIToJSON, BatchZugferdToJSON:
		var xml string
		if err := json.Unmarshal(o.Input, &xml); err != nil {
			return nil, errors.Wrapf(err, "operation %s expects an XML string as input", o.Operation)
		}
		return &BatchPayload{XML: xml}, nil
	default:
		return nil, errors.Errorf("unknown batch operation %q", o.Operation)
	}
}

type BatchRequest struct {
	Operations []BatchOperation `json:"operations"`
}

type BatchResponse struct {
	Results []BatchResult `json:"results"`
	Summary BatchSummary  `json:"summary"`
}

// BatchResult outcome of a single operation, reported independently of the
// other operations in the same request
type BatchResult struct {
	ID      string          `json:"id"`
	Success bool            `json:"success"`
	Output  json.RawMessage `json:"output,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type BatchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// ValidationResponse result of a remote XRechnung / EN 16931 rule check
type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationIssue `json:"errors,omitempty"`
}

type ValidationIssue struct {
	Location string `json:"location,omitempty"`
	RuleID   string `json:"rule_id,omitempty"`
	Message  string `json:"message"`
}

// UserInfo account details behind the API key
type UserInfo struct {
	Email   string  `json:"email"`
	Role    string  `json:"role"`
	Credits Credits `json:"credits"`
}

type Credits struct {
	Available    int `json:"available"`
	Used         int `json:"used"`
	MonthlyQuota int `json:"monthly_quota"`
	Extra        int `json:"extra"`
}

// FilePayload base64 wrapped file embedded in a JSON request body
type FilePayload struct {
	Content     string `json:"content"` // base64
	ContentType string `json:"contentType"`
	FileName    string `json:"fileName"`
}

// ZugferdRequest request body for building a hybrid ZUGFeRD PDF
type ZugferdRequest struct {
	File    FilePayload `json:"file"`
	Invoice *Invoice    `json:"invoice"`
}

type XlsxRequest struct {
	Invoices []Invoice `json:"invoices"`
}

// QRResponse decoded QR code payload from an uploaded image
type QRResponse struct {
	Found       bool            `json:"found"`
	Payload     string          `json:"payload,omitempty"`
	PaymentData json.RawMessage `json:"payment_data,omitempty"`
}
