// Package schema defines the shape of the invoice document: structural
// validation with path-qualified errors, and the JSON schema fragments the
// tools declare to the MCP host. Validation is type-level only - it never
// checks cross-field consistency (totals vs item sums is the remote
// service's concern) and never touches the network.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-faster/errors"

	"github.com/einvoicedev/einvoice-mcp/einvoice/model"
)

// MaxBatchOperations upper bound on operations per batch request
const MaxBatchOperations = 100

// FieldIssue one violated constraint, with the dotted path of the offending
// field inside the document
type FieldIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (f FieldIssue) String() string {
	return f.Path + ": " + f.Message
}

// ValidationError rejection of a document, carrying every violation found
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Issues)+1)
	lines = append(lines, "invalid invoice document:")
	for _, i := range e.Issues {
		lines = append(lines, "  "+i.String())
	}
	return strings.Join(lines, "\n")
}

// DecodeInvoice converts an arbitrary argument value (as delivered by the MCP
// host) into a typed Invoice, or rejects it with a ValidationError naming
// every offending field.
func DecodeInvoice(v interface{}) (*model.Invoice, error) {
	var inv model.Invoice
	if err := decodeInto(v, &inv); err != nil {
		return nil, err
	}
	if verr := ValidateInvoice(&inv); verr != nil {
		return nil, verr
	}
	return &inv, nil
}

// DecodeBatchOperations converts the `operations` argument of a batch request
// into typed operations, enforcing the 1..100 bound, known operation kinds
// and per-kind payload shapes before any network call.
func DecodeBatchOperations(v interface{}) ([]model.BatchOperation, error) {
	var ops []model.BatchOperation
	if err := decodeInto(v, &ops); err != nil {
		return nil, err
	}

	var issues []FieldIssue
	if len(ops) == 0 {
		issues = append(issues, FieldIssue{Path: "operations", Message: "at least one operation is required"})
	}
	if len(ops) > MaxBatchOperations {
		issues = append(issues, FieldIssue{
			Path:    "operations",
			Message: fmt.Sprintf("at most %d operations are allowed per batch, got %d", MaxBatchOperations, len(ops)),
		})
	}

	for i, op := range ops {
		path := fmt.Sprintf("operations[%d]", i)
		if op.ID == "" {
			issues = append(issues, FieldIssue{Path: path + ".id", Message: "is required"})
		}
		if op.Operation == "" {
			issues = append(issues, FieldIssue{Path: path + ".operation", Message: "is required"})
			continue
		}
		if !knownBatchOperation(op.Operation) {
			issues = append(issues, FieldIssue{
				Path:    path + ".operation",
				Message: fmt.Sprintf("%q is not one of %s", op.Operation, joinBatchOperations()),
			})
			continue
		}
		if len(op.Input) == 0 {
			issues = append(issues, FieldIssue{Path: path + ".input", Message: "is required"})
			continue
		}
		if _, err := op.DecodePayload(); err != nil {
			issues = append(issues, FieldIssue{Path: path + ".input", Message: err.Error()})
		}
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return ops, nil
}

// decodeInto round-trips through JSON so that wrong-primitive-type errors
// carry the offending field path.
func decodeInto(v interface{}, target interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encode arguments")
	}
	if err := json.Unmarshal(raw, target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			path := typeErr.Field
			if path == "" {
				path = "(document)"
			}
			return &ValidationError{Issues: []FieldIssue{{
				Path:    path,
				Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}}}
		}
		return errors.Wrap(err, "decode arguments")
	}
	return nil
}

// ValidateInvoice checks structural constraints of a decoded invoice and
// returns nil when the document is acceptable.
func ValidateInvoice(inv *model.Invoice) *ValidationError {
	var issues []FieldIssue

	requireString := func(path, value string) {
		if value == "" {
			issues = append(issues, FieldIssue{Path: path, Message: "is required"})
		}
	}

	requireString("invoice_number", inv.InvoiceNumber)
	requireString("invoice_date", inv.InvoiceDate)
	requireString("currency_code", inv.CurrencyCode)
	requireString("description", inv.Description)

	switch inv.InvoiceType {
	case model.Incoming, model.Outgoing:
	case "":
		issues = append(issues, FieldIssue{Path: "invoice_type", Message: "is required"})
	default:
		issues = append(issues, FieldIssue{
			Path:    "invoice_type",
			Message: fmt.Sprintf("%q is not one of \"incoming\", \"outgoing\"", inv.InvoiceType),
		})
	}

	issues = append(issues, validateParty("seller", inv.Seller)...)
	issues = append(issues, validateParty("buyer", inv.Buyer)...)

	if inv.PaymentInformation == nil {
		issues = append(issues, FieldIssue{Path: "payment_information", Message: "is required"})
	} else if pt := inv.PaymentInformation.PaymentType; pt != "" && !knownPaymentType(pt) {
		issues = append(issues, FieldIssue{
			Path:    "payment_information.payment_type",
			Message: fmt.Sprintf("%q is not one of %s", pt, joinPaymentTypes()),
		})
	}

	if inv.Totals == nil {
		issues = append(issues, FieldIssue{Path: "totals", Message: "is required"})
	}

	if len(inv.Items) == 0 {
		issues = append(issues, FieldIssue{Path: "items", Message: "at least one item is required"})
	}
	for i := range inv.Items {
		issues = append(issues, validateItem(fmt.Sprintf("items[%d]", i), &inv.Items[i])...)
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func validateParty(path string, p *model.Party) []FieldIssue {
	if p == nil {
		return []FieldIssue{{Path: path, Message: "is required"}}
	}

	var issues []FieldIssue
	if p.Name == "" {
		issues = append(issues, FieldIssue{Path: path + ".name", Message: "is required"})
	}
	if p.Address == nil {
		issues = append(issues, FieldIssue{Path: path + ".address", Message: "is required"})
		return issues
	}

	addr := path + ".address"
	if p.Address.Line1 == "" {
		issues = append(issues, FieldIssue{Path: addr + ".line1", Message: "is required"})
	}
	if p.Address.City == "" {
		issues = append(issues, FieldIssue{Path: addr + ".city", Message: "is required"})
	}
	if p.Address.PostalCode == "" {
		issues = append(issues, FieldIssue{Path: addr + ".postal_code", Message: "is required"})
	}
	switch cc := p.Address.CountryCode; {
	case cc == "":
		issues = append(issues, FieldIssue{Path: addr + ".country_code", Message: "is required"})
	case len(cc) != 2:
		issues = append(issues, FieldIssue{
			Path:    addr + ".country_code",
			Message: fmt.Sprintf("must be an ISO 3166-1 alpha-2 code (exactly 2 characters), got %q", cc),
		})
	}
	return issues
}

func validateItem(path string, item *model.InvoiceItem) []FieldIssue {
	var issues []FieldIssue
	if item.UnitCode == "" {
		issues = append(issues, FieldIssue{Path: path + ".unit_code", Message: "is required"})
	}
	if item.PriceDetails == nil {
		issues = append(issues, FieldIssue{Path: path + ".price_details", Message: "is required"})
		return issues
	}
	if vc := item.PriceDetails.VatCategory; vc == "" {
		issues = append(issues, FieldIssue{Path: path + ".price_details.vat_category", Message: "is required"})
	} else if !knownVATCategory(vc) {
		issues = append(issues, FieldIssue{
			Path:    path + ".price_details.vat_category",
			Message: fmt.Sprintf("%q is not one of %s", vc, joinVATCategories()),
		})
	}
	return issues
}

func knownVATCategory(c model.VATCategory) bool {
	for _, v := range model.VATCategories {
		if v == c {
			return true
		}
	}
	return false
}

func knownPaymentType(t model.PaymentType) bool {
	for _, v := range model.PaymentTypes {
		if v == t {
			return true
		}
	}
	return false
}

func knownBatchOperation(o model.BatchOperationType) bool {
	for _, v := range model.BatchOperationTypes {
		if v == o {
			return true
		}
	}
	return false
}

func joinVATCategories() string {
	parts := make([]string, len(model.VATCategories))
	for i, v := range model.VATCategories {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func joinPaymentTypes() string {
	parts := make([]string, len(model.PaymentTypes))
	for i, v := range model.PaymentTypes {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func joinBatchOperations() string {
	parts := make([]string, len(model.BatchOperationTypes))
	for i, v := range model.BatchOperationTypes {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
