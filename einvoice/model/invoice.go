package model

// InvoiceType direction of the invoice from the caller's point of view
type InvoiceType string

const (
	Incoming InvoiceType = "incoming"
	Outgoing InvoiceType = "outgoing"
)

// VATCategory UNTDID 5305 tax category code used on line items
type VATCategory string

const (
	VATStandard       VATCategory = "S"
	VATZeroRated      VATCategory = "Z"
	VATExempt         VATCategory = "E"
	VATReverseCharge  VATCategory = "AE"
	VATIntraCommunity VATCategory = "K"
	VATExport         VATCategory = "G"
	VATOutOfScope     VATCategory = "O"
	VATCanaryIslands  VATCategory = "L"
	VATCeutaMelilla   VATCategory = "M"
)

// VATCategories all permitted line item tax category codes
var VATCategories = []VATCategory{
	VATStandard, VATZeroRated, VATExempt, VATReverseCharge, VATIntraCommunity,
	VATExport, VATOutOfScope, VATCanaryIslands, VATCeutaMelilla,
}

type PaymentType string

const (
	PaymentCreditCard    PaymentType = "credit_card"
	PaymentCreditTrans   PaymentType = "credit_transfer"
	PaymentCash          PaymentType = "cash"
	PaymentOnlineService PaymentType = "online_payment_service"
)

var PaymentTypes = []PaymentType{
	PaymentCreditCard, PaymentCreditTrans, PaymentCash, PaymentOnlineService,
}

// Invoice central document exchanged with the remote API. All dates are plain
// YYYY-MM-DD strings, amounts are plain numbers. The schema does not enforce
// any arithmetic relationship between totals and item sums, this is left to
// the remote service.
type Invoice struct {
	ID                  string              `json:"id,omitempty"`
	Category            string              `json:"category,omitempty"`
	InvoiceNumber       string              `json:"invoice_number"`
	InvoiceType         InvoiceType         `json:"invoice_type"`
	InvoiceDate         string              `json:"invoice_date"`
	CurrencyCode        string              `json:"currency_code"`
	Description         string              `json:"description"`
	Note                string              `json:"note,omitempty"`
	AdditionalData      *AdditionalData     `json:"additional_data,omitempty"`
	Seller              *Party              `json:"seller"`
	Buyer               *Party              `json:"buyer"`
	DeliveryInformation *DeliveryInfo       `json:"delivery_information,omitempty"`
	PaymentInformation  *PaymentInformation `json:"payment_information"`
	Totals              *Totals             `json:"totals"`
	Items               []InvoiceItem       `json:"items"`
}

type AdditionalData struct {
	ReverseCharge             bool             `json:"reverse_charge,omitempty"`
	RoutingID                 string           `json:"routing_id,omitempty"`
	CustomerReference         string           `json:"customer_reference,omitempty"`
	OrderReference            string           `json:"order_reference,omitempty"`
	DeliveryReference         string           `json:"delivery_reference,omitempty"`
	ProjectReference          string           `json:"project_reference,omitempty"`
	PrecedingInvoiceReference string           `json:"preceding_invoice_reference,omitempty"`
	InvoicingPeriod           *InvoicingPeriod `json:"invoicing_period,omitempty"`
}

type InvoicingPeriod struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

type Party struct {
	Name    string         `json:"name"`
	Address *PostalAddress `json:"address"`
	VatID   string         `json:"vat_id,omitempty"`
	Contact *Contact       `json:"contact,omitempty"`
}

type PostalAddress struct {
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	Line3       string `json:"line3,omitempty"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	Subdivision string `json:"subdivision,omitempty"`
	CountryCode string `json:"country_code"` // ISO 3166-1 alpha-2
}

type Contact struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type DeliveryInfo struct {
	DeliveryDate string         `json:"delivery_date,omitempty"`
	Recipient    string         `json:"recipient,omitempty"`
	Address      *PostalAddress `json:"address,omitempty"`
}

type InvoiceItem struct {
	ID                    string        `json:"id,omitempty"`
	Quantity              float64       `json:"quantity"`
	UnitCode              string        `json:"unit_code"` // UN/ECE Recommendation 20
	TotalAmountWithVat    float64       `json:"total_amount_with_vat"`
	TotalAmountWithoutVat *float64      `json:"total_amount_without_vat,omitempty"`
	PriceDetails          *PriceDetails `json:"price_details"`
	Description           string        `json:"description,omitempty"`
}

type PriceDetails struct {
	UnitPriceWithoutVat float64     `json:"unit_price_without_vat"`
	Discount            *float64    `json:"discount,omitempty"`
	UnitPriceWithVat    float64     `json:"unit_price_with_vat"`
	VatRate             float64     `json:"vat_rate"`
	VatCategory         VATCategory `json:"vat_category"`
}

type PaymentInformation struct {
	PaymentType       PaymentType `json:"payment_type,omitempty"`
	Reference         string      `json:"reference,omitempty"`
	Instructions      string      `json:"instructions,omitempty"`
	BankAccountNumber string      `json:"bank_account_number,omitempty"`
	CardNumber        string      `json:"card_number,omitempty"`
	DueDate           string      `json:"due_date,omitempty"`
	PaidDate          string      `json:"paid_date,omitempty"`
	Terms             string      `json:"terms,omitempty"`
}

type Totals struct {
	TotalAmountWithoutVat  float64  `json:"total_amount_without_vat"`
	TotalAmountWithVat     float64  `json:"total_amount_with_vat"`
	VatAmount              float64  `json:"vat_amount"`
	AmountDue              float64  `json:"amount_due"`
	PaidAmount             float64  `json:"paid_amount"`
	SumAllowances          *float64 `json:"sum_allowances,omitempty"`
	SumCharges             *float64 `json:"sum_charges,omitempty"`
	InvoiceTotalWithoutVat *float64 `json:"invoice_total_without_vat,omitempty"`
	RoundingAmount         *float64 `json:"rounding_amount,omitempty"`
}
