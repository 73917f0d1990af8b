package schema

// JSON schema fragments handed to the MCP host at tool registration. They
// describe the same shape the validator in this package enforces, so the
// host-side check and the local one cannot drift apart silently.

func stringProp(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": desc}
}

func numberProp(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": desc}
}

func enumProp(desc string, values ...string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": desc, "enum": values}
}

func objectProp(desc string, properties map[string]interface{}, required ...string) map[string]interface{} {
	p := map[string]interface{}{
		"type":        "object",
		"description": desc,
		"properties":  properties,
	}
	if len(required) > 0 {
		p["required"] = required
	}
	return p
}

// InvoiceSchema full JSON schema of the invoice document, for use as the
// type of an `invoice` object argument.
func InvoiceSchema() map[string]interface{} {
	return objectProp("Invoice document", InvoiceProperties(),
		"invoice_number", "invoice_type", "invoice_date", "currency_code",
		"description", "seller", "buyer", "payment_information", "totals", "items")
}

// InvoiceProperties property map of the invoice document
func InvoiceProperties() map[string]interface{} {
	return map[string]interface{}{
		"id":             stringProp("Optional document id"),
		"category":       stringProp("Optional free-form invoice category"),
		"invoice_number": stringProp("Invoice number as printed on the document"),
		"invoice_type":   enumProp("Direction of the invoice", "incoming", "outgoing"),
		"invoice_date":   stringProp("Issue date, YYYY-MM-DD"),
		"currency_code":  stringProp("ISO 4217 currency code, e.g. EUR"),
		"description":    stringProp("Human readable description of the invoice"),
		"note":           stringProp("Optional free-text note"),
		"additional_data": objectProp("Optional routing and reference data", map[string]interface{}{
			"reverse_charge":              map[string]interface{}{"type": "boolean", "description": "Reverse charge applies"},
			"routing_id":                  stringProp("Government routing id (Leitweg-ID)"),
			"customer_reference":          stringProp("Buyer reference"),
			"order_reference":             stringProp("Purchase order reference"),
			"delivery_reference":          stringProp("Delivery note reference"),
			"project_reference":           stringProp("Project tag"),
			"preceding_invoice_reference": stringProp("Reference to a preceding invoice"),
			"invoicing_period": objectProp("Invoicing period", map[string]interface{}{
				"start_date": stringProp("Period start, YYYY-MM-DD"),
				"end_date":   stringProp("Period end, YYYY-MM-DD"),
			}),
		}),
		"seller": PartySchema("Seller party"),
		"buyer":  PartySchema("Buyer party"),
		"delivery_information": objectProp("Optional delivery details", map[string]interface{}{
			"delivery_date": stringProp("Delivery date, YYYY-MM-DD"),
			"recipient":     stringProp("Delivery recipient name"),
			"address":       AddressSchema("Delivery address"),
		}),
		"payment_information": PaymentInformationSchema(),
		"totals":              TotalsSchema(),
		"items": map[string]interface{}{
			"type":        "array",
			"description": "Invoice line items, at least one",
			"minItems":    1,
			"items":       ItemSchema(),
		},
	}
}

func PartySchema(desc string) map[string]interface{} {
	return objectProp(desc, map[string]interface{}{
		"name":    stringProp("Legal name"),
		"address": AddressSchema("Postal address"),
		"vat_id":  stringProp("VAT identifier, e.g. DE123456789"),
		"contact": objectProp("Contact details", map[string]interface{}{
			"phone": stringProp("Phone number"),
			"email": stringProp("Email address"),
		}),
	}, "name", "address")
}

func AddressSchema(desc string) map[string]interface{} {
	return objectProp(desc, map[string]interface{}{
		"line1":        stringProp("Address line 1"),
		"line2":        stringProp("Address line 2"),
		"line3":        stringProp("Address line 3"),
		"city":         stringProp("City"),
		"postal_code":  stringProp("Postal code"),
		"subdivision":  stringProp("Country subdivision, e.g. state"),
		"country_code": map[string]interface{}{"type": "string", "description": "ISO 3166-1 alpha-2 country code", "minLength": 2, "maxLength": 2},
	}, "line1", "city", "postal_code", "country_code")
}

func PaymentInformationSchema() map[string]interface{} {
	return objectProp("Payment details", map[string]interface{}{
		"payment_type":        enumProp("How the invoice is paid", "credit_card", "credit_transfer", "cash", "online_payment_service"),
		"reference":           stringProp("Payment reference"),
		"instructions":        stringProp("Payment instructions"),
		"bank_account_number": stringProp("IBAN or account number"),
		"card_number":         stringProp("Masked card number"),
		"due_date":            stringProp("Due date, YYYY-MM-DD"),
		"paid_date":           stringProp("Paid date, YYYY-MM-DD"),
		"terms":               stringProp("Payment terms"),
	})
}

func TotalsSchema() map[string]interface{} {
	return objectProp("Document totals (no arithmetic consistency is enforced locally)", map[string]interface{}{
		"total_amount_without_vat":  numberProp("Total without VAT"),
		"total_amount_with_vat":     numberProp("Total with VAT"),
		"vat_amount":                numberProp("VAT amount"),
		"amount_due":                numberProp("Amount due"),
		"paid_amount":               numberProp("Amount already paid"),
		"sum_allowances":            numberProp("Sum of document level allowances"),
		"sum_charges":               numberProp("Sum of document level charges"),
		"invoice_total_without_vat": numberProp("Invoice total without VAT"),
		"rounding_amount":           numberProp("Rounding amount"),
	}, "total_amount_without_vat", "total_amount_with_vat", "vat_amount", "amount_due", "paid_amount")
}

func ItemSchema() map[string]interface{} {
	return objectProp("Invoice line item", map[string]interface{}{
		"id":                       stringProp("Line item identifier"),
		"quantity":                 numberProp("Quantity"),
		"unit_code":                stringProp("UN/ECE Recommendation 20 unit code, e.g. H87"),
		"total_amount_with_vat":    numberProp("Line total including VAT"),
		"total_amount_without_vat": numberProp("Line total excluding VAT"),
		"price_details": objectProp("Unit price and tax treatment", map[string]interface{}{
			"unit_price_without_vat": numberProp("Unit price excluding VAT"),
			"discount":               numberProp("Per-unit discount"),
			"unit_price_with_vat":    numberProp("Unit price including VAT"),
			"vat_rate":               numberProp("VAT rate in percent"),
			"vat_category":           enumProp("UNTDID 5305 VAT category code", "S", "Z", "E", "AE", "K", "G", "O", "L", "M"),
		}, "unit_price_without_vat", "unit_price_with_vat", "vat_rate", "vat_category"),
		"description": stringProp("Line item description"),
	}, "quantity", "unit_code", "total_amount_with_vat", "price_details")
}

// BatchOperationSchema schema of one entry in the `operations` array of a
// batch request. The input shape depends on the operation kind: an invoice
// object for json_to_*, an XML string for everything else.
func BatchOperationSchema() map[string]interface{} {
	return objectProp("Single batch conversion operation", map[string]interface{}{
		"id":        stringProp("Caller-chosen id, echoed back in the result"),
		"operation": enumProp("Conversion kind", "json_to_ubl", "json_to_cii", "ubl_to_json", "cii_to_json", "zugferd_to_json"),
		"input": map[string]interface{}{
			"description": "Operation input: an invoice object for json_to_* operations, an XML string otherwise",
		},
	}, "id", "operation", "input")
}
