// Package qr builds EPC 069-12 payment QR payloads (the "GiroCode" printed
// on European invoices) and renders them as PNG. Everything here is local,
// no network is involved.
package qr

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

var logger = logrus.WithField("component", "einvoice.qr")

// PaymentData input for an EPC payment QR code
type PaymentData struct {
	Name       string  // beneficiary name, max 70 characters
	IBAN       string
	BIC        string  // optional since SEPA 2016
	Amount     float64 // in EUR; 0 means "amount left open"
	Remittance string  // unstructured remittance info, max 140 characters
}

const (
	maxNameLength       = 70
	maxRemittanceLength = 140
	maxAmount           = 999999999.99
)

// EPCPayload renders the data as an EPC 069-12 version 002 payload
// (SEPA credit transfer, UTF-8).
func EPCPayload(d PaymentData) (string, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return "", errors.New("beneficiary name is required")
	}
	if len(name) > maxNameLength {
		return "", errors.Errorf("beneficiary name exceeds %d characters", maxNameLength)
	}

	iban := strings.ToUpper(strings.ReplaceAll(d.IBAN, " ", ""))
	if iban == "" {
		return "", errors.New("IBAN is required")
	}

	if d.Amount < 0 || d.Amount > maxAmount {
		return "", errors.Errorf("amount %.2f is out of range", d.Amount)
	}
	amount := ""
	if d.Amount > 0 {
		amount = fmt.Sprintf("EUR%.2f", d.Amount)
	}

	remittance := strings.TrimSpace(d.Remittance)
	if len(remittance) > maxRemittanceLength {
		return "", errors.Errorf("remittance info exceeds %d characters", maxRemittanceLength)
	}

	lines := []string{
		"BCD",    // service tag
		"002",    // version (BIC optional)
		"1",      // UTF-8
		"SCT",    // SEPA credit transfer
		d.BIC,
		name,
		iban,
		amount,
		"",         // purpose code, unused
		"",         // structured remittance, unused
		remittance, // unstructured remittance
	}
	return strings.Join(lines, "\n"), nil
}

// PNG renders the payment data as a QR PNG of the given size in pixels.
func PNG(d PaymentData, size int) ([]byte, error) {
	payload, err := EPCPayload(d)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 300
	}
	logger.Debugf("rendering EPC QR (%d bytes payload, %dpx)", len(payload), size)
	return qrcode.Encode(payload, qrcode.Medium, size)
}
