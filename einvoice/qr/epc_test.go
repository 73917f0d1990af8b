package qr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEPCPayload(t *testing.T) {
	payload, err := EPCPayload(PaymentData{
		Name:       "Acme GmbH",
		IBAN:       "de89 3704 0044 0532 0130 00",
		Amount:     119.5,
		Remittance: "RE-2024-001",
	})
	require.NoError(t, err)

	lines := strings.Split(payload, "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "BCD", lines[0])
	assert.Equal(t, "002", lines[1])
	assert.Equal(t, "1", lines[2])
	assert.Equal(t, "SCT", lines[3])
	assert.Equal(t, "", lines[4], "BIC stays empty when not given")
	assert.Equal(t, "Acme GmbH", lines[5])
	assert.Equal(t, "DE89370400440532013000", lines[6], "IBAN is normalized")
	assert.Equal(t, "EUR119.50", lines[7])
	assert.Equal(t, "RE-2024-001", lines[10])
}

func TestEPCPayload_OpenAmount(t *testing.T) {
	payload, err := EPCPayload(PaymentData{Name: "Acme", IBAN: "DE89370400440532013000"})
	require.NoError(t, err)
	assert.Equal(t, "", strings.Split(payload, "\n")[7])
}

func TestEPCPayload_Rejections(t *testing.T) {
	_, err := EPCPayload(PaymentData{IBAN: "DE89370400440532013000"})
	assert.ErrorContains(t, err, "name is required")

	_, err = EPCPayload(PaymentData{Name: "Acme"})
	assert.ErrorContains(t, err, "IBAN is required")

	_, err = EPCPayload(PaymentData{Name: strings.Repeat("x", 71), IBAN: "DE89"})
	assert.ErrorContains(t, err, "70 characters")

	_, err = EPCPayload(PaymentData{Name: "Acme", IBAN: "DE89", Amount: -1})
	assert.ErrorContains(t, err, "out of range")

	_, err = EPCPayload(PaymentData{Name: "Acme", IBAN: "DE89", Remittance: strings.Repeat("y", 141)})
	assert.ErrorContains(t, err, "140 characters")
}

func TestPNG(t *testing.T) {
	data, err := PNG(PaymentData{Name: "Acme", IBAN: "DE89370400440532013000", Amount: 10}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	// PNG magic number
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}
