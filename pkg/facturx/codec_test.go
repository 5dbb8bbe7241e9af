package facturx_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/pkg/facturx"
)

func buildInvoice() *facturx.InvoiceDescriptor {
	issue := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	d := &facturx.InvoiceDescriptor{
		Profile:     facturx.ProfileComfort,
		InvoiceNo:   "RE-2024-0001",
		InvoiceDate: &issue,
	}
	d.Type = 380
	d.Currency = "EUR"
	d.Seller = &facturx.Party{Name: "Lieferant GmbH", Country: "DE"}
	d.Buyer = &facturx.Party{Name: "Kunden AG"}
	d.SetTotals(
		decimal.NewFromInt(100), decimal.Zero, decimal.Zero,
		decimal.NewFromInt(100), decimal.NewFromInt(19),
		decimal.NewFromInt(119), decimal.Zero,
		decimal.NewFromInt(119), decimal.Zero)
	return d
}

func TestSaveLoadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, facturx.Save(buildInvoice(), &buf))

	got, err := facturx.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, facturx.ProfileComfort, got.Profile)
	assert.Equal(t, "RE-2024-0001", got.InvoiceNo)
	assert.True(t, got.GrandTotalAmount.Equal(decimal.NewFromInt(119)))
}

func TestDetectVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, facturx.Save(buildInvoice(), &buf))

	v, err := facturx.DetectVersion(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, facturx.Version21, v)
}

func TestSaveProfile(t *testing.T) {
	d := buildInvoice()

	var buf bytes.Buffer
	require.NoError(t, facturx.SaveProfile(d, &buf, facturx.Version21, facturx.ProfileMinimum))
	assert.Equal(t, facturx.ProfileComfort, d.Profile)

	got, err := facturx.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, facturx.ProfileMinimum, got.Profile)
}

func TestLoadRejectsUnknownDocument(t *testing.T) {
	_, err := facturx.Load(strings.NewReader("<unrelated/>"))
	require.Error(t, err)
	var perr *facturx.ParseError
	assert.ErrorAs(t, err, &perr)
}
