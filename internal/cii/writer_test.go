package cii

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleDescriptor builds a populated invoice under the given profile.
func sampleDescriptor(profile codes.Profile) *model.InvoiceDescriptor {
	d := &model.InvoiceDescriptor{
		Profile:     profile,
		Type:        codes.InvoiceTypeInvoice,
		InvoiceNo:   "471102",
		InvoiceDate: date(2018, time.March, 5),
		Currency:    codes.CurrencyEUR,
	}
	d.AddNote("Rechnung gemaess Bestellung vom 01.03.2018.", codes.SubjectUnknown)
	d.AddNote("Es bestehen Rabattvereinbarungen.", codes.SubjectPriceConditions)

	d.Seller = &model.Party{
		ID:       "549910",
		GlobalID: model.GlobalID{SchemeID: "0088", ID: "4000001123452"},
		Name:     "Lieferant GmbH",
		Street:   "Lieferantenstrasse 20",
		Postcode: "80333",
		City:     "Muenchen",
		Country:  codes.CountryDE,
	}
	d.AddSellerTaxRegistration("201/113/40209", codes.TaxRegistrationSchemeFC)
	d.AddSellerTaxRegistration("DE123456789", codes.TaxRegistrationSchemeVA)
	d.SellerContact = &model.Contact{
		Name:         "Max Mustermann",
		OrgUnit:      "Muster-Einkauf",
		PhoneNo:      "+49891234567",
		EmailAddress: "Max@Mustermann.de",
	}

	d.Buyer = &model.Party{
		ID:       "GE2020211",
		Name:     "Kunden AG Mitte",
		Street:   "Kundenstrasse 15",
		Postcode: "69876",
		City:     "Frankfurt",
		Country:  codes.CountryDE,
	}
	d.ReferenceOrderNo = "04011000-12345-34"
	d.OrderNo = "B123456789"
	d.OrderDate = date(2018, time.March, 1)

	d.ActualDeliveryDate = date(2018, time.March, 5)
	d.DeliveryNoteReferencedDocument = &model.DeliveryNoteReferencedDocument{
		ID:        "L1000",
		IssueDate: date(2018, time.March, 5),
	}

	d.PaymentMeans = &model.PaymentMeans{
		TypeCode:    codes.PaymentMeansSEPACreditTransfer,
		Information: "Ueberweisung",
	}
	d.AddCreditorBankAccount(model.BankAccount{
		IBAN:     "DE02120300000000202051",
		BIC:      "BYLADEM1001",
		BankName: "Deutsche Kreditbank",
		Name:     "Lieferant GmbH",
	})

	d.AddApplicableTradeTax(dec("275.00"), dec("7.00"),
		codes.TaxTypeVAT, codes.TaxCategoryS, codes.TaxExemptionReasonUnknown, "")
	d.PaymentTerms = &model.PaymentTerms{
		Description: "Zahlbar innerhalb 30 Tagen",
		DueDate:     date(2018, time.April, 4),
	}

	item := model.TradeLineItem{
		SellerAssignedID: "TB100A4",
		Name:             "Trennblaetter A4",
		BilledQuantity:   dec("20"),
		UnitCode:         codes.QuantityItem,
		NetUnitPrice:     dec("9.90"),
	}
	lineTotal := dec("198.00")
	item.LineTotalAmount = &lineTotal
	item.TaxType = codes.TaxTypeVAT
	item.TaxCategoryCode = codes.TaxCategoryS
	item.TaxPercent = dec("7.00")
	item.AssociatedDocument = &model.AssociatedDocument{LineID: "1"}
	d.AddTradeLineItem(item)

	d.SetTotals(dec("198.00"), dec("0.00"), dec("0.00"), dec("198.00"),
		dec("13.86"), dec("211.86"), dec("0.00"), dec("211.86"), dec("0.00"))
	return d
}

func roundTrip(t *testing.T, d *model.InvoiceDescriptor) *model.InvoiceDescriptor {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Save(d, &buf, Version21))
	got, err := Load(&buf)
	require.NoError(t, err)
	return got
}

func TestWriteReadRoundTrip(t *testing.T) {
	d := sampleDescriptor(codes.ProfileComfort)
	got := roundTrip(t, d)

	assert.Equal(t, d.Profile, got.Profile)
	assert.Equal(t, d.InvoiceNo, got.InvoiceNo)
	assert.Equal(t, *d.InvoiceDate, *got.InvoiceDate)
	assert.Equal(t, d.Type, got.Type)
	assert.Equal(t, d.Currency, got.Currency)
	assert.Equal(t, d.ReferenceOrderNo, got.ReferenceOrderNo)
	assert.Equal(t, d.OrderNo, got.OrderNo)
	assert.Equal(t, *d.OrderDate, *got.OrderDate)

	require.Len(t, got.Notes, 2)
	assert.Equal(t, d.Notes[0].Content, got.Notes[0].Content)
	assert.Equal(t, codes.SubjectPriceConditions, got.Notes[1].SubjectCode)

	require.NotNil(t, got.Seller)
	assert.Equal(t, d.Seller.Name, got.Seller.Name)
	assert.Equal(t, d.Seller.GlobalID, got.Seller.GlobalID)
	assert.Equal(t, d.Seller.Street, got.Seller.Street)
	assert.Equal(t, d.Seller.TaxRegistrations, got.Seller.TaxRegistrations)
	require.NotNil(t, got.SellerContact)
	assert.Equal(t, *d.SellerContact, *got.SellerContact)

	require.NotNil(t, got.Buyer)
	assert.Equal(t, d.Buyer.Street, got.Buyer.Street)
	assert.Empty(t, got.Buyer.ContactName)

	require.NotNil(t, got.DeliveryNoteReferencedDocument)
	assert.Equal(t, "L1000", got.DeliveryNoteReferencedDocument.ID)
	assert.Equal(t, *d.ActualDeliveryDate, *got.ActualDeliveryDate)

	require.NotNil(t, got.PaymentMeans)
	assert.Equal(t, codes.PaymentMeansSEPACreditTransfer, got.PaymentMeans.TypeCode)
	require.Len(t, got.CreditorBankAccounts, 1)
	assert.Equal(t, d.CreditorBankAccounts[0], got.CreditorBankAccounts[0])

	require.Len(t, got.Taxes, 1)
	assert.True(t, got.Taxes[0].BasisAmount.Equal(dec("275.00")))
	assert.True(t, got.Taxes[0].Percent.Equal(dec("7.00")))

	require.NotNil(t, got.PaymentTerms)
	assert.Equal(t, d.PaymentTerms.Description, got.PaymentTerms.Description)
	assert.Equal(t, *d.PaymentTerms.DueDate, *got.PaymentTerms.DueDate)

	require.Len(t, got.LineItems, 1)
	assert.Equal(t, "Trennblaetter A4", got.LineItems[0].Name)
	assert.True(t, got.LineItems[0].BilledQuantity.Equal(dec("20")))
	assert.True(t, got.LineItems[0].NetUnitPrice.Equal(dec("9.90")))
	assert.Equal(t, codes.QuantityItem, got.LineItems[0].UnitCode)
	require.NotNil(t, got.LineItems[0].LineTotalAmount)
	assert.True(t, got.LineItems[0].LineTotalAmount.Equal(dec("198.00")))

	assert.True(t, got.LineTotalAmount.Equal(dec("198.00")))
	require.NotNil(t, got.TaxBasisAmount)
	assert.True(t, got.TaxBasisAmount.Equal(dec("198.00")))
	assert.True(t, got.GrandTotalAmount.Equal(dec("211.86")))
	assert.True(t, got.DuePayableAmount.Equal(dec("211.86")))
}

func TestRoundTripPartyContactNameUsesLineTwo(t *testing.T) {
	d := sampleDescriptor(codes.ProfileExtended)
	d.Buyer.ContactName = "Hans Muster"

	got := roundTrip(t, d)
	require.NotNil(t, got.Buyer)
	assert.Equal(t, "Hans Muster", got.Buyer.ContactName)
	assert.Equal(t, "Kundenstrasse 15", got.Buyer.Street)
}

func TestInvoiceeOnlyInExtended(t *testing.T) {
	invoicee := &model.Party{Name: "Kunden AG Zentrale"}

	d := sampleDescriptor(codes.ProfileComfort)
	d.Invoicee = invoicee
	assert.Nil(t, roundTrip(t, d).Invoicee)

	d = sampleDescriptor(codes.ProfileExtended)
	d.Invoicee = invoicee
	got := roundTrip(t, d)
	require.NotNil(t, got.Invoicee)
	assert.Equal(t, "Kunden AG Zentrale", got.Invoicee.Name)
}

func TestServiceChargesOnlyInExtended(t *testing.T) {
	d := sampleDescriptor(codes.ProfileComfort)
	d.AddLogisticsServiceCharge(dec("5.80"), "Versandkosten",
		codes.TaxTypeVAT, codes.TaxCategoryS, dec("19.00"))
	assert.Empty(t, roundTrip(t, d).ServiceCharges)

	d = sampleDescriptor(codes.ProfileExtended)
	d.AddLogisticsServiceCharge(dec("5.80"), "Versandkosten",
		codes.TaxTypeVAT, codes.TaxCategoryS, dec("19.00"))
	require.Len(t, roundTrip(t, d).ServiceCharges, 1)
}

func TestRoundingAmountByProfile(t *testing.T) {
	for _, tc := range []struct {
		profile codes.Profile
		want    string
	}{
		{codes.ProfileExtended, "0.01"},
		{codes.ProfileComfort, "0.01"},
		{codes.ProfileBasic, "0"},
		{codes.ProfileBasicWL, "0"},
	} {
		t.Run(tc.profile.String(), func(t *testing.T) {
			d := sampleDescriptor(tc.profile)
			d.SetTotals(dec("1.99"), dec("0"), dec("0"), dec("0"),
				dec("0"), dec("2"), dec("0"), dec("2"), dec("0.01"))
			got := roundTrip(t, d)
			assert.True(t, got.RoundingAmount.Equal(dec(tc.want)),
				"rounding %s", got.RoundingAmount)
		})
	}
}

func TestChargeIndicatorInversion(t *testing.T) {
	d := sampleDescriptor(codes.ProfileExtended)
	d.AddTradeAllowanceCharge(true, dec("10.00"), codes.CurrencyEUR,
		dec("1.00"), "Rabatt", codes.TaxTypeVAT, codes.TaxCategoryS, dec("19.00"))
	d.AddTradeAllowanceCharge(false, dec("10.00"), codes.CurrencyEUR,
		dec("2.00"), "Zuschlag", codes.TaxTypeVAT, codes.TaxCategoryS, dec("19.00"))

	var buf bytes.Buffer
	require.NoError(t, Save(d, &buf, Version21))
	xml := buf.String()
	assert.Contains(t, xml, "<udt:Indicator>false</udt:Indicator>")
	assert.Contains(t, xml, "<udt:Indicator>true</udt:Indicator>")

	got, err := Load(strings.NewReader(xml))
	require.NoError(t, err)
	require.Len(t, got.AllowanceCharges, 2)
	assert.True(t, got.AllowanceCharges[0].IsAllowance)
	assert.Equal(t, "Rabatt", got.AllowanceCharges[0].Reason)
	assert.False(t, got.AllowanceCharges[1].IsAllowance)
	assert.Equal(t, "Zuschlag", got.AllowanceCharges[1].Reason)
}

func TestContractIssueDateSuppressedForXRechnung(t *testing.T) {
	contract := &model.ContractReferencedDocument{
		ID:        "V876543210",
		IssueDate: date(2018, time.September, 1),
	}

	d := sampleDescriptor(codes.ProfileExtended)
	d.ContractReferencedDocument = contract
	got := roundTrip(t, d)
	require.NotNil(t, got.ContractReferencedDocument)
	require.NotNil(t, got.ContractReferencedDocument.IssueDate)

	d = sampleDescriptor(codes.ProfileXRechnung)
	d.ContractReferencedDocument = contract
	got = roundTrip(t, d)
	require.NotNil(t, got.ContractReferencedDocument)
	assert.Equal(t, "V876543210", got.ContractReferencedDocument.ID)
	assert.Nil(t, got.ContractReferencedDocument.IssueDate)
}

func TestAttachmentRoundTrip(t *testing.T) {
	data := make([]byte, 32768)
	for i := range data {
		data[i] = byte(i % 251)
	}

	d := sampleDescriptor(codes.ProfileXRechnung)
	d.AddAdditionalReferencedDocument(model.AdditionalReferencedDocument{
		IssuerAssignedID: "calculation-sheet",
		TypeCode:         codes.AdditionalReferencedDocumentTypeReferencePaper,
		Name:             "Aufschluesselung",
		Attachment:       data,
		Filename:         "aufschluesselung.pdf",
	})

	got := roundTrip(t, d)
	require.Len(t, got.AdditionalReferencedDocuments, 1)
	ref := got.AdditionalReferencedDocuments[0]
	assert.Equal(t, "calculation-sheet", ref.IssuerAssignedID)
	assert.Equal(t, "aufschluesselung.pdf", ref.Filename)
	assert.Equal(t, data, ref.Attachment)
}

func TestSaveProfileOverridesDescriptorProfile(t *testing.T) {
	d := sampleDescriptor(codes.ProfileExtended)
	d.Invoicee = &model.Party{Name: "Kunden AG Zentrale"}

	var buf bytes.Buffer
	require.NoError(t, SaveProfile(d, &buf, Version21, codes.ProfileMinimum))
	xml := buf.String()
	assert.Contains(t, xml, "urn:factur-x.eu:1p0:minimum")
	assert.NotContains(t, xml, "ram:InvoiceeTradeParty")
	assert.NotContains(t, xml, "ram:IncludedSupplyChainTradeLineItem")

	// The descriptor keeps its own profile.
	assert.Equal(t, codes.ProfileExtended, d.Profile)

	got, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, codes.ProfileMinimum, got.Profile)
}

func TestSaveProfileUnknownFallsBackToDescriptor(t *testing.T) {
	d := sampleDescriptor(codes.ProfileComfort)

	var plain, fallback bytes.Buffer
	require.NoError(t, Save(d, &plain, Version21))
	require.NoError(t, SaveProfile(d, &fallback, Version21, codes.ProfileUnknown))
	assert.Equal(t, plain.String(), fallback.String())
}

func TestNoteContentCodeRoundTrip(t *testing.T) {
	d := sampleDescriptor(codes.ProfileExtended)
	d.Notes[0].ContentCode = codes.ContentEEV

	got := roundTrip(t, d)
	require.Len(t, got.Notes, 2)
	assert.Equal(t, codes.ContentEEV, got.Notes[0].ContentCode)
	assert.Equal(t, codes.ContentUnknown, got.Notes[1].ContentCode)
}

func TestOrderReferenceCarriedInMinimum(t *testing.T) {
	d := sampleDescriptor(codes.ProfileMinimum)

	var buf bytes.Buffer
	require.NoError(t, Save(d, &buf, Version21))
	assert.Contains(t, buf.String(), "ram:BuyerOrderReferencedDocument")

	got, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, "B123456789", got.OrderNo)
}

func TestMinimumProfileOmitsDetail(t *testing.T) {
	d := sampleDescriptor(codes.ProfileMinimum)
	var buf bytes.Buffer
	require.NoError(t, Save(d, &buf, Version21))
	xml := buf.String()

	assert.NotContains(t, xml, "ram:IncludedSupplyChainTradeLineItem")
	assert.NotContains(t, xml, "ram:LineTotalAmount")
	assert.NotContains(t, xml, "ram:IncludedNote")
	assert.NotContains(t, xml, "ram:BuyerReference")
	assert.NotContains(t, xml, "ram:SpecifiedTradeSettlementPaymentMeans")
	assert.Contains(t, xml, "ram:TaxBasisTotalAmount")
	assert.Contains(t, xml, "ram:GrandTotalAmount")
	assert.Contains(t, xml, "ram:DuePayableAmount")
	assert.Contains(t, xml, "urn:factur-x.eu:1p0:minimum")
}

func TestWriteRequiresProfile(t *testing.T) {
	d := sampleDescriptor(codes.ProfileUnknown)
	var buf bytes.Buffer
	err := Save(d, &buf, Version21)
	require.Error(t, err)
	var perr *model.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "profile", perr.Field)
}

func TestWriteIsDeterministic(t *testing.T) {
	d := sampleDescriptor(codes.ProfileExtended)

	var first, second bytes.Buffer
	require.NoError(t, Save(d, &first, Version21))
	require.NoError(t, Save(d, &second, Version21))
	assert.Equal(t, first.String(), second.String())
}

func TestSaveRejectsUnknownVersion(t *testing.T) {
	d := sampleDescriptor(codes.ProfileComfort)
	var buf bytes.Buffer
	require.Error(t, Save(d, &buf, Version(99)))
}
