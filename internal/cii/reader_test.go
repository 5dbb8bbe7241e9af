package cii

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/model"
)

func loadFixture(t *testing.T, name string) *model.InvoiceDescriptor {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	d, err := LoadBytes(content)
	require.NoError(t, err)
	return d
}

func date(y int, m time.Month, day int) *time.Time {
	t := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestReadMinimum(t *testing.T) {
	d := loadFixture(t, "zugferd_21_minimum.xml")

	assert.Equal(t, codes.ProfileMinimum, d.Profile)
	assert.Equal(t, codes.InvoiceTypeInvoice, d.Type)
	assert.Equal(t, "471102", d.InvoiceNo)
	assert.Equal(t, *date(2020, time.March, 30), *d.InvoiceDate)
	assert.False(t, d.IsTest)

	require.NotNil(t, d.Seller)
	assert.Equal(t, "Lieferant GmbH", d.Seller.Name)
	assert.Equal(t, codes.CountryDE, d.Seller.Country)
	require.Len(t, d.Seller.TaxRegistrations, 1)
	assert.Equal(t, "DE123456789", d.Seller.TaxRegistrations[0].No)
	assert.Equal(t, codes.TaxRegistrationSchemeVA, d.Seller.TaxRegistrations[0].SchemeID)

	require.NotNil(t, d.Buyer)
	assert.Equal(t, "Kunden AG Mitte", d.Buyer.Name)

	assert.Empty(t, d.LineItems)
	assert.True(t, d.LineTotalAmount.IsZero())
	assert.Nil(t, d.ChargeTotalAmount)
	assert.Nil(t, d.AllowanceTotalAmount)
	require.NotNil(t, d.TaxBasisAmount)
	assert.True(t, d.TaxBasisAmount.Equal(decimal.NewFromFloat(198.0)))
	assert.True(t, d.TaxTotalAmount.Equal(decimal.NewFromFloat(37.62)))
	assert.True(t, d.GrandTotalAmount.Equal(decimal.NewFromFloat(235.62)))
	assert.True(t, d.DuePayableAmount.Equal(decimal.NewFromFloat(235.62)))
	assert.Equal(t, codes.CurrencyEUR, d.Currency)
}

func TestReadExtended(t *testing.T) {
	d := loadFixture(t, "zugferd_21_extended.xml")

	assert.Equal(t, codes.ProfileExtended, d.Profile)
	assert.Equal(t, "R87654321012345", d.InvoiceNo)
	assert.True(t, d.IsTest)
	assert.Equal(t, "04011000-12345-34", d.ReferenceOrderNo)

	require.Len(t, d.Notes, 2)
	assert.Equal(t, codes.SubjectPriceConditions, d.Notes[0].SubjectCode)
	assert.Equal(t, codes.SubjectSalesConditions, d.Notes[1].SubjectCode)

	require.NotNil(t, d.Seller)
	assert.Equal(t, "549910", d.Seller.ID)
	assert.Equal(t, "0088", d.Seller.GlobalID.SchemeID)
	assert.Equal(t, "4000001123452", d.Seller.GlobalID.ID)
	assert.Equal(t, "Lieferantenstrasse 20", d.Seller.Street)
	assert.Empty(t, d.Seller.ContactName)
	require.Len(t, d.Seller.TaxRegistrations, 2)
	assert.Equal(t, codes.TaxRegistrationSchemeFC, d.Seller.TaxRegistrations[0].SchemeID)
	assert.Equal(t, codes.TaxRegistrationSchemeVA, d.Seller.TaxRegistrations[1].SchemeID)

	require.NotNil(t, d.SellerContact)
	assert.Equal(t, "Max Mustermann", d.SellerContact.Name)
	assert.Equal(t, "Muster-Einkauf", d.SellerContact.OrgUnit)
	assert.Equal(t, "+49891234567", d.SellerContact.PhoneNo)
	assert.Equal(t, "Max@Mustermann.de", d.SellerContact.EmailAddress)
	assert.Nil(t, d.BuyerContact)

	// LineTwo present shifts LineOne into the contact name.
	require.NotNil(t, d.Buyer)
	assert.Equal(t, "Hans Muster", d.Buyer.ContactName)
	assert.Equal(t, "Kundenstrasse 15", d.Buyer.Street)

	require.NotNil(t, d.ShipTo)
	assert.Equal(t, "Kunden AG Ost", d.ShipTo.Name)
	assert.Equal(t, *date(2018, time.October, 3), *d.ActualDeliveryDate)
	require.NotNil(t, d.DeliveryNoteReferencedDocument)
	assert.Equal(t, "L87654321012345", d.DeliveryNoteReferencedDocument.ID)
	assert.Equal(t, *date(2018, time.October, 3), *d.DeliveryNoteReferencedDocument.IssueDate)

	require.NotNil(t, d.Invoicee)
	assert.Equal(t, "Kunden AG Zentrale", d.Invoicee.Name)

	assert.Equal(t, "B123456789", d.OrderNo)
	assert.Equal(t, *date(2018, time.October, 1), *d.OrderDate)
	require.NotNil(t, d.ContractReferencedDocument)
	assert.Equal(t, "V876543210", d.ContractReferencedDocument.ID)
	assert.Equal(t, *date(2018, time.September, 1), *d.ContractReferencedDocument.IssueDate)

	require.NotNil(t, d.PaymentMeans)
	assert.Equal(t, codes.PaymentMeansSEPACreditTransfer, d.PaymentMeans.TypeCode)
	assert.Equal(t, "Ueberweisung", d.PaymentMeans.Information)

	require.Len(t, d.CreditorBankAccounts, 2)
	assert.Equal(t, "DE02120300000000202051", d.CreditorBankAccounts[0].IBAN)
	assert.Equal(t, "BYLADEM1001", d.CreditorBankAccounts[0].BIC)
	assert.Equal(t, "Deutsche Kreditbank", d.CreditorBankAccounts[0].BankName)
	assert.Equal(t, "Lieferant GmbH", d.CreditorBankAccounts[0].Name)
	assert.Equal(t, "DE02500105170137075030", d.CreditorBankAccounts[1].IBAN)
	assert.Equal(t, "INGDDEFFXXX", d.CreditorBankAccounts[1].BIC)

	require.Len(t, d.Taxes, 2)
	assert.True(t, d.Taxes[0].BasisAmount.Equal(decimal.NewFromFloat(437.20)))
	assert.True(t, d.Taxes[0].Percent.Equal(decimal.NewFromFloat(19.0)))
	assert.Equal(t, codes.TaxTypeVAT, d.Taxes[0].TypeCode)
	assert.Equal(t, codes.TaxCategoryS, d.Taxes[0].CategoryCode)
	assert.True(t, d.Taxes[1].Percent.Equal(decimal.NewFromFloat(7.0)))

	require.Len(t, d.AllowanceCharges, 1)
	assert.True(t, d.AllowanceCharges[0].IsAllowance)
	assert.True(t, d.AllowanceCharges[0].ActualAmount.Equal(decimal.NewFromFloat(10.0)))
	assert.Equal(t, "Sondernachlass", d.AllowanceCharges[0].Reason)

	require.Len(t, d.ServiceCharges, 1)
	assert.Equal(t, "Versandkosten", d.ServiceCharges[0].Description)
	assert.True(t, d.ServiceCharges[0].Amount.Equal(decimal.NewFromFloat(5.80)))

	require.NotNil(t, d.PaymentTerms)
	assert.Equal(t, *date(2018, time.November, 4), *d.PaymentTerms.DueDate)

	require.Len(t, d.AccountingAccounts, 1)
	assert.Equal(t, "420", d.AccountingAccounts[0].TradeAccountID)

	require.Len(t, d.LineItems, 6)
	total := decimal.Zero
	for _, item := range d.LineItems {
		require.NotNil(t, item.LineTotalAmount)
		total = total.Add(*item.LineTotalAmount)
	}
	assert.True(t, total.Equal(decimal.NewFromFloat(457.20)), "line totals sum to %s", total)
	assert.True(t, d.LineTotalAmount.Equal(decimal.NewFromFloat(457.20)))

	first := d.LineItems[0]
	assert.Equal(t, "Trennblaetter A4", first.Name)
	assert.Equal(t, "TB100A4", first.SellerAssignedID)
	assert.Equal(t, "4012345001235", first.GlobalID.ID)
	assert.Equal(t, "0160", first.GlobalID.SchemeID)
	assert.Equal(t, codes.QuantityItem, first.UnitCode)
	assert.True(t, first.BilledQuantity.Equal(decimal.NewFromFloat(1.1)))
	assert.True(t, first.GrossUnitPrice.Equal(decimal.NewFromFloat(9.9)))
	assert.True(t, first.NetUnitPrice.Equal(decimal.NewFromFloat(9.0)))
	require.NotNil(t, first.UnitQuantity)
	assert.True(t, first.UnitQuantity.Equal(decimal.NewFromInt(1)))

	require.NotNil(t, first.BuyerOrderReferencedDocument)
	assert.Equal(t, "B123456789", first.BuyerOrderReferencedDocument.ID)
	assert.Equal(t, *date(2018, time.October, 1), *first.BuyerOrderReferencedDocument.IssueDate)

	require.Len(t, first.AllowanceCharges, 1)
	assert.True(t, first.AllowanceCharges[0].IsAllowance)
	assert.True(t, first.AllowanceCharges[0].ActualAmount.Equal(decimal.NewFromFloat(0.9)))
	assert.Equal(t, "Artikelrabatt", first.AllowanceCharges[0].Reason)

	require.NotNil(t, first.AssociatedDocument)
	assert.Equal(t, "1", first.AssociatedDocument.LineID)
	require.Len(t, first.AssociatedDocument.Notes, 1)

	require.Len(t, first.AccountingAccounts, 1)
	assert.Equal(t, "420", first.AccountingAccounts[0].TradeAccountID)
	assert.Equal(t, codes.AccountingAccountTypeCost, first.AccountingAccounts[0].TradeAccountTypeCode)

	require.NotNil(t, first.ActualDeliveryDate)
	assert.Equal(t, *date(2018, time.October, 3), *first.ActualDeliveryDate)

	require.NotNil(t, d.ChargeTotalAmount)
	assert.True(t, d.ChargeTotalAmount.Equal(decimal.NewFromFloat(5.80)))
	require.NotNil(t, d.AllowanceTotalAmount)
	assert.True(t, d.AllowanceTotalAmount.Equal(decimal.NewFromFloat(10.0)))
	require.NotNil(t, d.TotalPrepaidAmount)
	assert.True(t, d.TotalPrepaidAmount.IsZero())
	assert.True(t, d.GrandTotalAmount.Equal(decimal.NewFromFloat(537.56)))
}

func TestReadRejectsUnknownGuideline(t *testing.T) {
	_, err := LoadBytes([]byte(`<?xml version="1.0"?><invoice><id>1</id></invoice>`))
	require.Error(t, err)
	var perr *model.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "guideline", perr.Field)
}

func TestReadRejectsMalformedXML(t *testing.T) {
	_, err := LoadBytes([]byte("urn:factur-x.eu:1p0:minimum <unclosed"))
	require.Error(t, err)
	var perr *model.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "document", perr.Field)
}

func TestReadEmptyDocument(t *testing.T) {
	r := newReader21()
	_, err := r.Read(etree.NewDocument())
	require.Error(t, err)
}

func TestReadUnknownAccountingAccountType(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<rsm:CrossIndustryInvoice xmlns:rsm="urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100" xmlns:ram="urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100" xmlns:udt="urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100">
  <rsm:ExchangedDocumentContext>
    <ram:GuidelineSpecifiedDocumentContextParameter>
      <ram:ID>urn:factur-x.eu:1p0:minimum</ram:ID>
    </ram:GuidelineSpecifiedDocumentContextParameter>
  </rsm:ExchangedDocumentContext>
  <rsm:ExchangedDocument>
    <ram:ID>471102</ram:ID>
  </rsm:ExchangedDocument>
  <rsm:SupplyChainTradeTransaction>
    <ram:IncludedSupplyChainTradeLineItem>
      <ram:SpecifiedLineTradeSettlement>
        <ram:ReceivableSpecifiedTradeAccountingAccount>
          <ram:ID>421</ram:ID>
          <ram:TypeCode>9</ram:TypeCode>
        </ram:ReceivableSpecifiedTradeAccountingAccount>
      </ram:SpecifiedLineTradeSettlement>
    </ram:IncludedSupplyChainTradeLineItem>
    <ram:ApplicableHeaderTradeSettlement>
      <ram:ReceivableSpecifiedTradeAccountingAccount>
        <ram:ID>420</ram:ID>
        <ram:TypeCode>9</ram:TypeCode>
      </ram:ReceivableSpecifiedTradeAccountingAccount>
    </ram:ApplicableHeaderTradeSettlement>
  </rsm:SupplyChainTradeTransaction>
</rsm:CrossIndustryInvoice>`

	d, err := LoadBytes([]byte(doc))
	require.NoError(t, err)

	// 9 is not a recognized account type; the ID survives and the code
	// resolves to the unknown sentinel.
	require.Len(t, d.AccountingAccounts, 1)
	assert.Equal(t, "420", d.AccountingAccounts[0].TradeAccountID)
	assert.Equal(t, codes.AccountingAccountTypeUnknown, d.AccountingAccounts[0].TradeAccountTypeCode)

	require.Len(t, d.LineItems, 1)
	require.Len(t, d.LineItems[0].AccountingAccounts, 1)
	assert.Equal(t, "421", d.LineItems[0].AccountingAccounts[0].TradeAccountID)
	assert.Equal(t, codes.AccountingAccountTypeUnknown, d.LineItems[0].AccountingAccounts[0].TradeAccountTypeCode)
}

func TestBankAccountsSkippedOnUnequalSequences(t *testing.T) {
	const doc = `<?xml version="1.0" encoding="UTF-8"?>
<rsm:CrossIndustryInvoice xmlns:rsm="urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100" xmlns:ram="urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100" xmlns:udt="urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100">
  <rsm:ExchangedDocumentContext>
    <ram:GuidelineSpecifiedDocumentContextParameter>
      <ram:ID>urn:cen.eu:en16931:2017#conformant#urn:factur-x.eu:1p0:extended</ram:ID>
    </ram:GuidelineSpecifiedDocumentContextParameter>
  </rsm:ExchangedDocumentContext>
  <rsm:ExchangedDocument>
    <ram:ID>471102</ram:ID>
  </rsm:ExchangedDocument>
  <rsm:SupplyChainTradeTransaction>
    <ram:ApplicableHeaderTradeSettlement>
      <ram:SpecifiedTradeSettlementPaymentMeans>
        <ram:TypeCode>58</ram:TypeCode>
        <ram:PayeePartyCreditorFinancialAccount>
          <ram:IBANID>DE02120300000000202051</ram:IBANID>
        </ram:PayeePartyCreditorFinancialAccount>
        <ram:PayeePartyCreditorFinancialAccount>
          <ram:IBANID>DE02500105170137075030</ram:IBANID>
        </ram:PayeePartyCreditorFinancialAccount>
        <ram:PayeeSpecifiedCreditorFinancialInstitution>
          <ram:BICID>BYLADEM1001</ram:BICID>
        </ram:PayeeSpecifiedCreditorFinancialInstitution>
      </ram:SpecifiedTradeSettlementPaymentMeans>
    </ram:ApplicableHeaderTradeSettlement>
  </rsm:SupplyChainTradeTransaction>
</rsm:CrossIndustryInvoice>`

	d, err := LoadBytes([]byte(doc))
	require.NoError(t, err)

	// Two accounts against one institution: no guessed pairing, no accounts.
	assert.Empty(t, d.CreditorBankAccounts)
	assert.Empty(t, d.DebitorBankAccounts)
}
