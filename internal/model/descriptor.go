// Package model holds the profile-agnostic invoice entity graph. An
// InvoiceDescriptor exclusively owns every nested entity; ordered slices
// round-trip in source order.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/codes"
)

// InvoiceDescriptor is the root of one invoice document, independent of any
// XML representation. It is created empty (builder use) or by a reader, and
// is treated as immutable for the duration of a single save.
type InvoiceDescriptor struct {
	IsTest      bool
	Profile     codes.Profile
	Type        codes.InvoiceType
	InvoiceNo   string
	InvoiceDate *time.Time

	Notes            []Note
	ReferenceOrderNo string // buyer reference

	Seller        *Party
	SellerContact *Contact
	Buyer         *Party
	BuyerContact  *Contact
	ShipTo        *Party
	ShipFrom      *Party
	Invoicee      *Party
	Payee         *Party

	ActualDeliveryDate             *time.Time
	DeliveryNoteReferencedDocument *DeliveryNoteReferencedDocument

	PaymentReference string
	Currency         codes.CurrencyCode
	PaymentMeans     *PaymentMeans
	PaymentTerms     *PaymentTerms

	BillingPeriodStart *time.Time
	BillingPeriodEnd   *time.Time

	CreditorBankAccounts []BankAccount
	DebitorBankAccounts  []BankAccount

	Taxes            []Tax
	AllowanceCharges []TradeAllowanceCharge
	ServiceCharges   []ServiceCharge

	InvoiceReferencedDocument     *InvoiceReferencedDocument
	ContractReferencedDocument    *ContractReferencedDocument
	SpecifiedProcuringProject     *ProcuringProject
	AdditionalReferencedDocuments []AdditionalReferencedDocument

	OrderNo   string
	OrderDate *time.Time

	AccountingAccounts []AccountingAccount

	LineItems []TradeLineItem

	// Totals. Pointer-typed amounts distinguish "absent in source" from zero.
	LineTotalAmount      decimal.Decimal
	ChargeTotalAmount    *decimal.Decimal
	AllowanceTotalAmount *decimal.Decimal
	TaxBasisAmount       *decimal.Decimal
	TaxTotalAmount       decimal.Decimal
	GrandTotalAmount     decimal.Decimal
	RoundingAmount       decimal.Decimal
	TotalPrepaidAmount   *decimal.Decimal
	DuePayableAmount     decimal.Decimal
}

// AddNote appends a free-text note, preserving order.
func (d *InvoiceDescriptor) AddNote(content string, subject codes.SubjectCode) {
	d.Notes = append(d.Notes, Note{Content: content, SubjectCode: subject})
}

// AddSellerTaxRegistration records a tax registration on the seller party.
func (d *InvoiceDescriptor) AddSellerTaxRegistration(no string, scheme codes.TaxRegistrationSchemeID) {
	if d.Seller == nil {
		d.Seller = &Party{}
	}
	d.Seller.AddTaxRegistration(no, scheme)
}

// AddBuyerTaxRegistration records a tax registration on the buyer party.
func (d *InvoiceDescriptor) AddBuyerTaxRegistration(no string, scheme codes.TaxRegistrationSchemeID) {
	if d.Buyer == nil {
		d.Buyer = &Party{}
	}
	d.Buyer.AddTaxRegistration(no, scheme)
}

// AddApplicableTradeTax appends a document-level tax entry. The calculated
// tax amount is left at zero; deriving it is the producer's responsibility.
func (d *InvoiceDescriptor) AddApplicableTradeTax(basis, percent decimal.Decimal, typeCode codes.TaxType, category codes.TaxCategoryCode, exemptionCode codes.TaxExemptionReasonCode, exemptionReason string) {
	d.Taxes = append(d.Taxes, Tax{
		BasisAmount:         basis,
		Percent:             percent,
		TypeCode:            typeCode,
		CategoryCode:        category,
		ExemptionReasonCode: exemptionCode,
		ExemptionReason:     exemptionReason,
	})
}

// AddTradeAllowanceCharge appends a document-level allowance (isAllowance
// true) or charge (isAllowance false).
func (d *InvoiceDescriptor) AddTradeAllowanceCharge(isAllowance bool, basis decimal.Decimal, currency codes.CurrencyCode, actual decimal.Decimal, reason string, taxType codes.TaxType, taxCategory codes.TaxCategoryCode, taxPercent decimal.Decimal) {
	d.AllowanceCharges = append(d.AllowanceCharges, TradeAllowanceCharge{
		IsAllowance:  isAllowance,
		Currency:     currency,
		BasisAmount:  basis,
		ActualAmount: actual,
		Reason:       reason,
		TaxType:      taxType,
		TaxCategory:  taxCategory,
		TaxPercent:   taxPercent,
	})
}

// AddLogisticsServiceCharge appends a logistics service charge.
func (d *InvoiceDescriptor) AddLogisticsServiceCharge(amount decimal.Decimal, description string, taxType codes.TaxType, taxCategory codes.TaxCategoryCode, taxPercent decimal.Decimal) {
	d.ServiceCharges = append(d.ServiceCharges, ServiceCharge{
		Amount:      amount,
		Description: description,
		TaxType:     taxType,
		TaxCategory: taxCategory,
		TaxPercent:  taxPercent,
	})
}

// AddAdditionalReferencedDocument appends a header-level supporting document.
func (d *InvoiceDescriptor) AddAdditionalReferencedDocument(doc AdditionalReferencedDocument) {
	d.AdditionalReferencedDocuments = append(d.AdditionalReferencedDocuments, doc)
}

// AddReceivableAccountingAccount appends an accounting account reference.
func (d *InvoiceDescriptor) AddReceivableAccountingAccount(id string, typeCode codes.AccountingAccountTypeCode) {
	d.AccountingAccounts = append(d.AccountingAccounts, AccountingAccount{
		TradeAccountID:       id,
		TradeAccountTypeCode: typeCode,
	})
}

// AddCreditorBankAccount appends a payee-side bank account.
func (d *InvoiceDescriptor) AddCreditorBankAccount(a BankAccount) {
	d.CreditorBankAccounts = append(d.CreditorBankAccounts, a)
}

// AddDebitorBankAccount appends a payer-side bank account.
func (d *InvoiceDescriptor) AddDebitorBankAccount(a BankAccount) {
	d.DebitorBankAccounts = append(d.DebitorBankAccounts, a)
}

// AddTradeLineItem appends a line item, preserving document order.
func (d *InvoiceDescriptor) AddTradeLineItem(item TradeLineItem) {
	d.LineItems = append(d.LineItems, item)
}

// SetTotals sets the monetary summation in one call. Producers are expected
// to keep grandTotal = taxBasis + taxTotal + rounding and
// taxBasis = lineTotal - allowanceTotal + chargeTotal; the codec does not
// enforce either.
func (d *InvoiceDescriptor) SetTotals(lineTotal, chargeTotal, allowanceTotal, taxBasis, taxTotal, grandTotal, prepaid, duePayable, rounding decimal.Decimal) {
	d.LineTotalAmount = lineTotal
	d.ChargeTotalAmount = &chargeTotal
	d.AllowanceTotalAmount = &allowanceTotal
	d.TaxBasisAmount = &taxBasis
	d.TaxTotalAmount = taxTotal
	d.GrandTotalAmount = grandTotal
	d.TotalPrepaidAmount = &prepaid
	d.DuePayableAmount = duePayable
	d.RoundingAmount = rounding
}
