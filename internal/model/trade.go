package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/codes"
)

// Note is one free-text note of the document or of a line's associated document.
type Note struct {
	Content     string
	SubjectCode codes.SubjectCode
	ContentCode codes.ContentCode
}

// PaymentMeans describes how the invoice is to be settled. The model carries
// exactly one payment means block per document.
type PaymentMeans struct {
	TypeCode               codes.PaymentMeansType
	Information            string
	SEPACreditorIdentifier string
	SEPAMandateReference   string
}

// PaymentTerms carries the payment conditions and the due date.
type PaymentTerms struct {
	Description string
	DueDate     *time.Time
}

// Tax is one applicable trade tax entry at document level.
type Tax struct {
	BasisAmount         decimal.Decimal
	Percent             decimal.Decimal
	TypeCode            codes.TaxType
	CategoryCode        codes.TaxCategoryCode
	TaxAmount           decimal.Decimal
	ExemptionReasonCode codes.TaxExemptionReasonCode
	ExemptionReason     string
}

// TradeAllowanceCharge is a deduction or addition applied to a basis amount.
// IsAllowance is the logical negation of the wire-level ChargeIndicator.
type TradeAllowanceCharge struct {
	IsAllowance  bool
	Currency     codes.CurrencyCode
	BasisAmount  decimal.Decimal
	ActualAmount decimal.Decimal
	Reason       string
	TaxType      codes.TaxType
	TaxCategory  codes.TaxCategoryCode
	TaxPercent   decimal.Decimal
}

// ServiceCharge is a logistics service charge with its applied tax.
type ServiceCharge struct {
	Amount      decimal.Decimal
	Description string
	TaxType     codes.TaxType
	TaxCategory codes.TaxCategoryCode
	TaxPercent  decimal.Decimal
}

// AccountingAccount is a receivable accounting account reference.
type AccountingAccount struct {
	TradeAccountID       string
	TradeAccountTypeCode codes.AccountingAccountTypeCode
}

// BuyerOrderReferencedDocument references the buyer's order.
type BuyerOrderReferencedDocument struct {
	ID        string
	IssueDate *time.Time
}

// ContractReferencedDocument references the underlying contract.
type ContractReferencedDocument struct {
	ID        string
	IssueDate *time.Time
}

// InvoiceReferencedDocument references a preceding invoice.
type InvoiceReferencedDocument struct {
	ID        string
	IssueDate *time.Time
}

// DeliveryNoteReferencedDocument references a delivery note.
type DeliveryNoteReferencedDocument struct {
	ID        string
	IssueDate *time.Time
}

// AdditionalReferencedDocument is a supporting document reference, optionally
// carrying an embedded binary attachment.
type AdditionalReferencedDocument struct {
	IssuerAssignedID  string
	TypeCode          codes.AdditionalReferencedDocumentTypeCode
	ReferenceTypeCode codes.ReferenceTypeCode
	Name              string
	IssueDate         *time.Time
	Attachment        []byte
	Filename          string
}

// ProcuringProject is the project a contract reference belongs to.
type ProcuringProject struct {
	ID   string
	Name string
}

// AssociatedDocument is the free-text document associated with a trade line.
type AssociatedDocument struct {
	LineID string
	Notes  []Note
}
