package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/codes"
)

// TradeLineItem is one invoice line.
type TradeLineItem struct {
	GlobalID         GlobalID
	SellerAssignedID string
	BuyerAssignedID  string
	Name             string
	Description      string

	UnitQuantity   *decimal.Decimal // basis quantity; nil when absent
	BilledQuantity decimal.Decimal
	UnitCode       codes.QuantityCode

	LineTotalAmount *decimal.Decimal
	NetUnitPrice    decimal.Decimal
	GrossUnitPrice  decimal.Decimal

	TaxCategoryCode codes.TaxCategoryCode
	TaxType         codes.TaxType
	TaxPercent      decimal.Decimal

	BuyerOrderReferencedDocument   *BuyerOrderReferencedDocument
	ContractReferencedDocument     *ContractReferencedDocument
	DeliveryNoteReferencedDocument *DeliveryNoteReferencedDocument
	AdditionalReferencedDocuments  []AdditionalReferencedDocument

	ActualDeliveryDate *time.Time
	AssociatedDocument *AssociatedDocument

	AllowanceCharges   []TradeAllowanceCharge
	AccountingAccounts []AccountingAccount
}

// AddTradeAllowanceCharge appends a line-level allowance or charge under the
// gross price.
func (i *TradeLineItem) AddTradeAllowanceCharge(isAllowance bool, currency codes.CurrencyCode, basis, actual decimal.Decimal, reason string) {
	i.AllowanceCharges = append(i.AllowanceCharges, TradeAllowanceCharge{
		IsAllowance:  isAllowance,
		Currency:     currency,
		BasisAmount:  basis,
		ActualAmount: actual,
		Reason:       reason,
	})
}

// AddAdditionalReferencedDocument appends a line-level document reference.
func (i *TradeLineItem) AddAdditionalReferencedDocument(id string, date *time.Time, code codes.ReferenceTypeCode) {
	i.AdditionalReferencedDocuments = append(i.AdditionalReferencedDocuments, AdditionalReferencedDocument{
		IssuerAssignedID:  id,
		IssueDate:         date,
		ReferenceTypeCode: code,
	})
}

// AddReceivableAccountingAccount appends a line-level accounting account reference.
func (i *TradeLineItem) AddReceivableAccountingAccount(id string, typeCode codes.AccountingAccountTypeCode) {
	i.AccountingAccounts = append(i.AccountingAccounts, AccountingAccount{
		TradeAccountID:       id,
		TradeAccountTypeCode: typeCode,
	})
}
