package codes

import "strconv"

// InvoiceType is the UNTDID 1001 document type code of the invoice.
type InvoiceType int

const (
	InvoiceTypeUnknown           InvoiceType = 0
	InvoiceTypePartial           InvoiceType = 326
	InvoiceTypeInvoice           InvoiceType = 380
	InvoiceTypeCreditNote        InvoiceType = 381
	InvoiceTypeDebitNote         InvoiceType = 383
	InvoiceTypeCorrection        InvoiceType = 384
	InvoiceTypePrepayment        InvoiceType = 386
	InvoiceTypeSelfBilled        InvoiceType = 389
	InvoiceTypeDebitNoteFinAdj   InvoiceType = 84
	InvoiceTypeCreditNoteFinAdj  InvoiceType = 83
	InvoiceTypeCancellation      InvoiceType = 457
	InvoiceTypeCorrectedInvoice  InvoiceType = 458
)

var invoiceTypes = map[InvoiceType]struct{}{
	InvoiceTypePartial:          {},
	InvoiceTypeInvoice:          {},
	InvoiceTypeCreditNote:       {},
	InvoiceTypeDebitNote:        {},
	InvoiceTypeCorrection:       {},
	InvoiceTypePrepayment:       {},
	InvoiceTypeSelfBilled:       {},
	InvoiceTypeDebitNoteFinAdj:  {},
	InvoiceTypeCreditNoteFinAdj: {},
	InvoiceTypeCancellation:     {},
	InvoiceTypeCorrectedInvoice: {},
}

// InvoiceTypeFromString maps a numeric type code to an InvoiceType.
func InvoiceTypeFromString(s string) InvoiceType {
	n, err := strconv.Atoi(s)
	if err != nil {
		return InvoiceTypeUnknown
	}
	t := InvoiceType(n)
	if _, ok := invoiceTypes[t]; !ok {
		return InvoiceTypeUnknown
	}
	return t
}

func (t InvoiceType) String() string {
	if t == InvoiceTypeUnknown {
		return ""
	}
	return strconv.Itoa(int(t))
}
