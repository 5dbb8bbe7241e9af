package codes

import (
	"strconv"
	"strings"
)

// ReferenceTypeCode is the UNTDID 1153 reference qualifier of a referenced document.
type ReferenceTypeCode string

const (
	ReferenceTypeUnknown ReferenceTypeCode = ""

	ReferenceTypeInvoice       ReferenceTypeCode = "IV"
	ReferenceTypeOrder         ReferenceTypeCode = "ON"
	ReferenceTypeContract      ReferenceTypeCode = "CT"
	ReferenceTypeDeliveryNote  ReferenceTypeCode = "DQ"
	ReferenceTypeSellerInvoice ReferenceTypeCode = "VN"
	ReferenceTypePriceList     ReferenceTypeCode = "PL"
	ReferenceTypeProjectNumber ReferenceTypeCode = "AEP"
)

var referenceTypeCodes = map[ReferenceTypeCode]struct{}{
	ReferenceTypeInvoice: {}, ReferenceTypeOrder: {}, ReferenceTypeContract: {},
	ReferenceTypeDeliveryNote: {}, ReferenceTypeSellerInvoice: {},
	ReferenceTypePriceList: {}, ReferenceTypeProjectNumber: {},
}

// ReferenceTypeFromString maps a UNTDID 1153 code to a ReferenceTypeCode.
func ReferenceTypeFromString(s string) ReferenceTypeCode {
	c := ReferenceTypeCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := referenceTypeCodes[c]; !ok {
		return ReferenceTypeUnknown
	}
	return c
}

func (c ReferenceTypeCode) String() string { return string(c) }

// AdditionalReferencedDocumentTypeCode is the UNTDID 1001 type code of an
// additional referenced document.
type AdditionalReferencedDocumentTypeCode int

const (
	AdditionalReferencedDocumentTypeUnknown        AdditionalReferencedDocumentTypeCode = 0
	AdditionalReferencedDocumentTypePricedTender   AdditionalReferencedDocumentTypeCode = 50
	AdditionalReferencedDocumentTypeDataSheet      AdditionalReferencedDocumentTypeCode = 130
	AdditionalReferencedDocumentTypeReferencePaper AdditionalReferencedDocumentTypeCode = 916
)

var additionalReferencedDocumentTypeCodes = map[AdditionalReferencedDocumentTypeCode]struct{}{
	AdditionalReferencedDocumentTypePricedTender:   {},
	AdditionalReferencedDocumentTypeDataSheet:      {},
	AdditionalReferencedDocumentTypeReferencePaper: {},
}

// AdditionalReferencedDocumentTypeFromString maps a numeric code to an
// AdditionalReferencedDocumentTypeCode.
func AdditionalReferencedDocumentTypeFromString(s string) AdditionalReferencedDocumentTypeCode {
	n, err := strconv.Atoi(s)
	if err != nil {
		return AdditionalReferencedDocumentTypeUnknown
	}
	t := AdditionalReferencedDocumentTypeCode(n)
	if _, ok := additionalReferencedDocumentTypeCodes[t]; !ok {
		return AdditionalReferencedDocumentTypeUnknown
	}
	return t
}

func (t AdditionalReferencedDocumentTypeCode) String() string {
	if t == AdditionalReferencedDocumentTypeUnknown {
		return ""
	}
	return strconv.Itoa(int(t))
}
