package codes

import "strings"

// SubjectCode is the UNTDID 4451 text subject qualifier of a free-text note.
type SubjectCode string

const (
	SubjectUnknown SubjectCode = ""

	SubjectGeneralInformation  SubjectCode = "AAI"
	SubjectSalesConditions     SubjectCode = "AAJ"
	SubjectPriceConditions     SubjectCode = "AAK"
	SubjectAdditionalInfo      SubjectCode = "ACB"
	SubjectNote                SubjectCode = "ADU"
	SubjectPaymentInformation  SubjectCode = "PMT"
	SubjectRegulatoryInfo      SubjectCode = "REG"
	SubjectSupplierRemarks     SubjectCode = "SUR"
	SubjectTaxDeclaration      SubjectCode = "TXD"
)

var subjectCodes = map[SubjectCode]struct{}{
	SubjectGeneralInformation: {}, SubjectSalesConditions: {},
	SubjectPriceConditions: {}, SubjectAdditionalInfo: {}, SubjectNote: {},
	SubjectPaymentInformation: {}, SubjectRegulatoryInfo: {},
	SubjectSupplierRemarks: {}, SubjectTaxDeclaration: {},
}

// SubjectFromString maps a UNTDID 4451 code to a SubjectCode.
func SubjectFromString(s string) SubjectCode {
	c := SubjectCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := subjectCodes[c]; !ok {
		return SubjectUnknown
	}
	return c
}

func (c SubjectCode) String() string { return string(c) }

// ContentCode classifies standardized note content.
type ContentCode string

const (
	ContentUnknown ContentCode = ""

	ContentEEV ContentCode = "EEV"
	ContentWEV ContentCode = "WEV"
	ContentST1 ContentCode = "ST1"
	ContentST2 ContentCode = "ST2"
	ContentST3 ContentCode = "ST3"
)

var contentCodes = map[ContentCode]struct{}{
	ContentEEV: {}, ContentWEV: {}, ContentST1: {}, ContentST2: {}, ContentST3: {},
}

// ContentFromString maps a content classifier to a ContentCode.
func ContentFromString(s string) ContentCode {
	c := ContentCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := contentCodes[c]; !ok {
		return ContentUnknown
	}
	return c
}

func (c ContentCode) String() string { return string(c) }
