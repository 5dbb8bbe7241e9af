package codes

import "strings"

// TaxType is the UNTDID 5153 duty/tax/fee type code.
type TaxType string

const (
	TaxTypeUnknown TaxType = ""

	TaxTypeVAT TaxType = "VAT" // value added tax
	TaxTypeGST TaxType = "GST" // goods and services tax
	TaxTypeENV TaxType = "ENV" // environmental tax
	TaxTypeEXC TaxType = "EXC" // excise duty
	TaxTypeFET TaxType = "FET" // federal excise tax
	TaxTypeLOC TaxType = "LOC" // local sales tax
	TaxTypeOTH TaxType = "OTH" // other taxes
	TaxTypeSTT TaxType = "STT" // state/provincial sales tax
)

var taxTypes = map[TaxType]struct{}{
	TaxTypeVAT: {}, TaxTypeGST: {}, TaxTypeENV: {}, TaxTypeEXC: {},
	TaxTypeFET: {}, TaxTypeLOC: {}, TaxTypeOTH: {}, TaxTypeSTT: {},
}

// TaxTypeFromString maps a UNTDID 5153 code to a TaxType.
func TaxTypeFromString(s string) TaxType {
	t := TaxType(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := taxTypes[t]; !ok {
		return TaxTypeUnknown
	}
	return t
}

func (t TaxType) String() string { return string(t) }

// TaxCategoryCode is the UNTDID 5305 tax category code.
type TaxCategoryCode string

const (
	TaxCategoryUnknown TaxCategoryCode = ""

	TaxCategoryS  TaxCategoryCode = "S"  // standard rate
	TaxCategoryZ  TaxCategoryCode = "Z"  // zero rated goods
	TaxCategoryE  TaxCategoryCode = "E"  // exempt from tax
	TaxCategoryAE TaxCategoryCode = "AE" // reverse charge
	TaxCategoryK  TaxCategoryCode = "K"  // intra-community supply
	TaxCategoryG  TaxCategoryCode = "G"  // free export, tax not charged
	TaxCategoryO  TaxCategoryCode = "O"  // outside scope of tax
	TaxCategoryL  TaxCategoryCode = "L"  // Canary Islands general indirect tax
	TaxCategoryM  TaxCategoryCode = "M"  // Ceuta and Melilla
	TaxCategoryAA TaxCategoryCode = "AA" // lower rate
	TaxCategoryB  TaxCategoryCode = "B"  // transferred VAT (Italy)
)

var taxCategoryCodes = map[TaxCategoryCode]struct{}{
	TaxCategoryS: {}, TaxCategoryZ: {}, TaxCategoryE: {}, TaxCategoryAE: {},
	TaxCategoryK: {}, TaxCategoryG: {}, TaxCategoryO: {}, TaxCategoryL: {},
	TaxCategoryM: {}, TaxCategoryAA: {}, TaxCategoryB: {},
}

// TaxCategoryFromString maps a UNTDID 5305 code to a TaxCategoryCode.
func TaxCategoryFromString(s string) TaxCategoryCode {
	c := TaxCategoryCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := taxCategoryCodes[c]; !ok {
		return TaxCategoryUnknown
	}
	return c
}

func (c TaxCategoryCode) String() string { return string(c) }

// TaxExemptionReasonCode is a CEF VATEX exemption reason code.
type TaxExemptionReasonCode string

const (
	TaxExemptionReasonUnknown TaxExemptionReasonCode = ""

	TaxExemptionVATEXEU132  TaxExemptionReasonCode = "VATEX-EU-132"
	TaxExemptionVATEXEU143  TaxExemptionReasonCode = "VATEX-EU-143"
	TaxExemptionVATEXEU148  TaxExemptionReasonCode = "VATEX-EU-148"
	TaxExemptionVATEXEU151  TaxExemptionReasonCode = "VATEX-EU-151"
	TaxExemptionVATEXEU79C  TaxExemptionReasonCode = "VATEX-EU-79-C"
	TaxExemptionVATEXEUAE   TaxExemptionReasonCode = "VATEX-EU-AE"
	TaxExemptionVATEXEUG    TaxExemptionReasonCode = "VATEX-EU-G"
	TaxExemptionVATEXEUIC   TaxExemptionReasonCode = "VATEX-EU-IC"
	TaxExemptionVATEXEUO    TaxExemptionReasonCode = "VATEX-EU-O"
)

var taxExemptionReasonCodes = map[TaxExemptionReasonCode]struct{}{
	TaxExemptionVATEXEU132: {}, TaxExemptionVATEXEU143: {},
	TaxExemptionVATEXEU148: {}, TaxExemptionVATEXEU151: {},
	TaxExemptionVATEXEU79C: {}, TaxExemptionVATEXEUAE: {},
	TaxExemptionVATEXEUG: {}, TaxExemptionVATEXEUIC: {}, TaxExemptionVATEXEUO: {},
}

// TaxExemptionReasonFromString maps a VATEX code to a TaxExemptionReasonCode.
func TaxExemptionReasonFromString(s string) TaxExemptionReasonCode {
	c := TaxExemptionReasonCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := taxExemptionReasonCodes[c]; !ok {
		return TaxExemptionReasonUnknown
	}
	return c
}

func (c TaxExemptionReasonCode) String() string { return string(c) }

// TaxRegistrationSchemeID identifies the scheme of a party tax registration
// (VA = VAT number, FC = fiscal/tax number).
type TaxRegistrationSchemeID string

const (
	TaxRegistrationSchemeUnknown TaxRegistrationSchemeID = ""
	TaxRegistrationSchemeVA      TaxRegistrationSchemeID = "VA"
	TaxRegistrationSchemeFC      TaxRegistrationSchemeID = "FC"
)

var taxRegistrationSchemeIDs = map[TaxRegistrationSchemeID]struct{}{
	TaxRegistrationSchemeVA: {},
	TaxRegistrationSchemeFC: {},
}

// TaxRegistrationSchemeFromString maps a scheme identifier to a TaxRegistrationSchemeID.
func TaxRegistrationSchemeFromString(s string) TaxRegistrationSchemeID {
	c := TaxRegistrationSchemeID(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := taxRegistrationSchemeIDs[c]; !ok {
		return TaxRegistrationSchemeUnknown
	}
	return c
}

func (c TaxRegistrationSchemeID) String() string { return string(c) }
