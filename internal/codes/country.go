package codes

import "strings"

// CountryCode is an ISO 3166-1 alpha-2 country code.
type CountryCode string

const (
	CountryUnknown CountryCode = ""

	CountryAT CountryCode = "AT"
	CountryBE CountryCode = "BE"
	CountryBG CountryCode = "BG"
	CountryCH CountryCode = "CH"
	CountryCY CountryCode = "CY"
	CountryCZ CountryCode = "CZ"
	CountryDE CountryCode = "DE"
	CountryDK CountryCode = "DK"
	CountryEE CountryCode = "EE"
	CountryES CountryCode = "ES"
	CountryFI CountryCode = "FI"
	CountryFR CountryCode = "FR"
	CountryGB CountryCode = "GB"
	CountryGR CountryCode = "GR"
	CountryHR CountryCode = "HR"
	CountryHU CountryCode = "HU"
	CountryIE CountryCode = "IE"
	CountryIT CountryCode = "IT"
	CountryLI CountryCode = "LI"
	CountryLT CountryCode = "LT"
	CountryLU CountryCode = "LU"
	CountryLV CountryCode = "LV"
	CountryMT CountryCode = "MT"
	CountryNL CountryCode = "NL"
	CountryNO CountryCode = "NO"
	CountryPL CountryCode = "PL"
	CountryPT CountryCode = "PT"
	CountryRO CountryCode = "RO"
	CountrySE CountryCode = "SE"
	CountrySI CountryCode = "SI"
	CountrySK CountryCode = "SK"
	CountryUS CountryCode = "US"
)

var countryCodes = map[CountryCode]struct{}{
	CountryAT: {}, CountryBE: {}, CountryBG: {}, CountryCH: {}, CountryCY: {},
	CountryCZ: {}, CountryDE: {}, CountryDK: {}, CountryEE: {}, CountryES: {},
	CountryFI: {}, CountryFR: {}, CountryGB: {}, CountryGR: {}, CountryHR: {},
	CountryHU: {}, CountryIE: {}, CountryIT: {}, CountryLI: {}, CountryLT: {},
	CountryLU: {}, CountryLV: {}, CountryMT: {}, CountryNL: {}, CountryNO: {},
	CountryPL: {}, CountryPT: {}, CountryRO: {}, CountrySE: {}, CountrySI: {},
	CountrySK: {}, CountryUS: {},
}

// CountryFromString maps an ISO 3166-1 alpha-2 code to a CountryCode.
func CountryFromString(s string) CountryCode {
	c := CountryCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := countryCodes[c]; !ok {
		return CountryUnknown
	}
	return c
}

func (c CountryCode) String() string { return string(c) }
