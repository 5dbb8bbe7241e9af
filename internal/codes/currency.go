package codes

import "strings"

// CurrencyCode is an ISO 4217 alpha currency code.
type CurrencyCode string

const (
	CurrencyUnknown CurrencyCode = ""

	CurrencyAUD CurrencyCode = "AUD"
	CurrencyBGN CurrencyCode = "BGN"
	CurrencyBRL CurrencyCode = "BRL"
	CurrencyCAD CurrencyCode = "CAD"
	CurrencyCHF CurrencyCode = "CHF"
	CurrencyCNY CurrencyCode = "CNY"
	CurrencyCZK CurrencyCode = "CZK"
	CurrencyDKK CurrencyCode = "DKK"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyHKD CurrencyCode = "HKD"
	CurrencyHRK CurrencyCode = "HRK"
	CurrencyHUF CurrencyCode = "HUF"
	CurrencyINR CurrencyCode = "INR"
	CurrencyISK CurrencyCode = "ISK"
	CurrencyJPY CurrencyCode = "JPY"
	CurrencyKRW CurrencyCode = "KRW"
	CurrencyMXN CurrencyCode = "MXN"
	CurrencyNOK CurrencyCode = "NOK"
	CurrencyNZD CurrencyCode = "NZD"
	CurrencyPLN CurrencyCode = "PLN"
	CurrencyRON CurrencyCode = "RON"
	CurrencyRUB CurrencyCode = "RUB"
	CurrencySEK CurrencyCode = "SEK"
	CurrencySGD CurrencyCode = "SGD"
	CurrencyTHB CurrencyCode = "THB"
	CurrencyTRY CurrencyCode = "TRY"
	CurrencyUAH CurrencyCode = "UAH"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyVND CurrencyCode = "VND"
	CurrencyZAR CurrencyCode = "ZAR"
)

var currencyCodes = map[CurrencyCode]struct{}{
	CurrencyAUD: {}, CurrencyBGN: {}, CurrencyBRL: {}, CurrencyCAD: {},
	CurrencyCHF: {}, CurrencyCNY: {}, CurrencyCZK: {}, CurrencyDKK: {},
	CurrencyEUR: {}, CurrencyGBP: {}, CurrencyHKD: {}, CurrencyHRK: {},
	CurrencyHUF: {}, CurrencyINR: {}, CurrencyISK: {}, CurrencyJPY: {},
	CurrencyKRW: {}, CurrencyMXN: {}, CurrencyNOK: {}, CurrencyNZD: {},
	CurrencyPLN: {}, CurrencyRON: {}, CurrencyRUB: {}, CurrencySEK: {},
	CurrencySGD: {}, CurrencyTHB: {}, CurrencyTRY: {}, CurrencyUAH: {},
	CurrencyUSD: {}, CurrencyVND: {}, CurrencyZAR: {},
}

// CurrencyFromString maps an ISO 4217 code to a CurrencyCode.
func CurrencyFromString(s string) CurrencyCode {
	c := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := currencyCodes[c]; !ok {
		return CurrencyUnknown
	}
	return c
}

func (c CurrencyCode) String() string { return string(c) }
