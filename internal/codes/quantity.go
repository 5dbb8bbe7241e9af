package codes

import "strings"

// QuantityCode is a UN/ECE Recommendation 20 unit of measure code.
type QuantityCode string

const (
	QuantityUnknown QuantityCode = ""

	QuantityPiece        QuantityCode = "C62" // unit / piece
	QuantityDay          QuantityCode = "DAY"
	QuantityHectare      QuantityCode = "HAR"
	QuantityHour         QuantityCode = "HUR"
	QuantityKilogram     QuantityCode = "KGM"
	QuantityKilometre    QuantityCode = "KTM"
	QuantityKilowattHour QuantityCode = "KWH"
	QuantityLumpSum      QuantityCode = "LS"
	QuantityLitre        QuantityCode = "LTR"
	QuantityMinute       QuantityCode = "MIN"
	QuantitySquareMM     QuantityCode = "MMK"
	QuantityMillimetre   QuantityCode = "MMT"
	QuantityMonth        QuantityCode = "MON"
	QuantitySquareMetre  QuantityCode = "MTK"
	QuantityCubicMetre   QuantityCode = "MTQ"
	QuantityMetre        QuantityCode = "MTR"
	QuantityNumber       QuantityCode = "NAR" // number of articles
	QuantityPair         QuantityCode = "NPR"
	QuantityPercent      QuantityCode = "P1"
	QuantityItem         QuantityCode = "H87"
	QuantitySet          QuantityCode = "SET"
	QuantityTonne        QuantityCode = "TNE"
	QuantityWeek         QuantityCode = "WEE"
)

var quantityCodes = map[QuantityCode]struct{}{
	QuantityPiece: {}, QuantityDay: {}, QuantityHectare: {}, QuantityHour: {},
	QuantityKilogram: {}, QuantityKilometre: {}, QuantityKilowattHour: {},
	QuantityLumpSum: {}, QuantityLitre: {}, QuantityMinute: {},
	QuantitySquareMM: {}, QuantityMillimetre: {}, QuantityMonth: {},
	QuantitySquareMetre: {}, QuantityCubicMetre: {}, QuantityMetre: {},
	QuantityNumber: {}, QuantityPair: {}, QuantityPercent: {}, QuantityItem: {},
	QuantitySet: {}, QuantityTonne: {}, QuantityWeek: {},
}

// QuantityFromString maps a Rec 20 unit code to a QuantityCode.
func QuantityFromString(s string) QuantityCode {
	c := QuantityCode(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := quantityCodes[c]; !ok {
		return QuantityUnknown
	}
	return c
}

func (c QuantityCode) String() string { return string(c) }
