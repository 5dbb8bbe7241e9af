package codes

// Profile identifies the Factur-X / ZUGFeRD conformance level a document claims.
type Profile int

const (
	ProfileUnknown Profile = iota
	ProfileMinimum
	ProfileBasicWL
	ProfileBasic
	ProfileComfort // EN 16931 comfort profile
	ProfileExtended
	ProfileXRechnung1
	ProfileXRechnung
)

// Guideline URNs as they appear in ram:GuidelineSpecifiedDocumentContextParameter/ram:ID.
const (
	urnMinimum    = "urn:factur-x.eu:1p0:minimum"
	urnBasicWL    = "urn:factur-x.eu:1p0:basicwl"
	urnBasic      = "urn:cen.eu:en16931:2017#compliant#urn:factur-x.eu:1p0:basic"
	urnComfort    = "urn:cen.eu:en16931:2017"
	urnExtended   = "urn:cen.eu:en16931:2017#conformant#urn:factur-x.eu:1p0:extended"
	urnXRechnung1 = "urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_1.2"
	urnXRechnung  = "urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_2.0"
)

var profileByURN = map[string]Profile{
	urnMinimum:    ProfileMinimum,
	urnBasicWL:    ProfileBasicWL,
	urnBasic:      ProfileBasic,
	urnComfort:    ProfileComfort,
	urnExtended:   ProfileExtended,
	urnXRechnung1: ProfileXRechnung1,
	urnXRechnung:  ProfileXRechnung,
}

// ProfileFromString maps a guideline URN to a Profile. Unrecognized URNs
// yield ProfileUnknown.
func ProfileFromString(s string) Profile {
	if p, ok := profileByURN[s]; ok {
		return p
	}
	return ProfileUnknown
}

// URN returns the guideline identifier written to the document context.
func (p Profile) URN() string {
	switch p {
	case ProfileMinimum:
		return urnMinimum
	case ProfileBasicWL:
		return urnBasicWL
	case ProfileBasic:
		return urnBasic
	case ProfileComfort:
		return urnComfort
	case ProfileExtended:
		return urnExtended
	case ProfileXRechnung1:
		return urnXRechnung1
	case ProfileXRechnung:
		return urnXRechnung
	default:
		return ""
	}
}

func (p Profile) String() string {
	switch p {
	case ProfileMinimum:
		return "MINIMUM"
	case ProfileBasicWL:
		return "BASIC WL"
	case ProfileBasic:
		return "BASIC"
	case ProfileComfort:
		return "EN 16931"
	case ProfileExtended:
		return "EXTENDED"
	case ProfileXRechnung1:
		return "XRECHNUNG 1.2"
	case ProfileXRechnung:
		return "XRECHNUNG 2.0"
	default:
		return "UNKNOWN"
	}
}
