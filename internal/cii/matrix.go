package cii

import "github.com/rezonia/facturx/internal/codes"

// Disposition states how the writer treats an optional document section for
// a given (version, profile) pair.
type Disposition int

const (
	// EmitIfPopulated writes the section when the model carries data for it.
	EmitIfPopulated Disposition = iota
	// Suppress omits the section even when populated.
	Suppress
)

// Section enumerates the optional document sections gated by profile.
type Section int

const (
	SectionNotes Section = iota
	SectionBuyerReference
	SectionSellerContact
	SectionBuyerContact
	SectionAdditionalReferencedDocuments
	SectionDelivery
	SectionInvoicee
	SectionPayee
	SectionPaymentMeans
	SectionBillingPeriod
	SectionTaxes
	SectionAllowanceCharges
	SectionServiceCharges
	SectionPaymentTerms
	SectionInvoiceReference
	SectionAccountingAccounts
	SectionOrderReference
	SectionContractReference
	SectionContractIssueDate
	SectionRounding
	SectionLineItems
	SectionDetailedTotals
)

func onlyIn(profiles ...codes.Profile) map[codes.Profile]Disposition {
	m := map[codes.Profile]Disposition{}
	for p := codes.ProfileMinimum; p <= codes.ProfileXRechnung; p++ {
		m[p] = Suppress
	}
	for _, p := range profiles {
		m[p] = EmitIfPopulated
	}
	return m
}

func notIn(profiles ...codes.Profile) map[codes.Profile]Disposition {
	m := map[codes.Profile]Disposition{}
	for _, p := range profiles {
		m[p] = Suppress
	}
	return m
}

// matrix21 is the compatibility table for version 2.1. Sections absent from
// the table, or profiles absent from a section's row, default to
// EmitIfPopulated. This single table replaces per-field profile checks in
// both reader and writer.
var matrix21 = map[Section]map[codes.Profile]Disposition{
	SectionNotes:          notIn(codes.ProfileMinimum),
	SectionBuyerReference: notIn(codes.ProfileMinimum),
	SectionSellerContact:  notIn(codes.ProfileMinimum, codes.ProfileBasicWL, codes.ProfileBasic),
	SectionBuyerContact:   notIn(codes.ProfileMinimum, codes.ProfileBasicWL, codes.ProfileBasic),
	SectionAdditionalReferencedDocuments: notIn(
		codes.ProfileMinimum, codes.ProfileBasicWL, codes.ProfileBasic),
	SectionDelivery:           notIn(codes.ProfileMinimum),
	SectionInvoicee:           onlyIn(codes.ProfileExtended),
	SectionPayee:              notIn(codes.ProfileMinimum),
	SectionPaymentMeans:       notIn(codes.ProfileMinimum),
	SectionBillingPeriod:      notIn(codes.ProfileMinimum),
	SectionTaxes:              notIn(codes.ProfileMinimum),
	SectionAllowanceCharges:   notIn(codes.ProfileMinimum),
	SectionServiceCharges:     onlyIn(codes.ProfileExtended),
	SectionPaymentTerms:       notIn(codes.ProfileMinimum),
	SectionInvoiceReference:   notIn(codes.ProfileMinimum),
	SectionAccountingAccounts: notIn(codes.ProfileMinimum),
	// The buyer order reference is one of the few sections every profile
	// carries, the minimum profile included.
	SectionOrderReference:    notIn(),
	SectionContractReference: notIn(codes.ProfileMinimum),
	SectionContractIssueDate: notIn(
		codes.ProfileMinimum, codes.ProfileXRechnung1, codes.ProfileXRechnung),
	SectionRounding: onlyIn(
		codes.ProfileComfort, codes.ProfileExtended,
		codes.ProfileXRechnung1, codes.ProfileXRechnung),
	SectionLineItems:      notIn(codes.ProfileMinimum, codes.ProfileBasicWL),
	SectionDetailedTotals: notIn(codes.ProfileMinimum),
}

// DispositionFor looks up how a section is treated when writing under the
// given version and profile.
func DispositionFor(v Version, p codes.Profile, s Section) Disposition {
	if v != Version21 {
		return Suppress
	}
	if row, ok := matrix21[s]; ok {
		if d, ok := row[p]; ok {
			return d
		}
	}
	return EmitIfPopulated
}
