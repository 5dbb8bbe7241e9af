package model

import "github.com/rezonia/facturx/internal/codes"

// GlobalID is a globally unique identifier qualified by its issuing scheme.
type GlobalID struct {
	SchemeID string
	ID       string
}

// TaxRegistration is one tax registration of a party (id plus scheme, e.g. a
// VAT number under scheme VA).
type TaxRegistration struct {
	No       string
	SchemeID codes.TaxRegistrationSchemeID
}

// Party is a trade party: seller, buyer, ship-to/from, invoicee or payee.
type Party struct {
	ID          string
	GlobalID    GlobalID
	Name        string
	ContactName string
	Street      string
	Postcode    string
	City        string
	Country     codes.CountryCode

	// Ordered; a party may carry several registrations under different schemes.
	TaxRegistrations []TaxRegistration
}

// AddTaxRegistration appends a tax registration, preserving order.
func (p *Party) AddTaxRegistration(no string, scheme codes.TaxRegistrationSchemeID) {
	p.TaxRegistrations = append(p.TaxRegistrations, TaxRegistration{No: no, SchemeID: scheme})
}

// Contact is the optional contact block of a party. A nil *Contact means the
// defining element was absent from the source, which is distinct from an
// empty contact.
type Contact struct {
	Name         string
	OrgUnit      string
	PhoneNo      string
	FaxNo        string
	EmailAddress string
}

// BankAccount identifies a creditor or debitor financial account together
// with its institution.
type BankAccount struct {
	ID           string
	IBAN         string
	BIC          string
	Bankleitzahl string // German national bank code
	BankName     string
	Name         string // account holder
}
