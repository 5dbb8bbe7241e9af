// Package facturx provides the public API for reading and writing
// ZUGFeRD / Factur-X invoices.
//
// Example usage:
//
//	f, _ := os.Open("invoice.xml")
//	inv, err := facturx.Load(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(inv.InvoiceNo, inv.GrandTotalAmount)
package facturx

import "github.com/rezonia/facturx/internal/model"

// Re-export core types for public API
type (
	InvoiceDescriptor            = model.InvoiceDescriptor
	TradeLineItem                = model.TradeLineItem
	Party                        = model.Party
	Contact                      = model.Contact
	GlobalID                     = model.GlobalID
	TaxRegistration              = model.TaxRegistration
	BankAccount                  = model.BankAccount
	Note                         = model.Note
	PaymentMeans                 = model.PaymentMeans
	PaymentTerms                 = model.PaymentTerms
	Tax                          = model.Tax
	TradeAllowanceCharge         = model.TradeAllowanceCharge
	ServiceCharge                = model.ServiceCharge
	AccountingAccount            = model.AccountingAccount
	AdditionalReferencedDocument = model.AdditionalReferencedDocument
	AssociatedDocument           = model.AssociatedDocument
	ProcuringProject             = model.ProcuringProject
)

// Re-export error types
type (
	SourceError = model.SourceError
	ParseError  = model.ParseError
)
