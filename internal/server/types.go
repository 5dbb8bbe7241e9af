package server

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/model"
)

// InvoiceSummary is the condensed view returned next to the full invoice.
type InvoiceSummary struct {
	InvoiceNo  string          `json:"invoice_no"`
	Profile    string          `json:"profile"`
	Seller     string          `json:"seller,omitempty"`
	Buyer      string          `json:"buyer,omitempty"`
	Currency   string          `json:"currency,omitempty"`
	LineCount  int             `json:"line_count"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	DuePayable decimal.Decimal `json:"due_payable"`
}

// ParseResponse is the response for parse endpoints
type ParseResponse struct {
	Invoice    *model.InvoiceDescriptor `json:"invoice"`
	Summary    InvoiceSummary           `json:"summary"`
	Attachment string                   `json:"attachment,omitempty"`
}

// DetectResponse is the response for the detect endpoint
type DetectResponse struct {
	Version string `json:"version"`
	Profile string `json:"profile,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func summarize(d *model.InvoiceDescriptor) InvoiceSummary {
	s := InvoiceSummary{
		InvoiceNo:  d.InvoiceNo,
		Profile:    d.Profile.String(),
		Currency:   d.Currency.String(),
		LineCount:  len(d.LineItems),
		GrandTotal: d.GrandTotalAmount,
		DuePayable: d.DuePayableAmount,
	}
	if d.Seller != nil {
		s.Seller = d.Seller.Name
	}
	if d.Buyer != nil {
		s.Buyer = d.Buyer.Name
	}
	return s
}
