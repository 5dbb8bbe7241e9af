package cii

import (
	"bytes"
	"encoding/base64"
	"time"

	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/model"
	"github.com/rezonia/facturx/internal/xmltree"
)

// guidelineURNs21 are the guideline identifiers a 2.1 document may claim.
var guidelineURNs21 = []string{
	"urn:factur-x.eu:1p0:basicwl",
	"urn:cen.eu:en16931:2017#compliant#urn:factur-x.eu:1p0:basic",
	"urn:cen.eu:en16931:2017#conformant#urn:factur-x.eu:1p0:extended",
	"urn:factur-x.eu:1p0:minimum",
	"urn:cen.eu:en16931:2017",
	"urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_1.2",
	"urn:cen.eu:en16931:2017#compliant#urn:xoev-de:kosit:standard:xrechnung_2.0",
}

// reader21 parses ZUGFeRD 2.1 / Factur-X 1.0 documents.
type reader21 struct{}

func newReader21() *reader21 {
	return &reader21{}
}

// Version returns the standard version this reader handles.
func (r *reader21) Version() Version {
	return Version21
}

// CanRead checks the raw content for any 2.1 guideline identifier.
func (r *reader21) CanRead(content []byte) bool {
	for _, urn := range guidelineURNs21 {
		if bytes.Contains(content, []byte(urn)) {
			return true
		}
	}
	return false
}

// Read populates an InvoiceDescriptor from a parsed document. Missing
// optional fields yield absent or default values; Read only fails on a
// structurally unusable tree.
func (r *reader21) Read(doc *etree.Document) (*model.InvoiceDescriptor, error) {
	root := doc.Root()
	if root == nil {
		return nil, model.NewParseError("document", "empty XML document", nil)
	}
	res := xmltree.NewResolver(doc, xmltree.CIINamespaces())

	d := &model.InvoiceDescriptor{
		IsTest:      res.Bool(root, "//rsm:ExchangedDocumentContext/ram:TestIndicator/udt:Indicator"),
		Profile:     codes.ProfileFromString(res.String(root, "//ram:GuidelineSpecifiedDocumentContextParameter/ram:ID")),
		Type:        codes.InvoiceTypeFromString(res.String(root, "//rsm:ExchangedDocument/ram:TypeCode")),
		InvoiceNo:   res.String(root, "//rsm:ExchangedDocument/ram:ID"),
		InvoiceDate: res.Date(root, "//rsm:ExchangedDocument/ram:IssueDateTime/udt:DateTimeString"),
	}

	for _, node := range res.FindAll(root, "//rsm:ExchangedDocument/ram:IncludedNote") {
		d.Notes = append(d.Notes, model.Note{
			ContentCode: codes.ContentFromString(res.String(node, ".//ram:ContentCode")),
			Content:     res.String(node, ".//ram:Content"),
			SubjectCode: codes.SubjectFromString(res.String(node, ".//ram:SubjectCode")),
		})
	}

	d.ReferenceOrderNo = res.String(root, "//ram:ApplicableHeaderTradeAgreement/ram:BuyerReference")

	d.Seller = r.parseParty(res, root, "//ram:ApplicableHeaderTradeAgreement/ram:SellerTradeParty")
	for _, node := range res.FindAll(root, "//ram:ApplicableHeaderTradeAgreement/ram:SellerTradeParty/ram:SpecifiedTaxRegistration") {
		d.AddSellerTaxRegistration(
			res.String(node, ".//ram:ID"),
			codes.TaxRegistrationSchemeFromString(res.String(node, ".//ram:ID/@schemeID")),
		)
	}
	d.SellerContact = r.parseContact(res, root, "//ram:SellerTradeParty/ram:DefinedTradeContact")

	d.Buyer = r.parseParty(res, root, "//ram:ApplicableHeaderTradeAgreement/ram:BuyerTradeParty")
	for _, node := range res.FindAll(root, "//ram:ApplicableHeaderTradeAgreement/ram:BuyerTradeParty/ram:SpecifiedTaxRegistration") {
		d.AddBuyerTaxRegistration(
			res.String(node, ".//ram:ID"),
			codes.TaxRegistrationSchemeFromString(res.String(node, ".//ram:ID/@schemeID")),
		)
	}
	d.BuyerContact = r.parseContact(res, root, "//ram:BuyerTradeParty/ram:DefinedTradeContact")

	for _, node := range res.FindAll(root, "//ram:ApplicableHeaderTradeAgreement/ram:AdditionalReferencedDocument") {
		ref := model.AdditionalReferencedDocument{
			IssuerAssignedID:  res.String(node, "ram:IssuerAssignedID"),
			TypeCode:          codes.AdditionalReferencedDocumentTypeFromString(res.String(node, "ram:TypeCode")),
			ReferenceTypeCode: codes.ReferenceTypeFromString(res.String(node, "ram:ReferenceTypeCode")),
			Name:              res.String(node, "ram:Name"),
			IssueDate:         r.formattedIssueDate(res, node, "ram:FormattedIssueDateTime"),
		}
		if att := res.Find(node, "ram:AttachmentBinaryObject"); att != nil {
			if data, err := base64.StdEncoding.DecodeString(res.String(node, "ram:AttachmentBinaryObject")); err == nil {
				ref.Attachment = data
				ref.Filename = att.SelectAttrValue("filename", "")
			}
		}
		d.AddAdditionalReferencedDocument(ref)
	}

	d.ShipTo = r.parseParty(res, root, "//ram:ApplicableHeaderTradeDelivery/ram:ShipToTradeParty")
	d.ShipFrom = r.parseParty(res, root, "//ram:ApplicableHeaderTradeDelivery/ram:ShipFromTradeParty")
	d.ActualDeliveryDate = res.Date(root, "//ram:ApplicableHeaderTradeDelivery/ram:ActualDeliverySupplyChainEvent/ram:OccurrenceDateTime/udt:DateTimeString")

	deliveryNoteNo := res.String(root, "//ram:ApplicableHeaderTradeDelivery/ram:DeliveryNoteReferencedDocument/ram:IssuerAssignedID")
	deliveryNoteDate := res.Date(root, "//ram:ApplicableHeaderTradeDelivery/ram:DeliveryNoteReferencedDocument/ram:IssueDateTime/udt:DateTimeString")
	if deliveryNoteDate == nil {
		deliveryNoteDate = res.Date(root, "//ram:ApplicableHeaderTradeDelivery/ram:DeliveryNoteReferencedDocument/ram:IssueDateTime")
	}
	if deliveryNoteDate != nil || deliveryNoteNo != "" {
		d.DeliveryNoteReferencedDocument = &model.DeliveryNoteReferencedDocument{
			ID:        deliveryNoteNo,
			IssueDate: deliveryNoteDate,
		}
	}

	d.Invoicee = r.parseParty(res, root, "//ram:ApplicableHeaderTradeSettlement/ram:InvoiceeTradeParty")
	d.Payee = r.parseParty(res, root, "//ram:ApplicableHeaderTradeSettlement/ram:PayeeTradeParty")

	d.PaymentReference = res.String(root, "//ram:ApplicableHeaderTradeSettlement/ram:PaymentReference")
	d.Currency = codes.CurrencyFromString(res.String(root, "//ram:ApplicableHeaderTradeSettlement/ram:InvoiceCurrencyCode"))

	// This version supports exactly one payment means block per document.
	if pm := res.Find(root, "//ram:ApplicableHeaderTradeSettlement/ram:SpecifiedTradeSettlementPaymentMeans"); pm != nil {
		d.PaymentMeans = &model.PaymentMeans{
			TypeCode:               codes.PaymentMeansFromString(res.String(pm, "ram:TypeCode")),
			Information:            res.String(pm, "ram:Information"),
			SEPACreditorIdentifier: res.String(pm, "ram:ID"),
			SEPAMandateReference:   res.String(pm, "ram:ID/@schemeAgencyID"),
		}
	}

	d.BillingPeriodStart = r.periodDate(res, root, "//ram:ApplicableHeaderTradeSettlement/ram:BillingSpecifiedPeriod/ram:StartDateTime")
	d.BillingPeriodEnd = r.periodDate(res, root, "//ram:ApplicableHeaderTradeSettlement/ram:BillingSpecifiedPeriod/ram:EndDateTime")

	r.parseBankAccounts(res, root, d)

	for _, node := range res.FindAll(root, "//ram:ApplicableHeaderTradeSettlement/ram:ApplicableTradeTax") {
		d.AddApplicableTradeTax(
			res.DecimalOrZero(node, ".//ram:BasisAmount"),
			res.DecimalOrZero(node, ".//ram:RateApplicablePercent"),
			codes.TaxTypeFromString(res.String(node, ".//ram:TypeCode")),
			codes.TaxCategoryFromString(res.String(node, ".//ram:CategoryCode")),
			codes.TaxExemptionReasonFromString(res.String(node, ".//ram:ExemptionReasonCode")),
			res.String(node, ".//ram:ExemptionReason"),
		)
	}

	for _, node := range res.FindAll(root, "//ram:ApplicableHeaderTradeSettlement/ram:SpecifiedTradeAllowanceCharge") {
		// The model's allowance flag is the negation of the wire indicator.
		d.AddTradeAllowanceCharge(
			!res.Bool(node, ".//ram:ChargeIndicator/udt:Indicator"),
			res.DecimalOrZero(node, ".//ram:BasisAmount"),
			d.Currency,
			res.DecimalOrZero(node, ".//ram:ActualAmount"),
			res.String(node, ".//ram:Reason"),
			codes.TaxTypeFromString(res.String(node, ".//ram:CategoryTradeTax/ram:TypeCode")),
			codes.TaxCategoryFromString(res.String(node, ".//ram:CategoryTradeTax/ram:CategoryCode")),
			res.DecimalOrZero(node, ".//ram:CategoryTradeTax/ram:ApplicablePercent"),
		)
	}

	for _, node := range res.FindAll(root, "//ram:ApplicableHeaderTradeSettlement/ram:SpecifiedLogisticsServiceCharge") {
		d.AddLogisticsServiceCharge(
			res.DecimalOrZero(node, ".//ram:AppliedAmount"),
			res.String(node, ".//ram:Description"),
			codes.TaxTypeFromString(res.String(node, ".//ram:AppliedTradeTax/ram:TypeCode")),
			codes.TaxCategoryFromString(res.String(node, ".//ram:AppliedTradeTax/ram:CategoryCode")),
			res.DecimalOrZero(node, ".//ram:AppliedTradeTax/ram:ApplicablePercent"),
		)
	}

	invoiceRefID := res.String(root, "//ram:ApplicableHeaderTradeSettlement/ram:InvoiceReferencedDocument/ram:IssuerAssignedID")
	invoiceRefDate := r.formattedIssueDate(res, root, "//ram:ApplicableHeaderTradeSettlement/ram:InvoiceReferencedDocument/ram:FormattedIssueDateTime")
	if invoiceRefID != "" || invoiceRefDate != nil {
		d.InvoiceReferencedDocument = &model.InvoiceReferencedDocument{
			ID:        invoiceRefID,
			IssueDate: invoiceRefDate,
		}
	}

	termsDesc := res.String(root, "//ram:SpecifiedTradePaymentTerms/ram:Description")
	termsDue := r.periodDate(res, root, "//ram:SpecifiedTradePaymentTerms/ram:DueDateDateTime")
	if termsDesc != "" || termsDue != nil {
		d.PaymentTerms = &model.PaymentTerms{Description: termsDesc, DueDate: termsDue}
	}

	const sums = "//ram:SpecifiedTradeSettlementHeaderMonetarySummation"
	d.LineTotalAmount = res.DecimalOrZero(root, sums+"/ram:LineTotalAmount")
	d.ChargeTotalAmount = res.Decimal(root, sums+"/ram:ChargeTotalAmount", nil)
	d.AllowanceTotalAmount = res.Decimal(root, sums+"/ram:AllowanceTotalAmount", nil)
	d.TaxBasisAmount = res.Decimal(root, sums+"/ram:TaxBasisTotalAmount", nil)
	d.TaxTotalAmount = res.DecimalOrZero(root, sums+"/ram:TaxTotalAmount")
	d.GrandTotalAmount = res.DecimalOrZero(root, sums+"/ram:GrandTotalAmount")
	d.RoundingAmount = res.DecimalOrZero(root, sums+"/ram:RoundingAmount")
	d.TotalPrepaidAmount = res.Decimal(root, sums+"/ram:TotalPrepaidAmount", nil)
	d.DuePayableAmount = res.DecimalOrZero(root, sums+"/ram:DuePayableAmount")

	for _, node := range res.FindAll(root, "//ram:ApplicableHeaderTradeSettlement/ram:ReceivableSpecifiedTradeAccountingAccount") {
		d.AddReceivableAccountingAccount(
			res.String(node, ".//ram:ID"),
			codes.AccountingAccountTypeFromString(res.String(node, ".//ram:TypeCode")),
		)
	}

	d.OrderDate = res.Date(root, "//ram:ApplicableHeaderTradeAgreement/ram:BuyerOrderReferencedDocument/ram:IssueDateTime/udt:DateTimeString")
	if d.OrderDate == nil {
		d.OrderDate = res.Date(root, "//ram:ApplicableHeaderTradeAgreement/ram:BuyerOrderReferencedDocument/ram:IssueDateTime")
	}
	d.OrderNo = res.String(root, "//ram:ApplicableHeaderTradeAgreement/ram:BuyerOrderReferencedDocument/ram:IssuerAssignedID")

	contractID := res.String(root, "//ram:ApplicableHeaderTradeAgreement/ram:ContractReferencedDocument/ram:IssuerAssignedID")
	contractDate := r.formattedIssueDate(res, root, "//ram:ApplicableHeaderTradeAgreement/ram:ContractReferencedDocument/ram:FormattedIssueDateTime")
	if contractID != "" || contractDate != nil {
		d.ContractReferencedDocument = &model.ContractReferencedDocument{
			ID:        contractID,
			IssueDate: contractDate,
		}
	}

	// In this version the procuring project rides inside the contract
	// reference wrapper.
	projectID := res.String(root, "//ram:ApplicableHeaderTradeAgreement/ram:ContractReferencedDocument/ram:ID")
	projectName := res.String(root, "//ram:ApplicableHeaderTradeAgreement/ram:ContractReferencedDocument/ram:Name")
	if projectID != "" || projectName != "" {
		d.SpecifiedProcuringProject = &model.ProcuringProject{ID: projectID, Name: projectName}
	}

	for _, node := range res.FindAll(root, "//ram:IncludedSupplyChainTradeLineItem") {
		d.AddTradeLineItem(r.parseTradeLineItem(res, node))
	}

	return d, nil
}

// formattedIssueDate reads a FormattedIssueDateTime wrapper, trying the
// qualified qdt form first and falling back to the bare element text.
func (r *reader21) formattedIssueDate(res *xmltree.Resolver, node *etree.Element, path string) *time.Time {
	if dt := res.Date(node, path+"/qdt:DateTimeString"); dt != nil {
		return dt
	}
	if dt := res.Date(node, path+"/ram:IssueDateTime/qdt:DateTimeString"); dt != nil {
		return dt
	}
	return res.Date(node, path)
}

// periodDate reads a date-time element, trying the udt form first.
func (r *reader21) periodDate(res *xmltree.Resolver, node *etree.Element, path string) *time.Time {
	if dt := res.Date(node, path+"/udt:DateTimeString"); dt != nil {
		return dt
	}
	return res.Date(node, path)
}

// parseBankAccounts pairs each financial-account node with the institution
// node at the same position. Unequal sequence lengths yield no accounts for
// that side rather than a guessed pairing.
func (r *reader21) parseBankAccounts(res *xmltree.Resolver, root *etree.Element, d *model.InvoiceDescriptor) {
	const means = "//ram:ApplicableHeaderTradeSettlement/ram:SpecifiedTradeSettlementPaymentMeans"

	creditorAccounts := res.FindAll(root, means+"/ram:PayeePartyCreditorFinancialAccount")
	creditorInstitutions := res.FindAll(root, means+"/ram:PayeeSpecifiedCreditorFinancialInstitution")
	if len(creditorAccounts) == len(creditorInstitutions) {
		for i := range creditorAccounts {
			d.AddCreditorBankAccount(model.BankAccount{
				ID:           res.String(creditorAccounts[i], ".//ram:ProprietaryID"),
				IBAN:         res.String(creditorAccounts[i], ".//ram:IBANID"),
				BIC:          res.String(creditorInstitutions[i], ".//ram:BICID"),
				Bankleitzahl: res.String(creditorInstitutions[i], ".//ram:GermanBankleitzahlID"),
				BankName:     res.String(creditorInstitutions[i], ".//ram:Name"),
				Name:         res.String(creditorInstitutions[i], ".//ram:AccountName"),
			})
		}
	}

	debitorAccounts := res.FindAll(root, means+"/ram:PayerPartyDebtorFinancialAccount")
	debitorInstitutions := res.FindAll(root, means+"/ram:PayerSpecifiedDebtorFinancialInstitution")
	if len(debitorAccounts) == len(debitorInstitutions) {
		for i := range debitorAccounts {
			d.AddDebitorBankAccount(model.BankAccount{
				ID:           res.String(debitorAccounts[i], ".//ram:ProprietaryID"),
				IBAN:         res.String(debitorAccounts[i], ".//ram:IBANID"),
				BIC:          res.String(debitorInstitutions[i], ".//ram:BICID"),
				Bankleitzahl: res.String(debitorInstitutions[i], ".//ram:GermanBankleitzahlID"),
				BankName:     res.String(debitorInstitutions[i], ".//ram:Name"),
			})
		}
	}
}

func (r *reader21) parseParty(res *xmltree.Resolver, base *etree.Element, path string) *model.Party {
	node := res.Find(base, path)
	if node == nil {
		return nil
	}

	p := &model.Party{
		ID: res.String(node, "ram:ID"),
		GlobalID: model.GlobalID{
			SchemeID: res.String(node, "ram:GlobalID/@schemeID"),
			ID:       res.String(node, "ram:GlobalID"),
		},
		Name:     res.String(node, "ram:Name"),
		Postcode: res.String(node, "ram:PostalTradeAddress/ram:PostcodeCode"),
		City:     res.String(node, "ram:PostalTradeAddress/ram:CityName"),
		Country:  codes.CountryFromString(res.String(node, "ram:PostalTradeAddress/ram:CountryID")),
	}

	// LineOne holds the street unless LineTwo is present, in which case
	// LineOne is the contact and LineTwo the street.
	lineOne := res.String(node, "ram:PostalTradeAddress/ram:LineOne")
	lineTwo := res.String(node, "ram:PostalTradeAddress/ram:LineTwo")
	if lineTwo != "" {
		p.ContactName = lineOne
		p.Street = lineTwo
	} else {
		p.Street = lineOne
	}

	return p
}

// parseContact returns nil when the defining element is absent; an empty
// contact block still yields a non-nil contact.
func (r *reader21) parseContact(res *xmltree.Resolver, base *etree.Element, path string) *model.Contact {
	node := res.Find(base, path)
	if node == nil {
		return nil
	}
	return &model.Contact{
		Name:         res.String(node, "ram:PersonName"),
		OrgUnit:      res.String(node, "ram:DepartmentName"),
		PhoneNo:      res.String(node, "ram:TelephoneUniversalCommunication/ram:CompleteNumber"),
		FaxNo:        res.String(node, "ram:FaxUniversalCommunication/ram:CompleteNumber"),
		EmailAddress: res.String(node, "ram:EmailURIUniversalCommunication/ram:URIID"),
	}
}

func (r *reader21) parseTradeLineItem(res *xmltree.Resolver, node *etree.Element) model.TradeLineItem {
	item := model.TradeLineItem{
		GlobalID: model.GlobalID{
			SchemeID: res.String(node, ".//ram:SpecifiedTradeProduct/ram:GlobalID/@schemeID"),
			ID:       res.String(node, ".//ram:SpecifiedTradeProduct/ram:GlobalID"),
		},
		SellerAssignedID: res.String(node, ".//ram:SpecifiedTradeProduct/ram:SellerAssignedID"),
		BuyerAssignedID:  res.String(node, ".//ram:SpecifiedTradeProduct/ram:BuyerAssignedID"),
		Name:             res.String(node, ".//ram:SpecifiedTradeProduct/ram:Name"),
		Description:      res.String(node, ".//ram:SpecifiedTradeProduct/ram:Description"),
		UnitQuantity:     res.Decimal(node, ".//ram:BasisQuantity", nil),
		BilledQuantity:   res.DecimalOrZero(node, ".//ram:BilledQuantity"),
		LineTotalAmount:  res.Decimal(node, ".//ram:LineTotalAmount", nil),
		TaxCategoryCode:  codes.TaxCategoryFromString(res.String(node, ".//ram:ApplicableTradeTax/ram:CategoryCode")),
		TaxType:          codes.TaxTypeFromString(res.String(node, ".//ram:ApplicableTradeTax/ram:TypeCode")),
		TaxPercent:       res.DecimalOrZero(node, ".//ram:ApplicableTradeTax/ram:RateApplicablePercent"),
		NetUnitPrice:     res.DecimalOrZero(node, ".//ram:NetPriceProductTradePrice/ram:ChargeAmount"),
		GrossUnitPrice:   res.DecimalOrZero(node, ".//ram:GrossPriceProductTradePrice/ram:ChargeAmount"),
		UnitCode:         codes.QuantityFromString(res.String(node, ".//ram:BasisQuantity/@unitCode")),
	}
	if item.UnitCode == codes.QuantityUnknown {
		// Fall back to the billed quantity's unit attribute.
		item.UnitCode = codes.QuantityFromString(res.String(node, ".//ram:BilledQuantity/@unitCode"))
	}

	// References exist under two schema locations across the document's
	// internal variants; both are checked, the supply-chain location last so
	// it takes precedence where both could match.
	if res.Find(node, ".//ram:SpecifiedLineTradeAgreement/ram:BuyerOrderReferencedDocument") != nil {
		item.BuyerOrderReferencedDocument = &model.BuyerOrderReferencedDocument{
			ID:        res.String(node, ".//ram:SpecifiedLineTradeAgreement/ram:BuyerOrderReferencedDocument/ram:IssuerAssignedID"),
			IssueDate: res.Date(node, ".//ram:SpecifiedLineTradeAgreement/ram:BuyerOrderReferencedDocument/ram:IssueDateTime/qdt:DateTimeString"),
		}
	}
	if res.Find(node, ".//ram:SpecifiedSupplyChainTradeAgreement/ram:BuyerOrderReferencedDocument/ram:IssuerAssignedID") != nil {
		item.BuyerOrderReferencedDocument = &model.BuyerOrderReferencedDocument{
			ID:        res.String(node, ".//ram:SpecifiedSupplyChainTradeAgreement/ram:BuyerOrderReferencedDocument/ram:IssuerAssignedID"),
			IssueDate: res.Date(node, ".//ram:SpecifiedSupplyChainTradeAgreement/ram:BuyerOrderReferencedDocument/ram:IssueDateTime"),
		}
	}

	if res.Find(node, ".//ram:SpecifiedLineTradeAgreement/ram:ContractReferencedDocument") != nil {
		item.ContractReferencedDocument = &model.ContractReferencedDocument{
			ID:        res.String(node, ".//ram:SpecifiedLineTradeAgreement/ram:ContractReferencedDocument/ram:IssuerAssignedID"),
			IssueDate: res.Date(node, ".//ram:SpecifiedLineTradeAgreement/ram:ContractReferencedDocument/ram:IssueDateTime/qdt:DateTimeString"),
		}
	}
	if res.Find(node, ".//ram:SpecifiedSupplyChainTradeAgreement/ram:ContractReferencedDocument/ram:IssuerAssignedID") != nil {
		item.ContractReferencedDocument = &model.ContractReferencedDocument{
			ID:        res.String(node, ".//ram:SpecifiedSupplyChainTradeAgreement/ram:ContractReferencedDocument/ram:IssuerAssignedID"),
			IssueDate: res.Date(node, ".//ram:SpecifiedSupplyChainTradeAgreement/ram:ContractReferencedDocument/ram:IssueDateTime/udt:DateTimeString"),
		}
	}

	if settlement := res.Find(node, ".//ram:SpecifiedLineTradeSettlement"); settlement != nil {
		for _, child := range settlement.ChildElements() {
			switch child.Tag {
			case "ApplicableTradeTax",
				"BillingSpecifiedPeriod",
				"SpecifiedTradeAllowanceCharge",
				"SpecifiedTradeSettlementLineMonetarySummation",
				"AdditionalReferencedDocument":
				// Recognized section kinds, intentionally not mapped into the
				// model in this version.
			case "ReceivableSpecifiedTradeAccountingAccount":
				item.AddReceivableAccountingAccount(
					res.String(child, "./ram:ID"),
					codes.AccountingAccountTypeFromString(res.String(child, "./ram:TypeCode")),
				)
			}
		}
	}

	if res.Find(node, ".//ram:AssociatedDocumentLineDocument") != nil {
		item.AssociatedDocument = &model.AssociatedDocument{
			LineID: res.String(node, ".//ram:AssociatedDocumentLineDocument/ram:LineID"),
		}
		for _, noteNode := range res.FindAll(node, ".//ram:AssociatedDocumentLineDocument/ram:IncludedNote") {
			item.AssociatedDocument.Notes = append(item.AssociatedDocument.Notes, model.Note{
				Content:     res.String(noteNode, ".//ram:Content"),
				SubjectCode: codes.SubjectFromString(res.String(noteNode, ".//ram:SubjectCode")),
			})
		}
	}

	for _, acNode := range res.FindAll(node, ".//ram:GrossPriceProductTradePrice/ram:AppliedTradeAllowanceCharge") {
		item.AddTradeAllowanceCharge(
			!res.Bool(acNode, "./ram:ChargeIndicator/udt:Indicator"),
			codes.CurrencyFromString(res.String(acNode, "./ram:BasisAmount/@currencyID")),
			res.DecimalOrZero(acNode, "./ram:BasisAmount"),
			res.DecimalOrZero(acNode, "./ram:ActualAmount"),
			res.String(acNode, "./ram:Reason"),
		)
	}

	for _, wrapper := range []string{".//ram:SpecifiedLineTradeDelivery", ".//ram:SpecifiedSupplyChainTradeDelivery"} {
		if res.Find(node, wrapper+"/ram:DeliveryNoteReferencedDocument/ram:IssuerAssignedID") != nil {
			item.DeliveryNoteReferencedDocument = &model.DeliveryNoteReferencedDocument{
				ID:        res.String(node, wrapper+"/ram:DeliveryNoteReferencedDocument/ram:IssuerAssignedID"),
				IssueDate: res.Date(node, wrapper+"/ram:DeliveryNoteReferencedDocument/ram:IssueDateTime/udt:DateTimeString"),
			}
		}
		if res.Find(node, wrapper+"/ram:ActualDeliverySupplyChainEvent/ram:OccurrenceDateTime") != nil {
			item.ActualDeliveryDate = res.Date(node, wrapper+"/ram:ActualDeliverySupplyChainEvent/ram:OccurrenceDateTime/udt:DateTimeString")
		}
	}

	for _, wrapper := range []string{".//ram:SpecifiedLineTradeAgreement", ".//ram:SpecifiedSupplyChainTradeAgreement"} {
		for _, refNode := range res.FindAll(node, wrapper+"/ram:AdditionalReferencedDocument") {
			item.AddAdditionalReferencedDocument(
				res.String(refNode, "ram:IssuerAssignedID"),
				res.Date(refNode, "ram:IssueDateTime/udt:DateTimeString"),
				codes.ReferenceTypeFromString(res.String(refNode, "ram:ReferenceTypeCode")),
			)
		}
	}

	return item
}
