package cii

import (
	"encoding/base64"
	"path/filepath"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/model"
	"github.com/rezonia/facturx/internal/xmltree"
)

// writer21 serializes an InvoiceDescriptor as ZUGFeRD 2.1 / Factur-X 1.0 XML.
// Output is deterministic: the same descriptor always yields the same bytes.
type writer21 struct{}

func newWriter21() *writer21 {
	return &writer21{}
}

func (w *writer21) Version() Version {
	return Version21
}

// Write produces the XML document for d under the target profile. A
// ProfileUnknown target falls back to d.Profile. The descriptor is not
// modified; a differing target is applied to a shallow copy.
func (w *writer21) Write(d *model.InvoiceDescriptor, profile codes.Profile) (*etree.Document, error) {
	if d == nil {
		return nil, model.NewSourceError("nil descriptor", nil)
	}
	if profile == codes.ProfileUnknown {
		profile = d.Profile
	}
	if profile == codes.ProfileUnknown {
		return nil, model.NewParseError("profile", "cannot write a document without a profile", nil)
	}
	if profile != d.Profile {
		clone := *d
		clone.Profile = profile
		d = &clone
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("rsm:CrossIndustryInvoice")
	root.CreateAttr("xmlns:a", xmltree.NSExtended)
	root.CreateAttr("xmlns:rsm", xmltree.NSDocument)
	root.CreateAttr("xmlns:qdt", xmltree.NSQualified)
	root.CreateAttr("xmlns:ram", xmltree.NSReusable)
	root.CreateAttr("xmlns:udt", xmltree.NSBasic)

	w.writeContext(root, d)
	w.writeHeader(root, d)

	tx := root.CreateElement("rsm:SupplyChainTradeTransaction")
	if DispositionFor(Version21, d.Profile, SectionLineItems) == EmitIfPopulated {
		for i := range d.LineItems {
			w.writeLineItem(tx, d, &d.LineItems[i])
		}
	}
	w.writeAgreement(tx, d)
	w.writeDelivery(tx, d)
	w.writeSettlement(tx, d)

	doc.Indent(2)
	return doc, nil
}

func (w *writer21) writeContext(root *etree.Element, d *model.InvoiceDescriptor) {
	ctx := root.CreateElement("rsm:ExchangedDocumentContext")
	if d.IsTest {
		ind := ctx.CreateElement("ram:TestIndicator")
		ind.CreateElement("udt:Indicator").SetText("true")
	}
	param := ctx.CreateElement("ram:GuidelineSpecifiedDocumentContextParameter")
	param.CreateElement("ram:ID").SetText(d.Profile.URN())
}

func (w *writer21) writeHeader(root *etree.Element, d *model.InvoiceDescriptor) {
	doc := root.CreateElement("rsm:ExchangedDocument")
	doc.CreateElement("ram:ID").SetText(d.InvoiceNo)
	doc.CreateElement("ram:TypeCode").SetText(d.Type.String())
	w.writeDate102(doc, "ram:IssueDateTime", d.InvoiceDate)

	if DispositionFor(Version21, d.Profile, SectionNotes) == EmitIfPopulated {
		for _, n := range d.Notes {
			note := doc.CreateElement("ram:IncludedNote")
			if n.ContentCode != codes.ContentUnknown {
				note.CreateElement("ram:ContentCode").SetText(n.ContentCode.String())
			}
			note.CreateElement("ram:Content").SetText(n.Content)
			if n.SubjectCode != codes.SubjectUnknown {
				note.CreateElement("ram:SubjectCode").SetText(n.SubjectCode.String())
			}
		}
	}
}

func (w *writer21) writeAgreement(tx *etree.Element, d *model.InvoiceDescriptor) {
	agr := tx.CreateElement("ram:ApplicableHeaderTradeAgreement")

	if d.ReferenceOrderNo != "" &&
		DispositionFor(Version21, d.Profile, SectionBuyerReference) == EmitIfPopulated {
		agr.CreateElement("ram:BuyerReference").SetText(d.ReferenceOrderNo)
	}

	var sellerContact, buyerContact *model.Contact
	if DispositionFor(Version21, d.Profile, SectionSellerContact) == EmitIfPopulated {
		sellerContact = d.SellerContact
	}
	if DispositionFor(Version21, d.Profile, SectionBuyerContact) == EmitIfPopulated {
		buyerContact = d.BuyerContact
	}
	w.writeParty(agr, "ram:SellerTradeParty", d.Seller, sellerContact)
	w.writeParty(agr, "ram:BuyerTradeParty", d.Buyer, buyerContact)

	if (d.OrderNo != "" || d.OrderDate != nil) &&
		DispositionFor(Version21, d.Profile, SectionOrderReference) == EmitIfPopulated {
		ref := agr.CreateElement("ram:BuyerOrderReferencedDocument")
		if d.OrderNo != "" {
			ref.CreateElement("ram:IssuerAssignedID").SetText(d.OrderNo)
		}
		w.writeDate102(ref, "ram:IssueDateTime", d.OrderDate)
	}

	hasProject := d.SpecifiedProcuringProject != nil
	if (d.ContractReferencedDocument != nil || hasProject) &&
		DispositionFor(Version21, d.Profile, SectionContractReference) == EmitIfPopulated {
		ref := agr.CreateElement("ram:ContractReferencedDocument")
		if c := d.ContractReferencedDocument; c != nil {
			if c.ID != "" {
				ref.CreateElement("ram:IssuerAssignedID").SetText(c.ID)
			}
			if DispositionFor(Version21, d.Profile, SectionContractIssueDate) == EmitIfPopulated {
				w.writeFormattedDate(ref, c.IssueDate)
			}
		}
		if hasProject {
			if d.SpecifiedProcuringProject.ID != "" {
				ref.CreateElement("ram:ID").SetText(d.SpecifiedProcuringProject.ID)
			}
			if d.SpecifiedProcuringProject.Name != "" {
				ref.CreateElement("ram:Name").SetText(d.SpecifiedProcuringProject.Name)
			}
		}
	}

	if DispositionFor(Version21, d.Profile, SectionAdditionalReferencedDocuments) == EmitIfPopulated {
		for _, ref := range d.AdditionalReferencedDocuments {
			node := agr.CreateElement("ram:AdditionalReferencedDocument")
			if ref.IssuerAssignedID != "" {
				node.CreateElement("ram:IssuerAssignedID").SetText(ref.IssuerAssignedID)
			}
			w.writeFormattedDate(node, ref.IssueDate)
			if ref.TypeCode != codes.AdditionalReferencedDocumentTypeUnknown {
				node.CreateElement("ram:TypeCode").SetText(ref.TypeCode.String())
			}
			if ref.ReferenceTypeCode != codes.ReferenceTypeUnknown {
				node.CreateElement("ram:ReferenceTypeCode").SetText(ref.ReferenceTypeCode.String())
			}
			if ref.Name != "" {
				node.CreateElement("ram:Name").SetText(ref.Name)
			}
			if len(ref.Attachment) > 0 {
				att := node.CreateElement("ram:AttachmentBinaryObject")
				att.CreateAttr("mimeCode", mimeCodeFor(ref.Filename))
				att.CreateAttr("filename", ref.Filename)
				att.SetText(base64.StdEncoding.EncodeToString(ref.Attachment))
			}
		}
	}
}

func (w *writer21) writeDelivery(tx *etree.Element, d *model.InvoiceDescriptor) {
	del := tx.CreateElement("ram:ApplicableHeaderTradeDelivery")
	if DispositionFor(Version21, d.Profile, SectionDelivery) != EmitIfPopulated {
		return
	}

	w.writeParty(del, "ram:ShipToTradeParty", d.ShipTo, nil)
	w.writeParty(del, "ram:ShipFromTradeParty", d.ShipFrom, nil)

	if d.ActualDeliveryDate != nil {
		ev := del.CreateElement("ram:ActualDeliverySupplyChainEvent")
		w.writeDate102(ev, "ram:OccurrenceDateTime", d.ActualDeliveryDate)
	}
	if ref := d.DeliveryNoteReferencedDocument; ref != nil {
		node := del.CreateElement("ram:DeliveryNoteReferencedDocument")
		if ref.ID != "" {
			node.CreateElement("ram:IssuerAssignedID").SetText(ref.ID)
		}
		w.writeDate102(node, "ram:IssueDateTime", ref.IssueDate)
	}
}

func (w *writer21) writeSettlement(tx *etree.Element, d *model.InvoiceDescriptor) {
	set := tx.CreateElement("ram:ApplicableHeaderTradeSettlement")

	if d.PaymentMeans != nil && d.PaymentMeans.SEPACreditorIdentifier != "" &&
		DispositionFor(Version21, d.Profile, SectionPaymentMeans) == EmitIfPopulated {
		id := set.CreateElement("ram:CreditorReferenceID")
		id.SetText(d.PaymentMeans.SEPACreditorIdentifier)
	}
	if d.PaymentReference != "" {
		set.CreateElement("ram:PaymentReference").SetText(d.PaymentReference)
	}
	set.CreateElement("ram:InvoiceCurrencyCode").SetText(d.Currency.String())

	if DispositionFor(Version21, d.Profile, SectionInvoicee) == EmitIfPopulated {
		w.writeParty(set, "ram:InvoiceeTradeParty", d.Invoicee, nil)
	}
	if DispositionFor(Version21, d.Profile, SectionPayee) == EmitIfPopulated {
		w.writeParty(set, "ram:PayeeTradeParty", d.Payee, nil)
	}

	if DispositionFor(Version21, d.Profile, SectionPaymentMeans) == EmitIfPopulated {
		w.writePaymentMeans(set, d)
	}

	if DispositionFor(Version21, d.Profile, SectionTaxes) == EmitIfPopulated {
		for _, tax := range d.Taxes {
			node := set.CreateElement("ram:ApplicableTradeTax")
			node.CreateElement("ram:CalculatedAmount").SetText(amount(tax.TaxAmount))
			node.CreateElement("ram:TypeCode").SetText(tax.TypeCode.String())
			if tax.ExemptionReason != "" {
				node.CreateElement("ram:ExemptionReason").SetText(tax.ExemptionReason)
			}
			node.CreateElement("ram:BasisAmount").SetText(amount(tax.BasisAmount))
			node.CreateElement("ram:CategoryCode").SetText(tax.CategoryCode.String())
			if tax.ExemptionReasonCode != codes.TaxExemptionReasonUnknown {
				node.CreateElement("ram:ExemptionReasonCode").SetText(tax.ExemptionReasonCode.String())
			}
			node.CreateElement("ram:RateApplicablePercent").SetText(amount(tax.Percent))
		}
	}

	if (d.BillingPeriodStart != nil || d.BillingPeriodEnd != nil) &&
		DispositionFor(Version21, d.Profile, SectionBillingPeriod) == EmitIfPopulated {
		period := set.CreateElement("ram:BillingSpecifiedPeriod")
		if d.BillingPeriodStart != nil {
			w.writeDate102(period, "ram:StartDateTime", d.BillingPeriodStart)
		}
		if d.BillingPeriodEnd != nil {
			w.writeDate102(period, "ram:EndDateTime", d.BillingPeriodEnd)
		}
	}

	if DispositionFor(Version21, d.Profile, SectionAllowanceCharges) == EmitIfPopulated {
		for _, ac := range d.AllowanceCharges {
			node := set.CreateElement("ram:SpecifiedTradeAllowanceCharge")
			w.writeChargeIndicator(node, ac.IsAllowance)
			node.CreateElement("ram:BasisAmount").SetText(amount(ac.BasisAmount))
			node.CreateElement("ram:ActualAmount").SetText(amount(ac.ActualAmount))
			if ac.Reason != "" {
				node.CreateElement("ram:Reason").SetText(ac.Reason)
			}
			tax := node.CreateElement("ram:CategoryTradeTax")
			tax.CreateElement("ram:TypeCode").SetText(ac.TaxType.String())
			tax.CreateElement("ram:CategoryCode").SetText(ac.TaxCategory.String())
			tax.CreateElement("ram:ApplicablePercent").SetText(amount(ac.TaxPercent))
		}
	}

	if DispositionFor(Version21, d.Profile, SectionServiceCharges) == EmitIfPopulated {
		for _, sc := range d.ServiceCharges {
			node := set.CreateElement("ram:SpecifiedLogisticsServiceCharge")
			if sc.Description != "" {
				node.CreateElement("ram:Description").SetText(sc.Description)
			}
			node.CreateElement("ram:AppliedAmount").SetText(amount(sc.Amount))
			tax := node.CreateElement("ram:AppliedTradeTax")
			tax.CreateElement("ram:TypeCode").SetText(sc.TaxType.String())
			tax.CreateElement("ram:CategoryCode").SetText(sc.TaxCategory.String())
			tax.CreateElement("ram:ApplicablePercent").SetText(amount(sc.TaxPercent))
		}
	}

	if d.PaymentTerms != nil &&
		DispositionFor(Version21, d.Profile, SectionPaymentTerms) == EmitIfPopulated {
		node := set.CreateElement("ram:SpecifiedTradePaymentTerms")
		if d.PaymentTerms.Description != "" {
			node.CreateElement("ram:Description").SetText(d.PaymentTerms.Description)
		}
		w.writeDate102(node, "ram:DueDateDateTime", d.PaymentTerms.DueDate)
	}

	w.writeTotals(set, d)

	if d.InvoiceReferencedDocument != nil &&
		DispositionFor(Version21, d.Profile, SectionInvoiceReference) == EmitIfPopulated {
		node := set.CreateElement("ram:InvoiceReferencedDocument")
		if d.InvoiceReferencedDocument.ID != "" {
			node.CreateElement("ram:IssuerAssignedID").SetText(d.InvoiceReferencedDocument.ID)
		}
		w.writeFormattedDate(node, d.InvoiceReferencedDocument.IssueDate)
	}

	if DispositionFor(Version21, d.Profile, SectionAccountingAccounts) == EmitIfPopulated {
		for _, acc := range d.AccountingAccounts {
			node := set.CreateElement("ram:ReceivableSpecifiedTradeAccountingAccount")
			node.CreateElement("ram:ID").SetText(acc.TradeAccountID)
			if acc.TradeAccountTypeCode != codes.AccountingAccountTypeUnknown {
				node.CreateElement("ram:TypeCode").SetText(acc.TradeAccountTypeCode.String())
			}
		}
	}
}

func (w *writer21) writePaymentMeans(set *etree.Element, d *model.InvoiceDescriptor) {
	pm := d.PaymentMeans
	hasAccounts := len(d.CreditorBankAccounts) > 0 || len(d.DebitorBankAccounts) > 0
	if pm == nil && !hasAccounts {
		return
	}

	node := set.CreateElement("ram:SpecifiedTradeSettlementPaymentMeans")
	if pm != nil {
		node.CreateElement("ram:TypeCode").SetText(pm.TypeCode.String())
		if pm.Information != "" {
			node.CreateElement("ram:Information").SetText(pm.Information)
		}
		if pm.SEPACreditorIdentifier != "" || pm.SEPAMandateReference != "" {
			id := node.CreateElement("ram:ID")
			id.CreateAttr("schemeAgencyID", pm.SEPAMandateReference)
			id.SetText(pm.SEPACreditorIdentifier)
		}
	}

	// Accounts and institutions form positionally paired sequences.
	for _, acc := range d.CreditorBankAccounts {
		fin := node.CreateElement("ram:PayeePartyCreditorFinancialAccount")
		if acc.IBAN != "" {
			fin.CreateElement("ram:IBANID").SetText(acc.IBAN)
		}
		if acc.ID != "" {
			fin.CreateElement("ram:ProprietaryID").SetText(acc.ID)
		}
	}
	for _, acc := range d.CreditorBankAccounts {
		inst := node.CreateElement("ram:PayeeSpecifiedCreditorFinancialInstitution")
		if acc.BIC != "" {
			inst.CreateElement("ram:BICID").SetText(acc.BIC)
		}
		if acc.Bankleitzahl != "" {
			inst.CreateElement("ram:GermanBankleitzahlID").SetText(acc.Bankleitzahl)
		}
		if acc.BankName != "" {
			inst.CreateElement("ram:Name").SetText(acc.BankName)
		}
		if acc.Name != "" {
			inst.CreateElement("ram:AccountName").SetText(acc.Name)
		}
	}
	for _, acc := range d.DebitorBankAccounts {
		fin := node.CreateElement("ram:PayerPartyDebtorFinancialAccount")
		if acc.IBAN != "" {
			fin.CreateElement("ram:IBANID").SetText(acc.IBAN)
		}
		if acc.ID != "" {
			fin.CreateElement("ram:ProprietaryID").SetText(acc.ID)
		}
	}
	for _, acc := range d.DebitorBankAccounts {
		inst := node.CreateElement("ram:PayerSpecifiedDebtorFinancialInstitution")
		if acc.BIC != "" {
			inst.CreateElement("ram:BICID").SetText(acc.BIC)
		}
		if acc.Bankleitzahl != "" {
			inst.CreateElement("ram:GermanBankleitzahlID").SetText(acc.Bankleitzahl)
		}
		if acc.BankName != "" {
			inst.CreateElement("ram:Name").SetText(acc.BankName)
		}
	}
}

// writeTotals emits the monetary summation. The minimum profile carries only
// the four headline amounts; everything else gets the full breakdown.
func (w *writer21) writeTotals(set *etree.Element, d *model.InvoiceDescriptor) {
	sums := set.CreateElement("ram:SpecifiedTradeSettlementHeaderMonetarySummation")
	detailed := DispositionFor(Version21, d.Profile, SectionDetailedTotals) == EmitIfPopulated

	if detailed {
		sums.CreateElement("ram:LineTotalAmount").SetText(amount(d.LineTotalAmount))
		if d.ChargeTotalAmount != nil {
			sums.CreateElement("ram:ChargeTotalAmount").SetText(amount(*d.ChargeTotalAmount))
		}
		if d.AllowanceTotalAmount != nil {
			sums.CreateElement("ram:AllowanceTotalAmount").SetText(amount(*d.AllowanceTotalAmount))
		}
	}
	if d.TaxBasisAmount != nil {
		sums.CreateElement("ram:TaxBasisTotalAmount").SetText(amount(*d.TaxBasisAmount))
	}
	taxTotal := sums.CreateElement("ram:TaxTotalAmount")
	taxTotal.CreateAttr("currencyID", d.Currency.String())
	taxTotal.SetText(amount(d.TaxTotalAmount))
	if !d.RoundingAmount.IsZero() &&
		DispositionFor(Version21, d.Profile, SectionRounding) == EmitIfPopulated {
		sums.CreateElement("ram:RoundingAmount").SetText(amount(d.RoundingAmount))
	}
	sums.CreateElement("ram:GrandTotalAmount").SetText(amount(d.GrandTotalAmount))
	if detailed && d.TotalPrepaidAmount != nil {
		sums.CreateElement("ram:TotalPrepaidAmount").SetText(amount(*d.TotalPrepaidAmount))
	}
	sums.CreateElement("ram:DuePayableAmount").SetText(amount(d.DuePayableAmount))
}

func (w *writer21) writeLineItem(tx *etree.Element, d *model.InvoiceDescriptor, item *model.TradeLineItem) {
	line := tx.CreateElement("ram:IncludedSupplyChainTradeLineItem")

	if item.AssociatedDocument != nil {
		assoc := line.CreateElement("ram:AssociatedDocumentLineDocument")
		if item.AssociatedDocument.LineID != "" {
			assoc.CreateElement("ram:LineID").SetText(item.AssociatedDocument.LineID)
		}
		for _, n := range item.AssociatedDocument.Notes {
			note := assoc.CreateElement("ram:IncludedNote")
			note.CreateElement("ram:Content").SetText(n.Content)
			if n.SubjectCode != codes.SubjectUnknown {
				note.CreateElement("ram:SubjectCode").SetText(n.SubjectCode.String())
			}
		}
	}

	product := line.CreateElement("ram:SpecifiedTradeProduct")
	if item.GlobalID.ID != "" {
		gid := product.CreateElement("ram:GlobalID")
		if item.GlobalID.SchemeID != "" {
			gid.CreateAttr("schemeID", item.GlobalID.SchemeID)
		}
		gid.SetText(item.GlobalID.ID)
	}
	if item.SellerAssignedID != "" {
		product.CreateElement("ram:SellerAssignedID").SetText(item.SellerAssignedID)
	}
	if item.BuyerAssignedID != "" {
		product.CreateElement("ram:BuyerAssignedID").SetText(item.BuyerAssignedID)
	}
	product.CreateElement("ram:Name").SetText(item.Name)
	if item.Description != "" {
		product.CreateElement("ram:Description").SetText(item.Description)
	}

	agr := line.CreateElement("ram:SpecifiedLineTradeAgreement")
	if ref := item.BuyerOrderReferencedDocument; ref != nil {
		node := agr.CreateElement("ram:BuyerOrderReferencedDocument")
		if ref.ID != "" {
			node.CreateElement("ram:IssuerAssignedID").SetText(ref.ID)
		}
		w.writeQualifiedDate(node, "ram:IssueDateTime", ref.IssueDate)
	}
	if ref := item.ContractReferencedDocument; ref != nil {
		node := agr.CreateElement("ram:ContractReferencedDocument")
		if ref.ID != "" {
			node.CreateElement("ram:IssuerAssignedID").SetText(ref.ID)
		}
		w.writeQualifiedDate(node, "ram:IssueDateTime", ref.IssueDate)
	}
	for _, ref := range item.AdditionalReferencedDocuments {
		node := agr.CreateElement("ram:AdditionalReferencedDocument")
		if ref.IssuerAssignedID != "" {
			node.CreateElement("ram:IssuerAssignedID").SetText(ref.IssuerAssignedID)
		}
		w.writeDate102(node, "ram:IssueDateTime", ref.IssueDate)
		if ref.ReferenceTypeCode != codes.ReferenceTypeUnknown {
			node.CreateElement("ram:ReferenceTypeCode").SetText(ref.ReferenceTypeCode.String())
		}
	}

	if !item.GrossUnitPrice.IsZero() || len(item.AllowanceCharges) > 0 {
		gross := agr.CreateElement("ram:GrossPriceProductTradePrice")
		gross.CreateElement("ram:ChargeAmount").SetText(unitAmount(item.GrossUnitPrice))
		w.writeBasisQuantity(gross, item)
		for _, ac := range item.AllowanceCharges {
			node := gross.CreateElement("ram:AppliedTradeAllowanceCharge")
			w.writeChargeIndicator(node, ac.IsAllowance)
			basis := node.CreateElement("ram:BasisAmount")
			if ac.Currency != codes.CurrencyUnknown {
				basis.CreateAttr("currencyID", ac.Currency.String())
			}
			basis.SetText(unitAmount(ac.BasisAmount))
			node.CreateElement("ram:ActualAmount").SetText(unitAmount(ac.ActualAmount))
			if ac.Reason != "" {
				node.CreateElement("ram:Reason").SetText(ac.Reason)
			}
		}
	}

	net := agr.CreateElement("ram:NetPriceProductTradePrice")
	net.CreateElement("ram:ChargeAmount").SetText(unitAmount(item.NetUnitPrice))
	w.writeBasisQuantity(net, item)

	del := line.CreateElement("ram:SpecifiedLineTradeDelivery")
	billed := del.CreateElement("ram:BilledQuantity")
	billed.CreateAttr("unitCode", item.UnitCode.String())
	billed.SetText(quantity(item.BilledQuantity))
	if ref := item.DeliveryNoteReferencedDocument; ref != nil {
		node := del.CreateElement("ram:DeliveryNoteReferencedDocument")
		if ref.ID != "" {
			node.CreateElement("ram:IssuerAssignedID").SetText(ref.ID)
		}
		w.writeDate102(node, "ram:IssueDateTime", ref.IssueDate)
	}
	if item.ActualDeliveryDate != nil {
		ev := del.CreateElement("ram:ActualDeliverySupplyChainEvent")
		w.writeDate102(ev, "ram:OccurrenceDateTime", item.ActualDeliveryDate)
	}

	set := line.CreateElement("ram:SpecifiedLineTradeSettlement")
	tax := set.CreateElement("ram:ApplicableTradeTax")
	tax.CreateElement("ram:TypeCode").SetText(item.TaxType.String())
	tax.CreateElement("ram:CategoryCode").SetText(item.TaxCategoryCode.String())
	tax.CreateElement("ram:RateApplicablePercent").SetText(amount(item.TaxPercent))
	if item.LineTotalAmount != nil {
		sums := set.CreateElement("ram:SpecifiedTradeSettlementLineMonetarySummation")
		sums.CreateElement("ram:LineTotalAmount").SetText(amount(*item.LineTotalAmount))
	}
	for _, acc := range item.AccountingAccounts {
		node := set.CreateElement("ram:ReceivableSpecifiedTradeAccountingAccount")
		node.CreateElement("ram:ID").SetText(acc.TradeAccountID)
		if acc.TradeAccountTypeCode != codes.AccountingAccountTypeUnknown {
			node.CreateElement("ram:TypeCode").SetText(acc.TradeAccountTypeCode.String())
		}
	}
}

func (w *writer21) writeBasisQuantity(price *etree.Element, item *model.TradeLineItem) {
	if item.UnitQuantity == nil {
		return
	}
	basis := price.CreateElement("ram:BasisQuantity")
	basis.CreateAttr("unitCode", item.UnitCode.String())
	basis.SetText(quantity(*item.UnitQuantity))
}

func (w *writer21) writeParty(parent *etree.Element, tag string, p *model.Party, c *model.Contact) {
	if p == nil {
		return
	}
	node := parent.CreateElement(tag)
	if p.ID != "" {
		node.CreateElement("ram:ID").SetText(p.ID)
	}
	if p.GlobalID.ID != "" {
		gid := node.CreateElement("ram:GlobalID")
		if p.GlobalID.SchemeID != "" {
			gid.CreateAttr("schemeID", p.GlobalID.SchemeID)
		}
		gid.SetText(p.GlobalID.ID)
	}
	node.CreateElement("ram:Name").SetText(p.Name)

	if c != nil {
		contact := node.CreateElement("ram:DefinedTradeContact")
		if c.Name != "" {
			contact.CreateElement("ram:PersonName").SetText(c.Name)
		}
		if c.OrgUnit != "" {
			contact.CreateElement("ram:DepartmentName").SetText(c.OrgUnit)
		}
		if c.PhoneNo != "" {
			phone := contact.CreateElement("ram:TelephoneUniversalCommunication")
			phone.CreateElement("ram:CompleteNumber").SetText(c.PhoneNo)
		}
		if c.FaxNo != "" {
			fax := contact.CreateElement("ram:FaxUniversalCommunication")
			fax.CreateElement("ram:CompleteNumber").SetText(c.FaxNo)
		}
		if c.EmailAddress != "" {
			mail := contact.CreateElement("ram:EmailURIUniversalCommunication")
			mail.CreateElement("ram:URIID").SetText(c.EmailAddress)
		}
	}

	addr := node.CreateElement("ram:PostalTradeAddress")
	if p.Postcode != "" {
		addr.CreateElement("ram:PostcodeCode").SetText(p.Postcode)
	}
	// ContactName shifts the street into LineTwo; without it the street is
	// LineOne. The reader applies the inverse rule.
	if p.ContactName != "" {
		addr.CreateElement("ram:LineOne").SetText(p.ContactName)
		if p.Street != "" {
			addr.CreateElement("ram:LineTwo").SetText(p.Street)
		}
	} else if p.Street != "" {
		addr.CreateElement("ram:LineOne").SetText(p.Street)
	}
	if p.City != "" {
		addr.CreateElement("ram:CityName").SetText(p.City)
	}
	if p.Country != codes.CountryUnknown {
		addr.CreateElement("ram:CountryID").SetText(p.Country.String())
	}

	for _, reg := range p.TaxRegistrations {
		tr := node.CreateElement("ram:SpecifiedTaxRegistration")
		id := tr.CreateElement("ram:ID")
		id.CreateAttr("schemeID", reg.SchemeID.String())
		id.SetText(reg.No)
	}
}

func (w *writer21) writeChargeIndicator(parent *etree.Element, isAllowance bool) {
	ind := parent.CreateElement("ram:ChargeIndicator")
	if isAllowance {
		ind.CreateElement("udt:Indicator").SetText("false")
	} else {
		ind.CreateElement("udt:Indicator").SetText("true")
	}
}

// writeDate102 wraps t in the given element as a coded YYYYMMDD string.
// A nil date writes nothing.
func (w *writer21) writeDate102(parent *etree.Element, tag string, t *time.Time) {
	if t == nil {
		return
	}
	wrap := parent.CreateElement(tag)
	dts := wrap.CreateElement("udt:DateTimeString")
	dts.CreateAttr("format", "102")
	dts.SetText(t.Format(xmltree.Format102))
}

// writeFormattedDate emits a ram:FormattedIssueDateTime with the qualified
// qdt date form used by document references.
func (w *writer21) writeFormattedDate(parent *etree.Element, t *time.Time) {
	if t == nil {
		return
	}
	wrap := parent.CreateElement("ram:FormattedIssueDateTime")
	dts := wrap.CreateElement("qdt:DateTimeString")
	dts.CreateAttr("format", "102")
	dts.SetText(t.Format(xmltree.Format102))
}

// writeQualifiedDate is writeDate102 with the qdt namespace, used at line
// level where references carry qualified date strings.
func (w *writer21) writeQualifiedDate(parent *etree.Element, tag string, t *time.Time) {
	if t == nil {
		return
	}
	wrap := parent.CreateElement(tag)
	dts := wrap.CreateElement("qdt:DateTimeString")
	dts.CreateAttr("format", "102")
	dts.SetText(t.Format(xmltree.Format102))
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func unitAmount(d decimal.Decimal) string {
	return d.StringFixed(4)
}

func quantity(d decimal.Decimal) string {
	return d.StringFixed(4)
}

func mimeCodeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".xml":
		return "text/xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".csv":
		return "text/csv"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".ods":
		return "application/vnd.oasis.opendocument.spreadsheet"
	default:
		return "application/octet-stream"
	}
}
