package facturx

import (
	"io"

	"github.com/rezonia/facturx/internal/cii"
	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/pdf"
)

// Version identifies a standard version of the invoice format.
type Version = cii.Version

// Version21 is ZUGFeRD 2.1 / Factur-X 1.0.
const Version21 = cii.Version21

// Profile re-exports the guideline profile enumeration.
type Profile = codes.Profile

const (
	ProfileUnknown    = codes.ProfileUnknown
	ProfileMinimum    = codes.ProfileMinimum
	ProfileBasicWL    = codes.ProfileBasicWL
	ProfileBasic      = codes.ProfileBasic
	ProfileComfort    = codes.ProfileComfort
	ProfileExtended   = codes.ProfileExtended
	ProfileXRechnung1 = codes.ProfileXRechnung1
	ProfileXRechnung  = codes.ProfileXRechnung
)

// Load reads an invoice XML document from r, detecting its version.
func Load(r io.Reader) (*InvoiceDescriptor, error) {
	return cii.Load(r)
}

// LoadBytes parses an invoice XML document held in memory.
func LoadBytes(content []byte) (*InvoiceDescriptor, error) {
	return cii.LoadBytes(content)
}

// LoadPDF extracts the embedded invoice XML from a hybrid PDF and parses it.
func LoadPDF(pdfData []byte) (*InvoiceDescriptor, error) {
	xmlData, _, err := pdf.ExtractXML(pdfData)
	if err != nil {
		return nil, err
	}
	return cii.LoadBytes(xmlData)
}

// DetectVersion identifies the standard version of the document behind r.
// The read position of r is restored before returning.
func DetectVersion(r io.ReadSeeker) (Version, error) {
	return cii.DetectVersion(r)
}

// Save writes d as version 2.1 XML to w under d's profile.
func Save(d *InvoiceDescriptor, w io.Writer) error {
	return cii.Save(d, w, cii.Version21)
}

// SaveVersion writes d under an explicit standard version.
func SaveVersion(d *InvoiceDescriptor, w io.Writer, v Version) error {
	return cii.Save(d, w, v)
}

// SaveProfile writes d under an explicit standard version and target
// profile. Sections the target profile does not carry are dropped from the
// output; d itself is not modified.
func SaveProfile(d *InvoiceDescriptor, w io.Writer, v Version, p Profile) error {
	return cii.SaveProfile(d, w, v, p)
}
