// Package pdf embeds and extracts the invoice XML carried as a PDF/A-3
// attachment in hybrid documents.
package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfcpumodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/rezonia/facturx/internal/model"
)

// invoiceAttachmentNames are the attachment file names the hybrid formats
// use for the embedded invoice, in lookup order.
var invoiceAttachmentNames = []string{
	"factur-x.xml",
	"zugferd-invoice.xml",
	"ZUGFeRD-invoice.xml",
	"xrechnung.xml",
}

func configuration() *pdfcpumodel.Configuration {
	conf := pdfcpumodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfcpumodel.ValidationRelaxed
	return conf
}

// ListAttachments returns the names of all attachments embedded in the PDF.
func ListAttachments(pdfData []byte) ([]string, error) {
	attachments, err := api.Attachments(bytes.NewReader(pdfData), configuration())
	if err != nil {
		return nil, model.NewSourceError("cannot list PDF attachments", err)
	}
	names := make([]string, 0, len(attachments))
	for _, a := range attachments {
		names = append(names, a.FileName)
	}
	return names, nil
}

// ExtractXML pulls the embedded invoice XML out of a hybrid PDF. It returns
// the XML content and the attachment name it was found under.
func ExtractXML(pdfData []byte) ([]byte, string, error) {
	dir, err := os.MkdirTemp("", "facturx-extract-")
	if err != nil {
		return nil, "", model.NewSourceError("cannot create scratch directory", err)
	}
	defer os.RemoveAll(dir)

	if err := api.ExtractAttachments(bytes.NewReader(pdfData), dir, nil, configuration()); err != nil {
		return nil, "", model.NewSourceError("cannot extract PDF attachments", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", model.NewSourceError("cannot read scratch directory", err)
	}
	for _, want := range invoiceAttachmentNames {
		for _, entry := range entries {
			if !strings.EqualFold(entry.Name(), want) {
				continue
			}
			content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, "", model.NewSourceError("cannot read extracted attachment", err)
			}
			return content, entry.Name(), nil
		}
	}
	return nil, "", model.NewParseError("attachment", "no invoice attachment in PDF", nil)
}

// EmbedXML attaches the invoice XML to the PDF under the given attachment
// name and returns the combined document.
func EmbedXML(pdfData, xmlData []byte, name string) ([]byte, error) {
	if name == "" {
		name = invoiceAttachmentNames[0]
	}

	dir, err := os.MkdirTemp("", "facturx-embed-")
	if err != nil {
		return nil, model.NewSourceError("cannot create scratch directory", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, xmlData, 0o600); err != nil {
		return nil, model.NewSourceError("cannot stage attachment", err)
	}

	var out bytes.Buffer
	if err := api.AddAttachments(bytes.NewReader(pdfData), &out, []string{path}, false, configuration()); err != nil {
		return nil, model.NewSourceError("cannot attach invoice to PDF", err)
	}
	return out.Bytes(), nil
}
