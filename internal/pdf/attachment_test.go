package pdf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/facturx/internal/pdf"
)

func minimalPDF(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "minimal.pdf"))
	require.NoError(t, err)
	return data
}

func TestEmbedAndExtract(t *testing.T) {
	xml := []byte(`<?xml version="1.0"?><invoice>urn:factur-x.eu:1p0:minimum</invoice>`)

	combined, err := pdf.EmbedXML(minimalPDF(t), xml, "factur-x.xml")
	require.NoError(t, err)
	require.NotEmpty(t, combined)

	names, err := pdf.ListAttachments(combined)
	require.NoError(t, err)
	require.Len(t, names, 1)

	got, name, err := pdf.ExtractXML(combined)
	require.NoError(t, err)
	assert.Equal(t, "factur-x.xml", name)
	assert.Equal(t, xml, got)
}

func TestEmbedDefaultsAttachmentName(t *testing.T) {
	combined, err := pdf.EmbedXML(minimalPDF(t), []byte("<invoice/>"), "")
	require.NoError(t, err)

	_, name, err := pdf.ExtractXML(combined)
	require.NoError(t, err)
	assert.Equal(t, "factur-x.xml", name)
}

func TestExtractWithoutInvoiceAttachment(t *testing.T) {
	_, _, err := pdf.ExtractXML(minimalPDF(t))
	require.Error(t, err)
}

func TestExtractRejectsGarbage(t *testing.T) {
	_, _, err := pdf.ExtractXML([]byte("not a pdf"))
	require.Error(t, err)
}
