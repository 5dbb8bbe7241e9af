package cii

import (
	"io"

	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/codes"
	"github.com/rezonia/facturx/internal/model"
)

// DetectVersion identifies the standard version of the document behind r
// without consuming it: the read position is restored before returning,
// whether detection succeeds or not.
func DetectVersion(r io.ReadSeeker) (Version, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, model.NewSourceError("stream is not seekable", err)
	}
	content, readErr := io.ReadAll(r)
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return 0, model.NewSourceError("cannot restore read position", err)
	}
	if readErr != nil {
		return 0, model.NewSourceError("cannot read stream", readErr)
	}

	rd, err := NewRegistry().Detect(content)
	if err != nil {
		return 0, err
	}
	return rd.Version(), nil
}

// Load reads a CII document from r, detects its version and parses it.
func Load(r io.Reader) (*model.InvoiceDescriptor, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, model.NewSourceError("cannot read stream", err)
	}
	return LoadBytes(content)
}

// LoadBytes parses a CII document held in memory.
func LoadBytes(content []byte) (*model.InvoiceDescriptor, error) {
	rd, err := NewRegistry().Detect(content)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, model.NewParseError("document", "malformed XML", err)
	}
	return rd.Read(doc)
}

// Save serializes d under the given standard version and d's own profile.
func Save(d *model.InvoiceDescriptor, w io.Writer, v Version) error {
	return SaveProfile(d, w, v, codes.ProfileUnknown)
}

// SaveProfile serializes d under the given standard version, restricted to
// the given target profile instead of d's own. The descriptor is left
// untouched; ProfileUnknown falls back to d.Profile.
func SaveProfile(d *model.InvoiceDescriptor, w io.Writer, v Version, p codes.Profile) error {
	if v != Version21 {
		return model.NewParseError("version", "unsupported version "+v.String(), nil)
	}
	doc, err := newWriter21().Write(d, p)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(w); err != nil {
		return model.NewSourceError("cannot write stream", err)
	}
	return nil
}
