// Package cii reads and writes UN/CEFACT Cross-Industry-Invoice XML. One
// reader/writer pair exists per supported standard version; a registry
// detects which version a document belongs to by its guideline identifier.
package cii

import (
	"github.com/beevik/etree"

	"github.com/rezonia/facturx/internal/model"
)

// Version identifies a supported standard version of the CII dialect.
type Version int

const (
	// Version21 is ZUGFeRD 2.1 / Factur-X 1.0.
	Version21 Version = 21
)

func (v Version) String() string {
	switch v {
	case Version21:
		return "2.1"
	default:
		return "unknown"
	}
}

// Reader parses one standard version of the CII dialect into the model.
type Reader interface {
	// Read walks a parsed XML tree and populates an InvoiceDescriptor.
	Read(doc *etree.Document) (*model.InvoiceDescriptor, error)

	// CanRead reports whether the raw document claims a guideline this
	// reader understands. A coarse containment check, not validation.
	CanRead(content []byte) bool

	// Version returns the standard version this reader handles.
	Version() Version
}

// Registry holds the readers for all supported versions.
// Order matters: more specific versions should come before generic ones.
type Registry struct {
	readers []Reader
}

// NewRegistry creates a registry with all supported readers.
func NewRegistry() *Registry {
	return &Registry{
		readers: []Reader{
			newReader21(),
		},
	}
}

// Detect identifies the reader for the given document content.
func (r *Registry) Detect(content []byte) (Reader, error) {
	for _, rd := range r.readers {
		if rd.CanRead(content) {
			return rd, nil
		}
	}
	return nil, model.NewParseError("guideline", "no reader recognizes this document", nil)
}

// Reader returns the reader for a specific version, or nil.
func (r *Registry) Reader(v Version) Reader {
	for _, rd := range r.readers {
		if rd.Version() == v {
			return rd
		}
	}
	return nil
}
