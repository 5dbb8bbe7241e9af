// Package xmltree extracts typed scalars from an etree XML tree using
// namespace-aware path expressions. All lookups tolerate absent nodes; only
// the caller decides whether absence matters.
package xmltree

import (
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// UN/CEFACT CII namespace URIs.
const (
	NSDocument  = "urn:un:unece:uncefact:data:standard:CrossIndustryInvoice:100"
	NSReusable  = "urn:un:unece:uncefact:data:standard:ReusableAggregateBusinessInformationEntity:100"
	NSQualified = "urn:un:unece:uncefact:data:standard:QualifiedDataType:10"
	NSExtended  = "urn:un:unece:uncefact:data:standard:QualifiedDataType:100"
	NSBasic     = "urn:un:unece:uncefact:data:standard:UnqualifiedDataType:100"
)

// CIINamespaces returns the prefix table used by the CII readers and writers.
func CIINamespaces() map[string]string {
	return map[string]string{
		"rsm": NSDocument,
		"ram": NSReusable,
		"qdt": NSQualified,
		"a":   NSExtended,
		"udt": NSBasic,
	}
}

// Format102 is the coded date format YYYYMMDD (format attribute "102").
const Format102 = "20060102"

var dateFormats = []string{
	Format102,
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Resolver evaluates prefixed paths against a document, translating the
// caller's namespace prefixes to whatever prefixes the document declares.
type Resolver struct {
	prefixMap map[string]string // caller prefix -> document prefix
}

// NewResolver builds a Resolver for doc from a caller prefix -> namespace URI
// table. Prefixes whose URI the document never declares are kept verbatim, so
// lookups against them simply come back absent.
func NewResolver(doc *etree.Document, table map[string]string) *Resolver {
	uriToPrefix := map[string]string{}
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, a := range e.Attr {
			switch {
			case a.Space == "xmlns":
				if _, ok := uriToPrefix[a.Value]; !ok {
					uriToPrefix[a.Value] = a.Key
				}
			case a.Space == "" && a.Key == "xmlns":
				if _, ok := uriToPrefix[a.Value]; !ok {
					uriToPrefix[a.Value] = ""
				}
			}
		}
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	if root := doc.Root(); root != nil {
		walk(root)
	}

	pm := make(map[string]string, len(table))
	for pfx, uri := range table {
		if dp, ok := uriToPrefix[uri]; ok {
			pm[pfx] = dp
		} else {
			pm[pfx] = pfx
		}
	}
	return &Resolver{prefixMap: pm}
}

func (r *Resolver) rewritePath(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if s == "" || s == "." || s == ".." || s == "*" || strings.HasPrefix(s, "@") {
			continue
		}
		idx := strings.Index(s, ":")
		if idx <= 0 {
			continue
		}
		dp, ok := r.prefixMap[s[:idx]]
		if !ok {
			continue
		}
		if dp == "" {
			segs[i] = s[idx+1:]
		} else {
			segs[i] = dp + ":" + s[idx+1:]
		}
	}
	return strings.Join(segs, "/")
}

// splitAttr splits a trailing attribute step ("/@name" or a bare "@name")
// off a path.
func splitAttr(path string) (elemPath, attr string) {
	if strings.HasPrefix(path, "@") {
		return ".", path[1:]
	}
	if idx := strings.LastIndex(path, "/@"); idx >= 0 {
		return path[:idx], path[idx+2:]
	}
	return path, ""
}

// Find returns the first element matching path under node, or nil.
func (r *Resolver) Find(node *etree.Element, path string) *etree.Element {
	if node == nil {
		return nil
	}
	if path == "" || path == "." {
		return node
	}
	return node.FindElement(r.rewritePath(path))
}

// FindAll returns all elements matching path under node, in document order.
func (r *Resolver) FindAll(node *etree.Element, path string) []*etree.Element {
	if node == nil {
		return nil
	}
	return node.FindElements(r.rewritePath(path))
}

// String returns the trimmed text of the node at path, or the value of a
// trailing "@attr" step. Absent nodes yield "".
func (r *Resolver) String(node *etree.Element, path string) string {
	elemPath, attr := splitAttr(path)
	e := r.Find(node, elemPath)
	if e == nil {
		return ""
	}
	if attr != "" {
		return e.SelectAttrValue(attr, "")
	}
	return strings.TrimSpace(e.Text())
}

// Bool returns the boolean at path, defaulting to false.
func (r *Resolver) Bool(node *etree.Element, path string) bool {
	s := r.String(node, path)
	return s == "true" || s == "1"
}

// Int returns the integer at path; ok is false when the node is absent or
// not numeric.
func (r *Resolver) Int(node *etree.Element, path string) (int, bool) {
	s := r.String(node, path)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Decimal returns the fixed-point decimal at path, or def (which may be nil)
// when the node is missing or unparsable. Parsing is locale independent.
func (r *Resolver) Decimal(node *etree.Element, path string, def *decimal.Decimal) *decimal.Decimal {
	s := r.String(node, path)
	if s == "" {
		return def
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return def
	}
	return &d
}

// DecimalOrZero returns the decimal at path, defaulting to zero.
func (r *Resolver) DecimalOrZero(node *etree.Element, path string) decimal.Decimal {
	zero := decimal.Zero
	return *r.Decimal(node, path, &zero)
}

// Date returns the date at path, or nil when absent or unparsable. A format
// attribute of "102" selects the coded YYYYMMDD form; otherwise the plain
// ISO forms are tried in a fixed order.
func (r *Resolver) Date(node *etree.Element, path string) *time.Time {
	elemPath, _ := splitAttr(path)
	e := r.Find(node, elemPath)
	if e == nil {
		return nil
	}
	text := strings.TrimSpace(e.Text())
	if text == "" {
		return nil
	}
	if e.SelectAttrValue("format", "") == "102" {
		if t, err := time.Parse(Format102, text); err == nil {
			return &t
		}
		return nil
	}
	for _, f := range dateFormats {
		if t, err := time.Parse(f, text); err == nil {
			return &t
		}
	}
	return nil
}
