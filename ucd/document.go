package ucd

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// The grouped XML distribution of the UCD factors common attributes out of
// char entries into enclosing groups. We only declare the attributes this
// generator consumes; encoding/xml skips the rest.

// hexCP is a codepoint attribute in bare hexadecimal notation, as used by the
// cp, first-cp and last-cp attributes.
type hexCP rune

// UnmarshalXMLAttr decodes a bare hex codepoint attribute.
func (h *hexCP) UnmarshalXMLAttr(attr xml.Attr) error {
	v, err := strconv.ParseUint(attr.Value, 16, 32)
	if err != nil {
		return fmt.Errorf("malformed codepoint attribute %s=%q: %w", attr.Name.Local, attr.Value, err)
	}
	*h = hexCP(v)
	return nil
}

// Document is the root element of a grouped UCD file.
type Document struct {
	Description string `xml:"description"`
	Repertoire  struct {
		Groups []Group `xml:"group"`
	} `xml:"repertoire"`
}

// Group is a repertoire group. Its attribute values act as defaults for the
// char entries it encloses.
type Group struct {
	GeneralCategory      string `xml:"gc,attr"`
	GraphemeClusterBreak string `xml:"GCB,attr"`
	IndicConjunctBreak   string `xml:"InCB,attr"`
	ExtendedPictographic string `xml:"ExtPict,attr"`
	EastAsian            string `xml:"ea,attr"`

	// Matched with ",any" so that <reserved>, <surrogate> and
	// <noncharacter> entries are treated like <char>.
	Chars []Char `xml:",any"`
}

// Char is a single char entry, covering either one codepoint (cp) or a range
// (first-cp, last-cp).
type Char struct {
	Codepoint      hexCP `xml:"cp,attr"`
	FirstCodepoint hexCP `xml:"first-cp,attr"`
	LastCodepoint  hexCP `xml:"last-cp,attr"`

	GeneralCategory      string `xml:"gc,attr"`
	GraphemeClusterBreak string `xml:"GCB,attr"`
	IndicConjunctBreak   string `xml:"InCB,attr"`
	ExtendedPictographic string `xml:"ExtPict,attr"`
	EastAsian            string `xml:"ea,attr"`
}

// Range returns the codepoint range covered by a char entry. A single
// codepoint is returned as from == to.
func (c *Char) Range() (from, to rune) {
	if c.Codepoint != 0 {
		return rune(c.Codepoint), rune(c.Codepoint)
	}
	return rune(c.FirstCodepoint), rune(c.LastCodepoint)
}

// ReadDocument parses a grouped UCD XML document.
func ReadDocument(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := xml.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("cannot parse UCD document: %w", err)
	}
	tracer().Infof("UCD document %q, %d groups", doc.Description, len(doc.Repertoire.Groups))
	return doc, nil
}

// inherit resolves a char attribute against its group default.
func inherit(char, group string) string {
	if char != "" {
		return char
	}
	return group
}
