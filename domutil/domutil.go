// Package domutil contains helpers for building and reading small XML documents with etree, where values are carried
// as element text and metadata as attributes.
package domutil

import (
	"strings"
	"unicode/utf8"

	"github.com/beevik/etree"
	"golang.org/x/xerrors"
)

// ErrMissingNode is returned when a required child element or attribute is absent.
var ErrMissingNode = xerrors.New("missing node")

// Attribute is a single attribute applied by AppendTextElement.
type Attribute struct {
	Key   string
	Value string
}

// NewDocument returns a document with an XML declaration and a root element with the provided tag.
func NewDocument(rootTag string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc, doc.CreateElement(rootTag)
}

// AppendTextElement creates a child of parent with the given tag, attributes and text, and returns it.
func AppendTextElement(parent *etree.Element, tag, text string, attrs ...Attribute) *etree.Element {
	el := parent.CreateElement(tag)
	for _, a := range attrs {
		el.CreateAttr(a.Key, a.Value)
	}
	if text != "" {
		el.SetText(text)
	}
	return el
}

// IsVerbatimText reports whether s reads back unchanged after being written as the text of an element. Text holding a
// carriage return, a character outside the XML character range or invalid UTF-8 does not, and neither does text made
// only of whitespace, which indentation removes.
func IsVerbatimText(s string) bool {
	if s == "" {
		return true
	}
	if strings.Trim(s, " \t\n\r") == "" {
		return false
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
		if !isXMLChar(r) {
			return false
		}
		i += size
	}
	return true
}

// isXMLChar reports whether r is in the XML 1.0 Char production, less the carriage return which parsers normalize.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	default:
		return r >= 0x10000 && r <= utf8.MaxRune
	}
}

// Text returns the character data of el. Surrounding whitespace is preserved.
func Text(el *etree.Element) string {
	return el.Text()
}

// Attr returns the value of the attribute with the given key, and whether it was present.
func Attr(el *etree.Element, key string) (string, bool) {
	a := el.SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// RequireAttr returns the value of the attribute with the given key, or ErrMissingNode if it is absent.
func RequireAttr(el *etree.Element, key string) (string, error) {
	v, ok := Attr(el, key)
	if !ok {
		return "", xerrors.Errorf("attribute %q of <%s>: %w", key, el.Tag, ErrMissingNode)
	}
	return v, nil
}

// RequireChild returns the first child of parent with the given tag, or ErrMissingNode if there is none.
func RequireChild(parent *etree.Element, tag string) (*etree.Element, error) {
	el := parent.SelectElement(tag)
	if el == nil {
		return nil, xerrors.Errorf("element <%s> in <%s>: %w", tag, parent.Tag, ErrMissingNode)
	}
	return el, nil
}

// Children returns the children of parent with the given tag, in document order.
func Children(parent *etree.Element, tag string) []*etree.Element {
	return parent.SelectElements(tag)
}

// WriteString serializes doc. A positive indent pretty-prints the document with that many spaces per level.
func WriteString(doc *etree.Document, indent int) (string, error) {
	if indent > 0 {
		doc.Indent(indent)
	}
	s, err := doc.WriteToString()
	if err != nil {
		return "", xerrors.Errorf("unable to serialize document: %w", err)
	}
	return s, nil
}

// ReadString parses s into a document. A document without a root element is rejected.
func ReadString(s string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(strings.TrimSpace(s)); err != nil {
		return nil, xerrors.Errorf("unable to parse document: %w", err)
	}
	if doc.Root() == nil {
		return nil, xerrors.Errorf("root element: %w", ErrMissingNode)
	}
	return doc, nil
}
