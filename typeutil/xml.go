package typeutil

import (
	"encoding/hex"

	"github.com/beevik/etree"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"

	"github.com/splunk/go-typekit/domutil"
)

const (
	typeAttr     = "type"
	nilAttr      = "nil"
	encodingAttr = "encoding"
	hexEncoding  = "hex"
)

// MarshalElement appends a child element with the given name to parent, holding the canonical text of v and its tag in
// a "type" attribute. A nil v is written as an empty element with a nil="true" attribute. Text which XML cannot carry
// unchanged (see domutil.IsVerbatimText) is written as hex of its UTF-8 bytes, marked with encoding="hex".
func MarshalElement(parent *etree.Element, name string, v Value) *etree.Element {
	if v == nil {
		return domutil.AppendTextElement(parent, name, "", domutil.Attribute{Key: nilAttr, Value: "true"})
	}
	typ := domutil.Attribute{Key: typeAttr, Value: v.Type().String()}
	text := v.String()
	if !domutil.IsVerbatimText(text) {
		return domutil.AppendTextElement(parent, name, hex.EncodeToString([]byte(text)), typ,
			domutil.Attribute{Key: encodingAttr, Value: hexEncoding})
	}
	return domutil.AppendTextElement(parent, name, text, typ)
}

// UnmarshalElement parses the text of el as a value of type t, decoding it first if el is marked encoding="hex". If
// el carries a "type" attribute it must name t.
func UnmarshalElement(el *etree.Element, t Type, opts ...Option) (Value, error) {
	if isNil(el) {
		return nil, nil
	}
	if name, ok := domutil.Attr(el, typeAttr); ok {
		got, err := ParseType(name)
		if err != nil {
			return nil, xerrors.Errorf("element <%s>: %w", el.Tag, err)
		}
		if got != t {
			return nil, xerrors.Errorf("element <%s> holds %s: %w", el.Tag, got, &MismatchError{Want: t, Got: name})
		}
	}
	text, err := elementText(el, t)
	if err != nil {
		return nil, xerrors.Errorf("element <%s>: %w", el.Tag, err)
	}
	v, err := Parse(t, text, opts...)
	if err != nil {
		return nil, xerrors.Errorf("element <%s>: %w", el.Tag, err)
	}
	return v, nil
}

// UnmarshalTaggedElement parses an element written by MarshalElement, taking the type from its "type" attribute.
func UnmarshalTaggedElement(el *etree.Element, opts ...Option) (Value, error) {
	if isNil(el) {
		return nil, nil
	}
	name, err := domutil.RequireAttr(el, typeAttr)
	if err != nil {
		return nil, err
	}
	t, err := ParseType(name)
	if err != nil {
		return nil, xerrors.Errorf("element <%s>: %w", el.Tag, err)
	}
	return UnmarshalElement(el, t, opts...)
}

// elementText returns the text of el, decoding it if el has an "encoding" attribute.
func elementText(el *etree.Element, t Type) (string, error) {
	text := domutil.Text(el)
	enc, ok := domutil.Attr(el, encodingAttr)
	if !ok {
		return text, nil
	}
	if enc != hexEncoding {
		return "", conversionError(TypeString, t, text, xerrors.Errorf("unknown text encoding %q", enc))
	}
	b, err := hex.DecodeString(text)
	if err != nil {
		return "", conversionError(TypeString, t, text, err)
	}
	return string(b), nil
}

func isNil(el *etree.Element) bool {
	v, ok := domutil.Attr(el, nilAttr)
	return ok && v == "true"
}

// MarshalElements appends a child element with the given name to parent, holding one itemName element per value.
func MarshalElements(parent *etree.Element, name, itemName string, values []Value) *etree.Element {
	el := parent.CreateElement(name)
	for _, v := range values {
		MarshalElement(el, itemName, v)
	}
	return el
}

// UnmarshalElements parses every itemName child of el with UnmarshalTaggedElement. Every failing child is reported in
// the returned error.
func UnmarshalElements(el *etree.Element, itemName string, opts ...Option) ([]Value, error) {
	children := domutil.Children(el, itemName)
	result := make([]Value, len(children))
	var errs *multierror.Error
	for i, child := range children {
		v, err := UnmarshalTaggedElement(child, opts...)
		if err != nil {
			errs = multierror.Append(errs, xerrors.Errorf("item %d: %w", i, err))
			continue
		}
		result[i] = v
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return result, nil
}
