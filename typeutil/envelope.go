package typeutil

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/xerrors"
)

// Tagged carries a Value together with its tag through encodings which otherwise lose the tag, so that a value
// decodes back to the same variant. The zero Tagged holds nil.
//
// In MessagePack a Tagged is an array of the type name and the native payload; CLASS, BIG_INTEGER and BIG_DECIMAL
// payloads are their canonical text. In JSON it is an object with "type" and "value" members, where the value is the
// canonical text. A nil Value is encoded as nil in MessagePack and null in JSON.
type Tagged struct {
	Value Value
}

var (
	_ msgpack.CustomEncoder = Tagged{}
	_ msgpack.CustomDecoder = (*Tagged)(nil)
	_ json.Marshaler        = Tagged{}
	_ json.Unmarshaler      = (*Tagged)(nil)
)

// EncodeMsgpack writes t as a two element array of type name and payload, or as nil.
func (t Tagged) EncodeMsgpack(enc *msgpack.Encoder) error {
	if t.Value == nil {
		return enc.EncodeNil()
	}
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeString(t.Value.Type().String()); err != nil {
		return err
	}
	switch x := t.Value.(type) {
	case Boolean:
		return enc.EncodeBool(bool(x))
	case Char:
		return enc.EncodeInt32(int32(x))
	case Byte:
		return enc.EncodeInt8(int8(x))
	case Short:
		return enc.EncodeInt16(int16(x))
	case Int:
		return enc.EncodeInt32(int32(x))
	case Long:
		return enc.EncodeInt64(int64(x))
	case Float:
		return enc.EncodeFloat32(float32(x))
	case Double:
		return enc.EncodeFloat64(float64(x))
	case String:
		return enc.EncodeString(string(x))
	case Date:
		return enc.EncodeTime(x.Time())
	case ByteArray:
		return enc.EncodeBytes(x)
	case Class, BigInteger, BigDecimal:
		return enc.EncodeString(x.String())
	}
	return unsupported("EncodeMsgpack", t.Value.Type())
}

// DecodeMsgpack reads a value written by EncodeMsgpack. An unknown type name fails with ErrUnsupportedType and a
// malformed array with ErrConversion.
func (t *Tagged) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n == -1 {
		t.Value = nil
		return nil
	}
	if n != 2 {
		return xerrors.Errorf("tagged value: want array of 2, got %d: %w", n, ErrConversion)
	}
	name, err := dec.DecodeString()
	if err != nil {
		return err
	}
	typ, err := ParseType(name)
	if err != nil {
		return err
	}
	v, err := decodeMsgpackPayload(dec, typ)
	if err != nil {
		return xerrors.Errorf("tagged %s value: %w", typ, err)
	}
	t.Value = v
	return nil
}

func decodeMsgpackPayload(dec *msgpack.Decoder, t Type) (Value, error) {
	switch t {
	case TypeBoolean:
		x, err := dec.DecodeBool()
		return wrap(Boolean(x), err)
	case TypeChar:
		x, err := dec.DecodeInt32()
		return wrap(Char(x), err)
	case TypeByte:
		x, err := dec.DecodeInt8()
		return wrap(Byte(x), err)
	case TypeShort:
		x, err := dec.DecodeInt16()
		return wrap(Short(x), err)
	case TypeInt:
		x, err := dec.DecodeInt32()
		return wrap(Int(x), err)
	case TypeLong:
		x, err := dec.DecodeInt64()
		return wrap(Long(x), err)
	case TypeFloat:
		x, err := dec.DecodeFloat32()
		return wrap(Float(x), err)
	case TypeDouble:
		x, err := dec.DecodeFloat64()
		return wrap(Double(x), err)
	case TypeString:
		x, err := dec.DecodeString()
		return wrap(String(x), err)
	case TypeDate:
		x, err := dec.DecodeTime()
		return wrap(Date(x), err)
	case TypeByteArray:
		x, err := dec.DecodeBytes()
		return wrap(ByteArray(x), err)
	case TypeClass, TypeBigInteger, TypeBigDecimal:
		s, err := dec.DecodeString()
		if err != nil {
			return nil, err
		}
		return Parse(t, s)
	}
	return nil, unsupported("DecodeMsgpack", t)
}

type taggedJSON struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

var jsonNull = []byte("null")

// MarshalJSON writes t as {"type": name, "value": text}, or null.
func (t Tagged) MarshalJSON() ([]byte, error) {
	if t.Value == nil {
		return jsonNull, nil
	}
	return json.Marshal(taggedJSON{Type: t.Value.Type().String(), Value: t.Value.String()})
}

// UnmarshalJSON reads a value written by MarshalJSON, parsing the text as by Parse.
func (t *Tagged) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		t.Value = nil
		return nil
	}
	var raw taggedJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return xerrors.Errorf("tagged value: %w", err)
	}
	typ, err := ParseType(raw.Type)
	if err != nil {
		return err
	}
	v, err := Parse(typ, raw.Value)
	if err != nil {
		return err
	}
	t.Value = v
	return nil
}

// TagAll wraps every element of values in a Tagged.
func TagAll(values []Value) []Tagged {
	if values == nil {
		return nil
	}
	result := make([]Tagged, len(values))
	for i, v := range values {
		result[i] = Tagged{Value: v}
	}
	return result
}

// UntagAll returns the values carried by tagged.
func UntagAll(tagged []Tagged) []Value {
	if tagged == nil {
		return nil
	}
	result := make([]Value, len(tagged))
	for i, t := range tagged {
		result[i] = t.Value
	}
	return result
}
