package typeutil

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/splunk/go-typekit/binio"
)

// WriteValue writes the payload of v to w. The tag is not written, so the reader must know it; see WriteTagged.
func WriteValue(w *binio.Writer, v Value) error {
	switch x := v.(type) {
	case nil:
		return nilValue("WriteValue")
	case Boolean:
		return w.WriteBool(bool(x))
	case Char:
		return w.WriteRune(rune(x))
	case Byte:
		return w.WriteInt8(int8(x))
	case Short:
		return w.WriteInt16(int16(x))
	case Int:
		return w.WriteInt32(int32(x))
	case Long:
		return w.WriteInt64(int64(x))
	case Float:
		return w.WriteFloat32(float32(x))
	case Double:
		return w.WriteFloat64(float64(x))
	case String:
		return w.WriteString(string(x))
	case Date:
		return w.WriteTime(x.Time())
	case ByteArray:
		return w.WriteBytes(x)
	case Class:
		return w.WriteString(x.String())
	case BigInteger:
		return w.WriteBigInt(x.bigInt())
	case BigDecimal:
		return w.WriteDecimal(x.d)
	}
	return unsupported("WriteValue", v.Type())
}

// ReadValue reads a payload of type t written by WriteValue.
func ReadValue(r *binio.Reader, t Type) (Value, error) {
	switch t {
	case TypeBoolean:
		x, err := r.ReadBool()
		return wrap(Boolean(x), err)
	case TypeChar:
		x, err := r.ReadRune()
		return wrap(Char(x), err)
	case TypeByte:
		x, err := r.ReadInt8()
		return wrap(Byte(x), err)
	case TypeShort:
		x, err := r.ReadInt16()
		return wrap(Short(x), err)
	case TypeInt:
		x, err := r.ReadInt32()
		return wrap(Int(x), err)
	case TypeLong:
		x, err := r.ReadInt64()
		return wrap(Long(x), err)
	case TypeFloat:
		x, err := r.ReadFloat32()
		return wrap(Float(x), err)
	case TypeDouble:
		x, err := r.ReadFloat64()
		return wrap(Double(x), err)
	case TypeString:
		x, err := r.ReadString()
		return wrap(String(x), err)
	case TypeDate:
		x, err := r.ReadTime()
		return wrap(Date(x), err)
	case TypeByteArray:
		x, err := r.ReadBytes()
		return wrap(ByteArray(x), err)
	case TypeClass:
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return wrap(ClassForName(name))
	case TypeBigInteger:
		x, err := r.ReadBigInt()
		return wrap(BigInteger{i: x}, err)
	case TypeBigDecimal:
		x, err := r.ReadDecimal()
		return wrap(NewBigDecimal(x), err)
	}
	return nil, unsupported("ReadValue", t)
}

// WriteTagged writes the tag of v in one byte followed by its payload. A nil v is written as the TypeUnknown tag
// alone, and reads back as nil.
func WriteTagged(w *binio.Writer, v Value) error {
	if v == nil {
		return w.WriteInt8(int8(TypeUnknown))
	}
	if err := w.WriteInt8(int8(v.Type())); err != nil {
		return err
	}
	return WriteValue(w, v)
}

// ReadTagged reads a value written by WriteTagged.
func ReadTagged(r *binio.Reader) (Value, error) {
	tag, err := r.ReadInt8()
	if err != nil {
		return nil, err
	}
	t := Type(tag)
	if t == TypeUnknown {
		return nil, nil
	}
	if !t.Valid() {
		return nil, unsupported("ReadTagged", t)
	}
	return ReadValue(r, t)
}

// WriteValues writes the number of values followed by every value as by WriteTagged.
func WriteValues(w *binio.Writer, values []Value) error {
	if len(values) > math.MaxInt32 {
		return xerrors.Errorf("%d values do not fit a length prefix: %w", len(values), binio.ErrInvalidLength)
	}
	if err := w.WriteInt32(int32(len(values))); err != nil {
		return err
	}
	for i, v := range values {
		if err := WriteTagged(w, v); err != nil {
			return xerrors.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// ReadValues reads values written by WriteValues. A count above the reader's MaxLength fails with
// binio.ErrInvalidLength.
func ReadValues(r *binio.Reader) ([]Value, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > r.MaxLength() {
		return nil, xerrors.Errorf("value count %d: %w", n, binio.ErrInvalidLength)
	}
	result := make([]Value, 0, min(int(n), 1024))
	for i := 0; i < int(n); i++ {
		v, err := ReadTagged(r)
		if err != nil {
			return nil, xerrors.Errorf("element %d: %w", i, err)
		}
		result = append(result, v)
	}
	return result, nil
}
