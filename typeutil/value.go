package typeutil

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Value is a value tagged with its Type. The interface is sealed: the variants declared in this package are its only
// implementations, and each owns a payload of the native Go type its tag denotes. A nil Value stands for an absent
// value.
type Value interface {
	// Type returns the tag of this value.
	Type() Type
	// String returns the canonical text of this value. Parse(v.Type(), v.String()) returns a value equal to v for
	// every tag except CLASS, which only parses back for registered classes.
	String() string
	// Interface returns the payload as its native Go type. Mutable payloads are shared, not copied.
	Interface() any
	// Clone returns a value equal to this one which shares no mutable state with it.
	Clone() Value

	sealed()
}

// DateLayout is the layout of the canonical text of DATE values. Years outside 0000 to 9999 are written with a sign and
// as many digits as they need, as in "+10000-01-01T00:00:00Z", and instants in a zone whose offset has a seconds
// part are written in UTC.
const DateLayout = time.RFC3339Nano

type (
	// Boolean is a BOOLEAN value.
	Boolean bool
	// Char is a CHAR value holding a single code point. Code points which are not Unicode scalar values, such as lone
	// surrogates, have the escaped canonical text \uXXXX (or \UXXXXXXXX outside the 16-bit range).
	Char rune
	// Byte is a BYTE value. Bytes are signed.
	Byte int8
	// Short is a SHORT value.
	Short int16
	// Int is an INT value.
	Int int32
	// Long is a LONG value.
	Long int64
	// Float is a FLOAT value.
	Float float32
	// Double is a DOUBLE value.
	Double float64
	// String is a STRING value.
	String string
	// Date is a DATE value: an instant with nanosecond precision. Dates are equal when they denote the same instant,
	// regardless of location.
	Date time.Time
	// ByteArray is a BYTE_ARRAY value.
	ByteArray []byte
)

// Type returns TypeBoolean.
func (v Boolean) Type() Type { return TypeBoolean }

// String returns the canonical text of v.
func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }

// Interface returns v as a bool.
func (v Boolean) Interface() any { return bool(v) }

// Clone returns v, which holds no mutable state.
func (v Boolean) Clone() Value { return v }
func (Boolean) sealed() {}

// Type returns TypeChar.
func (v Char) Type() Type { return TypeChar }

// String returns the canonical text of v.
func (v Char) String() string {
	if !utf8.ValidRune(rune(v)) {
		return escapeChar(rune(v))
	}
	return string(rune(v))
}

// Interface returns v as a rune.
func (v Char) Interface() any { return rune(v) }

// Clone returns v, which holds no mutable state.
func (v Char) Clone() Value { return v }
func (Char) sealed() {}

// escapeChar returns the escaped text of a code point which UTF-8 cannot carry.
func escapeChar(r rune) string {
	if r >= 0 && r <= 0xFFFF {
		return fmt.Sprintf(`\u%04X`, r)
	}
	return fmt.Sprintf(`\U%08X`, uint32(r))
}

// unescapeChar reverses escapeChar. Both letter cases of the hex digits are accepted.
func unescapeChar(s string) (rune, bool) {
	var bits int
	switch {
	case len(s) == 6 && s[:2] == `\u`:
		bits = 16
	case len(s) == 10 && s[:2] == `\U`:
		bits = 32
	default:
		return 0, false
	}
	n, err := strconv.ParseUint(s[2:], 16, bits)
	if err != nil {
		return 0, false
	}
	return rune(int32(uint32(n))), true
}

// Type returns TypeByte.
func (v Byte) Type() Type { return TypeByte }

// String returns the canonical text of v.
func (v Byte) String() string { return strconv.FormatInt(int64(v), 10) }

// Interface returns v as an int8.
func (v Byte) Interface() any { return int8(v) }

// Clone returns v, which holds no mutable state.
func (v Byte) Clone() Value { return v }
func (Byte) sealed() {}

// Type returns TypeShort.
func (v Short) Type() Type { return TypeShort }

// String returns the canonical text of v.
func (v Short) String() string { return strconv.FormatInt(int64(v), 10) }

// Interface returns v as an int16.
func (v Short) Interface() any { return int16(v) }

// Clone returns v, which holds no mutable state.
func (v Short) Clone() Value { return v }
func (Short) sealed() {}

// Type returns TypeInt.
func (v Int) Type() Type { return TypeInt }

// String returns the canonical text of v.
func (v Int) String() string { return strconv.FormatInt(int64(v), 10) }

// Interface returns v as an int32.
func (v Int) Interface() any { return int32(v) }

// Clone returns v, which holds no mutable state.
func (v Int) Clone() Value { return v }
func (Int) sealed() {}

// Type returns TypeLong.
func (v Long) Type() Type { return TypeLong }

// String returns the canonical text of v.
func (v Long) String() string { return strconv.FormatInt(int64(v), 10) }

// Interface returns v as an int64.
func (v Long) Interface() any { return int64(v) }

// Clone returns v, which holds no mutable state.
func (v Long) Clone() Value { return v }
func (Long) sealed() {}

// Type returns TypeFloat.
func (v Float) Type() Type { return TypeFloat }

// String returns the canonical text of v.
func (v Float) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }

// Interface returns v as a float32.
func (v Float) Interface() any { return float32(v) }

// Clone returns v, which holds no mutable state.
func (v Float) Clone() Value { return v }
func (Float) sealed() {}

// Type returns TypeDouble.
func (v Double) Type() Type { return TypeDouble }

// String returns the canonical text of v.
func (v Double) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// Interface returns v as a float64.
func (v Double) Interface() any { return float64(v) }

// Clone returns v, which holds no mutable state.
func (v Double) Clone() Value { return v }
func (Double) sealed() {}

// Type returns TypeString.
func (v String) Type() Type { return TypeString }

// String returns the canonical text of v.
func (v String) String() string { return string(v) }

// Interface returns v as a string.
func (v String) Interface() any { return string(v) }

// Clone returns v, which holds no mutable state.
func (v String) Clone() Value { return v }
func (String) sealed() {}

// Type returns TypeDate.
func (v Date) Type() Type { return TypeDate }

// String returns the canonical text of v.
func (v Date) String() string { return formatDate(time.Time(v)) }

// Interface returns v as a time.Time.
func (v Date) Interface() any { return time.Time(v) }

// Clone returns v, which holds no mutable state.
func (v Date) Clone() Value { return v }
func (Date) sealed() {}

// Time returns the instant held by v.
func (v Date) Time() time.Time { return time.Time(v) }

// formatDate returns the canonical text of t, as described at DateLayout.
func formatDate(t time.Time) string {
	if _, offset := t.Zone(); offset%60 != 0 {
		t = t.UTC()
	}
	year := t.Year()
	if year >= 0 && year <= 9999 {
		return t.Format(DateLayout)
	}
	sign := '+'
	if year < 0 {
		sign, year = '-', -year
	}
	return fmt.Sprintf("%c%04d%s", sign, year, t.Format(DateLayout[len("2006"):]))
}

// DateFromMillis returns the DATE value at the given number of milliseconds since the Unix epoch, in UTC.
func DateFromMillis(ms int64) Date {
	return Date(time.UnixMilli(ms).UTC())
}

// Type returns TypeByteArray.
func (v ByteArray) Type() Type { return TypeByteArray }

// String returns the canonical text of v.
func (v ByteArray) String() string { return hex.EncodeToString(v) }

// Interface returns v as a []byte.
func (v ByteArray) Interface() any { return []byte(v) }
func (ByteArray) sealed() {}

// Clone returns a copy of v backed by a new array. A nil ByteArray clones to nil.
func (v ByteArray) Clone() Value {
	if v == nil {
		return ByteArray(nil)
	}
	result := make(ByteArray, len(v))
	copy(result, v)
	return result
}

// Class is a CLASS value holding a Go type. Its canonical text is the type's name as printed by reflect, which
// only parses back to a Class if the type was registered with RegisterClass or is the payload type of some tag.
type Class struct {
	t reflect.Type
}

// ClassOf returns the CLASS value holding rt.
func ClassOf(rt reflect.Type) Class {
	return Class{t: rt}
}

// GoType returns the Go type held by v.
func (v Class) GoType() reflect.Type { return v.t }

// Type returns TypeClass.
func (v Class) Type() Type { return TypeClass }

// String returns the canonical text of v.
func (v Class) String() string {
	if v.t == nil {
		return "<nil>"
	}
	return v.t.String()
}

// Interface returns v as a reflect.Type.
func (v Class) Interface() any { return v.t }

// Clone returns v, which holds no mutable state.
func (v Class) Clone() Value { return v }
func (Class) sealed() {}

// BigInteger is a BIG_INTEGER value. It is immutable: the integer is copied on the way in and on the way out. The
// zero BigInteger is 0.
type BigInteger struct {
	i *big.Int
}

// NewBigInteger returns the BIG_INTEGER value of x. A nil x is treated as 0.
func NewBigInteger(x *big.Int) BigInteger {
	if x == nil {
		return BigInteger{}
	}
	return BigInteger{i: new(big.Int).Set(x)}
}

// BigIntegerFromInt64 returns the BIG_INTEGER value of x.
func BigIntegerFromInt64(x int64) BigInteger {
	return BigInteger{i: big.NewInt(x)}
}

// Int returns a copy of the integer held by v.
func (v BigInteger) Int() *big.Int {
	return new(big.Int).Set(v.bigInt())
}

// bigInt returns the integer held by v without copying it. Callers must not modify the result.
func (v BigInteger) bigInt() *big.Int {
	if v.i == nil {
		return new(big.Int)
	}
	return v.i
}

// Type returns TypeBigInteger.
func (v BigInteger) Type() Type { return TypeBigInteger }

// String returns the canonical text of v.
func (v BigInteger) String() string { return v.bigInt().String() }

// Interface returns a copy of the integer held by v.
func (v BigInteger) Interface() any { return v.Int() }

// Clone returns v, which holds no mutable state.
func (v BigInteger) Clone() Value { return v }
func (BigInteger) sealed() {}

// BigDecimal is a BIG_DECIMAL value.
type BigDecimal struct {
	d decimal.Decimal
}

// NewBigDecimal returns the BIG_DECIMAL value of d.
func NewBigDecimal(d decimal.Decimal) BigDecimal {
	return BigDecimal{d: d}
}

// Decimal returns the decimal held by v.
func (v BigDecimal) Decimal() decimal.Decimal { return v.d }

// Type returns TypeBigDecimal.
func (v BigDecimal) Type() Type { return TypeBigDecimal }

// String returns the canonical text of v.
func (v BigDecimal) String() string { return v.d.String() }

// Interface returns v as a decimal.Decimal.
func (v BigDecimal) Interface() any { return v.d }

// Clone returns v, which holds no mutable state.
func (v BigDecimal) Clone() Value { return v }
func (BigDecimal) sealed() {}

// Clone returns a deep copy of v. Cloning nil returns nil.
func Clone(v Value) Value {
	if v == nil {
		return nil
	}
	return v.Clone()
}

// Format returns the canonical text of v. Formatting nil returns the empty string.
func Format(v Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}

// Zero returns the default value of t: false, zero, the empty string, the Unix epoch or an empty byte array. CLASS
// has no default value.
func Zero(t Type) (Value, error) {
	switch t {
	case TypeBoolean:
		return Boolean(false), nil
	case TypeChar:
		return Char(0), nil
	case TypeByte:
		return Byte(0), nil
	case TypeShort:
		return Short(0), nil
	case TypeInt:
		return Int(0), nil
	case TypeLong:
		return Long(0), nil
	case TypeFloat:
		return Float(0), nil
	case TypeDouble:
		return Double(0), nil
	case TypeString:
		return String(""), nil
	case TypeDate:
		return DateFromMillis(0), nil
	case TypeByteArray:
		return ByteArray{}, nil
	case TypeBigInteger:
		return BigInteger{}, nil
	case TypeBigDecimal:
		return BigDecimal{}, nil
	}
	return nil, unsupported("Zero", t)
}
