package typeutil

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"

	"github.com/splunk/go-typekit/binio"
)

func nilValue(op string) error {
	return xerrors.Errorf("%s: %w", op, ErrNilValue)
}

// Convert returns v converted to the type to, following the same rules as the To* function for that type. If v
// already has type to it is returned as is. Options apply when v is text that must be parsed.
func Convert(v Value, to Type, opts ...Option) (Value, error) {
	if v == nil {
		return nil, nilValue("Convert")
	}
	if v.Type() == to {
		return v, nil
	}
	switch to {
	case TypeBoolean:
		x, err := ToBool(v)
		return wrap(Boolean(x), err)
	case TypeChar:
		x, err := ToChar(v)
		return wrap(Char(x), err)
	case TypeByte:
		x, err := ToByte(v)
		return wrap(Byte(x), err)
	case TypeShort:
		x, err := ToShort(v)
		return wrap(Short(x), err)
	case TypeInt:
		x, err := ToInt(v)
		return wrap(Int(x), err)
	case TypeLong:
		x, err := ToLong(v)
		return wrap(Long(x), err)
	case TypeFloat:
		x, err := ToFloat(v)
		return wrap(Float(x), err)
	case TypeDouble:
		x, err := ToDouble(v)
		return wrap(Double(x), err)
	case TypeString:
		x, err := ToString(v)
		return wrap(String(x), err)
	case TypeDate:
		x, err := ToDate(v, opts...)
		return wrap(Date(x), err)
	case TypeByteArray:
		x, err := ToByteArray(v)
		return wrap(ByteArray(x), err)
	case TypeClass:
		x, err := ToClass(v)
		return wrap(ClassOf(x), err)
	case TypeBigInteger:
		x, err := ToBigInteger(v)
		return wrap(BigInteger{i: x}, err)
	case TypeBigDecimal:
		x, err := ToBigDecimal(v)
		return wrap(NewBigDecimal(x), err)
	}
	return nil, unsupported("Convert", to)
}

func wrap(v Value, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ConvertValues converts every element of values to the type to. Nil elements stay nil. Every element which fails
// to convert is reported in the returned error, and its position in the result is left nil.
func ConvertValues(values []Value, to Type, opts ...Option) ([]Value, error) {
	if !to.Valid() {
		return nil, unsupported("ConvertValues", to)
	}
	return ConvertAll(values, func(v Value) (Value, error) {
		if v == nil {
			return nil, nil
		}
		return Convert(v, to, opts...)
	})
}

// ConvertAll applies f to every element of values. Every element for which f fails is reported in the returned error,
// and its position in the result is left as the zero value of T.
func ConvertAll[T any](values []Value, f func(Value) (T, error)) ([]T, error) {
	if values == nil {
		return nil, nil
	}
	result := make([]T, len(values))
	var errs *multierror.Error
	for i, v := range values {
		x, err := f(v)
		if err != nil {
			errs = multierror.Append(errs, xerrors.Errorf("element %d: %w", i, err))
			continue
		}
		result[i] = x
	}
	return result, errs.ErrorOrNil()
}

// ToBool converts v to a bool. Numbers are true when nonzero, text is parsed with strconv.ParseBool, and a byte array
// must hold exactly one byte.
func ToBool(v Value) (bool, error) {
	switch x := v.(type) {
	case nil:
		return false, nilValue("ToBool")
	case Boolean:
		return bool(x), nil
	case Char:
		b, err := strconv.ParseBool(string(rune(x)))
		if err != nil {
			return false, conversionError(TypeChar, TypeBoolean, x.String(), err)
		}
		return b, nil
	case Byte:
		return x != 0, nil
	case Short:
		return x != 0, nil
	case Int:
		return x != 0, nil
	case Long:
		return x != 0, nil
	case Float:
		return x != 0, nil
	case Double:
		return x != 0, nil
	case String:
		b, err := strconv.ParseBool(string(x))
		if err != nil {
			return false, conversionError(TypeString, TypeBoolean, string(x), err)
		}
		return b, nil
	case ByteArray:
		if len(x) != 1 {
			return false, conversionError(TypeByteArray, TypeBoolean, x.String(),
				xerrors.Errorf("want 1 byte, got %d", len(x)))
		}
		return x[0] != 0, nil
	case BigInteger:
		return x.bigInt().Sign() != 0, nil
	case BigDecimal:
		return !x.d.IsZero(), nil
	}
	return false, unsupported("ToBool", v.Type())
}

// ToChar converts v to a code point. Text and byte arrays must hold exactly one code point, or the escaped text of
// one as written by Char.String; numbers are truncated to 32 bits.
func ToChar(v Value) (rune, error) {
	switch x := v.(type) {
	case nil:
		return 0, nilValue("ToChar")
	case Char:
		return rune(x), nil
	case String:
		if r, ok := unescapeChar(string(x)); ok {
			return r, nil
		}
		r, size := utf8.DecodeRuneInString(string(x))
		if size == 0 || size != len(x) || (r == utf8.RuneError && size == 1) {
			return 0, conversionError(TypeString, TypeChar, string(x), xerrors.New("want exactly one code point"))
		}
		return r, nil
	case ByteArray:
		if r, ok := unescapeChar(string(x)); ok {
			return r, nil
		}
		r, size := utf8.DecodeRune(x)
		if size == 0 || size != len(x) || (r == utf8.RuneError && size == 1) {
			return 0, conversionError(TypeByteArray, TypeChar, x.String(), xerrors.New("want exactly one UTF-8 code point"))
		}
		return r, nil
	case Byte, Short, Int, Long, Float, Double, BigInteger, BigDecimal:
		return toSigned[int32](v, TypeChar, math.MinInt32, math.MaxInt32)
	}
	return 0, unsupported("ToChar", v.Type())
}

// ToByte converts v to an int8. Wider integers wrap, floats truncate toward zero after saturating to the int32 range,
// and text must hold a base 10 number in range.
func ToByte(v Value) (int8, error) {
	return toSigned[int8](v, TypeByte, math.MinInt32, math.MaxInt32)
}

// ToShort converts v to an int16 with the same rules as ToByte.
func ToShort(v Value) (int16, error) {
	return toSigned[int16](v, TypeShort, math.MinInt32, math.MaxInt32)
}

// ToInt converts v to an int32 with the same rules as ToByte.
func ToInt(v Value) (int32, error) {
	return toSigned[int32](v, TypeInt, math.MinInt32, math.MaxInt32)
}

// ToLong converts v to an int64. Floats truncate toward zero and saturate to the int64 range. Dates convert to Unix
// milliseconds.
func ToLong(v Value) (int64, error) {
	return toSigned[int64](v, TypeLong, math.MinInt64, math.MaxInt64)
}

// toSigned implements the integral conversions. Floats are truncated and saturated to [lo, hi] before narrowing to T.
func toSigned[T constraints.Signed](v Value, to Type, lo, hi int64) (T, error) {
	switch x := v.(type) {
	case nil:
		return 0, nilValue("To" + typeTitle(to))
	case Boolean:
		if x {
			return 1, nil
		}
		return 0, nil
	case Char:
		return T(x), nil
	case Byte:
		return T(x), nil
	case Short:
		return T(x), nil
	case Int:
		return T(x), nil
	case Long:
		return T(x), nil
	case Float:
		return T(truncateFloat(float64(x), lo, hi)), nil
	case Double:
		return T(truncateFloat(float64(x), lo, hi)), nil
	case String:
		return parseSigned[T](string(x), to)
	case Date:
		return T(time.Time(x).UnixMilli()), nil
	case ByteArray:
		return decodeFixed[T](x, to)
	case BigInteger:
		return T(lowBits(x.bigInt())), nil
	case BigDecimal:
		return T(lowBits(x.d.BigInt())), nil
	}
	return 0, unsupported("To"+typeTitle(to), v.Type())
}

// ToFloat converts v to a float32, rounding to the nearest representable value.
func ToFloat(v Value) (float32, error) {
	f, err := toFloat64(v, TypeFloat, 32)
	return float32(f), err
}

// ToDouble converts v to a float64, rounding to the nearest representable value.
func ToDouble(v Value) (float64, error) {
	return toFloat64(v, TypeDouble, 64)
}

func toFloat64(v Value, to Type, bits int) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nilValue("To" + typeTitle(to))
	case Boolean:
		if x {
			return 1, nil
		}
		return 0, nil
	case Char:
		return float64(x), nil
	case Byte:
		return float64(x), nil
	case Short:
		return float64(x), nil
	case Int:
		return float64(x), nil
	case Long:
		return float64(x), nil
	case Float:
		return float64(x), nil
	case Double:
		return float64(x), nil
	case String:
		f, err := strconv.ParseFloat(string(x), bits)
		if err != nil {
			return 0, conversionError(TypeString, to, string(x), err)
		}
		return f, nil
	case Date:
		return float64(time.Time(x).UnixMilli()), nil
	case ByteArray:
		return decodeFloat(x, bits, to)
	case BigInteger:
		f, _ := new(big.Float).SetInt(x.bigInt()).Float64()
		return f, nil
	case BigDecimal:
		f, _ := x.d.Float64()
		return f, nil
	}
	return 0, unsupported("To"+typeTitle(to), v.Type())
}

// ToString returns the canonical text of v.
func ToString(v Value) (string, error) {
	if v == nil {
		return "", nilValue("ToString")
	}
	return v.String(), nil
}

// ToDate converts v to a time. Numbers are Unix milliseconds, text is parsed as by Parse, and a byte array must hold
// eight bytes of big-endian Unix milliseconds.
func ToDate(v Value, opts ...Option) (time.Time, error) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, nilValue("ToDate")
	case Date:
		return time.Time(x), nil
	case String:
		return parseDate(string(x), configure(opts))
	case Byte, Short, Int, Long, Float, Double, ByteArray, BigInteger, BigDecimal:
		ms, err := ToLong(v)
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(ms).UTC(), nil
	}
	return time.Time{}, unsupported("ToDate", v.Type())
}

// ToByteArray returns the binary encoding of v. Fixed-width numbers are big-endian at their natural width, floats are
// IEEE 754 bits, dates are eight bytes of Unix milliseconds, big integers are minimal two's complement, and text
// (including CHAR, CLASS names and BIG_DECIMAL text) is UTF-8. The result never shares memory with v.
func ToByteArray(v Value) ([]byte, error) {
	switch x := v.(type) {
	case nil:
		return nil, nilValue("ToByteArray")
	case Boolean:
		if x {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case Char:
		return []byte(x.String()), nil
	case Byte:
		return appendFixed(nil, int8(x)), nil
	case Short:
		return appendFixed(nil, int16(x)), nil
	case Int:
		return appendFixed(nil, int32(x)), nil
	case Long:
		return appendFixed(nil, int64(x)), nil
	case Float:
		return appendFixed(nil, int32(math.Float32bits(float32(x)))), nil
	case Double:
		return appendFixed(nil, int64(math.Float64bits(float64(x)))), nil
	case String:
		return []byte(x), nil
	case Date:
		return appendFixed(nil, time.Time(x).UnixMilli()), nil
	case ByteArray:
		return []byte(x.Clone().(ByteArray)), nil
	case Class:
		return []byte(x.String()), nil
	case BigInteger:
		return binio.AppendTwosComplement(nil, x.bigInt()), nil
	case BigDecimal:
		return []byte(x.d.String()), nil
	}
	return nil, unsupported("ToByteArray", v.Type())
}

// ToBigInteger converts v to a big integer. Floats and decimals are truncated toward zero; infinite and NaN floats
// cannot be converted.
func ToBigInteger(v Value) (*big.Int, error) {
	switch x := v.(type) {
	case nil:
		return nil, nilValue("ToBigInteger")
	case Boolean, Char, Byte, Short, Int, Long, Date:
		n, err := ToLong(v)
		if err != nil {
			return nil, err
		}
		return big.NewInt(n), nil
	case Float:
		return floatToBigInt(float64(x), TypeFloat)
	case Double:
		return floatToBigInt(float64(x), TypeDouble)
	case String:
		n, ok := new(big.Int).SetString(string(x), 10)
		if !ok {
			return nil, conversionError(TypeString, TypeBigInteger, string(x), xerrors.New("not a base 10 integer"))
		}
		return n, nil
	case ByteArray:
		return binio.FromTwosComplement(x), nil
	case BigInteger:
		return x.Int(), nil
	case BigDecimal:
		return x.d.BigInt(), nil
	}
	return nil, unsupported("ToBigInteger", v.Type())
}

func floatToBigInt(f float64, from Type) (*big.Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, conversionError(from, TypeBigInteger, strconv.FormatFloat(f, 'g', -1, 64), xerrors.New("not finite"))
	}
	n, _ := big.NewFloat(f).Int(nil)
	return n, nil
}

// ToBigDecimal converts v to a decimal. Floats convert to the shortest decimal which rounds back to them; infinite
// and NaN floats cannot be converted. A byte array must hold decimal text.
func ToBigDecimal(v Value) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, nilValue("ToBigDecimal")
	case Boolean, Char, Byte, Short, Int, Long, Date:
		n, err := ToLong(v)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromInt(n), nil
	case Float:
		if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, conversionError(TypeFloat, TypeBigDecimal, x.String(), xerrors.New("not finite"))
		}
		return decimal.NewFromFloat32(float32(x)), nil
	case Double:
		if f := float64(x); math.IsNaN(f) || math.IsInf(f, 0) {
			return decimal.Zero, conversionError(TypeDouble, TypeBigDecimal, x.String(), xerrors.New("not finite"))
		}
		return decimal.NewFromFloat(float64(x)), nil
	case String:
		d, err := decimal.NewFromString(string(x))
		if err != nil {
			return decimal.Zero, conversionError(TypeString, TypeBigDecimal, string(x), err)
		}
		return d, nil
	case ByteArray:
		d, err := decimal.NewFromString(string(x))
		if err != nil {
			return decimal.Zero, conversionError(TypeByteArray, TypeBigDecimal, x.String(), err)
		}
		return d, nil
	case BigInteger:
		return decimal.NewFromBigInt(x.bigInt(), 0), nil
	case BigDecimal:
		return x.d, nil
	}
	return decimal.Zero, unsupported("ToBigDecimal", v.Type())
}

// ToClass converts v to a Go type. Text is looked up with ClassForName.
func ToClass(v Value) (reflect.Type, error) {
	switch x := v.(type) {
	case nil:
		return nil, nilValue("ToClass")
	case Class:
		return x.t, nil
	case String:
		c, err := ClassForName(string(x))
		if err != nil {
			return nil, err
		}
		return c.t, nil
	}
	return nil, unsupported("ToClass", v.Type())
}

// typeTitle returns the suffix of the To* function converting to t, used in error messages.
func typeTitle(t Type) string {
	switch t {
	case TypeBoolean:
		return "Bool"
	case TypeChar:
		return "Char"
	case TypeByte:
		return "Byte"
	case TypeShort:
		return "Short"
	case TypeInt:
		return "Int"
	case TypeLong:
		return "Long"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	}
	return t.String()
}
