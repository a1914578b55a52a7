package typeutil

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// ValueOf wraps x, which must already be represented as the native Go type of t (see Type.GoType) or as the variant
// of t, into a Value. Any other representation fails with ErrTypeMismatch. A nil x, including a nil slice or
// pointer of the native type, wraps to a nil Value.
func ValueOf(t Type, x any) (Value, error) {
	if !t.Valid() {
		return nil, unsupported("ValueOf", t)
	}
	if x == nil {
		return nil, nil
	}
	if v, ok := x.(Value); ok {
		if v.Type() != t {
			return nil, mismatch(t, v)
		}
		return v, nil
	}
	switch t {
	case TypeBoolean:
		if b, ok := x.(bool); ok {
			return Boolean(b), nil
		}
	case TypeChar:
		if r, ok := x.(rune); ok {
			return Char(r), nil
		}
	case TypeByte:
		if n, ok := x.(int8); ok {
			return Byte(n), nil
		}
	case TypeShort:
		if n, ok := x.(int16); ok {
			return Short(n), nil
		}
	case TypeInt:
		if n, ok := x.(int32); ok {
			return Int(n), nil
		}
	case TypeLong:
		if n, ok := x.(int64); ok {
			return Long(n), nil
		}
	case TypeFloat:
		if f, ok := x.(float32); ok {
			return Float(f), nil
		}
	case TypeDouble:
		if f, ok := x.(float64); ok {
			return Double(f), nil
		}
	case TypeString:
		if s, ok := x.(string); ok {
			return String(s), nil
		}
	case TypeDate:
		switch d := x.(type) {
		case time.Time:
			return Date(d), nil
		case *time.Time:
			if d != nil {
				return Date(*d), nil
			}
			return nil, nil
		}
	case TypeByteArray:
		if b, ok := x.([]byte); ok {
			if b == nil {
				return nil, nil
			}
			return ByteArray(b), nil
		}
	case TypeClass:
		if rt, ok := x.(reflect.Type); ok {
			return ClassOf(rt), nil
		}
	case TypeBigInteger:
		if n, ok := x.(*big.Int); ok {
			if n == nil {
				return nil, nil
			}
			return NewBigInteger(n), nil
		}
	case TypeBigDecimal:
		switch d := x.(type) {
		case decimal.Decimal:
			return NewBigDecimal(d), nil
		case *decimal.Decimal:
			if d != nil {
				return NewBigDecimal(*d), nil
			}
			return nil, nil
		}
	}
	return nil, mismatch(t, x)
}

// Coerce converts x, a loosely typed Go value such as a decoded JSON field, into a value of type t. Values already
// in the native representation of t are wrapped as by ValueOf; Values of other types are converted as by Convert;
// anything else goes through the spf13/cast conversions, and text goes through Parse. A nil x coerces to a nil
// Value.
func Coerce(t Type, x any, opts ...Option) (Value, error) {
	if !t.Valid() {
		return nil, unsupported("Coerce", t)
	}
	if v, ok := x.(Value); ok {
		return Convert(v, t, opts...)
	}
	if v, err := ValueOf(t, x); err == nil {
		return v, nil
	}
	if s, ok := x.(string); ok {
		v, err := Parse(t, s, opts...)
		if err == nil {
			log().Debug("coerced text", zap.Stringer("type", t), zap.String("input", s))
		}
		return v, err
	}
	v, err := coerceLoose(t, x, configure(opts))
	if err != nil {
		return nil, conversionError(TypeUnknown, t, fmt.Sprint(x), err)
	}
	log().Debug("coerced value", zap.Stringer("type", t), zap.String("from", fmt.Sprintf("%T", x)))
	return v, nil
}

func coerceLoose(t Type, x any, conf config) (Value, error) {
	switch t {
	case TypeBoolean:
		b, err := cast.ToBoolE(x)
		return wrap(Boolean(b), err)
	case TypeChar:
		r, err := cast.ToInt32E(x)
		return wrap(Char(r), err)
	case TypeByte:
		n, err := cast.ToInt8E(x)
		return wrap(Byte(n), err)
	case TypeShort:
		n, err := cast.ToInt16E(x)
		return wrap(Short(n), err)
	case TypeInt:
		n, err := cast.ToInt32E(x)
		return wrap(Int(n), err)
	case TypeLong:
		n, err := cast.ToInt64E(x)
		return wrap(Long(n), err)
	case TypeFloat:
		f, err := cast.ToFloat32E(x)
		return wrap(Float(f), err)
	case TypeDouble:
		f, err := cast.ToFloat64E(x)
		return wrap(Double(f), err)
	case TypeString:
		s, err := cast.ToStringE(x)
		return wrap(String(s), err)
	case TypeDate:
		d, err := cast.ToTimeInDefaultLocationE(x, conf.location)
		return wrap(Date(d), err)
	case TypeBigInteger:
		return coerceBigInteger(x)
	case TypeBigDecimal:
		s, err := cast.ToStringE(x)
		if err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(s)
		return wrap(NewBigDecimal(d), err)
	}
	return nil, xerrors.Errorf("no loose conversion from %T: %w", x, ErrTypeMismatch)
}

// coerceBigInteger keeps the full range of unsigned and floating point input, which int64 cannot hold.
func coerceBigInteger(x any) (Value, error) {
	var n *big.Int
	var err error
	switch y := x.(type) {
	case uint:
		n = new(big.Int).SetUint64(uint64(y))
	case uint64:
		n = new(big.Int).SetUint64(y)
	case uintptr:
		n = new(big.Int).SetUint64(uint64(y))
	case float32:
		n, err = ToBigInteger(Float(y))
	case float64:
		n, err = ToBigInteger(Double(y))
	case decimal.Decimal:
		n = y.BigInt()
	default:
		i, err := cast.ToInt64E(x)
		return wrap(BigIntegerFromInt64(i), err)
	}
	if err != nil {
		return nil, err
	}
	return BigInteger{i: n}, nil
}
