package typeutil

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// Type tags the representation held by a Value. The set of tags is closed: every Value has exactly one of the tags
// below, and TypeUnknown or any other integer is rejected by every operation that takes a Type.
type Type int

// Members of the Type enumeration, in declaration order.
const (
	TypeUnknown Type = iota
	TypeBoolean
	TypeChar
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeString
	TypeDate
	TypeByteArray
	TypeClass
	TypeBigInteger
	TypeBigDecimal
)

var typeNames = [...]string{
	TypeBoolean:    "BOOLEAN",
	TypeChar:       "CHAR",
	TypeByte:       "BYTE",
	TypeShort:      "SHORT",
	TypeInt:        "INT",
	TypeLong:       "LONG",
	TypeFloat:      "FLOAT",
	TypeDouble:     "DOUBLE",
	TypeString:     "STRING",
	TypeDate:       "DATE",
	TypeByteArray:  "BYTE_ARRAY",
	TypeClass:      "CLASS",
	TypeBigInteger: "BIG_INTEGER",
	TypeBigDecimal: "BIG_DECIMAL",
}

var typesByName = func() map[string]Type {
	result := make(map[string]Type, len(typeNames))
	for _, t := range Types() {
		result[typeNames[t]] = t
	}
	return result
}()

// Types returns every member of the enumeration in declaration order.
func Types() []Type {
	result := make([]Type, 0, len(typeNames)-1)
	for t := TypeBoolean; t <= TypeBigDecimal; t++ {
		result = append(result, t)
	}
	return result
}

// Valid returns true if and only if t is a member of the enumeration.
func (t Type) Valid() bool {
	return t >= TypeBoolean && t <= TypeBigDecimal
}

// String returns the canonical name of t, such as "BIG_DECIMAL".
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType returns the tag with the given name. Names are matched after normalizing to upper snake case, so
// "BIG_DECIMAL", "bigDecimal", "big-decimal" and "Big Decimal" all name TypeBigDecimal.
func ParseType(name string) (Type, error) {
	name = strings.TrimSpace(name)
	if t, ok := typesByName[strings.ToUpper(name)]; ok {
		return t, nil
	}
	if t, ok := typesByName[strcase.ToScreamingSnake(name)]; ok {
		return t, nil
	}
	return TypeUnknown, xerrors.Errorf("no type named %q: %w", name, ErrUnsupportedType)
}

// IsNumeric returns true for the integral, floating-point and big-number tags.
func (t Type) IsNumeric() bool {
	return NumericTypes.Contains(t)
}

// IsIntegral returns true for BYTE, SHORT, INT, LONG and BIG_INTEGER.
func (t Type) IsIntegral() bool {
	return IntegralTypes.Contains(t)
}

// IsMutable returns true for tags whose native payload can be modified through a shared reference, so that Clone
// must copy it.
func (t Type) IsMutable() bool {
	return MutableTypes.Contains(t)
}

var reflectTypeType = reflect.TypeOf((*reflect.Type)(nil)).Elem()

// goTypes maps each tag to the native Go type its payload is exposed as by Value.Interface.
var goTypes = [...]reflect.Type{
	TypeBoolean:    reflect.TypeOf(false),
	TypeChar:       reflect.TypeOf(rune(0)),
	TypeByte:       reflect.TypeOf(int8(0)),
	TypeShort:      reflect.TypeOf(int16(0)),
	TypeInt:        reflect.TypeOf(int32(0)),
	TypeLong:       reflect.TypeOf(int64(0)),
	TypeFloat:      reflect.TypeOf(float32(0)),
	TypeDouble:     reflect.TypeOf(float64(0)),
	TypeString:     reflect.TypeOf(""),
	TypeDate:       reflect.TypeOf(time.Time{}),
	TypeByteArray:  reflect.TypeOf([]byte(nil)),
	TypeClass:      reflectTypeType,
	TypeBigInteger: reflect.TypeOf((*big.Int)(nil)),
	TypeBigDecimal: reflect.TypeOf(decimal.Decimal{}),
}

// tagsByGoType resolves both native Go types and this package's variant types to tags. Go spells rune as int32, so
// the native int32 type resolves to TypeInt; only the Char variant resolves to TypeChar. The platform int resolves
// to TypeLong, and the dynamic type of a reflect.Type resolves to TypeClass.
var tagsByGoType = func() map[reflect.Type]Type {
	result := map[reflect.Type]Type{
		reflect.TypeOf(Boolean(false)): TypeBoolean,
		reflect.TypeOf(Char(0)):        TypeChar,
		reflect.TypeOf(Byte(0)):        TypeByte,
		reflect.TypeOf(Short(0)):       TypeShort,
		reflect.TypeOf(Int(0)):         TypeInt,
		reflect.TypeOf(Long(0)):        TypeLong,
		reflect.TypeOf(Float(0)):       TypeFloat,
		reflect.TypeOf(Double(0)):      TypeDouble,
		reflect.TypeOf(String("")):     TypeString,
		reflect.TypeOf(Date{}):         TypeDate,
		reflect.TypeOf(ByteArray(nil)): TypeByteArray,
		reflect.TypeOf(Class{}):        TypeClass,
		reflect.TypeOf(BigInteger{}):   TypeBigInteger,
		reflect.TypeOf(BigDecimal{}):   TypeBigDecimal,

		reflect.TypeOf(0):                       TypeLong,
		reflect.TypeOf(big.Int{}):               TypeBigInteger,
		reflect.TypeOf(reflect.TypeOf(0)):       TypeClass,
		reflect.TypeOf((*time.Time)(nil)):       TypeDate,
		reflect.TypeOf((*decimal.Decimal)(nil)): TypeBigDecimal,
	}
	for _, t := range Types() {
		if t == TypeChar {
			continue
		}
		result[goTypes[t]] = t
	}
	return result
}()

// GoType returns the native Go type of the payload carried by values tagged t.
func (t Type) GoType() (reflect.Type, error) {
	if !t.Valid() {
		return nil, unsupported("GoType", t)
	}
	return goTypes[t], nil
}

// TypeForGoType returns the tag whose values are represented by the Go type rt. Both native payload types (int32,
// time.Time, *big.Int, ...) and this package's variant types (Int, Date, BigInteger, ...) are recognized.
func TypeForGoType(rt reflect.Type) (Type, error) {
	if rt == nil {
		return TypeUnknown, xerrors.Errorf("nil Go type: %w", ErrUnsupportedType)
	}
	if t, ok := tagsByGoType[rt]; ok {
		return t, nil
	}
	return TypeUnknown, xerrors.Errorf("no type tag for Go type %s: %w", rt, ErrUnsupportedType)
}

// TypeOf returns the tag of v, or TypeUnknown if v is nil.
func TypeOf(v Value) Type {
	if v == nil {
		return TypeUnknown
	}
	return v.Type()
}
