package typeutil_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/splunk/go-typekit"
	"github.com/splunk/go-typekit/typeutil"
)

func TestCompare(t *testing.T) {
	t.Parallel()
	dec := func(s string) typeutil.Value { return typeutil.NewBigDecimal(decimal.RequireFromString(s)) }
	nan := math.NaN()

	tests := []struct {
		name string
		a, b typeutil.Value
		want int
	}{
		{name: "nil nil", a: nil, b: nil, want: 0},
		{name: "nil first", a: nil, b: typeutil.Int(0), want: -1},
		{name: "nil second", a: typeutil.String(""), b: nil, want: 1},
		{name: "false true", a: typeutil.Boolean(false), b: typeutil.Boolean(true), want: -1},
		{name: "chars", a: typeutil.Char('b'), b: typeutil.Char('a'), want: 1},
		{name: "bytes signed", a: typeutil.Byte(-1), b: typeutil.Byte(1), want: -1},
		{name: "longs", a: typeutil.Long(5), b: typeutil.Long(5), want: 0},
		{name: "negative zero", a: typeutil.Double(math.Copysign(0, -1)), b: typeutil.Double(0), want: -1},
		{name: "NaN above infinity", a: typeutil.Double(nan), b: typeutil.Double(math.Inf(1)), want: 1},
		{name: "NaN equals NaN", a: typeutil.Float(float32(nan)), b: typeutil.Float(float32(nan)), want: 0},
		{name: "floats", a: typeutil.Float(-1), b: typeutil.Float(2), want: -1},
		{name: "strings by bytes", a: typeutil.String("Z"), b: typeutil.String("a"), want: -1},
		{name: "string prefix", a: typeutil.String("ab"), b: typeutil.String("a"), want: 1},
		{name: "dates by instant", a: typeutil.DateFromMillis(1), b: typeutil.DateFromMillis(2), want: -1},
		{
			name: "same instant in two zones",
			a:    typeutil.Date(time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)),
			b:    typeutil.Date(time.Date(2000, time.January, 1, 14, 0, 0, 0, time.FixedZone("UTC+2", 2*60*60))),
			want: 0,
		},
		{name: "bytes unsigned", a: typeutil.ByteArray{0x01}, b: typeutil.ByteArray{0xff}, want: -1},
		{name: "byte array prefix", a: typeutil.ByteArray{1, 2}, b: typeutil.ByteArray{1}, want: 1},
		{name: "classes by name", a: typeutil.ClassOf(reflect.TypeOf(0)), b: typeutil.ClassOf(reflect.TypeOf("")), want: -1},
		{name: "big integers", a: typeutil.BigIntegerFromInt64(-10), b: typeutil.BigIntegerFromInt64(3), want: -1},
		{name: "decimals numerically", a: dec("2.0"), b: dec("2.00"), want: 0},
		{name: "decimals", a: dec("10"), b: dec("9.99"), want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			got, err := typeutil.Compare(tt.a, tt.b)
			is.NoErr(err)
			is.Equal(got, tt.want)
			back, err := typeutil.Compare(tt.b, tt.a)
			is.NoErr(err)
			is.Equal(back, -tt.want)
			is.Equal(typeutil.Equal(tt.a, tt.b), tt.want == 0)
		})
	}
}

func TestCompareMismatch(t *testing.T) {
	is := is.New(t)
	_, err := typeutil.Compare(typeutil.Int(1), typeutil.Long(1))
	is.True(xerrors.Is(err, typeutil.ErrTypeMismatch))
	is.True(!typeutil.Equal(typeutil.Int(1), typeutil.Long(1)))
	is.True(!typeutil.Equal(typeutil.Int(1), nil))
	is.True(typeutil.Equal(nil, nil))
}

func TestCompareValues(t *testing.T) {
	t.Parallel()
	one, two := typeutil.Int(1), typeutil.Int(2)

	tests := []struct {
		name string
		a, b []typeutil.Value
		want int
	}{
		{name: "empty", a: nil, b: []typeutil.Value{}, want: 0},
		{name: "element decides", a: []typeutil.Value{one, two}, b: []typeutil.Value{two, one}, want: -1},
		{name: "prefix is less", a: []typeutil.Value{one}, b: []typeutil.Value{one, one}, want: -1},
		{name: "nil element", a: []typeutil.Value{one, nil}, b: []typeutil.Value{one, one}, want: -1},
		{name: "equal", a: []typeutil.Value{one, two}, b: []typeutil.Value{one, two}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			got, err := typeutil.CompareValues(tt.a, tt.b)
			is.NoErr(err)
			is.Equal(got, tt.want)
			is.Equal(typeutil.EqualValues(tt.a, tt.b), tt.want == 0)
		})
	}

	_, err := typeutil.CompareValues([]typeutil.Value{one}, []typeutil.Value{typeutil.String("1")})
	is.New(t).True(xerrors.Is(err, typeutil.ErrTypeMismatch))
}

func TestMinMaxValues(t *testing.T) {
	is := is.New(t)

	least, err := typeutil.Min(typeutil.Int(3), typeutil.Int(-1), typeutil.Int(2))
	is.NoErr(err)
	is.True(typeutil.Equal(least, typeutil.Int(-1)))

	least, err = typeutil.Min(typeutil.Int(3), nil, typeutil.Int(-1))
	is.NoErr(err)
	is.True(least == nil)

	greatest, err := typeutil.Max(typeutil.Double(1), nil, typeutil.Double(math.NaN()))
	is.NoErr(err)
	is.True(math.IsNaN(float64(greatest.(typeutil.Double))))

	// The same instant in different zones is a tie, so the zone tells which one was selected.
	utc := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	first := typeutil.Date(utc)
	last := typeutil.Date(utc.In(time.FixedZone("UTC+1", 60*60)))
	got, err := typeutil.Min(first, last)
	is.NoErr(err)
	is.Equal(got.(typeutil.Date).Time().Location(), time.UTC)
	got, err = typeutil.Max(first, last)
	is.NoErr(err)
	is.Equal(got.(typeutil.Date).Time().Location().String(), "UTC+1")

	_, err = typeutil.Min(typeutil.Int(1), typeutil.Long(2))
	is.True(xerrors.Is(err, typeutil.ErrTypeMismatch))
	_, err = typeutil.Max()
	is.True(xerrors.Is(err, typekit.ErrEmptyArgument))
}

func TestHashConsistentWithEqual(t *testing.T) {
	t.Parallel()
	dec := func(s string) typeutil.Value { return typeutil.NewBigDecimal(decimal.RequireFromString(s)) }
	instant := time.Date(2010, time.May, 6, 7, 8, 9, 10, time.UTC)

	pairs := []struct {
		name string
		a, b typeutil.Value
	}{
		{name: "decimal scale", a: dec("2.0"), b: dec("2.00")},
		{name: "decimal zero", a: dec("0"), b: dec("0.000")},
		{name: "date zones", a: typeutil.Date(instant), b: typeutil.Date(instant.In(time.FixedZone("X", -3600)))},
		{name: "NaN", a: typeutil.Double(math.NaN()), b: typeutil.Double(math.Float64frombits(0x7ff8000000000001))},
		{name: "big integer", a: typeutil.BigIntegerFromInt64(-5), b: typeutil.NewBigInteger(typeutil.BigIntegerFromInt64(-5).Int())},
		{name: "byte array copy", a: typeutil.ByteArray{1, 2}, b: typeutil.ByteArray{1, 2}.Clone()},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.True(typeutil.Equal(tt.a, tt.b))
			is.Equal(typeutil.Hash(tt.a), typeutil.Hash(tt.b))
		})
	}
}

func TestHashDistinguishes(t *testing.T) {
	is := is.New(t)
	seen := map[uint64]string{}
	values := append(samples(),
		typeutil.Int(1),
		typeutil.Long(1),
		typeutil.Double(0),
		typeutil.Double(math.Copysign(0, -1)),
		typeutil.String("deadbeef"),
	)
	for _, v := range values {
		h := typeutil.Hash(v)
		key := fmt.Sprintf("%s %s", v.Type(), v)
		if prev, ok := seen[h]; ok {
			t.Fatalf("%s and %s hash alike", prev, key)
		}
		seen[h] = key
	}
	is.Equal(typeutil.Hash(nil), uint64(0))
}

func TestHashValues(t *testing.T) {
	is := is.New(t)
	a := []typeutil.Value{typeutil.Int(1), nil, typeutil.String("x")}
	b := []typeutil.Value{typeutil.Int(1), nil, typeutil.String("x")}
	is.Equal(typeutil.HashValues(a), typeutil.HashValues(b))
	is.True(typeutil.HashValues(a) != typeutil.HashValues(a[:2]))
	is.True(typeutil.HashValues(nil) != typeutil.HashValues([]typeutil.Value{nil}))
}
