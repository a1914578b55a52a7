package typeutil

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/splunk/go-typekit"
	"github.com/splunk/go-typekit/binio"
)

// Compare returns a negative number, zero or a positive number as a is less than, equal to or greater than b. A nil
// Value is less than every other value. Values of different types cannot be compared and fail with ErrTypeMismatch.
//
// Floats are ordered totally: -0 is less than +0, and NaN is greater than +Inf and equal to itself. Strings and byte
// arrays compare lexicographically by bytes, dates by instant, classes by name and decimals by numeric value.
func Compare(a, b Value) (int, error) {
	switch {
	case a == nil && b == nil:
		return 0, nil
	case a == nil:
		return -1, nil
	case b == nil:
		return 1, nil
	case a.Type() != b.Type():
		return 0, mismatch(a.Type(), b)
	}
	switch x := a.(type) {
	case Boolean:
		return typekit.CompareBool(bool(x), bool(b.(Boolean))), nil
	case Char:
		return cmp.Compare(x, b.(Char)), nil
	case Byte:
		return cmp.Compare(x, b.(Byte)), nil
	case Short:
		return cmp.Compare(x, b.(Short)), nil
	case Int:
		return cmp.Compare(x, b.(Int)), nil
	case Long:
		return cmp.Compare(x, b.(Long)), nil
	case Float:
		return compareFloat(float64(x), float64(b.(Float))), nil
	case Double:
		return compareFloat(float64(x), float64(b.(Double))), nil
	case String:
		return strings.Compare(string(x), string(b.(String))), nil
	case Date:
		return time.Time(x).Compare(time.Time(b.(Date))), nil
	case ByteArray:
		return bytes.Compare(x, b.(ByteArray)), nil
	case Class:
		return strings.Compare(x.String(), b.(Class).String()), nil
	case BigInteger:
		return x.bigInt().Cmp(b.(BigInteger).bigInt()), nil
	case BigDecimal:
		return x.d.Cmp(b.(BigDecimal).d), nil
	}
	return 0, unsupported("Compare", a.Type())
}

// Equal returns true if and only if a and b have the same type and Compare reports them equal. Two nil Values are
// equal.
func Equal(a, b Value) bool {
	c, err := Compare(a, b)
	return err == nil && c == 0
}

// CompareValues compares a and b lexicographically: element by element with Compare, and then by length.
func CompareValues(a, b []Value) (int, error) {
	for i := 0; i < len(a) && i < len(b); i++ {
		c, err := Compare(a[i], b[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return cmp.Compare(len(a), len(b)), nil
}

// EqualValues returns true if and only if a and b have the same length and their elements are pairwise Equal.
func EqualValues(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Min returns the earliest least of the provided values by Compare. Since nil is the least value, Min returns nil if
// any value is nil. All non-nil values must have the same type.
func Min(values ...Value) (Value, error) {
	if err := sameType(values); err != nil {
		return nil, err
	}
	return typekit.MinOfFunc(mustCompare, values...)
}

// Max returns the latest greatest of the provided values by Compare. All non-nil values must have the same type.
func Max(values ...Value) (Value, error) {
	if err := sameType(values); err != nil {
		return nil, err
	}
	return typekit.MaxOfFunc(mustCompare, values...)
}

func sameType(values []Value) error {
	want := TypeUnknown
	for _, v := range values {
		if v == nil {
			continue
		}
		if want == TypeUnknown {
			want = v.Type()
		} else if v.Type() != want {
			return mismatch(want, v)
		}
	}
	return nil
}

// mustCompare compares values already known to share a type.
func mustCompare(a, b Value) int {
	c, _ := Compare(a, b)
	return c
}

// Hash returns a hash of v which is consistent with Equal: equal values have equal hashes. The hash of nil is 0.
func Hash(v Value) uint64 {
	if v == nil {
		return 0
	}
	d := xxhash.New()
	writeHash(d, v)
	return d.Sum64()
}

// HashValues returns a hash of values which is consistent with EqualValues.
func HashValues(values []Value) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(len(values)))
	_, _ = d.Write(buf[:])
	for _, v := range values {
		binary.BigEndian.PutUint64(buf[:], Hash(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func writeHash(d *xxhash.Digest, v Value) {
	buf := make([]byte, 1, 16)
	buf[0] = byte(v.Type())
	switch x := v.(type) {
	case Boolean:
		if x {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case Char:
		buf = binary.BigEndian.AppendUint64(buf, uint64(x))
	case Byte:
		buf = binary.BigEndian.AppendUint64(buf, uint64(x))
	case Short:
		buf = binary.BigEndian.AppendUint64(buf, uint64(x))
	case Int:
		buf = binary.BigEndian.AppendUint64(buf, uint64(x))
	case Long:
		buf = binary.BigEndian.AppendUint64(buf, uint64(x))
	case Float:
		buf = binary.BigEndian.AppendUint64(buf, uint64(floatKey(float64(x))))
	case Double:
		buf = binary.BigEndian.AppendUint64(buf, uint64(floatKey(float64(x))))
	case Date:
		t := time.Time(x)
		buf = binary.BigEndian.AppendUint64(buf, uint64(t.Unix()))
		buf = binary.BigEndian.AppendUint32(buf, uint32(t.Nanosecond()))
	case BigInteger:
		buf = binio.AppendTwosComplement(buf, x.bigInt())
	case ByteArray:
		buf = append(buf, x...)
	case String, Class, BigDecimal:
		_, _ = d.Write(buf)
		// Decimal text is normalized, so numerically equal decimals hash alike.
		_, _ = d.WriteString(x.String())
		return
	}
	_, _ = d.Write(buf)
}
