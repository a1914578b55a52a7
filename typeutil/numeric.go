package typeutil

import (
	"encoding/binary"
	"math"
	"math/big"
	"strconv"

	"golang.org/x/exp/constraints"
	"golang.org/x/xerrors"
)

var maxUint64 = new(big.Int).SetUint64(math.MaxUint64)

// widthOf returns the size in bytes of a fixed-width number type.
func widthOf[T constraints.Integer | constraints.Float]() int {
	var zero T
	return binary.Size(zero)
}

// truncateFloat truncates f toward zero, clamping to [lo, hi]. NaN truncates to 0.
func truncateFloat(f float64, lo, hi int64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= float64(lo):
		return lo
	case f >= float64(hi):
		return hi
	}
	return int64(f)
}

// lowBits returns the low 64 bits of the two's complement representation of x.
func lowBits(x *big.Int) int64 {
	if x.IsInt64() {
		return x.Int64()
	}
	return int64(new(big.Int).And(x, maxUint64).Uint64())
}

// parseSigned parses base 10 text as a T, failing rather than wrapping when the number does not fit.
func parseSigned[T constraints.Signed](s string, to Type) (T, error) {
	v, err := strconv.ParseInt(s, 10, widthOf[T]()*8)
	if err != nil {
		return 0, conversionError(TypeString, to, s, err)
	}
	return T(v), nil
}

// appendFixed appends the big-endian encoding of x at the width of T.
func appendFixed[T constraints.Signed](dst []byte, x T) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(int64(x)))
	return append(dst, buf[8-widthOf[T]():]...)
}

// decodeFixed decodes a big-endian integer which must be exactly as wide as T.
func decodeFixed[T constraints.Signed](b []byte, to Type) (T, error) {
	if n := widthOf[T](); len(b) != n {
		return 0, conversionError(TypeByteArray, to, ByteArray(b).String(),
			xerrors.Errorf("want %d bytes, got %d", n, len(b)))
	}
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}
	return T(u), nil
}

// decodeFloat decodes big-endian IEEE 754 bits which must be exactly bits/8 bytes long.
func decodeFloat(b []byte, bits int, to Type) (float64, error) {
	switch {
	case bits == 32 && len(b) == 4:
		return float64(math.Float32frombits(binary.BigEndian.Uint32(b))), nil
	case bits == 64 && len(b) == 8:
		return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
	}
	return 0, conversionError(TypeByteArray, to, ByteArray(b).String(),
		xerrors.Errorf("want %d bytes, got %d", bits/8, len(b)))
}

// compareFloat orders floats totally: -0 sorts below +0, and NaN sorts above +Inf and equal to every other NaN.
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	x, y := floatKey(a), floatKey(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// floatKey returns the bits of f as a signed integer, with every NaN collapsed to the same key.
func floatKey(f float64) int64 {
	if math.IsNaN(f) {
		return 0x7ff8000000000000
	}
	return int64(math.Float64bits(f))
}
