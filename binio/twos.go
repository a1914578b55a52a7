package binio

import "math/big"

// AppendTwosComplement appends the minimal big-endian two's complement encoding of x to dst. Zero encodes as a single
// zero byte.
func AppendTwosComplement(dst []byte, x *big.Int) []byte {
	switch x.Sign() {
	case 0:
		return append(dst, 0)
	case 1:
		b := x.Bytes()
		if b[0]&0x80 != 0 {
			dst = append(dst, 0)
		}
		return append(dst, b...)
	}
	// -x = ^(x-1) for the magnitude: invert the bytes of |x|-1.
	m := new(big.Int).Neg(x)
	m.Sub(m, big.NewInt(1))
	b := m.Bytes()
	for i := range b {
		b[i] = ^b[i]
	}
	if len(b) == 0 || b[0]&0x80 == 0 {
		dst = append(dst, 0xff)
	}
	return append(dst, b...)
}

// FromTwosComplement decodes a big-endian two's complement encoding. An empty slice decodes as zero.
func FromTwosComplement(b []byte) *big.Int {
	result := new(big.Int)
	if len(b) == 0 {
		return result
	}
	if b[0]&0x80 == 0 {
		return result.SetBytes(b)
	}
	inv := make([]byte, len(b))
	for i := range b {
		inv[i] = ^b[i]
	}
	result.SetBytes(inv)
	result.Add(result, big.NewInt(1))
	return result.Neg(result)
}
