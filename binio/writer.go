package binio

import (
	"io"
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// Writer writes primitive values to an underlying io.Writer. The first error encountered is returned by every
// subsequent call.
type Writer struct {
	w    io.Writer
	conf config
	buf  [8]byte
	err  error
}

// NewWriter returns a Writer which writes to w.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return &Writer{w: w, conf: configure(opts)}
}

func (w *Writer) write(p []byte) error {
	if w.err != nil {
		return w.err
	}
	if _, err := w.w.Write(p); err != nil {
		w.err = xerrors.Errorf("unable to write %d bytes: %w", len(p), err)
	}
	return w.err
}

// WriteBool writes a single byte, 1 for true and 0 for false.
func (w *Writer) WriteBool(v bool) error {
	w.buf[0] = 0
	if v {
		w.buf[0] = 1
	}
	return w.write(w.buf[:1])
}

// WriteInt8 writes a single byte.
func (w *Writer) WriteInt8(v int8) error {
	w.buf[0] = byte(v)
	return w.write(w.buf[:1])
}

// WriteInt16 writes v in two bytes.
func (w *Writer) WriteInt16(v int16) error {
	w.conf.order.PutUint16(w.buf[:2], uint16(v))
	return w.write(w.buf[:2])
}

// WriteInt32 writes v in four bytes.
func (w *Writer) WriteInt32(v int32) error {
	w.conf.order.PutUint32(w.buf[:4], uint32(v))
	return w.write(w.buf[:4])
}

// WriteInt64 writes v in eight bytes.
func (w *Writer) WriteInt64(v int64) error {
	w.conf.order.PutUint64(w.buf[:8], uint64(v))
	return w.write(w.buf[:8])
}

// WriteRune writes the code point of v in four bytes.
func (w *Writer) WriteRune(v rune) error {
	return w.WriteInt32(v)
}

// WriteFloat32 writes the IEEE 754 bits of v in four bytes.
func (w *Writer) WriteFloat32(v float32) error {
	w.conf.order.PutUint32(w.buf[:4], math.Float32bits(v))
	return w.write(w.buf[:4])
}

// WriteFloat64 writes the IEEE 754 bits of v in eight bytes.
func (w *Writer) WriteFloat64(v float64) error {
	w.conf.order.PutUint64(w.buf[:8], math.Float64bits(v))
	return w.write(w.buf[:8])
}

// WriteBytes writes a length prefix followed by b. A nil slice is written with length -1.
func (w *Writer) WriteBytes(b []byte) error {
	if b == nil {
		return w.WriteInt32(-1)
	}
	if len(b) > math.MaxInt32 {
		return xerrors.Errorf("%d bytes do not fit a length prefix: %w", len(b), ErrInvalidLength)
	}
	if err := w.WriteInt32(int32(len(b))); err != nil {
		return err
	}
	return w.write(b)
}

// WriteString writes a length prefix followed by the bytes of s.
func (w *Writer) WriteString(s string) error {
	return w.WriteBytes([]byte(s))
}

// WriteTime writes t as Unix seconds in eight bytes followed by the nanosecond offset in four bytes. The location
// of t is not written.
func (w *Writer) WriteTime(t time.Time) error {
	if err := w.WriteInt64(t.Unix()); err != nil {
		return err
	}
	return w.WriteInt32(int32(t.Nanosecond()))
}

// WriteBigInt writes the two's complement encoding of x with a length prefix.
func (w *Writer) WriteBigInt(x *big.Int) error {
	return w.WriteBytes(AppendTwosComplement(nil, x))
}

// WriteDecimal writes the coefficient of d as a big integer followed by its exponent in four bytes.
func (w *Writer) WriteDecimal(d decimal.Decimal) error {
	if err := w.WriteBigInt(d.Coefficient()); err != nil {
		return err
	}
	return w.WriteInt32(d.Exponent())
}
