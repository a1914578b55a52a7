package binio

import (
	"io"
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// Reader reads primitive values written by a Writer configured with the same byte order.
type Reader struct {
	r    io.Reader
	conf config
	buf  [8]byte
}

// NewReader returns a Reader which reads from r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	return &Reader{r: r, conf: configure(opts)}
}

// MaxLength returns the largest length prefix r accepts, as configured by WithMaxLength.
func (r *Reader) MaxLength() int {
	return r.conf.maxLength
}

// fill reads exactly n bytes into the scratch buffer. A stream ending partway through a value fails with
// io.ErrUnexpectedEOF; a stream ending before the value starts fails with io.EOF.
func (r *Reader) fill(n int) ([]byte, error) {
	if _, err := io.ReadFull(r.r, r.buf[:n]); err != nil {
		return nil, xerrors.Errorf("unable to read %d bytes: %w", n, err)
	}
	return r.buf[:n], nil
}

// ReadBool reads a single byte. Any nonzero byte is true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.fill(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// ReadInt8 reads a single byte.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

// ReadInt16 reads two bytes.
func (r *Reader) ReadInt16() (int16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}
	return int16(r.conf.order.Uint16(b)), nil
}

// ReadInt32 reads four bytes.
func (r *Reader) ReadInt32() (int32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}
	return int32(r.conf.order.Uint32(b)), nil
}

// ReadInt64 reads eight bytes.
func (r *Reader) ReadInt64() (int64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}
	return int64(r.conf.order.Uint64(b)), nil
}

// ReadRune reads a code point written by WriteRune.
func (r *Reader) ReadRune() (rune, error) {
	return r.ReadInt32()
}

// ReadFloat32 reads four bytes of IEEE 754 bits.
func (r *Reader) ReadFloat32() (float32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(r.conf.order.Uint32(b)), nil
}

// ReadFloat64 reads eight bytes of IEEE 754 bits.
func (r *Reader) ReadFloat64() (float64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(r.conf.order.Uint64(b)), nil
}

// ReadBytes reads a length-prefixed byte slice. A length of -1 reads as nil.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, nil
	}
	if n < 0 || int(n) > r.conf.maxLength {
		return nil, xerrors.Errorf("length %d exceeds [0, %d]: %w", n, r.conf.maxLength, ErrInvalidLength)
	}
	result := make([]byte, n)
	if _, err := io.ReadFull(r.r, result); err != nil {
		if xerrors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, xerrors.Errorf("unable to read %d bytes: %w", n, err)
	}
	return result, nil
}

// ReadString reads a length-prefixed string. A nil marker reads as the empty string.
func (r *Reader) ReadString() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadTime reads a time written by WriteTime. The result is in UTC.
func (r *Reader) ReadTime() (time.Time, error) {
	sec, err := r.ReadInt64()
	if err != nil {
		return time.Time{}, err
	}
	nsec, err := r.ReadInt32()
	if err != nil {
		return time.Time{}, unexpected(err)
	}
	return time.Unix(sec, int64(nsec)).UTC(), nil
}

// ReadBigInt reads a big integer written by WriteBigInt.
func (r *Reader) ReadBigInt() (*big.Int, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return nil, err
	}
	return FromTwosComplement(b), nil
}

// ReadDecimal reads a decimal written by WriteDecimal.
func (r *Reader) ReadDecimal() (decimal.Decimal, error) {
	coefficient, err := r.ReadBigInt()
	if err != nil {
		return decimal.Zero, err
	}
	exp, err := r.ReadInt32()
	if err != nil {
		return decimal.Zero, unexpected(err)
	}
	return decimal.NewFromBigInt(coefficient, exp), nil
}

// unexpected converts io.EOF into io.ErrUnexpectedEOF for reads which follow the first field of a compound value.
func unexpected(err error) error {
	if xerrors.Is(err, io.EOF) && !xerrors.Is(err, io.ErrUnexpectedEOF) {
		return xerrors.Errorf("truncated value: %w", io.ErrUnexpectedEOF)
	}
	return err
}
