package binio_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/splunk/go-typekit/binio"
)

func TestScalarRoundTrip(t *testing.T) {
	for name, order := range map[string]binary.ByteOrder{"big endian": binary.BigEndian, "little endian": binary.LittleEndian} {
		t.Run(name, func(t *testing.T) {
			is := is.New(t)
			var buf bytes.Buffer
			w := binio.NewWriter(&buf, binio.WithByteOrder(order))
			is.NoErr(w.WriteBool(true))
			is.NoErr(w.WriteInt8(math.MinInt8))
			is.NoErr(w.WriteInt16(-12345))
			is.NoErr(w.WriteInt32(math.MaxInt32))
			is.NoErr(w.WriteInt64(math.MinInt64))
			is.NoErr(w.WriteRune('λ'))
			is.NoErr(w.WriteFloat32(-1.5))
			is.NoErr(w.WriteFloat64(math.Inf(1)))
			is.Equal(buf.Len(), 1+1+2+4+8+4+4+8)

			r := binio.NewReader(&buf, binio.WithByteOrder(order))
			b, err := r.ReadBool()
			is.NoErr(err)
			is.Equal(b, true)
			i8, err := r.ReadInt8()
			is.NoErr(err)
			is.Equal(i8, int8(math.MinInt8))
			i16, err := r.ReadInt16()
			is.NoErr(err)
			is.Equal(i16, int16(-12345))
			i32, err := r.ReadInt32()
			is.NoErr(err)
			is.Equal(i32, int32(math.MaxInt32))
			i64, err := r.ReadInt64()
			is.NoErr(err)
			is.Equal(i64, int64(math.MinInt64))
			c, err := r.ReadRune()
			is.NoErr(err)
			is.Equal(c, 'λ')
			f32, err := r.ReadFloat32()
			is.NoErr(err)
			is.Equal(f32, float32(-1.5))
			f64, err := r.ReadFloat64()
			is.NoErr(err)
			is.True(math.IsInf(f64, 1))

			_, err = r.ReadInt8()
			is.True(xerrors.Is(err, io.EOF))
		})
	}
}

func TestByteOrder(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(binio.NewWriter(&buf).WriteInt32(0x01020304))
	is.Equal(buf.Bytes(), []byte{1, 2, 3, 4})

	buf.Reset()
	is.NoErr(binio.NewWriter(&buf, binio.WithByteOrder(binary.LittleEndian)).WriteInt32(0x01020304))
	is.Equal(buf.Bytes(), []byte{4, 3, 2, 1})
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{name: "nil", in: nil},
		{name: "empty", in: []byte{}},
		{name: "some", in: []byte{0, 0xff, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			var buf bytes.Buffer
			is.NoErr(binio.NewWriter(&buf).WriteBytes(tt.in))
			got, err := binio.NewReader(&buf).ReadBytes()
			is.NoErr(err)
			is.Equal(got == nil, tt.in == nil)
			is.Equal(got, tt.in)
		})
	}
}

func TestString(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	w := binio.NewWriter(&buf)
	is.NoErr(w.WriteString("héllo, wörld"))
	is.NoErr(w.WriteString(""))

	r := binio.NewReader(&buf)
	s, err := r.ReadString()
	is.NoErr(err)
	is.Equal(s, "héllo, wörld")
	s, err = r.ReadString()
	is.NoErr(err)
	is.Equal(s, "")
}

func TestInvalidLength(t *testing.T) {
	t.Run("negative", func(t *testing.T) {
		is := is.New(t)
		var buf bytes.Buffer
		is.NoErr(binio.NewWriter(&buf).WriteInt32(-2))
		_, err := binio.NewReader(&buf).ReadBytes()
		is.True(xerrors.Is(err, binio.ErrInvalidLength))
	})
	t.Run("over limit", func(t *testing.T) {
		is := is.New(t)
		var buf bytes.Buffer
		is.NoErr(binio.NewWriter(&buf).WriteString("abcdef"))
		_, err := binio.NewReader(&buf, binio.WithMaxLength(5)).ReadString()
		is.True(xerrors.Is(err, binio.ErrInvalidLength))
	})
	t.Run("reports limit", func(t *testing.T) {
		is := is.New(t)
		is.Equal(binio.NewReader(nil).MaxLength(), binio.DefaultMaxLength)
		is.Equal(binio.NewReader(nil, binio.WithMaxLength(5)).MaxLength(), 5)
	})
}

func TestTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(r *binio.Reader) error
	}{
		{
			name: "int64",
			data: []byte{0, 0, 0},
			read: func(r *binio.Reader) error { _, err := r.ReadInt64(); return err },
		},
		{
			name: "bytes body",
			data: []byte{0, 0, 0, 4, 'a', 'b'},
			read: func(r *binio.Reader) error { _, err := r.ReadBytes(); return err },
		},
		{
			name: "time nanoseconds",
			data: []byte{0, 0, 0, 0, 0, 0, 0, 1},
			read: func(r *binio.Reader) error { _, err := r.ReadTime(); return err },
		},
		{
			name: "decimal exponent",
			data: []byte{0, 0, 0, 1, 5},
			read: func(r *binio.Reader) error { _, err := r.ReadDecimal(); return err },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			err := tt.read(binio.NewReader(bytes.NewReader(tt.data)))
			is.True(xerrors.Is(err, io.ErrUnexpectedEOF))
		})
	}
}

func TestTime(t *testing.T) {
	is := is.New(t)
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(1969, time.July, 20, 20, 17, 40, 123456789, loc)

	var buf bytes.Buffer
	is.NoErr(binio.NewWriter(&buf).WriteTime(in))
	got, err := binio.NewReader(&buf).ReadTime()
	is.NoErr(err)
	is.True(got.Equal(in))
	is.Equal(got.Location(), time.UTC)
}

func TestBigInt(t *testing.T) {
	huge, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		big.NewInt(127),
		big.NewInt(128),
		big.NewInt(-128),
		big.NewInt(-129),
		big.NewInt(math.MaxInt64),
		huge,
	}
	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			is := is.New(t)
			var buf bytes.Buffer
			is.NoErr(binio.NewWriter(&buf).WriteBigInt(v))
			got, err := binio.NewReader(&buf).ReadBigInt()
			is.NoErr(err)
			is.Equal(got.Cmp(v), 0)
		})
	}
}

func TestTwosComplement(t *testing.T) {
	tests := []struct {
		in   int64
		want []byte
	}{
		{in: 0, want: []byte{0}},
		{in: 1, want: []byte{1}},
		{in: -1, want: []byte{0xff}},
		{in: 127, want: []byte{0x7f}},
		{in: 128, want: []byte{0, 0x80}},
		{in: -128, want: []byte{0x80}},
		{in: -129, want: []byte{0xff, 0x7f}},
		{in: 256, want: []byte{1, 0}},
	}
	for _, tt := range tests {
		is := is.New(t)
		got := binio.AppendTwosComplement(nil, big.NewInt(tt.in))
		is.Equal(got, tt.want)
		is.Equal(binio.FromTwosComplement(got).Int64(), tt.in)
	}
	is.New(t).Equal(binio.FromTwosComplement(nil).Sign(), 0)
}

func TestDecimal(t *testing.T) {
	values := []string{"0", "1.50", "-0.000001", "123456789012345678901234567890.0987654321"}
	for _, s := range values {
		t.Run(s, func(t *testing.T) {
			is := is.New(t)
			want := decimal.RequireFromString(s)
			var buf bytes.Buffer
			is.NoErr(binio.NewWriter(&buf).WriteDecimal(want))
			got, err := binio.NewReader(&buf).ReadDecimal()
			is.NoErr(err)
			if diff := cmp.Diff(want.String(), got.String()); diff != "" {
				t.Errorf("ReadDecimal mismatch (-want +got):\n%s", diff)
			}
			is.Equal(got.Exponent(), want.Exponent())
		})
	}
}

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, io.ErrClosedPipe
}

func TestStickyError(t *testing.T) {
	is := is.New(t)
	fw := &failingWriter{}
	w := binio.NewWriter(fw)
	err := w.WriteInt32(1)
	is.True(xerrors.Is(err, io.ErrClosedPipe))
	err = w.WriteString("more")
	is.True(xerrors.Is(err, io.ErrClosedPipe))
	is.Equal(fw.calls, 1)
}
