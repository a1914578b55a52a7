package typeutil_test

import (
	"math/big"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/matryer/is"
	"golang.org/x/xerrors"

	"github.com/splunk/go-typekit/typeutil"
)

var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

func TestNewSlice(t *testing.T) {
	is := is.New(t)
	s, err := typeutil.NewSlice(typeutil.TypeInt, 3)
	is.NoErr(err)
	is.Equal(s, []int32{0, 0, 0})

	s, err = typeutil.NewSlice(typeutil.TypeClass, 1)
	is.NoErr(err)
	is.Equal(reflect.TypeOf(s), reflect.TypeOf([]reflect.Type(nil)))

	_, err = typeutil.NewSlice(typeutil.TypeUnknown, 1)
	is.True(xerrors.Is(err, typeutil.ErrUnsupportedType))

	values, err := typeutil.NewValues(typeutil.TypeLong, 4)
	is.NoErr(err)
	is.Equal(len(values), 0)
	is.Equal(cap(values), 4)
}

func TestSliceOf(t *testing.T) {
	t.Parallel()
	t.Run("longs", func(t *testing.T) {
		is := is.New(t)
		got, err := typeutil.SliceOf(typeutil.TypeLong, []typeutil.Value{typeutil.Long(1), typeutil.Long(2)})
		is.NoErr(err)
		is.Equal(got, []int64{1, 2})
	})
	t.Run("nilable elements", func(t *testing.T) {
		is := is.New(t)
		got, err := typeutil.SliceOf(typeutil.TypeByteArray, []typeutil.Value{nil, typeutil.ByteArray{1}})
		is.NoErr(err)
		is.Equal(got, [][]byte{nil, {1}})
	})
	t.Run("big integers", func(t *testing.T) {
		got, err := typeutil.SliceOf(typeutil.TypeBigInteger, []typeutil.Value{typeutil.BigIntegerFromInt64(-3), nil})
		is.New(t).NoErr(err)
		want := []*big.Int{big.NewInt(-3), nil}
		if diff := cmp.Diff(want, got, bigIntComparer); diff != "" {
			t.Errorf("SliceOf mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("every failure reported", func(t *testing.T) {
		is := is.New(t)
		_, err := typeutil.SliceOf(typeutil.TypeLong, []typeutil.Value{typeutil.Long(1), nil, typeutil.Int(2)})
		var merr *multierror.Error
		is.True(xerrors.As(err, &merr))
		is.Equal(len(merr.Errors), 2)
		is.True(xerrors.Is(merr.Errors[0], typeutil.ErrNilValue))
		is.True(xerrors.Is(merr.Errors[1], typeutil.ErrTypeMismatch))
	})
}

func TestValuesOf(t *testing.T) {
	is := is.New(t)
	got, err := typeutil.ValuesOf(typeutil.TypeShort, []int16{1, -2})
	is.NoErr(err)
	is.True(typeutil.EqualValues(got, []typeutil.Value{typeutil.Short(1), typeutil.Short(-2)}))

	got, err = typeutil.ValuesOf(typeutil.TypeByteArray, [][]byte{nil, {5}})
	is.NoErr(err)
	is.True(got[0] == nil)
	is.True(typeutil.Equal(got[1], typeutil.ByteArray{5}))

	got, err = typeutil.ValuesOf(typeutil.TypeShort, nil)
	is.NoErr(err)
	is.True(got == nil)

	_, err = typeutil.ValuesOf(typeutil.TypeShort, []int32{1})
	is.True(xerrors.Is(err, typeutil.ErrTypeMismatch))
}

func TestAppend(t *testing.T) {
	is := is.New(t)
	s, err := typeutil.Append(typeutil.TypeDouble, nil, typeutil.Double(1.5))
	is.NoErr(err)
	s, err = typeutil.Append(typeutil.TypeDouble, s, typeutil.Double(-1))
	is.NoErr(err)
	is.Equal(s, []float64{1.5, -1})

	_, err = typeutil.Append(typeutil.TypeDouble, s, typeutil.Float(1))
	is.True(xerrors.Is(err, typeutil.ErrTypeMismatch))
	_, err = typeutil.Append(typeutil.TypeDouble, []float32{}, typeutil.Double(1))
	is.True(xerrors.Is(err, typeutil.ErrTypeMismatch))
	_, err = typeutil.Append(typeutil.TypeDouble, s, nil)
	is.True(xerrors.Is(err, typeutil.ErrNilValue))
}

func TestAppendAllOncePerValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ    typeutil.Type
		start  any
		values []typeutil.Value
		want   any
	}{
		{
			typ:    typeutil.TypeLong,
			start:  []int64{1},
			values: []typeutil.Value{typeutil.Long(2), typeutil.Long(3)},
			want:   []int64{1, 2, 3},
		},
		{
			typ:    typeutil.TypeFloat,
			start:  nil,
			values: []typeutil.Value{typeutil.Float(0.5), typeutil.Float(1.5)},
			want:   []float32{0.5, 1.5},
		},
		{
			typ:    typeutil.TypeDouble,
			start:  []float64{},
			values: []typeutil.Value{typeutil.Double(2)},
			want:   []float64{2},
		},
		{
			typ:    typeutil.TypeString,
			start:  []string{"a"},
			values: []typeutil.Value{typeutil.String("b")},
			want:   []string{"a", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			is := is.New(t)
			got, err := typeutil.AppendAll(tt.typ, tt.start, tt.values)
			is.NoErr(err)
			is.Equal(got, tt.want)
		})
	}
}

func TestAppendAllFailureLeavesSlice(t *testing.T) {
	is := is.New(t)
	start := []int32{9}
	got, err := typeutil.AppendAll(typeutil.TypeInt, start, []typeutil.Value{typeutil.Int(1), typeutil.Long(2), nil})
	var merr *multierror.Error
	is.True(xerrors.As(err, &merr))
	is.Equal(len(merr.Errors), 2)
	is.Equal(got, []int32{9})
}

func TestCloneSlice(t *testing.T) {
	is := is.New(t)
	orig := [][]byte{{1, 2}, nil}
	got, err := typeutil.CloneSlice(typeutil.TypeByteArray, orig)
	is.NoErr(err)
	clone := got.([][]byte)
	clone[0][0] = 7
	is.Equal(orig[0][0], byte(1))
	is.True(clone[1] == nil)

	got, err = typeutil.CloneSlice(typeutil.TypeInt, []int32{4, 5})
	is.NoErr(err)
	is.Equal(got, []int32{4, 5})

	_, err = typeutil.CloneSlice(typeutil.TypeInt, []int64{4})
	is.True(xerrors.Is(err, typeutil.ErrTypeMismatch))
}

func TestCloneValues(t *testing.T) {
	is := is.New(t)
	orig := []typeutil.Value{typeutil.ByteArray{1}, nil, typeutil.Int(3)}
	clone := typeutil.CloneValues(orig)
	clone[0].(typeutil.ByteArray)[0] = 2
	is.Equal(orig[0].(typeutil.ByteArray)[0], byte(1))
	is.True(clone[1] == nil)
	is.True(typeutil.Equal(clone[2], typeutil.Int(3)))
	is.True(typeutil.CloneValues(nil) == nil)
}
