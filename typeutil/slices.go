package typeutil

import (
	"reflect"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/xerrors"
)

// nilable reports whether the native representation of t can hold nil, so that a nil Value has a native equivalent.
func nilable(t Type) bool {
	switch t {
	case TypeByteArray, TypeClass, TypeBigInteger:
		return true
	}
	return false
}

func sliceType(op string, t Type) (reflect.Type, error) {
	if !t.Valid() {
		return nil, unsupported(op, t)
	}
	return reflect.SliceOf(goTypes[t]), nil
}

// checkSlice returns slice as a reflect.Value, failing unless it is a slice of the native type of t. An untyped nil
// is accepted as an empty slice.
func checkSlice(op string, t Type, slice any) (reflect.Value, error) {
	st, err := sliceType(op, t)
	if err != nil {
		return reflect.Value{}, err
	}
	if slice == nil {
		return reflect.Zero(st), nil
	}
	rv := reflect.ValueOf(slice)
	if rv.Type() != st {
		return reflect.Value{}, xerrors.Errorf("%s: %w", op, mismatch(t, slice))
	}
	return rv, nil
}

// native returns v as a reflect.Value of the native type of t.
func native(t Type, v Value) (reflect.Value, error) {
	if v == nil {
		if !nilable(t) {
			return reflect.Value{}, xerrors.Errorf("%s element: %w", t, ErrNilValue)
		}
		return reflect.Zero(goTypes[t]), nil
	}
	if v.Type() != t {
		return reflect.Value{}, mismatch(t, v)
	}
	if c, ok := v.(Class); ok && c.t == nil {
		return reflect.Zero(goTypes[t]), nil
	}
	return reflect.ValueOf(v.Interface()), nil
}

// NewSlice returns a slice of the native Go type of t with length n, such as []int32 for TypeInt.
func NewSlice(t Type, n int) (any, error) {
	st, err := sliceType("NewSlice", t)
	if err != nil {
		return nil, err
	}
	return reflect.MakeSlice(st, n, n).Interface(), nil
}

// NewValues returns an empty slice of values with capacity n, for collecting values of type t.
func NewValues(t Type, n int) ([]Value, error) {
	if !t.Valid() {
		return nil, unsupported("NewValues", t)
	}
	return make([]Value, 0, n), nil
}

// SliceOf returns the payloads of values as a slice of the native Go type of t. Every element must have type t. Nil
// elements are allowed only for types whose native representation is nilable (BYTE_ARRAY, CLASS and BIG_INTEGER).
// Byte array payloads are shared with values, not copied. Every failing element is reported in the returned error.
func SliceOf(t Type, values []Value) (any, error) {
	st, err := sliceType("SliceOf", t)
	if err != nil {
		return nil, err
	}
	result := reflect.MakeSlice(st, len(values), len(values))
	var errs *multierror.Error
	for i, v := range values {
		rv, err := native(t, v)
		if err != nil {
			errs = multierror.Append(errs, xerrors.Errorf("element %d: %w", i, err))
			continue
		}
		result.Index(i).Set(rv)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return result.Interface(), nil
}

// ValuesOf wraps every element of slice, which must be a slice of the native Go type of t, into a Value. Nil
// elements wrap to nil Values. Byte array payloads are shared with slice, not copied.
func ValuesOf(t Type, slice any) ([]Value, error) {
	rv, err := checkSlice("ValuesOf", t, slice)
	if err != nil {
		return nil, err
	}
	if rv.IsNil() {
		return nil, nil
	}
	result := make([]Value, rv.Len())
	for i := range result {
		v, err := ValueOf(t, rv.Index(i).Interface())
		if err != nil {
			return nil, xerrors.Errorf("element %d: %w", i, err)
		}
		result[i] = v
	}
	return result, nil
}

// Append appends the payload of v to slice, which must be nil or a slice of the native Go type of t, and returns
// the extended slice.
func Append(t Type, slice any, v Value) (any, error) {
	rv, err := checkSlice("Append", t, slice)
	if err != nil {
		return nil, err
	}
	elem, err := native(t, v)
	if err != nil {
		return nil, xerrors.Errorf("Append: %w", err)
	}
	return reflect.Append(rv, elem).Interface(), nil
}

// AppendAll appends the payloads of values to slice, which must be nil or a slice of the native Go type of t, and
// returns the extended slice. Each value is appended exactly once. If any value fails, slice is returned unchanged
// together with an error reporting every failing value.
func AppendAll(t Type, slice any, values []Value) (any, error) {
	rv, err := checkSlice("AppendAll", t, slice)
	if err != nil {
		return nil, err
	}
	elems := make([]reflect.Value, 0, len(values))
	var errs *multierror.Error
	for i, v := range values {
		elem, err := native(t, v)
		if err != nil {
			errs = multierror.Append(errs, xerrors.Errorf("element %d: %w", i, err))
			continue
		}
		elems = append(elems, elem)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return slice, err
	}
	return reflect.Append(rv, elems...).Interface(), nil
}

// CloneValues returns a deep copy of values.
func CloneValues(values []Value) []Value {
	if values == nil {
		return nil
	}
	result := make([]Value, len(values))
	for i, v := range values {
		result[i] = Clone(v)
	}
	return result
}

// CloneSlice returns a deep copy of slice, which must be a slice of the native Go type of t. For BYTE_ARRAY every
// element is copied as well; the payloads of every other type are immutable and are shared.
func CloneSlice(t Type, slice any) (any, error) {
	rv, err := checkSlice("CloneSlice", t, slice)
	if err != nil {
		return nil, err
	}
	if rv.IsNil() {
		return rv.Interface(), nil
	}
	result := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(result, rv)
	if t == TypeByteArray {
		elems := result.Interface().([][]byte)
		for i, b := range elems {
			if b != nil {
				elems[i] = append([]byte{}, b...)
			}
		}
	}
	return result.Interface(), nil
}
