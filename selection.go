// Package typekit provides min/max selection over ordered values.
//
// Every selector comes in the same shapes: two arguments, three arguments, or a variadic list. Ties are broken by
// position: Min keeps the earliest of several equal candidates, Max keeps the latest. Selectors over pointers treat
// a nil pointer as the minimum of its type, so that pointers stand in for nullable values.
//
// Ordering follows cmp.Compare. In particular a floating-point NaN sorts below every other value, so it is selected
// by Min and only selected by Max when nothing else is available.
package typekit

import (
	"cmp"
	"iter"

	"golang.org/x/xerrors"
)

// ErrEmptyArgument is returned by the variadic selectors when they are passed a nil or zero-length argument list.
var ErrEmptyArgument = xerrors.New("empty or null argument")

// Min returns the smaller of x and y. If x and y are equal, x is returned.
func Min[T cmp.Ordered](x, y T) T {
	if cmp.Less(y, x) {
		return y
	}
	return x
}

// Max returns the larger of x and y. If x and y are equal, y is returned.
func Max[T cmp.Ordered](x, y T) T {
	if cmp.Less(y, x) {
		return x
	}
	return y
}

// Min3 returns the smallest of x, y and z, preferring the earliest argument on ties.
func Min3[T cmp.Ordered](x, y, z T) T {
	return Min(Min(x, y), z)
}

// Max3 returns the largest of x, y and z, preferring the latest argument on ties.
func Max3[T cmp.Ordered](x, y, z T) T {
	return Max(Max(x, y), z)
}

// MinOf returns the smallest of the provided values, preferring the earliest on ties. ErrEmptyArgument is returned
// if no values are provided.
func MinOf[T cmp.Ordered](values ...T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, ErrEmptyArgument
	}
	result := values[0]
	for _, v := range values[1:] {
		if cmp.Less(v, result) {
			result = v
		}
	}
	return result, nil
}

// MaxOf returns the largest of the provided values, preferring the latest on ties. ErrEmptyArgument is returned if
// no values are provided.
func MaxOf[T cmp.Ordered](values ...T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, ErrEmptyArgument
	}
	result := values[0]
	for _, v := range values[1:] {
		if !cmp.Less(v, result) {
			result = v
		}
	}
	return result, nil
}

// MinFunc returns the smaller of x and y according to compare, which must define a total order and return a negative
// number when a < b, zero when a == b and a positive number when a > b. If x and y are equal, x is returned.
func MinFunc[T any](compare func(a, b T) int, x, y T) T {
	if compare(y, x) < 0 {
		return y
	}
	return x
}

// MaxFunc returns the larger of x and y according to compare. If x and y are equal, y is returned.
func MaxFunc[T any](compare func(a, b T) int, x, y T) T {
	if compare(y, x) < 0 {
		return x
	}
	return y
}

// MinOfFunc returns the smallest of the provided values according to compare, preferring the earliest on ties.
func MinOfFunc[T any](compare func(a, b T) int, values ...T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, ErrEmptyArgument
	}
	result := values[0]
	for _, v := range values[1:] {
		if compare(v, result) < 0 {
			result = v
		}
	}
	return result, nil
}

// MaxOfFunc returns the largest of the provided values according to compare, preferring the latest on ties.
func MaxOfFunc[T any](compare func(a, b T) int, values ...T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, ErrEmptyArgument
	}
	result := values[0]
	for _, v := range values[1:] {
		if compare(v, result) >= 0 {
			result = v
		}
	}
	return result, nil
}

// MinPtr returns the pointer to the smaller of *x and *y. A nil pointer is the minimum, so MinPtr returns nil if
// either argument is nil. If *x and *y are equal, x is returned.
func MinPtr[T cmp.Ordered](x, y *T) *T {
	return MinPtrFunc(cmp.Compare[T], x, y)
}

// MaxPtr returns the pointer to the larger of *x and *y. A nil pointer is the minimum, so MaxPtr returns nil only if
// both arguments are nil. If *x and *y are equal, y is returned.
func MaxPtr[T cmp.Ordered](x, y *T) *T {
	return MaxPtrFunc(cmp.Compare[T], x, y)
}

// MinPtr3 is the three argument form of MinPtr.
func MinPtr3[T cmp.Ordered](x, y, z *T) *T {
	return MinPtr(MinPtr(x, y), z)
}

// MaxPtr3 is the three argument form of MaxPtr.
func MaxPtr3[T cmp.Ordered](x, y, z *T) *T {
	return MaxPtr(MaxPtr(x, y), z)
}

// MinPtrOf returns the smallest of the provided pointers. It returns nil as soon as a nil pointer is found, and also
// when no values are provided.
func MinPtrOf[T cmp.Ordered](values ...*T) *T {
	return MinPtrOfFunc(cmp.Compare[T], values...)
}

// MaxPtrOf returns the largest of the provided pointers, skipping nil pointers. It returns nil if no non-nil pointer
// is provided.
func MaxPtrOf[T cmp.Ordered](values ...*T) *T {
	return MaxPtrOfFunc(cmp.Compare[T], values...)
}

// MinPtrFunc is MinPtr ordered by compare.
func MinPtrFunc[T any](compare func(a, b T) int, x, y *T) *T {
	if x == nil || y == nil {
		return nil
	}
	if compare(*y, *x) < 0 {
		return y
	}
	return x
}

// MaxPtrFunc is MaxPtr ordered by compare.
func MaxPtrFunc[T any](compare func(a, b T) int, x, y *T) *T {
	if x == nil {
		return y
	}
	if y == nil {
		return x
	}
	if compare(*y, *x) < 0 {
		return x
	}
	return y
}

// MinPtrOfFunc is MinPtrOf ordered by compare.
func MinPtrOfFunc[T any](compare func(a, b T) int, values ...*T) *T {
	var result *T
	for _, v := range values {
		if v == nil {
			return nil
		}
		if result == nil || compare(*v, *result) < 0 {
			result = v
		}
	}
	return result
}

// MaxPtrOfFunc is MaxPtrOf ordered by compare.
func MaxPtrOfFunc[T any](compare func(a, b T) int, values ...*T) *T {
	var result *T
	for _, v := range values {
		if v == nil {
			continue
		}
		if result == nil || compare(*v, *result) >= 0 {
			result = v
		}
	}
	return result
}

// MinSeq returns the smallest pointer yielded by seq, with the same nil handling as MinPtrOf. Iteration stops at the
// first nil pointer.
func MinSeq[T cmp.Ordered](seq iter.Seq[*T]) *T {
	return MinSeqFunc(cmp.Compare[T], seq)
}

// MaxSeq returns the largest pointer yielded by seq, with the same nil handling as MaxPtrOf.
func MaxSeq[T cmp.Ordered](seq iter.Seq[*T]) *T {
	return MaxSeqFunc(cmp.Compare[T], seq)
}

// MinSeqFunc is MinSeq ordered by compare.
func MinSeqFunc[T any](compare func(a, b T) int, seq iter.Seq[*T]) *T {
	var result *T
	for v := range seq {
		if v == nil {
			return nil
		}
		if result == nil || compare(*v, *result) < 0 {
			result = v
		}
	}
	return result
}

// MaxSeqFunc is MaxSeq ordered by compare.
func MaxSeqFunc[T any](compare func(a, b T) int, seq iter.Seq[*T]) *T {
	var result *T
	for v := range seq {
		if v == nil {
			continue
		}
		if result == nil || compare(*v, *result) >= 0 {
			result = v
		}
	}
	return result
}
