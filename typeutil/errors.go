package typeutil

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrUnsupportedType is matched by errors raised when an operation is invoked with a tag outside the set it
	// supports, including tags outside the closed Type enumeration.
	ErrUnsupportedType = xerrors.New("unsupported type")
	// ErrTypeMismatch is matched by errors raised when a value does not have the representation its tag requires.
	ErrTypeMismatch = xerrors.New("type mismatch")
	// ErrConversion is matched by errors raised when an input cannot be parsed or represented in the requested type.
	ErrConversion = xerrors.New("conversion failed")
	// ErrNilValue is matched by errors raised when a nil Value is passed where a value is required.
	ErrNilValue = xerrors.New("nil value")
)

// UnsupportedTypeError reports an operation which does not support a tag.
type UnsupportedTypeError struct {
	// Op names the operation, such as "Parse" or "ToChar".
	Op string
	// Type is the offending tag.
	Type Type
}

func unsupported(op string, t Type) error {
	return &UnsupportedTypeError{Op: op, Type: t}
}

// Error names the operation and the tag.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported type %s", e.Op, e.Type)
}

// Is reports whether target is ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// MismatchError reports a value whose representation does not match the tag it was supplied with.
type MismatchError struct {
	// Want is the tag the value was expected to carry.
	Want Type
	// Got is the offending value.
	Got any
}

func mismatch(want Type, got any) error {
	return &MismatchError{Want: want, Got: got}
}

// Error names the wanted tag and what was supplied instead.
func (e *MismatchError) Error() string {
	if v, ok := e.Got.(Value); ok {
		return fmt.Sprintf("type mismatch: want %s, got %s value", e.Want, v.Type())
	}
	return fmt.Sprintf("type mismatch: want %s, got %T", e.Want, e.Got)
}

// Is reports whether target is ErrTypeMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ConversionError reports an input which could not be converted between two types. From is TypeUnknown when the
// input was a loosely typed Go value rather than a Value.
type ConversionError struct {
	From  Type
	To    Type
	Input string
	Err   error
}

func conversionError(from, to Type, input string, err error) error {
	return &ConversionError{From: from, To: to, Input: input, Err: err}
}

// Error describes the failed conversion and its cause.
func (e *ConversionError) Error() string {
	var msg string
	if e.From.Valid() {
		msg = fmt.Sprintf("cannot convert %s %q to %s", e.From, e.Input, e.To)
	} else {
		msg = fmt.Sprintf("cannot convert %q to %s", e.Input, e.To)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is ErrConversion.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// Unwrap returns the underlying cause, if any.
func (e *ConversionError) Unwrap() error {
	return e.Err
}
