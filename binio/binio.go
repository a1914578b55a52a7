// Package binio reads and writes primitive values on byte streams in a fixed-width, length-prefixed layout.
//
// Scalars are written at their natural width in the configured byte order (big-endian unless WithByteOrder says
// otherwise). Variable-length values (strings, byte slices and big integers) are written as a signed 32-bit length
// followed by that many bytes. A nil byte slice is written with length -1 so that it reads back as nil.
//
// Writers and Readers are not safe for concurrent use.
package binio

import (
	"encoding/binary"

	"golang.org/x/xerrors"
)

// DefaultMaxLength is the largest length prefix a Reader accepts unless configured otherwise.
const DefaultMaxLength = 64 << 20

// ErrInvalidLength is returned when a length prefix read from a stream is negative (other than the nil marker) or
// larger than the configured maximum.
var ErrInvalidLength = xerrors.New("invalid length prefix")

// An Option is passed to optionally configure a Writer or Reader.
type Option func(*config)

// WithByteOrder configures the byte order used for fixed-width values. The default is binary.BigEndian.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(conf *config) {
		conf.order = order
	}
}

// WithMaxLength configures the largest length prefix a Reader accepts before failing with ErrInvalidLength. It has no
// effect on Writers.
func WithMaxLength(n int) Option {
	return func(conf *config) {
		conf.maxLength = n
	}
}

type config struct {
	// order is the byte order of every fixed-width value and length prefix.
	order binary.ByteOrder
	// maxLength bounds the allocation a single length prefix can cause while reading.
	maxLength int
}

func configure(opts []Option) config {
	result := config{
		order:     binary.BigEndian,
		maxLength: DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
