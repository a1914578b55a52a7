package typeutil

import (
	"context"

	"github.com/splunk/go-typekit/pipelines"
)

// Converted is a result sent by ConvertChan: the conversion of the Index-th value received, or the error it failed
// with.
type Converted struct {
	Index int
	Value Value
	Err   error
}

// ConvertChan starts a pipeline stage which converts every value received from in to the type to, as by Convert, and
// sends the results in order to the returned channel. Nil values pass through as nil. The output channel is closed
// when in is closed or ctx is cancelled.
func ConvertChan(ctx context.Context, in <-chan Value, to Type, opts ...Option) <-chan Converted {
	return pipelines.Map(ctx, in, indexedConverter(to, opts))
}

// indexedConverter returns a conversion func which numbers its results in call order. It must not be called
// concurrently.
func indexedConverter(to Type, opts []Option) func(Value) Converted {
	next := 0
	return func(v Value) Converted {
		result := Converted{Index: next}
		next++
		if v != nil {
			result.Value, result.Err = Convert(v, to, opts...)
		}
		return result
	}
}

// ValuesChan returns a closed, buffered channel holding values in order.
func ValuesChan(values []Value) <-chan Value {
	return pipelines.Chan(values)
}
