// Package pipelines provides helper functions for constructing concurrent processing pipelines.
// Each pipeline stage has an input channel and an output channel, and its signature starts with a context and the
// input channel:
//
//	Stage[S,T any](ctx context.Context, in <-chan S, ...) <-chan T
//
// Each stage is a non-blocking call which starts a goroutine listening on the input channel and sending results to
// the output channel. The goroutine responds to context cancellation or closure of the input channel by closing the
// output channel and returning.
//
// By default, each stage returns an unbuffered channel. Pass WithBuffer to change this.
package pipelines

import "context"

// Chan converts a slice of type T to a buffered channel containing the same values. Unlike other funcs in this package,
// Chan does not start any new goroutines.
func Chan[T any](in []T) <-chan T {
	result := make(chan T, len(in))
	defer close(result) // non-empty buffered channels can be drained even when closed.
	for _, t := range in {
		result <- t
	}
	return result
}

// Map applies f to every value received from the input channel and sends the result to the output channel, in the
// order received. f is never called concurrently. The output channel is closed when the input channel is closed or
// the provided context is cancelled.
func Map[S, T any](ctx context.Context, in <-chan S, f func(S) T, opts ...Option) <-chan T {
	conf := configure(opts)
	out := make(chan T, conf.bufferSize)
	go func() {
		defer close(out)
		doMap(ctx, in, f, out)
	}()
	return out
}

func doMap[S, T any](ctx context.Context, in <-chan S, f func(S) T, result chan<- T) {
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-in:
			if !ok {
				return
			}
			select {
			case <-ctx.Done():
				return
			case result <- f(s):
			}
		}
	}
}

// An Option is passed to optionally configure a pipeline stage.
type Option func(*config)

// WithBuffer configures a pipeline stage to return a buffered output channel with a buffer of the provided size.
func WithBuffer(size int) Option {
	return func(conf *config) {
		conf.bufferSize = size
	}
}

type config struct {
	bufferSize int
}

func configure(opts []Option) config {
	var result config
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
