// Package async provides a single-value future used to simulate settlement latency.
package async

import (
	"context"
	"time"
)

// Future holds the eventual result of an operation started with Go.
// The operation always runs to completion; waiting callers may give up early.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Go runs fn after delay on its own goroutine and returns a future for its result.
// A non-positive delay runs fn without sleeping.
func Go[T any](delay time.Duration, fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		if delay > 0 {
			time.Sleep(delay)
		}
		f.val, f.err = fn()
	}()
	return f
}

// Resolved returns a future that has already settled with val and err.
func Resolved[T any](val T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), val: val, err: err}
	close(f.done)
	return f
}

// Done is closed once the operation settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the operation settled.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.val, f.err
}

// Await is Wait bounded by ctx. If ctx ends first it returns ctx.Err();
// the operation still settles in the background.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
