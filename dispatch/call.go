package dispatch

import "disqus-client/models"

// Code is a failure code delivered to a Failure callback.
type Code = models.Code

// Void is the payload of calls that complete without data.
type Void struct{}

// Call is the optional trailing arguments of an API call. Any subset of the
// fields may be set; unset callbacks mean the outcome is discarded.
type Call[T any] struct {
	Success func(T)
	Failure func(Code)
	Options Params
}

// Classify folds a list of partial calls into one. The first Success, the
// first Failure and the first Options win; later ones are dropped.
func Classify[T any](calls ...Call[T]) Call[T] {
	var c Call[T]
	for _, in := range calls {
		if c.Success == nil {
			c.Success = in.Success
		}
		if c.Failure == nil {
			c.Failure = in.Failure
		}
		if c.Options == nil {
			c.Options = in.Options
		}
	}
	return c
}

// OnSuccess is shorthand for a call carrying only a success callback.
func OnSuccess[T any](fn func(T)) Call[T] {
	return Call[T]{Success: fn}
}
