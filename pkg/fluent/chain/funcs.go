package chain

import (
	"context"
	"fmt"

	"github.com/ib-77/fluent/pkg/fluent"
)

// Func receives the current subject and produces a value.
type Func func(ctx context.Context, subject any) (any, error)

// Predicate tests the current subject.
type Predicate func(ctx context.Context, subject any) bool

// Branch continues a chain inside When and Unless.
type Branch func(c *Chain)

// Handler turns a failure into a fallback value, or fails again.
type Handler func(ctx context.Context, err error) (any, error)

// Step adapts a typed function to Func. A subject that is not a T fails
// with fluent.ErrInvalidArgument.
func Step[T any](fn func(ctx context.Context, subject T) (any, error)) Func {
	return func(ctx context.Context, subject any) (any, error) {
		typed, err := fluent.TypedValueOf[T](subject)
		if err != nil {
			return nil, fmt.Errorf("step: %w", err)
		}
		return fn(ctx, typed)
	}
}

// Check adapts a typed predicate. A subject that is not a T reports false.
func Check[T any](fn func(ctx context.Context, subject T) bool) Predicate {
	return func(ctx context.Context, subject any) bool {
		typed, ok := subject.(T)
		return ok && fn(ctx, typed)
	}
}
