package chain

import (
	"context"
	"fmt"

	"github.com/ib-77/fluent/pkg/fluent"
)

// When runs then with the chain if cond holds, otherwise runs otherwise
// (which may be nil). cond is a bool, a Predicate, func(any) bool or
// func() bool; predicates receive the current subject.
func (c *Chain) When(cond any, then, otherwise Branch) *Chain {
	if c.err != nil {
		return c
	}
	ok, err := c.evaluate(cond)
	if err != nil {
		return c.fail(err)
	}
	return c.branch(ok, then, otherwise)
}

// Unless is When with the condition negated.
func (c *Chain) Unless(cond any, then, otherwise Branch) *Chain {
	if c.err != nil {
		return c
	}
	ok, err := c.evaluate(cond)
	if err != nil {
		return c.fail(err)
	}
	return c.branch(!ok, then, otherwise)
}

// WhenAll gates on every predicate holding. Like WhenAny and WhenNone it
// takes no callbacks; use When with AllOf to branch on the outcome.
func (c *Chain) WhenAll(preds ...Predicate) *Chain {
	if c.err != nil {
		return c
	}
	return c.When(AllOf(preds...)(c.ctx, c.subject), proceed, nil)
}

// WhenAny gates on at least one predicate holding.
func (c *Chain) WhenAny(preds ...Predicate) *Chain {
	if c.err != nil {
		return c
	}
	return c.When(AnyOf(preds...)(c.ctx, c.subject), proceed, nil)
}

// WhenNone gates on no predicate holding.
func (c *Chain) WhenNone(preds ...Predicate) *Chain {
	if c.err != nil {
		return c
	}
	return c.When(NoneOf(preds...)(c.ctx, c.subject), proceed, nil)
}

// AllOf holds when every predicate holds, stopping at the first that does not.
func AllOf(preds ...Predicate) Predicate {
	return func(ctx context.Context, subject any) bool {
		for _, p := range preds {
			if !p(ctx, subject) {
				return false
			}
		}
		return true
	}
}

// AnyOf holds when some predicate holds, stopping at the first that does.
func AnyOf(preds ...Predicate) Predicate {
	return func(ctx context.Context, subject any) bool {
		for _, p := range preds {
			if p(ctx, subject) {
				return true
			}
		}
		return false
	}
}

// NoneOf holds when no predicate holds.
func NoneOf(preds ...Predicate) Predicate {
	some := AnyOf(preds...)
	return func(ctx context.Context, subject any) bool {
		return !some(ctx, subject)
	}
}

func proceed(*Chain) {}

func (c *Chain) branch(ok bool, then, otherwise Branch) *Chain {
	if ok {
		if then != nil {
			then(c)
		}
	} else if otherwise != nil {
		otherwise(c)
	}
	return c
}

func (c *Chain) evaluate(cond any) (bool, error) {
	switch cond := cond.(type) {
	case bool:
		return cond, nil
	case Predicate:
		return cond(c.ctx, c.subject), nil
	case func(context.Context, any) bool:
		return cond(c.ctx, c.subject), nil
	case func(any) bool:
		return cond(c.subject), nil
	case func() bool:
		return cond(), nil
	}
	return false, fmt.Errorf("%w: unsupported condition %T", fluent.ErrInvalidArgument, cond)
}
