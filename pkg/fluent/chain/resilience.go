package chain

import (
	"context"
	"errors"
	"time"

	"github.com/ib-77/fluent/pkg/fluent"
	"go.uber.org/zap"
)

// Rescue runs fn and adopts its value. If fn fails (or panics) handler
// receives the failure and its value is adopted instead.
func (c *Chain) Rescue(fn Func, handler Handler) *Chain {
	if c.err != nil {
		return c
	}

	res, err := c.guard(fn)
	if err != nil {
		c.logger.Debug("rescuing failure", zap.Error(err))
		res, err = handler(c.ctx, err)
		if err != nil {
			return c.fail(err)
		}
	}

	c.adopt(res)
	return c
}

// Catch is Rescue limited to failures matching target with errors.Is.
// Other failures are returned unmodified.
func (c *Chain) Catch(target error, fn Func, handler Handler) *Chain {
	return c.Rescue(fn, func(ctx context.Context, err error) (any, error) {
		if errors.Is(err, target) {
			return handler(ctx, err)
		}
		return nil, err
	})
}

// CatchAs is Rescue limited to failures matching E with errors.As.
func CatchAs[E error](c *Chain, fn Func, handler func(ctx context.Context, err E) (any, error)) *Chain {
	return c.Rescue(fn, func(ctx context.Context, err error) (any, error) {
		var target E
		if errors.As(err, &target) {
			return handler(ctx, target)
		}
		return nil, err
	})
}

// Retry runs fn up to times times, stopping at the first success, whose
// value is adopted. Failed attempts other than the last are followed by a
// pause of delay. When every attempt fails the last failure is returned.
func (c *Chain) Retry(times int, fn Func, delay time.Duration) *Chain {
	if c.err != nil {
		return c
	}

	var lastErr error
	for attempt := 1; attempt <= times; attempt++ {
		res, err := c.guard(fn)
		if err == nil {
			c.adopt(res)
			return c
		}

		lastErr = err
		c.logger.Debug("attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("times", times),
			zap.Error(err),
		)

		if attempt < times && delay > 0 {
			if waitErr := sleep(c.ctx, delay); waitErr != nil {
				return c.fail(errors.Join(lastErr, waitErr))
			}
		}
	}

	if lastErr != nil {
		return c.fail(lastErr)
	}
	return c
}

// Timeout runs fn and then checks how long it took. The call is not
// interrupted: an overrun is only reported once fn has returned, and its
// value is discarded.
func (c *Chain) Timeout(budget time.Duration, fn Func) *Chain {
	if c.err != nil {
		return c
	}

	start := time.Now()
	res, err := fn(c.ctx, c.subject)
	end := time.Now()

	if err != nil {
		return c.fail(err)
	}
	if end.Sub(start) > budget {
		c.logger.Debug("budget exceeded", zap.Duration("budget", budget), zap.Duration("elapsed", end.Sub(start)))
		return c.fail(fluent.NewTimeoutError(budget, start, end))
	}

	c.adopt(res)
	return c
}

// guard runs fn, turning a panic into a *fluent.PanicError.
func (c *Chain) guard(fn Func) (res any, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, &fluent.PanicError{Value: r}
		}
	}()
	return fn(c.ctx, c.subject)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
