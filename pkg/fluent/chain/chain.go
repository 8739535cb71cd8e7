package chain

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/ib-77/fluent/pkg/fluent"
	"github.com/ib-77/fluent/pkg/fluent/core"
	"github.com/ib-77/fluent/pkg/fluent/dispatch"
	"go.uber.org/zap"
)

// Chain is a mutable cursor over a subject and the last produced result.
// It is not safe for concurrent use.
type Chain struct {
	ctx        context.Context
	id         uuid.UUID
	cfg        core.Config
	logger     *zap.Logger
	subject    any
	result     any
	err        error
	extensions []fluent.Extension
}

func newChain(ctx context.Context) *Chain {
	if ctx == nil {
		ctx = context.Background()
	}
	id := uuid.New()
	return &Chain{
		ctx:    ctx,
		id:     id,
		cfg:    core.ConfigFrom(ctx),
		logger: core.LoggerFrom(ctx).With(zap.Stringer("chain_id", id)),
	}
}

// Of starts a chain on target. A string target is a type identifier and is
// built with args, as Make does; any other target must be a subject.
func Of(ctx context.Context, target any, args ...any) *Chain {
	if name, ok := target.(string); ok {
		return Make(ctx, name, args...)
	}

	c := newChain(ctx)
	if !fluent.IsSubject(target) {
		return c.fail(fmt.Errorf("%w: %s is not a subject", fluent.ErrInvalidTarget, fluent.TypeName(target)))
	}
	if len(args) > 0 {
		return c.fail(fmt.Errorf("%w: constructor arguments given for an existing %s", fluent.ErrInvalidTarget, fluent.TypeName(target)))
	}

	c.subject = target
	c.logger.Debug("chain started", zap.String("subject", fluent.TypeName(target)))
	return c
}

// Make starts a chain on a subject built by the constructor registered
// under name with dispatch.RegisterType.
func Make(ctx context.Context, name string, args ...any) *Chain {
	c := newChain(ctx)
	subject, err := dispatch.Construct(name, args...)
	if err != nil {
		return c.fail(err)
	}

	c.subject = subject
	c.logger.Debug("chain started", zap.String("type", name))
	return c
}

// Call forwards method to the current subject. Extensions are notified
// around the invocation; the returned value is adopted.
func (c *Chain) Call(method string, args ...any) *Chain {
	if c.err != nil {
		return c
	}

	m, ok := dispatch.Lookup(c.subject, method, c.cache())
	if !ok {
		return c.fail(fmt.Errorf("%w: %s.%s()", fluent.ErrMethodNotFound, fluent.TypeName(c.subject), method))
	}
	in, err := dispatch.Prepare(m.Value, args)
	if err != nil {
		return c.fail(fmt.Errorf("%s.%s(): %w", fluent.TypeName(c.subject), m.Name, err))
	}

	for _, e := range c.extensions {
		e.BeforeCall(m.Name, args)
	}

	res, err := dispatch.Call(m.Value, in)
	if err != nil {
		return c.fail(err)
	}

	for _, e := range c.extensions {
		e.AfterCall(m.Name, res)
	}

	c.adopt(res)
	return c
}

// Change switches the subject. A string target is resolved through the
// Resolver carried by the chain's context; the last result is kept.
func (c *Chain) Change(target any) *Chain {
	if c.err != nil {
		return c
	}

	id, isID := target.(string)
	if !isID {
		if !fluent.IsSubject(target) {
			return c.fail(fmt.Errorf("%w: %s is not a subject", fluent.ErrInvalidTarget, fluent.TypeName(target)))
		}
		c.subject = target
		return c
	}

	resolver := core.ResolverFrom(c.ctx)
	if resolver == nil {
		return c.fail(fmt.Errorf("%w: %s: no resolver set", fluent.ErrResolution, id))
	}
	if !resolver.Has(id) {
		return c.fail(fmt.Errorf("%w: %s", fluent.ErrResolution, id))
	}
	subject, err := resolver.Get(id)
	if err != nil {
		return c.fail(fmt.Errorf("%w: %s: %w", fluent.ErrResolution, id, err))
	}
	if !fluent.IsSubject(subject) {
		return c.fail(fmt.Errorf("%w: %s resolved to %s", fluent.ErrResolution, id, fluent.TypeName(subject)))
	}

	c.subject = subject
	c.logger.Debug("subject changed", zap.String("id", id), zap.String("subject", fluent.TypeName(subject)))
	return c
}

// AddExtension appends observers for forwarded calls.
func (c *Chain) AddExtension(extensions ...fluent.Extension) *Chain {
	for _, e := range extensions {
		if e != nil {
			c.extensions = append(c.extensions, e)
		}
	}
	return c
}

func (c *Chain) Extensions() []fluent.Extension {
	return slices.Clone(c.extensions)
}

// Tap runs fn for its side effect; subject and result are untouched.
func (c *Chain) Tap(fn func(ctx context.Context, subject any)) *Chain {
	if c.err != nil {
		return c
	}
	fn(c.ctx, c.subject)
	return c
}

// Map replaces the subject with the value fn returns, which must be a
// subject itself. The last result is cleared.
func (c *Chain) Map(fn Func) *Chain {
	if c.err != nil {
		return c
	}

	mapped, err := fn(c.ctx, c.subject)
	if err != nil {
		return c.fail(err)
	}
	if !fluent.IsSubject(mapped) {
		return c.fail(fmt.Errorf("%w: map must return a subject, got %s", fluent.ErrInvalidOperation, fluent.TypeName(mapped)))
	}

	c.subject = mapped
	c.result = nil
	return c
}

// Pipe threads a value through stages, starting from the subject. Each
// output is adopted before it is passed on.
func (c *Chain) Pipe(stages ...Func) *Chain {
	if c.err != nil {
		return c
	}

	current := c.subject
	for _, stage := range stages {
		res, err := stage(c.ctx, current)
		if err != nil {
			return c.fail(err)
		}
		c.adopt(res)
		current = res
	}
	return c
}

// Get returns the last result, or the subject when there is none, and the
// chain's failure.
func (c *Chain) Get() (any, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.value(), nil
}

// Value is an alias for Get.
func (c *Chain) Value() (any, error) {
	return c.Get()
}

// Instance returns the current subject, ignoring the last result.
func (c *Chain) Instance() any {
	return c.subject
}

func (c *Chain) Err() error {
	return c.err
}

func (c *Chain) ID() uuid.UUID {
	return c.id
}

func (c *Chain) Context() context.Context {
	return c.ctx
}

func (c *Chain) Config() core.Config {
	return c.cfg
}

// Result snapshots the chain.
func (c *Chain) Result() fluent.Result[any] {
	if c.err != nil {
		return fluent.Fail[any](c.id, c.err)
	}
	return fluent.Success(c.id, c.value())
}

// Collect snapshots the chain with its value asserted to T.
func Collect[T any](c *Chain) fluent.Result[T] {
	v, err := ValueAs[T](c)
	if err != nil {
		return fluent.Fail[T](c.id, err)
	}
	return fluent.Success(c.id, v)
}

// ValueAs returns Get's value asserted to T.
func ValueAs[T any](c *Chain) (T, error) {
	v, err := c.Get()
	if err != nil {
		var zero T
		return zero, err
	}
	return fluent.TypedValueOf[T](v)
}

// InstanceAs returns the subject asserted to T.
func InstanceAs[T any](c *Chain) (T, error) {
	if c.err != nil {
		var zero T
		return zero, c.err
	}
	return fluent.TypedValueOf[T](c.subject)
}

func (c *Chain) value() any {
	if !fluent.IsNil(c.result) {
		return c.result
	}
	return c.subject
}

// adopt records value as the last result and moves the chain onto it when
// it is a subject.
func (c *Chain) adopt(value any) {
	c.result = value
	if fluent.IsSubject(value) {
		c.subject = value
	}
}

func (c *Chain) fail(err error) *Chain {
	c.err = err
	c.logger.Debug("chain failed", zap.Error(err))
	return c
}

func (c *Chain) cache() *dispatch.Cache {
	if c.cfg.EnableMethodCaching {
		return dispatch.Shared()
	}
	return nil
}
