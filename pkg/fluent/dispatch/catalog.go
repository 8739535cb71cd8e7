package dispatch

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/ib-77/fluent/pkg/fluent"
)

// Catalog maps type identifiers to constructors.
type Catalog struct {
	mu    sync.RWMutex
	ctors map[string]reflect.Value
}

func NewCatalog() *Catalog {
	return &Catalog{
		ctors: make(map[string]reflect.Value),
	}
}

// Register adds a constructor under name. ctor must be a func returning a
// single value or a value and an error. An existing entry is overwritten.
func (c *Catalog) Register(name string, ctor any) error {
	if name == "" {
		return fmt.Errorf("%w: empty type name", fluent.ErrInvalidArgument)
	}
	fn := reflect.ValueOf(ctor)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return fmt.Errorf("%w: constructor for %s must be a func, got %T", fluent.ErrInvalidArgument, name, ctor)
	}
	ft := fn.Type()
	switch {
	case ft.NumOut() == 1 && ft.Out(0) != errorType:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return fmt.Errorf("%w: constructor for %s must return T or (T, error)", fluent.ErrInvalidArgument, name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ctors[name] = fn
	return nil
}

func (c *Catalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.ctors[name]
	return ok
}

// Construct builds a subject with the constructor registered under name.
// Every failure is reported as fluent.ErrInvalidTarget.
func (c *Catalog) Construct(name string, args ...any) (any, error) {
	c.mu.RLock()
	fn, ok := c.ctors[name]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: type %s not found", fluent.ErrInvalidTarget, name)
	}

	in, err := Prepare(fn, args)
	if err != nil {
		return nil, fmt.Errorf("%w: constructing %s: %w", fluent.ErrInvalidTarget, name, err)
	}
	subject, err := Call(fn, in)
	if err != nil {
		return nil, fmt.Errorf("%w: constructing %s: %w", fluent.ErrInvalidTarget, name, err)
	}
	if !fluent.IsSubject(subject) {
		return nil, fmt.Errorf("%w: constructor for %s returned %s", fluent.ErrInvalidTarget, name, fluent.TypeName(subject))
	}
	return subject, nil
}

var defaultCatalog = NewCatalog()

// DefaultCatalog is the process-wide catalog used by Chain.Make.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func RegisterType(name string, ctor any) error {
	return defaultCatalog.Register(name, ctor)
}

func Construct(name string, args ...any) (any, error) {
	return defaultCatalog.Construct(name, args...)
}
