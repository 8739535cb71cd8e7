package chain

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ib-77/fluent/pkg/fluent/core"
)

var exit = os.Exit

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes the chain's value (its failure, if it has one) to the dump
// writer of the chain's context, prefixed by "[label] " when label is set.
func (c *Chain) Dump(label string) *Chain {
	var value any = c.err
	if c.err == nil {
		value = c.value()
	}

	var b strings.Builder
	if label != "" {
		b.WriteString("[" + label + "] ")
	}
	b.WriteString(strings.TrimRight(dumper.Sdump(value), "\n"))
	b.WriteString("\n")

	_, _ = io.WriteString(core.DumpWriterFrom(c.ctx), b.String())
	return c
}

// DD dumps the chain and exits the process with status 1.
func (c *Chain) DD(label string) {
	c.Dump(label)
	exit(1)
}

// Each calls fn for every element of the chain's value when it is a slice,
// array, map or range-over-func iterator. Map keys are visited in sorted
// order. Other values are skipped.
func (c *Chain) Each(fn func(ctx context.Context, item, key any)) *Chain {
	if c.err != nil {
		return c
	}

	v := reflect.ValueOf(c.value())
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range v.Len() {
			fn(c.ctx, v.Index(i).Interface(), i)
		}
	case reflect.Map:
		keys := v.MapKeys()
		slices.SortFunc(keys, compareKeys)
		for _, k := range keys {
			fn(c.ctx, v.MapIndex(k).Interface(), k.Interface())
		}
	case reflect.Func:
		if v.IsNil() {
			return c
		}
		switch yieldArity(v.Type()) {
		case 1:
			i := 0
			for item := range v.Seq() {
				fn(c.ctx, item.Interface(), i)
				i++
			}
		case 2:
			for k, item := range v.Seq2() {
				fn(c.ctx, item.Interface(), k.Interface())
			}
		}
	}
	return c
}

// yieldArity reports how many values t yields when it is a
// func(yield func(...) bool) iterator, or 0.
func yieldArity(t reflect.Type) int {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return 0
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return 0
	}
	if n := yield.NumIn(); n == 1 || n == 2 {
		return n
	}
	return 0
}

func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.Kind() == b.Kind() {
		switch a.Kind() {
		case reflect.String:
			return cmp.Compare(a.String(), b.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return cmp.Compare(a.Int(), b.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return cmp.Compare(a.Uint(), b.Uint())
		case reflect.Float32, reflect.Float64:
			return cmp.Compare(a.Float(), b.Float())
		}
	}
	return cmp.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
