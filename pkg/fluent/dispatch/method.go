package dispatch

import (
	"fmt"
	"math"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/ib-77/fluent/pkg/fluent"
)

var errorType = reflect.TypeFor[error]()

// Method is a method resolved on a subject and bound to it.
type Method struct {
	Name  string
	Value reflect.Value
}

// Lookup resolves name on subject, trying the exact name first and then
// the name with its first rune upper-cased. cache may be nil.
func Lookup(subject any, name string, cache *Cache) (Method, bool) {
	v := reflect.ValueOf(subject)
	if !v.IsValid() || name == "" {
		return Method{}, false
	}
	t := v.Type()

	index, cached := absent, false
	if cache != nil {
		index, cached = cache.Load(t, name)
	}
	// a hash collision must not bind a method of another name
	if cached && index != absent && !matches(t, index, name) {
		cached = false
	}
	if !cached {
		index = methodIndex(t, name)
		if cache != nil {
			cache.Store(t, name, index)
		}
	}

	if index == absent {
		return Method{}, false
	}
	return Method{Name: t.Method(index).Name, Value: v.Method(index)}, true
}

func matches(t reflect.Type, index int, name string) bool {
	if index < 0 || index >= t.NumMethod() {
		return false
	}
	got := t.Method(index).Name
	return got == name || got == capitalize(name)
}

func methodIndex(t reflect.Type, name string) int {
	if m, ok := t.MethodByName(name); ok {
		return m.Index
	}
	if upper := capitalize(name); upper != name {
		if m, ok := t.MethodByName(upper); ok {
			return m.Index
		}
	}
	return absent
}

func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// Prepare converts args to the parameter types of fn. nil becomes the zero
// value, numeric kinds convert into each other, anything else must be
// assignable.
func Prepare(fn reflect.Value, args []any) ([]reflect.Value, error) {
	ft := fn.Type()
	n := ft.NumIn()

	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: want at least %d arguments, got %d", fluent.ErrInvalidArgument, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: want %d arguments, got %d", fluent.ErrInvalidArgument, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}

		av, err := convert(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %v", fluent.ErrInvalidArgument, i, err)
		}
		in[i] = av
	}
	return in, nil
}

func convert(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(t.Kind()) {
		if !fits(v, t) {
			return reflect.Value{}, fmt.Errorf("%v does not fit %s", v.Interface(), t)
		}
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("cannot use %s as %s", v.Type(), t)
}

// fits reports whether the numeric value v converts to t without wrapping,
// truncation or loss of precision. Floats may round into a narrower float.
func fits(v reflect.Value, t reflect.Type) bool {
	dst := reflect.Zero(t)

	switch {
	case v.CanInt():
		n := v.Int()
		switch {
		case dst.CanInt():
			return !dst.OverflowInt(n)
		case dst.CanUint():
			return n >= 0 && !dst.OverflowUint(uint64(n))
		default:
			f := float64(n)
			return f < twoTo63 && int64(f) == n && exactFloat(dst, f)
		}
	case v.CanUint():
		n := v.Uint()
		switch {
		case dst.CanInt():
			return n <= math.MaxInt64 && !dst.OverflowInt(int64(n))
		case dst.CanUint():
			return !dst.OverflowUint(n)
		default:
			f := float64(n)
			return f < twoTo64 && uint64(f) == n && exactFloat(dst, f)
		}
	default:
		f := v.Float()
		switch {
		case dst.CanInt():
			return f == math.Trunc(f) && f >= -twoTo63 && f < twoTo63 && !dst.OverflowInt(int64(f))
		case dst.CanUint():
			return f == math.Trunc(f) && f >= 0 && f < twoTo64 && !dst.OverflowUint(uint64(f))
		default:
			return math.IsInf(f, 0) || math.IsNaN(f) || !dst.OverflowFloat(f)
		}
	}
}

const (
	twoTo63 = 1 << 63
	twoTo64 = 1 << 64
)

func exactFloat(dst reflect.Value, f float64) bool {
	if dst.Kind() == reflect.Float32 {
		return float64(float32(f)) == f
	}
	return true
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Call invokes fn. A trailing error result is returned as the error; the
// remaining results collapse to nil, a single value, or []any.
func Call(fn reflect.Value, in []reflect.Value) (any, error) {
	out := fn.Call(in)

	if n := len(out); n > 0 && fn.Type().Out(n-1) == errorType {
		if errV := out[n-1]; !errV.IsNil() {
			return nil, errV.Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}

	res := make([]any, len(out))
	for i, o := range out {
		res[i] = o.Interface()
	}
	return res, nil
}
