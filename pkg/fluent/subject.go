package fluent

import (
	"fmt"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// IsSubject reports whether v can serve as a chain subject: a non-nil
// pointer to a struct or a struct value. Everything else is a plain value.
func IsSubject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	}
	return false
}

// TypeName renders the dynamic type of v for error messages.
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

// TypedValueOf asserts v to T.
func TypedValueOf[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, fmt.Errorf("%w: got <nil>, want %s", ErrInvalidArgument, reflect.TypeFor[T]())
	}
	res, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T, want %s", ErrInvalidArgument, v, reflect.TypeFor[T]())
	}
	return res, nil
}
