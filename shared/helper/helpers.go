package helper

import (
	"errors"
	"fmt"
	"reflect"
)

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Errors from getFn are returned unchanged. A nil result yields the zero value of T,
// so interface-typed results survive the round trip through any.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// GetTypedValueOf2 safely asserts the result of a getter function to the expected type T.
// ok is false when the getter misses or the type doesn't match.
func GetTypedValueOf2[T any](getFn func() (any, bool)) (res T, ok bool) {
	var raw any
	if raw, ok = getFn(); ok {
		if raw == nil {
			return
		}
		res, ok = raw.(T)
	}
	return
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

// ErrUnhashableArgument reports a value that cannot take part in equality based lookup.
var ErrUnhashableArgument = errors.New("unhashable argument")

// IsHashable reports whether v can be used as a map key without panicking.
// Unlike reflect.Type.Comparable, it inspects the dynamic values held in interfaces.
func IsHashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// CheckHashable returns ErrUnhashableArgument, annotated with v's type, if v is not hashable.
func CheckHashable(v any) error {
	if IsHashable(v) {
		return nil
	}
	return fmt.Errorf("%w: %T", ErrUnhashableArgument, v)
}
