package enum

import (
	"fmt"
	"reflect"
)

var registry = map[reflect.Type]map[string]any{}

// New registers a value of a string-backed enum type and returns it, so
// enum values can be declared as package vars.
func New[T ~string](value T) T {
	t := reflect.TypeOf(value)
	if _, ok := registry[t]; !ok {
		registry[t] = map[string]any{}
	}

	registry[t][string(value)] = value
	return value
}

// ToEnum converts a string to a registered value of T.
func ToEnum[T ~string](s string) (T, error) {
	var zero T
	values, ok := registry[reflect.TypeOf(zero)]
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	value, ok := values[s]
	if !ok {
		return zero, fmt.Errorf("not found value %s in enum %T", s, zero)
	}

	return value.(T), nil
}
