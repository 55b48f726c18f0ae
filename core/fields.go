package core

import (
	"fmt"
	"reflect"
	"strings"
)

// FieldValue resolves a dotted field path against an arbitrary value.
//
// Each path segment is matched case-insensitively against exported struct
// field names, then literally against string map keys. Pointers and
// interfaces are dereferenced along the way, so "metadata.category" on a
// *Document reaches Metadata["category"]. A missing map key resolves to
// the map's zero value, since metadata varies between records.
//
// Returns ErrFieldNotFound if a struct segment does not resolve, or
// ErrFieldUnreachable if traversal hits a value that cannot hold named
// fields.
func FieldValue(v any, path string) (any, error) {
	value := reflect.ValueOf(v)

	for _, segment := range strings.Split(path, ".") {
		value = indirect(value)
		if !value.IsValid() {
			return nil, fmt.Errorf("%w: %q", ErrFieldUnreachable, path)
		}

		switch value.Kind() {
		case reflect.Struct:
			field := value.FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, segment)
			})
			if !field.IsValid() {
				return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, path)
			}
			value = field

		case reflect.Map:
			if value.Type().Key().Kind() != reflect.String {
				return nil, fmt.Errorf("%w: %q", ErrFieldUnreachable, path)
			}
			entry := value.MapIndex(reflect.ValueOf(segment))
			if !entry.IsValid() {
				// Map keys vary between records. A missing key reads as
				// the zero value rather than an error.
				entry = reflect.Zero(value.Type().Elem())
			}
			value = entry

		default:
			return nil, fmt.Errorf("%w: %q", ErrFieldUnreachable, path)
		}
	}

	value = indirect(value)
	if !value.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrFieldUnreachable, path)
	}
	return value.Interface(), nil
}

// FieldString resolves a dotted field path and stringifies the result.
func FieldString(v any, path string) (string, error) {
	field, err := FieldValue(v, path)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(field), nil
}

// indirect follows pointers and interfaces to the underlying value.
// Returns an invalid Value for nil pointers and nil interfaces.
func indirect(value reflect.Value) reflect.Value {
	for value.IsValid() &&
		(value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface) {
		if value.IsNil() {
			return reflect.Value{}
		}
		value = value.Elem()
	}
	return value
}
