package guard

import (
	"database/sql/driver"
	"reflect"
)

// Kind is the runtime category of a value as seen by IsEmpty.
type Kind uint8

const (
	// KindAbsent is nil or an unset value.
	KindAbsent Kind = iota
	// KindText is any value with an underlying string type.
	KindText
	// KindSequence is a slice or an array.
	KindSequence
	// KindKeyed is a map or a struct.
	KindKeyed
	// KindScalar is everything else: numbers, booleans, functions, channels.
	KindScalar
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindText:
		return "text"
	case KindSequence:
		return "sequence"
	case KindKeyed:
		return "keyed"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Classify resolves value to exactly one Kind.
// Categories are tested in order: absent, text, sequence, keyed, scalar.
// Non-nil pointers are followed and driver.Valuer implementations are
// replaced by the value they report, so sql.NullString{} is absent.
func Classify(value any) Kind {
	return classify(resolve(value))
}

func classify(rv reflect.Value) Kind {
	switch {
	case isAbsent(rv):
		return KindAbsent
	case isText(rv):
		return KindText
	case isSequence(rv):
		return KindSequence
	case isKeyed(rv):
		return KindKeyed
	default:
		return KindScalar
	}
}

// resolve unwraps pointers, interfaces and driver.Valuer results.
// The returned value is invalid when the input is nil or unset.
func resolve(value any) reflect.Value {
	rv := reflect.ValueOf(value)
	for depth := 0; depth < maxResolveDepth; depth++ {
		if !rv.IsValid() || (isNilable(rv.Kind()) && rv.IsNil()) {
			return reflect.Value{}
		}

		if rv.CanInterface() {
			if valuer, ok := rv.Interface().(driver.Valuer); ok {
				if v, ok := valueOf(valuer); ok {
					rv = reflect.ValueOf(v)
					continue
				}
			}
		}

		if rv.Kind() != reflect.Pointer && rv.Kind() != reflect.Interface {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}

// maxResolveDepth bounds unwrapping so a Valuer returning itself terminates.
const maxResolveDepth = 16

// valueOf calls Value, reporting false when it fails or panics.
func valueOf(valuer driver.Valuer) (v driver.Value, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = nil, false
		}
	}()

	v, err := valuer.Value()
	if err != nil {
		return nil, false
	}
	return v, true
}

func isNilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

func isAbsent(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}
	return isNilable(rv.Kind()) && rv.IsNil()
}

func isText(rv reflect.Value) bool {
	return rv.IsValid() && rv.Kind() == reflect.String
}

func isSequence(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	k := rv.Kind()
	return k == reflect.Slice || k == reflect.Array
}

func isKeyed(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map:
		return !rv.IsNil()
	case reflect.Struct:
		return true
	default:
		return false
	}
}

func isNumber(rv reflect.Value) bool {
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// keyCount returns the number of own enumerable keys: map entries or exported struct fields.
func keyCount(rv reflect.Value) int {
	if rv.Kind() == reflect.Map {
		return rv.Len()
	}

	n := 0
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			n++
		}
	}
	return n
}
