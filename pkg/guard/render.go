package guard

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

const objectTag = "[object Object]"

func magnitude(value any) float64 {
	rv := resolve(value)
	if isNumber(rv) {
		return toFloat(rv)
	}
	return float64(utf8.RuneCountInString(render(rv)))
}

func toFloat(rv reflect.Value) float64 {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

// render converts a resolved value to the text IsBetween measures.
// Sequences are flattened and joined with commas, absent elements render
// empty, maps and structs without a String method render as objectTag.
// A sequence nested inside itself renders empty.
func render(rv reflect.Value) string {
	return renderValue(rv, make(map[sliceKey]struct{}))
}

type sliceKey struct {
	ptr uintptr
	len int
}

func renderValue(rv reflect.Value, ancestors map[sliceKey]struct{}) string {
	if !rv.IsValid() || isAbsent(rv) {
		return ""
	}

	if rv.Kind() == reflect.String {
		return rv.String()
	}

	if s, ok := stringer(rv); ok {
		return s
	}

	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatNumber(rv.Float(), 32)
	case reflect.Float64:
		return formatNumber(rv.Float(), 64)
	case reflect.Slice:
		key := sliceKey{ptr: rv.Pointer(), len: rv.Len()}
		if _, ok := ancestors[key]; ok {
			return ""
		}
		ancestors[key] = struct{}{}
		defer delete(ancestors, key)
		return joinElements(rv, ancestors)
	case reflect.Array:
		return joinElements(rv, ancestors)
	case reflect.Map, reflect.Struct:
		return objectTag
	}

	if rv.CanInterface() {
		return fmt.Sprint(rv.Interface())
	}
	return rv.String()
}

func joinElements(rv reflect.Value, ancestors map[sliceKey]struct{}) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = renderValue(element(rv.Index(i)), ancestors)
	}
	return strings.Join(parts, ",")
}

func element(rv reflect.Value) reflect.Value {
	if rv.CanInterface() {
		return resolve(rv.Interface())
	}
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

// stringer returns the String or Error text of rv, if it has one.
func stringer(rv reflect.Value) (s string, ok bool) {
	if !rv.CanInterface() {
		return "", false
	}

	defer func() {
		if recover() != nil {
			s, ok = "", false
		}
	}()

	switch v := rv.Interface().(type) {
	case fmt.Stringer:
		return v.String(), true
	case error:
		return v.Error(), true
	default:
		return "", false
	}
}

// formatNumber renders f the way number-to-text interpolation does:
// no trailing ".0", exponent form only outside [1e-6, 1e21).
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(f, 'f', -1, bitSize)
}

func formatBound[N Numeric](n N) string {
	return render(reflect.ValueOf(n))
}
