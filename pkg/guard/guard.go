package guard

import "fmt"

// Numeric is the set of types accepted as range bounds.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsEmpty reports whether value is nil/unset, a zero-length string or
// sequence, or a map or struct without keys. Numbers, booleans and other
// scalars are never empty. IsEmpty never panics.
func IsEmpty(value any) bool {
	rv := resolve(value)

	switch classify(rv) {
	case KindAbsent:
		return true
	case KindText, KindSequence:
		return rv.Len() == 0
	case KindKeyed:
		return keyCount(rv) == 0
	default:
		return false
	}
}

// IsBetween reports whether lo <= magnitude(value) <= hi.
//
// The magnitude of a numeric value is the number itself. For anything else it
// is the character count of the value's string rendering, so a slice is
// measured by its comma-joined form rather than its element count:
// []int{1, 2, 3} renders as "1,2,3" and has magnitude 5.
//
// The range is validated before the value: lo > hi yields ErrInvalidRange
// even when value is empty. An empty value yields ErrEmptyValue.
func IsBetween[N Numeric](value any, lo, hi N) (bool, error) {
	if lo > hi {
		return false, newError(ErrInvalidRange, fmt.Sprintf(
			"Max %s should be greater than min %s.", formatBound(hi), formatBound(lo),
		))
	}

	if IsEmpty(value) {
		return false, newError(ErrEmptyValue, "Cannot check length of a value. Provided value is empty")
	}

	m := magnitude(value)
	return m >= float64(lo) && m <= float64(hi), nil
}
