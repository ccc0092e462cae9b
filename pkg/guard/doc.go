// Package guard provides guard clauses for asserting preconditions on values
// whose type is only known at runtime.
//
// The package exposes two predicates and one error type:
//   - IsEmpty  – reports whether a value is nil/unset or has no length or keys
//   - IsBetween – checks a number, or the rendered length of anything else,
//     against an inclusive range
//   - Error    – the structured error returned by IsBetween, whose Code method
//     reports the constant "GUARD_EXCEPTION"
//
// # Classification
//
// IsEmpty inspects the runtime shape of a value with reflection and resolves
// it to exactly one Kind, tested in this order:
//
//	KindAbsent   nil, nil pointers/maps/slices/funcs/chans, driver.Valuer reporting nil
//	KindText     values with an underlying string type
//	KindSequence slices and arrays
//	KindKeyed    maps and structs
//	KindScalar   everything else
//
// Text and sequences are empty when their length is zero, maps when they have
// no entries and structs when they have no exported fields. Scalars, including
// 0 and false, are never empty. Classify exposes the same resolution so
// callers can tell "absent" apart from "empty".
//
// # Usage
//
//	ok, err := guard.IsBetween(name, 1, 64)
//	if err != nil {
//	    return err
//	}
//	if !ok {
//	    return ErrNameLength
//	}
//
// # Error Handling
//
// IsBetween fails in two situations, checked in this order:
//
//	lo > hi       ErrInvalidRange  "Max {hi} should be greater than min {lo}."
//	empty value   ErrEmptyValue    "Cannot check length of a value. Provided value is empty"
//
// Every *Error matches ErrGuard with errors.Is and unwraps to the condition
// sentinel, so callers can handle guard failures as a class or individually:
//
//	if errors.Is(err, guard.ErrInvalidRange) { ... }
//	if gerr, ok := guard.AsGuardError(err); ok { log(gerr.Code(), gerr.Message()) }
//
// # Rendered length
//
// Non-numeric values passed to IsBetween are measured by the rune count of
// their string rendering, not by element count. Slices render as their
// elements joined with commas, so []int{1, 2, 3} has length 5 ("1,2,3") and
// []string{"ab", "c"} has length 4 ("ab,c"). Values implementing fmt.Stringer
// render through String; maps and other structs render as "[object Object]".
//
// All functions are pure and safe for concurrent use.
package guard
