// Package gps provides Time, an exact fixed-point GPS timestamp.
//
// A Time is an integer seconds field plus a nanoseconds field, always held
// in normalized form: 0 <= nanoseconds < 1e9, with the sign of the whole
// value carried by the seconds field. Values are immutable and compared by
// their exact nanosecond count.
//
// Construction accepts a closed set of input kinds (Part): integers,
// floats and decimal strings, in any mix for the seconds and nanoseconds
// arguments. Every input is lifted to an exact decimal before combination,
// so no float arithmetic ever happens on string or integer inputs.
//
// Key constraints:
//   - Integers are exact
//   - Floats use their shortest round-trip decimal form
//   - Both arguments are summed exactly, then rounded once to whole
//     nanoseconds: toward zero if either is a decimal string, otherwise
//     half-to-even if either is a float
//   - The total must fit in int64 nanoseconds, otherwise ErrRange
package gps
