package gps

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

const nanosPerSecond = 1_000_000_000

// Representable range: the total nanosecond count fits int64.
const (
	minNs = math.MinInt64
	maxNs = math.MaxInt64

	// MinSeconds and MaxSeconds bound the normalized seconds field.
	MinSeconds = -9_223_372_037 // floor(minNs / 1e9), nanoseconds >= 145224192
	MaxSeconds = 9_223_372_036  // floor(maxNs / 1e9), nanoseconds <= 854775807
)

// Time is a GPS timestamp with nanosecond resolution.
//
// The zero value is GPS time 0. Time is comparable with ==, which agrees
// with Equal because every constructor returns the canonical form.
type Time struct {
	sec  int64 // floor seconds; carries the sign
	nsec int32 // [0, 999999999]
}

// New builds a Time from a seconds argument and a nanoseconds argument.
// The two are summed exactly (seconds*1e9 + nanoseconds), then rounded once
// to whole nanoseconds and normalized. The sum truncates toward zero when
// either argument is a Decimal and rounds half-to-even when a Float is
// involved without one.
//
//	New(Float(100.5), Int(0))
//	New(Int(101), Decimal("-500000000"))
//	New(Float(-10.5), Int(111000000000))
//
// all equal New(Int(100), Int(500000000)).
func New(seconds, nanoseconds Part) (Time, error) {
	if seconds.kind == KindInt && nanoseconds.kind == KindInt {
		return Unix(seconds.i, nanoseconds.i)
	}

	secNs, err := seconds.scaled(9)
	if err != nil {
		return Time{}, err
	}
	nsNs, err := nanoseconds.scaled(0)
	if err != nil {
		return Time{}, err
	}

	total, err := sumNanos(secNs, nsNs)
	if err != nil {
		return Time{}, err
	}
	ns, err := quantize(total, roundingFor(seconds, nanoseconds))
	if err != nil {
		return Time{}, err
	}
	return FromNs(ns), nil
}

// Make is the loosely typed constructor: each argument may be any value
// PartOf accepts. A nil nanoseconds argument means zero.
func Make(seconds, nanoseconds any) (Time, error) {
	sp, err := PartOf(seconds)
	if err != nil {
		return Time{}, err
	}
	np := Int(0)
	if nanoseconds != nil {
		if np, err = PartOf(nanoseconds); err != nil {
			return Time{}, err
		}
	}
	return New(sp, np)
}

// MustNew is like New but panics on error. Intended for literals.
func MustNew(seconds, nanoseconds Part) Time {
	t, err := New(seconds, nanoseconds)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse reads a decimal number of seconds, e.g. "100.5" or "-0.000000001".
func Parse(s string) (Time, error) {
	return New(Decimal(s), Int(0))
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FromNs returns the Time for an exact nanosecond count.
func FromNs(ns int64) Time {
	sec := floorDiv(ns, nanosPerSecond)
	return Time{sec: sec, nsec: int32(ns - sec*nanosPerSecond)}
}

// Unix normalizes integer seconds and nanoseconds, carrying overflow and
// borrowing for negative nanoseconds.
func Unix(sec, nsec int64) (Time, error) {
	// Any carry is at most ~9.3e9 seconds, so seconds this far out cannot
	// come back into range.
	const slack = 1 << 34
	if sec > MaxSeconds+slack || sec < MinSeconds-slack {
		return Time{}, &RangeError{Value: fmt.Sprintf("%d s %+d ns", sec, nsec)}
	}

	sec += floorDiv(nsec, nanosPerSecond)
	rem := floorMod(nsec, nanosPerSecond)

	switch {
	case sec > MaxSeconds, sec == MaxSeconds && rem > maxNs%nanosPerSecond:
		return Time{}, &RangeError{Value: fmt.Sprintf("%d s %+d ns", sec, rem)}
	case sec < MinSeconds, sec == MinSeconds && rem < minNs-MinSeconds*nanosPerSecond:
		return Time{}, &RangeError{Value: fmt.Sprintf("%d s %+d ns", sec, rem)}
	}
	return Time{sec: sec, nsec: int32(rem)}, nil
}

// Precondition: y > 0.
func floorDiv(x, y int64) int64 {
	quo := x / y
	if x%y < 0 {
		quo--
	}
	return quo
}

// Precondition: y > 0.
func floorMod(x, y int64) int64 {
	rem := x % y
	if rem < 0 {
		rem += y
	}
	return rem
}

// Seconds returns the normalized seconds field, the floor of the value.
func (t Time) Seconds() int64 {
	return t.sec
}

// Nanoseconds returns the normalized nanoseconds field, in [0, 1e9).
func (t Time) Nanoseconds() int32 {
	return t.nsec
}

// Ns returns the exact total nanosecond count.
func (t Time) Ns() int64 {
	return t.sec*nanosPerSecond + int64(t.nsec)
}

// Float64 returns the float64 nearest to the exact value.
func (t Time) Float64() float64 {
	f, err := apd.New(t.Ns(), -9).Float64()
	if err != nil {
		// Ns always fits; the decimal text always parses.
		panic(err)
	}
	return f
}

// Int truncates toward zero: Int of 100.9 is 100, Int of -0.5 is 0.
func (t Time) Int() int64 {
	if t.sec < 0 && t.nsec > 0 {
		return t.sec + 1
	}
	return t.sec
}

// IsZero reports whether t is GPS time 0.
func (t Time) IsZero() bool {
	return t.sec == 0 && t.nsec == 0
}

// NonZero is the truthiness of t.
func (t Time) NonZero() bool {
	return !t.IsZero()
}

// Equal reports whether t and u are the same instant.
func (t Time) Equal(u Time) bool {
	return t.Ns() == u.Ns()
}

// Compare returns -1, 0 or +1 as t is before, equal to, or after u.
func (t Time) Compare(u Time) int {
	a, b := t.Ns(), u.Ns()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is earlier than u.
func (t Time) Before(u Time) bool { return t.Compare(u) < 0 }

// After reports whether t is later than u.
func (t Time) After(u Time) bool { return t.Compare(u) > 0 }

// String returns the canonical decimal form with trailing fractional zeros
// trimmed: "100.5", "-0.5", "0". Parse(t.String()) == t.
func (t Time) String() string {
	sec, nsec := t.sec, int64(t.nsec)
	neg := sec < 0
	if neg && nsec > 0 {
		sec++
		nsec = nanosPerSecond - nsec
	}
	if neg {
		sec = -sec
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(sec, 10))
	if nsec != 0 {
		frac := fmt.Sprintf("%09d", nsec)
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(frac, "0"))
	}
	return b.String()
}
