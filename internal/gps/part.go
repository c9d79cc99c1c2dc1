package gps

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Kind identifies which input form a Part holds.
type Kind uint8

const (
	KindInt     Kind = iota // exact integer
	KindFloat               // binary floating-point literal
	KindDecimal             // decimal string, e.g. "-500000000.0000"
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Part is one argument of a Time constructor. It is a closed tagged union:
// only Int, Float, Float32 and Decimal create Parts. The zero Part is Int(0).
type Part struct {
	kind Kind
	i    int64
	f    float64
	bits int // float width for shortest formatting: 32 or 64
	s    string
}

// Int returns an exact integer Part.
func Int(n int64) Part {
	return Part{kind: KindInt, i: n}
}

// Float returns a float64 Part.
func Float(f float64) Part {
	return Part{kind: KindFloat, f: f, bits: 64}
}

// Float32 returns a float32 Part. Its decimal form is the shortest one that
// round-trips through float32, so Float32(100.1) means 100.1.
func Float32(f float32) Part {
	return Part{kind: KindFloat, f: float64(f), bits: 32}
}

// Decimal returns a decimal-string Part. The string is validated when the
// Part is used, not here.
func Decimal(s string) Part {
	return Part{kind: KindDecimal, s: s}
}

// Kind reports the input form of p.
func (p Part) Kind() Kind {
	return p.kind
}

func (p Part) String() string {
	switch p.kind {
	case KindFloat:
		return strconv.FormatFloat(p.f, 'g', -1, p.floatBits())
	case KindDecimal:
		return p.s
	default:
		return strconv.FormatInt(p.i, 10)
	}
}

func (p Part) floatBits() int {
	if p.bits == 32 {
		return 32
	}
	return 64
}

// PartOf resolves a dynamically typed value into a Part. Accepted: every
// Go integer type, float32, float64, string, json.Number, Part and Time.
func PartOf(v any) (Part, error) {
	switch x := v.(type) {
	case Part:
		return x, nil
	case Time:
		return Decimal(x.String()), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintPart(uint64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return uintPart(x), nil
	case float32:
		return Float32(x), nil
	case float64:
		return Float(x), nil
	case string:
		return Decimal(x), nil
	case json.Number:
		// JSON numbers are decimal text; keep them exact.
		if n, err := x.Int64(); err == nil {
			return Int(n), nil
		}
		return Decimal(string(x)), nil
	default:
		return Part{}, &ParseError{Input: fmt.Sprintf("%T", v), Err: errUnsupportedType}
	}
}

func uintPart(u uint64) Part {
	if u > math.MaxInt64 {
		return Decimal(strconv.FormatUint(u, 10))
	}
	return Int(int64(u))
}

// ArgPart resolves a command-line style argument: a base-10 integer literal
// is KindInt, anything else is KindDecimal.
func ArgPart(s string) Part {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	return Decimal(s)
}

// decimal returns the exact decimal value of p.
func (p Part) decimal() (*apd.Decimal, error) {
	switch p.kind {
	case KindInt:
		return apd.New(p.i, 0), nil
	case KindFloat:
		if math.IsNaN(p.f) || math.IsInf(p.f, 0) {
			return nil, &ParseError{Input: p.String(), Err: errNotFinite}
		}
		// Shortest round-trip text is the value the caller wrote.
		return parseDecimal(strconv.FormatFloat(p.f, 'e', -1, p.floatBits()))
	case KindDecimal:
		return parseDecimal(p.s)
	default:
		return nil, &ParseError{Input: p.kind.String(), Err: errUnsupportedType}
	}
}

func parseDecimal(s string) (*apd.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	d, _, err := apd.NewFromString(trimmed)
	if err != nil {
		if d, ok, rerr := extremeExponent(trimmed); ok {
			return d, rerr
		}
		return nil, &ParseError{Input: s, Err: err}
	}
	if d.Form != apd.Finite {
		return nil, &ParseError{Input: s, Err: errNotFinite}
	}
	return d, nil
}

// extremeExponent handles a well-formed number whose exponent apd cannot
// hold. A huge positive exponent is out of range. A huge negative one is
// below any nanosecond digit and reads as zero.
func extremeExponent(s string) (*apd.Decimal, bool, error) {
	i := strings.IndexAny(s, "eE")
	if i < 0 {
		return nil, false, nil
	}
	mant, exp := s[:i], s[i+1:]

	m, _, err := apd.NewFromString(mant)
	if err != nil || m.Form != apd.Finite {
		return nil, false, nil
	}
	negative := strings.HasPrefix(exp, "-")
	digits := strings.TrimPrefix(strings.TrimPrefix(exp, "-"), "+")
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return nil, false, nil
	}

	if m.IsZero() || negative {
		return apd.New(0, 0), true, nil
	}
	return nil, true, &RangeError{Value: s}
}

// scaled returns the exact value of p times 10^scale. scale is 9 for a
// seconds argument and 0 for a nanoseconds argument.
func (p Part) scaled(scale int32) (*apd.Decimal, error) {
	d, err := p.decimal()
	if err != nil {
		return nil, err
	}
	if !d.IsZero() {
		d.Exponent += scale
	}
	return d, nil
}

// roundingFor is the rule for dropping sub-nanosecond digits of an exact
// sum. Any decimal string makes the sum a decimal quantity, which
// truncates toward zero. Floats alone round half-to-even. Integers are
// always exact.
func roundingFor(parts ...Part) apd.Rounder {
	r := apd.RoundDown
	for _, p := range parts {
		switch p.kind {
		case KindDecimal:
			return apd.RoundDown
		case KindFloat:
			r = apd.RoundHalfEven
		}
	}
	return r
}

// quantizePrecision bounds the digits of a quantized total. Anything needing
// more is far outside the int64 nanosecond range.
const quantizePrecision = 40

// adjusted is the exponent of the most significant digit of a nonzero d.
func adjusted(d *apd.Decimal) int64 {
	return int64(d.Exponent) + d.NumDigits() - 1
}

// sumNanos adds two exact nanosecond amounts without rounding.
func sumNanos(a, b *apd.Decimal) (*apd.Decimal, error) {
	switch {
	case a.IsZero():
		return b, nil
	case b.IsZero():
		return a, nil
	}

	hi, lo := adjusted(a), adjusted(b)
	if lo > hi {
		hi, lo = lo, hi
	}
	switch {
	case hi < -1:
		// Both below 0.1 ns, so the sum is below 0.2 ns.
		return apd.New(0, 0), nil
	case hi >= quantizePrecision && hi-lo >= 2:
		// The larger term dominates and is already out of range.
		return nil, &RangeError{Value: a.Text('G') + " ns + " + b.Text('G') + " ns"}
	}

	// Enough digits to hold every digit of both terms plus a carry.
	digits := hi - min(int64(a.Exponent), int64(b.Exponent)) + 2
	ctx := apd.BaseContext.WithPrecision(uint32(digits))
	ctx.Traps &^= apd.Subnormal | apd.Underflow

	total := new(apd.Decimal)
	if _, err := ctx.Add(total, a, b); err != nil {
		return nil, &RangeError{Value: a.Text('G') + " ns + " + b.Text('G') + " ns"}
	}
	return total, nil
}

// quantize rounds an exact nanosecond amount to an integer count.
func quantize(total *apd.Decimal, rounding apd.Rounder) (int64, error) {
	if total.IsZero() {
		return 0, nil
	}
	switch adj := adjusted(total); {
	case adj < -1:
		// |total| < 0.1 ns: every rounding rule gives zero.
		return 0, nil
	case adj >= quantizePrecision-1:
		return 0, &RangeError{Value: total.Text('G') + " ns"}
	}

	ctx := apd.BaseContext.WithPrecision(quantizePrecision)
	ctx.Rounding = rounding

	q := new(apd.Decimal)
	if _, err := ctx.Quantize(q, total, 0); err != nil {
		return 0, &RangeError{Value: total.Text('G') + " ns"}
	}
	ns, err := strconv.ParseInt(q.Text('f'), 10, 64)
	if err != nil {
		return 0, &RangeError{Value: q.Text('f') + " ns"}
	}
	return ns, nil
}
