package gps

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the canonical String form.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Accepts any decimal string.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON encodes t as a JSON string. A JSON number would pass through
// float64 in most decoders and lose nanoseconds.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts a JSON number, a decimal string, or an array of one
// or two numbers/strings read as [seconds, nanoseconds]. null is a no-op.
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	// UseNumber keeps numeric text exact
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return &ParseError{Input: string(data), Err: err}
	}

	var (
		parsed Time
		err    error
	)
	switch val := raw.(type) {
	case string, json.Number:
		parsed, err = Make(val, nil)
	case []any:
		if len(val) < 1 || len(val) > 2 {
			return &ParseError{Input: string(data), Err: errArity}
		}
		var ns any
		if len(val) == 2 {
			ns = val[1]
		}
		parsed, err = Make(val[0], ns)
	default:
		return &ParseError{Input: string(data), Err: errUnsupportedType}
	}
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML emits the canonical form as a string scalar.
func (t Time) MarshalYAML() (any, error) {
	return t.String(), nil
}

// UnmarshalYAML resolves a scalar by its tag: !!int is exact, !!float is a
// float literal, !!str is a decimal string. A sequence of one or two
// scalars is read as [seconds, nanoseconds].
func (t *Time) UnmarshalYAML(value *yaml.Node) error {
	var (
		parsed Time
		err    error
	)
	switch value.Kind {
	case yaml.ScalarNode:
		p, perr := yamlPart(value)
		if perr != nil {
			return perr
		}
		parsed, err = New(p, Int(0))
	case yaml.SequenceNode:
		if len(value.Content) < 1 || len(value.Content) > 2 {
			return &ParseError{Input: fmt.Sprintf("line %d", value.Line), Err: errArity}
		}
		parts := [2]Part{}
		for i, n := range value.Content {
			if parts[i], err = yamlPart(n); err != nil {
				return err
			}
		}
		parsed, err = New(parts[0], parts[1])
	default:
		return &ParseError{Input: fmt.Sprintf("line %d", value.Line), Err: errUnsupportedType}
	}
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func yamlPart(n *yaml.Node) (Part, error) {
	if n.Kind != yaml.ScalarNode {
		return Part{}, &ParseError{Input: fmt.Sprintf("line %d", n.Line), Err: errUnsupportedType}
	}
	switch n.ShortTag() {
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Too wide for int64; keep the digits and let New range-check.
			return Decimal(n.Value), nil
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Part{}, &ParseError{Input: n.Value, Err: err}
		}
		return Float(f), nil
	case "!!str":
		return Decimal(n.Value), nil
	case "!!null":
		return Int(0), nil
	default:
		return Part{}, &ParseError{Input: n.Value, Err: errUnsupportedType}
	}
}

// Value implements driver.Valuer. Times are stored as int64 nanoseconds.
func (t Time) Value() (driver.Value, error) {
	return t.Ns(), nil
}

// Scan implements sql.Scanner for INTEGER (nanoseconds), REAL (seconds)
// and TEXT (decimal seconds) columns. NULL scans as zero.
//
// The unit follows the driver's value type, not the column. Value writes
// int64 nanoseconds, so store Times in INTEGER columns: a REAL-affinity
// column turns the count into a float64, which Scan then reads as seconds.
func (t *Time) Scan(src any) error {
	var (
		parsed Time
		err    error
	)
	switch v := src.(type) {
	case nil:
		parsed = Time{}
	case int64:
		parsed = FromNs(v)
	case float64:
		parsed, err = New(Float(v), Int(0))
	case string:
		parsed, err = Parse(v)
	case []byte:
		parsed, err = Parse(string(v))
	default:
		return &ParseError{Input: fmt.Sprintf("%T", src), Err: errUnsupportedType}
	}
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
