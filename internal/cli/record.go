package cli

import (
	"fmt"
	"strconv"

	"github.com/roach88/gpstime/internal/gps"
)

// Record is the printable breakdown of one GPS time.
type Record struct {
	Name        string  `json:"name,omitempty"`
	Time        string  `json:"time"` // canonical decimal, exact
	Seconds     int64   `json:"seconds"`
	Nanoseconds int32   `json:"nanoseconds"`
	Ns          int64   `json:"ns"`
	Float       float64 `json:"float"`
	Int         int64   `json:"int"`
	NonZero     bool    `json:"nonzero"`
}

// NewRecord breaks t into every conversion the gps package offers.
func NewRecord(name string, t gps.Time) Record {
	return Record{
		Name:        name,
		Time:        t.String(),
		Seconds:     t.Seconds(),
		Nanoseconds: t.Nanoseconds(),
		Ns:          t.Ns(),
		Float:       t.Float64(),
		Int:         t.Int(),
		NonZero:     t.NonZero(),
	}
}

func (r Record) writeText(f *OutputFormatter) error {
	if r.Name != "" {
		f.field("name", r.Name)
	}
	f.field("time", r.Time)
	f.field("seconds", f.integer(r.Seconds))
	f.field("nanoseconds", f.integer(int64(r.Nanoseconds)))
	f.field("ns", f.integer(r.Ns))
	f.field("float", strconv.FormatFloat(r.Float, 'f', -1, 64))
	f.field("int", f.integer(r.Int))
	f.field("nonzero", strconv.FormatBool(r.NonZero))
	return nil
}

// Records is a batch result; text mode separates entries with a blank line.
type Records []Record

func (rs Records) writeText(f *OutputFormatter) error {
	for i, r := range rs {
		if i > 0 {
			fmt.Fprintln(f.Writer)
		}
		if err := r.writeText(f); err != nil {
			return err
		}
	}
	return nil
}
