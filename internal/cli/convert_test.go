package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gpstime/internal/gps"
)

func TestConvertForms(t *testing.T) {
	// Each argument list denotes 100.5 s.
	tests := [][]string{
		{"100.5"},
		{"100.50000000000000000000000"},
		{"100", "500000000"},
		{"100", "500000000.0000000000000"},
		{"--", "101", "-500000000"},
		{"0", "100500000000"},
		{"99", "1500000000"},
		{"99.5", "1000000000"},
		{"--", "-10", "110500000000"},
		{"--", "-10.5", "111000000000"},
		{"--float", "100.5"},
		{"--float", "--", "-10.5", "111000000000"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, _, err := execute(t, append([]string{"--format", "json", "convert"}, args...)...)
			require.NoError(t, err)

			var resp struct {
				Status string `json:"status"`
				Data   Record `json:"data"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "ok", resp.Status)
			assert.Equal(t, NewRecord("", gps.MustParse("100.5")), resp.Data)
		})
	}
}

func TestConvertFloatFlagRounds(t *testing.T) {
	// As a decimal the extra digit truncates; as a float it rounds.
	out, _, err := execute(t, "--format", "json", "convert", "1.0000000019")
	require.NoError(t, err)
	assert.Contains(t, out, `"ns":1000000001`)

	out, _, err = execute(t, "--format", "json", "convert", "--float", "1.0000000019")
	require.NoError(t, err)
	assert.Contains(t, out, `"ns":1000000002`)
}

func TestConvertHuman(t *testing.T) {
	out, _, err := execute(t, "--human", "convert", "100.5")
	require.NoError(t, err)
	assert.Contains(t, out, "ns          100,500,000,000\n")
	assert.Contains(t, out, "nanoseconds 500,000,000\n")
	assert.Contains(t, out, "time        100.5\n", "canonical time is never grouped")
}

func TestConvertParseError(t *testing.T) {
	out, _, err := execute(t, "convert", "half", "past")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, gps.ErrParse)
	assert.Contains(t, out, "Error [E101]")
}

func TestConvertRangeErrorJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "convert", "1e20")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, gps.ErrRange)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeRange, resp.Error.Code)
}

func TestConvertFloatFlagRejectsGarbage(t *testing.T) {
	_, _, err := execute(t, "convert", "--float", "1.2.3")
	require.Error(t, err)
	assert.ErrorIs(t, err, gps.ErrParse)
}

func TestConvertArgCount(t *testing.T) {
	_, _, err := execute(t, "convert")
	assert.Error(t, err)

	_, _, err = execute(t, "convert", "1", "2", "3")
	assert.Error(t, err)
}
