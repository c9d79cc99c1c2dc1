package cli

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gpstime/internal/gps"
)

func compareJSON(t *testing.T, args ...string) CompareResult {
	t.Helper()
	out, _, err := execute(t, append([]string{"--format", "json", "compare"}, args...)...)
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   CompareResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)
	return resp.Data
}

func TestCompareEqualForms(t *testing.T) {
	got := compareJSON(t, "100.5", "100.500000000000000")
	assert.True(t, got.Equal)
	assert.Equal(t, 0, got.Order)
	assert.Equal(t, "0", got.DeltaNs)
	assert.Equal(t, "100.5", got.A)
	assert.Equal(t, "100.5", got.B)
}

func TestCompareOrder(t *testing.T) {
	got := compareJSON(t, "100.5", "100.500000001")
	assert.False(t, got.Equal)
	assert.Equal(t, -1, got.Order)
	assert.Equal(t, "1", got.DeltaNs)

	got = compareJSON(t, "--", "1", "-1")
	assert.Equal(t, 1, got.Order)
	assert.Equal(t, "-2000000000", got.DeltaNs)
}

func TestCompareDeltaBeyondInt64(t *testing.T) {
	got := compareJSON(t, "--", "-9223372036.854775808", "9223372036.854775807")
	assert.Equal(t, -1, got.Order)
	assert.Equal(t, "18446744073709551615", got.DeltaNs)
}

func TestCompareText(t *testing.T) {
	out, _, err := execute(t, "compare", "100.5", "100.5")
	require.NoError(t, err)
	assert.Contains(t, out, "equal       true\n")
	assert.Contains(t, out, "delta_ns    0\n")
}

func TestCompareAssertEqual(t *testing.T) {
	_, _, err := execute(t, "compare", "--assert-equal", "100.5", "100.5")
	require.NoError(t, err)

	_, _, err = execute(t, "compare", "--assert-equal", "100.5", "100.6")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestCompareInvalid(t *testing.T) {
	_, _, err := execute(t, "compare", "100.5", "soon")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, gps.ErrParse)
}

func TestDeltaNsExtremes(t *testing.T) {
	lo := gps.FromNs(math.MinInt64)
	hi := gps.FromNs(math.MaxInt64)

	assert.NotPanics(t, func() {
		assert.Equal(t, "18446744073709551615", deltaNs(lo, hi))
		assert.Equal(t, "-18446744073709551615", deltaNs(hi, lo))
		assert.Equal(t, "0", deltaNs(lo, lo))
	})
}
