package cli

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// assertGolden compares command output against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/cli -run Golden -update
func assertGolden(t *testing.T, name string, args ...string) {
	t.Helper()

	out, _, err := execute(t, args...)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(out))
}

func TestGoldenConvertText(t *testing.T) {
	assertGolden(t, "convert_text", "convert", "--", "101", "-500000000")
}

func TestGoldenConvertJSON(t *testing.T) {
	assertGolden(t, "convert_json", "--format", "json", "convert", "--", "-10.5", "111000000000")
}

func TestGoldenBatchText(t *testing.T) {
	assertGolden(t, "batch_text", "batch", filepath.Join("testdata", "batch", "events.yaml"))
}
