package jex_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jex-lang/go-jex"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// TestGolden pins the indented layout of a parsed document, includes
// spliced in and object members sorted.
func TestGolden(t *testing.T) {
	node, err := jex.ParseFile(filepath.Join("testdata", "config.jex"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, jex.Serialize(node, &sb))

	golden := filepath.Join("testdata", "config.golden")
	if *update {
		require.NoError(t, os.WriteFile(golden, []byte(sb.String()), 0o644))
	}

	want, err := os.ReadFile(golden)
	require.NoError(t, err)
	require.Equal(t, string(want), sb.String())
}
