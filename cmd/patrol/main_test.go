package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "patrol version")
}

func TestSolveCommand(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(mapPath, []byte("#.\n^."), 0644))

	out, err := runRoot(t, "solve", mapPath,
		"--part", "1",
		"--log-level", "error",
		"--config", filepath.Join(dir, "absent.yaml"),
	)
	require.NoError(t, err)
	// Blocked at the start: turn east, step once, then leave.
	assert.Equal(t, "Part 1 Solution: 2\n", out)
}

func TestSolveCommand_InvalidPart(t *testing.T) {
	_, err := runRoot(t, "solve", "--part", "7")
	assert.Error(t, err)
}
