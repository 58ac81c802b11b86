package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/patrol"
	"github.com/aretw0/patrol/internal/config"
)

const exampleMap = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func quiet() *string {
	s := "error"
	return &s
}

func noConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("Prints both solutions", func(t *testing.T) {
		var out bytes.Buffer
		err := Execute(ctx, RunOptions{
			InputPath:  writeMap(t, exampleMap),
			ConfigPath: noConfig(t),
			LogLevel:   quiet(),
		}, &out)
		require.NoError(t, err)
		assert.Equal(t, "Part 1 Solution: 41\nPart 2 Solution: 6\n", out.String())
	})

	t.Run("Single part", func(t *testing.T) {
		var out bytes.Buffer
		err := Execute(ctx, RunOptions{
			InputPath:  writeMap(t, exampleMap),
			ConfigPath: noConfig(t),
			Part:       patrol.PartSearch,
			LogLevel:   quiet(),
		}, &out)
		require.NoError(t, err)
		assert.Equal(t, "Part 2 Solution: 6\n", out.String())
	})

	t.Run("Render marks loops", func(t *testing.T) {
		var out bytes.Buffer
		never := config.ColorNever
		err := Execute(ctx, RunOptions{
			InputPath:  writeMap(t, exampleMap),
			ConfigPath: noConfig(t),
			Render:     true,
			LogLevel:   quiet(),
			Color:      &never,
		}, &out)
		require.NoError(t, err)

		lines := strings.Split(out.String(), "\n")
		require.GreaterOrEqual(t, len(lines), 12)
		assert.Equal(t, ".#XO^XXXX.", lines[6])
		assert.Equal(t, 6, strings.Count(out.String(), "O"))
	})

	t.Run("Writes metrics file", func(t *testing.T) {
		metricsPath := filepath.Join(t.TempDir(), "patrol.prom")
		var out bytes.Buffer
		err := Execute(ctx, RunOptions{
			InputPath:   writeMap(t, exampleMap),
			ConfigPath:  noConfig(t),
			LogLevel:    quiet(),
			MetricsFile: &metricsPath,
		}, &out)
		require.NoError(t, err)

		data, err := os.ReadFile(metricsPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), `patrol_runs_total{mode="walk",outcome="exited"} 1`)
		assert.Contains(t, string(data), `patrol_runs_total{mode="trace",outcome="looping"} 6`)
		assert.Contains(t, string(data), "patrol_search_candidates_total 90")
	})

	t.Run("Config file supplies step limit", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "patrol.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("step_limit: 3\nlog_level: error\n"), 0644))

		var out bytes.Buffer
		err := Execute(ctx, RunOptions{
			InputPath:  writeMap(t, exampleMap),
			ConfigPath: cfgPath,
			Part:       patrol.PartWalk,
		}, &out)
		assert.Error(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("Missing input", func(t *testing.T) {
		var out bytes.Buffer
		err := Execute(ctx, RunOptions{
			InputPath:  filepath.Join(t.TempDir(), "nope.txt"),
			ConfigPath: noConfig(t),
			LogLevel:   quiet(),
		}, &out)
		assert.Error(t, err)
	})

	t.Run("Malformed map prints nothing", func(t *testing.T) {
		var out bytes.Buffer
		err := Execute(ctx, RunOptions{
			InputPath:  writeMap(t, "..\n.^.\n"),
			ConfigPath: noConfig(t),
			LogLevel:   quiet(),
		}, &out)
		assert.Error(t, err)
		assert.Empty(t, out.String())
	})
}
