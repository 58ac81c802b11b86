package runtime_test

import (
	"os"
	"testing"

	"github.com/aretw0/patrol/internal/compiler"
	"github.com/aretw0/patrol/internal/runtime"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, text string) *compiler.Layout {
	t.Helper()
	layout, err := compiler.NewParser().Parse([]byte(text))
	require.NoError(t, err)
	return layout
}

func parseFile(t *testing.T, path string) *compiler.Layout {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Skipf("fixture %s not present", path)
	}
	require.NoError(t, err)
	return parse(t, string(data))
}

func newEngine(t *testing.T, opts ...runtime.EngineOption) *runtime.Engine {
	t.Helper()
	engine, err := runtime.NewEngine(opts...)
	require.NoError(t, err)
	return engine
}

// loopGrid traps a north-facing guard in a four-cell square from the start.
const loopGrid = `.#..
.^.#
#...
..#.`
