package compiler

import (
	"errors"
	"os"
	"testing"

	"github.com/aretw0/patrol/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	p := NewParser()

	t.Run("Worked example", func(t *testing.T) {
		data, err := os.ReadFile("testdata/example.txt")
		require.NoError(t, err)

		layout, err := p.Parse(data)
		require.NoError(t, err)

		assert.Equal(t, 10, layout.Grid.Rows())
		assert.Equal(t, 10, layout.Grid.Cols())
		assert.Equal(t, 8, layout.Grid.Count(domain.Obstacle))
		assert.Equal(t, domain.NewAgent(domain.North, domain.Position{Row: 6, Col: 4}), layout.Start)

		cell, _ := layout.Grid.Get(layout.Start.Position)
		assert.Equal(t, domain.Visited, cell, "start cell is normalized to visited")
		assert.Equal(t, 1, layout.Grid.Count(domain.Visited))
	})

	t.Run("Facing markers", func(t *testing.T) {
		cases := map[string]domain.Direction{
			"^": domain.North,
			">": domain.East,
			"v": domain.South,
			"<": domain.West,
		}
		for in, want := range cases {
			layout, err := p.Parse([]byte(in))
			require.NoError(t, err, in)
			assert.Equal(t, want, layout.Start.Direction, in)
		}
	})

	t.Run("CRLF and trailing newline", func(t *testing.T) {
		layout, err := p.Parse([]byte(".#\r\n^.\r\n\r\n"))
		require.NoError(t, err)
		assert.Equal(t, 2, layout.Grid.Rows())
		assert.Equal(t, domain.Position{Row: 1, Col: 0}, layout.Start.Position)
	})
}

func TestParser_Errors(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"Empty", "", domain.ErrEmptyGrid},
		{"Only blank lines", "\n\n", domain.ErrEmptyGrid},
		{"Unknown char", "..\n.x\n^.", domain.ErrUnknownCell},
		{"Ragged", "...\n.^\n...", domain.ErrRaggedGrid},
		{"No guard", "..\n.#", domain.ErrNoGuard},
		{"Two guards", "^.\n.v", domain.ErrMultipleGuards},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := p.Parse([]byte(tt.input))
			assert.Nil(t, layout)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}

	t.Run("Parse error location", func(t *testing.T) {
		_, err := p.Parse([]byte("..\n.x"))
		var pe *domain.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 1, pe.Row)
		assert.Equal(t, 1, pe.Col)
		assert.Equal(t, 'x', pe.Char)
	})
}
