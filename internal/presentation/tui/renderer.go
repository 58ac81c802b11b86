package tui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/patrol/internal/config"
	"github.com/aretw0/patrol/pkg/domain"
)

var startMarkers = map[domain.Direction]rune{
	domain.North: '^',
	domain.East:  '>',
	domain.South: 'v',
	domain.West:  '<',
}

// ProfileFor picks the colour profile for f given a config color mode.
// In auto mode colour is used only when f is a terminal.
func ProfileFor(mode string, f *os.File) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		return termenv.ANSI256
	}
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Renderer draws a walked grid.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer creates a renderer for the given colour profile.
func NewRenderer(profile termenv.Profile) *Renderer {
	return &Renderer{profile: profile}
}

// Render draws g one row per line: '.' empty, 'X' visited, '#' obstacle, the
// start marker at start, and 'O' on every looping placement.
func (r *Renderer) Render(g *domain.Grid, start domain.Agent, loops []domain.Position) string {
	loopSet := make(map[domain.Position]struct{}, len(loops))
	for _, p := range loops {
		loopSet[p] = struct{}{}
	}

	var sb strings.Builder
	g.Each(func(pos domain.Position, cell domain.CellState) {
		if pos.Col == 0 && pos.Row > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.cell(pos, cell, start, loopSet))
	})
	sb.WriteByte('\n')
	return sb.String()
}

func (r *Renderer) cell(pos domain.Position, cell domain.CellState, start domain.Agent, loops map[domain.Position]struct{}) string {
	p := r.profile
	if pos == start.Position {
		return p.String(string(startMarkers[start.Direction])).Foreground(p.Color("#f472b6")).Bold().String()
	}
	if _, ok := loops[pos]; ok {
		return p.String("O").Foreground(p.Color("#fb7185")).Bold().String()
	}
	switch cell {
	case domain.Visited:
		return p.String("X").Foreground(p.Color("#818cf8")).String()
	case domain.Obstacle:
		return p.String("#").Foreground(p.Color("#6b7280")).String()
	default:
		return "."
	}
}
