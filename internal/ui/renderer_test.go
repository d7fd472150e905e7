package ui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/paddleball/internal/game"
)

// newSimRenderer returns a renderer on a 70x61 simulation screen, so one
// cell is 10x10 board units and the last row is the status bar.
func newSimRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen, *game.Game) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(70, 61)

	g, err := game.New(game.DefaultBoard(), game.WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewRenderer(NewScreen(sim), g.Board), sim, g
}

func cell(sim tcell.SimulationScreen, x, y int) (rune, tcell.Color, tcell.Color) {
	r, _, style, _ := sim.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return r, fg, bg
}

func TestRenderer_RenderGame_Paddles(t *testing.T) {
	r, sim, g := newSimRenderer(t)

	r.RenderGame(g, false)

	white := tcell.NewRGBColor(255, 255, 255)
	black := tcell.NewRGBColor(0, 0, 0)

	// Player spans x 20..40, y 100..200 -> cells 2..3, rows 10..19
	if _, _, bg := cell(sim, 2, 10); bg != white {
		t.Errorf("expected player paddle cell to be white, got %v", bg)
	}
	if _, _, bg := cell(sim, 3, 19); bg != white {
		t.Errorf("expected player paddle bottom cell to be white, got %v", bg)
	}
	if _, _, bg := cell(sim, 2, 20); bg != black {
		t.Errorf("expected cell below paddle to be background, got %v", bg)
	}
	// Computer at x 660
	if _, _, bg := cell(sim, 66, 15); bg != white {
		t.Errorf("expected computer paddle cell to be white, got %v", bg)
	}
}

func TestRenderer_RenderGame_Ball(t *testing.T) {
	r, sim, g := newSimRenderer(t)

	r.RenderGame(g, false)

	cyan := tcell.NewRGBColor(0, 255, 255)
	ch, fg, _ := cell(sim, 35, 29)
	if ch != BlockChar || fg != cyan {
		t.Errorf("expected cyan ball block at (35, 29), got %q %v", ch, fg)
	}
}

func TestRenderer_RenderGame_DashedLine(t *testing.T) {
	r, sim, g := newSimRenderer(t)

	r.RenderGame(g, false)

	if ch, _, _ := cell(sim, 34, 0); ch != '│' {
		t.Errorf("expected dash at row 0, got %q", ch)
	}
	if ch, _, _ := cell(sim, 34, 2); ch != ' ' {
		t.Errorf("expected gap at row 2, got %q", ch)
	}
	if ch, _, _ := cell(sim, 34, 3); ch != '│' {
		t.Errorf("expected dash at row 3, got %q", ch)
	}
}

func TestRenderer_RenderGame_StatusBar(t *testing.T) {
	r, sim, g := newSimRenderer(t)
	g.PlayerScore = 2
	g.ComputerScore = 1

	r.RenderGame(g, true)

	var sb strings.Builder
	for x := 0; x < 70; x++ {
		ch, _, _ := cell(sim, x, 60)
		sb.WriteRune(ch)
	}
	status := sb.String()
	if !strings.Contains(status, "Player 2 - 1 Computer") {
		t.Errorf("expected score in status bar, got %q", status)
	}
	if !strings.Contains(status, "sound off") {
		t.Errorf("expected muted indicator in status bar, got %q", status)
	}
}

func TestCellSpan(t *testing.T) {
	tests := []struct {
		from, size, scale float64
		limit             int
		start, end        int
	}{
		{20, 20, 0.1, 70, 2, 4},
		{0, 700, 0.1, 70, 0, 70},
		{5, 1, 0.1, 70, 0, 1},
		{-30, 20, 0.1, 70, 0, 0},
		{690, 30, 0.1, 70, 69, 70},
	}

	for _, tt := range tests {
		start, end := cellSpan(tt.from, tt.size, tt.scale, tt.limit)
		if start != tt.start || end != tt.end {
			t.Errorf("cellSpan(%v, %v, %v, %d) = (%d, %d), want (%d, %d)",
				tt.from, tt.size, tt.scale, tt.limit, start, end, tt.start, tt.end)
		}
	}
}
