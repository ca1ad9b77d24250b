package tui

import (
	"bytes"
	"testing"

	"github.com/fchimpan/ice-cold-beer/internal/game"
	"github.com/fchimpan/ice-cold-beer/internal/mapping"
)

// plainPalette uses distinct unstyled cells so assertions do not depend on
// the terminal colour profile.
var plainPalette = palette{
	Field:  ".",
	Target: "T",
	Decoy:  "D",
	Ring:   "r",
	Bar:    "=",
	Ball:   "o",
	Track:  "|",
	Knob:   "#",
}

func TestRenderField_DrawsBarBallAndHoles(t *testing.T) {
	t.Parallel()

	geo := game.DefaultGeometry()
	v := mapping.Viewport{Cols: 80, Rows: 30, WorldW: geo.Width, WorldH: geo.Height}

	bar := game.NewBar(geo)
	var ball game.Ball
	ball.Reset(bar, geo)
	snap := game.Snapshot{
		State: game.StatePlaying,
		Bar:   bar,
		Ball:  ball,
		Holes: []game.Hole{
			{X: 250, Y: 200, Radius: geo.HoleRadius, IsTarget: true, Active: true},
			{X: 550, Y: 200, Radius: geo.HoleRadius, Active: true},
			{X: 400, Y: 100, Radius: geo.HoleRadius, Active: false},
		},
	}

	var out bytes.Buffer
	var canvas canvasBuf
	renderFieldTo(&out, v, snap, geo, plainPalette, nil, "", nil, &canvas)

	if got := bytes.Count(out.Bytes(), []byte("\n")); got != v.Rows {
		t.Fatalf("expected %d rows, got %d", v.Rows, got)
	}
	if got := canvas.Get(25, 10); got != "T" {
		t.Fatalf("target hole centre: got %q", got)
	}
	if got := canvas.Get(55, 10); got != "D" {
		t.Fatalf("decoy hole centre: got %q", got)
	}
	if got := canvas.Get(40, 5); got != "." {
		t.Fatalf("inactive hole should not be drawn, got %q", got)
	}
	if got := canvas.Get(30, 22); got != "=" {
		t.Fatalf("bar not drawn on row 22, got %q", got)
	}
	if got := canvas.Get(5, 22); got == "=" {
		t.Fatalf("bar drawn outside its span")
	}
	if got := canvas.Get(40, 21); got != "o" {
		t.Fatalf("ball not drawn above the bar, got %q", got)
	}
	if !bytes.Contains(out.Bytes(), []byte("T")) || !bytes.Contains(out.Bytes(), []byte("=")) {
		t.Fatalf("rendered output missing field cells")
	}
}

func TestRenderField_DefaultPaletteIsDistinct(t *testing.T) {
	t.Parallel()

	// Glyph cells stay distinguishable even without colour.
	glyphs := []string{defaultPalette.Ring, defaultPalette.Bar, defaultPalette.Ball, defaultPalette.Track, defaultPalette.Knob}
	seen := map[string]bool{}
	for _, g := range glyphs {
		if seen[g] {
			t.Fatalf("duplicate glyph cell %q in default palette", g)
		}
		seen[g] = true
	}
}

func TestApplyOverlay_CentersTitle(t *testing.T) {
	t.Parallel()

	var c canvasBuf
	c.Resize(40, 12)
	c.Fill(" ")
	applyOverlay(&c, &fieldOverlay{Title: "GAME OVER...", Lines: []string{"score: 1"}, Footer: "bye"})

	// Box is 16x7 centred in 40x12: corner at (12, 2).
	if c.Get(12, 2) == " " || c.Get(11, 2) != " " {
		t.Fatalf("overlay box misplaced")
	}
}
