package mapping

import "testing"

func TestFit_KeepsAspect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		maxCols, maxRows int
		wantCols         int
		wantRows         int
	}{
		{name: "height bound", maxCols: 200, maxRows: 30, wantCols: 80, wantRows: 30},
		{name: "width bound", maxCols: 100, maxRows: 60, wantCols: 100, wantRows: 37},
		{name: "tiny terminal", maxCols: 1, maxRows: 1, wantCols: 20, wantRows: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := Fit(800, 600, tt.maxCols, tt.maxRows)
			if v.Cols != tt.wantCols || v.Rows != tt.wantRows {
				t.Fatalf("got %dx%d, want %dx%d", v.Cols, v.Rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestViewport_ToCell(t *testing.T) {
	t.Parallel()

	v := Viewport{Cols: 80, Rows: 30, WorldW: 800, WorldH: 600}
	if c, r := v.ToCell(0, 0); c != 0 || r != 0 {
		t.Fatalf("origin: got (%d, %d)", c, r)
	}
	if c, r := v.ToCell(799.9, 599.9); c != 79 || r != 29 {
		t.Fatalf("far corner: got (%d, %d)", c, r)
	}
	if c, r := v.ToCell(400, 450); c != 40 || r != 22 {
		t.Fatalf("bar start: got (%d, %d)", c, r)
	}
	if c, r := v.ToCell(-5, 700); v.InBounds(c, r) {
		t.Fatalf("outside point mapped in bounds: (%d, %d)", c, r)
	}
	if got := v.ColCenterX(0); got != 5 {
		t.Fatalf("col centre: got %v, want 5", got)
	}
}

func TestViewport_Covers(t *testing.T) {
	t.Parallel()

	v := Viewport{Cols: 80, Rows: 30, WorldW: 800, WorldH: 600}
	// Hole of radius 18 at (400, 200): centre cell (40, 10).
	if !v.Covers(40, 10, 400, 200, 18) {
		t.Fatalf("centre cell should be covered")
	}
	if !v.Covers(39, 10, 400, 200, 18) {
		t.Fatalf("neighbour within radius should be covered")
	}
	if v.Covers(40, 12, 400, 200, 18) {
		t.Fatalf("cell two rows down is outside the radius")
	}
	// A tiny circle still shows up in its own cell.
	if !v.Covers(40, 10, 401, 201, 0.1) {
		t.Fatalf("own cell should always be covered")
	}
}
