package mapping

import "math"

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

const (
	minCols = 20
	minRows = 8
)

// Viewport maps playfield coordinates onto a Cols x Rows grid of terminal
// cells. Column 0 / row 0 is the top-left corner of the playfield.
type Viewport struct {
	Cols   int
	Rows   int
	WorldW float64
	WorldH float64
}

// Fit picks the largest grid within maxCols x maxRows that keeps the
// playfield's aspect ratio on screen.
func Fit(worldW, worldH float64, maxCols, maxRows int) Viewport {
	maxCols = max(maxCols, minCols)
	maxRows = max(maxRows, minRows)

	rows := maxRows
	cols := int(math.Floor(float64(rows) * worldW * cellAspect / worldH))
	if cols > maxCols {
		cols = maxCols
		rows = max(int(math.Floor(float64(cols)*worldH/(worldW*cellAspect))), 1)
	}
	return Viewport{Cols: cols, Rows: rows, WorldW: worldW, WorldH: worldH}
}

func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x / v.WorldW * float64(v.Cols)))
	row = int(math.Floor(y / v.WorldH * float64(v.Rows)))
	return col, row
}

// ColCenterX is the world x at the middle of a column.
func (v Viewport) ColCenterX(col int) float64 {
	return (float64(col) + 0.5) * v.WorldW / float64(v.Cols)
}

func (v Viewport) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < v.Cols && row < v.Rows
}

// Covers reports whether the world circle (x, y, r) touches the cell.
// Cells are sampled at their centre, and every circle covers at least the
// cell holding its centre.
func (v Viewport) Covers(col, row int, x, y, r float64) bool {
	cw := v.WorldW / float64(v.Cols)
	ch := v.WorldH / float64(v.Rows)
	cx := (float64(col) + 0.5) * cw
	cy := (float64(row) + 0.5) * ch
	if c, rr := v.ToCell(x, y); c == col && rr == row {
		return true
	}
	return math.Hypot(cx-x, cy-y) <= r
}
