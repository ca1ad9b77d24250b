package tui

import (
	"bytes"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/ice-cold-beer/internal/game"
	"github.com/fchimpan/ice-cold-beer/internal/mapping"
)

// ===== Render helpers (cached styles) =====

var (
	fieldBg = lipgloss.Color("#5c4a36")

	styleField = lipgloss.NewStyle().Background(fieldBg)
	styleBar   = lipgloss.NewStyle().Background(fieldBg).Foreground(lipgloss.Color("#d7a86e")).Bold(true)
	styleBall  = lipgloss.NewStyle().Background(fieldBg).Foreground(lipgloss.Color("#e0e0e0")).Bold(true)
	styleTrack = lipgloss.NewStyle().Background(fieldBg).Foreground(lipgloss.Color("#3e2723"))
	styleKnob  = lipgloss.NewStyle().Background(fieldBg).Foreground(lipgloss.Color("#8b6914"))
	styleRing  = lipgloss.NewStyle().Background(fieldBg).Foreground(lipgloss.Color("#81c784"))

	fieldCellGameOver = lipgloss.NewStyle().Background(lipgloss.Color("#6e2a25")).Render(" ")
	fieldCellComplete = lipgloss.NewStyle().Background(lipgloss.Color("#2f5a2f")).Render(" ")

	defaultPalette = palette{
		Field:  styleField.Render(" "),
		Target: lipgloss.NewStyle().Background(lipgloss.Color("#4caf50")).Render(" "),
		Decoy:  lipgloss.NewStyle().Background(lipgloss.Color("#1a1a1a")).Render(" "),
		Ring:   styleRing.Render("·"),
		Bar:    styleBar.Render("━"),
		Ball:   styleBall.Render("●"),
		Track:  styleTrack.Render("┃"),
		Knob:   styleKnob.Render("█"),
	}

	styleStatus   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de"))
	styleHudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleHudValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleHudScore = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHudOk    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7ee787"))
	styleHudDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

var (
	confettiChars  = []rune{'*', '+', 'x', 'o', '~', '^'}
	confettiColors = []lipgloss.Color{
		lipgloss.Color("#ff7b72"),
		lipgloss.Color("#ffd33d"),
		lipgloss.Color("#7ee787"),
		lipgloss.Color("#79c0ff"),
		lipgloss.Color("#d2a8ff"),
	}
	confettiCells = func() [][]string {
		cells := make([][]string, len(confettiChars))
		for i, ch := range confettiChars {
			row := make([]string, len(confettiColors))
			for j, col := range confettiColors {
				row[j] = lipgloss.NewStyle().Foreground(col).Render(string(ch))
			}
			cells[i] = row
		}
		return cells
	}()
)

// palette is the set of pre-rendered cells the field is drawn with.
type palette struct {
	Field  string
	Target string
	Decoy  string
	Ring   string
	Bar    string
	Ball   string
	Track  string
	Knob   string
}

// joystickInset is how far the end-height indicators sit from the field edges.
const joystickInset = 60

type canvasBuf struct {
	w     int
	h     int
	cells []string // flat: y*w + x
}

func (c *canvasBuf) Reset() {
	c.w = 0
	c.h = 0
	c.cells = nil
}

func (c *canvasBuf) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		c.Reset()
		return
	}
	n := w * h
	if c.w == w && c.h == h && cap(c.cells) >= n {
		c.cells = c.cells[:n]
		return
	}
	c.w = w
	c.h = h
	c.cells = make([]string, n)
}

func (c *canvasBuf) Fill(cell string) {
	for i := range c.cells {
		c.cells[i] = cell
	}
}

func (c *canvasBuf) Set(x, y int, cell string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell
}

func (c *canvasBuf) Get(x, y int) string {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return ""
	}
	return c.cells[y*c.w+x]
}

// paintCircle sets every cell the world circle touches.
func paintCircle(canvas *canvasBuf, v mapping.Viewport, x, y, r float64, cell string) {
	c0, r0 := v.ToCell(x-r, y-r)
	c1, r1 := v.ToCell(x+r, y+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if v.InBounds(col, row) && v.Covers(col, row, x, y, r) {
				canvas.Set(col, row, cell)
			}
		}
	}
}

func renderFieldTo(out *bytes.Buffer, v mapping.Viewport, s game.Snapshot, geo game.Geometry, p palette, overlay *fieldOverlay, leftPad string, confetti []confettiParticle, canvas *canvasBuf) {
	w := v.Cols
	h := v.Rows
	if w <= 0 || h <= 0 {
		return
	}

	canvas.Resize(w, h)
	canvas.Fill(p.Field)

	// Joystick tracks with a knob at each end's height.
	for _, js := range []struct {
		x      float64
		height float64
	}{
		{joystickInset, s.Bar.LeftHeight},
		{geo.Width - joystickInset, s.Bar.RightHeight},
	} {
		col, top := v.ToCell(js.x, geo.BarMin)
		_, bottom := v.ToCell(js.x, geo.BarMax)
		for row := top; row <= bottom; row++ {
			canvas.Set(col, row, p.Track)
		}
		_, knob := v.ToCell(js.x, js.height)
		canvas.Set(col, knob, p.Knob)
	}

	// Holes, with a pulsing ring around the target while playing.
	for _, hole := range s.Holes {
		if !hole.Active {
			continue
		}
		if hole.IsTarget && s.State == game.StatePlaying {
			pulse := hole.Radius + 5 + math.Sin(float64(s.Ticks)*0.05)*3
			paintCircle(canvas, v, hole.X, hole.Y, pulse, p.Ring)
		}
		cell := p.Decoy
		if hole.IsTarget {
			cell = p.Target
		}
		paintCircle(canvas, v, hole.X, hole.Y, hole.Radius, cell)
	}

	// Bar: sample the surface at each column centre inside the span.
	left, right := s.Bar.Span()
	for col := 0; col < w; col++ {
		x := v.ColCenterX(col)
		if x < left || x > right {
			continue
		}
		_, row := v.ToCell(x, s.Bar.SurfaceY(x)+geo.BarThickness/2)
		canvas.Set(col, row, p.Bar)
	}

	// Ball.
	paintCircle(canvas, v, s.Ball.X, s.Ball.Y, s.Ball.Radius*0.5, p.Ball)

	for i := range confetti {
		canvas.Set(confetti[i].X, int(confetti[i].Y), confetti[i].Cell)
	}

	if overlay != nil {
		applyOverlay(canvas, overlay)
	}

	for y := 0; y < h; y++ {
		if leftPad != "" {
			out.WriteString(leftPad)
		}
		rowOff := y * w
		for x := 0; x < w; x++ {
			out.WriteString(canvas.cells[rowOff+x])
		}
		out.WriteByte('\n')
	}
}

func applyOverlay(canvas *canvasBuf, ov *fieldOverlay) {
	h := canvas.h
	if h == 0 {
		return
	}
	w := canvas.w
	if w == 0 {
		return
	}

	lines := make([]string, 0, 2+len(ov.Lines)+1)
	if ov.Title != "" {
		lines = append(lines, ov.Title)
	}
	lines = append(lines, ov.Lines...)
	if ov.Footer != "" {
		lines = append(lines, ov.Footer)
	}

	maxLen := 0
	for _, s := range lines {
		if n := len([]rune(s)); n > maxLen {
			maxLen = n
		}
	}
	innerW := maxLen
	innerH := len(lines)

	// padding 1 on each side, plus borders.
	boxW := min(innerW+4, w)
	boxH := min(innerH+4, h)

	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	isClear := strings.Contains(ov.Title, "CLEAR")
	borderColor := "#30363d"
	titleColor := "#ff7b72"
	if isClear {
		borderColor = "#7ee787"
		titleColor = "#7ee787"
	} else if !strings.HasPrefix(ov.Title, "GAME OVER") {
		titleColor = "#ffd33d"
	}

	borderStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleColor))
	scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d0d7de"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	panelStyle := lipgloss.NewStyle().Background(lipgloss.Color("#161b22"))

	put := func(x, y int, cell string) {
		canvas.Set(x, y, cell)
	}

	bgCell := panelStyle.Render(" ")
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			put(x, y, bgCell)
		}
	}

	hLine := borderStyle.Render("─")
	vLine := borderStyle.Render("│")
	for x := x0 + 1; x < x0+boxW-1; x++ {
		put(x, y0, hLine)
		put(x, y0+boxH-1, hLine)
	}
	for y := y0 + 1; y < y0+boxH-1; y++ {
		put(x0, y, vLine)
		put(x0+boxW-1, y, vLine)
	}
	put(x0, y0, borderStyle.Render("╭"))
	put(x0+boxW-1, y0, borderStyle.Render("╮"))
	put(x0, y0+boxH-1, borderStyle.Render("╰"))
	put(x0+boxW-1, y0+boxH-1, borderStyle.Render("╯"))

	// Text placement inside: 1 border + 1 padding.
	tx0 := x0 + 2
	ty0 := y0 + 2

	for i, line := range lines {
		y := ty0 + i
		if y >= y0+boxH-2 {
			break
		}
		runes := []rune(line)
		if len(runes) > innerW {
			runes = runes[:innerW]
		}
		startX := tx0 + (innerW-len(runes))/2

		var st lipgloss.Style
		switch {
		case i == 0 && ov.Title != "":
			st = titleStyle
		case strings.HasPrefix(line, "score:") || strings.HasPrefix(line, "+"):
			st = scoreStyle
		case i == len(lines)-1 && ov.Footer != "":
			st = helpStyle
		default:
			st = textStyle
		}

		for j, r := range runes {
			x := startX + j
			if x >= x0+boxW-2 {
				break
			}
			put(x, y, panelStyle.Foreground(st.GetForeground()).Bold(st.GetBold()).Render(string(r)))
		}
	}
}
