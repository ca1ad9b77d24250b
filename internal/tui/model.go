package tui

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/ice-cold-beer/internal/game"
	"github.com/fchimpan/ice-cold-beer/internal/mapping"
)

// Terminals only report key presses (and auto-repeat), never releases, so a
// bar control stays held for this long after its last key event.
const holdWindow = 180 * time.Millisecond

type intent int

const (
	raiseLeft intent = iota
	lowerLeft
	raiseRight
	lowerRight
	intentCount
)

type Model struct {
	session *game.Session
	geo     game.Geometry
	seed    uint64
	tps     int
	now     func() time.Time

	lastTick time.Time
	acc      float64

	rng           *rand.Rand
	confetti      []confettiParticle
	confettiSpawn float64

	ready bool
	w     int
	h     int
	view  mapping.Viewport

	snap game.Snapshot
	held [intentCount]time.Time

	// Transient visual cue from the last transition; cueSeq drops stale clears.
	cue       game.EventKind
	cueActive bool
	cueSeq    int

	err error

	viewBuf bytes.Buffer
	canvas  canvasBuf
}

func NewModel(session *game.Session, seed uint64, tps int) *Model {
	if tps <= 0 {
		tps = 60
	}
	return &Model{
		session: session,
		geo:     session.Geometry(),
		seed:    seed,
		tps:     tps,
		now:     time.Now,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		snap:    session.Snapshot(),
	}
}

// Err is the error that stopped the program, if any.
func (m *Model) Err() error { return m.err }

type tickMsg time.Time

type cueClearMsg struct{ seq int }

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Second / 60
	}
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.stepDuration())
}

func (m *Model) stepDuration() time.Duration {
	return time.Second / time.Duration(m.tps)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		// Leave room for the HUD, status line and a trailing blank.
		m.view = mapping.Fit(m.geo.Width, m.geo.Height, m.w-2, m.h-4)
		m.canvas.Reset()
		m.ready = true
		return m, nil
	case tickMsg:
		now := time.Time(msg)
		if m.lastTick.IsZero() {
			m.lastTick = now
			return m, tickCmd(m.frameDuration())
		}

		// Measure real elapsed time, but clamp to avoid a huge "warp" when the app lags.
		dt := now.Sub(m.lastTick).Seconds()
		m.lastTick = now
		if dt < 0 {
			dt = 0
		}
		if dt > 0.25 {
			dt = 0.25
		}

		m.updateParty(dt)

		cmds := []tea.Cmd{nil}
		if m.snap.State != game.StatePlaying {
			m.acc = 0
		} else {
			// Physics constants are per tick, so run whole ticks at the configured rate.
			m.acc += dt
			fixed := 1.0 / float64(m.tps)
			const maxStepsPerTick = 10

			steps := 0
			for m.acc >= fixed && steps < maxStepsPerTick && m.snap.State == game.StatePlaying {
				m.snap = m.session.Tick(m.intents(now))
				cmds = append(cmds, m.handleEvents(m.snap.Events)...)
				m.acc -= fixed
				steps++
			}
			// If we are too far behind, drop the remainder to keep the app responsive.
			if steps >= maxStepsPerTick {
				m.acc = math.Mod(m.acc, fixed)
			}
		}
		cmds[0] = tickCmd(m.frameDuration())
		return m, tea.Batch(cmds...)
	case cueClearMsg:
		if msg.seq == m.cueSeq {
			m.cueActive = false
		}
		return m, nil
	case tea.KeyMsg:
		now := m.now()
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "space", "enter":
			snap, err := m.session.Advance()
			if err != nil {
				m.err = err
				log.Printf("icebeer: advance failed: %v", err)
				return m, tea.Quit
			}
			prev := m.snap.State
			m.snap = snap
			if snap.State != prev {
				// New level or restart: start from a clean clock and released controls.
				m.acc = 0
				m.held = [intentCount]time.Time{}
			}
			return m, tea.Batch(m.handleEvents(snap.Events)...)
		case "q", "Q":
			m.hold(raiseLeft, lowerLeft, now)
		case "a", "A":
			m.hold(lowerLeft, raiseLeft, now)
		case "p", "P":
			m.hold(raiseRight, lowerRight, now)
		case "l", "L":
			m.hold(lowerRight, raiseRight, now)
		}
		return m, nil
	default:
		return m, nil
	}
}

// hold keeps i active for holdWindow and releases the opposing control on the same end.
func (m *Model) hold(i, opposite intent, now time.Time) {
	m.held[i] = now.Add(holdWindow)
	m.held[opposite] = time.Time{}
}

func (m *Model) intents(now time.Time) game.Input {
	on := func(i intent) bool { return now.Before(m.held[i]) }
	return game.Input{
		RaiseLeft:  on(raiseLeft),
		LowerLeft:  on(lowerLeft),
		RaiseRight: on(raiseRight),
		LowerRight: on(lowerRight),
	}
}

func (m *Model) handleEvents(events []game.Event) []tea.Cmd {
	var cmds []tea.Cmd
	for _, ev := range events {
		log.Printf("icebeer: %s level=%d score=%d: %s", m.snap.State, m.snap.Level, m.snap.Score, ev.Message)
		if ev.Cue <= 0 {
			continue
		}
		m.cueSeq++
		m.cue = ev.Kind
		m.cueActive = true
		seq := m.cueSeq
		cmds = append(cmds, tea.Tick(ev.Cue, func(time.Time) tea.Msg { return cueClearMsg{seq: seq} }))
	}
	return cmds
}

func (m *Model) frameDuration() time.Duration {
	// Bubble Tea drives View() on every message; avoid rendering at full rate when idle.
	switch {
	case m.snap.State == game.StatePlaying:
		return m.stepDuration()
	case m.snap.Won:
		return time.Second / 30
	default:
		return time.Second / 15
	}
}

func (m *Model) View() string {
	if !m.ready {
		return "loading...\n"
	}

	m.viewBuf.Reset()
	b := &m.viewBuf

	hud := renderHUD(m.snap, m.geo)
	infoLine := m.snap.Status

	contentW := m.view.Cols
	if w := lipgloss.Width(hud); w > contentW {
		contentW = w
	}
	leftPad := 0
	if m.w > contentW {
		leftPad = (m.w - contentW) / 2
	}
	leftPadStr := strings.Repeat(" ", leftPad)

	// Lines: HUD(1) + info(1) + field(rows) + trailing blank(1)
	contentH := 1 + 1 + m.view.Rows + 1
	if m.h > contentH {
		b.WriteString(strings.Repeat("\n", (m.h-contentH)/2))
	}

	b.WriteString(leftPadStr)
	b.WriteString(hud)
	b.WriteString("\n")
	b.WriteString(leftPadStr)
	b.WriteString(styleStatus.Render(infoLine))
	b.WriteString("\n")

	var confetti []confettiParticle
	if m.snap.Won {
		confetti = m.confetti
	}
	renderFieldTo(b, m.view, m.snap, m.geo, m.palette(), m.overlay(), leftPadStr, confetti, &m.canvas)
	b.WriteString("\n")
	return b.String()
}

type tint int

const (
	tintNone tint = iota
	tintGameOver
	tintComplete
)

// fieldTint is the background colour shown while a transition cue is active.
func (m *Model) fieldTint() tint {
	if !m.cueActive {
		return tintNone
	}
	switch m.cue {
	case game.EventGameOver:
		return tintGameOver
	case game.EventLevelComplete:
		return tintComplete
	}
	return tintNone
}

func (m *Model) palette() palette {
	p := defaultPalette
	switch m.fieldTint() {
	case tintGameOver:
		p.Field = fieldCellGameOver
	case tintComplete:
		p.Field = fieldCellComplete
	}
	return p
}

func (m *Model) overlay() *fieldOverlay {
	s := m.snap
	switch {
	case s.State == game.StateWaiting:
		return &fieldOverlay{
			Title: "ICE COLD BEER",
			Lines: []string{
				"q / a : left end up / down",
				"p / l : right end up / down",
				"sink the ball in the GREEN hole",
			},
			Footer: "press SPACE to start, esc to quit",
		}
	case s.Won:
		return &fieldOverlay{
			Title: "CLEAR!  ALL LEVELS DONE",
			Lines: []string{
				fmt.Sprintf("score: %8d", s.Score),
				fmt.Sprintf("levels: %d", s.Levels),
				"thank you for playing!",
			},
			Footer: "press SPACE to play again, esc to quit",
		}
	case s.State == game.StateGameOver:
		return &fieldOverlay{
			Title: "GAME OVER...",
			Lines: []string{
				fmt.Sprintf("score: %8d", s.Score),
				fmt.Sprintf("level: %d", s.Level),
			},
			Footer: "press SPACE to restart, esc to quit",
		}
	case s.State == game.StateLevelComplete:
		return &fieldOverlay{
			Title: fmt.Sprintf("LEVEL %d CLEAR!", s.Level),
			Lines: []string{
				fmt.Sprintf("+%d points", game.Points(s.Level)),
				fmt.Sprintf("score: %8d", s.Score),
			},
			Footer: "press SPACE for next level",
		}
	}
	return nil
}

func renderHUD(s game.Snapshot, geo game.Geometry) string {
	sep := styleHudDim.Render("  |  ")

	// Level progress bar.
	barW := 18
	fill := 0
	if s.Levels > 0 {
		done := s.Level - 1
		if s.State == game.StateLevelComplete || s.Won {
			done = s.Level
		}
		fill = min(max(barW*done/s.Levels, 0), barW)
	}
	progress := styleHudLabel.Render("[") +
		styleHudOk.Render(strings.Repeat("█", fill)) +
		styleHudDim.Render(strings.Repeat("░", barW-fill)) +
		styleHudLabel.Render("]")

	tilt := s.Bar.ClampedAngle() * 180 / math.Pi

	return strings.Join([]string{
		styleHudLabel.Render("level ") + styleHudValue.Render(fmt.Sprintf("%2d/%2d", s.Level, s.Levels)) + " " + progress,
		sep,
		styleHudLabel.Render("score ") + styleHudScore.Render(fmt.Sprintf("%8d", s.Score)),
		sep,
		styleHudLabel.Render("tilt ") + styleHudValue.Render(fmt.Sprintf("%+5.1f°", tilt)),
		styleHudDim.Render("  (q/a left, p/l right, space go, esc quit)"),
	}, "")
}

type fieldOverlay struct {
	Title  string
	Lines  []string
	Footer string
}

type confettiParticle struct {
	X    int
	Y    float64
	VY   float64
	Cell string
}

func (m *Model) updateParty(dt float64) {
	if !m.ready {
		return
	}
	// Party only after the last level.
	if !m.snap.Won {
		if len(m.confetti) > 0 {
			m.confetti = nil
			m.confettiSpawn = 0
		}
		return
	}

	w := m.view.Cols
	h := m.view.Rows
	if w <= 0 || h <= 0 {
		return
	}

	out := m.confetti[:0]
	for i := range m.confetti {
		p := m.confetti[i]
		p.Y += p.VY * dt
		if p.Y < float64(h) {
			out = append(out, p)
		}
	}
	m.confetti = out

	m.confettiSpawn += dt * 45.0
	if m.confettiSpawn > 200 {
		m.confettiSpawn = 200
	}
	for m.confettiSpawn >= 1.0 {
		m.confettiSpawn -= 1.0
		ci := m.rng.IntN(len(confettiChars))
		co := m.rng.IntN(len(confettiColors))
		m.confetti = append(m.confetti, confettiParticle{
			X:    m.rng.IntN(w),
			Y:    -1,
			VY:   10.0 + m.rng.Float64()*25.0,
			Cell: confettiCells[ci][co],
		})
	}
}
