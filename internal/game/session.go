package game

import (
	"fmt"
	"time"

	"github.com/fchimpan/ice-cold-beer/internal/levels"
)

type State int

const (
	StateWaiting State = iota
	StatePlaying
	StateLevelComplete
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "levelComplete"
	case StateGameOver:
		return "gameOver"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type EventKind int

const (
	EventStarted EventKind = iota
	EventLevelStarted
	EventLevelComplete
	EventGameOver
	EventWon
)

// Event describes a state transition. Cue is how long the host should show
// the transient visual cue for it; zero means no cue.
type Event struct {
	Kind    EventKind
	Message string
	Points  int
	Cue     time.Duration
}

const (
	GameOverCue      = 500 * time.Millisecond
	LevelCompleteCue = time.Second
)

const (
	statusWaiting = "Press SPACE to start"
	statusGuide   = "Guide the ball to the GREEN hole!"
)

// Session owns all mutable simulation state. It is not safe for concurrent
// use; hosts that render from another goroutine should read Snapshots.
type Session struct {
	catalog levels.Catalog
	geo     Geometry
	rng     Source

	state  State
	won    bool
	score  int
	level  int
	status string
	ticks  uint64

	bar    Bar
	ball   Ball
	holes  []Hole
	events []Event
}

func NewSession(catalog levels.Catalog, geo Geometry, rng Source) (*Session, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, &InvariantError{What: "catalog", Detail: err.Error(), cause: err}
	}
	if rng == nil {
		return nil, invariantf("session", "rng source is nil")
	}

	s := &Session{
		catalog: catalog,
		geo:     geo,
		rng:     rng,
		state:   StateWaiting,
		level:   1,
		status:  statusWaiting,
		bar:     NewBar(geo),
	}
	if err := s.loadLevel(); err != nil {
		return nil, err
	}
	return s, nil
}

// Points awarded for finishing a level.
func Points(level int) int {
	p := 100 * level
	if level > 10 {
		p += 50
	}
	return p
}

// loadLevel resets the bar before generating holes and placing the ball, so
// the ball's resting height comes from the fresh bar position.
func (s *Session) loadLevel() error {
	cfg, err := s.catalog.Level(s.level)
	if err != nil {
		return err
	}
	s.bar.Reset(s.geo.BarStart)
	holes, err := GenerateHoles(cfg, s.level, s.geo, s.rng)
	if err != nil {
		return err
	}
	s.holes = holes
	s.ball.Reset(s.bar, s.geo)
	return nil
}

func (s *Session) StartGame() error {
	s.state = StatePlaying
	s.won = false
	s.score = 0
	s.level = 1
	if err := s.loadLevel(); err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	s.emit(Event{Kind: EventStarted, Message: statusGuide})
	return nil
}

// NextLevel moves on from a completed level, or wins the game after the last
// one. It is only valid in StateLevelComplete.
func (s *Session) NextLevel() error {
	if s.state != StateLevelComplete {
		return fmt.Errorf("%w (state %s)", ErrNotLevelComplete, s.state)
	}
	if s.level+1 > s.catalog.Len() {
		s.win()
		return nil
	}
	s.level++
	s.state = StatePlaying
	if err := s.loadLevel(); err != nil {
		return fmt.Errorf("failed to load level %d: %w", s.level, err)
	}
	s.emit(Event{Kind: EventLevelStarted, Message: fmt.Sprintf("Level %d - %s", s.level, statusGuide)})
	return nil
}

// Advance handles the single "advance" key: start from waiting or game over,
// next level from level complete, ignored while playing.
func (s *Session) Advance() (Snapshot, error) {
	s.events = s.events[:0]
	var err error
	switch s.state {
	case StateWaiting, StateGameOver:
		err = s.StartGame()
	case StateLevelComplete:
		err = s.NextLevel()
	}
	return s.Snapshot(), err
}

// Tick runs one simulation step. Outside the playing state it only reports
// the current snapshot.
func (s *Session) Tick(in Input) Snapshot {
	s.events = s.events[:0]
	if s.state != StatePlaying {
		return s.Snapshot()
	}
	s.ticks++

	cfg, err := s.catalog.Level(s.level)
	if err != nil {
		// level is kept inside the catalog by NextLevel.
		panic(fmt.Sprintf("game: playing level %d: %v", s.level, err))
	}

	s.bar.ApplyInputs(in, cfg.Speed)
	s.ball.Integrate(s.bar, s.geo)
	ResolveBarContact(&s.ball, s.bar, s.geo)
	ResolveBoundaries(&s.ball, s.geo)

	if FellOff(s.ball, s.geo) {
		s.gameOver(ReasonFellOff)
		return s.Snapshot()
	}
	if h, ok := ResolveHoles(s.ball, s.holes); ok {
		if h.IsTarget {
			s.levelComplete()
		} else {
			s.gameOver(ReasonWrongHole)
		}
	}
	return s.Snapshot()
}

func (s *Session) levelComplete() {
	s.state = StateLevelComplete
	points := Points(s.level)
	s.score += points
	s.emit(Event{
		Kind:    EventLevelComplete,
		Message: fmt.Sprintf("Level Complete! +%d points! Press SPACE for next level", points),
		Points:  points,
		Cue:     LevelCompleteCue,
	})
}

func (s *Session) gameOver(reason string) {
	s.state = StateGameOver
	s.emit(Event{
		Kind:    EventGameOver,
		Message: fmt.Sprintf("Game Over! %s Press SPACE to restart", reason),
		Cue:     GameOverCue,
	})
}

func (s *Session) win() {
	s.state = StateGameOver
	s.won = true
	s.emit(Event{
		Kind: EventWon,
		Message: fmt.Sprintf("Incredible! You completed all %d levels! Final Score: %d. Press SPACE to play again",
			s.catalog.Len(), s.score),
	})
}

func (s *Session) emit(ev Event) {
	s.status = ev.Message
	s.events = append(s.events, ev)
}
