package game

// Snapshot is a read-only copy of the session after a tick. Renderers read
// it and never write back.
type Snapshot struct {
	State  State
	Won    bool
	Score  int
	Level  int
	Levels int
	Status string
	Ticks  uint64

	Bar   Bar
	Ball  Ball
	Holes []Hole

	// Events are the transitions produced by the call that returned this
	// snapshot.
	Events []Event
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:  s.state,
		Won:    s.won,
		Score:  s.score,
		Level:  s.level,
		Levels: s.catalog.Len(),
		Status: s.status,
		Ticks:  s.ticks,
		Bar:    s.bar,
		Ball:   s.ball,
		Holes:  append([]Hole(nil), s.holes...),
		Events: append([]Event(nil), s.events...),
	}
}

func (s *Session) Geometry() Geometry { return s.geo }

// Target returns the target hole of the current level.
func (s Snapshot) Target() (Hole, bool) {
	return TargetHole(s.Holes)
}
