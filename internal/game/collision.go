package game

import "math"

const (
	// barContactSlack extends the contact band below the bar's bottom edge.
	barContactSlack = 5
	// launchAssistMinVX is the horizontal speed above which leaving the bar
	// gives the ball a small upward kick.
	launchAssistMinVX  = 3
	launchAssistFactor = 0.1
	wallRestitution    = 0.8
	fallOffMargin      = 50
)

const (
	ReasonFellOff   = "Ball fell off the screen!"
	ReasonWrongHole = "Ball fell in the wrong hole!"
)

// ResolveBarContact snaps a falling ball onto the bar surface, or marks it
// off the bar. The launch assist fires only on the on-bar to off-bar
// transition, so it is applied once per departure.
func ResolveBarContact(ball *Ball, bar Bar, geo Geometry) {
	left, right := bar.Span()
	if ball.X >= left && ball.X <= right {
		barY := bar.SurfaceY(ball.X)
		bottom := ball.Y + ball.Radius
		if bottom >= barY && bottom <= barY+geo.BarThickness+barContactSlack {
			if ball.VY > 0 {
				ball.Y = barY - ball.Radius
				ball.VY = 0
				ball.OnBar = true
			}
			return
		}
	}
	if ball.OnBar && math.Abs(ball.VX) > launchAssistMinVX {
		ball.VY -= math.Abs(ball.VX) * launchAssistFactor
	}
	ball.OnBar = false
}

// ResolveBoundaries reflects the ball off the side walls.
func ResolveBoundaries(ball *Ball, geo Geometry) {
	if ball.X-ball.Radius < 0 || ball.X+ball.Radius > geo.Width {
		ball.VX = -ball.VX * wallRestitution
		if ball.X-ball.Radius < 0 {
			ball.X = ball.Radius
		} else {
			ball.X = geo.Width - ball.Radius
		}
	}
}

func FellOff(ball Ball, geo Geometry) bool {
	return ball.Y > geo.Height+fallOffMargin
}

// ResolveHoles returns the first active hole the ball has sunk into. The
// ball must be well inside the rim: distance < holeRadius - ballRadius/2.
func ResolveHoles(ball Ball, holes []Hole) (Hole, bool) {
	for _, h := range holes {
		if !h.Active {
			continue
		}
		if math.Hypot(ball.X-h.X, ball.Y-h.Y) < h.Radius-ball.Radius/2 {
			return h, true
		}
	}
	return Hole{}, false
}
