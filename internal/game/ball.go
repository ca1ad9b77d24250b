package game

import "math"

type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	OnBar  bool
}

// Reset places the ball just above the bar's left-end height at the
// bar's centre. The bar must already be in its new position.
func (b *Ball) Reset(bar Bar, geo Geometry) {
	b.Radius = geo.BallRadius
	b.X = geo.BarCenterX
	b.Y = bar.LeftHeight - geo.BallRadius - 5
	b.VX = 0
	b.VY = 0
	b.OnBar = true
}

// Integrate advances one tick: gravity, tilt push, friction, then position.
// The tilt push applies whether or not the ball touches the bar.
func (b *Ball) Integrate(bar Bar, geo Geometry) {
	b.VY += geo.Gravity
	b.VX += math.Sin(bar.ClampedAngle()) * geo.TiltForce
	b.VX *= geo.Friction
	b.X += b.VX
	b.Y += b.VY
}

// TerminalVX is the horizontal speed a ball converges to under a constant tilt.
func TerminalVX(angle float64, geo Geometry) float64 {
	return geo.TiltForce * math.Sin(angle) * geo.Friction / (1 - geo.Friction)
}
