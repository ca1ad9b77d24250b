package game

import "math"

// Geometry holds the constant playfield and physics parameters of a session.
// Coordinates are screen-style: x grows right, y grows down, so a "higher"
// bar end has a smaller height value.
type Geometry struct {
	Width  float64
	Height float64

	BarCenterX   float64
	BarSpan      float64
	BarThickness float64
	BarSpeed     float64
	BarMin       float64
	BarMax       float64
	BarStart     float64

	BallRadius float64
	HoleRadius float64

	// HoleSafeGap keeps generated holes this far above the bar's starting height.
	HoleSafeGap float64

	Gravity   float64
	Friction  float64
	TiltForce float64
	MaxTilt   float64 // radians
}

func DefaultGeometry() Geometry {
	return Geometry{
		Width:  800,
		Height: 600,

		BarCenterX:   400,
		BarSpan:      400,
		BarThickness: 8,
		BarSpeed:     3,
		BarMin:       100,
		BarMax:       500,
		BarStart:     450,

		BallRadius: 12,
		HoleRadius: 18,

		HoleSafeGap: 60,

		Gravity:   0.35,
		Friction:  0.97,
		TiltForce: 0.35,
		MaxTilt:   math.Pi / 6,
	}
}

// BarLeftX and BarRightX are the horizontal extent of the bar.
func (g Geometry) BarLeftX() float64 { return g.BarCenterX - g.BarSpan/2 }
func (g Geometry) BarRightX() float64 { return g.BarCenterX + g.BarSpan/2 }

func (g Geometry) Validate() error {
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return invariantf("geometry", "playfield must be non-empty (got %vx%v)", g.Width, g.Height)
	case g.BarSpan <= 0:
		return invariantf("geometry", "bar span must be > 0 (got %v)", g.BarSpan)
	case g.BarLeftX() < 0 || g.BarRightX() > g.Width:
		return invariantf("geometry", "bar span [%v, %v] does not fit playfield width %v", g.BarLeftX(), g.BarRightX(), g.Width)
	case g.BarMin >= g.BarMax:
		return invariantf("geometry", "bar min height %v must be < max height %v", g.BarMin, g.BarMax)
	case g.BarStart < g.BarMin || g.BarStart > g.BarMax:
		return invariantf("geometry", "bar start height %v outside [%v, %v]", g.BarStart, g.BarMin, g.BarMax)
	case g.BallRadius <= 0 || g.HoleRadius <= 0:
		return invariantf("geometry", "ball and hole radius must be > 0")
	case g.Friction <= 0 || g.Friction >= 1:
		return invariantf("geometry", "friction must be in (0, 1) (got %v)", g.Friction)
	case g.MaxTilt <= 0 || g.MaxTilt >= math.Pi/2:
		return invariantf("geometry", "max tilt must be in (0, pi/2) (got %v)", g.MaxTilt)
	case g.BarSpeed <= 0:
		return invariantf("geometry", "bar speed must be > 0 (got %v)", g.BarSpeed)
	}
	if b := SafeBand(g); b.MinX >= b.MaxX || b.MinY >= b.MaxY {
		return invariantf("geometry", "no room for holes: safe band x [%v, %v] y [%v, %v]", b.MinX, b.MaxX, b.MinY, b.MaxY)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
