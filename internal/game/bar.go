package game

import "math"

// Input is the intent vector sampled once per tick.
// Raise moves an end up the screen (toward Geometry.BarMin).
type Input struct {
	RaiseLeft  bool
	LowerLeft  bool
	RaiseRight bool
	LowerRight bool
}

type Bar struct {
	LeftHeight  float64
	RightHeight float64

	geo Geometry
}

func NewBar(geo Geometry) Bar {
	b := Bar{geo: geo}
	b.Reset(geo.BarStart)
	return b
}

func (b *Bar) Reset(h float64) {
	b.LeftHeight = h
	b.RightHeight = h
}

// ApplyInputs moves each end by one fixed step per tick. The step is not
// scaled by elapsed time. When raise and lower are both asserted for the
// same end, raise wins.
func (b *Bar) ApplyInputs(in Input, speedMultiplier float64) {
	step := b.geo.BarSpeed * speedMultiplier
	b.LeftHeight = b.moveEnd(b.LeftHeight, in.RaiseLeft, in.LowerLeft, step)
	b.RightHeight = b.moveEnd(b.RightHeight, in.RaiseRight, in.LowerRight, step)
}

func (b *Bar) moveEnd(h float64, raise, lower bool, step float64) float64 {
	switch {
	case raise && h > b.geo.BarMin:
		return math.Max(b.geo.BarMin, h-step)
	case raise:
		return h
	case lower && h < b.geo.BarMax:
		return math.Min(b.geo.BarMax, h+step)
	}
	return h
}

// Angle is the unclamped tilt; positive when the right end sits lower.
func (b Bar) Angle() float64 {
	return math.Atan2(b.RightHeight-b.LeftHeight, b.geo.BarSpan)
}

func (b Bar) ClampedAngle() float64 {
	return clamp(b.Angle(), -b.geo.MaxTilt, b.geo.MaxTilt)
}

// SurfaceY is the bar's top surface at x, following the clamped angle from
// the left end.
func (b Bar) SurfaceY(x float64) float64 {
	return b.LeftHeight + (x-b.geo.BarLeftX())*math.Tan(b.ClampedAngle())
}

func (b Bar) Span() (left, right float64) {
	return b.geo.BarLeftX(), b.geo.BarRightX()
}
