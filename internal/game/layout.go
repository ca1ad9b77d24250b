package game

import (
	"math"
	"math/rand/v2"

	"github.com/fchimpan/ice-cold-beer/internal/levels"
)

// Source yields uniform floats in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type Hole struct {
	X, Y     float64
	Radius   float64
	IsTarget bool
	Active   bool
}

const (
	// Holes stay this far inside the playfield edges.
	holeInset = 20
	// The top of the hole band sits this far above the bar's highest position.
	holeTopReach = 30
	// Keep the bottom of the band clear of the status area.
	holeBottomClear = 100

	clusterMinLevel     = 5
	clusterChance       = 0.3
	clusterSpread       = 60
	safeTargetMaxLevel  = 10
	safeTargetBandStart = 0.2
	safeTargetBandEnd   = 0.8
)

// Band is the rectangle holes may be placed in.
type Band struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func SafeBand(geo Geometry) Band {
	margin := geo.HoleRadius + geo.BallRadius
	minX := geo.BarLeftX() + margin
	maxX := geo.BarRightX() - margin
	minY := geo.BarMin - holeTopReach
	maxY := geo.BarStart - geo.HoleSafeGap

	return Band{
		MinX: math.Max(minX, geo.HoleRadius+holeInset),
		MaxX: math.Min(maxX, geo.Width-geo.HoleRadius-holeInset),
		MinY: math.Max(minY, geo.HoleRadius+holeInset),
		MaxY: math.Min(maxY, geo.Height-holeBottomClear),
	}
}

// GenerateHoles lays out the holes for a level. Holes are produced in index
// order because a clustered hole takes its height from the one before it.
//
// The target is kept in the middle 60% of the band up to level 10 and may sit
// anywhere after that. From level 6 on, each decoy has a 30% chance of landing
// within 30 units of the previous hole's height.
func GenerateHoles(cfg levels.Config, level int, geo Geometry, rng Source) ([]Hole, error) {
	if cfg.Holes < 2 {
		return nil, invariantf("layout", "level %d needs at least 2 holes (got %d)", level, cfg.Holes)
	}
	if cfg.TargetIndex < 0 || cfg.TargetIndex >= cfg.Holes {
		return nil, invariantf("layout", "level %d target index %d outside %d holes", level, cfg.TargetIndex, cfg.Holes)
	}

	band := SafeBand(geo)
	spanY := band.MaxY - band.MinY
	holes := make([]Hole, 0, cfg.Holes)

	for i := 0; i < cfg.Holes; i++ {
		x := band.MinX + (band.MaxX-band.MinX)*float64(i)/float64(cfg.Holes-1)

		var y float64
		switch {
		case i == cfg.TargetIndex && level > safeTargetMaxLevel:
			y = band.MinY + rng.Float64()*spanY
		case i == cfg.TargetIndex:
			lo := band.MinY + spanY*safeTargetBandStart
			hi := band.MinY + spanY*safeTargetBandEnd
			y = lo + rng.Float64()*(hi-lo)
		case level > clusterMinLevel && len(holes) > 0 && rng.Float64() < clusterChance:
			prev := holes[len(holes)-1]
			y = prev.Y + (rng.Float64()-0.5)*clusterSpread
			y = clamp(y, band.MinY, band.MaxY)
		default:
			y = band.MinY + rng.Float64()*spanY
		}

		holes = append(holes, Hole{
			X:        x,
			Y:        y,
			Radius:   geo.HoleRadius,
			IsTarget: i == cfg.TargetIndex,
			Active:   true,
		})
	}
	return holes, nil
}

// TargetHole returns the flagged target in a generated layout.
func TargetHole(holes []Hole) (Hole, bool) {
	for _, h := range holes {
		if h.IsTarget {
			return h, true
		}
	}
	return Hole{}, false
}
