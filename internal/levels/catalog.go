// Package levels holds the static per-level parameters of the game.
package levels

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultYAML []byte

// MinHoles is the smallest hole count a level may declare.
const MinHoles = 3

type Config struct {
	Holes       int     `yaml:"holes"`
	Speed       float64 `yaml:"speed"`
	TargetIndex int     `yaml:"target"`
}

// Catalog maps 1-based level numbers to their Config.
type Catalog struct {
	levels []Config
}

type file struct {
	Levels []Config `yaml:"levels"`
}

// Default returns the built-in 18 level catalog.
func Default() Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		// levels.yaml ships with the binary; a parse failure is a build defect.
		panic(fmt.Sprintf("levels: embedded catalog: %v", err))
	}
	return c
}

func Parse(data []byte) (Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse level catalog: %w", err)
	}
	c := New(f.Levels)
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func New(cfgs []Config) Catalog {
	return Catalog{levels: append([]Config(nil), cfgs...)}
}

func (c Catalog) Len() int { return len(c.levels) }

// Level looks up a 1-based level. Past the last level it returns an
// InvalidLevelError, which callers treat as "the player has won".
func (c Catalog) Level(n int) (Config, error) {
	if n < 1 || n > len(c.levels) {
		return Config{}, &InvalidLevelError{Level: n, Count: len(c.levels)}
	}
	return c.levels[n-1], nil
}

func (c Catalog) Validate() error {
	if len(c.levels) == 0 {
		return errors.New("level catalog is empty")
	}
	for i, l := range c.levels {
		n := i + 1
		if l.Holes < MinHoles {
			return fmt.Errorf("level %d: holes must be >= %d (got %d)", n, MinHoles, l.Holes)
		}
		if l.Speed <= 0 {
			return fmt.Errorf("level %d: speed must be > 0 (got %v)", n, l.Speed)
		}
		if l.TargetIndex < 0 || l.TargetIndex >= l.Holes {
			return fmt.Errorf("level %d: target index %d outside [0, %d)", n, l.TargetIndex, l.Holes)
		}
	}
	return nil
}
