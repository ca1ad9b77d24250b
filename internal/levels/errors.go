package levels

import (
	"errors"
	"fmt"
)

// InvalidLevelError is returned for a level number outside the catalog.
type InvalidLevelError struct {
	Level int
	Count int
}

func (e *InvalidLevelError) Error() string {
	if e == nil {
		return "invalid level"
	}
	return fmt.Sprintf("level %d is outside the catalog (1..%d)", e.Level, e.Count)
}

func IsInvalidLevel(err error) bool {
	var e *InvalidLevelError
	return errors.As(err, &e)
}
