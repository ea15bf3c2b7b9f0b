package odds

import (
	"errors"
	"fmt"
)

var (
	// ErrSelectionExceedsRollCount matches any *SelectionExceedsRollCountError via errors.Is.
	ErrSelectionExceedsRollCount = errors.New("selection exceeds roll count")
	ErrInvalidRequest            = errors.New("invalid request")
)

// SelectionExceedsRollCountError is returned when more substats are requested
// than the chosen count mode rolls. It is a validation failure, not a zero probability.
type SelectionExceedsRollCountError struct {
	Rolls    int
	Selected int
}

func (e *SelectionExceedsRollCountError) Error() string {
	return fmt.Sprintf("max %d substats allowed, got %d", e.Rolls, e.Selected)
}

func (e *SelectionExceedsRollCountError) Is(target error) bool {
	return target == ErrSelectionExceedsRollCount
}
