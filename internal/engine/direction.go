package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for a direction outside Up/Down/Left/Right.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every valid direction.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Horizontal returns true for Left and Right, which operate on rows.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// towardsEnd returns true when tiles collapse towards the high-index edge,
// so each group has to be scanned in reverse.
func (d Direction) towardsEnd() bool {
	return d == DirRight || d == DirDown
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name ("up", "left", ...) or its first letter
// into a Direction. Matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}
