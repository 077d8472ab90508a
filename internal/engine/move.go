package engine

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/logi2048/internal/grid"
)

// Move slides every tile towards dir, merging equal neighbours once per move.
// A new tile is spawned only if something slid or merged. The only error is
// ErrInvalidDirection, in which case the grid is left untouched.
func (e *Engine) Move(dir Direction) error {
	if !dir.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}

	e.grid.ClearMoveData()
	e.lastSpawn = nil

	groups := e.grid.Columns()
	if dir.Horizontal() {
		groups = e.grid.Rows()
	}

	for _, group := range groups {
		// Tiles closest to the target edge claim their slots first
		if dir.towardsEnd() {
			slices.Reverse(group)
		}
		moveGroup(group)
	}

	moved, merged, gained := 0, 0, 0
	for _, t := range e.grid.Tiles() {
		switch {
		case t.Merged():
			merged++
			gained += t.Value
		case t.Moved():
			moved++
		}
	}

	if moved == 0 && merged == 0 {
		e.logger.Debug("move changed nothing", "dir", dir)
		return nil
	}

	e.addNewTile()
	e.score += gained

	e.logger.Debug("move applied",
		"dir", dir,
		"moved", moved,
		"merged", merged,
		"gained", gained,
		"score", e.score,
	)
	return nil
}

// moveGroup collapses one row or column, already ordered so that index 0 is
// the edge the tiles move towards.
func moveGroup(group []*grid.Tile) {
	history := make([]*grid.Tile, 0, len(group))

	for _, t := range group {
		if !t.Empty() {
			if dst := furthestAvailable(history, t.Value); dst != nil {
				t.MoveTo(dst)
			}
		}
		history = append(history, t)
	}
}

// furthestAvailable walks the history from the most recent tile back towards
// the edge. It returns an unmerged tile of equal value if one is reached
// before any other value, otherwise the last empty tile seen (possibly nil).
func furthestAvailable(history []*grid.Tile, value int) *grid.Tile {
	var found *grid.Tile

	for i := len(history) - 1; i >= 0; i-- {
		t := history[i]
		switch {
		case t.Empty():
			found = t
		case t.Value == value && !t.Merged():
			return t
		default:
			return found
		}
	}

	return found
}
