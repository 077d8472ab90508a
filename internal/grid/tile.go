package grid

import (
	"errors"
	"fmt"
)

// ErrIllegalMerge is carried by the panic raised when a tile is moved onto a
// non-empty tile holding a different value.
var ErrIllegalMerge = errors.New("grid: illegal merge")

// Pos identifies a tile by its row and column.
// Row increases downward, Column increases rightward.
type Pos struct {
	Row    int
	Column int
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// Tile is a single cell of the grid.
// Value 0 means empty; otherwise it is a power of two.
type Tile struct {
	row    int
	column int

	Value int

	// Per-move annotations, cleared at the start of every move.
	moved      bool
	movedFrom  *Pos
	merged     bool
	mergedFrom *Pos
}

// Row returns the tile's row index.
func (t *Tile) Row() int { return t.row }

// Column returns the tile's column index.
func (t *Tile) Column() int { return t.column }

// Pos returns the tile's position.
func (t *Tile) Pos() Pos { return Pos{Row: t.row, Column: t.column} }

// Empty returns true if the tile holds no value.
func (t *Tile) Empty() bool { return t.Value == 0 }

// Moved returns true if a tile slid onto this empty tile during the last move.
func (t *Tile) Moved() bool { return t.moved }

// MovedFrom returns the position the tile's value slid from, if Moved.
func (t *Tile) MovedFrom() (Pos, bool) {
	if t.movedFrom == nil {
		return Pos{}, false
	}
	return *t.movedFrom, true
}

// Merged returns true if another tile merged into this one during the last move.
func (t *Tile) Merged() bool { return t.merged }

// MergedFrom returns the position of the tile that merged into this one, if Merged.
func (t *Tile) MergedFrom() (Pos, bool) {
	if t.mergedFrom == nil {
		return Pos{}, false
	}
	return *t.mergedFrom, true
}

// ClearMoveData resets the per-move annotations.
func (t *Tile) ClearMoveData() {
	t.moved = false
	t.movedFrom = nil
	t.merged = false
	t.mergedFrom = nil
}

// MoveTo moves this tile's value onto dst.
// An empty dst is marked moved; an equal-valued dst is marked merged.
// Panics if dst holds a different value.
func (t *Tile) MoveTo(dst *Tile) {
	if !dst.Empty() && dst.Value != t.Value {
		panic(fmt.Errorf("%w: cannot merge %d at %v into %d at %v",
			ErrIllegalMerge, t.Value, t.Pos(), dst.Value, dst.Pos()))
	}

	from := t.Pos()
	if dst.Empty() {
		dst.moved = true
		dst.movedFrom = &from
	} else {
		// merged and moved are exclusive; the merge supersedes an earlier slide
		dst.moved = false
		dst.movedFrom = nil
		dst.merged = true
		dst.mergedFrom = &from
	}

	dst.Value += t.Value
	t.Value = 0
}
