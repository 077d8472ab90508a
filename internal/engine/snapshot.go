package engine

import "github.com/vovakirdan/logi2048/internal/grid"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying GameStateType = "playing"
	StateWon     GameStateType = "won"
	StateLost    GameStateType = "lost"
)

// TileState is a read-only copy of one tile after the last move.
type TileState struct {
	Row        int
	Column     int
	Value      int
	Moved      bool
	MovedFrom  *grid.Pos // set when Moved
	Merged     bool
	MergedFrom *grid.Pos // set when Merged
}

// Snapshot captures everything a renderer needs to draw a frame.
type Snapshot struct {
	Size      int
	Score     int
	Goal      int
	MaxTile   int
	State     GameStateType
	Changed   bool   // Any tile moved or merged in the last move
	LastSpawn *Spawn // Tile spawned by the last move or reset
	Tiles     [][]TileState
}

// State returns the current game state. A won game takes precedence over a
// lost one.
func (e *Engine) State() GameStateType {
	switch {
	case e.GameWon():
		return StateWon
	case e.GameLost():
		return StateLost
	default:
		return StatePlaying
	}
}

// Snapshot returns a copy of the game that is safe to hold across moves.
func (e *Engine) Snapshot() Snapshot {
	size := e.grid.Size()
	tiles := make([][]TileState, size)
	for row := range size {
		tiles[row] = make([]TileState, size)
		for col := range size {
			tiles[row][col] = tileState(e.grid.At(row, col))
		}
	}

	var spawn *Spawn
	if s, ok := e.LastSpawn(); ok {
		spawn = &s
	}

	return Snapshot{
		Size:      size,
		Score:     e.score,
		Goal:      e.goal,
		MaxTile:   e.grid.HighestValue(),
		State:     e.State(),
		Changed:   e.Changed(),
		LastSpawn: spawn,
		Tiles:     tiles,
	}
}

func tileState(t *grid.Tile) TileState {
	ts := TileState{
		Row:    t.Row(),
		Column: t.Column(),
		Value:  t.Value,
		Moved:  t.Moved(),
		Merged: t.Merged(),
	}
	if from, ok := t.MovedFrom(); ok {
		ts.MovedFrom = &from
	}
	if from, ok := t.MergedFrom(); ok {
		ts.MergedFrom = &from
	}
	return ts
}
