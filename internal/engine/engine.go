// Package engine implements the rules of the 2048 sliding-tile puzzle:
// shifting and merging tiles, spawning new ones, scoring, and detecting
// won and lost games.
//
// The engine mutates its grid in place and is not safe for concurrent use;
// callers serialize Move and Reset themselves.
package engine

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/logi2048/internal/config"
	"github.com/vovakirdan/logi2048/internal/grid"
)

const (
	// GoalValue is the tile value that wins the game.
	GoalValue = 2048
	// InitialTiles is the number of tiles spawned by Reset.
	InitialTiles = 2
	// ChanceOfTwo is the probability that a spawned tile is a 2 rather than a 4.
	ChanceOfTwo = 0.75
)

// Random is the source of randomness used for spawning.
// *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// Engine owns a grid and applies the game rules to it.
type Engine struct {
	grid   *grid.Grid
	rng    Random
	logger *log.Logger

	score        int
	goal         int
	initialTiles int
	chanceOfTwo  float64

	lastSpawn *Spawn
}

// Spawn describes a tile placed by the spawn rule.
type Spawn struct {
	Pos   grid.Pos
	Value int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom sets the random source. Tests use it for deterministic spawns.
func WithRandom(rng Random) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithSeed seeds a new math/rand source.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithGoal overrides the winning tile value.
func WithGoal(goal int) Option {
	return func(e *Engine) {
		e.goal = goal
	}
}

// WithInitialTiles overrides how many tiles Reset spawns.
func WithInitialTiles(n int) Option {
	return func(e *Engine) {
		e.initialTiles = n
	}
}

// WithChanceOfTwo overrides the probability of spawning a 2.
func WithChanceOfTwo(p float64) Option {
	return func(e *Engine) {
		e.chanceOfTwo = p
	}
}

// New creates an engine for g and resets it, spawning the initial tiles.
func New(g *grid.Grid, opts ...Option) *Engine {
	e := &Engine{
		grid:         g,
		logger:       log.New(io.Discard),
		goal:         GoalValue,
		initialTiles: InitialTiles,
		chanceOfTwo:  ChanceOfTwo,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.Reset()
	return e
}

// NewFromConfig creates a grid and engine from a loaded configuration.
// A zero seed selects a time-based seed. Later options override the config.
func NewFromConfig(cfg config.Config, opts ...Option) *Engine {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	base := []Option{
		WithSeed(seed),
		WithGoal(cfg.Goal),
		WithInitialTiles(cfg.InitialTiles),
		WithChanceOfTwo(cfg.ChanceOfTwo),
	}
	return New(grid.New(cfg.Size), append(base, opts...)...)
}

// Grid returns the grid the engine plays on. Callers read it after a move;
// writing to it bypasses the rules.
func (e *Engine) Grid() *grid.Grid {
	return e.grid
}

// Score returns the running score of the current game.
func (e *Engine) Score() int {
	return e.score
}

// Goal returns the winning tile value.
func (e *Engine) Goal() int {
	return e.goal
}

// LastSpawn returns the tile spawned by the last move or reset.
// Returns false after a move that changed nothing.
func (e *Engine) LastSpawn() (Spawn, bool) {
	if e.lastSpawn == nil {
		return Spawn{}, false
	}
	return *e.lastSpawn, true
}

// Reset clears the grid and score and spawns the initial tiles.
func (e *Engine) Reset() {
	e.grid.Reset()
	e.score = 0
	e.lastSpawn = nil

	for range e.initialTiles {
		e.addNewTile()
	}

	e.logger.Debug("game reset", "size", e.grid.Size(), "tiles", e.initialTiles)
}

// Changed returns true if the last move slid or merged at least one tile.
// Renderers use it to decide whether a redraw is needed.
func (e *Engine) Changed() bool {
	for _, t := range e.grid.Tiles() {
		if t.Moved() || t.Merged() {
			return true
		}
	}
	return false
}

// GameWon returns true when the highest tile equals the goal.
func (e *Engine) GameWon() bool {
	return e.grid.HighestValue() == e.goal
}

// GameLost returns true when the grid is full and no merge is possible.
func (e *Engine) GameLost() bool {
	return !e.grid.HasPositionsAvailable() && !e.movesAvailable()
}

// movesAvailable scans forward along each tile's column and row and stops at
// the first non-empty neighbour; a neighbour of equal value means a merge exists.
func (e *Engine) movesAvailable() bool {
	size := e.grid.Size()
	for _, t := range e.grid.Tiles() {
		for row := t.Row() + 1; row < size; row++ {
			next := e.grid.At(row, t.Column())
			if next.Value == t.Value {
				return true
			}
			if !next.Empty() {
				break
			}
		}

		for col := t.Column() + 1; col < size; col++ {
			next := e.grid.At(t.Row(), col)
			if next.Value == t.Value {
				return true
			}
			if !next.Empty() {
				break
			}
		}
	}
	return false
}

// addNewTile places a 2 or a 4 on a uniformly chosen empty tile.
func (e *Engine) addNewTile() {
	empty := e.grid.AvailablePositions()
	if len(empty) == 0 {
		return
	}

	tile := empty[e.rng.Intn(len(empty))]

	value := 4
	if e.rng.Float64() < e.chanceOfTwo {
		value = 2
	}

	tile.Value = value
	e.lastSpawn = &Spawn{Pos: tile.Pos(), Value: value}

	e.logger.Debug("tile spawned", "row", tile.Row(), "col", tile.Column(), "value", value)
}
