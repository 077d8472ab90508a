package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/logi2048/internal/engine"
	"github.com/vovakirdan/logi2048/internal/grid"
)

var flagTrace bool

func newSimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sim <moves...>",
		Short: "Apply scripted moves to a fresh game",
		Long: `Reset a game and apply the given moves in order, then print the grid,
score, and state.

Moves are direction names (up, down, left, right) or their first letters.
Letters may be packed into one argument: "lurd" is left, up, right, down.
Any unknown move is rejected before the game starts.

Grid markers (with --trace):
  *  tile was merged into this move
  >  tile slid here this move
  +  tile spawned this move

Examples:
  logi2048 sim left left up
  logi2048 sim lldr --seed 7
  logi2048 sim uuddlrlr --trace`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSim,
	}

	cmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the grid after every move")
	return cmd
}

func runSim(cmd *cobra.Command, args []string) error {
	moves, err := parseMoves(args)
	if err != nil {
		return err
	}

	// Pin the seed so the run can be replayed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	e := engine.NewFromConfig(cfg, engine.WithLogger(logger))
	out := cmd.OutOrStdout()

	if flagTrace {
		fmt.Fprintln(out, "start")
		printGrid(out, e)
	}

	applied := 0
	for i, dir := range moves {
		if e.GameLost() {
			logger.Info("game lost, skipping remaining moves", "remaining", len(moves)-i)
			break
		}
		if err := e.Move(dir); err != nil {
			return err
		}
		applied++

		if flagTrace {
			fmt.Fprintf(out, "\nmove %d: %s (score %d)\n", i+1, dir, e.Score())
			printGrid(out, e)
		}
	}

	snap := e.Snapshot()
	if flagTrace {
		fmt.Fprintln(out)
	} else {
		printGrid(out, e)
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Seed:   %d\n", cfg.Seed)
	fmt.Fprintf(out, "Moves:  %d/%d\n", applied, len(moves))
	fmt.Fprintf(out, "Score:  %d\n", snap.Score)
	fmt.Fprintf(out, "Max:    %d\n", snap.MaxTile)
	fmt.Fprintf(out, "State:  %s\n", snap.State)
	return nil
}

// parseMoves accepts direction names or packed first letters.
func parseMoves(args []string) ([]engine.Direction, error) {
	var moves []engine.Direction
	for _, arg := range args {
		if dir, err := engine.ParseDirection(arg); err == nil {
			moves = append(moves, dir)
			continue
		}

		packed := make([]engine.Direction, 0, len(arg))
		for _, r := range arg {
			dir, err := engine.ParseDirection(string(r))
			if err != nil {
				return nil, fmt.Errorf("move %q: %w", arg, err)
			}
			packed = append(packed, dir)
		}
		if len(packed) == 0 {
			return nil, fmt.Errorf("move %q: %w", arg, engine.ErrInvalidDirection)
		}
		moves = append(moves, packed...)
	}
	return moves, nil
}

// printGrid writes one row per line, right-aligned, with per-tile markers.
func printGrid(w io.Writer, e *engine.Engine) {
	snap := e.Snapshot()

	width := len(strconv.Itoa(snap.MaxTile))
	if width < 4 {
		width = 4
	}

	for _, row := range snap.Tiles {
		var b strings.Builder
		for _, t := range row {
			cell := "."
			if t.Value != 0 {
				cell = strconv.Itoa(t.Value)
			}
			fmt.Fprintf(&b, "%*s%c", width, cell, marker(t, snap.LastSpawn))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

func marker(t engine.TileState, spawn *engine.Spawn) rune {
	switch {
	case spawn != nil && spawn.Pos == (grid.Pos{Row: t.Row, Column: t.Column}):
		return '+'
	case t.Merged:
		return '*'
	case t.Moved:
		return '>'
	default:
		return ' '
	}
}
