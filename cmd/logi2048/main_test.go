package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/logi2048/internal/engine"
)

// execute runs the root command with an isolated HOME and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []engine.Direction
		wantErr bool
	}{
		{
			name: "names",
			args: []string{"left", "UP", "right", "down"},
			want: []engine.Direction{engine.DirLeft, engine.DirUp, engine.DirRight, engine.DirDown},
		},
		{
			name: "packed letters",
			args: []string{"lurd"},
			want: []engine.Direction{engine.DirLeft, engine.DirUp, engine.DirRight, engine.DirDown},
		},
		{
			name: "mixed",
			args: []string{"up", "ll"},
			want: []engine.Direction{engine.DirUp, engine.DirLeft, engine.DirLeft},
		},
		{
			name:    "unknown name",
			args:    []string{"left", "north"},
			wantErr: true,
		},
		{
			name:    "empty argument",
			args:    []string{""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMoves(tt.args)
			if tt.wantErr {
				if !errors.Is(err, engine.ErrInvalidDirection) {
					t.Errorf("parseMoves(%v) error = %v, want ErrInvalidDirection", tt.args, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseMoves(%v) failed: %v", tt.args, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseMoves(%v) = %v, want %v", tt.args, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseMoves(%v)[%d] = %v, want %v", tt.args, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSimCommand(t *testing.T) {
	out, err := execute(t, "sim", "--seed", "42", "left", "up")
	if err != nil {
		t.Fatalf("sim failed: %v", err)
	}

	for _, want := range []string{"Seed:   42", "Moves:  2/2", "Score:", "State:  playing"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSimIsReproducible(t *testing.T) {
	first, err := execute(t, "sim", "--seed", "7", "lurdlurd")
	if err != nil {
		t.Fatalf("sim failed: %v", err)
	}
	second, err := execute(t, "sim", "--seed", "7", "lurdlurd")
	if err != nil {
		t.Fatalf("sim failed: %v", err)
	}
	if first != second {
		t.Errorf("same seed gave different output:\n%s\nvs\n%s", first, second)
	}
}

func TestSimTrace(t *testing.T) {
	out, err := execute(t, "sim", "--seed", "3", "--trace", "l", "r")
	if err != nil {
		t.Fatalf("sim failed: %v", err)
	}
	for _, want := range []string{"start", "move 1: left", "move 2: right", "+"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}
}

func TestSimRejectsUnknownMove(t *testing.T) {
	_, err := execute(t, "sim", "left", "sideways")
	if !errors.Is(err, engine.ErrInvalidDirection) {
		t.Errorf("sim error = %v, want ErrInvalidDirection", err)
	}
}

func TestSimUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte("size: 3\nseed: 11\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "sim", "--config", path, "up")
	if err != nil {
		t.Fatalf("sim failed: %v", err)
	}
	if !strings.Contains(out, "Seed:   11") {
		t.Errorf("output should use the seed from the config file:\n%s", out)
	}

	// Three grid rows before the blank line
	grid := strings.SplitN(out, "\n\n", 2)[0]
	if rows := strings.Count(grid, "\n") + 1; rows != 3 {
		t.Errorf("printed %d grid rows, want 3:\n%s", rows, grid)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--seed", "5")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	for _, want := range []string{"size: 4", "goal: 2048", "initial_tiles: 2", "chance_of_two: 0.75", "seed: 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := execute(t, "config", "--log-level", "loud"); err == nil {
		t.Error("unknown log level should fail")
	}
}
