package cube

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ehrlich-b/cube/internal/kociemba"
)

// SolverResult represents the result of a solve attempt
type SolverResult struct {
	Solution []Move
	Steps    int
	Duration time.Duration
}

// Solver interface for different solving algorithms
type Solver interface {
	Solve(cube *Cube) (*SolverResult, error)
	Name() string
}

// defaultKociembaConfigPath is the config file KociembaSolver hands to
// LoadTables, relative to the process's working directory. The pruning
// tables it names are persisted between runs; the move tables are
// rebuilt in memory on first use in each process.
const defaultKociembaConfigPath = "kociemba.conf"

// kociembaMoveBudget bounds how many twists TwoPhaseSolver.Solve will
// search for. Every reachable cube solves well within this in phase-1 +
// phase-2 moves combined; spec.md's own worst-case examples top out
// in the high teens.
const kociembaMoveBudget = 30

var (
	kociembaEngineOnce sync.Once
	kociembaTwister    *kociemba.Twister
	kociembaTables     *kociemba.Tables
	kociembaEngineErr  error
)

// kociembaEngine lazily builds the move tables and loads (or builds and
// persists) the pruning tables. Every KociembaSolver shares the one
// instance: the tables are read-only once built and expensive enough
// that building them per Solve call would be unusable.
func kociembaEngine() (*kociemba.Twister, *kociemba.Tables, error) {
	kociembaEngineOnce.Do(func() {
		ctx := context.Background()
		kociembaTwister, kociembaEngineErr = kociemba.BuildTwister(ctx)
		if kociembaEngineErr != nil {
			return
		}
		kociembaTables, kociembaEngineErr = kociemba.LoadTables(ctx, defaultKociembaConfigPath, kociembaTwister)
	})
	return kociembaTwister, kociembaTables, kociembaEngineErr
}

// twistFace returns the face a twist acts on.
func twistFace(t kociemba.Twist) Face {
	switch t / 3 {
	case 0:
		return Left
	case 1:
		return Right
	case 2:
		return Up
	case 3:
		return Down
	case 4:
		return Front
	default:
		return Back
	}
}

// twistToMove converts a single kociemba.Twist into this package's Move
// representation. Twist suffix 1 is a clockwise quarter turn, 2 a half
// turn, 3 a counter-clockwise quarter turn.
func twistToMove(t kociemba.Twist) Move {
	face := twistFace(t)
	switch t % 3 {
	case 0:
		return Move{Face: face, Clockwise: true}
	case 1:
		return Move{Face: face, Clockwise: true, Double: true}
	default:
		return Move{Face: face, Clockwise: false}
	}
}

// KociembaSolver implements Kociemba's two-phase algorithm
type KociembaSolver struct{}

func (s *KociembaSolver) Name() string {
	return "Kociemba"
}

func (s *KociembaSolver) Solve(cube *Cube) (*SolverResult, error) {
	if cube.Size != 3 {
		return nil, fmt.Errorf("Kociemba algorithm only supports 3x3x3 cubes")
	}

	start := time.Now()

	tw, tables, err := kociembaEngine()
	if err != nil {
		return nil, fmt.Errorf("cube: building kociemba engine: %w", err)
	}

	kc, err := cube.ToKociemba()
	if err != nil {
		return nil, fmt.Errorf("cube: reading cube state: %w", err)
	}

	twists, err := kociemba.NewTwoPhaseSolver(tw, tables).Solve(kc, kociembaMoveBudget)
	if err != nil {
		return nil, fmt.Errorf("cube: kociemba solve: %w", err)
	}

	solution := make([]Move, len(twists))
	for i, t := range twists {
		solution[i] = twistToMove(t)
	}

	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// GetSolver returns a solver by name
func GetSolver(name string) (Solver, error) {
	switch name {
	case "kociemba":
		return &KociembaSolver{}, nil
	default:
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
}