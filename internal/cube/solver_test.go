package cube

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/kociemba"
)

func TestGetSolver(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		wantName  string
		wantErr   bool
	}{
		{"Kociemba solver", "kociemba", "Kociemba", false},
		{"Invalid solver", "invalid", "", true},
		{"Empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver, err := GetSolver(tt.algorithm)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetSolver(%q) error = %v, wantErr %v", tt.algorithm, err, tt.wantErr)
				return
			}
			if !tt.wantErr && solver.Name() != tt.wantName {
				t.Errorf("GetSolver(%q).Name() = %q, want %q", tt.algorithm, solver.Name(), tt.wantName)
			}
		})
	}
}

func TestKociembaSolverOnSolvedCube(t *testing.T) {
	solver := &KociembaSolver{}
	result, err := solver.Solve(NewCube(3))
	if err != nil {
		t.Fatalf("KociembaSolver.Solve() error = %v", err)
	}
	if len(result.Solution) != 0 {
		t.Errorf("solved cube should need 0 moves, got %d", len(result.Solution))
	}
}

func TestKociembaSolverOnScrambledCube(t *testing.T) {
	c := NewCube(3)
	c.ApplyKociemba(kociemba.SolvedCube().Twisted(kociemba.R1).Twisted(kociemba.U1).
		Twisted(kociemba.Inverse(kociemba.R1)).Twisted(kociemba.Inverse(kociemba.U1)))

	solver := &KociembaSolver{}
	result, err := solver.Solve(c)
	if err != nil {
		t.Fatalf("KociembaSolver.Solve() error = %v", err)
	}
	if len(result.Solution) == 0 {
		t.Error("scrambled cube should need at least one move")
	}
	if result.Steps != len(result.Solution) {
		t.Errorf("Steps (%d) should equal len(Solution) (%d)", result.Steps, len(result.Solution))
	}
	if result.Duration < 0 {
		t.Error("Duration should not be negative")
	}

	for _, m := range result.Solution {
		applySolutionMove(c, m)
	}
	if !c.IsSolved() {
		t.Error("applying the reported solution to the scrambled cube did not solve it")
	}
}

func TestKociembaSolver4x4Rejection(t *testing.T) {
	solver := &KociembaSolver{}
	if _, err := solver.Solve(NewCube(4)); err == nil {
		t.Error("KociembaSolver should reject 4x4x4 cubes")
	}
}

// applySolutionMove is test-only scaffolding: it turns a Move the solver
// reported back into the kociemba twist it came from and applies it via
// the bridge, so the test can confirm the reported solution is internally
// consistent without reimplementing a sticker-level move engine.
func applySolutionMove(c *Cube, m Move) {
	var face int
	switch m.Face {
	case Left:
		face = 0
	case Right:
		face = 1
	case Up:
		face = 2
	case Down:
		face = 3
	case Front:
		face = 4
	case Back:
		face = 5
	}
	suffix := 0
	switch {
	case m.Double:
		suffix = 1
	case !m.Clockwise:
		suffix = 2
	}
	t := kociemba.Twist(face*3 + suffix)

	kc, err := c.ToKociemba()
	if err != nil {
		panic(err)
	}
	c.ApplyKociemba(kc.Twisted(t))
}
