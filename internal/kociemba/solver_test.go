package kociemba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevantTwistsExcludeSameFace(t *testing.T) {
	s := NewTwoPhaseSolver(nil, &Tables{})
	for p := Twist(0); p < TwistNone; p++ {
		assert.True(t, s.relevantTwists[p].KeepOnly(FaceOf(p)).IsEmpty(),
			"relevantTwists[%s] must exclude every twist on %s's face", p, p)
	}
	assert.Equal(t, AllTwists(), s.relevantTwists[TwistNone],
		"the search root has no previous twist to exclude a face for")
}

// TestSolveEndToEnd builds the real move and pruning tables and runs the
// solver against spec.md's baseline scenarios: an already-solved cube, a
// single twist, and a short scramble. Building the full tables touches
// tens of millions of states (the non-slice edge permutation table alone
// has close to 20 million rows), so this is skipped under `go test
// -short`.
func TestSolveEndToEnd(t *testing.T) {
	tw, tables := requireFullFixtures(t)
	solver := NewTwoPhaseSolver(tw, tables)

	t.Run("already solved", func(t *testing.T) {
		solution, err := solver.Solve(SolvedCube(), 20)
		require.NoError(t, err)
		assert.Empty(t, solution)
	})

	t.Run("single twist", func(t *testing.T) {
		scrambled := SolvedCube().Twisted(R1)
		solution, err := solver.Solve(scrambled, 20)
		require.NoError(t, err)
		require.NotEmpty(t, solution)
		assert.True(t, scrambled.TwistedBy(solution).IsSolved())
	})

	t.Run("short scramble", func(t *testing.T) {
		scramble := []Twist{L1, U2, F3, R1, D2}
		scrambled := SolvedCube().TwistedBy(scramble)
		solution, err := solver.Solve(scrambled, 20)
		require.NoError(t, err)
		assert.True(t, scrambled.TwistedBy(solution).IsSolved())
	})

	t.Run("budget too small reports BudgetExhaustedError", func(t *testing.T) {
		scramble := []Twist{L1, U2, F3, R1, D2, B3, L3, U1}
		scrambled := SolvedCube().TwistedBy(scramble)
		_, err := solver.Solve(scrambled, 1)
		require.Error(t, err)
		var budgetErr *BudgetExhaustedError
		assert.ErrorAs(t, err, &budgetErr)
	})
}
