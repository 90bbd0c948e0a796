package kociemba

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolvedEdgesIsSolved(t *testing.T) {
	assert.True(t, SolvedEdges().IsSolved())
}

func TestEdgesIndexRoundTrip(t *testing.T) {
	e := SolvedEdges().Twisted(L1).Twisted(U2).Twisted(F3)
	got := FromEdgesIndex(e.SlicePrmIndex(), e.NonSlicePrmIndex(), e.SliceLocIndex(), e.OriIndex())
	assert.Equal(t, e, got)
}

func TestEdgesQuarterTurnHasOrderFour(t *testing.T) {
	for _, q := range []Twist{L1, R1, U1, D1, F1, B1} {
		e := SolvedEdges()
		for i := 0; i < 4; i++ {
			e = e.Twisted(q)
		}
		assert.True(t, e.IsSolved(), "applying %s four times must return to solved", q)
	}
}

func TestEdgesHalfTurnHasOrderTwo(t *testing.T) {
	for _, h := range []Twist{L2, R2, U2, D2, F2, B2} {
		e := SolvedEdges().Twisted(h).Twisted(h)
		assert.True(t, e.IsSolved(), "applying %s twice must return to solved", h)
	}
}

func TestEdgesInverseUndoes(t *testing.T) {
	for q := Twist(0); q < TwistNone; q++ {
		e := SolvedEdges().Twisted(q).Twisted(Inverse(q))
		assert.True(t, e.IsSolved(), "%s then %s must return to solved", q, Inverse(q))
	}
}

func TestEdgesOnlyLAndRFlipOrientation(t *testing.T) {
	for _, q := range []Twist{U1, D1, F1, B1} {
		e := SolvedEdges().Twisted(q)
		assert.Zero(t, e.OriIndex(), "%s must not flip any edge orientation", q)
	}
	assert.NotZero(t, SolvedEdges().Twisted(L1).OriIndex())
	assert.NotZero(t, SolvedEdges().Twisted(R1).OriIndex())
}

func TestEdgesSliceLocSolvedIsLast(t *testing.T) {
	assert.Equal(t, EdgesSliceLocSize-1, SolvedEdges().SliceLocIndex())
}
