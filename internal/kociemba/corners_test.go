package kociemba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolvedCornersIsSolved(t *testing.T) {
	assert.True(t, SolvedCorners().IsSolved())
	assert.Equal(t, 0, SolvedCorners().Index())
}

func TestCornersIndexRoundTrip(t *testing.T) {
	c := SolvedCorners().Twisted(L1).Twisted(U2).Twisted(F3)
	idx := c.Index()
	got := FromCombinedIndex(idx)
	assert.Equal(t, c, got)
}

func TestCornersQuarterTurnHasOrderFour(t *testing.T) {
	for _, q := range []Twist{L1, R1, U1, D1, F1, B1} {
		c := SolvedCorners()
		for i := 0; i < 4; i++ {
			c = c.Twisted(q)
		}
		assert.True(t, c.IsSolved(), "applying %s four times must return to solved", q)
	}
}

func TestCornersHalfTurnHasOrderTwo(t *testing.T) {
	for _, h := range []Twist{L2, R2, U2, D2, F2, B2} {
		c := SolvedCorners().Twisted(h).Twisted(h)
		assert.True(t, c.IsSolved(), "applying %s twice must return to solved", h)
	}
}

func TestCornersInverseUndoes(t *testing.T) {
	for q := Twist(0); q < TwistNone; q++ {
		c := SolvedCorners().Twisted(q).Twisted(Inverse(q))
		assert.True(t, c.IsSolved(), "%s then %s must return to solved", q, Inverse(q))
	}
}

func TestCornersTwistNoneIsIdentity(t *testing.T) {
	c := SolvedCorners().Twisted(L1).Twisted(U3)
	assert.Equal(t, c, c.Twisted(TwistNone))
}

func TestCornersOppositeFacesCommute(t *testing.T) {
	a := SolvedCorners().Twisted(L1).Twisted(R1)
	b := SolvedCorners().Twisted(R1).Twisted(L1)
	assert.Equal(t, a, b, "L and R act on disjoint corners and must commute")
}

func TestCornersU1Cycle(t *testing.T) {
	// A single U turn must permute corners without touching the
	// orientation of any piece it moves (U only cycles the top layer
	// flat, it never tilts a corner).
	c := SolvedCorners().Twisted(U1)
	require.False(t, c.IsSolved())
	for i := 0; i < 8; i++ {
		assert.Zero(t, c.orientation(i), "U1 must not introduce any corner twist")
	}
}
