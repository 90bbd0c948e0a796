package kociemba

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseIsInvolutionExceptNone(t *testing.T) {
	for t2 := Twist(0); t2 < TwistNone; t2++ {
		inv := Inverse(t2)
		require.NotEqual(t, TwistNone, inv)
		assert.Equal(t, t2, Inverse(inv), "Inverse(Inverse(%s)) must be %s", t2, t2)
	}
}

func TestInverseHalfTurnsAreSelfInverse(t *testing.T) {
	for _, half := range []Twist{L2, R2, U2, D2, F2, B2} {
		assert.Equal(t, half, Inverse(half))
	}
}

func TestInverseQuarterTurnsSwap(t *testing.T) {
	assert.Equal(t, L3, Inverse(L1))
	assert.Equal(t, L1, Inverse(L3))
	assert.Equal(t, U3, Inverse(U1))
}

func TestFaceOfGroupsThreeTwistsPerFace(t *testing.T) {
	faces := [][]Twist{
		{L1, L2, L3}, {R1, R2, R3}, {U1, U2, U3},
		{D1, D2, D3}, {F1, F2, F3}, {B1, B2, B3},
	}
	for _, face := range faces {
		want := EmptyTwistSet()
		for _, t2 := range face {
			want = want.Set(t2)
		}
		for _, t2 := range face {
			assert.Equal(t, want, FaceOf(t2), "FaceOf(%s)", t2)
		}
	}
	assert.True(t, FaceOf(TwistNone).IsEmpty())
}

func TestH0IsSubsetOfAll(t *testing.T) {
	assert.Equal(t, H0(), H0().KeepOnly(AllTwists()))
	assert.Equal(t, 10, H0().Count())
	assert.Equal(t, 18, AllTwists().Count())
}

func TestParseTwistRoundTrip(t *testing.T) {
	for t2 := Twist(0); t2 <= TwistNone; t2++ {
		parsed, err := ParseTwist(t2.String())
		require.NoError(t, err)
		assert.Equal(t, t2, parsed)
	}
	_, err := ParseTwist("Q7")
	assert.Error(t, err)
}

func TestParseTwistsSequence(t *testing.T) {
	twists, err := ParseTwists("L1 R2 U3")
	require.NoError(t, err)
	assert.Equal(t, []Twist{L1, R2, U3}, twists)
}

func TestTwistSetIterateMatchesSlice(t *testing.T) {
	props := gopter.NewProperties(nil)
	props.Property("Iterate visits exactly the set bits, ascending", prop.ForAll(
		func(bits uint32) bool {
			s := TwistSet(bits) & FullAndNone()
			var fromIterate []Twist
			s.Iterate(func(t2 Twist) bool {
				fromIterate = append(fromIterate, t2)
				return true
			})
			fromSlice := s.Slice()
			if len(fromIterate) != len(fromSlice) {
				return false
			}
			for i := range fromIterate {
				if fromIterate[i] != fromSlice[i] {
					return false
				}
				if i > 0 && fromIterate[i] <= fromIterate[i-1] {
					return false
				}
			}
			return len(fromIterate) == s.Count()
		},
		gen.UInt32(),
	))
	props.TestingRun(t)
}
