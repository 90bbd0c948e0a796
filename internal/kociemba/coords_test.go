package kociemba

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolvedCubeCoordinatesAreZero(t *testing.T) {
	c := SolvedCube()
	assert.True(t, c.IsSolved())
	assert.True(t, c.Coset.InSubset())
	assert.Zero(t, c.Subset.Index())
}

func TestCubeTwistedMatchesCubieModel(t *testing.T) {
	scramble := []Twist{L1, U2, F3, R1, D2, B3}
	c := SolvedCube().TwistedBy(scramble)

	corners := SolvedCorners().TwistedBy(scramble)
	edges := SolvedEdges().TwistedBy(scramble)

	assert.Equal(t, corners.PrmIndex(), c.Subset.CPrm)
	assert.Equal(t, corners.OriIndex(), c.Coset.COri)
	assert.Equal(t, edges.OriIndex(), c.Coset.EOri)
	assert.Equal(t, edges.SliceLocIndex(), c.Coset.ESliceLoc)
	assert.Equal(t, edges.SlicePrmIndex(), c.Subset.ESlicePrm)
	assert.Equal(t, edges.NonSlicePrmIndex(), c.Subset.ENonSlicePrm)
}

func TestCubeInverseScrambleReturnsSolved(t *testing.T) {
	scramble := []Twist{L1, U2, F3, R3, D1}
	c := SolvedCube().TwistedBy(scramble)
	for i := len(scramble) - 1; i >= 0; i-- {
		c = c.Twisted(Inverse(scramble[i]))
	}
	assert.True(t, c.IsSolved())
}

func TestSubsetCubeIndexRoundTrip(t *testing.T) {
	s := SolvedSubsetCube()
	got := FromSubsetCubeIndex(s.Index())
	assert.Equal(t, s, got)
}

func TestCosetCubeIndexRoundTrip(t *testing.T) {
	c := SolvedCosetCube()
	got := FromCosetCubeIndex(c.Index())
	assert.Equal(t, c, got)
}
