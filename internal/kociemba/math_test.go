package kociemba

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	assert.Equal(t, uint64(1), Factorial(0))
	assert.Equal(t, uint64(1), Factorial(1))
	assert.Equal(t, uint64(2), Factorial(2))
	assert.Equal(t, uint64(40320), Factorial(8))
	assert.Equal(t, uint64(479001600), Factorial(12))
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, 1, Binomial(0, 0))
	assert.Equal(t, 12, Binomial(12, 1))
	assert.Equal(t, 495, Binomial(12, 4))
	assert.Equal(t, 0, Binomial(3, 5))
	assert.Equal(t, 0, Binomial(3, -1))
	// Symmetry must hold past the precomputed Pascal range too.
	assert.Equal(t, Binomial(20, 6), Binomial(20, 14))
}

func TestCombinationIndexRoundTrip(t *testing.T) {
	const n, k = 12, 4
	total := Binomial(n, k)
	seen := make(map[int]bool, total)
	for idx := 0; idx < total; idx++ {
		combo := NthCombination(n, k, idx)
		require.Len(t, combo, k)
		got := CombinationIndex(n, combo)
		assert.Equal(t, idx, got, "combo %v round-tripped to %d, want %d", combo, got, idx)
		seen[got] = true
	}
	assert.Len(t, seen, total, "every index in [0,C(n,k)) must be produced exactly once")
}

func TestPermutationIndexRoundTrip(t *testing.T) {
	const size = 8
	total := int(Factorial(size))
	seen := make(map[int]bool, total)
	for idx := 0; idx < total; idx++ {
		perm := NthPermutation(idx, size)
		require.Len(t, perm, size)
		got := PermutationIndex(perm)
		assert.Equal(t, idx, got)
		seen[got] = true
	}
	assert.Len(t, seen, total)
}

func TestIsEvenPermutationArrayMatchesIndexParity(t *testing.T) {
	const size = 7
	for idx := 0; idx < int(Factorial(size)); idx++ {
		perm := NthPermutation(idx, size)
		assert.Equal(t, IsEvenPermutationArray(perm), IsEvenPermutationFromIndex(idx),
			"permutation %v (index %d) parity mismatch", perm, idx)
	}
}

func TestIsEvenPermutationIdentityIsEven(t *testing.T) {
	assert.True(t, IsEvenPermutationFromIndex(0))
	assert.True(t, IsEvenPermutationArray([]byte{0, 1, 2, 3}))
	assert.False(t, IsEvenPermutationArray([]byte{1, 0, 2, 3}))
}
