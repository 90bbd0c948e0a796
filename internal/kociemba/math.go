package kociemba

import "math/bits"

// factorials holds n! for n in [0,20], the largest range that fits in a
// uint64 without overflow.
var factorials = [21]uint64{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800,
	39916800, 479001600, 6227020800, 87178291200, 1307674368000,
	20922789888000, 355687428096000, 6402373705728000,
	121645100408832000, 2432902008176640000,
}

// Factorial returns n! for n in [0,20].
func Factorial(n int) uint64 {
	return factorials[n]
}

// pascal holds binomial(n,k) for n,k < 13.
var pascal = [13][13]uint16{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
	{1, 4, 6, 4, 1},
	{1, 5, 10, 10, 5, 1},
	{1, 6, 15, 20, 15, 6, 1},
	{1, 7, 21, 35, 35, 21, 7, 1},
	{1, 8, 28, 56, 70, 56, 28, 8, 1},
	{1, 9, 36, 84, 126, 126, 84, 36, 9, 1},
	{1, 10, 45, 120, 210, 252, 210, 120, 45, 10, 1},
	{1, 11, 55, 165, 330, 462, 462, 330, 165, 55, 11, 1},
	{1, 12, 66, 220, 495, 792, 924, 792, 495, 220, 66, 12, 1},
}

// Binomial returns n choose k, for any n >= 0.
func Binomial(n, k int) int {
	if k > n || k < 0 {
		return 0
	}
	if n < 13 {
		return int(pascal[n][k])
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// CombinationIndex returns the lexicographic index of an ascending k-subset
// of [0,n) among all such subsets.
func CombinationIndex(n int, combination []int) int {
	index := 0
	j := 0
	k := len(combination)
	for i := 0; i < k; i++ {
		j++
		for j < combination[i]+1 {
			index += Binomial(n-j, k-i-1)
			j++
		}
	}
	return index
}

// NthCombination is the inverse of CombinationIndex: the index-th ascending
// k-subset of [0,n) in lexicographic order.
func NthCombination(n, k, index int) []int {
	if k < 1 || k > n {
		return nil
	}
	combination := make([]int, k)
	size := 0
	for i := 0; i < n; i++ {
		count := Binomial(n-1-i, k-size-1)
		if count > index {
			combination[size] = i
			size++
			if size == k {
				break
			}
		} else {
			index -= count
		}
	}
	return combination
}

// NthPermutation is the inverse of PermutationIndex: the index-th
// permutation of [0,size) in Lehmer-code order.
func NthPermutation(index, size int) []byte {
	var unused uint64 = ^uint64(0)
	perm := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		f := int(Factorial(i))
		pos := index / f
		index %= f
		mask := unused
		for k := 0; k < pos; k++ {
			mask &= mask - 1 // clear lowest set bit
		}
		selected := mask & (^mask + 1) // lowest set bit
		perm[size-1-i] = byte(bits.TrailingZeros64(selected))
		unused ^= selected
	}
	return perm
}

// PermutationIndex returns the Lehmer-code index of a permutation of
// [0,len(permutation)).
func PermutationIndex(permutation []byte) int {
	size := len(permutation)
	index := 0
	var bitboard uint64
	for i := 0; i < size; i++ {
		mask := uint64(1) << permutation[i]
		smaller := int(permutation[i]) - bits.OnesCount64(bitboard&(mask-1))
		bigger := size - i - 1
		index += smaller * int(Factorial(bigger))
		bitboard |= mask
	}
	return index
}

// IsEvenPermutationArray reports whether the given permutation has even
// parity, counted directly via inversions (O(n^2), intended for tests and
// small arrays).
func IsEvenPermutationArray[T int | byte](permutation []T) bool {
	count := 0
	for i := range permutation {
		for j := i + 1; j < len(permutation); j++ {
			if permutation[i] > permutation[j] {
				count++
			}
		}
	}
	return count%2 == 0
}

// IsEvenPermutationFromIndex reports the parity of the lexicographic-index-th
// permutation without materializing it, via the factoradic digit sum.
func IsEvenPermutationFromIndex(index int) bool {
	sum := 0
	i := 2
	for index > 0 {
		sum += index % i
		index /= i
		i++
	}
	return sum%2 == 0
}
