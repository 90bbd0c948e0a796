package kociemba

import "fmt"

// Edges holds the permutation and orientation of the twelve edge cubies.
// Each entry packs a cubie id 0..11 (low nibble) and a binary orientation
// (bit 0x10). Cubies 0-7 are the eight non-slice edges (U/D layer edges);
// cubies 8-11 are the four E-slice edges. That split is what SubsetCube
// and CosetCube index separately, since phase 1 only needs to know which
// four pieces occupy the slice, not their order within it.
type Edges struct {
	s [12]byte
}

const (
	EdgesSlicePrmSize    = 24     // 4!
	EdgesNonSlicePrmSize = 40320  // 8!
	EdgesSliceLocSize    = 495    // C(12,4)
	EdgesOriSize         = 2048   // 2^11
)

// SolvedEdges is the identity edge state.
func SolvedEdges() Edges {
	return Edges{s: [12]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}}
}

func (e Edges) cubie(i int) byte       { return e.s[i] & 0x0F }
func (e Edges) orientation(i int) byte { return (e.s[i] & 0x10) >> 4 }

// Cubie returns the id (0-11) of whatever piece occupies slot i.
func (e Edges) Cubie(i int) byte { return e.cubie(i) }

// Orientation returns the orientation (0-1) of whatever piece occupies
// slot i.
func (e Edges) Orientation(i int) byte { return e.orientation(i) }

// NewEdges builds an Edges state directly from per-slot cubie ids and
// orientations, as supplied by a sticker-to-cubie decoder.
func NewEdges(cubies, orientations [12]byte) Edges {
	var eg Edges
	for i := 0; i < 12; i++ {
		eg.s[i] = (orientations[i] << 4) | cubies[i]
	}
	return eg
}

func (e Edges) IsSolved() bool { return e == SolvedEdges() }

// Twisted returns the edge state after applying a single face turn. Only
// L and R turns flip edge orientation in this cubie numbering; U/D/F/B
// turns permute edges without flipping them.
func (e Edges) Twisted(t Twist) Edges {
	s := e.s
	switch t {
	case L1:
		return Edges{s: oriSwapEdgeL(shuffled12(s, 0, 1, 2, 3, 11, 5, 6, 8, 4, 9, 10, 7))}
	case L2:
		return Edges{s: shuffled12(s, 0, 1, 2, 3, 7, 5, 6, 4, 11, 9, 10, 8)}
	case L3:
		return Edges{s: oriSwapEdgeL(shuffled12(s, 0, 1, 2, 3, 8, 5, 6, 11, 7, 9, 10, 4))}
	case R1:
		return Edges{s: oriSwapEdgeR(shuffled12(s, 0, 1, 2, 3, 4, 9, 10, 7, 8, 6, 5, 11))}
	case R2:
		return Edges{s: shuffled12(s, 0, 1, 2, 3, 4, 6, 5, 7, 8, 10, 9, 11)}
	case R3:
		return Edges{s: oriSwapEdgeR(shuffled12(s, 0, 1, 2, 3, 4, 10, 9, 7, 8, 5, 6, 11))}
	case U1:
		return Edges{s: shuffled12(s, 5, 4, 2, 3, 0, 1, 6, 7, 8, 9, 10, 11)}
	case U2:
		return Edges{s: shuffled12(s, 1, 0, 2, 3, 5, 4, 6, 7, 8, 9, 10, 11)}
	case U3:
		return Edges{s: shuffled12(s, 4, 5, 2, 3, 1, 0, 6, 7, 8, 9, 10, 11)}
	case D1:
		return Edges{s: shuffled12(s, 0, 1, 6, 7, 4, 5, 3, 2, 8, 9, 10, 11)}
	case D2:
		return Edges{s: shuffled12(s, 0, 1, 3, 2, 4, 5, 7, 6, 8, 9, 10, 11)}
	case D3:
		return Edges{s: shuffled12(s, 0, 1, 7, 6, 4, 5, 2, 3, 8, 9, 10, 11)}
	case F1:
		return Edges{s: shuffled12(s, 8, 1, 2, 9, 4, 5, 6, 7, 3, 0, 10, 11)}
	case F2:
		return Edges{s: shuffled12(s, 3, 1, 2, 0, 4, 5, 6, 7, 9, 8, 10, 11)}
	case F3:
		return Edges{s: shuffled12(s, 9, 1, 2, 8, 4, 5, 6, 7, 0, 3, 10, 11)}
	case B1:
		return Edges{s: shuffled12(s, 0, 10, 11, 3, 4, 5, 6, 7, 8, 9, 2, 1)}
	case B2:
		return Edges{s: shuffled12(s, 0, 2, 1, 3, 4, 5, 6, 7, 8, 9, 11, 10)}
	case B3:
		return Edges{s: shuffled12(s, 0, 11, 10, 3, 4, 5, 6, 7, 8, 9, 1, 2)}
	default:
		return e
	}
}

// TwistedBy folds Twisted over a sequence of twists.
func (e Edges) TwistedBy(twists []Twist) Edges {
	for _, t := range twists {
		e = e.Twisted(t)
	}
	return e
}

// FromEdgesIndex reconstructs an Edges state from the four independent
// coordinates a CosetCube/SubsetCube pair provides: which 4 of the 12
// slots hold slice pieces (sliceLoc), the order of the 4 slice pieces
// among themselves (slicePrm), the order of the 8 non-slice pieces
// (nonSlicePrm), and the 11-bit orientation coordinate.
func FromEdgesIndex(slicePrm, nonSlicePrm, sliceLocIndex, ori int) Edges {
	sliceLoc := NthCombination(12, 4, sliceLocIndex)
	nonSliceOrder := NthPermutation(nonSlicePrm, 8)
	sliceOrder := NthPermutation(slicePrm, 4)

	var cubies [12]byte
	isSliceSlot := make(map[int]bool, 4)
	for _, pos := range sliceLoc {
		isSliceSlot[pos] = true
	}

	ni, si := 0, 0
	for pos := 0; pos < 12; pos++ {
		if isSliceSlot[pos] {
			cubies[pos] = 8 + sliceOrder[si]
			si++
		} else {
			cubies[pos] = nonSliceOrder[ni]
			ni++
		}
	}

	var orientations [12]byte
	sum := 0
	for i := 0; i < 11; i++ {
		bit := byte((ori >> uint(i)) & 1)
		orientations[i] = bit
		sum += int(bit)
	}
	orientations[11] = byte(sum % 2)

	var eg Edges
	for i := 0; i < 12; i++ {
		eg.s[i] = (orientations[i] << 4) | cubies[i]
	}
	return eg
}

// SlicePrmIndex returns the permutation index of the four slice-edge
// cubies (8-11) among themselves, in slot order.
func (e Edges) SlicePrmIndex() int {
	var order []byte
	for i := 0; i < 12; i++ {
		if c := e.cubie(i); c > 7 {
			order = append(order, c-8)
		}
	}
	return PermutationIndex(order)
}

// NonSlicePrmIndex returns the permutation index of the eight non-slice
// edge cubies (0-7) among themselves, in slot order.
func (e Edges) NonSlicePrmIndex() int {
	var order []byte
	for i := 0; i < 12; i++ {
		if c := e.cubie(i); c <= 7 {
			order = append(order, c)
		}
	}
	return PermutationIndex(order)
}

// SliceLocIndex returns the combination index of which 4 of the 12 slots
// hold slice-edge cubies.
func (e Edges) SliceLocIndex() int {
	var positions []int
	for i := 0; i < 12; i++ {
		if e.cubie(i) > 7 {
			positions = append(positions, i)
		}
	}
	return CombinationIndex(12, positions)
}

// OriIndex returns the 11-bit orientation coordinate (bit i = slot i's
// orientation; slot 11's orientation is determined by parity).
func (e Edges) OriIndex() int {
	index := 0
	for i := 0; i < 11; i++ {
		index |= int(e.orientation(i)) << uint(i)
	}
	return index
}

func (e Edges) String() string {
	var cubies [12]byte
	for i := range cubies {
		cubies[i] = e.cubie(i)
	}
	return fmt.Sprintf("%d %d %d %d %d %d %d %d %d %d %d %d | %d %d %d %d %d %d %d %d %d %d %d %d",
		cubies[0], cubies[1], cubies[2], cubies[3], cubies[4], cubies[5],
		cubies[6], cubies[7], cubies[8], cubies[9], cubies[10], cubies[11],
		e.orientation(0), e.orientation(1), e.orientation(2), e.orientation(3),
		e.orientation(4), e.orientation(5), e.orientation(6), e.orientation(7),
		e.orientation(8), e.orientation(9), e.orientation(10), e.orientation(11))
}

func oriSwapEdgeL(s [12]byte) [12]byte {
	for _, i := range [4]int{4, 7, 8, 11} {
		s[i] ^= 0x10
	}
	return s
}

func oriSwapEdgeR(s [12]byte) [12]byte {
	for _, i := range [4]int{5, 6, 9, 10} {
		s[i] ^= 0x10
	}
	return s
}

func shuffled12(s [12]byte, a, b, c, d, e, f, g, h, i, j, k, l int) [12]byte {
	return [12]byte{s[a], s[b], s[c], s[d], s[e], s[f], s[g], s[h], s[i], s[j], s[k], s[l]}
}
