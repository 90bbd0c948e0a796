package kociemba

import "fmt"

// Corners holds the permutation and orientation of the eight corner
// cubies. Each entry packs a cubie id (low nibble) and an orientation in
// {0,1,2} (high nibble). Corner numbering and the per-twist shuffle/
// orientation tables below are the contract: spec.md requires the exact
// action of each face turn on a fixed canonical numbering, reproduced here
// as the repository's own numbering (not tied to any sticker layout).
type Corners struct {
	s [8]byte
}

const (
	CornersPrmSize   = 40320 // 8!
	CornersOriSize   = 2187  // 3^7
	CornersIndexSize = CornersPrmSize * CornersOriSize
)

// SolvedCorners is the identity corner state.
func SolvedCorners() Corners {
	return Corners{s: [8]byte{0, 1, 2, 3, 4, 5, 6, 7}}
}

func (c Corners) cubie(i int) byte       { return c.s[i] & 0x0F }
func (c Corners) orientation(i int) byte { return c.s[i] >> 4 }

// Cubie returns the id (0-7) of whatever piece occupies slot i.
func (c Corners) Cubie(i int) byte { return c.cubie(i) }

// Orientation returns the orientation (0-2) of whatever piece occupies
// slot i.
func (c Corners) Orientation(i int) byte { return c.orientation(i) }

// NewCorners builds a Corners state directly from per-slot cubie ids and
// orientations, as supplied by a sticker-to-cubie decoder.
func NewCorners(cubies, orientations [8]byte) Corners {
	return newCorners(cubies, orientations)
}

func (c Corners) cubies() [8]byte {
	var out [8]byte
	for i := range out {
		out[i] = c.cubie(i)
	}
	return out
}

func newCorners(cubies, orientations [8]byte) Corners {
	var c Corners
	for i := 0; i < 8; i++ {
		c.s[i] = (orientations[i] << 4) | cubies[i]
	}
	return c
}

// IsSolved reports whether c is the identity.
func (c Corners) IsSolved() bool { return c == SolvedCorners() }

// Twisted returns the corner state after applying a single face turn.
func (c Corners) Twisted(t Twist) Corners {
	s := c.s
	switch t {
	case L1:
		return Corners{s: oriSwapL(shuffled8(s, 2, 1, 6, 3, 0, 5, 4, 7))}
	case L2:
		return Corners{s: shuffled8(s, 6, 1, 4, 3, 2, 5, 0, 7)}
	case L3:
		return Corners{s: oriSwapL(shuffled8(s, 4, 1, 0, 3, 6, 5, 2, 7))}
	case R1:
		return Corners{s: oriSwapR(shuffled8(s, 0, 5, 2, 1, 4, 7, 6, 3))}
	case R2:
		return Corners{s: shuffled8(s, 0, 7, 2, 5, 4, 3, 6, 1)}
	case R3:
		return Corners{s: oriSwapR(shuffled8(s, 0, 3, 2, 7, 4, 1, 6, 5))}
	case U1:
		return Corners{s: oriSwapU(shuffled8(s, 1, 3, 0, 2, 4, 5, 6, 7))}
	case U2:
		return Corners{s: shuffled8(s, 3, 2, 1, 0, 4, 5, 6, 7)}
	case U3:
		return Corners{s: oriSwapU(shuffled8(s, 2, 0, 3, 1, 4, 5, 6, 7))}
	case D1:
		return Corners{s: oriSwapD(shuffled8(s, 0, 1, 2, 3, 6, 4, 7, 5))}
	case D2:
		return Corners{s: shuffled8(s, 0, 1, 2, 3, 7, 6, 5, 4)}
	case D3:
		return Corners{s: oriSwapD(shuffled8(s, 0, 1, 2, 3, 5, 7, 4, 6))}
	case F1:
		return Corners{s: oriSwapF(shuffled8(s, 4, 0, 2, 3, 5, 1, 6, 7))}
	case F2:
		return Corners{s: shuffled8(s, 5, 4, 2, 3, 1, 0, 6, 7)}
	case F3:
		return Corners{s: oriSwapF(shuffled8(s, 1, 5, 2, 3, 0, 4, 6, 7))}
	case B1:
		return Corners{s: oriSwapB(shuffled8(s, 0, 1, 3, 7, 4, 5, 2, 6))}
	case B2:
		return Corners{s: shuffled8(s, 0, 1, 7, 6, 4, 5, 3, 2)}
	case B3:
		return Corners{s: oriSwapB(shuffled8(s, 0, 1, 6, 2, 4, 5, 7, 3))}
	default:
		return c
	}
}

// TwistedBy folds Twisted over a sequence of twists.
func (c Corners) TwistedBy(twists []Twist) Corners {
	for _, t := range twists {
		c = c.Twisted(t)
	}
	return c
}

// FromCornersIndex decodes a Corners state from its permutation and
// orientation indices. Orientation digits are decoded low-to-high (slot 6
// first, slot 0 last), and the 8th is derived from the invariant the
// twist tables preserve: a signed sum, with slots 0,3,5,6 counted +1 and
// slots 1,2,4,7 counted -1, that is 0 mod 3.
func FromCornersIndex(prm, ori int) Corners {
	p := NthPermutation(prm, 8)
	var cubies [8]byte
	copy(cubies[:], p)

	o := ori
	var digits [7]byte
	for i := 6; i >= 0; i-- {
		digits[i] = byte(o % 3)
		o /= 3
	}
	sum := 12 + int(digits[0]) - int(digits[1]) - int(digits[2]) + int(digits[3]) - int(digits[4]) + int(digits[5]) + int(digits[6])
	o7 := byte(sum % 3)

	return newCorners(cubies, [8]byte{digits[0], digits[1], digits[2], digits[3], digits[4], digits[5], digits[6], o7})
}

// PrmIndex returns the Lehmer-code index of the corner permutation.
func (c Corners) PrmIndex() int {
	cubies := c.cubies()
	return PermutationIndex(cubies[:])
}

// OriIndex returns the base-3 index of the first seven corner
// orientations, slot 0 the most significant digit and slot 6 the least
// (the eighth is determined).
func (c Corners) OriIndex() int {
	ret := 0
	for i := 0; i < 7; i++ {
		ret = ret*3 + int(c.orientation(i))
	}
	return ret
}

// FromCombinedIndex decodes a Corners from the dense CornersCube index.
func FromCombinedIndex(index int) Corners {
	return FromCornersIndex(index/CornersOriSize, index%CornersOriSize)
}

// Index returns the dense CornersCube index (prm*OriSize + ori).
func (c Corners) Index() int {
	return c.PrmIndex()*CornersOriSize + c.OriIndex()
}

func (c Corners) String() string {
	cb := c.cubies()
	return fmt.Sprintf("%d %d %d %d %d %d %d %d | %d %d %d %d %d %d %d %d",
		cb[0], cb[1], cb[2], cb[3], cb[4], cb[5], cb[6], cb[7],
		c.orientation(0), c.orientation(1), c.orientation(2), c.orientation(3),
		c.orientation(4), c.orientation(5), c.orientation(6), c.orientation(7))
}

// Orientation-swap bit tricks: a corner orientation value occupies the
// high nibble of its byte as {0,1,2} << 4. Each swap maps one pair of
// orientation values into each other while fixing the third, matching
// how a face turn tilts a corner cubie relative to the L/R, U/D, or F/B
// axis it pivots around.

func oriSwap01(state byte) byte {
	return (^state & 0x20 >> 1) ^ state
}

func oriSwap02(state byte) byte {
	return byte(0x20-(int(state)&0x30)) | (state & 0x0F)
}

func oriSwap12(state byte) byte {
	l := (state & 0x20) >> 1
	r := (state & 0x10) << 1
	return (state & 0x0F) | l | r
}

func oriSwapL(s [8]byte) [8]byte {
	for _, i := range [4]int{0, 2, 4, 6} {
		s[i] = oriSwap02(s[i])
	}
	return s
}

func oriSwapR(s [8]byte) [8]byte {
	for _, i := range [4]int{1, 3, 5, 7} {
		s[i] = oriSwap02(s[i])
	}
	return s
}

func oriSwapU(s [8]byte) [8]byte {
	for _, i := range [4]int{0, 1, 2, 3} {
		s[i] = oriSwap12(s[i])
	}
	return s
}

func oriSwapD(s [8]byte) [8]byte {
	for _, i := range [4]int{4, 5, 6, 7} {
		s[i] = oriSwap12(s[i])
	}
	return s
}

func oriSwapF(s [8]byte) [8]byte {
	for _, i := range [4]int{0, 1, 4, 5} {
		s[i] = oriSwap01(s[i])
	}
	return s
}

func oriSwapB(s [8]byte) [8]byte {
	for _, i := range [4]int{2, 3, 6, 7} {
		s[i] = oriSwap01(s[i])
	}
	return s
}

func shuffled8(s [8]byte, a, b, c, d, e, f, g, h int) [8]byte {
	return [8]byte{s[a], s[b], s[c], s[d], s[e], s[f], s[g], s[h]}
}
