package kociemba

// CornersCube is the dense index pair for the full corner state: which
// permutation (of 8!) and which orientation (of 3^7).
type CornersCube struct {
	Prm int
	Ori int
}

const CornersCubeIndexSize = CornersIndexSize

// Index returns the dense index prm*CornersOriSize + ori.
func (c CornersCube) Index() int { return c.Prm*CornersOriSize + c.Ori }

// FromCornersCubeIndex is the inverse of Index.
func FromCornersCubeIndex(index int) CornersCube {
	return CornersCube{Prm: index / CornersOriSize, Ori: index % CornersOriSize}
}

// SolvedCornersCube is the identity.
func SolvedCornersCube() CornersCube { return CornersCube{Prm: 0, Ori: 0} }

// SubsetCube is the coordinate used once phase 1 has placed the slice
// edges in the E-slice: it tracks the order of the four slice edges, the
// order of the eight non-slice edges, and the corner permutation, with
// the corner-permutation parity tied to the combined edge parity (the
// permutation parity invariant spec.md requires), which halves the
// number of reachable corner permutations and is why IndexSize divides
// by 2.
type SubsetCube struct {
	ESlicePrm    int
	ENonSlicePrm int
	CPrm         int
}

const SubsetCubeIndexSize = EdgesSlicePrmSize * EdgesNonSlicePrmSize * CornersPrmSize / 2

// SolvedSubsetCube is the identity.
func SolvedSubsetCube() SubsetCube {
	return SubsetCube{ESlicePrm: 0, ENonSlicePrm: 0, CPrm: 0}
}

// Index returns the dense SubsetCube index, folding the parity-linked
// corner permutation down to CPrm/2.
func (s SubsetCube) Index() int {
	return (s.CPrm/2)*EdgesSlicePrmSize*EdgesNonSlicePrmSize + s.ENonSlicePrm*EdgesSlicePrmSize + s.ESlicePrm
}

// FromSubsetCubeIndex is the inverse of Index. The corner permutation is
// reconstructed from its parity relationship to the edge permutations:
// overall cube permutation parity must be even, so a corner permutation
// of either CPrm/2*2 or that value+1 is forced by the combined edge
// parity.
func FromSubsetCubeIndex(index int) SubsetCube {
	eSlicePrm := index % EdgesSlicePrmSize
	index /= EdgesSlicePrmSize
	eNonSlicePrm := index % EdgesNonSlicePrmSize
	index /= EdgesNonSlicePrmSize
	cPrm := index * 2

	edgesOdd := IsEvenPermutationFromIndex(eNonSlicePrm) != IsEvenPermutationFromIndex(eSlicePrm)
	wantCornersEven := !edgesOdd
	if wantCornersEven != IsEvenPermutationFromIndex(cPrm) {
		cPrm++
	}

	return SubsetCube{ESlicePrm: eSlicePrm, ENonSlicePrm: eNonSlicePrm, CPrm: cPrm}
}

// CosetCube is the phase-1 coordinate: corner orientation, edge
// orientation, and which of the 12 edge slots hold slice pieces.
type CosetCube struct {
	COri     int
	EOri     int
	ESliceLoc int
}

const CosetCubeIndexSize = CornersOriSize * EdgesOriSize * EdgesSliceLocSize

// SolvedCosetCube is the identity: no orientation twist anywhere, and
// the slice pieces already occupy the slice (sliceLoc index 494, the
// lexicographically-last 4-subset of 12, i.e. positions 8,9,10,11).
func SolvedCosetCube() CosetCube {
	return CosetCube{COri: 0, EOri: 0, ESliceLoc: EdgesSliceLocSize - 1}
}

// Index returns the dense CosetCube index.
func (c CosetCube) Index() int {
	return c.COri*(EdgesOriSize*EdgesSliceLocSize) + c.EOri*EdgesSliceLocSize + c.ESliceLoc
}

// FromCosetCubeIndex is the inverse of Index.
func FromCosetCubeIndex(index int) CosetCube {
	sliceLoc := index % EdgesSliceLocSize
	index /= EdgesSliceLocSize
	eOri := index % EdgesOriSize
	index /= EdgesOriSize
	return CosetCube{COri: index, EOri: eOri, ESliceLoc: sliceLoc}
}

// InSubset reports whether this coset is the trivial one: phase 1 is
// complete exactly when corner and edge orientation are both solved and
// the slice pieces already occupy the slice.
func (c CosetCube) InSubset() bool {
	return c.COri == 0 && c.EOri == 0 && c.ESliceLoc == EdgesSliceLocSize-1
}

// Cube is the full cubie state split into the two coordinate pairs the
// two-phase search consumes. Twisted reconstructs the complete Corners
// and Edges cubie arrays from the current Subset+Coset coordinates,
// applies the move at the cubie level, and re-derives both coordinate
// pairs from the result. This is deliberately the single source of
// truth for how a twist affects every coordinate together: the six
// coordinates are not independent enough to update piecewise without
// re-deriving the slice-location context first, so Cube always threads
// the pre-twist ESliceLoc through the reconstruction before twisting.
type Cube struct {
	Subset SubsetCube
	Coset  CosetCube
}

// SolvedCube is the identity.
func SolvedCube() Cube {
	return Cube{Subset: SolvedSubsetCube(), Coset: SolvedCosetCube()}
}

// Twisted applies a single face turn at the cubie level.
func (c Cube) Twisted(t Twist) Cube {
	corners := FromCornersIndex(c.Subset.CPrm, c.Coset.COri)
	edges := FromEdgesIndex(c.Subset.ESlicePrm, c.Subset.ENonSlicePrm, c.Coset.ESliceLoc, c.Coset.EOri)

	nc := corners.Twisted(t)
	ne := edges.Twisted(t)

	return Cube{
		Subset: SubsetCube{
			ESlicePrm:    ne.SlicePrmIndex(),
			ENonSlicePrm: ne.NonSlicePrmIndex(),
			CPrm:         nc.PrmIndex(),
		},
		Coset: CosetCube{
			COri:      nc.OriIndex(),
			EOri:      ne.OriIndex(),
			ESliceLoc: ne.SliceLocIndex(),
		},
	}
}

// TwistedBy folds Twisted over a sequence of twists.
func (c Cube) TwistedBy(twists []Twist) Cube {
	for _, t := range twists {
		c = c.Twisted(t)
	}
	return c
}

// IsSolved reports whether c is the identity cube.
func (c Cube) IsSolved() bool {
	return c == SolvedCube()
}

// FromCubies builds a Cube's coordinate pair directly from cubie-level
// Corners and Edges states, as produced by a sticker-to-cubie decoder.
func FromCubies(corners Corners, edges Edges) Cube {
	return Cube{
		Subset: SubsetCube{
			ESlicePrm:    edges.SlicePrmIndex(),
			ENonSlicePrm: edges.NonSlicePrmIndex(),
			CPrm:         corners.PrmIndex(),
		},
		Coset: CosetCube{
			COri:      corners.OriIndex(),
			EOri:      edges.OriIndex(),
			ESliceLoc: edges.SliceLocIndex(),
		},
	}
}

// Cubies reconstructs the full cubie-level Corners and Edges states from
// c's coordinates, the same reconstruction Twisted uses internally.
func (c Cube) Cubies() (Corners, Edges) {
	corners := FromCornersIndex(c.Subset.CPrm, c.Coset.COri)
	edges := FromEdgesIndex(c.Subset.ESlicePrm, c.Subset.ENonSlicePrm, c.Coset.ESliceLoc, c.Coset.EOri)
	return corners, edges
}
