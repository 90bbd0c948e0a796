package cube

import (
	"fmt"

	"github.com/ehrlich-b/cube/internal/kociemba"
)

// This file bridges the sticker-based Cube used throughout the rest of
// this package to the cubie-level Corners/Edges model internal/kociemba
// searches over.
//
// kociemba's cubie ids are abstract labels defined by its own move
// tables (ported from the original coordinate-math source), not by this
// package's Get3x3CornerMappings/Get3x3EdgeMappings ordering. Tracing
// which physical corner/edge each kociemba slot's face-turn tables act
// on (by checking which slots a turn of each face touches, and in what
// cyclic order) gives the following fixed correspondence: kociemba
// corner slot i is physical corner cornerSlotToTeacher[i] (an index into
// Get3x3CornerMappings, a self-inverse relabeling since it only swaps
// the front and back pairs of the top layer), and kociemba
// edge slot i is physical edge edgeSlotToTeacher[i] (an index into
// Get3x3EdgeMappings; edgeTeacherToSlot inverts it). Twist suffix 1 is a
// real clockwise turn, 2 a half turn, 3 counter-clockwise, matching this
// package's Move.Clockwise convention directly.
//
// Within that physical identity, decoding reads the three (or two)
// stickers at a slot's geometry and identifies which piece sits there by
// its color *set* (a real cube never repeats a color combination across
// pieces), then derives orientation by checking which rotation of the
// piece's solved color sequence matches what's actually observed.
// Encoding runs the same relationship in reverse.

var cornerSlotToTeacher = [8]int{2, 3, 0, 1, 4, 5, 6, 7}

var edgeSlotToTeacher = [12]int{3, 0, 11, 8, 1, 2, 10, 9, 4, 5, 6, 7}
var edgeTeacherToSlot = [12]int{1, 4, 5, 0, 8, 9, 10, 11, 3, 7, 6, 2}

func solvedFaceColor(face Face) Color {
	return []Color{White, Yellow, Red, Orange, Blue, Green}[face]
}

func cornerColorTriple(m CornerMap) [3]Color {
	return [3]Color{solvedFaceColor(m.Face1), solvedFaceColor(m.Face2), solvedFaceColor(m.Face3)}
}

func edgeColorPair(m EdgeMap) [2]Color {
	return [2]Color{solvedFaceColor(m.Face1), solvedFaceColor(m.Face2)}
}

func cornerStickers(c *Cube, m CornerMap) [3]Color {
	return [3]Color{
		c.Faces[m.Face1][m.Row1][m.Col1],
		c.Faces[m.Face2][m.Row2][m.Col2],
		c.Faces[m.Face3][m.Row3][m.Col3],
	}
}

func edgeStickers(c *Cube, m EdgeMap) [2]Color {
	return [2]Color{
		c.Faces[m.Face1][m.Row1][m.Col1],
		c.Faces[m.Face2][m.Row2][m.Col2],
	}
}

// cornerHomeByColors finds which of the 8 canonical corner mappings has
// exactly this (unordered) set of three colors — the piece's solved
// "home" position.
func cornerHomeByColors(colors [3]Color, mappings []CornerMap) (int, error) {
	for home, m := range mappings {
		if sameColorSet3(cornerColorTriple(m), colors) {
			return home, nil
		}
	}
	return 0, fmt.Errorf("cube: no corner piece matches colors %v %v %v", colors[0], colors[1], colors[2])
}

func edgeHomeByColors(colors [2]Color, mappings []EdgeMap) (int, error) {
	for home, m := range mappings {
		want := edgeColorPair(m)
		if (want[0] == colors[0] && want[1] == colors[1]) || (want[0] == colors[1] && want[1] == colors[0]) {
			return home, nil
		}
	}
	return 0, fmt.Errorf("cube: no edge piece matches colors %v %v", colors[0], colors[1])
}

func sameColorSet3(a, observed [3]Color) bool {
	// Corner windings never mirror on a physical cube, only rotate, so
	// checking all three cyclic rotations is enough; no need to also
	// check the reversed winding.
	for r := 0; r < 3; r++ {
		if a[0] == observed[r] && a[1] == observed[(r+1)%3] && a[2] == observed[(r+2)%3] {
			return true
		}
	}
	return false
}

// cornerOrientation returns the rotation r in {0,1,2} such that rotating
// canonical by r lines up with observed.
func cornerOrientation(canonical, observed [3]Color) byte {
	for r := 0; r < 3; r++ {
		if canonical[0] == observed[r] && canonical[1] == observed[(r+1)%3] && canonical[2] == observed[(r+2)%3] {
			return byte(r)
		}
	}
	return 0
}

func edgeOrientation(canonical, observed [2]Color) byte {
	if canonical[0] == observed[0] {
		return 0
	}
	return 1
}

// ToKociembaCorners decodes the cube's 8 corner stickers into a
// kociemba.Corners cubie state.
func (c *Cube) ToKociembaCorners() (kociemba.Corners, error) {
	if c.Size != 3 {
		return kociemba.Corners{}, fmt.Errorf("cube: kociemba solving only supports 3x3x3 cubes")
	}

	mappings := Get3x3CornerMappings()
	var cubies, orientations [8]byte

	for slot := 0; slot < 8; slot++ {
		m := mappings[cornerSlotToTeacher[slot]]
		observed := cornerStickers(c, m)
		home, err := cornerHomeByColors(observed, mappings)
		if err != nil {
			return kociemba.Corners{}, err
		}
		canonical := cornerColorTriple(mappings[home])
		cubies[slot] = byte(cornerSlotToTeacher[home])
		orientations[slot] = cornerOrientation(canonical, observed)
	}

	return kociemba.NewCorners(cubies, orientations), nil
}

// ToKociembaEdges decodes the cube's 12 edge stickers into a
// kociemba.Edges cubie state.
func (c *Cube) ToKociembaEdges() (kociemba.Edges, error) {
	if c.Size != 3 {
		return kociemba.Edges{}, fmt.Errorf("cube: kociemba solving only supports 3x3x3 cubes")
	}

	mappings := Get3x3EdgeMappings()
	var cubies, orientations [12]byte

	for slot := 0; slot < 12; slot++ {
		m := mappings[edgeSlotToTeacher[slot]]
		observed := edgeStickers(c, m)
		home, err := edgeHomeByColors(observed, mappings)
		if err != nil {
			return kociemba.Edges{}, err
		}
		canonical := edgeColorPair(mappings[home])
		cubies[slot] = byte(edgeTeacherToSlot[home])
		orientations[slot] = edgeOrientation(canonical, observed)
	}

	return kociemba.NewEdges(cubies, orientations), nil
}

// ApplyKociembaCorners writes a kociemba.Corners cubie state back onto
// the cube's corner stickers.
func (c *Cube) ApplyKociembaCorners(corners kociemba.Corners) {
	mappings := Get3x3CornerMappings()
	for slot := 0; slot < 8; slot++ {
		m := mappings[cornerSlotToTeacher[slot]]
		cubie := int(corners.Cubie(slot))
		home := cornerSlotToTeacher[cubie]
		canonical := cornerColorTriple(mappings[home])
		o := corners.Orientation(slot)

		faces := [3]Face{m.Face1, m.Face2, m.Face3}
		rows := [3]int{m.Row1, m.Row2, m.Row3}
		cols := [3]int{m.Col1, m.Col2, m.Col3}
		for k := 0; k < 3; k++ {
			pos := (int(o) + k) % 3
			c.Faces[faces[pos]][rows[pos]][cols[pos]] = canonical[k]
		}
	}
}

// ApplyKociembaEdges writes a kociemba.Edges cubie state back onto the
// cube's edge stickers.
func (c *Cube) ApplyKociembaEdges(edges kociemba.Edges) {
	mappings := Get3x3EdgeMappings()
	for slot := 0; slot < 12; slot++ {
		m := mappings[edgeSlotToTeacher[slot]]
		cubie := int(edges.Cubie(slot))
		home := edgeSlotToTeacher[cubie]
		canonical := edgeColorPair(mappings[home])
		o := edges.Orientation(slot)

		faces := [2]Face{m.Face1, m.Face2}
		rows := [2]int{m.Row1, m.Row2}
		cols := [2]int{m.Col1, m.Col2}
		for k := 0; k < 2; k++ {
			pos := (int(o) + k) % 2
			c.Faces[faces[pos]][rows[pos]][cols[pos]] = canonical[k]
		}
	}
}

// ToKociemba decodes the whole cube's corner and edge stickers into a
// kociemba.Cube coordinate pair ready for TwoPhaseSolver.Solve.
func (c *Cube) ToKociemba() (kociemba.Cube, error) {
	corners, err := c.ToKociembaCorners()
	if err != nil {
		return kociemba.Cube{}, err
	}
	edges, err := c.ToKociembaEdges()
	if err != nil {
		return kociemba.Cube{}, err
	}
	return kociemba.FromCubies(corners, edges), nil
}

// ApplyKociemba writes a kociemba.Cube's corner and edge coordinates back
// onto the cube's stickers, leaving centers untouched.
func (c *Cube) ApplyKociemba(kc kociemba.Cube) {
	corners, edges := kc.Cubies()
	c.ApplyKociembaCorners(corners)
	c.ApplyKociembaEdges(edges)
}
