package cube

// Move represents a single quarter or half face turn. This is the move
// vocabulary the kociemba bridge translates to and from — it does not
// cover wide turns, slices, or whole-cube rotations, since the two-phase
// solver only ever reasons about the 18 basic face twists.
type Move struct {
	Face      Face // Which face to turn (R, L, U, D, F, B)
	Clockwise bool // True for clockwise, false for counter-clockwise
	Double    bool // True for 180-degree turns
}
