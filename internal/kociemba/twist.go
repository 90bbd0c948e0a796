package kociemba

import (
	"fmt"
	"math/bits"
	"strings"
)

// Twist is one of the 18 quarter/half face turns, plus TwistNone, a
// sentinel used as "no previous twist" at the root of the phase-1
// recursion. Variant order matches the bit position used by TwistSet.
type Twist uint8

const (
	L1 Twist = iota
	L2
	L3
	R1
	R2
	R3
	U1
	U2
	U3
	D1
	D2
	D3
	F1
	F2
	F3
	B1
	B2
	B3
	TwistNone
)

var twistNames = [...]string{
	"L1", "L2", "L3", "R1", "R2", "R3",
	"U1", "U2", "U3", "D1", "D2", "D3",
	"F1", "F2", "F3", "B1", "B2", "B3",
	"None",
}

func (t Twist) String() string {
	return twistNames[t]
}

// ParseTwist parses a single twist's textual name (e.g. "L1").
func ParseTwist(s string) (Twist, error) {
	for i, name := range twistNames {
		if name == s {
			return Twist(i), nil
		}
	}
	return 0, fmt.Errorf("kociemba: unknown twist %q", s)
}

// ParseTwists parses a sequence of space-separated twist names.
func ParseTwists(input string) ([]Twist, error) {
	fields := strings.Fields(input)
	out := make([]Twist, 0, len(fields))
	for _, f := range fields {
		t, err := ParseTwist(f)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Inverse returns the twist that undoes t: quarter turns swap direction,
// half turns are self-inverse. Panics if called with TwistNone.
func Inverse(t Twist) Twist {
	if t == TwistNone {
		panic("kociemba: Inverse called with TwistNone")
	}
	switch t % 3 {
	case 0:
		return t + 2
	case 2:
		return t - 2
	default:
		return t
	}
}

// TwistSet is a 19-bit bitmap over Twist (18 face turns + TwistNone),
// copied by value so it is safe and cheap on every IDA* recursion frame.
type TwistSet uint32

const (
	emptyTwistSet TwistSet = 0
	allTwistSet   TwistSet = 0b111_111_111_111_111_111
	// h0Set is the generator set of G1 = <U,D,L2,R2,F2,B2>.
	h0Set TwistSet = 0b010_010_111_111_010_010
)

// EmptyTwistSet returns the empty set.
func EmptyTwistSet() TwistSet { return emptyTwistSet }

// AllTwists returns the set of all 18 face turns (TwistNone excluded).
func AllTwists() TwistSet { return allTwistSet }

// H0 returns {L2,R2,U1,U2,U3,D1,D2,D3,F2,B2}, the generators of G1.
func H0() TwistSet { return h0Set }

// FullAndNone returns all 18 face turns plus TwistNone: the full domain of
// the move tables, which store a result for "no twist yet" too.
func FullAndNone() TwistSet { return allTwistSet | (1 << TwistNone) }

// faceMasks gives, per twist, the 3-bit subset of twists sharing its face.
var faceMasks = [...]TwistSet{
	0b000_000_000_000_000_111, 0b000_000_000_000_000_111, 0b000_000_000_000_000_111, // L
	0b000_000_000_000_111_000, 0b000_000_000_000_111_000, 0b000_000_000_000_111_000, // R
	0b000_000_000_111_000_000, 0b000_000_000_111_000_000, 0b000_000_000_111_000_000, // U
	0b000_000_111_000_000_000, 0b000_000_111_000_000_000, 0b000_000_111_000_000_000, // D
	0b000_111_000_000_000_000, 0b000_111_000_000_000_000, 0b000_111_000_000_000_000, // F
	0b111_000_000_000_000_000, 0b111_000_000_000_000_000, 0b111_000_000_000_000_000, // B
}

// FaceOf returns the set of twists on the same face as t. Empty for
// TwistNone, so no face-adjacency pruning applies at the recursion root.
func FaceOf(t Twist) TwistSet {
	if t == TwistNone {
		return emptyTwistSet
	}
	return faceMasks[t]
}

func (s TwistSet) Set(t Twist) TwistSet   { return s | (1 << t) }
func (s TwistSet) Unset(t Twist) TwistSet { return s &^ (1 << t) }
func (s TwistSet) SetTwists(o TwistSet) TwistSet   { return s | o }
func (s TwistSet) UnsetTwists(o TwistSet) TwistSet { return s &^ o }
func (s TwistSet) KeepOnly(o TwistSet) TwistSet    { return s & o }
func (s TwistSet) Contains(t Twist) bool           { return s&(1<<t) != 0 }
func (s TwistSet) Count() int                      { return bits.OnesCount32(uint32(s)) }
func (s TwistSet) IsEmpty() bool                   { return s == 0 }

// Next pops and returns the lowest-numbered twist in the set along with
// the remaining set, and ok=false once the set is empty. It is the
// trailing-zero-count iteration technique spec.md calls for.
func (s TwistSet) Next() (t Twist, rest TwistSet, ok bool) {
	if s == 0 {
		return 0, 0, false
	}
	pos := bits.TrailingZeros32(uint32(s))
	return Twist(pos), s & (s - 1), true
}

// Iterate calls fn for every twist in the set in bit-scan order, stopping
// early if fn returns false.
func (s TwistSet) Iterate(fn func(Twist) bool) {
	for {
		t, rest, ok := s.Next()
		if !ok {
			return
		}
		if !fn(t) {
			return
		}
		s = rest
	}
}

// Slice materializes the set as a slice, for tests and callers that don't
// need the hot-path iteration style.
func (s TwistSet) Slice() []Twist {
	out := make([]Twist, 0, s.Count())
	s.Iterate(func(t Twist) bool {
		out = append(out, t)
		return true
	})
	return out
}
