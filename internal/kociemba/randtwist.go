package kociemba

import "math/rand/v2"

// RandomTwistGen draws uniformly random twists from a fixed TwistSet,
// reproducibly from a seed. Used to build scrambles for the
// `cube kociemba scramble` CLI command.
type RandomTwistGen struct {
	rng     *rand.Rand
	twists  []Twist
}

// NewRandomTwistGen seeds a generator drawing from the given twist set.
func NewRandomTwistGen(seed uint64, set TwistSet) *RandomTwistGen {
	return &RandomTwistGen{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		twists: set.Slice(),
	}
}

// Twist draws a single random twist from the generator's set.
func (g *RandomTwistGen) Twist() Twist {
	return g.twists[g.rng.IntN(len(g.twists))]
}

// Twists draws n random twists.
func (g *RandomTwistGen) Twists(n int) []Twist {
	out := make([]Twist, n)
	for i := range out {
		out[i] = g.Twist()
	}
	return out
}
