package kociemba

import "fmt"

// BudgetExhaustedError reports that no solution exists within the
// caller's requested move-count budget, distinct from an internal
// failure: the search completed correctly and simply found nothing.
type BudgetExhaustedError struct {
	MaxSolutionLength int
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf("kociemba: no solution found within %d moves", e.MaxSolutionLength)
}

// Stats counts search effort for a single Solve call, for diagnostics
// and benchmarking; never consulted by the search itself.
type Stats struct {
	Phase1Probes    int
	Phase2Probes    int
	CornerCuts      int
	SubsetCuts      int
	EmptySetCuts    int
	DepthIterations int
}

// TwoPhaseSolver runs Kociemba's two-phase IDA* search against a fixed
// set of pruning tables and move tables.
type TwoPhaseSolver struct {
	tw      *Twister
	corners *DistanceTable
	subset  *DistanceTable
	coset   *DirectionsTable

	// relevantTwists[p] is the set of twists legal to try immediately
	// after twist p: every face turn except the ones sharing p's face,
	// since two consecutive turns of the same face are never part of a
	// shortest solution. Index 18 (TwistNone) imposes no restriction,
	// for the root of the search.
	relevantTwists [19]TwistSet

	stats Stats
}

// NewTwoPhaseSolver builds the relevant-twist table and binds the move
// and pruning tables the search will use.
func NewTwoPhaseSolver(tw *Twister, tables *Tables) *TwoPhaseSolver {
	s := &TwoPhaseSolver{
		tw:      tw,
		corners: tables.Corners,
		subset:  tables.Subset,
		coset:   tables.Coset,
	}
	for p := 0; p < int(TwistNone); p++ {
		s.relevantTwists[p] = AllTwists().UnsetTwists(FaceOf(Twist(p)))
	}
	s.relevantTwists[TwistNone] = AllTwists()
	return s
}

// Stats returns a snapshot of the counters from the most recent Solve
// call.
func (s *TwoPhaseSolver) Stats() Stats { return s.stats }

// Solve searches for a solution to cube of at most maxSolutionLength
// twists, iteratively deepening the phase-1 budget from the coset's
// admissible lower bound up to the length budget.
func (s *TwoPhaseSolver) Solve(cube Cube, maxSolutionLength int) ([]Twist, error) {
	s.stats = Stats{}

	subsetDistance := int(s.coset.Distance(cube.Coset.Index()))
	for p1Depth := subsetDistance; p1Depth <= maxSolutionLength; p1Depth++ {
		s.stats.DepthIterations++
		p2Depth := maxSolutionLength - p1Depth
		if solution, ok := s.searchPhase1(cube.Subset, cube.Coset, p1Depth, p2Depth, TwistNone); ok {
			return solution, nil
		}
	}
	return nil, &BudgetExhaustedError{MaxSolutionLength: maxSolutionLength}
}

// searchPhase1 recursively searches for a phase-1 path of exactly
// p1Depth twists that reaches the G1 subset, then hands off to phase 2
// with the remaining p2Depth budget.
func (s *TwoPhaseSolver) searchPhase1(subset SubsetCube, coset CosetCube, p1Depth, p2Depth int, prevTwist Twist) ([]Twist, bool) {
	s.stats.Phase1Probes++

	if p1Depth == 0 {
		return s.searchPhase2(subset, p2Depth)
	}

	// Below a small remaining budget the corner-only admissibility cut
	// is worth its cost; above it, it rarely prunes anything and only
	// adds a table lookup per node.
	if p1Depth+p2Depth < 9 {
		cornerDistance := s.corners.Distance(CornersCube{Prm: subset.CPrm, Ori: coset.COri}.Index())
		if int(cornerDistance) > p1Depth+p2Depth {
			s.stats.CornerCuts++
			return nil, false
		}
	}

	cosetIndex := coset.Index()
	cosetDistance := int(s.coset.Distance(cosetIndex))

	twists := s.relevantTwists[prevTwist]
	switch {
	case p1Depth == cosetDistance:
		twists = twists.KeepOnly(s.coset.LessDistance(cosetIndex))
	case p1Depth == cosetDistance+1:
		twists = twists.UnsetTwists(s.coset.MoreDistance(cosetIndex))
	}
	if p1Depth == 1 {
		// An H0 move never changes the coset, so it cannot be the move
		// that first reaches the subset.
		twists = twists.UnsetTwists(H0())
	}
	if twists.IsEmpty() {
		s.stats.EmptySetCuts++
		return nil, false
	}

	var result []Twist
	found := false
	twists.Iterate(func(t Twist) bool {
		nextCoset := CosetCube{
			COri:      s.tw.TwistedCOri(coset.COri, t),
			EOri:      s.tw.TwistedEOri(coset.EOri, t),
			ESliceLoc: s.tw.TwistedESliceLoc(coset.ESliceLoc, t),
		}

		// Phase 1 must reach the subset on exactly its last move: an
		// early or late arrival at the subset invalidates the p1Depth
		// budget it was searched under.
		if nextCoset.InSubset() != (p1Depth == 1) {
			s.stats.SubsetCuts++
			return true
		}

		nextSubset := SubsetCube{
			// The slice-edge and non-slice-edge transitions need the
			// slice location *before* this twist, which is why it is
			// read off the untouched coset, not nextCoset.
			ESlicePrm:    s.tw.TwistedESlicePrm(subset.ESlicePrm, coset.ESliceLoc, t),
			ENonSlicePrm: s.tw.TwistedENonSlicePrm(subset.ENonSlicePrm, coset.ESliceLoc, t),
			CPrm:         s.tw.TwistedCPrm(subset.CPrm, t),
		}

		if solution, ok := s.searchPhase1(nextSubset, nextCoset, p1Depth-1, p2Depth, t); ok {
			result = append([]Twist{t}, solution...)
			found = true
			return false
		}
		return true
	})

	return result, found
}

// searchPhase2 greedily descends the phase-2 pruning table from subset,
// using only G1 generators, as long as doing so fits within depth.
// Because the table is an exact BFS distance, any strictly-decreasing
// neighbor lies on some shortest path, so a single greedy pass always
// finds one.
func (s *TwoPhaseSolver) searchPhase2(subset SubsetCube, depth int) ([]Twist, bool) {
	s.stats.Phase2Probes++

	const solvedSliceLoc = EdgesSliceLocSize - 1

	cur := subset
	curDistance := int(s.subset.Distance(cur.Index()))
	if curDistance > depth {
		return nil, false
	}

	var solution []Twist
	for curDistance > 0 {
		advanced := false
		H0().Iterate(func(t Twist) bool {
			next := SubsetCube{
				ESlicePrm:    s.tw.TwistedESlicePrm(cur.ESlicePrm, solvedSliceLoc, t),
				ENonSlicePrm: s.tw.TwistedENonSlicePrm(cur.ENonSlicePrm, solvedSliceLoc, t),
				CPrm:         s.tw.TwistedCPrm(cur.CPrm, t),
			}
			nextDistance := int(s.subset.Distance(next.Index()))
			if nextDistance < curDistance {
				solution = append(solution, t)
				cur = next
				curDistance = nextDistance
				advanced = true
				return false
			}
			return true
		})
		if !advanced {
			return nil, false
		}
	}
	return solution, true
}
