package kociemba

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// distSentinel marks a not-yet-reached state during BFS construction and
// an unreachable one afterward (never occurs for a correctly connected
// coordinate space).
const distSentinel byte = 0xFF

// neighborFunc enumerates, for a given coordinate-space state, every
// (twist, resulting state) pair reachable by one twist drawn from a
// fixed move set.
type neighborFunc func(tw *Twister, state int, visit func(t Twist, next int))

// atomicByteTable packs one byte per logical cell into four-byte words,
// since Go has no atomic compare-and-swap at byte granularity. Each
// write goes through a CAS retry loop on the containing word, giving
// the same "exactly one writer ever claims a given cell" guarantee a
// per-byte AtomicU8 would.
type atomicByteTable struct {
	words []uint32
	n     int
}

func newAtomicByteTable(n int, fill byte) *atomicByteTable {
	fillWord := uint32(fill) | uint32(fill)<<8 | uint32(fill)<<16 | uint32(fill)<<24
	words := make([]uint32, (n+3)/4)
	for i := range words {
		words[i] = fillWord
	}
	return &atomicByteTable{words: words, n: n}
}

func (t *atomicByteTable) get(i int) byte {
	word := atomic.LoadUint32(&t.words[i/4])
	shift := uint((i % 4) * 8)
	return byte(word >> shift)
}

// casIfEqual atomically sets cell i to want iff it currently holds old,
// retrying the containing word on contention from an unrelated lane.
func (t *atomicByteTable) casIfEqual(i int, old, want byte) bool {
	shift := uint((i % 4) * 8)
	wordIdx := i / 4
	for {
		word := atomic.LoadUint32(&t.words[wordIdx])
		cur := byte(word >> shift)
		if cur != old {
			return false
		}
		newWord := (word &^ (uint32(0xFF) << shift)) | (uint32(want) << shift)
		if atomic.CompareAndSwapUint32(&t.words[wordIdx], word, newWord) {
			return true
		}
	}
}

func (t *atomicByteTable) toBytes() []byte {
	out := make([]byte, t.n)
	for i := range out {
		out[i] = t.get(i)
	}
	return out
}

// DistanceTable is a breadth-first distance map from a single origin
// state to every reachable state in a coordinate space, under a fixed
// move set.
type DistanceTable struct {
	dist []byte
}

// Distance returns the BFS distance of state i from the table's origin.
func (d *DistanceTable) Distance(i int) byte { return d.dist[i] }

// MaxDistance returns the largest finite distance in the table.
func (d *DistanceTable) MaxDistance() byte {
	var max byte
	for _, v := range d.dist {
		if v != distSentinel && v > max {
			max = v
		}
	}
	return max
}

// Histogram counts how many states sit at each distance, index 0..=max.
func (d *DistanceTable) Histogram() []int {
	max := int(d.MaxDistance())
	hist := make([]int, max+1)
	for _, v := range d.dist {
		if int(v) <= max {
			hist[v]++
		}
	}
	return hist
}

func newDistanceTableFromBytes(b []byte) *DistanceTable {
	return &DistanceTable{dist: b}
}

func distanceTableFromFile(path string) (*DistanceTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newDistanceTableFromBytes(b), nil
}

func (d *DistanceTable) toFile(path string) error {
	return os.WriteFile(path, d.dist, 0o644)
}

// buildDistanceTable runs a level-synchronous parallel BFS: at each
// round every state at the current frontier distance tries to claim its
// unvisited neighbors via CAS, and the round stops once nothing changes.
func buildDistanceTable(ctx context.Context, size int, origin int, neighbors neighborFunc, tw *Twister) (*DistanceTable, error) {
	table := newAtomicByteTable(size, distSentinel)
	table.casIfEqual(origin, distSentinel, 0)

	for level := byte(0); level < distSentinel-1; level++ {
		var changed atomic.Bool
		if err := parallelRange(ctx, size, func(i int) error {
			if table.get(i) != level {
				return nil
			}
			neighbors(tw, i, func(_ Twist, next int) {
				if table.casIfEqual(next, distSentinel, level+1) {
					changed.Store(true)
				}
			})
			return nil
		}); err != nil {
			return nil, err
		}
		if !changed.Load() {
			break
		}
	}

	return &DistanceTable{dist: table.toBytes()}, nil
}

// parallelRange runs fn(i) for i in [0,n) across GOMAXPROCS workers.
func parallelRange(ctx context.Context, n int, fn func(i int) error) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// DirectionsAndDistance packs a state's BFS distance together with two
// 19-bit twist sets: the twists that strictly decrease distance ("less")
// and those that strictly increase it ("more"). Phase 1 uses these to
// restrict which twists are even worth recursing into at a given depth,
// without a second table lookup per twist.
type DirectionsAndDistance uint64

func newDirectionsAndDistance(less, more TwistSet, distance byte) DirectionsAndDistance {
	return DirectionsAndDistance(uint64(less)<<32 | uint64(more)<<8 | uint64(distance))
}

// LessDistance returns the twists that strictly decrease distance.
func (d DirectionsAndDistance) LessDistance() TwistSet { return TwistSet(d >> 32) }

// MoreDistance returns the twists that strictly increase distance.
func (d DirectionsAndDistance) MoreDistance() TwistSet { return TwistSet((d >> 8) & 0xFFFFFF) }

// Distance returns the BFS distance.
func (d DirectionsAndDistance) Distance() byte { return byte(d & 0xFF) }

// DirectionsTable is the CosetCube pruning table: distance plus move
// directions at every reachable coset.
type DirectionsTable struct {
	cells []DirectionsAndDistance
}

// Distance returns the BFS distance of state i.
func (d *DirectionsTable) Distance(i int) byte { return d.cells[i].Distance() }

// LessDistance returns the decreasing-twist set at state i.
func (d *DirectionsTable) LessDistance(i int) TwistSet { return d.cells[i].LessDistance() }

// MoreDistance returns the increasing-twist set at state i.
func (d *DirectionsTable) MoreDistance(i int) TwistSet { return d.cells[i].MoreDistance() }

// MaxDistance returns the largest finite distance in the table.
func (d *DirectionsTable) MaxDistance() byte {
	var max byte
	for _, c := range d.cells {
		if dd := c.Distance(); dd != distSentinel && dd > max {
			max = dd
		}
	}
	return max
}

// Histogram counts how many states sit at each distance, index 0..=max.
func (d *DirectionsTable) Histogram() []int {
	max := int(d.MaxDistance())
	hist := make([]int, max+1)
	for _, c := range d.cells {
		if v := int(c.Distance()); v <= max {
			hist[v]++
		}
	}
	return hist
}

func buildDirectionsTable(ctx context.Context, size int, origin int, moves TwistSet, neighbors neighborFunc, tw *Twister) (*DirectionsTable, error) {
	dist, err := buildDistanceTable(ctx, size, origin, neighbors, tw)
	if err != nil {
		return nil, err
	}

	cells := make([]DirectionsAndDistance, size)
	err = parallelRange(ctx, size, func(i int) error {
		own := dist.Distance(i)
		var less, more TwistSet
		neighbors(tw, i, func(t Twist, next int) {
			if !moves.Contains(t) {
				return
			}
			switch nd := dist.Distance(next); {
			case nd < own:
				less = less.Set(t)
			case nd > own:
				more = more.Set(t)
			}
		})
		cells[i] = newDirectionsAndDistance(less, more, own)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &DirectionsTable{cells: cells}, nil
}

func directionsTableFromFile(path string) (*DirectionsTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("kociemba: corrupt directions table file %s: length %d not a multiple of 8", path, len(b))
	}
	cells := make([]DirectionsAndDistance, len(b)/8)
	for i := range cells {
		cells[i] = DirectionsAndDistance(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return &DirectionsTable{cells: cells}, nil
}

func (d *DirectionsTable) toFile(path string) error {
	b := make([]byte, len(d.cells)*8)
	for i, c := range d.cells {
		binary.LittleEndian.PutUint64(b[i*8:], uint64(c))
	}
	return os.WriteFile(path, b, 0o644)
}

// cornersNeighbors enumerates CornersCube neighbors under every face
// twist, used for the corner-only admissibility cut in phase 1.
func cornersNeighbors(tw *Twister, state int, visit func(t Twist, next int)) {
	cc := FromCornersCubeIndex(state)
	for t := Twist(0); t < TwistNone; t++ {
		next := CornersCube{Prm: tw.TwistedCPrm(cc.Prm, t), Ori: tw.TwistedCOri(cc.Ori, t)}
		visit(t, next.Index())
	}
}

// cosetNeighbors enumerates CosetCube neighbors under every face twist,
// for the phase-1 pruning table.
func cosetNeighbors(tw *Twister, state int, visit func(t Twist, next int)) {
	c := FromCosetCubeIndex(state)
	for t := Twist(0); t < TwistNone; t++ {
		next := CosetCube{
			COri:      tw.TwistedCOri(c.COri, t),
			EOri:      tw.TwistedEOri(c.EOri, t),
			ESliceLoc: tw.TwistedESliceLoc(c.ESliceLoc, t),
		}
		visit(t, next.Index())
	}
}

// subsetNeighbors enumerates SubsetCube neighbors under the G1 generator
// set H0, for the phase-2 pruning table. Slice pieces are assumed
// already in the slice (sliceLoc fixed at its solved value), which is
// exactly the precondition phase 2 operates under.
func subsetNeighbors(tw *Twister, state int, visit func(t Twist, next int)) {
	s := FromSubsetCubeIndex(state)
	const solvedSliceLoc = EdgesSliceLocSize - 1
	H0().Iterate(func(t Twist) bool {
		next := SubsetCube{
			ESlicePrm:    tw.TwistedESlicePrm(s.ESlicePrm, solvedSliceLoc, t),
			ENonSlicePrm: tw.TwistedENonSlicePrm(s.ENonSlicePrm, solvedSliceLoc, t),
			CPrm:         tw.TwistedCPrm(s.CPrm, t),
		}
		visit(t, next.Index())
		return true
	})
}

// BuildCornersDistanceTable builds the corner-only pruning table.
func BuildCornersDistanceTable(ctx context.Context, tw *Twister) (*DistanceTable, error) {
	return buildDistanceTable(ctx, CornersCubeIndexSize, SolvedCornersCube().Index(), cornersNeighbors, tw)
}

// BuildSubsetDistanceTable builds the phase-2 pruning table.
func BuildSubsetDistanceTable(ctx context.Context, tw *Twister) (*DistanceTable, error) {
	return buildDistanceTable(ctx, SubsetCubeIndexSize, SolvedSubsetCube().Index(), subsetNeighbors, tw)
}

// BuildCosetDirectionsTable builds the phase-1 pruning table.
func BuildCosetDirectionsTable(ctx context.Context, tw *Twister) (*DirectionsTable, error) {
	return buildDirectionsTable(ctx, CosetCubeIndexSize, SolvedCosetCube().Index(), AllTwists(), cosetNeighbors, tw)
}
