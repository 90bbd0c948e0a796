package kociemba

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// twisterCols is the number of columns per coordinate row: the 18 face
// turns plus TwistNone, since a table lookup must also answer "what is
// this coordinate after no twist", the root case of the phase-1 search.
const twisterCols = 19

// Twister is the move-table engine: six flat arrays giving, for every
// reachable value of a coordinate (and, where the coordinate's physical
// meaning depends on it, the current slice location), the coordinate's
// value after each of the 19 twists. Built once at startup and shared
// read-only afterward, turning every per-move coordinate update in the
// search into an O(1) slice index instead of a cubie replay.
type Twister struct {
	cOri          []int32 // [ori*twisterCols+twist] -> ori
	cPrm          []int32 // [prm*twisterCols+twist] -> prm
	eOri          []int32 // [ori*twisterCols+twist] -> ori
	eSlicePrm     []int32 // [(slicePrm*EdgesSliceLocSize+sliceLoc)*twisterCols+twist] -> slicePrm
	eNonSlicePrm  []int32 // [(nonSlicePrm*EdgesSliceLocSize+sliceLoc)*twisterCols+twist] -> nonSlicePrm
	eSliceLoc     []int32 // [sliceLoc*twisterCols+twist] -> sliceLoc
}

// BuildTwister constructs every move table by replaying the cubie-level
// Twisted() action once per reachable coordinate value, in parallel
// across row ranges.
func BuildTwister(ctx context.Context) (*Twister, error) {
	tw := &Twister{
		cOri:         make([]int32, CornersOriSize*twisterCols),
		cPrm:         make([]int32, CornersPrmSize*twisterCols),
		eOri:         make([]int32, EdgesOriSize*twisterCols),
		eSlicePrm:    make([]int32, EdgesSlicePrmSize*EdgesSliceLocSize*twisterCols),
		eNonSlicePrm: make([]int32, EdgesNonSlicePrmSize*EdgesSliceLocSize*twisterCols),
		eSliceLoc:    make([]int32, EdgesSliceLocSize*twisterCols),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		fillRows(ctx, CornersOriSize, func(ori int) {
			base := FromCornersIndex(0, ori)
			for t := Twist(0); t < TwistNone; t++ {
				tw.cOri[ori*twisterCols+int(t)] = int32(base.Twisted(t).OriIndex())
			}
			tw.cOri[ori*twisterCols+int(TwistNone)] = int32(ori)
		})
		return nil
	})

	g.Go(func() error {
		fillRows(ctx, CornersPrmSize, func(prm int) {
			base := FromCornersIndex(prm, 0)
			for t := Twist(0); t < TwistNone; t++ {
				tw.cPrm[prm*twisterCols+int(t)] = int32(base.Twisted(t).PrmIndex())
			}
			tw.cPrm[prm*twisterCols+int(TwistNone)] = int32(prm)
		})
		return nil
	})

	g.Go(func() error {
		fillRows(ctx, EdgesOriSize, func(ori int) {
			base := FromEdgesIndex(0, 0, 0, ori)
			for t := Twist(0); t < TwistNone; t++ {
				tw.eOri[ori*twisterCols+int(t)] = int32(base.Twisted(t).OriIndex())
			}
			tw.eOri[ori*twisterCols+int(TwistNone)] = int32(ori)
		})
		return nil
	})

	g.Go(func() error {
		fillRows(ctx, EdgesSliceLocSize, func(loc int) {
			base := FromEdgesIndex(0, 0, loc, 0)
			for t := Twist(0); t < TwistNone; t++ {
				tw.eSliceLoc[loc*twisterCols+int(t)] = int32(base.Twisted(t).SliceLocIndex())
			}
			tw.eSliceLoc[loc*twisterCols+int(TwistNone)] = int32(loc)
		})
		return nil
	})

	g.Go(func() error {
		fillRows(ctx, EdgesSlicePrmSize*EdgesSliceLocSize, func(row int) {
			slicePrm := row / EdgesSliceLocSize
			sliceLoc := row % EdgesSliceLocSize
			base := FromEdgesIndex(slicePrm, 0, sliceLoc, 0)
			for t := Twist(0); t < TwistNone; t++ {
				tw.eSlicePrm[row*twisterCols+int(t)] = int32(base.Twisted(t).SlicePrmIndex())
			}
			tw.eSlicePrm[row*twisterCols+int(TwistNone)] = int32(slicePrm)
		})
		return nil
	})

	g.Go(func() error {
		fillRows(ctx, EdgesNonSlicePrmSize*EdgesSliceLocSize, func(row int) {
			nonSlicePrm := row / EdgesSliceLocSize
			sliceLoc := row % EdgesSliceLocSize
			base := FromEdgesIndex(0, nonSlicePrm, sliceLoc, 0)
			for t := Twist(0); t < TwistNone; t++ {
				tw.eNonSlicePrm[row*twisterCols+int(t)] = int32(base.Twisted(t).NonSlicePrmIndex())
			}
			tw.eNonSlicePrm[row*twisterCols+int(TwistNone)] = int32(nonSlicePrm)
		})
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tw, nil
}

// fillRows splits [0,n) into GOMAXPROCS-sized chunks and runs fn over
// each row, independently and without synchronization since rows never
// overlap. Each chunk runs in its own goroutine of a local errgroup, and
// fillRows returns once every chunk is done; callers run it from an
// errgroup worker per table, so tables are also filled concurrently.
func fillRows(ctx context.Context, n int, fn func(row int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for row := start; row < end; row++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				fn(row)
			}
			return nil
		})
	}
	_ = g.Wait()
}

// TwistedCOri returns the corner orientation coordinate after twist t.
func (tw *Twister) TwistedCOri(ori int, t Twist) int {
	return int(tw.cOri[ori*twisterCols+int(t)])
}

// TwistedCPrm returns the corner permutation coordinate after twist t.
func (tw *Twister) TwistedCPrm(prm int, t Twist) int {
	return int(tw.cPrm[prm*twisterCols+int(t)])
}

// TwistedEOri returns the edge orientation coordinate after twist t.
func (tw *Twister) TwistedEOri(ori int, t Twist) int {
	return int(tw.eOri[ori*twisterCols+int(t)])
}

// TwistedESliceLoc returns the slice-location coordinate after twist t.
func (tw *Twister) TwistedESliceLoc(loc int, t Twist) int {
	return int(tw.eSliceLoc[loc*twisterCols+int(t)])
}

// TwistedESlicePrm returns the slice-edge permutation coordinate after
// twist t, given the slice location the pieces currently occupy.
func (tw *Twister) TwistedESlicePrm(slicePrm, sliceLoc int, t Twist) int {
	row := slicePrm*EdgesSliceLocSize + sliceLoc
	return int(tw.eSlicePrm[row*twisterCols+int(t)])
}

// TwistedENonSlicePrm returns the non-slice-edge permutation coordinate
// after twist t, given the slice location the slice pieces currently
// occupy.
func (tw *Twister) TwistedENonSlicePrm(nonSlicePrm, sliceLoc int, t Twist) int {
	row := nonSlicePrm*EdgesSliceLocSize + sliceLoc
	return int(tw.eNonSlicePrm[row*twisterCols+int(t)])
}
