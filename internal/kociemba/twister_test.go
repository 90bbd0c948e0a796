package kociemba

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwisterMatchesCubieReplay(t *testing.T) {
	tw, _ := requireFullFixtures(t)

	corners := SolvedCorners()
	edges := SolvedEdges()
	prm, ori := corners.PrmIndex(), corners.OriIndex()
	eOri := edges.OriIndex()
	eSliceLoc := edges.SliceLocIndex()
	eSlicePrm, eNonSlicePrm := edges.SlicePrmIndex(), edges.NonSlicePrmIndex()

	for tw2 := Twist(0); tw2 < TwistNone; tw2++ {
		nextCorners := corners.Twisted(tw2)
		nextEdges := edges.Twisted(tw2)

		assert.Equal(t, nextCorners.PrmIndex(), tw.TwistedCPrm(prm, tw2))
		assert.Equal(t, nextCorners.OriIndex(), tw.TwistedCOri(ori, tw2))
		assert.Equal(t, nextEdges.OriIndex(), tw.TwistedEOri(eOri, tw2))
		assert.Equal(t, nextEdges.SliceLocIndex(), tw.TwistedESliceLoc(eSliceLoc, tw2))
		assert.Equal(t, nextEdges.SlicePrmIndex(), tw.TwistedESlicePrm(eSlicePrm, eSliceLoc, tw2))
		assert.Equal(t, nextEdges.NonSlicePrmIndex(), tw.TwistedENonSlicePrm(eNonSlicePrm, eSliceLoc, tw2))
	}
}

func TestTwisterTwistNoneIsIdentity(t *testing.T) {
	tw, _ := requireFullFixtures(t)
	assert.Equal(t, 42, tw.TwistedCPrm(42, TwistNone))
	assert.Equal(t, 7, tw.TwistedCOri(7, TwistNone))
	assert.Equal(t, 3, tw.TwistedEOri(3, TwistNone))
	assert.Equal(t, 11, tw.TwistedESliceLoc(11, TwistNone))
}
