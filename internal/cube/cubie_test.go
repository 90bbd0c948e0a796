package cube

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/kociemba"
)

func TestSolvedCubeDecodesToSolvedKociemba(t *testing.T) {
	c := NewCube(3)
	kc, err := c.ToKociemba()
	if err != nil {
		t.Fatalf("ToKociemba: %v", err)
	}
	if !kc.IsSolved() {
		t.Errorf("solved cube decoded to unsolved kociemba state: %+v", kc)
	}
}

func TestKociembaBridgeRoundTrip(t *testing.T) {
	scramble, err := kociemba.ParseTwists("R1 U1 R3 U3 F1 R1 F3 L1 D2 B1 L3")
	if err != nil {
		t.Fatalf("ParseTwists: %v", err)
	}
	kc := kociemba.SolvedCube().TwistedBy(scramble)

	c := NewCube(3)
	c.ApplyKociemba(kc)

	decoded, err := c.ToKociemba()
	if err != nil {
		t.Fatalf("ToKociemba: %v", err)
	}
	if decoded != kc {
		t.Errorf("ToKociemba(ApplyKociemba(kc)) = %+v, want %+v", decoded, kc)
	}
}

func TestKociembaBridgeTracksASingleTwist(t *testing.T) {
	want := kociemba.SolvedCube().Twisted(kociemba.R1)

	c := NewCube(3)
	c.ApplyKociemba(want)

	got, err := c.ToKociemba()
	if err != nil {
		t.Fatalf("ToKociemba: %v", err)
	}
	if got != want {
		t.Errorf("decoded kociemba state after R1 does not match kociemba.SolvedCube().Twisted(R1)")
	}
}

func TestKociembaBridgeRejectsNonThreeByThree(t *testing.T) {
	c := NewCube(4)
	if _, err := c.ToKociemba(); err == nil {
		t.Error("expected an error decoding a 4x4x4 cube")
	}
}
