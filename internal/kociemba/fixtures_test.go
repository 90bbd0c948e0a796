package kociemba

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
)

// sharedFixtures builds the real move and pruning tables once per test
// binary run and hands the same instances to every test that needs
// them, since building them touches tens of millions of states.
var (
	fixturesOnce sync.Once
	fixturesTw   *Twister
	fixturesTb   *Tables
	fixturesErr  error
)

func requireFullFixtures(t *testing.T) (*Twister, *Tables) {
	t.Helper()
	if testing.Short() {
		t.Skip("full table construction is expensive; skipped under -short")
	}

	fixturesOnce.Do(func() {
		ctx := context.Background()
		fixturesTw, fixturesErr = BuildTwister(ctx)
		if fixturesErr != nil {
			return
		}
		dir := t.TempDir()
		fixturesTb, fixturesErr = LoadTables(ctx, filepath.Join(dir, "kociemba.conf"), fixturesTw)
	})
	if fixturesErr != nil {
		t.Fatalf("building fixtures: %v", fixturesErr)
	}
	return fixturesTw, fixturesTb
}
