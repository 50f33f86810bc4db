package fixpoint_test

import (
	"context"
	"testing"

	"github.com/relaychess/boundedmate/pkg/endgame"
	"github.com/relaychess/boundedmate/pkg/endgame/fixpoint"
	"github.com/relaychess/boundedmate/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUniverse(t *testing.T, spec scenario.Spec) *endgame.Universe {
	t.Helper()
	norm, err := spec.Normalize()
	require.NoError(t, err)
	rules := endgame.NewRules(norm)
	u, err := endgame.BuildUniverse(context.Background(), rules)
	require.NoError(t, err)
	return u
}

// §8 scenario 1: a lone king has no replies to lose, so every state is
// trivially safe.
func TestTrapLoneKingAllSafe(t *testing.T) {
	u := buildUniverse(t, scenario.Spec{Bound: 1, MoveBound: 1})

	trap := fixpoint.Trap(context.Background(), u, true)
	assert.Equal(t, u.Len(), trap.Len())
}

// §8 scenario 5: classical K+Q vs K reachability must find forced mates.
func TestMateFindsForcedMates(t *testing.T) {
	u := buildUniverse(t, scenario.Spec{
		Bound: 3, MoveBound: 3,
		Pieces:        scenario.Pieces{WhiteKing: true, Queens: 1},
		AllowCaptures: true,
	})

	mate := fixpoint.Mate(context.Background(), u)
	assert.Greater(t, mate.Len(), 0)

	for i := 0; i < u.Len(); i++ {
		if u.IsCheckmate(i) {
			assert.True(t, mate.Has(i), "every terminal checkmate must be in Mate")
		}
	}
}

// §8: Mate ∩ Trap = ∅ when white cannot pass (a mated position cannot be
// safe for black).
func TestMateDisjointFromTrapWithoutPass(t *testing.T) {
	u := buildUniverse(t, scenario.Spec{
		Bound: 3, MoveBound: 3,
		Pieces:        scenario.Pieces{WhiteKing: true, Queens: 1},
		AllowCaptures: true,
		WhiteCanPass:  false,
	})

	trap := fixpoint.Trap(context.Background(), u, true)
	mate := fixpoint.Mate(context.Background(), u)

	for i := 0; i < u.Len(); i++ {
		if mate.Has(i) {
			assert.False(t, trap.Has(i), "state %d is both forced-mate and trap-safe", i)
		}
	}
}

// §4.11: with white passing disabled, calling Tempo directly still returns
// a subset of Trap; the empty Tempo count for that case comes from
// evaluate.Scenario skipping the call.
func TestTempoWithoutPassSubsetOfTrap(t *testing.T) {
	u := buildUniverse(t, scenario.Spec{
		Bound: 2, MoveBound: 2,
		Pieces:        scenario.Pieces{Queens: 1},
		WhiteCanPass:  false,
		AllowCaptures: true,
	})

	trap := fixpoint.Trap(context.Background(), u, true)
	if trap.Len() == 0 {
		t.Skip("trap empty for this scenario; nothing to assert")
	}
	// Per §4.11 the caller only invokes Tempo when WhiteCanPass; directly
	// calling it on a non-empty trap with the flag off still terminates
	// and returns a subset of trap (the recurrence is vacuous without an
	// accepting transition only insofar as no accepting state exists to
	// recur through, which Tempo itself does not special-case —
	// evaluate.Scenario is responsible for the WhiteCanPass gate).
	tempo := fixpoint.Tempo(context.Background(), u, trap)
	for i := 0; i < u.Len(); i++ {
		if tempo.Has(i) {
			assert.True(t, trap.Has(i))
		}
	}
}

// §8 scenario 4: Tempo is always a subset of Trap.
func TestTempoSubsetOfTrap(t *testing.T) {
	u := buildUniverse(t, scenario.Spec{
		Bound: 2, MoveBound: 2,
		Pieces:       scenario.Pieces{Queens: 1},
		WhiteCanPass: true,
	})

	trap := fixpoint.Trap(context.Background(), u, true)
	tempo := fixpoint.Tempo(context.Background(), u, trap)

	for i := 0; i < u.Len(); i++ {
		if tempo.Has(i) {
			assert.True(t, trap.Has(i))
		}
	}
}

func TestBitSet(t *testing.T) {
	b := fixpoint.NewBitSet(5, false)
	assert.Equal(t, 0, b.Len())
	b[2] = true
	b[4] = true
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []int{2, 4}, b.Indices())
	assert.True(t, b.Has(2))
	assert.False(t, b.Has(3))
	assert.False(t, b.Has(-1))
	assert.False(t, b.Has(100))
}
