// Package evaluate wires the endgame universe and fixpoint solvers together
// into the single per-scenario pipeline described in spec.md §2: build the
// universe, run the counts pass, then solve Trap, Tempo and Mate over it.
package evaluate

import (
	"context"
	"fmt"

	"github.com/relaychess/boundedmate/pkg/endgame"
	"github.com/relaychess/boundedmate/pkg/endgame/fixpoint"
	"github.com/relaychess/boundedmate/pkg/scenario"
)

// Result pairs the normalized scenario that was evaluated with its counts,
// matching the §6 output envelope.
type Result struct {
	Scenario scenario.Spec
	Counts   endgame.Counts
}

// Scenario runs the full pipeline for a single normalized scenario: it is a
// pure function of spec (§5), performing no I/O itself.
func Scenario(ctx context.Context, spec scenario.Spec) (Result, error) {
	norm, err := spec.Normalize()
	if err != nil {
		return Result{}, err
	}

	rules := endgame.NewRules(norm)

	u, err := endgame.BuildUniverse(ctx, rules)
	if err != nil {
		return Result{}, fmt.Errorf("building universe: %w", err)
	}

	counts := u.BaseCounts()

	trap := fixpoint.Trap(ctx, u, rules.RemoveStalemates())
	counts.Trap = trap.Len()

	if rules.WhiteCanPass() {
		tempo := fixpoint.Tempo(ctx, u, trap)
		counts.Tempo = tempo.Len()
	}

	mate := fixpoint.Mate(ctx, u)
	counts.Mate = mate.Len()

	return Result{Scenario: norm, Counts: counts}, ctx.Err()
}
