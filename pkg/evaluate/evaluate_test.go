package evaluate_test

import (
	"context"
	"testing"

	"github.com/relaychess/boundedmate/pkg/evaluate"
	"github.com/relaychess/boundedmate/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioLoneKing(t *testing.T) {
	res, err := evaluate.Scenario(context.Background(), scenario.Spec{Bound: 1, MoveBound: 1})
	require.NoError(t, err)

	assert.Equal(t, 9, res.Counts.UniverseStates)
	assert.Equal(t, 0, res.Counts.Checkmates)
	assert.Equal(t, 9, res.Counts.Trap)
	assert.Equal(t, 0, res.Counts.Mate)
	assert.Equal(t, scenario.Inclusive, res.Scenario.MoveBoundMode)
}

func TestScenarioConfigError(t *testing.T) {
	_, err := evaluate.Scenario(context.Background(), scenario.Spec{Bound: 1, MoveBound: 0})
	require.Error(t, err)

	var cfgErr *scenario.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestScenarioStalemateRemovalMonotone(t *testing.T) {
	on := true
	withRemoval, err := evaluate.Scenario(context.Background(), scenario.Spec{
		Bound: 2, MoveBound: 2,
		Pieces:           scenario.Pieces{Rooks: 1},
		AllowCaptures:    true,
		RemoveStalemates: &on,
	})
	require.NoError(t, err)

	off := false
	withoutRemoval, err := evaluate.Scenario(context.Background(), scenario.Spec{
		Bound: 2, MoveBound: 2,
		Pieces:           scenario.Pieces{Rooks: 1},
		AllowCaptures:    true,
		RemoveStalemates: &off,
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, withRemoval.Counts.Trap, withoutRemoval.Counts.Trap)
}
