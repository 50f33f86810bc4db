package square_test

import (
	"testing"

	"github.com/relaychess/boundedmate/pkg/endgame/square"
	"github.com/stretchr/testify/assert"
)

func TestCoordArithmetic(t *testing.T) {
	a := square.Coord{X: 2, Y: -3}
	d := square.Coord{X: 1, Y: 1}

	assert.Equal(t, square.Coord{X: 3, Y: -2}, a.Add(d))
	assert.Equal(t, square.Coord{X: 1, Y: -4}, a.Sub(d))
}

func TestCoordLess(t *testing.T) {
	assert.True(t, square.Coord{X: 1, Y: 5}.Less(square.Coord{X: 2, Y: 0}))
	assert.True(t, square.Coord{X: 1, Y: 0}.Less(square.Coord{X: 1, Y: 1}))
	assert.False(t, square.Coord{X: 1, Y: 1}.Less(square.Coord{X: 1, Y: 1}))
}

func TestQueenDirectionsIsUnionOfRookAndBishop(t *testing.T) {
	dirs := square.QueenDirections()
	assert.Len(t, dirs, 8)
	for _, d := range square.RookDirections {
		assert.Contains(t, dirs, d)
	}
	for _, d := range square.BishopDirections {
		assert.Contains(t, dirs, d)
	}
}
