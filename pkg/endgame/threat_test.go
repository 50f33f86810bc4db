package endgame_test

import (
	"testing"

	"github.com/relaychess/boundedmate/pkg/endgame"
	"github.com/stretchr/testify/assert"
)

func TestCrossesOrigin(t *testing.T) {
	tests := []struct {
		name     string
		from, to endgame.Coord
		want     bool
	}{
		{"vertical through origin", endgame.Coord{X: 0, Y: -2}, endgame.Coord{X: 0, Y: 3}, true},
		{"vertical same side", endgame.Coord{X: 0, Y: 1}, endgame.Coord{X: 0, Y: 3}, false},
		{"horizontal through origin", endgame.Coord{X: -2, Y: 0}, endgame.Coord{X: 3, Y: 0}, true},
		{"diagonal through origin", endgame.Coord{X: -2, Y: -2}, endgame.Coord{X: 3, Y: 3}, true},
		{"anti-diagonal through origin", endgame.Coord{X: -2, Y: 2}, endgame.Coord{X: 3, Y: -3}, true},
		{"off axis", endgame.Coord{X: 1, Y: 2}, endgame.Coord{X: 3, Y: 4}, false},
		{"move bound 1 single step", endgame.Coord{X: 1, Y: 0}, endgame.Coord{X: 2, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, endgame.CrossesOrigin(tt.from, tt.to))
		})
	}
}

func TestIsAttacked(t *testing.T) {
	kinds := []endgame.Kind{endgame.Rook, endgame.Knight}

	attacked := endgame.Board{
		{Coord: endgame.Coord{X: 0, Y: 4}, Present: true},
		{},
	}
	assert.True(t, endgame.IsAttacked(attacked, kinds))

	notAttacked := endgame.Board{
		{Coord: endgame.Coord{X: 3, Y: 4}, Present: true},
		{},
	}
	assert.False(t, endgame.IsAttacked(notAttacked, kinds))

	knightAttacks := endgame.Board{
		{},
		{Coord: endgame.Coord{X: 1, Y: 2}, Present: true},
	}
	assert.True(t, endgame.IsAttacked(knightAttacks, kinds))
}

func TestIsAttackedBlockedByInterveningPiece(t *testing.T) {
	kinds := []endgame.Kind{endgame.Rook, endgame.Knight}

	shielded := endgame.Board{
		{Coord: endgame.Coord{X: 3, Y: 0}, Present: true},
		{Coord: endgame.Coord{X: 1, Y: 0}, Present: true},
	}
	assert.False(t, endgame.IsAttacked(shielded, kinds), "knight on the file shields the origin from the rook")
}
