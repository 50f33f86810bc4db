package piece_test

import (
	"testing"

	"github.com/relaychess/boundedmate/pkg/endgame"
	"github.com/relaychess/boundedmate/pkg/endgame/piece"
	"github.com/stretchr/testify/assert"
)

func TestKingMoves(t *testing.T) {
	b := endgame.Board{{Coord: endgame.Coord{X: 3, Y: 3}, Present: true}}
	moves := piece.KingMoves(b, 0, 0, false)
	assert.Len(t, moves, 8)
}

func TestKingMovesRejectsOriginTarget(t *testing.T) {
	b := endgame.Board{{Coord: endgame.Coord{X: 1, Y: 0}, Present: true}}
	for _, m := range piece.KingMoves(b, 0, 0, false) {
		assert.NotEqual(t, endgame.Coord{}, m[0].Coord)
	}
}

func TestKnightMovesCapture(t *testing.T) {
	b := endgame.Board{
		{Coord: endgame.Coord{X: 2, Y: 3}, Present: true},
		{Coord: endgame.Coord{X: 4, Y: 4}, Present: true},
	}
	withCap := piece.KnightMoves(b, 0, 0, true)
	var sawCapture bool
	for _, m := range withCap {
		if !m[1].Present {
			sawCapture = true
		}
	}
	assert.True(t, sawCapture)

	withoutCap := piece.KnightMoves(b, 0, 0, false)
	for _, m := range withoutCap {
		assert.NotEqual(t, endgame.Coord{X: 4, Y: 4}, m[0].Coord)
	}
}

func TestRookMovesStopsAtOrigin(t *testing.T) {
	b := endgame.Board{{Coord: endgame.Coord{X: -3, Y: 0}, Present: true}}
	moves := piece.RookMoves(b, 0, 10, true)
	for _, m := range moves {
		assert.LessOrEqual(t, m[0].Coord.X, -1)
	}
}

func TestRookMovesBoundExclusive(t *testing.T) {
	b := endgame.Board{{Coord: endgame.Coord{X: 5, Y: 5}, Present: true}}
	moves := piece.RookMoves(b, 0, 2, true) // bound=2 => distance 1 only
	for _, m := range moves {
		assert.Equal(t, 1, abs(m[0].Coord.X-5)+abs(m[0].Coord.Y-5))
	}
}

func TestBishopMovesBlockedByOwnPiece(t *testing.T) {
	b := endgame.Board{
		{Coord: endgame.Coord{X: 1, Y: 1}, Present: true},
		{Coord: endgame.Coord{X: 3, Y: 3}, Present: true},
	}
	moves := piece.BishopMoves(b, 0, 10, false)
	for _, m := range moves {
		assert.NotEqual(t, endgame.Coord{X: 4, Y: 4}, m[0].Coord)
		assert.NotEqual(t, endgame.Coord{X: 5, Y: 5}, m[0].Coord)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
