// Package endgame implements the bounded infinite-chess endgame universe:
// state canonicalization, legality, move generation and the counts pass.
// The three fixpoint solvers (Trap, Tempo, Mate) live in the sibling
// fixpoint package, built on top of the universe this package constructs.
//
// The pure board geometry (coordinates, boards, canonicalization, the
// threat oracle) lives one level down in the square package, so that the
// piece package can depend on it without importing endgame itself. This
// file re-exports those geometry names so the rest of this package, and
// its tests, can keep using them unqualified.
package endgame

import "github.com/relaychess/boundedmate/pkg/endgame/square"

type (
	Coord = square.Coord
	Kind  = square.Kind
	Slot  = square.Slot
	Board = square.Board
	Run   = square.Run
)

const (
	WhiteKing = square.WhiteKing
	Queen     = square.Queen
	Rook      = square.Rook
	Bishop    = square.Bishop
	Knight    = square.Knight
)

var (
	KingSteps        = square.KingSteps
	KnightSteps      = square.KnightSteps
	RookDirections   = square.RookDirections
	BishopDirections = square.BishopDirections
	QueenDirections  = square.QueenDirections

	Canonicalize  = square.Canonicalize
	Legal         = square.Legal
	CrossesOrigin = square.CrossesOrigin
	IsAttacked    = square.IsAttacked
)
