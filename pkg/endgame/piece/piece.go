// Package piece implements the per-kind successor-board generators of
// spec.md §4.1: king, queen, rook, bishop and knight moves over a
// king-relative board, honoring the move-step bound and the capture flag.
// The rider-through-king filter of §4.2 is applied by the caller
// (endgame.Universe), since it concerns the origin rather than any one
// piece kind.
package piece

import "github.com/relaychess/boundedmate/pkg/endgame/square"

// Func generates the boards resulting from moving the piece at slot idx on
// board b, given the effective move-step bound (already translated from
// inclusive/exclusive per §4.1) and whether captures are allowed.
type Func func(b square.Board, idx int, bound int, allowCaptures bool) []square.Board

// Table dispatches by square.Kind, indexed directly rather than through a
// type switch or interface (spec.md §9).
var Table = [5]Func{
	square.WhiteKing: KingMoves,
	square.Queen:     QueenMoves,
	square.Rook:      RookMoves,
	square.Bishop:    BishopMoves,
	square.Knight:    KnightMoves,
}

// occupant finds the slot index occupied by c, if any.
func occupant(b square.Board, c square.Coord) (int, bool) {
	for i, s := range b {
		if s.Present && s.Coord == c {
			return i, true
		}
	}
	return -1, false
}

// KingMoves implements the leaper, range-1 semantics of §4.1: 8 king-distance
// steps; the target must be empty, or (captures allowed) occupied by another
// white piece that is captured. The black king at the origin is never a
// valid target here — opponent-king adjacency to origin is already excluded
// by the legality invariant.
func KingMoves(b square.Board, idx int, bound int, allowCaptures bool) []square.Board {
	from := b[idx].Coord

	var out []square.Board
	for _, d := range square.KingSteps {
		to := from.Add(d)
		if to == (square.Coord{}) {
			continue // the black king occupies the origin; never a leaper target here
		}

		if occIdx, occ := occupant(b, to); occ {
			if occIdx == idx || !allowCaptures {
				continue
			}
			nb := b.Clone()
			nb[idx] = square.Slot{Coord: to, Present: true}
			nb[occIdx] = square.Slot{}
			out = append(out, nb)
			continue
		}

		nb := b.Clone()
		nb[idx] = square.Slot{Coord: to, Present: true}
		out = append(out, nb)
	}
	return out
}

// KnightMoves implements the 8 L-shaped leaper moves; target must be empty
// or capturable.
func KnightMoves(b square.Board, idx int, bound int, allowCaptures bool) []square.Board {
	from := b[idx].Coord

	var out []square.Board
	for _, d := range square.KnightSteps {
		to := from.Add(d)
		if to == (square.Coord{}) {
			continue
		}

		if occIdx, occ := occupant(b, to); occ {
			if occIdx == idx || !allowCaptures {
				continue
			}
			nb := b.Clone()
			nb[idx] = square.Slot{Coord: to, Present: true}
			nb[occIdx] = square.Slot{}
			out = append(out, nb)
			continue
		}

		nb := b.Clone()
		nb[idx] = square.Slot{Coord: to, Present: true}
		out = append(out, nb)
	}
	return out
}

// QueenMoves implements the rider semantics of §4.1 along all 8 ray
// directions.
func QueenMoves(b square.Board, idx int, bound int, allowCaptures bool) []square.Board {
	return rayMoves(b, idx, bound, allowCaptures, square.QueenDirections())
}

// RookMoves implements the rider semantics of §4.1 along the 4 orthogonal
// ray directions.
func RookMoves(b square.Board, idx int, bound int, allowCaptures bool) []square.Board {
	return rayMoves(b, idx, bound, allowCaptures, square.RookDirections[:])
}

// BishopMoves implements the rider semantics of §4.1 along the 4 diagonal
// ray directions.
func BishopMoves(b square.Board, idx int, bound int, allowCaptures bool) []square.Board {
	return rayMoves(b, idx, bound, allowCaptures, square.BishopDirections[:])
}

// rayMoves walks each direction 1..bound-1 squares (bound is an exclusive
// distance upper bound per §4.1), stopping at the first occupied square; if
// that square holds another piece and captures are allowed, it emits a
// capturing move there and stops regardless.
func rayMoves(b square.Board, idx int, bound int, allowCaptures bool, dirs []square.Coord) []square.Board {
	from := b[idx].Coord

	var out []square.Board
	for _, d := range dirs {
		for step := 1; step < bound; step++ {
			to := from.Add(square.Coord{X: d.X * step, Y: d.Y * step})
			if to == (square.Coord{}) {
				break // the origin is always occupied by the black king
			}

			if occIdx, occ := occupant(b, to); occ {
				if occIdx != idx && allowCaptures {
					nb := b.Clone()
					nb[idx] = square.Slot{Coord: to, Present: true}
					nb[occIdx] = square.Slot{}
					out = append(out, nb)
				}
				break
			}

			nb := b.Clone()
			nb[idx] = square.Slot{Coord: to, Present: true}
			out = append(out, nb)
		}
	}
	return out
}
