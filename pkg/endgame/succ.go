package endgame

import (
	"context"

	"github.com/relaychess/boundedmate/pkg/endgame/piece"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"golang.org/x/exp/slices"
)

// blackSuccessors implements §4.7: for each of the 8 king steps, reject
// captures of the white king, translate every slot by the inverse step
// (pieces coinciding with the new origin are captured), canonicalize,
// reject illegal or attacked results, and return the resulting states.
func blackSuccessors(rules Rules, s State) []State {
	wkIdx := rules.WhiteKingIdx()
	runs := rules.Runs()
	kinds := rules.Kinds()

	var out []State
	for _, d := range KingSteps {
		if wkIdx >= 0 {
			if wk := s.Board[wkIdx]; wk.Present && wk.Coord == d {
				continue
			}
		}

		shifted := make(Board, len(s.Board))
		for i, sl := range s.Board {
			if !sl.Present {
				continue
			}
			nc := sl.Coord.Sub(d)
			if nc == (Coord{}) {
				continue // captured by the moving king
			}
			shifted[i] = Slot{Coord: nc, Present: true}
		}

		canon := Canonicalize(shifted, runs)
		if !Legal(canon, wkIdx) {
			continue
		}
		if IsAttacked(canon, kinds) {
			continue
		}

		out = append(out, State{AbsKing: s.AbsKing.Add(d), Board: canon})
	}
	return out
}

// whiteSuccessors implements §4.8: an optional pass (the unchanged state),
// plus every present piece's rider/leaper moves, filtered through the
// cross-king predicate and re-legalized.
func whiteSuccessors(rules Rules, s State) []State {
	runs := rules.Runs()
	kinds := rules.Kinds()
	wkIdx := rules.WhiteKingIdx()
	bound := rules.MoveBound()
	allowCaptures := rules.AllowCaptures()

	var out []State
	if rules.WhiteCanPass() {
		out = append(out, s)
	}

	for i, sl := range s.Board {
		if !sl.Present {
			continue
		}
		gen := piece.Table[kinds[i]]
		for _, nb := range gen(s.Board, i, bound, allowCaptures) {
			if CrossesOrigin(sl.Coord, nb[i].Coord) {
				continue
			}
			canon := Canonicalize(nb, runs)
			if !Legal(canon, wkIdx) {
				continue
			}
			out = append(out, State{AbsKing: s.AbsKing, Board: canon})
		}
	}
	return out
}

// buildAdjacency runs the counts pass (§4.9) and materializes the deduped
// in-universe adjacency lists the fixpoint solvers operate on, in a single
// sweep over the universe.
func (u *Universe) buildAdjacency(ctx context.Context) error {
	n := len(u.states)
	u.blackMoveCount = make([]int, n)
	u.blackMovesIn = make([]int, n)
	u.blackMovesEscape = make([]int, n)
	u.blackIn = make([][]int, n)
	u.blackEsc = make([]bool, n)
	u.whiteMoveCount = make([]int, n)
	u.whiteMovesIn = make([]int, n)
	u.whiteMovesEscape = make([]int, n)
	u.whiteIn = make([][]int, n)
	u.whiteEsc = make([]bool, n)

	rules := u.rules

	for i, s := range u.states {
		if contextx.IsCancelled(ctx) {
			return ctx.Err()
		}

		bSucc := blackSuccessors(rules, s)
		u.blackMoveCount[i] = len(bSucc)

		seen := make(map[int]bool, len(bSucc))
		var in []int
		for _, t := range bSucc {
			j, ok := u.IndexOf(t)
			if !ok {
				u.blackMovesEscape[i]++
				u.blackEsc[i] = true
				continue
			}
			u.blackMovesIn[i]++
			if !seen[j] {
				seen[j] = true
				in = append(in, j)
			}
		}
		slices.Sort(in)
		u.blackIn[i] = in

		wSucc := whiteSuccessors(rules, s)
		u.whiteMoveCount[i] = len(wSucc)

		seenW := make(map[int]bool, len(wSucc))
		var winList []int
		for _, t := range wSucc {
			j, ok := u.IndexOf(t)
			if !ok {
				u.whiteMovesEscape[i]++
				u.whiteEsc[i] = true
				continue
			}
			u.whiteMovesIn[i]++
			if !seenW[j] {
				seenW[j] = true
				winList = append(winList, j)
			}
		}
		slices.Sort(winList)
		u.whiteIn[i] = winList
	}

	return nil
}
