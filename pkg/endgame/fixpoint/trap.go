package fixpoint

import (
	"context"

	"github.com/relaychess/boundedmate/pkg/endgame"
)

// universeView is the subset of *endgame.Universe the solvers depend on,
// kept narrow so tests can substitute a fixture without building a real
// Universe.
type universeView interface {
	Len() int
	BlackIn(i int) []int
	WhiteIn(i int) []int
	BlackEscapes(i int) bool
	WhiteMoveCount(i int) int
	Attacked(i int) bool
	IsCheckmate(i int) bool
}

var _ universeView = (*endgame.Universe)(nil)

// Trap computes the greatest fixed point of safety (§4.10): the set of
// black nodes that keep at least one in-universe reply into a white node
// that is still a safe target. A white node is a safe target while white
// has at least one move back into the set; a white node with no move at
// all, piece or pass, also never counts against the black node that
// reaches it. Escaping replies never keep a black node in the set, and do
// not remove it while some safe in-universe reply remains.
func Trap(ctx context.Context, u universeView, removeStalemates bool) BitSet {
	n := u.Len()
	inS := NewBitSet(n, true)

	if removeStalemates {
		for b := 0; b < n; b++ {
			if !u.Attacked(b) && len(u.BlackIn(b)) == 0 && !u.BlackEscapes(b) {
				inS[b] = false
			}
		}
	}

	replyCount := make([]int, n) // per white node w: replies into current S
	for w := 0; w < n; w++ {
		for _, b := range u.WhiteIn(w) {
			if inS.Has(b) {
				replyCount[w]++
			}
		}
	}

	whitePred := make([][]int, n) // black b <- white w edges: w such that b in WhiteIn(w)
	for w := 0; w < n; w++ {
		for _, b := range u.WhiteIn(w) {
			whitePred[b] = append(whitePred[b], w)
		}
	}
	blackPred := make([][]int, n) // white w <- black b edges: b such that w in BlackIn(b)
	for b := 0; b < n; b++ {
		for _, w := range u.BlackIn(b) {
			blackPred[w] = append(blackPred[w], b)
		}
	}

	// whiteOK reports whether w is currently a safe reply target for black:
	// either white has no move of any kind from w, or white still has at
	// least one move that stays in S.
	whiteOK := func(w int) bool {
		return u.WhiteMoveCount(w) == 0 || replyCount[w] > 0
	}

	// goodReplyCount[b] counts b's in-universe black successors that are
	// currently safe to move into; escapes never contribute. b stays in S
	// as long as this is nonzero.
	goodReplyCount := make([]int, n)
	for b := 0; b < n; b++ {
		if !inS[b] {
			continue
		}
		for _, w := range u.BlackIn(b) {
			if whiteOK(w) {
				goodReplyCount[b]++
			}
		}
	}

	queue := make([]int, 0, n)
	queued := make([]bool, n)
	enqueue := func(b int) {
		if !queued[b] {
			queued[b] = true
			queue = append(queue, b)
		}
	}

	for b := 0; b < n; b++ {
		if inS[b] && goodReplyCount[b] == 0 {
			enqueue(b)
		}
	}

	for len(queue) > 0 {
		if ctx.Err() != nil {
			return inS
		}
		b := queue[0]
		queue = queue[1:]
		queued[b] = false

		if !inS[b] {
			continue
		}
		inS[b] = false

		for _, w := range whitePred[b] {
			if replyCount[w] <= 0 {
				continue
			}
			replyCount[w]--
			if replyCount[w] == 0 {
				for _, pb := range blackPred[w] {
					if !inS[pb] {
						continue
					}
					goodReplyCount[pb]--
					if goodReplyCount[pb] == 0 {
						enqueue(pb)
					}
				}
			}
		}
	}

	return inS
}
