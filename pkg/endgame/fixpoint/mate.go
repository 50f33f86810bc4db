package fixpoint

import "context"

// Mate computes the least fixed point of adversarial reachability (§4.12):
// seeded with terminal checkmates, propagated backward through alternating
// edges until no more black nodes can be marked winning.
func Mate(ctx context.Context, u universeView) BitSet {
	n := u.Len()
	winB := NewBitSet(n, false)
	winW := NewBitSet(n, false)

	remaining := make([]int, n)
	for b := 0; b < n; b++ {
		remaining[b] = len(u.BlackIn(b))
		if u.BlackEscapes(b) {
			remaining[b]++
		}
	}

	// blackPredOfWhite[w]: black nodes with a move into white-turn node w.
	blackPredOfWhite := make([][]int, n)
	for b := 0; b < n; b++ {
		for _, w := range u.BlackIn(b) {
			blackPredOfWhite[w] = append(blackPredOfWhite[w], b)
		}
	}
	// whitePredOfBlack[b]: white nodes with a move into black-turn node b.
	whitePredOfBlack := make([][]int, n)
	for w := 0; w < n; w++ {
		for _, b := range u.WhiteIn(w) {
			whitePredOfBlack[b] = append(whitePredOfBlack[b], w)
		}
	}

	type item struct {
		white bool
		idx   int
	}
	var queue []item

	for b := 0; b < n; b++ {
		if u.IsCheckmate(b) {
			winB[b] = true
			queue = append(queue, item{false, b})
		}
	}

	for len(queue) > 0 {
		if ctx.Err() != nil {
			return winB
		}
		it := queue[0]
		queue = queue[1:]

		if !it.white {
			b := it.idx
			for _, w := range whitePredOfBlack[b] {
				if winW[w] {
					continue
				}
				winW[w] = true
				queue = append(queue, item{true, w})
			}
			continue
		}

		w := it.idx
		for _, b := range blackPredOfWhite[w] {
			if winB[b] {
				continue
			}
			if remaining[b] > 0 {
				remaining[b]--
			}
			if remaining[b] == 0 && len(u.BlackIn(b)) > 0 {
				winB[b] = true
				queue = append(queue, item{false, b})
			}
		}
	}

	return winB
}
