package fixpoint

import "context"

// Tempo computes the Büchi-style fair recurrence set inside Trap (§4.11):
// the greatest set Z such that, from every black node in Z, white can
// forever be steered back to an accepting null-move state while staying in
// Z. Returns the empty set if trap is empty (whiteCanPass is the caller's
// responsibility to check before calling, since §4.11 defines Tempo = ∅
// when passing is disallowed).
func Tempo(ctx context.Context, u universeView, trap BitSet) BitSet {
	n := u.Len()
	if trap.Len() == 0 {
		return NewBitSet(n, false)
	}

	// Black nodes = Trap. White nodes = states reached as black successors
	// of a trap node (§4.11).
	inZB := make([]bool, n)
	copy(inZB, trap)

	inZW := make([]bool, n)
	isAcceptW := make([]bool, n)
	bwSucc := make([][]int, n) // black b -> white w edges, trap-restricted on the black side
	wbSucc := make([][]int, n) // white w -> black b edges, restricted to Trap

	for b := 0; b < n; b++ {
		if !inZB[b] {
			continue
		}
		for _, w := range u.BlackIn(b) {
			inZW[w] = true
			bwSucc[b] = append(bwSucc[b], w)
		}
	}
	for w := 0; w < n; w++ {
		if !inZW[w] {
			continue
		}
		isAcceptW[w] = inZB[w] // pass keeps w in Trap iff w itself is a Trap (black) node
		for _, b := range u.WhiteIn(w) {
			if inZB[b] {
				wbSucc[w] = append(wbSucc[w], b)
			}
		}
	}

	for {
		if ctx.Err() != nil {
			return inZB
		}

		inYB, inYW := attractorWhite(inZB, inZW, bwSucc, wbSucc, isAcceptW)

		targetB := make([]bool, n)
		targetW := make([]bool, n)
		for i := 0; i < n; i++ {
			targetB[i] = inZB[i] && !inYB[i]
			targetW[i] = inZW[i] && !inYW[i]
		}

		inXB, inXW := attractorBlack(inZB, inZW, bwSucc, wbSucc, targetB, targetW)

		removed := false
		for i := 0; i < n; i++ {
			if inZB[i] && inXB[i] {
				inZB[i] = false
				removed = true
			}
			if inZW[i] && inXW[i] {
				inZW[i] = false
				removed = true
			}
		}
		if !removed {
			break
		}
	}

	return BitSet(inZB)
}

// attractorWhite computes the set from which white, choosing at white
// nodes, can force a visit to an accepting white node while staying in the
// working space (Z): seeded with accepting white nodes in Z, then closed
// under "white node with some successor in A" and "black node with all
// (non-empty) successors in A".
func attractorWhite(inZB, inZW []bool, bwSucc, wbSucc [][]int, isAcceptW []bool) ([]bool, []bool) {
	n := len(inZB)
	inAB := make([]bool, n)
	inAW := make([]bool, n)

	for w := 0; w < n; w++ {
		if inZW[w] && isAcceptW[w] {
			inAW[w] = true
		}
	}

	for changed := true; changed; {
		changed = false

		for w := 0; w < n; w++ {
			if !inZW[w] || inAW[w] {
				continue
			}
			for _, b := range wbSucc[w] {
				if inZB[b] && inAB[b] {
					inAW[w] = true
					changed = true
					break
				}
			}
		}

		for b := 0; b < n; b++ {
			if !inZB[b] || inAB[b] {
				continue
			}
			saw, all := false, true
			for _, w := range bwSucc[b] {
				if !inZW[w] {
					continue
				}
				saw = true
				if !inAW[w] {
					all = false
					break
				}
			}
			if saw && all {
				inAB[b] = true
				changed = true
			}
		}
	}

	return inAB, inAW
}

// attractorBlack computes the set from which black, choosing at black
// nodes, can force a visit to target while staying in the working space:
// seeded with target, then closed under "black node with some successor in
// A" and "white node with all (non-empty) successors in A".
func attractorBlack(inZB, inZW []bool, bwSucc, wbSucc [][]int, targetB, targetW []bool) ([]bool, []bool) {
	n := len(inZB)
	inAB := make([]bool, n)
	inAW := make([]bool, n)

	for b := 0; b < n; b++ {
		if inZB[b] && targetB[b] {
			inAB[b] = true
		}
	}
	for w := 0; w < n; w++ {
		if inZW[w] && targetW[w] {
			inAW[w] = true
		}
	}

	for changed := true; changed; {
		changed = false

		for b := 0; b < n; b++ {
			if !inZB[b] || inAB[b] {
				continue
			}
			for _, w := range bwSucc[b] {
				if inZW[w] && inAW[w] {
					inAB[b] = true
					changed = true
					break
				}
			}
		}

		for w := 0; w < n; w++ {
			if !inZW[w] || inAW[w] {
				continue
			}
			saw, all := false, true
			for _, b := range wbSucc[w] {
				if !inZB[b] {
					continue
				}
				saw = true
				if !inAB[b] {
					all = false
					break
				}
			}
			if saw && all {
				inAW[w] = true
				changed = true
			}
		}
	}

	return inAB, inAW
}
