package endgame

import "github.com/relaychess/boundedmate/pkg/scenario"

// Inventory resolves a scenario's piece counts into the fixed canonical
// slot order (§3: optional white king, then all queens, rooks, bishops,
// knights) and precomputes the identical-run ranges, the way
// board.NewPosition precomputes derived bitboards once at construction
// instead of recomputing them on every query.
type Inventory struct {
	Kinds []Kind // one entry per slot, in canonical order
	Runs  []Run
	WKIdx int // index of the white king slot, or -1 if absent
}

// NewInventory builds an Inventory from a scenario's piece counts.
func NewInventory(p scenario.Pieces) Inventory {
	var kinds []Kind
	wkIdx := -1
	if p.WhiteKing {
		wkIdx = 0
		kinds = append(kinds, WhiteKing)
	}
	for i := 0; i < p.Queens; i++ {
		kinds = append(kinds, Queen)
	}
	for i := 0; i < p.Rooks; i++ {
		kinds = append(kinds, Rook)
	}
	for i := 0; i < p.Bishops; i++ {
		kinds = append(kinds, Bishop)
	}
	for i := 0; i < p.Knights; i++ {
		kinds = append(kinds, Knight)
	}

	return Inventory{
		Kinds: kinds,
		Runs:  identicalRuns(kinds),
		WKIdx: wkIdx,
	}
}

// identicalRuns groups kinds into maximal contiguous same-kind ranges
// (§3 "Identical runs").
func identicalRuns(kinds []Kind) []Run {
	var runs []Run
	i := 0
	for i < len(kinds) {
		j := i + 1
		for j < len(kinds) && kinds[j] == kinds[i] {
			j++
		}
		runs = append(runs, Run{Kind: kinds[i], Start: i, End: j})
		i = j
	}
	return runs
}

// Len returns the number of inventory slots.
func (inv Inventory) Len() int {
	return len(inv.Kinds)
}
