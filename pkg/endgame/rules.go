package endgame

import "github.com/relaychess/boundedmate/pkg/scenario"

// Rules bundles an Inventory with the normalized scenario parameters that
// every generator and solver needs: the board bound, the effective move
// bound, and the capture/pass/stalemate flags. It plays the role the
// teacher's board.Board plays for a *ZobristTable: a fixed context threaded
// through every call instead of recomputed or passed piecemeal.
type Rules struct {
	Inventory Inventory
	Spec      scenario.Spec

	effectiveMoveBound int
	removeStalemates   bool
}

// NewRules resolves a normalized scenario into Rules. spec must already
// have passed scenario.Spec.Normalize.
func NewRules(spec scenario.Spec) Rules {
	return Rules{
		Inventory:          NewInventory(spec.Pieces),
		Spec:               spec,
		effectiveMoveBound: spec.EffectiveMoveBound(),
		removeStalemates:   spec.RemoveStalematesOrDefault(),
	}
}

func (r Rules) Bound() int             { return r.Spec.Bound }
func (r Rules) MoveBound() int         { return r.effectiveMoveBound }
func (r Rules) AllowCaptures() bool    { return r.Spec.AllowCaptures }
func (r Rules) WhiteCanPass() bool     { return r.Spec.WhiteCanPass }
func (r Rules) RemoveStalemates() bool { return r.removeStalemates }
func (r Rules) Kinds() []Kind          { return r.Inventory.Kinds }
func (r Rules) Runs() []Run            { return r.Inventory.Runs }
func (r Rules) WhiteKingIdx() int      { return r.Inventory.WKIdx }
func (r Rules) SlotCount() int         { return r.Inventory.Len() }

// InBounds reports whether every present slot of board, relative to
// absKing, fits within the board bound — i.e. whether (absKing, board)
// belongs to the enumerated universe footprint (§3, §4.5).
func (r Rules) InBounds(absKing Coord, board Board) bool {
	if absKing.Chebyshev() > r.Bound() {
		return false
	}
	for _, s := range board {
		if !s.Present {
			continue
		}
		if absKing.Add(s.Coord).Chebyshev() > r.Bound() {
			return false
		}
	}
	return true
}
