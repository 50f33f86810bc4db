package endgame

import (
	"context"

	"github.com/seekerror/stdlib/pkg/util/contextx"
	"golang.org/x/exp/slices"
)

// Universe is the finite set of canonical legal states for a given Rules
// (§4.5), plus the adjacency structures the fixpoint solvers need. It is
// built once per scenario and consulted read-only thereafter (§5).
type Universe struct {
	rules  Rules
	states []State
	index  map[string]int

	attacked []bool

	// Move multisets and deduped in-universe successor indices, by state
	// index. Built eagerly by buildAdjacency once enumeration completes, so
	// the solvers never pay enumeration cost again.
	blackMoveCount   []int // total black successors (multiset), in-universe or not
	blackMovesIn     []int // multiset count of black successors that stay in U
	blackMovesEscape []int // multiset count of black successors that leave U
	blackIn          [][]int
	blackEsc         []bool
	whiteMoveCount   []int
	whiteMovesIn     []int
	whiteMovesEscape []int
	whiteIn          [][]int
	whiteEsc         []bool
}

// BuildUniverse enumerates the canonical legal state universe for rules,
// following §4.5's deterministic order: the absolute king square iterates
// row-major, each identical run is placed left-to-right, and within a run
// the k-combination of available squares iterates in lexicographic order
// of the row-major-sorted candidate list.
func BuildUniverse(ctx context.Context, rules Rules) (*Universe, error) {
	u := &Universe{
		rules: rules,
		index: make(map[string]int),
	}

	b := rules.Bound()
	runs := rules.Runs()
	wkIdx := rules.WhiteKingIdx()
	allowCaptures := rules.AllowCaptures()

	squares := absSquares(b)

	for _, king := range squares {
		if contextx.IsCancelled(ctx) {
			return nil, ctx.Err()
		}

		used := map[Coord]bool{king: true}
		cur := make(Board, rules.SlotCount())

		enumerateRuns(runs, 0, king, squares, used, cur, allowCaptures, wkIdx, func(board Board) {
			canon := Canonicalize(board, runs)
			if !Legal(canon, wkIdx) {
				return
			}
			s := State{AbsKing: king, Board: canon}
			key := s.Key()
			if _, dup := u.index[key]; dup {
				return
			}
			u.index[key] = len(u.states)
			u.states = append(u.states, s)
		})
	}

	u.attacked = make([]bool, len(u.states))
	kinds := rules.Kinds()
	for i, s := range u.states {
		if contextx.IsCancelled(ctx) {
			return nil, ctx.Err()
		}
		u.attacked[i] = IsAttacked(s.Board, kinds)
	}

	if err := u.buildAdjacency(ctx); err != nil {
		return nil, err
	}

	return u, nil
}

// Len returns the number of states in the universe (|U|).
func (u *Universe) Len() int { return len(u.states) }

// State returns the i'th state in enumeration order.
func (u *Universe) State(i int) State { return u.states[i] }

// IndexOf returns the universe index of s, or (-1, false) if s is not a
// member (an escape).
func (u *Universe) IndexOf(s State) (int, bool) {
	i, ok := u.index[s.Key()]
	if !ok {
		return -1, false
	}
	return i, true
}

// Attacked reports whether state i is attacked (§4.6).
func (u *Universe) Attacked(i int) bool { return u.attacked[i] }

// IsCheckmate reports whether state i is a terminal checkmate: attacked and
// with zero black successors of any kind.
func (u *Universe) IsCheckmate(i int) bool {
	return u.attacked[i] && u.blackMoveCount[i] == 0
}

// BlackEscapes reports whether state i has at least one black successor
// that leaves the universe.
func (u *Universe) BlackEscapes(i int) bool { return u.blackEsc[i] }

// BlackIn returns the deduped in-universe black successors of state i.
func (u *Universe) BlackIn(i int) []int { return u.blackIn[i] }

// WhiteIn returns the deduped in-universe white successors of state i.
func (u *Universe) WhiteIn(i int) []int { return u.whiteIn[i] }

// WhiteMoveCount returns the total number of white moves from state i,
// in-universe or not (zero iff white has no piece to move and no pass).
func (u *Universe) WhiteMoveCount(i int) int { return u.whiteMoveCount[i] }

// Rules returns the Rules this universe was built from.
func (u *Universe) Rules() Rules { return u.rules }

// absSquares returns the (2b+1)^2 absolute squares in row-major order.
func absSquares(b int) []Coord {
	out := make([]Coord, 0, (2*b+1)*(2*b+1))
	for x := -b; x <= b; x++ {
		for y := -b; y <= b; y++ {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}

// enumerateRuns recursively places each identical run's pieces, tracking
// used absolute squares across the recursion via push/pop discipline (no
// shared mutable state survives a call per spec.md §9).
func enumerateRuns(runs []Run, runIdx int, king Coord, squares []Coord, used map[Coord]bool, cur Board, allowCaptures bool, wkIdx int, emit func(Board)) {
	if runIdx == len(runs) {
		rel := cur.Clone()
		for i, s := range rel {
			if s.Present {
				rel[i] = Slot{Coord: s.Coord.Sub(king), Present: true}
			}
		}
		emit(rel)
		return
	}

	r := runs[runIdx]
	runLen := r.Len()

	minK := 0
	if !allowCaptures {
		minK = runLen
	}

	isWhiteKingRun := wkIdx >= 0 && r.Start == wkIdx
	candidates := candidateSquares(king, squares, used, isWhiteKingRun)

	for k := minK; k <= runLen; k++ {
		noneCount := runLen - k
		combinations(candidates, k, func(chosen []Coord) {
			for _, c := range chosen {
				used[c] = true
			}

			sorted := append([]Coord(nil), chosen...)
			slices.SortFunc(sorted, func(a, b Coord) int {
				switch {
				case a.Less(b):
					return -1
				case b.Less(a):
					return 1
				default:
					return 0
				}
			})

			for offset := 0; offset < runLen; offset++ {
				idx := r.Start + offset
				if offset < noneCount {
					cur[idx] = Slot{}
				} else {
					cur[idx] = Slot{Coord: sorted[offset-noneCount], Present: true}
				}
			}

			enumerateRuns(runs, runIdx+1, king, squares, used, cur, allowCaptures, wkIdx, emit)

			for _, c := range chosen {
				delete(used, c)
			}
		})
	}
}

// candidateSquares lists the absolute squares a run's pieces may occupy:
// unused, and (for the white-king run) not adjacent to the black king
// (§4.5 "pruned").
func candidateSquares(king Coord, squares []Coord, used map[Coord]bool, isWhiteKingRun bool) []Coord {
	out := make([]Coord, 0, len(squares))
	for _, c := range squares {
		if used[c] {
			continue
		}
		if isWhiteKingRun && c.Sub(king).Chebyshev() <= 1 {
			continue
		}
		out = append(out, c)
	}
	return out
}

// combinations calls fn once per k-combination of items, iterating in
// lexicographic order of the input slice (§4.5 determinism).
func combinations(items []Coord, k int, fn func(chosen []Coord)) {
	n := len(items)
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		fn(nil)
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		chosen := make([]Coord, k)
		for i, v := range idx {
			chosen[i] = items[v]
		}
		fn(chosen)

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
