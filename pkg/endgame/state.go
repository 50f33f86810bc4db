package endgame

import "fmt"

// State is the unit of storage and hashing: the black king's absolute
// position plus the king-relative board (§3). Board must already be
// canonical; States are never mutated after construction.
type State struct {
	AbsKing Coord
	Board   Board
}

func (s State) String() string {
	return fmt.Sprintf("{king=%v board=%v}", s.AbsKing, s.Board)
}

// Key renders s into a comparable string suitable for map-based
// deduplication and indexing. Boards are assumed canonical, so no
// re-sorting happens here.
func (s State) Key() string {
	buf := make([]byte, 0, 8+len(s.Board)*10)
	buf = append(buf, []byte(fmt.Sprintf("%d,%d|", s.AbsKing.X, s.AbsKing.Y))...)
	for _, sl := range s.Board {
		if !sl.Present {
			buf = append(buf, '-', ';')
			continue
		}
		buf = append(buf, []byte(fmt.Sprintf("%d,%d;", sl.Coord.X, sl.Coord.Y))...)
	}
	return string(buf)
}

// NewState canonicalizes board against runs and packages it with absKing
// into a State. The caller is responsible for legality checks.
func NewState(absKing Coord, board Board, runs []Run) State {
	return State{AbsKing: absKing, Board: Canonicalize(board, runs)}
}
