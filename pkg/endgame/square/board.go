package square

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Kind is the closed set of attacker piece kinds. A fixed small enum,
// dispatched through an array of successor functions rather than an
// interface or type switch (spec.md §9: "avoiding dynamic lookup per move").
type Kind uint8

const (
	WhiteKing Kind = iota
	Queen
	Rook
	Bishop
	Knight
)

func (k Kind) String() string {
	switch k {
	case WhiteKing:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	default:
		return "?"
	}
}

// Slot is one inventory entry: either a king-relative coordinate, or absent
// (the piece has been captured).
type Slot struct {
	Coord   Coord
	Present bool
}

var absentSlot = Slot{}

// Board is the king-relative placement of every inventory slot, in the
// canonical piece order fixed by Inventory (§3: optional white king first,
// then all queens, rooks, bishops, knights).
type Board []Slot

// Clone returns an independent copy of b.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

func (b Board) String() string {
	return fmt.Sprintf("%v", []Slot(b))
}

func (s Slot) String() string {
	if !s.Present {
		return "-"
	}
	return s.Coord.String()
}

// Run is a maximal contiguous range of slots holding pieces of the same
// kind (§3 "Identical runs"). Slots within a run are interchangeable.
type Run struct {
	Kind       Kind
	Start, End int // [Start, End)
}

func (r Run) Len() int {
	return r.End - r.Start
}

// Canonicalize rewrites each run in b to its unique representative: absent
// slots first, then present coordinates in ascending (x,y) order (§4.3).
// Idempotent: Canonicalize(Canonicalize(b, runs), runs) == Canonicalize(b, runs).
func Canonicalize(b Board, runs []Run) Board {
	out := b.Clone()
	for _, r := range runs {
		seg := out[r.Start:r.End]

		present := make([]Coord, 0, len(seg))
		for _, s := range seg {
			if s.Present {
				present = append(present, s.Coord)
			}
		}
		slices.SortFunc(present, func(a, b Coord) int {
			switch {
			case a.Less(b):
				return -1
			case b.Less(a):
				return 1
			default:
				return 0
			}
		})

		noneCount := len(seg) - len(present)
		for i := range seg {
			if i < noneCount {
				seg[i] = absentSlot
			} else {
				seg[i] = Slot{Coord: present[i-noneCount], Present: true}
			}
		}
	}
	return out
}

// Legal reports whether b satisfies §4.4: the origin never appears among
// present coordinates, no two present slots coincide, and (if wkIdx >= 0)
// the white king slot, if present, is at Chebyshev distance >= 2.
func Legal(b Board, wkIdx int) bool {
	seen := make(map[Coord]struct{}, len(b))
	for _, s := range b {
		if !s.Present {
			continue
		}
		if s.Coord == (Coord{}) {
			return false
		}
		if _, dup := seen[s.Coord]; dup {
			return false
		}
		seen[s.Coord] = struct{}{}
	}
	if wkIdx >= 0 && wkIdx < len(b) {
		if k := b[wkIdx]; k.Present && k.Coord.Chebyshev() < 2 {
			return false
		}
	}
	return true
}
