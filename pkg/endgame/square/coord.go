// Package square implements pure board geometry shared by the endgame and
// piece packages: coordinates, boards, canonicalization, legality and the
// threat oracle. It has no notion of a universe or a solver and imports
// nothing from its siblings, which is what lets piece depend on it without
// creating a cycle back through endgame.
package square

import "fmt"

// Coord is a signed board coordinate, either absolute (measured from the
// fixed origin) or king-relative (measured from the black king), depending
// on context.
type Coord struct {
	X, Y int
}

// Add returns c+d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}

// Sub returns c-d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{c.X - d.X, c.Y - d.Y}
}

// Chebyshev returns max(|x|, |y|), the king-move distance norm used
// throughout (§3).
func (c Coord) Chebyshev() int {
	return maxInt(absInt(c.X), absInt(c.Y))
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Less orders coordinates lexicographically by (X, Y), used when
// canonicalizing identical runs (§4.3).
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// KingSteps are the 8 unit king-distance displacements, row-major by (dx,dy)
// as iterated by the reference implementation.
var KingSteps = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// KnightSteps are the 8 L-shaped leaper displacements.
var KnightSteps = [8]Coord{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// RookDirections and BishopDirections are the rider axes used by
// queen/rook/bishop generation and by the threat oracle.
var (
	RookDirections   = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	BishopDirections = [4]Coord{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// QueenDirections is the union of rook and bishop rays.
func QueenDirections() []Coord {
	out := make([]Coord, 0, 8)
	out = append(out, RookDirections[:]...)
	out = append(out, BishopDirections[:]...)
	return out
}
