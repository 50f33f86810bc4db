package square

// CrossesOrigin reports whether a sliding move from 'from' to 'to' passes
// through the origin (0,0) as an intermediate square (§4.2). Applied as a
// filter on rider moves in addition to the per-step blocking already
// enforced by the piece generators, so that any future rider generator
// that computes destinations without per-step simulation stays correct.
func CrossesOrigin(from, to Coord) bool {
	switch {
	case from.X == 0 && to.X == 0 && from.Y != 0 && to.Y != 0:
		return signInt(from.Y) != signInt(to.Y)
	case from.Y == 0 && to.Y == 0 && from.X != 0 && to.X != 0:
		return signInt(from.X) != signInt(to.X)
	case from.X == from.Y && to.X == to.Y && from.X != 0 && to.X != 0:
		return signInt(from.X) != signInt(to.X)
	case from.X == -from.Y && to.X == -to.Y && from.X != 0 && to.X != 0:
		return signInt(from.X) != signInt(to.X)
	default:
		return false
	}
}

func signInt(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// IsAttacked implements the threat oracle of §4.6: true iff any present
// white piece attacks the origin under the same rider/leaper semantics,
// with riders obeying the same first-occupied-square blocking rule as move
// generation (§4.1) — a piece whose line to the origin is interrupted by
// any other occupied square, friend or foe, does not attack it.
func IsAttacked(b Board, kinds []Kind) bool {
	for i, s := range b {
		if !s.Present {
			continue
		}
		if attacksOrigin(b, i, kinds[i]) {
			return true
		}
	}
	return false
}

func attacksOrigin(b Board, idx int, k Kind) bool {
	from := b[idx].Coord
	switch k {
	case WhiteKing:
		return from.Chebyshev() == 1
	case Knight:
		for _, d := range KnightSteps {
			if from.Add(d) == (Coord{}) {
				return true
			}
		}
		return false
	case Rook:
		return rayAttacksOrigin(b, idx, RookDirections[:])
	case Bishop:
		return rayAttacksOrigin(b, idx, BishopDirections[:])
	case Queen:
		return rayAttacksOrigin(b, idx, RookDirections[:]) || rayAttacksOrigin(b, idx, BishopDirections[:])
	default:
		return false
	}
}

// rayAttacksOrigin reports whether the rider at b[idx] attacks the origin
// along one of dirs, with no other slot blocking the path between them.
func rayAttacksOrigin(b Board, idx int, dirs []Coord) bool {
	from := b[idx].Coord
	for _, d := range dirs {
		if d.X == 0 && d.Y == 0 {
			continue
		}
		if onRay(from, d) {
			return !blockedBeforeOrigin(b, idx, from)
		}
	}
	return false
}

// blockedBeforeOrigin reports whether any slot other than idx sits
// strictly between from and the origin, given from already lies on one of
// the 4 rider axes through the origin.
func blockedBeforeOrigin(b Board, idx int, from Coord) bool {
	step := Coord{X: -signInt(from.X), Y: -signInt(from.Y)}
	cur := from
	for t := 1; t < from.Chebyshev(); t++ {
		cur = cur.Add(step)
		for i, s := range b {
			if i != idx && s.Present && s.Coord == cur {
				return true
			}
		}
	}
	return false
}

// onRay reports whether the origin lies on the ray starting at from and
// extending in direction d (either sense along that line, since a rider
// attacks both forward and not-at-all — the direction vectors already
// enumerate both senses of each axis).
func onRay(from, d Coord) bool {
	if d.X == 0 {
		return from.X == 0 && signInt(from.Y) == -signInt(d.Y)
	}
	if d.Y == 0 {
		return from.Y == 0 && signInt(from.X) == -signInt(d.X)
	}
	// Diagonal: origin - from = -from must be a positive multiple of d.
	if from.X%d.X != 0 {
		return false
	}
	t := -from.X / d.X
	return t > 0 && from.Y+t*d.Y == 0 && from.X+t*d.X == 0
}
