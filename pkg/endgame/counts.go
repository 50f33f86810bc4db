package endgame

// Counts is the aggregate result of the §4.9 counts pass plus the three
// fixpoint set sizes, published per scenario.
type Counts struct {
	UniverseStates   int
	BlackMovesIn     int
	BlackMovesEscape int
	WhiteMovesIn     int
	WhiteMovesEscape int
	Checkmates       int
	Trap             int
	Tempo            int
	Mate             int
}

// BaseCounts computes the §4.9 pass over the already-built adjacency:
// universe size, in/escape move totals (multiset — duplicate destinations
// count once per generated move, not once per distinct state) and terminal
// checkmates. Trap/Tempo/Mate are left zero; the caller fills them in from
// the fixpoint package.
func (u *Universe) BaseCounts() Counts {
	c := Counts{UniverseStates: u.Len()}

	for i := range u.states {
		c.BlackMovesIn += u.blackMovesIn[i]
		c.BlackMovesEscape += u.blackMovesEscape[i]
		c.WhiteMovesIn += u.whiteMovesIn[i]
		c.WhiteMovesEscape += u.whiteMovesEscape[i]

		if u.IsCheckmate(i) {
			c.Checkmates++
		}
	}
	return c
}
