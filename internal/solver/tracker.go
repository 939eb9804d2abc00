package solver

// tracker holds per-row, per-column and per-block digit occupancy so the
// search can answer "is this digit legal here" in O(1). It is rebuilt from
// the board at the start of every solve and never outlives one; it is a
// disposable cache of a board snapshot, not authoritative state.
type tracker struct {
	rows   [9][10]bool
	cols   [9][10]bool
	blocks [9][10]bool
}

func blockOf(r, c int) int { return (r/3)*3 + c/3 }

func newTracker(g *[9][9]uint8) *tracker {
	t := &tracker{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				t.place(r, c, v)
			}
		}
	}
	return t
}

// canPlace expects r, c in 0..8 and v in 1..9; callers guarantee range.
func (t *tracker) canPlace(r, c int, v uint8) bool {
	return !t.rows[r][v] && !t.cols[c][v] && !t.blocks[blockOf(r, c)][v]
}

func (t *tracker) place(r, c int, v uint8) {
	t.rows[r][v] = true
	t.cols[c][v] = true
	t.blocks[blockOf(r, c)][v] = true
}

func (t *tracker) remove(r, c int, v uint8) {
	t.rows[r][v] = false
	t.cols[c][v] = false
	t.blocks[blockOf(r, c)][v] = false
}
