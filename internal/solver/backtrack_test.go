package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudokugame/internal/domain"
)

// A classic, solvable Sudoku (0 = empty).
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// Its unique solution.
var sampleSolved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// requireLatinSquare checks that every row, column and 3x3 block holds the
// digits 1..9 exactly once.
func requireLatinSquare(t *testing.T, g [9][9]uint8) {
	t.Helper()
	for r := 0; r < 9; r++ {
		var seen [10]bool
		for c := 0; c < 9; c++ {
			v := g[r][c]
			require.True(t, v >= 1 && v <= 9, "cell (%d,%d) holds %d", r, c, v)
			require.False(t, seen[v], "row %d repeats %d", r, v)
			seen[v] = true
		}
	}
	for c := 0; c < 9; c++ {
		var seen [10]bool
		for r := 0; r < 9; r++ {
			require.False(t, seen[g[r][c]], "col %d repeats %d", c, g[r][c])
			seen[g[r][c]] = true
		}
	}
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			var seen [10]bool
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					v := g[br*3+dr][bc*3+dc]
					require.False(t, seen[v], "block (%d,%d) repeats %d", br, bc, v)
					seen[v] = true
				}
			}
		}
	}
}

// TestSolveClassicBoard verifies the classic puzzle solves to its exact
// known solution.
func TestSolveClassicBoard(t *testing.T) {
	in := &domain.Board{Values: sample}
	out, st, err := NewBacktrackingSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, sampleSolved, out.Values)
	assert.Equal(t, sample, in.Values, "Solve must not mutate its input")
	requireLatinSquare(t, out.Values)
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

// TestSolveInPlaceSuccess verifies placements stay in the board on success
// and the givens are untouched.
func TestSolveInPlaceSuccess(t *testing.T) {
	b := &domain.Board{Values: sample}
	ok, _ := NewBacktrackingSolver().SolveInPlace(context.Background(), b)
	require.True(t, ok)
	assert.Equal(t, sampleSolved, b.Values)
}

// TestSolveUnsolvableBacksOut verifies a failed search restores the board
// exactly: every placement has a matching removal on the failing path.
func TestSolveUnsolvableBacksOut(t *testing.T) {
	b := &domain.Board{}
	// Two 5s in row 0 make the board unsolvable from the start.
	b.Values[0][0] = 5
	b.Values[0][8] = 5
	before := *b

	ok, _ := NewBacktrackingSolver().SolveInPlace(context.Background(), b)
	require.False(t, ok)
	assert.Equal(t, before, *b, "board must be restored after a failed solve")
}

// TestSolveDeterministic verifies two solves of independent copies of the
// same board yield identical grids (row-major, ascending-digit order).
func TestSolveDeterministic(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx := context.Background()

	// A sparse board with many solutions still picks the same one each time.
	sparse := &domain.Board{}
	sparse.Values[0][0] = 1
	sparse.Values[4][4] = 5

	a, _, err := s.Solve(ctx, sparse)
	require.NoError(t, err)
	b, _, err := s.Solve(ctx, sparse)
	require.NoError(t, err)
	assert.Equal(t, a.Values, b.Values)
	requireLatinSquare(t, a.Values)
}

// TestSolveCanceledContext verifies cancellation reads as failure with the
// board fully backed out.
func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := &domain.Board{Values: sample}
	ok, _ := NewBacktrackingSolver().SolveInPlace(ctx, b)
	require.False(t, ok)
	assert.Equal(t, sample, b.Values)
}

// TestSolveRepeatedCalls verifies the tracker is rebuilt per call: solving a
// different board right after another leaves no residual state.
func TestSolveRepeatedCalls(t *testing.T) {
	s := NewBacktrackingSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, _, err := s.Solve(ctx, &domain.Board{Values: sample})
	require.NoError(t, err)

	other := &domain.Board{}
	other.Values[0][0] = 9
	out, _, err := s.Solve(ctx, other)
	require.NoError(t, err)
	requireLatinSquare(t, out.Values)
	assert.Equal(t, uint8(9), out.Values[0][0])
}

// TestTrackerPlaceRemove exercises the O(1) occupancy toggles.
func TestTrackerPlaceRemove(t *testing.T) {
	var g [9][9]uint8
	g[0][0] = 5
	tr := newTracker(&g)

	assert.False(t, tr.canPlace(0, 8, 5), "same row")
	assert.False(t, tr.canPlace(8, 0, 5), "same column")
	assert.False(t, tr.canPlace(2, 2, 5), "same block")
	assert.True(t, tr.canPlace(1, 3, 5))
	assert.True(t, tr.canPlace(0, 8, 6))

	tr.place(0, 8, 6)
	assert.False(t, tr.canPlace(5, 8, 6))
	tr.remove(0, 8, 6)
	assert.True(t, tr.canPlace(5, 8, 6))

	assert.Equal(t, 4, blockOf(3, 5))
	assert.Equal(t, 8, blockOf(8, 8))
}
