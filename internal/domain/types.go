package domain

// Board holds current values and which cells are fixed givens.
// A value of 0 means the cell is empty; 1..9 are placed digits.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// Full reports whether every cell holds a digit.
func (b *Board) Full() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// MarkGivens sets the fixed mask from the current values: every non-empty
// cell becomes a given. Called once at puzzle-load time; the mask is never
// recomputed afterwards.
func (b *Board) MarkGivens() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Fixed[r][c] = b.Values[r][c] != 0
		}
	}
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellHint is one revealed cell: its position and its value in the solution.
type CellHint struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Value uint8 `json:"value"`
}

// Comparison classifies every cell of a live board against the solved
// reference. Accuracy is correct/filled as a percentage, rounded to two
// decimals; it is 0 when nothing is filled.
type Comparison struct {
	Correct   []CellCoord `json:"correct"`
	Incorrect []CellCoord `json:"incorrect"`
	Empty     []CellCoord `json:"empty"`
	Accuracy  float64     `json:"accuracy"`
}

// Progress aggregates completion and validity counters for reporting.
// Filled/correct/incorrect cover non-given cells only; OriginalCells counts
// the givens.
type Progress struct {
	TotalCells     int     `json:"totalCells"`
	OriginalCells  int     `json:"originalCells"`
	FilledCells    int     `json:"filledCells"`
	CorrectCells   int     `json:"correctCells"`
	IncorrectCells int     `json:"incorrectCells"`
	Accuracy       float64 `json:"accuracy"`
	IsComplete     bool    `json:"isComplete"`
	IsValid        bool    `json:"isValid"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
