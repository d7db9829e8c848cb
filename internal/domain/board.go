package domain

import "fmt"

// Board is a rows x cols grid. Row 0 is the top, Rows-1 the bottom.
type Board struct {
	Rows int
	Cols int
	Grid [][]Cell
}

func NewBoard(rows, cols int) *Board {
	grid := make([][]Cell, rows)
	for i := range grid {
		grid[i] = make([]Cell, cols)
	}
	return &Board{Rows: rows, Cols: cols, Grid: grid}
}

// NewBoardFromCells reshapes a flat row-major snapshot into a board,
// taking cols consecutive cells per row. The input is copied.
func NewBoardFromCells(cells []Cell, rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidBoard, rows, cols)
	}
	if rows > MaxRows || cols > MaxCols {
		return nil, fmt.Errorf("%w: dimensions %dx%d exceed %dx%d", ErrInvalidBoard, rows, cols, MaxRows, MaxCols)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: got %d cells, want %d (%dx%d)", ErrInvalidBoard, len(cells), rows*cols, rows, cols)
	}

	board := NewBoard(rows, cols)
	for i, cell := range cells {
		if !cell.IsValid() {
			return nil, fmt.Errorf("%w: cell %d has unknown mark %d", ErrInvalidBoard, i, int(cell))
		}
		board.Grid[i/cols][i%cols] = cell
	}
	return board, nil
}

// ParseCells converts wire integers into cells.
func ParseCells(values []int) ([]Cell, error) {
	cells := make([]Cell, len(values))
	for i, v := range values {
		c := Cell(v)
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: cell %d has unknown mark %d", ErrInvalidBoard, i, v)
		}
		cells[i] = c
	}
	return cells, nil
}

// Cells flattens the board back into row-major order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, 0, b.Rows*b.Cols)
	for _, row := range b.Grid {
		cells = append(cells, row...)
	}
	return cells
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	clone := NewBoard(b.Rows, b.Cols)
	for i := range b.Grid {
		copy(clone.Grid[i], b.Grid[i])
	}
	return clone
}

func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// LowestEmptyRow returns the landing row for a piece dropped in col,
// or -1 when the column is full.
func (b *Board) LowestEmptyRow(col int) int {
	if col < 0 || col >= b.Cols {
		return -1
	}
	for row := b.Rows - 1; row >= 0; row-- {
		if b.Grid[row][col] == Empty {
			return row
		}
	}
	return -1
}

func (b *Board) IsValidMove(col int) bool {
	if col < 0 || col >= b.Cols {
		return false
	}
	// here Grid[0] represents the top row
	return b.Grid[0][col] == Empty
}

// ValidMoves lists the playable columns in ascending order.
func (b *Board) ValidMoves() []int {
	moves := make([]int, 0, b.Cols)
	for col := 0; col < b.Cols; col++ {
		if b.IsValidMove(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// Drop places mark at the landing row of col and returns that row.
func (b *Board) Drop(col int, mark Cell) (int, error) {
	if col < 0 || col >= b.Cols {
		return -1, ErrInvalidColumn
	}
	row := b.LowestEmptyRow(col)
	if row < 0 {
		return -1, ErrColumnFull
	}
	b.Grid[row][col] = mark
	return row, nil
}

// Clear reverts a cell placed by Drop.
func (b *Board) Clear(row, col int) {
	b.Grid[row][col] = Empty
}

func (b *Board) IsFull() bool {
	for col := 0; col < b.Cols; col++ {
		if b.Grid[0][col] == Empty {
			return false
		}
	}
	return true
}

// Count returns how many cells hold mark.
func (b *Board) Count(mark Cell) int {
	n := 0
	for _, row := range b.Grid {
		for _, c := range row {
			if c == mark {
				n++
			}
		}
	}
	return n
}
