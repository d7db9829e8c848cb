package bot

import (
	"math"

	"github.com/showai/connect4-engine/internal/domain"
)

// SearchDepth is the number of plies searched below each candidate move.
const SearchDepth = 5

// Engine picks the AI's column. The zero value searches at SearchDepth;
// Depth can only lower it.
type Engine struct {
	Depth int
}

func (e Engine) depth() int {
	if e.Depth <= 0 || e.Depth > SearchDepth {
		return SearchDepth
	}
	return e.Depth
}

// BestMove builds a board from a flat snapshot and returns the column the
// AI should play. ok is false when every column is full.
func BestMove(cells []domain.Cell, rows, cols int) (col int, ok bool, err error) {
	return Engine{}.BestMove(cells, rows, cols)
}

func (e Engine) BestMove(cells []domain.Cell, rows, cols int) (int, bool, error) {
	board, err := domain.NewBoardFromCells(cells, rows, cols)
	if err != nil {
		return domain.NoMove, false, err
	}
	col, ok := e.FindBestMove(board)
	return col, ok, nil
}

// FindBestMove tries every legal column in ascending order and keeps the
// first one with the strictly highest minimax score. The board is mutated
// during the search and restored before returning.
func (e Engine) FindBestMove(b *domain.Board) (int, bool) {
	bestCol := domain.NoMove
	bestScore := math.MinInt

	for col := 0; col < b.Cols; col++ {
		row := b.LowestEmptyRow(col)
		if row < 0 {
			continue
		}

		b.Grid[row][col] = domain.AiMark
		score := minimax(b, e.depth(), false, math.MinInt32, math.MaxInt32)
		b.Clear(row, col)

		if score > bestScore {
			bestScore = score
			bestCol = col
		}
	}

	return bestCol, bestCol != domain.NoMove
}

// FindBestMove runs the default engine on b.
func FindBestMove(b *domain.Board) (int, bool) {
	return Engine{}.FindBestMove(b)
}

// ScoreMoves returns the minimax score of every legal column, keyed by
// column. Useful for inspecting why a move was chosen.
func (e Engine) ScoreMoves(b *domain.Board) map[int]int {
	scores := make(map[int]int, b.Cols)
	for col := 0; col < b.Cols; col++ {
		row := b.LowestEmptyRow(col)
		if row < 0 {
			continue
		}
		b.Grid[row][col] = domain.AiMark
		scores[col] = minimax(b, e.depth(), false, math.MinInt32, math.MaxInt32)
		b.Clear(row, col)
	}
	return scores
}
