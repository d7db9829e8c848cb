package bot

import (
	"math"

	"github.com/showai/connect4-engine/internal/domain"
)

// minimax implements the minimax algorithm with alpha-beta pruning.
// Every piece it places is cleared again before it returns, so the board
// is handed back unchanged.
func minimax(b *domain.Board, depth int, isMaximizing bool, alpha, beta int) int {
	// Terminal conditions: wins are scored by the heuristic too
	if depth == 0 || domain.IsGameOver(b) {
		return EvaluateBoard(b)
	}

	searched := false

	if isMaximizing {
		maxEval := math.MinInt32
		for col := 0; col < b.Cols; col++ {
			row := b.LowestEmptyRow(col)
			if row < 0 {
				continue
			}

			b.Grid[row][col] = domain.AiMark
			eval := minimax(b, depth-1, false, alpha, beta)
			b.Clear(row, col)
			searched = true

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break // Beta cutoff
			}
		}
		if !searched {
			return EvaluateBoard(b)
		}
		return maxEval
	}

	minEval := math.MaxInt32
	for col := 0; col < b.Cols; col++ {
		row := b.LowestEmptyRow(col)
		if row < 0 {
			continue
		}

		b.Grid[row][col] = domain.PlayerMark
		eval := minimax(b, depth-1, true, alpha, beta)
		b.Clear(row, col)
		searched = true

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break // Alpha cutoff
		}
	}
	if !searched {
		return EvaluateBoard(b)
	}
	return minEval
}
