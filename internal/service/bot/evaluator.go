package bot

import (
	"github.com/showai/connect4-engine/internal/domain"
)

// Per-line scores. Only the AI's progress and the player's open three are
// scored; player twos and fours contribute nothing.
const (
	SCORE_AI_FOUR      = 100
	SCORE_AI_THREE     = 5
	SCORE_AI_TWO       = 2
	SCORE_PLAYER_THREE = -4
)

// EvaluateBoard sums the score of every window of four collinear cells.
func EvaluateBoard(b *domain.Board) int {
	score := 0
	for _, line := range domain.Lines(b.Rows, b.Cols) {
		score += evaluateLine(b, line)
	}
	return score
}

func evaluateLine(b *domain.Board, line domain.Line) int {
	ai, player, empty := 0, 0, 0
	for _, p := range line {
		switch b.Grid[p.Row][p.Col] {
		case domain.AiMark:
			ai++
		case domain.PlayerMark:
			player++
		default:
			empty++
		}
	}

	switch {
	case ai == 4:
		return SCORE_AI_FOUR
	case ai == 3 && empty == 1:
		return SCORE_AI_THREE
	case ai == 2 && empty == 2:
		return SCORE_AI_TWO
	case player == 3 && empty == 1:
		return SCORE_PLAYER_THREE
	}
	return 0
}
