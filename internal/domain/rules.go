package domain

import "sync"

// Position is a (row, col) coordinate on the board.
type Position struct {
	Row int
	Col int
}

// Line is a window of ToWin collinear positions.
type Line [ToWin]Position

var directions = [][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{-1, 1}, // diagonal /
}

type dims struct{ rows, cols int }

var (
	linesMu    sync.RWMutex
	linesCache = map[dims][]Line{}
)

// Lines returns every window of four collinear cells on a rows x cols
// board. The result is shared and must not be modified.
func Lines(rows, cols int) []Line {
	key := dims{rows, cols}

	linesMu.RLock()
	lines, ok := linesCache[key]
	linesMu.RUnlock()
	if ok {
		return lines
	}

	lines = buildLines(rows, cols)

	linesMu.Lock()
	linesCache[key] = lines
	linesMu.Unlock()
	return lines
}

func buildLines(rows, cols int) []Line {
	var lines []Line
	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				endRow := row + dRow*(ToWin-1)
				endCol := col + dCol*(ToWin-1)
				if endRow < 0 || endRow >= rows || endCol < 0 || endCol >= cols {
					continue
				}
				var line Line
				for i := 0; i < ToWin; i++ {
					line[i] = Position{Row: row + dRow*i, Col: col + dCol*i}
				}
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// Winner returns the mark that owns a four-in-a-row, or Empty.
func Winner(b *Board) Cell {
	for _, line := range Lines(b.Rows, b.Cols) {
		first := b.Grid[line[0].Row][line[0].Col]
		if first == Empty {
			continue
		}
		won := true
		for _, p := range line[1:] {
			if b.Grid[p.Row][p.Col] != first {
				won = false
				break
			}
		}
		if won {
			return first
		}
	}
	return Empty
}

// IsGameOver reports whether any four-in-a-row exists. A full board
// without one is not reported here.
func IsGameOver(b *Board) bool {
	return Winner(b) != Empty
}
