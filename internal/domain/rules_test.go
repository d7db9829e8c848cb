package domain

import "testing"

func TestLinesCountOnStandardBoard(t *testing.T) {
	// 24 horizontal + 21 vertical + 12 + 12 diagonal
	if got := len(Lines(DefaultRows, DefaultCols)); got != 69 {
		t.Fatalf("expected 69 lines on a 6x7 board, got %d", got)
	}
	if got := len(Lines(3, 3)); got != 0 {
		t.Fatalf("expected no lines on a 3x3 board, got %d", got)
	}
}

func TestIsGameOverDetectsEachOrientation(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		owner Cell
	}{
		{"horizontal", []string{
			".......",
			".......",
			".......",
			".......",
			".......",
			"..PPPP.",
		}, PlayerMark},
		{"vertical", []string{
			".......",
			".......",
			"......A",
			"......A",
			"......A",
			"......A",
		}, AiMark},
		{"diagonal down-right", []string{
			"A......",
			".A.....",
			"..A....",
			"...A...",
			".......",
			".......",
		}, AiMark},
		{"diagonal up-right", []string{
			".......",
			".......",
			"......P",
			".....P.",
			"....P..",
			"...P...",
		}, PlayerMark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromRows(t, tt.rows...)
			if !IsGameOver(b) {
				t.Fatalf("expected game over")
			}
			if w := Winner(b); w != tt.owner {
				t.Fatalf("expected winner %v, got %v", tt.owner, w)
			}
		})
	}
}

func TestIsGameOverFalseWithoutFour(t *testing.T) {
	tests := map[string][]string{
		"empty": {
			".......",
			".......",
			".......",
			".......",
			".......",
			".......",
		},
		"mixed line": {
			".......",
			".......",
			".......",
			".......",
			".......",
			"PPPAPPP",
		},
		"three in a row": {
			".......",
			".......",
			".......",
			"A......",
			"A......",
			"A......",
		},
		"full draw": {
			"PPAAPPA",
			"AAPPAAP",
			"PPAAPPA",
			"AAPPAAP",
			"PPAAPPA",
			"AAPPAAP",
		},
	}

	for name, rows := range tests {
		t.Run(name, func(t *testing.T) {
			b := boardFromRows(t, rows...)
			if IsGameOver(b) {
				t.Fatalf("expected no four-in-a-row")
			}
		})
	}
}
