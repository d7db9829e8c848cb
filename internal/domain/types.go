package domain

// Cell is the content of a single board position.
type Cell int

const (
	Empty      Cell = 0
	PlayerMark Cell = 1
	AiMark     Cell = 2
)

func (c Cell) IsValid() bool {
	return c == Empty || c == PlayerMark || c == AiMark
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case PlayerMark:
		return "player"
	case AiMark:
		return "ai"
	default:
		return "invalid"
	}
}

// Opponent returns the other mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerMark:
		return AiMark
	case AiMark:
		return PlayerMark
	default:
		return Empty
	}
}

const (
	DefaultRows = 6
	DefaultCols = 7
	ToWin       = 4

	// Largest board NewBoardFromCells accepts.
	MaxRows = 10
	MaxCols = 10

	// NoMove is returned in place of a column when every column is full.
	NoMove = -1
)

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidBoard  Error = "invalid board"
	ErrInvalidColumn Error = "invalid column"
	ErrColumnFull    Error = "column is full"
)
