package board

import (
	"fmt"

	"chessrules/internal/core"
)

// Square indexes the board in [0,64). Row 0 holds rank 8, column 0 file a.
type Square int

const NumSquares = 64

func SquareAt(row, col int) Square {
	return Square(row*8 + col)
}

func (s Square) Row() int {
	return int(s) / 8
}

func (s Square) Col() int {
	return int(s) % 8
}

func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// String renders the square as file letter plus rank digit, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+s.Col(), '8'-s.Row())
}

// ParseSquare converts two-character notation to a square. The file letter
// may be upper or lower case.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q must be two characters", core.ErrInvalidNotation, s)
	}
	file, rank := s[0]|0x20, s[1]
	if file < 'a' || file > 'h' {
		return 0, fmt.Errorf("%w: file %q out of range a-h", core.ErrInvalidNotation, s[0])
	}
	if rank < '1' || rank > '8' {
		return 0, fmt.Errorf("%w: rank %q out of range 1-8", core.ErrInvalidNotation, s[1])
	}
	return SquareAt(int('8'-rank), int(file-'a')), nil
}

// Notation converts a list of squares to their string form, keeping order.
func Notation(squares []Square) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}
