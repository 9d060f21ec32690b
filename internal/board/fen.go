package board

import (
	"fmt"
	"strconv"
	"strings"

	"chessrules/internal/core"
)

const (
	StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"
)

// ParseFEN reads the piece placement and side to move. Castling, en passant
// and the move counters are accepted but ignored; see Fullmove for the last
// field. A missing side-to-move field means White.
func ParseFEN(fen string) (Board, core.Color, error) {
	var b Board
	parts := strings.Fields(fen)
	if len(parts) == 0 || len(parts) > 6 {
		return b, core.ColorWhite, fmt.Errorf("%w: expected 1 to 6 fields, got %d", core.ErrInvalidFEN, len(parts))
	}

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != 8 {
		return b, core.ColorWhite, fmt.Errorf("%w: expected 8 ranks", core.ErrInvalidFEN)
	}

	for r := 0; r < 8; r++ {
		file := 0
		for _, ch := range ranks[r] {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return b, core.ColorWhite, fmt.Errorf("%w: too many pieces in rank %d", core.ErrInvalidFEN, 8-r)
			}
			p, ok := core.PieceFromRune(ch)
			if !ok {
				return b, core.ColorWhite, fmt.Errorf("%w: unknown piece %q", core.ErrInvalidFEN, ch)
			}
			b.Set(SquareAt(r, file), p)
			file++
		}
		if file != 8 {
			return b, core.ColorWhite, fmt.Errorf("%w: rank %d has %d files", core.ErrInvalidFEN, 8-r, file)
		}
	}

	turn := core.ColorWhite
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
		case "b":
			turn = core.ColorBlack
		default:
			return b, core.ColorWhite, fmt.Errorf("%w: turn must be 'w' or 'b'", core.ErrInvalidFEN)
		}
	}

	return b, turn, nil
}

// Fullmove returns the fullmove number of a FEN string, or 1 when the field
// is absent.
func Fullmove(fen string) (int, error) {
	parts := strings.Fields(fen)
	if len(parts) < 6 {
		return 1, nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return 1, fmt.Errorf("%w: fullmove number %q", core.ErrInvalidFEN, parts[5])
	}
	return n, nil
}

// Placement renders the piece-placement field of a FEN string.
func (b *Board) Placement() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			p, ok := b.PieceAt(SquareAt(r, f))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(p.Rune())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r < 7 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
