package board

import (
	"fmt"
	"strings"

	"chessrules/internal/core"
)

// slot is one square of the board: either empty or holding a piece.
type slot struct {
	piece    core.Piece
	occupied bool
}

// Board is a passive 64-square store. It is a value type: assigning a Board
// copies every square, and two boards compare equal with ==.
type Board struct {
	squares [NumSquares]slot
}

var backRank = [8]core.PieceType{
	core.Rook, core.Knight, core.Bishop, core.Queen,
	core.King, core.Bishop, core.Knight, core.Rook,
}

// Standard returns the usual starting position with Black on rows 0-1.
func Standard() Board {
	var b Board
	for col := 0; col < 8; col++ {
		b.Set(SquareAt(0, col), core.Piece{Color: core.ColorBlack, Type: backRank[col]})
		b.Set(SquareAt(1, col), core.Piece{Color: core.ColorBlack, Type: core.Pawn})
		b.Set(SquareAt(6, col), core.Piece{Color: core.ColorWhite, Type: core.Pawn})
		b.Set(SquareAt(7, col), core.Piece{Color: core.ColorWhite, Type: backRank[col]})
	}
	return b
}

func (b *Board) PieceAt(sq Square) (core.Piece, bool) {
	s := b.squares[sq]
	return s.piece, s.occupied
}

func (b *Board) Occupied(sq Square) bool {
	return b.squares[sq].occupied
}

func (b *Board) Set(sq Square, p core.Piece) {
	b.squares[sq] = slot{piece: p, occupied: true}
}

func (b *Board) Clear(sq Square) {
	b.squares[sq] = slot{}
}

// Find returns the first square holding p.
func (b *Board) Find(p core.Piece) (Square, bool) {
	for sq := Square(0); sq < NumSquares; sq++ {
		if s := b.squares[sq]; s.occupied && s.piece == p {
			return sq, true
		}
	}
	return 0, false
}

// Undo restores the two squares touched by Apply.
type Undo struct {
	From, To Square
	moved    slot
	captured slot
}

// Captured returns the piece that stood on the destination before the move.
func (u Undo) Captured() (core.Piece, bool) {
	return u.captured.piece, u.captured.occupied
}

// Apply vacates from and places its occupant on to, overwriting whatever was
// there. The returned Undo reverses exactly this change.
func (b *Board) Apply(from, to Square) Undo {
	u := Undo{From: from, To: to, moved: b.squares[from], captured: b.squares[to]}
	b.squares[to] = b.squares[from]
	b.squares[from] = slot{}
	return u
}

func (b *Board) Revert(u Undo) {
	b.squares[u.To] = u.captured
	b.squares[u.From] = u.moved
}

// ToASCII creates an ASCII representation of the board
func (b *Board) ToASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")

	for r := 0; r < 8; r++ {
		sb.WriteString(fmt.Sprintf("%d ", 8-r))
		for f := 0; f < 8; f++ {
			if p, ok := b.PieceAt(SquareAt(r, f)); ok {
				sb.WriteString(fmt.Sprintf("%c ", p.Rune()))
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", 8-r))
	}
	sb.WriteString("  a b c d e f g h")

	return sb.String()
}
