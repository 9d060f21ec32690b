// Package movegen produces pseudo-legal destinations for a single piece:
// squares the piece can reach given board edges, blockers and captures,
// without asking whether its own king is left exposed.
package movegen

import (
	"chessrules/internal/board"
	"chessrules/internal/core"
)

// offset is a (file, row) displacement. Positive rows point towards rank 1.
type offset struct {
	dCol, dRow int
}

var (
	knightOffsets = []offset{
		{-1, -2}, {1, -2},
		{-2, -1}, {2, -1},
		{-2, 1}, {2, 1},
		{-1, 2}, {1, 2},
	}

	kingOffsets = []offset{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}

	// up, down, left, right
	rookDirections = []offset{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	// up-left, up-right, down-left, down-right
	bishopDirections = []offset{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

const maxRay = 7

// PseudoLegal returns the destinations of the piece on from, in generation
// order. ok is false when from is empty.
func PseudoLegal(b *board.Board, from board.Square) (moves []board.Square, ok bool) {
	p, ok := b.PieceAt(from)
	if !ok {
		return nil, false
	}

	moves = make([]board.Square, 0, 16)
	switch p.Type {
	case core.Pawn:
		moves = pawnMoves(b, from, p.Color, moves)
	case core.Knight:
		moves = leaps(b, from, knightOffsets, moves)
	case core.King:
		moves = leaps(b, from, kingOffsets, moves)
	case core.Rook:
		moves = rays(b, from, rookDirections, moves)
	case core.Bishop:
		moves = rays(b, from, bishopDirections, moves)
	case core.Queen:
		moves = rays(b, from, rookDirections, moves)
		moves = rays(b, from, bishopDirections, moves)
	}
	return moves, true
}

// Attacks reports whether the piece on from can reach target.
func Attacks(b *board.Board, from, target board.Square) bool {
	moves, ok := PseudoLegal(b, from)
	if !ok {
		return false
	}
	for _, sq := range moves {
		if sq == target {
			return true
		}
	}
	return false
}

// leap resolves a displacement from a square. It fails when the result falls
// off the board, wraps around a board edge, or lands on a piece of the mover's
// own color.
func leap(b *board.Board, from board.Square, o offset) (board.Square, bool) {
	row, col := from.Row()+o.dRow, from.Col()+o.dCol
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return 0, false
	}

	to := board.SquareAt(row, col)
	if target, occupied := b.PieceAt(to); occupied {
		mover, _ := b.PieceAt(from)
		if target.Color == mover.Color {
			return 0, false
		}
	}
	return to, true
}

func leaps(b *board.Board, from board.Square, offsets []offset, moves []board.Square) []board.Square {
	for _, o := range offsets {
		if to, ok := leap(b, from, o); ok {
			moves = append(moves, to)
		}
	}
	return moves
}

// rays marches outwards along each direction, stopping after the first
// occupied square so an enemy blocker is included and nothing beyond it.
func rays(b *board.Board, from board.Square, dirs []offset, moves []board.Square) []board.Square {
	for _, d := range dirs {
		for i := 1; i <= maxRay; i++ {
			to, ok := leap(b, from, offset{d.dCol * i, d.dRow * i})
			if !ok {
				break
			}
			moves = append(moves, to)
			if b.Occupied(to) {
				break
			}
		}
	}
	return moves
}

func pawnMoves(b *board.Board, from board.Square, color core.Color, moves []board.Square) []board.Square {
	dir, startRow := -1, 6
	if color == core.ColorBlack {
		dir, startRow = 1, 1
	}

	// Forward steps only land on empty squares.
	if one, ok := leap(b, from, offset{0, dir}); ok && !b.Occupied(one) {
		moves = append(moves, one)
		if from.Row() == startRow {
			if two, ok := leap(b, from, offset{0, 2 * dir}); ok && !b.Occupied(two) {
				moves = append(moves, two)
			}
		}
	}

	for _, dCol := range []int{-1, 1} {
		if to, ok := leap(b, from, offset{dCol, dir}); ok && b.Occupied(to) {
			moves = append(moves, to)
		}
	}
	return moves
}
