// Package rules decides whether a reachable move is legal and what state
// the game is in after it. Legality is tested by applying the move to the
// board, scanning every enemy piece for an attack on the mover's king, and
// reverting through the board's undo record when the king is exposed.
package rules

import (
	"chessrules/internal/board"
	"chessrules/internal/core"
	"chessrules/internal/movegen"
)

// Filter applies the self-check test under a CheckMode.
type Filter struct {
	Mode core.CheckMode
}

// skipScan reports whether the self-check scan is bypassed in state.
func (f Filter) skipScan(state core.GameState) bool {
	return f.Mode == core.CheckLegacy && state == core.StateCheck
}

// Try applies from-to to b. If the move leaves the mover's king attacked the
// board is restored and core.ErrSelfCheck is returned; otherwise the move
// stays on the board and its undo record is returned.
func (f Filter) Try(b *board.Board, from, to board.Square, state core.GameState) (board.Undo, error) {
	mover, _ := b.PieceAt(from)
	u := b.Apply(from, to)

	if f.skipScan(state) {
		return u, nil
	}
	if KingAttacked(b, mover.Color) {
		b.Revert(u)
		return board.Undo{}, core.ErrSelfCheck
	}
	return u, nil
}

// KingAttacked reports whether any piece of the opposite color can reach a
// king of the given color.
func KingAttacked(b *board.Board, color core.Color) bool {
	enemy := color.Opposite()
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		p, ok := b.PieceAt(sq)
		if !ok || p.Color != enemy {
			continue
		}
		moves, _ := movegen.PseudoLegal(b, sq)
		for _, to := range moves {
			if target, ok := b.PieceAt(to); ok && target.Type == core.King && target.Color == color {
				return true
			}
		}
	}
	return false
}

// GivesCheck reports whether the piece on sq can reach the opposing king.
func GivesCheck(b *board.Board, sq board.Square) bool {
	attacker, ok := b.PieceAt(sq)
	if !ok {
		return false
	}
	moves, _ := movegen.PseudoLegal(b, sq)
	for _, to := range moves {
		if target, ok := b.PieceAt(to); ok && target.Type == core.King && target.Color != attacker.Color {
			return true
		}
	}
	return false
}

// Outcome is the state after a committed move: GameOver when a king was
// captured, Check when the moved piece now reaches the opposing king.
func Outcome(b *board.Board, u board.Undo) core.GameState {
	if captured, ok := u.Captured(); ok && captured.Type == core.King {
		return core.StateGameOver
	}
	if GivesCheck(b, u.To) {
		return core.StateCheck
	}
	return core.StateInProgress
}

// LegalMoves filters the pseudo-legal moves from sq through Try. The board is
// left exactly as it was found.
func (f Filter) LegalMoves(b *board.Board, sq board.Square, state core.GameState) ([]board.Square, bool) {
	moves, ok := movegen.PseudoLegal(b, sq)
	if !ok {
		return nil, false
	}

	legal := moves[:0]
	for _, to := range moves {
		u, err := f.Try(b, sq, to, state)
		if err != nil {
			continue
		}
		b.Revert(u)
		legal = append(legal, to)
	}
	return legal, true
}
