package rules

import (
	"fmt"
	"testing"

	"chessrules/internal/board"
	"chessrules/internal/core"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Strict-mode legal moves must match an independent generator on positions
// where castling and en passant are unavailable.
func TestLegalMovesMatchDragontooth(t *testing.T) {
	positions := []struct {
		name string
		fen  string
	}{
		{"start", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"start black", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b - - 0 1"},
		{"open game", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 2 3"},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1"},
		{"king in check", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1"},
		{"double attack on king", "4k3/8/8/8/1b6/8/4r3/4K3 w - - 0 1"},
		{"kiwipete white", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1"},
		{"kiwipete black", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1"},
		{"promotion squares", "8/P6k/8/8/8/8/6p1/K7 w - - 0 1"},
		{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"},
	}

	f := Filter{Mode: core.CheckStrict}
	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })

	for _, pos := range positions {
		t.Run(pos.name, func(t *testing.T) {
			b, turn, err := board.ParseFEN(pos.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}

			var got []string
			for sq := board.Square(0); sq < board.NumSquares; sq++ {
				p, ok := b.PieceAt(sq)
				if !ok || p.Color != turn {
					continue
				}
				moves, _ := f.LegalMoves(&b, sq, core.StateInProgress)
				for _, to := range moves {
					got = append(got, sq.String()+to.String())
				}
			}

			want := oracleMoves(pos.fen)
			if diff := cmp.Diff(want, got, sortStrings, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("legal moves mismatch (-dragontooth +ours):\n%s", diff)
			}
		})
	}
}

// oracleMoves lists from-to pairs once each, folding promotion choices.
func oracleMoves(fen string) []string {
	ob := dragontoothmg.ParseFen(fen)
	seen := make(map[string]bool)
	var out []string
	for _, m := range ob.GenerateLegalMoves() {
		key := oracleSquare(m.From()) + oracleSquare(m.To())
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}

// dragontoothmg numbers squares from a1 = 0 to h8 = 63.
func oracleSquare(sq uint8) string {
	return fmt.Sprintf("%c%d", 'a'+sq%8, sq/8+1)
}
