package board

import (
	"errors"
	"testing"

	"chessrules/internal/core"

	"github.com/google/go-cmp/cmp"
)

func TestSquareRoundTrip(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %d; want %d", sq.String(), got, sq)
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"a8", 0, false},
		{"h8", 7, false},
		{"a1", 56, false},
		{"h1", 63, false},
		{"e2", 52, false},
		{"E2", 52, false},
		{"a5", 24, false},
		{"", 0, true},
		{"e", 0, true},
		{"e22", 0, true},
		{"i1", 0, true},
		{"a9", 0, true},
		{"a0", 0, true},
		{"1a", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantErr {
				if !errors.Is(err, core.ErrInvalidNotation) {
					t.Fatalf("ParseSquare(%q) error = %v; want ErrInvalidNotation", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %d; want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestStandardPosition(t *testing.T) {
	b := Standard()
	order := []core.PieceType{
		core.Rook, core.Knight, core.Bishop, core.Queen,
		core.King, core.Bishop, core.Knight, core.Rook,
	}
	files := "abcdefgh"

	for i, pt := range order {
		white := mustSquare(t, string(files[i])+"1")
		black := mustSquare(t, string(files[i])+"8")
		if p, ok := b.PieceAt(white); !ok || p != (core.Piece{Color: core.ColorWhite, Type: pt}) {
			t.Errorf("%s = %v (occupied %v); want White %s", white, p, ok, pt)
		}
		if p, ok := b.PieceAt(black); !ok || p != (core.Piece{Color: core.ColorBlack, Type: pt}) {
			t.Errorf("%s = %v (occupied %v); want Black %s", black, p, ok, pt)
		}
		if p, _ := b.PieceAt(mustSquare(t, string(files[i])+"2")); p != (core.Piece{Color: core.ColorWhite, Type: core.Pawn}) {
			t.Errorf("%c2 = %v; want White pawn", files[i], p)
		}
		if p, _ := b.PieceAt(mustSquare(t, string(files[i])+"7")); p != (core.Piece{Color: core.ColorBlack, Type: core.Pawn}) {
			t.Errorf("%c7 = %v; want Black pawn", files[i], p)
		}
	}

	for sq := SquareAt(2, 0); sq < SquareAt(6, 0); sq++ {
		if b.Occupied(sq) {
			t.Errorf("%s occupied; want empty", sq)
		}
	}
}

func TestApplyRevert(t *testing.T) {
	b := Standard()
	before := b

	from, to := mustSquare(t, "d1"), mustSquare(t, "d7")
	u := b.Apply(from, to)

	if b.Occupied(from) {
		t.Error("source still occupied after Apply")
	}
	if p, _ := b.PieceAt(to); p.Type != core.Queen || p.Color != core.ColorWhite {
		t.Errorf("destination = %v; want White queen", p)
	}
	captured, ok := u.Captured()
	if !ok || captured != (core.Piece{Color: core.ColorBlack, Type: core.Pawn}) {
		t.Errorf("Captured() = %v, %v; want Black pawn", captured, ok)
	}

	b.Revert(u)
	if b != before {
		t.Error("board differs after Revert")
	}
}

func TestFENRoundTrip(t *testing.T) {
	b, turn, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("ParseFEN error: %v", err)
	}
	if turn != core.ColorWhite {
		t.Errorf("turn = %v; want w", turn)
	}
	if b != Standard() {
		t.Error("parsed starting FEN differs from Standard()")
	}
	if diff := cmp.Diff("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", b.Placement()); diff != "" {
		t.Errorf("Placement() mismatch (-want +got):\n%s", diff)
	}

	const custom = "4k3/8/8/3q4/8/8/3R4/4K3 b"
	b, turn, err = ParseFEN(custom)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", custom, err)
	}
	if turn != core.ColorBlack {
		t.Errorf("turn = %v; want b", turn)
	}
	if got := b.Placement() + " b"; got != custom {
		t.Errorf("Placement() = %q; want %q", got, custom)
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8/8 w"},
		{"short rank", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"},
		{"long rank", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"},
		{"bad piece", "rnbqkbnx/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"},
		{"bad turn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ParseFEN(tt.fen); !errors.Is(err, core.ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestToASCII(t *testing.T) {
	b := Standard()
	want := "  a b c d e f g h\n" +
		"8 r n b q k b n r  8\n" +
		"7 p p p p p p p p  7\n" +
		"6 . . . . . . . .  6\n" +
		"5 . . . . . . . .  5\n" +
		"4 . . . . . . . .  4\n" +
		"3 . . . . . . . .  3\n" +
		"2 P P P P P P P P  2\n" +
		"1 R N B Q K B N R  1\n" +
		"  a b c d e f g h"
	if diff := cmp.Diff(want, b.ToASCII()); diff != "" {
		t.Errorf("ToASCII() mismatch (-want +got):\n%s", diff)
	}
}

func mustSquare(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}
