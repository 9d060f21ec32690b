package game

import (
	"errors"
	"testing"

	"chessrules/internal/board"
	"chessrules/internal/core"

	"github.com/google/go-cmp/cmp"
)

type step struct {
	from, to string
	want     core.GameState
	wantErr  error
}

func play(t *testing.T, g *Game, steps []step) {
	t.Helper()
	for i, s := range steps {
		got, err := g.MakeMove(s.from, s.to)
		if s.wantErr != nil {
			if !errors.Is(err, s.wantErr) {
				t.Fatalf("step %d %s-%s: error = %v; want %v", i, s.from, s.to, err, s.wantErr)
			}
			var me *core.MoveError
			if !errors.As(err, &me) || me.From != s.from || me.To != s.to {
				t.Errorf("step %d: error %v is not a MoveError for %s-%s", i, err, s.from, s.to)
			}
			continue
		}
		if err != nil {
			t.Fatalf("step %d %s-%s: unexpected error: %v", i, s.from, s.to, err)
		}
		if got != s.want {
			t.Fatalf("step %d %s-%s: state = %v; want %v", i, s.from, s.to, got, s.want)
		}
	}
}

func TestNewGame(t *testing.T) {
	g := New()
	if g.State() != core.StateInProgress {
		t.Errorf("State() = %v; want in_progress", g.State())
	}
	if g.Turn() != core.ColorWhite {
		t.Errorf("Turn() = %v; want w", g.Turn())
	}
	if g.CheckMode() != core.CheckLegacy {
		t.Errorf("CheckMode() = %v; want legacy", g.CheckMode())
	}
	if g.Board() != board.Standard() {
		t.Error("Board() is not the standard position")
	}
	if got, want := g.FEN(), board.StartingFEN; got != want {
		t.Errorf("FEN() = %q; want %q", got, want)
	}
}

func TestPossibleMovesOpening(t *testing.T) {
	g := New()

	tests := []struct {
		pos  string
		want []string
	}{
		{"e2", []string{"e3", "e4"}},
		{"B2", []string{"b3", "b4"}},
		{"b1", []string{"a3", "c3"}},
		{"g8", []string{"f6", "h6"}},
		{"a1", []string{}},
		{"h8", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.pos, func(t *testing.T) {
			got, err := g.PossibleMoves(tt.pos)
			if err != nil {
				t.Fatalf("PossibleMoves(%s) error: %v", tt.pos, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PossibleMoves(%s) mismatch (-want +got):\n%s", tt.pos, diff)
			}
		})
	}
}

func TestPossibleMovesErrors(t *testing.T) {
	g := New()

	if _, err := g.PossibleMoves("e4"); !errors.Is(err, core.ErrNoPieceAtSource) {
		t.Errorf("PossibleMoves(e4) error = %v; want ErrNoPieceAtSource", err)
	}
	for _, pos := range []string{"", "z9", "e", "e2e4"} {
		if _, err := g.PossibleMoves(pos); !errors.Is(err, core.ErrInvalidNotation) {
			t.Errorf("PossibleMoves(%q) error = %v; want ErrInvalidNotation", pos, err)
		}
		if _, err := g.LegalMoves(pos); !errors.Is(err, core.ErrInvalidNotation) {
			t.Errorf("LegalMoves(%q) error = %v; want ErrInvalidNotation", pos, err)
		}
	}
}

func TestTurnAlternation(t *testing.T) {
	g := New()
	play(t, g, []step{
		{from: "e2", to: "e4", want: core.StateInProgress},
		{from: "e4", to: "e5", wantErr: core.ErrWrongColorToMove},
		{from: "e7", to: "e5", want: core.StateInProgress},
		{from: "e5", to: "e4", wantErr: core.ErrWrongColorToMove},
	})
	if g.Turn() != core.ColorWhite {
		t.Errorf("Turn() = %v; want w", g.Turn())
	}
	if g.MoveCount() != 2 {
		t.Errorf("MoveCount() = %d; want 2", g.MoveCount())
	}
	last, ok := g.LastMove()
	if !ok || last.From.String() != "e7" || last.To.String() != "e5" || last.Player != core.ColorBlack {
		t.Errorf("LastMove() = %+v, %v; want e7-e5 by b", last, ok)
	}
}

func TestMakeMoveRejections(t *testing.T) {
	g := New()
	before := g.Board()

	play(t, g, []step{
		{from: "e4", to: "e5", wantErr: core.ErrNoPieceAtSource},
		{from: "e7", to: "e5", wantErr: core.ErrWrongColorToMove},
		{from: "e2", to: "e5", wantErr: core.ErrIllegalDestination},
		{from: "a1", to: "a3", wantErr: core.ErrIllegalDestination},
		{from: "x2", to: "e4", wantErr: core.ErrInvalidNotation},
		{from: "e2", to: "e44", wantErr: core.ErrInvalidNotation},
	})

	if g.Board() != before {
		t.Error("board changed after rejected moves")
	}
	if g.Turn() != core.ColorWhite || g.State() != core.StateInProgress || g.MoveCount() != 0 {
		t.Errorf("turn/state/count = %v/%v/%d; want w/in_progress/0", g.Turn(), g.State(), g.MoveCount())
	}
}

func TestSelfCheckRejection(t *testing.T) {
	g, err := FromFEN("4k3/4r3/8/8/8/8/4B3/4K3 w")
	if err != nil {
		t.Fatal(err)
	}
	before := g.Board()

	play(t, g, []step{
		{from: "e2", to: "d3", wantErr: core.ErrSelfCheck},
	})

	if g.Board() != before {
		t.Error("board changed after self-check rejection")
	}
	if g.Turn() != core.ColorWhite {
		t.Errorf("Turn() = %v; want w", g.Turn())
	}

	legal, err := g.LegalMoves("e2")
	if err != nil {
		t.Fatal(err)
	}
	if len(legal) != 0 {
		t.Errorf("LegalMoves(e2) = %v; want none", legal)
	}
	pseudo, err := g.PossibleMoves("e2")
	if err != nil {
		t.Fatal(err)
	}
	if len(pseudo) == 0 {
		t.Error("PossibleMoves(e2) is empty; pinned moves should still be listed")
	}
}

func TestCheckThenGameOver(t *testing.T) {
	g, err := FromFEN("4k3/8/8/8/8/8/8/R3K3 w")
	if err != nil {
		t.Fatal(err)
	}
	play(t, g, []step{
		{from: "a1", to: "a8", want: core.StateCheck},
		// Legacy mode: Black may ignore the check.
		{from: "e8", to: "e7", want: core.StateInProgress},
		{from: "a8", to: "a7", want: core.StateCheck},
		{from: "e7", to: "f6", want: core.StateInProgress},
		{from: "a7", to: "a6", want: core.StateCheck},
		{from: "f6", to: "g5", want: core.StateInProgress},
	})

	g2, err := FromFEN("4k3/4R3/8/8/8/8/8/4K3 w")
	if err != nil {
		t.Fatal(err)
	}
	play(t, g2, []step{
		{from: "e7", to: "e8", want: core.StateGameOver},
		{from: "e1", to: "e2", wantErr: core.ErrGameOver},
	})
}

// Mirrors a full game that exercises every piece type, promotion, check and
// the capture of a king.
func TestFullGame(t *testing.T) {
	opening := []step{
		{from: "a2", to: "a4", want: core.StateInProgress},
		{from: "a4", to: "a5", wantErr: core.ErrWrongColorToMove},
		{from: "b7", to: "b5", want: core.StateInProgress},
		{from: "a1", to: "a4", wantErr: core.ErrIllegalDestination},
		{from: "a1", to: "a3", want: core.StateInProgress},
		{from: "b8", to: "c6", want: core.StateInProgress},
		{from: "a4", to: "b5", want: core.StateInProgress},
		{from: "c8", to: "a6", want: core.StateInProgress},
		{from: "b5", to: "b6", want: core.StateInProgress},
		{from: "d8", to: "c8", want: core.StateInProgress},
		{from: "b6", to: "b7", want: core.StateInProgress},
		{from: "e8", to: "d8", want: core.StateInProgress},
		{from: "b7", to: "b8", want: core.StateInProgress},
	}

	t.Run("legacy", func(t *testing.T) {
		g := New()
		play(t, g, opening)

		if err := g.SetPromotion("b8", core.Queen); err != nil {
			t.Fatalf("SetPromotion: %v", err)
		}

		play(t, g, []step{
			{from: "c8", to: "e6", wantErr: core.ErrIllegalDestination},
			{from: "c8", to: "b7", wantErr: core.ErrSelfCheck},
			{from: "f7", to: "f6", want: core.StateInProgress},
			{from: "b8", to: "c8", want: core.StateCheck},
			{from: "f6", to: "f5", want: core.StateInProgress},
			{from: "c8", to: "d8", want: core.StateGameOver},
		})
	})

	t.Run("strict", func(t *testing.T) {
		g := New(WithCheckMode(core.CheckStrict))
		play(t, g, opening)

		if err := g.SetPromotion("B8", core.Queen); err != nil {
			t.Fatalf("SetPromotion: %v", err)
		}

		play(t, g, []step{
			{from: "f7", to: "f6", want: core.StateInProgress},
			{from: "b8", to: "c8", want: core.StateCheck},
			{from: "f6", to: "f5", wantErr: core.ErrSelfCheck},
			{from: "d8", to: "c8", want: core.StateInProgress},
		})
		if g.State() != core.StateInProgress {
			t.Errorf("State() = %v; want in_progress", g.State())
		}
	})
}

func TestSetPromotion(t *testing.T) {
	g := New()
	before := g.State()

	if err := g.SetPromotion("a2", core.Knight); err != nil {
		t.Fatalf("SetPromotion(a2): %v", err)
	}
	b := g.Board()
	sq, _ := board.ParseSquare("a2")
	if p, _ := b.PieceAt(sq); p != (core.Piece{Color: core.ColorWhite, Type: core.Knight}) {
		t.Errorf("a2 = %v; want White knight", p)
	}
	if g.State() != before || g.Turn() != core.ColorWhite {
		t.Error("SetPromotion changed state or turn")
	}

	if err := g.SetPromotion("a4", core.Queen); !errors.Is(err, core.ErrNoPieceAtSource) {
		t.Errorf("SetPromotion(a4) error = %v; want ErrNoPieceAtSource", err)
	}
	if err := g.SetPromotion("a", core.Queen); !errors.Is(err, core.ErrInvalidNotation) {
		t.Errorf("SetPromotion(a) error = %v; want ErrInvalidNotation", err)
	}

	fen := g.FEN()
	if err := g.SetPromotion("e2", core.PieceType(9)); !errors.Is(err, core.ErrInvalidPieceType) {
		t.Errorf("SetPromotion(e2, 9) error = %v; want ErrInvalidPieceType", err)
	}
	if got := g.FEN(); got != fen {
		t.Errorf("FEN after rejected promotion = %q; want %q", got, fen)
	}
}

func TestFromFEN(t *testing.T) {
	g, err := FromFEN("4k3/8/8/8/8/8/8/4K3 b", WithCheckMode(core.CheckStrict))
	if err != nil {
		t.Fatal(err)
	}
	if g.Turn() != core.ColorBlack {
		t.Errorf("Turn() = %v; want b", g.Turn())
	}
	if g.CheckMode() != core.CheckStrict {
		t.Errorf("CheckMode() = %v; want strict", g.CheckMode())
	}
	if _, err := g.MakeMove("e8", "d8"); err != nil {
		t.Fatal(err)
	}
	if got, want := g.FEN(), "3k4/8/8/8/8/8/8/4K3 w - - 0 2"; got != want {
		t.Errorf("FEN() = %q; want %q", got, want)
	}

	if _, err := FromFEN("not a fen"); !errors.Is(err, core.ErrInvalidFEN) {
		t.Errorf("FromFEN error = %v; want ErrInvalidFEN", err)
	}
}

func TestFromFENFullmove(t *testing.T) {
	g, err := FromFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 40")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g.FEN(), "4k3/8/8/8/8/8/8/4K3 b - - 0 40"; got != want {
		t.Errorf("FEN() = %q; want %q", got, want)
	}
	if _, err := g.MakeMove("e8", "d8"); err != nil {
		t.Fatal(err)
	}
	if got, want := g.FEN(), "3k4/8/8/8/8/8/8/4K3 w - - 0 41"; got != want {
		t.Errorf("FEN() after move = %q; want %q", got, want)
	}

	for _, fen := range []string{
		"4k3/8/8/8/8/8/8/4K3 w - - 0 x",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 0",
	} {
		if _, err := FromFEN(fen); !errors.Is(err, core.ErrInvalidFEN) {
			t.Errorf("FromFEN(%q) error = %v; want ErrInvalidFEN", fen, err)
		}
	}
}
