package game

import (
	"fmt"

	"chessrules/internal/board"
	"chessrules/internal/core"
	"chessrules/internal/movegen"
	"chessrules/internal/rules"
)

// Move records a committed move
type Move struct {
	From   board.Square
	To     board.Square
	Player core.Color
}

// Game is the turn/state controller and the only mutator of its board.
// It does no locking; concurrent callers must serialize access.
type Game struct {
	board    board.Board
	turn     core.Color
	state    core.GameState
	filter   rules.Filter
	moves    int
	fullmove int
	lastMove *Move
}

type Option func(*Game)

// WithCheckMode selects legacy or strict self-check validation.
func WithCheckMode(mode core.CheckMode) Option {
	return func(g *Game) {
		g.filter.Mode = mode
	}
}

// New starts a game from the standard position with White to move.
func New(opts ...Option) *Game {
	g := &Game{
		board:    board.Standard(),
		turn:     core.ColorWhite,
		state:    core.StateInProgress,
		fullmove: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FromFEN starts a game from an arbitrary placement and side to move,
// continuing the FEN's fullmove number when it has one.
func FromFEN(fen string, opts ...Option) (*Game, error) {
	b, turn, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	fullmove, err := board.Fullmove(fen)
	if err != nil {
		return nil, err
	}
	g := New(opts...)
	g.board = b
	g.turn = turn
	g.fullmove = fullmove
	return g, nil
}

// MakeMove validates and commits a move given in square notation, returning
// the resulting state. A rejected move leaves board, turn and state untouched
// and returns a *core.MoveError wrapping the rejection kind.
func (g *Game) MakeMove(from, to string) (core.GameState, error) {
	src, dst, err := g.parseMove(from, to)
	if err != nil {
		return g.state, &core.MoveError{From: from, To: to, Err: err}
	}

	if err := g.validate(src, dst); err != nil {
		return g.state, &core.MoveError{From: from, To: to, Err: err}
	}

	u, err := g.filter.Try(&g.board, src, dst, g.state)
	if err != nil {
		return g.state, &core.MoveError{From: from, To: to, Err: err}
	}

	g.state = rules.Outcome(&g.board, u)
	g.lastMove = &Move{From: src, To: dst, Player: g.turn}
	g.moves++
	if g.turn == core.ColorBlack {
		g.fullmove++
	}
	g.turn = g.turn.Opposite()

	return g.state, nil
}

func (g *Game) parseMove(from, to string) (board.Square, board.Square, error) {
	src, err := board.ParseSquare(from)
	if err != nil {
		return 0, 0, err
	}
	dst, err := board.ParseSquare(to)
	if err != nil {
		return 0, 0, err
	}
	return src, dst, nil
}

func (g *Game) validate(src, dst board.Square) error {
	if g.state == core.StateGameOver {
		return core.ErrGameOver
	}

	p, ok := g.board.PieceAt(src)
	if !ok {
		return core.ErrNoPieceAtSource
	}
	if p.Color != g.turn {
		return core.ErrWrongColorToMove
	}
	if !movegen.Attacks(&g.board, src, dst) {
		return core.ErrIllegalDestination
	}
	return nil
}

// PossibleMoves lists the pseudo-legal destinations of the piece on position.
// Moves that would expose the mover's king are included.
func (g *Game) PossibleMoves(position string) ([]string, error) {
	sq, err := board.ParseSquare(position)
	if err != nil {
		return nil, err
	}
	moves, ok := movegen.PseudoLegal(&g.board, sq)
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrNoPieceAtSource, sq)
	}
	return board.Notation(moves), nil
}

// LegalMoves is PossibleMoves filtered through the self-check test under the
// game's check mode and current state.
func (g *Game) LegalMoves(position string) ([]string, error) {
	sq, err := board.ParseSquare(position)
	if err != nil {
		return nil, err
	}
	moves, ok := g.filter.LegalMoves(&g.board, sq, g.state)
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrNoPieceAtSource, sq)
	}
	return board.Notation(moves), nil
}

// SetPromotion replaces the type of the piece on position, keeping its color.
// No legality checks are made and neither turn nor state change.
func (g *Game) SetPromotion(position string, newType core.PieceType) error {
	sq, err := board.ParseSquare(position)
	if err != nil {
		return err
	}
	if !newType.Valid() {
		return fmt.Errorf("%w: %d", core.ErrInvalidPieceType, newType)
	}
	p, ok := g.board.PieceAt(sq)
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrNoPieceAtSource, sq)
	}
	p.Type = newType
	g.board.Set(sq, p)
	return nil
}

func (g *Game) State() core.GameState {
	return g.state
}

func (g *Game) Turn() core.Color {
	return g.turn
}

func (g *Game) CheckMode() core.CheckMode {
	return g.filter.Mode
}

// Board returns a copy of the current board.
func (g *Game) Board() board.Board {
	return g.board
}

func (g *Game) MoveCount() int {
	return g.moves
}

func (g *Game) LastMove() (Move, bool) {
	if g.lastMove == nil {
		return Move{}, false
	}
	return *g.lastMove, true
}

// FEN renders the position. Castling and en passant fields are always "-"
// and the halfmove clock is always 0.
func (g *Game) FEN() string {
	return fmt.Sprintf("%s %s - - 0 %d", g.board.Placement(), g.turn, g.fullmove)
}

func (g *Game) String() string {
	return g.board.ToASCII()
}
