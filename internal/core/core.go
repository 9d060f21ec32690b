package core

import (
	"fmt"
	"strings"
)

type GameState int

const (
	StateInProgress GameState = iota
	StateCheck
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateCheck:
		return "check"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// CheckMode selects how the self-check scan behaves while a game is in check.
type CheckMode int

const (
	// CheckLegacy skips the self-check scan whenever the game is already in
	// Check, so any geometrically reachable move is accepted in that state.
	CheckLegacy CheckMode = iota
	// CheckStrict always rejects moves that leave the mover's king attacked.
	CheckStrict
)

func (m CheckMode) String() string {
	if m == CheckStrict {
		return "strict"
	}
	return "legacy"
}

func ParseCheckMode(s string) (CheckMode, error) {
	switch strings.ToLower(s) {
	case "", "legacy":
		return CheckLegacy, nil
	case "strict":
		return CheckStrict, nil
	default:
		return CheckLegacy, fmt.Errorf("unknown check mode: %q", s)
	}
}

type Color byte

const (
	ColorWhite Color = iota
	ColorBlack
)

func (c Color) String() string {
	if c == ColorWhite {
		return "w"
	}
	return "b"
}

// Name returns the long form used in human-facing output.
func (c Color) Name() string {
	if c == ColorWhite {
		return "White"
	}
	return "Black"
}

func (c Color) Opposite() Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

type PieceType byte

const (
	Pawn PieceType = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

var pieceNames = [...]string{"pawn", "rook", "knight", "bishop", "queen", "king"}

var pieceLetters = [...]rune{'p', 'r', 'n', 'b', 'q', 'k'}

func (t PieceType) String() string {
	if int(t) < len(pieceNames) {
		return pieceNames[t]
	}
	return "unknown"
}

// Valid reports whether t names one of the six piece types.
func (t PieceType) Valid() bool {
	return t <= King
}

// ParsePieceType accepts a full piece name or its FEN letter, in any case.
func ParsePieceType(s string) (PieceType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range pieceNames {
		if s == name || (len(s) == 1 && rune(s[0]) == pieceLetters[i]) {
			return PieceType(i), nil
		}
	}
	return Pawn, fmt.Errorf("%w: %q", ErrInvalidPieceType, s)
}

// Piece is a colored piece. It is always passed by value.
type Piece struct {
	Color Color
	Type  PieceType
}

// Rune returns the FEN letter for the piece, upper case for White.
func (p Piece) Rune() rune {
	r := pieceLetters[p.Type]
	if p.Color == ColorWhite {
		return r - 'a' + 'A'
	}
	return r
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Color.Name(), p.Type)
}

// PieceFromRune is the inverse of Piece.Rune.
func PieceFromRune(r rune) (Piece, bool) {
	color := ColorBlack
	if r >= 'A' && r <= 'Z' {
		color = ColorWhite
		r = r - 'A' + 'a'
	}
	for i, l := range pieceLetters {
		if l == r {
			return Piece{Color: color, Type: PieceType(i)}, true
		}
	}
	return Piece{}, false
}
