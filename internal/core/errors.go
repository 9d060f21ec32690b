package core

import (
	"errors"
	"fmt"
)

// Rejection kinds. Use errors.Is to tell them apart.
var (
	ErrNoPieceAtSource    = errors.New("no piece at source square")
	ErrWrongColorToMove   = errors.New("piece does not belong to the side to move")
	ErrIllegalDestination = errors.New("destination is not reachable")
	ErrSelfCheck          = errors.New("move leaves own king in check")
	ErrInvalidNotation    = errors.New("invalid square notation")
	ErrGameOver           = errors.New("game is over")
	ErrInvalidFEN         = errors.New("invalid FEN")
	ErrGameNotFound       = errors.New("game not found")
	ErrInvalidPieceType   = errors.New("unknown piece type")
)

// MoveError reports a rejected move together with the squares requested.
type MoveError struct {
	From string
	To   string
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move %s-%s rejected: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// ErrorCode maps a rejection kind to its API error code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrGameNotFound):
		return CodeGameNotFound
	case errors.Is(err, ErrNoPieceAtSource):
		return CodeNoPiece
	case errors.Is(err, ErrWrongColorToMove):
		return CodeWrongColor
	case errors.Is(err, ErrIllegalDestination):
		return CodeIllegalMove
	case errors.Is(err, ErrSelfCheck):
		return CodeSelfCheck
	case errors.Is(err, ErrInvalidNotation):
		return CodeInvalidNotation
	case errors.Is(err, ErrGameOver):
		return CodeGameOver
	case errors.Is(err, ErrInvalidFEN):
		return CodeInvalidFEN
	case errors.Is(err, ErrInvalidPieceType):
		return CodeInvalidRequest
	default:
		return CodeInternalError
	}
}
