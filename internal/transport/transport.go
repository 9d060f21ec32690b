package transport

import (
	"chessrules/internal/board"
	"chessrules/internal/core"
)

// View abstracts display/output operations
type View interface {
	DisplayBoard(b *board.Board)
	ShowMessage(msg string)
	ShowError(err error)
	ShowMoves(square string, moves []string, legal bool)
	ShowCheck(side core.Color)
	ShowGameOver(winner core.Color)
	ShowHelp()
	ShowPrompt(prompt string)
	SetTheme(theme string) error
}
