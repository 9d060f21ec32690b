package cli

import (
	"fmt"
	"strings"

	"chessrules/internal/cli"
	"chessrules/internal/core"
	"chessrules/internal/service"
	"chessrules/internal/transport"
)

// CommandReader yields parsed commands, blocking until one is available
type CommandReader interface {
	GetCommand() (*cli.Command, error)
}

// CLIHandler drives a single local game through the service
type CLIHandler struct {
	svc    *service.Service
	view   transport.View
	input  CommandReader
	gameID string
	over   bool
}

func New(svc *service.Service, view transport.View, input CommandReader) *CLIHandler {
	return &CLIHandler{
		svc:   svc,
		view:  view,
		input: input,
	}
}

// Run reads and executes commands until quit or end of input
func (h *CLIHandler) Run() {
	for {
		h.view.ShowPrompt(h.getPrompt())

		cmd, err := h.input.GetCommand()
		if err != nil {
			h.view.ShowError(err)
			break
		}

		if !h.ProcessCommand(cmd) {
			break
		}
	}
}

// getPrompt shows whose turn it is while a game is running
func (h *CLIHandler) getPrompt() string {
	if h.gameID == "" || h.over {
		return "> "
	}
	v, err := h.svc.GetGame(h.gameID)
	if err != nil {
		return "> "
	}
	if v.State == core.StateCheck {
		return fmt.Sprintf("[%s+]> ", v.Turn)
	}
	return fmt.Sprintf("[%s]> ", v.Turn)
}

// ProcessCommand executes one command and reports whether to keep running
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:

	case cli.CmdUnknown:
		h.view.ShowMessage(fmt.Sprintf("Unknown command: %s (type 'help')", cmd.Raw))

	case cli.CmdNew:
		args, mode := splitMode(cmd.Args)
		if len(args) > 0 {
			h.view.ShowMessage("Usage: new [strict]")
			return true
		}
		h.startGame("", mode)

	case cli.CmdResume:
		args, mode := splitMode(cmd.Args)
		if len(args) < 1 {
			h.view.ShowMessage("Usage: resume <FEN> [strict]")
			return true
		}
		h.startGame(strings.Join(args, " "), mode)

	case cli.CmdMove:
		if !h.requireGame() {
			return true
		}
		h.makeMove(cmd.Args[0], cmd.Args[1])

	case cli.CmdMoves, cli.CmdLegal:
		if len(cmd.Args) != 1 {
			h.view.ShowMessage("Usage: moves|legal <square>")
			return true
		}
		if !h.requireGame() {
			return true
		}
		legal := cmd.Type == cli.CmdLegal
		moves, err := h.svc.PossibleMoves(h.gameID, cmd.Args[0], legal)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMoves(strings.ToLower(cmd.Args[0]), moves, legal)

	case cli.CmdPromote:
		if len(cmd.Args) != 2 {
			h.view.ShowMessage("Usage: promote <square> <piece>")
			return true
		}
		if !h.requireGame() {
			return true
		}
		pieceType, err := core.ParsePieceType(cmd.Args[1])
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		v, err := h.svc.Promote(h.gameID, cmd.Args[0], pieceType)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.DisplayBoard(&v.Board)

	case cli.CmdBoard:
		if !h.requireGame() {
			return true
		}
		v, err := h.svc.GetGame(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.DisplayBoard(&v.Board)
		h.view.ShowMessage(fmt.Sprintf("FEN: %s\nState: %s, %s to move", v.FEN, v.State, v.Turn.Name()))

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		if err := h.view.SetTheme(cmd.Args[0]); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", strings.ToLower(cmd.Args[0])))
		if h.gameID != "" {
			if v, err := h.svc.GetGame(h.gameID); err == nil {
				h.view.DisplayBoard(&v.Board)
			}
		}

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) requireGame() bool {
	if h.gameID == "" {
		h.view.ShowMessage("No active game. Use 'new' or 'resume <FEN>'.")
		return false
	}
	return true
}

func (h *CLIHandler) startGame(fen string, mode core.CheckMode) {
	v, err := h.svc.CreateGame(fen, mode)
	if err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %w", err))
		return
	}

	if h.gameID != "" {
		h.svc.DeleteGame(h.gameID)
	}
	h.gameID = v.ID
	h.over = false

	h.view.ShowMessage(fmt.Sprintf("Game started (%s check validation).", mode))
	h.view.DisplayBoard(&v.Board)
}

func (h *CLIHandler) makeMove(from, to string) {
	v, err := h.svc.MakeMove(h.gameID, from, to)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	h.view.DisplayBoard(&v.Board)

	switch v.State {
	case core.StateCheck:
		h.view.ShowCheck(v.Turn)
	case core.StateGameOver:
		h.view.ShowGameOver(v.LastMove.Player)
		h.over = true
	}
}

// splitMode strips a trailing "strict" or "legacy" argument
func splitMode(args []string) ([]string, core.CheckMode) {
	if n := len(args); n > 0 {
		if mode, err := core.ParseCheckMode(strings.ToLower(args[n-1])); err == nil {
			return args[:n-1], mode
		}
	}
	return args, core.CheckLegacy
}
