// Package main implements an interactive client for the chess server API.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"chessrules/internal/client/api"
	"chessrules/internal/client/display"
	"chessrules/internal/core"

	"github.com/chzyer/readline"
)

type session struct {
	client *api.Client
	out    io.Writer
	gameID string
	game   *core.GameResponse
}

type command struct {
	usage   string
	minArgs int
	run     func(s *session, args []string) error
}

var commands = map[string]command{
	"new":     {"new [strict] [FEN]", 0, cmdNew},
	"join":    {"join <gameId>", 1, cmdJoin},
	"move":    {"move <from> <to>", 2, cmdMove},
	"moves":   {"moves <square>", 1, cmdMoves(false)},
	"legal":   {"legal <square>", 1, cmdMoves(true)},
	"promote": {"promote <square> <piece>", 2, cmdPromote},
	"board":   {"board", 0, cmdBoard},
	"wait":    {"wait", 0, cmdWait},
	"delete":  {"delete", 0, cmdDelete},
	"health":  {"health", 0, cmdHealth},
	"url":     {"url <baseURL>", 1, cmdURL},
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "API base URL")
	flag.Parse()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("chess"),
		HistoryFile:     ".chess_client_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	s := &session{client: api.New(*baseURL), out: rl.Stdout()}

	fmt.Fprintf(s.out, "%sChess API Client%s\n", display.Cyan, display.Reset)
	fmt.Fprintf(s.out, "%sAPI: %s%s\n", display.Cyan, s.client.BaseURL, display.Reset)
	fmt.Fprintf(s.out, "Type 'help' for commands\n\n")

	for {
		rl.SetPrompt(buildPrompt(s))

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		name := strings.ToLower(fields[0])
		switch name {
		case "exit", "quit", "x":
			return
		case "help", "?":
			showHelp(s.out)
			continue
		}

		cmd, ok := commands[name]
		if !ok {
			fmt.Fprintf(s.out, "%sUnknown command: %s%s\n", display.Red, name, display.Reset)
			continue
		}
		if len(fields)-1 < cmd.minArgs {
			fmt.Fprintf(s.out, "Usage: %s\n", cmd.usage)
			continue
		}
		if err := cmd.run(s, fields[1:]); err != nil {
			fmt.Fprintf(s.out, "%sError: %v%s\n", display.Red, err, display.Reset)
		}
	}
}

func buildPrompt(s *session) string {
	if s.game == nil {
		return display.Prompt("chess")
	}
	id := s.gameID
	if len(id) > 8 {
		id = id[:8]
	}
	return display.Prompt(fmt.Sprintf("chess [%s] %s %s", id, display.ColorForTurn(s.game.Turn)+display.Yellow, s.game.State))
}

func showHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	for _, name := range []string{"new", "join", "move", "moves", "legal", "promote", "board", "wait", "delete", "health", "url"} {
		fmt.Fprintf(out, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(out, "  exit")
}

func (s *session) requireGame() error {
	if s.gameID == "" {
		return errors.New("no active game, use 'new' or 'join'")
	}
	return nil
}

func (s *session) update(g *core.GameResponse) {
	s.game = g
	s.gameID = g.GameID
	if g.LastMove != nil {
		fmt.Fprintf(s.out, "Last move: %s-%s (%s)\n", g.LastMove.From, g.LastMove.To, g.LastMove.PlayerColor)
	}
	switch g.State {
	case "check":
		fmt.Fprintf(s.out, "%s%s is in check%s\n", display.Magenta, display.ColorForTurn(g.Turn), display.Reset)
	case "game_over":
		fmt.Fprintf(s.out, "%sGame over%s\n", display.Magenta, display.Reset)
	}
}

func cmdNew(s *session, args []string) error {
	req := core.CreateGameRequest{}
	if len(args) > 0 && (args[0] == "strict" || args[0] == "legacy") {
		req.CheckMode = args[0]
		args = args[1:]
	}
	req.FEN = strings.Join(args, " ")

	g, err := s.client.CreateGame(req)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%sGame created: %s (%s)%s\n", display.Green, g.GameID, g.CheckMode, display.Reset)
	s.update(g)
	return cmdBoard(s, nil)
}

func cmdJoin(s *session, args []string) error {
	g, err := s.client.GetGame(args[0])
	if err != nil {
		return err
	}
	s.update(g)
	return cmdBoard(s, nil)
}

func cmdMove(s *session, args []string) error {
	if err := s.requireGame(); err != nil {
		return err
	}
	g, err := s.client.MakeMove(s.gameID, args[0], args[1])
	if err != nil {
		return err
	}
	s.update(g)
	return cmdBoard(s, nil)
}

func cmdMoves(legal bool) func(*session, []string) error {
	return func(s *session, args []string) error {
		if err := s.requireGame(); err != nil {
			return err
		}
		resp, err := s.client.Moves(s.gameID, args[0], legal)
		if err != nil {
			return err
		}
		if len(resp.Moves) == 0 {
			fmt.Fprintf(s.out, "%s: no moves\n", resp.Square)
			return nil
		}
		fmt.Fprintf(s.out, "%s: %s\n", resp.Square, strings.Join(resp.Moves, " "))
		return nil
	}
}

func cmdPromote(s *session, args []string) error {
	if err := s.requireGame(); err != nil {
		return err
	}
	g, err := s.client.Promote(s.gameID, args[0], args[1])
	if err != nil {
		return err
	}
	s.update(g)
	return cmdBoard(s, nil)
}

func cmdBoard(s *session, _ []string) error {
	if err := s.requireGame(); err != nil {
		return err
	}
	b, err := s.client.GetBoard(s.gameID)
	if err != nil {
		return err
	}
	display.RenderBoard(s.out, b.Board)
	fmt.Fprintf(s.out, "FEN: %s\n", b.FEN)
	return nil
}

// cmdWait blocks until the opponent moves or the server times out the poll
func cmdWait(s *session, _ []string) error {
	if err := s.requireGame(); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Waiting for a move...")
	g, err := s.client.WaitGame(s.gameID, s.game.MoveCount)
	if err != nil {
		return err
	}
	if g.MoveCount == s.game.MoveCount {
		fmt.Fprintln(s.out, "No move yet")
		return nil
	}
	s.update(g)
	return cmdBoard(s, nil)
}

func cmdDelete(s *session, _ []string) error {
	if err := s.requireGame(); err != nil {
		return err
	}
	if err := s.client.DeleteGame(s.gameID); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Game %s deleted\n", s.gameID)
	s.gameID, s.game = "", nil
	return nil
}

func cmdHealth(s *session, _ []string) error {
	h, err := s.client.Health()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Status: %s, storage: %s\n", h.Status, h.Storage)
	return nil
}

func cmdURL(s *session, args []string) error {
	s.client.SetBaseURL(args[0])
	fmt.Fprintf(s.out, "API: %s\n", s.client.BaseURL)
	return nil
}
