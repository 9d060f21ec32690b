package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"chessrules/internal/cli"
	"chessrules/internal/service"
	clitransport "chessrules/internal/transport/cli"

	"golang.org/x/term"
)

func main() {
	theme := flag.String("color", "", "Board color theme: off, brown, green, gray (default brown on a terminal)")
	history := flag.String("history", ".chess_history", "Line editor history file")
	flag.Parse()

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	var (
		input  cli.LineReader
		output io.Writer = os.Stdout
	)
	if interactive {
		rl, err := cli.NewTerminalReader(*history)
		if err != nil {
			fmt.Printf("Failed to start: %v\n", err)
			os.Exit(1)
		}
		defer rl.Close()
		input = rl
		output = rl.Stdout()
	} else {
		input = cli.NewScannerReader(os.Stdin)
	}

	// Rejection logs from the service would interleave with the board
	log.SetOutput(io.Discard)

	svc := service.New(nil)
	defer svc.Shutdown(time.Second)

	view := cli.New(input, output)

	if *theme == "" {
		*theme = string(cli.ThemeOff)
		if interactive && term.IsTerminal(int(os.Stdout.Fd())) {
			*theme = string(cli.ThemeBrown)
		}
	}
	if err := view.SetTheme(*theme); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	handler := clitransport.New(svc, view, view)

	view.ShowWelcome()
	handler.Run()
}
