package cli

import (
	"bufio"
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// LineReader supplies one line of input per call. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
}

type prompter interface {
	SetPrompt(string)
}

// ScannerReader reads lines from a non-interactive source
type ScannerReader struct {
	scanner *bufio.Scanner
}

func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(r)}
}

func (s *ScannerReader) Readline() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// NewTerminalReader opens a line editor with history on the terminal
func NewTerminalReader(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

func isInterrupt(err error) bool {
	return errors.Is(err, readline.ErrInterrupt)
}
