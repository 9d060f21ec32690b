package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"chessrules/internal/board"
	"chessrules/internal/core"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdUnknown
	CmdNew
	CmdResume
	CmdMove
	CmdMoves
	CmdLegal
	CmdPromote
	CmdBoard
	CmdColor
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	alert   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		alert:   "\033[31m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		alert:   "\033[31m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		alert:   "\033[31m",
		reset:   "\033[0m",
	},
}

// CLI is the terminal view. It reads commands from a LineReader and writes
// everything else to output.
type CLI struct {
	input  LineReader
	output io.Writer
	theme  ColorTheme
}

func New(input LineReader, output io.Writer) *CLI {
	return &CLI{
		input:  input,
		output: output,
		theme:  ThemeOff,
	}
}

// GetCommand reads and parses one line. End of input becomes CmdQuit and an
// interrupted line becomes CmdNone.
func (c *CLI) GetCommand() (*Command, error) {
	line, err := c.input.Readline()
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return &Command{Type: CmdQuit}, nil
		case isInterrupt(err):
			return &Command{Type: CmdNone}, nil
		default:
			return nil, err
		}
	}

	return ParseCommand(line), nil
}

// ParseCommand turns a line into a Command. Anything that is not a keyword
// is read as a move, either "e2e4" or "e2 e4".
func ParseCommand(input string) *Command {
	input = strings.TrimSpace(input)
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args, Raw: input}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: input}
	case "moves":
		return &Command{Type: CmdMoves, Args: args, Raw: input}
	case "legal":
		return &Command{Type: CmdLegal, Args: args, Raw: input}
	case "promote":
		return &Command{Type: CmdPromote, Args: args, Raw: input}
	case "board":
		return &Command{Type: CmdBoard, Raw: input}
	case "color":
		return &Command{Type: CmdColor, Args: args, Raw: input}
	case "help", "?":
		return &Command{Type: CmdHelp, Raw: input}
	case "quit", "exit":
		return &Command{Type: CmdQuit, Raw: input}
	}

	switch {
	case len(parts) == 1 && len(cmd) == 4:
		return &Command{Type: CmdMove, Args: []string{cmd[:2], cmd[2:]}, Raw: input}
	case len(parts) == 2:
		return &Command{Type: CmdMove, Args: []string{cmd, strings.ToLower(parts[1])}, Raw: input}
	default:
		return &Command{Type: CmdUnknown, Raw: input}
	}
}

func (c *CLI) SetTheme(theme string) error {
	t := ColorTheme(strings.ToLower(theme))
	if _, ok := themes[t]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = t
	return nil
}

func (c *CLI) Theme() ColorTheme {
	return c.theme
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	theme := themes[c.theme]
	c.ShowMessage(fmt.Sprintf("%sError: %v%s", theme.alert, err, theme.reset))
}

// ShowPrompt hands the prompt to the line editor when it draws its own,
// otherwise prints it.
func (c *CLI) ShowPrompt(prompt string) {
	if p, ok := c.input.(prompter); ok {
		p.SetPrompt(prompt)
		return
	}
	fmt.Fprint(c.output, prompt)
}

func (c *CLI) DisplayBoard(b *board.Board) {
	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n  a b c d e f g h\n")

	for r := 0; r < 8; r++ {
		sb.WriteString(fmt.Sprintf("%d ", 8-r))
		for f := 0; f < 8; f++ {
			p, occupied := b.PieceAt(board.SquareAt(r, f))

			if c.theme == ThemeOff {
				if !occupied {
					sb.WriteString(". ")
				} else {
					sb.WriteString(fmt.Sprintf("%c ", p.Rune()))
				}
				continue
			}

			bg := theme.darkBg
			if (r+f)%2 == 0 {
				bg = theme.lightBg
			}

			if !occupied {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
			} else {
				color := theme.black
				if p.Color == core.ColorWhite {
					color = theme.white
				}
				sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, color, p.Rune(), theme.reset))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", 8-r))
	}
	sb.WriteString("  a b c d e f g h\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowMoves(square string, moves []string, legal bool) {
	kind := "Possible"
	if legal {
		kind = "Legal"
	}
	if len(moves) == 0 {
		c.ShowMessage(fmt.Sprintf("%s moves from %s: none", kind, square))
		return
	}
	c.ShowMessage(fmt.Sprintf("%s moves from %s: %s", kind, square, strings.Join(moves, " ")))
}

func (c *CLI) ShowCheck(side core.Color) {
	theme := themes[c.theme]
	c.ShowMessage(fmt.Sprintf("%s%s is in check%s", theme.alert, side.Name(), theme.reset))
}

func (c *CLI) ShowGameOver(winner core.Color) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s captured the king\n", winner.Name()))
	c.ShowMessage("Start a new game with 'new' or 'resume'.")
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new [strict]          - Start a new game, optionally with strict check validation
  resume <FEN> [strict] - Start from a position (placement and side to move)
  <from><to>            - Make a move (e.g., e2e4, or e2 e4)
  moves <square>        - List possible moves of a piece
  legal <square>        - List moves that do not leave the king in check
  promote <sq> <piece>  - Replace the piece on a square (queen, rook, bishop, knight)
  board                 - Show the board and FEN
  color <theme>         - Set board color theme (off|brown|green|gray)
  quit/exit             - Exit the program
  help/?                - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Chess!")
	c.ShowMessage("Commands: new, resume <FEN>, <move>, moves, legal, promote, board, help/?, quit/exit")
	c.ShowMessage("Example: 'resume 4k3/8/8/8/8/8/8/R3K3 w' to start from a position.")
	c.ShowMessage("")
}
