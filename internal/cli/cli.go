package cli

import (
	"fmt"
	"io"
	"strings"

	"chessrules/internal/board"
	"chessrules/internal/game"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdLoad
	CmdShow
	CmdFEN
	CmdCanMove
	CmdAttacks
	CmdMoves
	CmdThreats
	CmdCheck
	CmdColor
	CmdHelp
	CmdQuit
	CmdUnknown
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
	lightBg   string
	darkBg    string
	highlight string
	white     string
	black     string
	reset     string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg:   "\033[48;5;230m", // Beige
		darkBg:    "\033[48;5;94m",  // Brown
		highlight: "\033[48;5;167m", // Red
		white:     "\033[97m",
		black:     "\033[30m",
		reset:     "\033[0m",
	},
	ThemeGreen: {
		lightBg:   "\033[48;5;157m", // Light green
		darkBg:    "\033[48;5;22m",  // Dark green
		highlight: "\033[48;5;214m", // Orange
		white:     "\033[97m",
		black:     "\033[30m",
		reset:     "\033[0m",
	},
	ThemeGray: {
		lightBg:   "\033[48;5;251m", // Light gray
		darkBg:    "\033[48;5;240m", // Dark gray
		highlight: "\033[48;5;31m",  // Blue
		white:     "\033[97m",
		black:     "\033[30m",
		reset:     "\033[0m",
	},
}

type CLI struct {
	output io.Writer
	theme  ColorTheme
}

func New(output io.Writer) *CLI {
	return &CLI{
		output: output,
		theme:  ThemeOff,
	}
}

// ParseCommand maps one input line to a command
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
		return &Command{Type: CmdNew, Args: args}
	case "load":
		return &Command{Type: CmdLoad, Args: args, Raw: input}
	case "show", "board":
		return &Command{Type: CmdShow}
	case "fen":
		return &Command{Type: CmdFEN}
	case "can":
		return &Command{Type: CmdCanMove, Args: args}
	case "attacks":
		return &Command{Type: CmdAttacks, Args: args}
	case "moves":
		return &Command{Type: CmdMoves, Args: args}
	case "threats":
		return &Command{Type: CmdThreats, Args: args}
	case "check":
		return &Command{Type: CmdCheck, Args: args}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		return &Command{Type: CmdUnknown, Args: parts, Raw: input}
	}
}

// ValidTheme reports an error for a theme name SetTheme would refuse
func ValidTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	return nil
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if err := ValidTheme(theme); err != nil {
		return err
	}
	c.theme = theme
	return nil
}

func (c *CLI) Theme() ColorTheme {
	return c.theme
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

// DisplayBoard prints the board, marking highlighted squares. Without a
// theme a marked square carries a '*'.
func (c *CLI) DisplayBoard(b board.Board, highlight []board.Square) {
	theme := themes[c.theme]
	marked := make(map[board.Square]bool, len(highlight))
	for _, sq := range highlight {
		marked[sq] = true
	}

	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")

	for r := 0; r < board.Size; r++ {
		sb.WriteString(fmt.Sprintf("%d ", board.Size-r))
		for f := 0; f < board.Size; f++ {
			sq := board.MustSquare(r, f)
			piece, occupied := b.Occupant(sq)

			if c.theme == ThemeOff {
				switch {
				case occupied && marked[sq]:
					sb.WriteString(fmt.Sprintf("%c*", piece.Symbol()))
				case occupied:
					sb.WriteString(fmt.Sprintf("%c ", piece.Symbol()))
				case marked[sq]:
					sb.WriteString("* ")
				default:
					sb.WriteString(". ")
				}
				continue
			}

			bg := theme.darkBg
			if (r+f)%2 == 0 {
				bg = theme.lightBg
			}
			if marked[sq] {
				bg = theme.highlight
			}

			if !occupied {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
			} else {
				color := theme.black
				if piece.Symbol() >= 'A' && piece.Symbol() <= 'Z' {
					color = theme.white
				}
				sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, color, piece.Symbol(), theme.reset))
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", board.Size-r))
	}
	sb.WriteString("  a b c d e f g h\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowSquares(label string, squares []board.Square) {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	if len(names) == 0 {
		c.ShowMessage(fmt.Sprintf("%s: none", label))
		return
	}
	c.ShowMessage(fmt.Sprintf("%s: %s", label, strings.Join(names, " ")))
}

func (c *CLI) ShowVerdict(res game.MoveResult) {
	if res.Verdict == game.Accepted {
		c.ShowMessage(fmt.Sprintf("%s: accepted (%s)", res.Move(), res.Piece))
		return
	}
	c.ShowMessage(fmt.Sprintf("%s: rejected: %v", res.Move(), res.Reason))
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new                 - Start from the standard layout
  load <FEN>          - Load a position (placement and side to move)
  show                - Display the board
  fen                 - Print the current position as FEN
  can <from> <to>     - Test piece geometry only (e.g., can e2 e4)
  check <from> <to>   - Test geometry and side to move
  attacks <square>    - List squares the piece on <square> threatens
  moves <square>      - List squares the piece on <square> can reach
  threats <w|b>       - List every square one side threatens
  color <theme>       - Set board color theme (off|brown|green|gray)
  quit/exit           - Exit the program
  help/?              - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Chess rules explorer")
	c.ShowMessage("Commands: new, load <FEN>, can, check, attacks, moves, threats, show, quit/exit, help/?")
	c.ShowMessage("Example: 'load 4k3/8/8/3p4/4P3/8/8/R3K3 w' then 'attacks e4'.")
	c.ShowMessage("")
}
