package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/chzyer/readline"

	"chessrules/internal/board"
	"chessrules/internal/cli"
	"chessrules/internal/core"
	"chessrules/internal/service"
	"chessrules/internal/transport"
)

// LineReader is the input side of the REPL; *readline.Instance satisfies it
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// ThemedView is a View whose board colors can be switched at runtime
type ThemedView interface {
	transport.View
	SetTheme(theme cli.ColorTheme) error
}

type CLIHandler struct {
	svc        *service.Service
	view       ThemedView
	input      LineReader
	positionID string
}

func New(svc *service.Service, view ThemedView, input LineReader) *CLIHandler {
	return &CLIHandler{
		svc:   svc,
		view:  view,
		input: input,
	}
}

// Run reads commands until quit or end of input
func (h *CLIHandler) Run() error {
	for {
		h.input.SetPrompt(h.getPrompt())

		line, err := h.input.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if !h.ProcessCommand(cli.ParseCommand(line)) {
			return nil
		}
	}
}

// PositionID returns the active position, empty before the first new/load
func (h *CLIHandler) PositionID() string {
	return h.positionID
}

// Generates the command prompt, showing the side to move
func (h *CLIHandler) getPrompt() string {
	prompt := "> "
	if h.positionID != "" {
		if g, err := h.svc.GetPosition(h.positionID); err == nil {
			prompt = fmt.Sprintf("[%s]> ", g.Turn())
		}
	}
	return prompt
}

// Handles user commands - returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdNew:
		h.loadPosition("")

	case cli.CmdLoad:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: load <FEN string>")
			return true
		}
		h.loadPosition(strings.Join(cmd.Args, " "))

	case cli.CmdHelp:
		h.view.ShowHelp()

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
		if h.positionID != "" {
			h.showBoard(nil)
		}

	case cli.CmdUnknown:
		h.view.ShowMessage(fmt.Sprintf("Unknown command: %s (type 'help')", cmd.Args[0]))

	default:
		if h.positionID == "" {
			h.view.ShowMessage("No active position. Use 'new' or 'load <FEN>'.")
			return true
		}
		h.processQuery(cmd)
	}

	return true
}

// processQuery handles the commands that need an active position
func (h *CLIHandler) processQuery(cmd *cli.Command) {
	switch cmd.Type {
	case cli.CmdShow:
		h.showBoard(nil)

	case cli.CmdFEN:
		resp, err := h.svc.PositionResponse(h.positionID)
		if err != nil {
			h.showError(err)
			return
		}
		h.view.ShowMessage(resp.FEN)

	case cli.CmdCanMove:
		if len(cmd.Args) != 2 {
			h.view.ShowMessage("Usage: can <from> <to>")
			return
		}
		ok, err := h.svc.CanMove(h.positionID, core.MoveQuery{From: cmd.Args[0], To: cmd.Args[1]})
		if err != nil {
			h.showError(err)
			return
		}
		h.view.ShowMessage(fmt.Sprintf("%s%s: %t", cmd.Args[0], cmd.Args[1], ok))

	case cli.CmdCheck:
		if len(cmd.Args) != 2 {
			h.view.ShowMessage("Usage: check <from> <to>")
			return
		}
		res, err := h.svc.ValidateMove(h.positionID, core.MoveQuery{From: cmd.Args[0], To: cmd.Args[1]})
		if err != nil {
			h.showError(err)
			return
		}
		h.view.ShowVerdict(res)

	case cli.CmdAttacks, cli.CmdMoves:
		if len(cmd.Args) != 1 {
			h.view.ShowMessage("Usage: attacks|moves <square>")
			return
		}
		query := core.SquareQuery{Square: cmd.Args[0]}
		label := "Attacks from " + cmd.Args[0]
		lookup := h.svc.Attacks
		if cmd.Type == cli.CmdMoves {
			label = "Moves from " + cmd.Args[0]
			lookup = h.svc.Destinations
		}
		squares, err := lookup(h.positionID, query)
		if err != nil {
			h.showError(err)
			return
		}
		h.showBoard(squares)
		h.view.ShowSquares(label, squares)

	case cli.CmdThreats:
		if len(cmd.Args) != 1 {
			h.view.ShowMessage("Usage: threats <w|b>")
			return
		}
		squares, err := h.svc.Threats(h.positionID, core.ThreatQuery{Color: cmd.Args[0]})
		if err != nil {
			h.showError(err)
			return
		}
		h.showBoard(squares)
		h.view.ShowSquares("Threats by "+cmd.Args[0], squares)
	}
}

func (h *CLIHandler) loadPosition(fen string) {
	id, err := h.svc.CreatePosition(core.CreatePositionRequest{FEN: fen})
	if err != nil {
		h.showError(err)
		return
	}

	// Only one position is active at a time in the REPL
	if h.positionID != "" {
		if err := h.svc.DeletePosition(h.positionID); err != nil {
			log.Printf("Failed to drop previous position %s: %v", h.positionID, err)
		}
	}
	h.positionID = id

	h.view.ShowMessage("Position loaded.")
	h.showBoard(nil)
}

func (h *CLIHandler) showBoard(highlight []board.Square) {
	g, err := h.svc.GetPosition(h.positionID)
	if err != nil {
		h.showError(err)
		return
	}
	h.view.DisplayBoard(g.Board(), highlight)
}

func (h *CLIHandler) showError(err error) {
	h.view.ShowError(fmt.Errorf("[%s] %w", service.ErrorCode(err), err))
}
