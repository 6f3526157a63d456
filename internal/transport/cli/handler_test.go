package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"

	"chessrules/internal/cli"
	"chessrules/internal/service"
)

// scriptReader replays fixed input lines, then reports EOF
type scriptReader struct {
	lines   []string
	prompts []string
}

func (r *scriptReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func runScript(t *testing.T, lines ...string) (string, *scriptReader, *CLIHandler) {
	t.Helper()
	var out bytes.Buffer
	svc := service.New()
	t.Cleanup(func() { svc.Close() })

	in := &scriptReader{lines: lines}
	h := New(svc, cli.New(&out), in)
	if err := h.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), in, h
}

func TestQueriesNeedPosition(t *testing.T) {
	out, _, _ := runScript(t, "attacks e2")
	if !strings.Contains(out, "No active position") {
		t.Fatalf("expected no-position message, got:\n%s", out)
	}
}

func TestNewAndCanMove(t *testing.T) {
	out, in, h := runScript(t, "new", "can e2 e4", "can a1 a3", "fen")

	if !strings.Contains(out, "8 r n b q k b n r  8") {
		t.Fatalf("expected starting board, got:\n%s", out)
	}
	if !strings.Contains(out, "e2e4: true") || !strings.Contains(out, "a1a3: false") {
		t.Fatalf("expected can results, got:\n%s", out)
	}
	if !strings.Contains(out, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1") {
		t.Fatalf("expected FEN output, got:\n%s", out)
	}
	if h.PositionID() == "" {
		t.Fatalf("expected an active position")
	}
	if in.prompts[0] != "> " || in.prompts[1] != "[w]> " {
		t.Fatalf("unexpected prompts %q", in.prompts)
	}
}

func TestAttacksHighlightsBoard(t *testing.T) {
	out, _, _ := runScript(t, "load 4k3/8/8/3p4/4P3/8/8/R3K3 w", "attacks e4")

	if !strings.Contains(out, "Attacks from e4: d5") {
		t.Fatalf("expected attack list, got:\n%s", out)
	}
	if !strings.Contains(out, "5 . . . p*. . . .  5") {
		t.Fatalf("expected d5 marked, got:\n%s", out)
	}
}

func TestMovesThreatsAndCheck(t *testing.T) {
	out, _, _ := runScript(t,
		"load 4k3/8/8/3p4/4P3/8/8/R3K3 b",
		"moves e4",
		"threats b",
		"check e4 e5",
		"check d5 e4",
	)

	for _, want := range []string{
		"Moves from e4: d5 e5",
		"Threats by b: d8 f8 d7 e7 f7 e4",
		"e4e5: rejected:",
		"d5e4: accepted (black pawn)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestErrorsCarryCodes(t *testing.T) {
	out, _, _ := runScript(t, "new", "can e2 e9", "attacks e4", "load 8/8 w", "threats red")

	for _, want := range []string{
		"[INVALID_SQUARE]",
		"[EMPTY_SQUARE]",
		"[INVALID_FEN]",
		"[INVALID_REQUEST]",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestLoadReplacesPosition(t *testing.T) {
	var out bytes.Buffer
	svc := service.New()
	in := &scriptReader{lines: []string{"new", "load 4k3/8/8/8/8/8/8/4K3 w", "quit", "show"}}
	h := New(svc, cli.New(&out), in)

	if err := h.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if svc.Count() != 1 {
		t.Fatalf("expected one stored position but got %d", svc.Count())
	}
	if len(in.lines) != 1 {
		t.Fatalf("expected quit to stop before the last line")
	}
}

func TestLoadAfterPositionDropped(t *testing.T) {
	var out bytes.Buffer
	svc := service.New()
	h := New(svc, cli.New(&out), &scriptReader{})

	h.ProcessCommand(cli.ParseCommand("new"))
	first := h.PositionID()
	if err := svc.DeletePosition(first); err != nil {
		t.Fatalf("DeletePosition: %v", err)
	}

	h.ProcessCommand(cli.ParseCommand("load 4k3/8/8/8/8/8/8/4K3 w"))
	if h.PositionID() == "" || h.PositionID() == first {
		t.Fatalf("expected a fresh position but got %q", h.PositionID())
	}
	if svc.Count() != 1 {
		t.Fatalf("expected one stored position but got %d", svc.Count())
	}
	if !strings.Contains(out.String(), "4 . . . . . . . .  4") {
		t.Fatalf("expected loaded board, got:\n%s", out.String())
	}
}

func TestColorTheme(t *testing.T) {
	out, _, _ := runScript(t, "color neon", "color brown")
	if !strings.Contains(out, "invalid theme") || !strings.Contains(out, "Color theme set to: brown") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

type interruptReader struct{ scriptReader }

func (r *interruptReader) Readline() (string, error) {
	return "", readline.ErrInterrupt
}

func TestInterruptOnEmptyLineExits(t *testing.T) {
	h := New(service.New(), cli.New(io.Discard), &interruptReader{})
	if err := h.Run(); err != nil {
		t.Fatalf("expected clean exit but got %v", err)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want cli.CommandType
	}{
		{"", cli.CmdNone},
		{"   ", cli.CmdNone},
		{"new", cli.CmdNew},
		{"LOAD 8/8/8/8/8/8/8/8 w", cli.CmdLoad},
		{"can e2 e4", cli.CmdCanMove},
		{"?", cli.CmdHelp},
		{"exit", cli.CmdQuit},
		{"e2e4", cli.CmdUnknown},
	}
	for _, tt := range tests {
		if got := cli.ParseCommand(tt.in).Type; got != tt.want {
			t.Fatalf("ParseCommand(%q): expected %d but got %d", tt.in, tt.want, got)
		}
	}
}
