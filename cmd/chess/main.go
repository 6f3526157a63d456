// Package main runs an interactive explorer for the chess movement rules.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"chessrules/internal/cli"
	"chessrules/internal/service"
	clitransport "chessrules/internal/transport/cli"
)

func main() {
	var (
		theme   = flag.String("theme", "brown", "Board color theme (off|brown|green|gray)")
		noColor = flag.Bool("no-color", false, "Disable color themes")
		fen     = flag.String("fen", "", "Position to load at startup (FEN)")
		history = flag.String("history", "", "Optional path of the command history file")
	)
	flag.Parse()

	// Colors only make sense on a terminal
	selected := cli.ColorTheme(*theme)
	if *noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		selected = cli.ThemeOff
	}

	if err := run(selected, *fen, *history); err != nil {
		log.Fatalf("%v", err)
	}
}

// run owns every resource so deferred cleanup completes before main exits
func run(theme cli.ColorTheme, fen, history string) error {
	if err := cli.ValidTheme(theme); err != nil {
		return fmt.Errorf("invalid -theme: %w", err)
	}

	svc := service.New()
	defer func() {
		if err := svc.Close(); err != nil {
			log.Printf("Warning: failed to close service cleanly: %v", err)
		}
	}()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer rl.Close()

	view := cli.New(rl.Stdout())
	if err := view.SetTheme(theme); err != nil {
		return fmt.Errorf("invalid -theme: %w", err)
	}

	handler := clitransport.New(svc, view, rl)

	view.ShowWelcome()
	if fen != "" {
		handler.ProcessCommand(cli.ParseCommand("load " + strings.TrimSpace(fen)))
	}

	if err := handler.Run(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}
	return nil
}
