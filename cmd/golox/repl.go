package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"golox/internal/diag"
	"golox/internal/lexer"
	"golox/internal/parser"
	"golox/internal/runtime"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	color.NoColor = !cfg.Color

	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".golox_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            color.GreenString("golox> "),
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%s %s\n\n",
		color.New(color.Bold, color.FgCyan).Sprint("golox REPL"),
		color.New(color.FgHiBlack).Sprint("(type 'exit' or Ctrl+D to quit)"))

	// One interpreter for the whole session, so variables persist across
	// inputs.
	interp := runtime.New(rl.Stdout())

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Fprintf(rl.Stdout(), "\n%s\n",
					color.New(color.FgHiBlack).Sprint("(use 'exit' or Ctrl+D to quit)"))
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		source := strings.TrimSpace(line)
		if source == "" {
			continue
		}
		if source == "exit" {
			break
		}

		tokens, scanDiags := lexer.New(line).Tokenize()
		if len(scanDiags) > 0 {
			printDiags(rl.Stderr(), scanDiags, cfg.Color)
			continue
		}

		p := parser.New(tokens)
		p.SetMaxDepth(cfg.MaxDepth)
		stmts, parseDiags := p.Parse()
		if len(parseDiags) > 0 {
			printDiags(rl.Stderr(), parseDiags, cfg.Color)
			continue
		}

		if rerr := interp.Run(stmts); rerr != nil {
			printDiags(rl.Stderr(), []*diag.Error{rerr}, cfg.Color)
		}
	}
	return nil
}
