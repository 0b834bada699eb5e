package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golox/internal/diag"
	"golox/internal/lexer"
	"golox/internal/parser"
	"golox/internal/runtime"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a source file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(codeUsage)
		}

		source, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading %s: %v\n", args[0], err)
			os.Exit(codeUsage)
		}

		tokens, scanDiags := lexer.New(string(source)).Tokenize()
		if len(scanDiags) > 0 {
			printDiags(os.Stderr, scanDiags, cfg.Color)
			os.Exit(codeDataErr)
		}

		p := parser.New(tokens)
		p.SetMaxDepth(cfg.MaxDepth)
		stmts, parseDiags := p.Parse()
		if len(parseDiags) > 0 {
			printDiags(os.Stderr, parseDiags, cfg.Color)
			os.Exit(codeDataErr)
		}

		if rerr := runtime.New(os.Stdout).Run(stmts); rerr != nil {
			printDiags(os.Stderr, []*diag.Error{rerr}, cfg.Color)
			os.Exit(codeSoftware)
		}
	},
}
