package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golox/internal/ast"
	"golox/internal/lexer"
	"golox/internal/parser"
)

var parseText bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print the syntax tree",
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

		// Statements that parsed cleanly are printed even when later ones
		// had errors; recovery keeps the well-formed prefix usable.
		if parseText {
			for _, stmt := range stmts {
				fmt.Fprintln(os.Stdout, ast.StmtString(stmt))
			}
		} else {
			if err := writeJSON(os.Stdout, ast.StmtsToMaps(stmts)); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(codeSoftware)
			}
		}

		if len(parseDiags) > 0 {
			printDiags(os.Stderr, parseDiags, cfg.Color)
			os.Exit(codeDataErr)
		}
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseText, "text", false, "Print the tree in text form instead of JSON")
}
