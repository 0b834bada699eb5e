package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golox/internal/lexer"
)

var tokensJSON bool

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Tokenize a source file and print the token stream",
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

		// Tokens are printed even when the scanner reported errors, so a
		// partially broken file still shows everything it produced.
		tokens, scanDiags := lexer.New(string(source)).Tokenize()
		if tokensJSON {
			if err := writeJSON(os.Stdout, tokensToMaps(tokens)); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(codeSoftware)
			}
		} else {
			printTokens(os.Stdout, tokens)
		}

		if len(scanDiags) > 0 {
			printDiags(os.Stderr, scanDiags, cfg.Color)
			os.Exit(codeDataErr)
		}
	},
}

func init() {
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "Print tokens as JSON")
}
