package main

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "golox",
	Short: "golox - a tree-walking interpreter for a small Lox-like language",
	Long: `golox scans, parses, and evaluates a small dynamically typed
expression/statement language. Run a file, inspect its token stream or
syntax tree, or start an interactive session.`,
	// Bare invocation drops into the REPL.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd, args)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.golox.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored diagnostics")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
