// Command golox is the CLI entry point for the golox interpreter.
//
// Usage:
//
//	golox run    <file>            Run a source file
//	golox tokens <file> [--json]   Tokenize and print tokens
//	golox parse  <file> [--text]   Parse and print the AST
//	golox repl                     Start interactive REPL
package main

import (
	"os"
)

// Exit codes follow BSD sysexits: the driver alone decides process
// termination, the pipeline stages only return diagnostics.
const (
	codeUsage    = 64 // command line usage error
	codeDataErr  = 65 // source had scanning or parsing diagnostics
	codeSoftware = 70 // runtime error during interpretation
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(codeUsage)
	}
}
