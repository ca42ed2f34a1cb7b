package cmd

import (
	"github.com/spf13/cobra"
)

var importPaths []string

var rootCmd = &cobra.Command{
	Use:   "stmtc",
	Short: "Compiler front end for the stmt language",
	Long: `stmtc lexes and parses stmt source files.

A stmt program is a sequence of statements, each an identifier terminated
by a ";". For every input file, stmtc prints a pre-order trace of the
syntax tree followed by its serialized JSON form. Syntax errors are
reported to stderr with source positions and do not stop the run.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Errors have already been printed by the
// time it returns; the caller only needs the exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&importPaths, "import-path", "I", nil,
		"directory to search for source files (may be repeated)")
}
