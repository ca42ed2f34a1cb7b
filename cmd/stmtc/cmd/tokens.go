package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bufbuild/stmtcompile/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream of a stmt file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open input file: %v\n", err)
			return err
		}
		defer f.Close()

		stream, info, err := parser.Lex(args[0], f)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i := 0; i < stream.Len(); i++ {
			tok := stream.Get(i)
			fmt.Fprintf(out, "%v %s\n", info.SourcePos(tok.Offset), tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
