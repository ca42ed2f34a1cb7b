package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bufbuild/stmtcompile/internal/golden"
	"github.com/bufbuild/stmtcompile/printer"
	"github.com/bufbuild/stmtcompile/reporter"
)

// TestParseCorpus runs every testdata/*.stmt file through the full pipeline
// and compares the token stream, serialized AST, and rendered diagnostics
// against checked-in golden files. Refresh with
// STMTCOMPILE_REFRESH='**' go test ./parser.
func TestParseCorpus(t *testing.T) {
	t.Parallel()

	corpus := golden.Corpus{
		Root:      "testdata",
		Refresh:   "STMTCOMPILE_REFRESH",
		Extension: "stmt",
		Outputs: []golden.Output{
			{Extension: "tokens.txt"},
			{Extension: "ast.json"},
			{Extension: "stderr.txt"},
		},
	}

	corpus.Test = func(t *testing.T, path, text string) []string {
		stream, info, err := Lex(path, strings.NewReader(text))
		if err != nil {
			t.Fatalf("lex failed: %v", err)
		}

		var tokens strings.Builder
		for i := 0; i < stream.Len(); i++ {
			tok := stream.Get(i)
			fmt.Fprintf(&tokens, "%v %s\n", info.SourcePos(tok.Offset), tok)
		}

		var stderr strings.Builder
		handler := reporter.NewHandler(reporter.NewReporter(func(errWithPos reporter.ErrorWithPos) error {
			reporter.Render(&stderr, errWithPos, info)
			return nil
		}, nil))

		res, err := ParseTokens(stream, info, handler)
		if err != nil {
			t.Fatalf("parse aborted: %v", err)
		}

		return []string{
			tokens.String(),
			printer.Print(res.AST()) + "\n",
			stderr.String(),
		}
	}

	corpus.Run(t)
}
