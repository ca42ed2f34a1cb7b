package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/bufbuild/stmtcompile"
	"github.com/bufbuild/stmtcompile/ast"
	"github.com/bufbuild/stmtcompile/printer"
	"github.com/bufbuild/stmtcompile/reporter"
	"github.com/bufbuild/stmtcompile/walk"
)

var compileCmd = &cobra.Command{
	Use:   "compile [files...]",
	Short: "Compile stmt files and print their syntax trees",
	Long: `Compile lexes and parses each named file. File arguments may be
doublestar globs (e.g. 'src/**/*.stmt').

For every file, a pre-order trace of the tree is printed to stdout, one
line per node, followed by the serialized JSON form of the whole tree.
Syntax errors go to stderr and do not fail the command; only a file that
cannot be read does.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	files, err := expandGlobs(args)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	var diags []reporter.ErrorWithPos
	rep := reporter.NewReporter(func(errWithPos reporter.ErrorWithPos) error {
		mu.Lock()
		defer mu.Unlock()
		diags = append(diags, errWithPos)
		return nil
	}, nil)

	compiler := stmtcompile.Compiler{
		Resolver: &stmtcompile.SourceResolver{ImportPaths: importPaths},
		Reporter: rep,
	}
	results, err := compiler.Compile(context.Background(), files...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open input file: %v\n", err)
		return err
	}

	infos := make(map[string]*ast.FileInfo, len(results))
	for _, res := range results {
		if info := res.FileInfo(); info != nil {
			infos[info.Name()] = info
		}
	}
	for _, d := range diags {
		reporter.Render(os.Stderr, d, infos[d.GetPosition().Filename])
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		_ = walk.Nodes(res.AST(), func(n *ast.Node) error {
			fmt.Fprintf(out, "Visited node of type %s with value %s\n", n.Kind, n.Value)
			return nil
		})
		fmt.Fprintf(out, "Serialized AST: %s\n", printer.Print(res.AST()))
	}
	return nil
}

// expandGlobs expands any doublestar patterns among args. An argument with
// no glob metacharacters passes through untouched, so missing files still
// surface as open errors rather than silently matching nothing.
func expandGlobs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !hasGlobMeta(arg) {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", arg, err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func hasGlobMeta(s string) bool {
	for _, r := range s {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
