package stmtcompile

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/stmtcompile/ast"
	"github.com/bufbuild/stmtcompile/printer"
	"github.com/bufbuild/stmtcompile/reporter"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	compiler := Compiler{
		Resolver: &SourceResolver{
			Accessor: SourceAccessorFromMap(map[string]string{
				"a.stmt": "foo;bar;",
				"b.stmt": "",
			}),
		},
	}

	results, err := compiler.Compile(context.Background(), "a.stmt", "b.stmt")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t,
		`{ "type": "Program", "value": "", "children": [{ "type": "Statement", "value": "foo", "children": [] }, { "type": "Statement", "value": "bar", "children": [] }] }`,
		printer.Print(results[0].AST()))
	assert.Equal(t, "a.stmt", results[0].FileInfo().Name())

	assert.Empty(t, results[1].AST().Children)
}

func TestCompileNoFiles(t *testing.T) {
	t.Parallel()

	compiler := Compiler{Resolver: &SourceResolver{}}
	results, err := compiler.Compile(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestCompileAcquisitionFailure(t *testing.T) {
	t.Parallel()

	compiler := Compiler{
		Resolver: &SourceResolver{
			Accessor: SourceAccessorFromMap(map[string]string{}),
		},
	}

	_, err := compiler.Compile(context.Background(), "missing.stmt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompileSyntaxErrorsReachReporter(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var diags []reporter.ErrorWithPos
	compiler := Compiler{
		Resolver: &SourceResolver{
			Accessor: SourceAccessorFromMap(map[string]string{
				"bad.stmt": "123;",
			}),
		},
		Reporter: reporter.NewReporter(func(err reporter.ErrorWithPos) error {
			mu.Lock()
			defer mu.Unlock()
			diags = append(diags, err)
			return nil
		}, nil),
	}

	results, err := compiler.Compile(context.Background(), "bad.stmt")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].AST().Children)

	require.Len(t, diags, 2)
	assert.Equal(t, "bad.stmt:1:1: unexpected token: 123", diags[0].Error())
}

func TestCompileDefaultReporterAborts(t *testing.T) {
	t.Parallel()

	compiler := Compiler{
		Resolver: &SourceResolver{
			Accessor: SourceAccessorFromMap(map[string]string{
				"bad.stmt": "123;",
			}),
		},
	}

	_, err := compiler.Compile(context.Background(), "bad.stmt")
	require.Error(t, err)
	var ewp reporter.ErrorWithPos
	assert.ErrorAs(t, err, &ewp)
}

func TestCompileManyFilesConcurrently(t *testing.T) {
	t.Parallel()

	srcs := make(map[string]string)
	var files []string
	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("f%02d.stmt", i)
		srcs[name] = fmt.Sprintf("stmt_%02d;", i)
		files = append(files, name)
	}

	compiler := Compiler{
		Resolver:       &SourceResolver{Accessor: SourceAccessorFromMap(srcs)},
		MaxParallelism: 4,
	}

	results, err := compiler.Compile(context.Background(), files...)
	require.NoError(t, err)
	require.Len(t, results, len(files))

	// results come back in argument order
	for i, res := range results {
		require.Len(t, res.AST().Children, 1)
		assert.Equal(t, fmt.Sprintf("stmt_%02d", i), res.AST().Children[0].Value)
	}
}

func TestCompileDeduplicatesFiles(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	resolved := map[string]int{}
	compiler := Compiler{
		Resolver: ResolverFunc(func(path string) (SearchResult, error) {
			mu.Lock()
			resolved[path]++
			mu.Unlock()
			r, err := (&SourceResolver{
				Accessor: SourceAccessorFromMap(map[string]string{"x.stmt": "x;"}),
			}).FindFileByPath(path)
			return r, err
		}),
	}

	results, err := compiler.Compile(context.Background(), "x.stmt", "x.stmt", "x.stmt")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 1, resolved["x.stmt"])
	assert.Same(t, results[0].AST(), results[1].AST())
}

func TestCompileFromProvidedAST(t *testing.T) {
	t.Parallel()

	tree := ast.NewProgramNode(ast.NewStatementNode("prebuilt"))
	compiler := Compiler{
		Resolver: ResolverFunc(func(string) (SearchResult, error) {
			return SearchResult{AST: tree}, nil
		}),
	}

	results, err := compiler.Compile(context.Background(), "whatever.stmt")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Same(t, tree, results[0].AST())
	assert.Nil(t, results[0].FileInfo())
}

func TestCompositeResolver(t *testing.T) {
	t.Parallel()

	primary := &SourceResolver{Accessor: SourceAccessorFromMap(map[string]string{
		"a.stmt": "a;",
	})}
	fallback := &SourceResolver{Accessor: SourceAccessorFromMap(map[string]string{
		"b.stmt": "b;",
	})}
	resolver := CompositeResolver{primary, fallback}

	_, err := resolver.FindFileByPath("b.stmt")
	assert.NoError(t, err)
	_, err = resolver.FindFileByPath("nope.stmt")
	assert.Error(t, err)
	_, err = CompositeResolver{}.FindFileByPath("a.stmt")
	assert.ErrorIs(t, err, ErrNotFound)
}
