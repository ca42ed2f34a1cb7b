package stmtcompile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bufbuild/stmtcompile/ast"
)

// ErrNotFound is returned by resolvers when the named file cannot be found.
var ErrNotFound = errors.New("file not found")

// Resolver resolves path/file names into source code or intermediate
// representations for stmt files. This is how the compiler loads the files
// to be compiled.
type Resolver interface {
	FindFileByPath(string) (SearchResult, error)
}

// SearchResult is the result of resolving one file. Only one of the fields
// should be set; if both are, the compiler prefers the AST and ignores the
// source.
type SearchResult struct {
	// Source is un-lexed source text.
	Source io.Reader
	// AST is an already-parsed syntax tree.
	AST *ast.Node
}

// ResolverFunc adapts a function into a [Resolver].
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver tries each of its elements in order, returning the first
// successful result. If all fail, the first error is returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(f) == 0 {
		return SearchResult{}, ErrNotFound
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return SearchResult{}, firstErr
}

// SourceResolver can resolve file names by searching the file system.
type SourceResolver struct {
	// Optional list of directories to search for the given file name. If
	// empty, the file name is used as-is.
	ImportPaths []string
	// Optional function for how to open a file. If nil, os.Open is used.
	Accessor func(string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(r.ImportPaths) == 0 {
		reader, err := r.accessFile(path)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}

	var e error
	for _, importPath := range r.ImportPaths {
		reader, err := r.accessFile(filepath.Join(importPath, path))
		if err != nil {
			if os.IsNotExist(err) {
				e = err
				continue
			}
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}
	return SearchResult{}, e
}

func (r *SourceResolver) accessFile(path string) (io.ReadCloser, error) {
	if r.Accessor != nil {
		return r.Accessor(path)
	}
	return os.Open(path)
}

// SourceAccessorFromMap returns a function that can be used as the Accessor
// field of a SourceResolver that uses the given map to load files. The map
// keys are file names and the values are the corresponding file contents.
func SourceAccessorFromMap(srcs map[string]string) func(string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		src, ok := srcs[path]
		if !ok {
			return nil, os.ErrNotExist
		}
		return io.NopCloser(strings.NewReader(src)), nil
	}
}
