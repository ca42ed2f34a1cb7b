package stmtcompile

import (
	"context"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/stmtcompile/parser"
	"github.com/bufbuild/stmtcompile/reporter"
)

// Compiler handles compilation tasks, turning stmt source files into syntax
// trees.
//
// The compilation process involves two steps for each source file:
//  1. Lexing the source into a token stream.
//  2. Parsing the stream into an AST (abstract syntax tree).
//
// Consumers of the trees (traversal, serialization) are not invoked by this
// type; they operate on the returned results.
type Compiler struct {
	// Resolves path/file names into source code for stmt files. This is how
	// the compiler loads the files to be compiled. This field is the only
	// required field.
	Resolver Resolver
	// The maximum parallelism to use when compiling. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. The default reporter fails the compilation after encountering
	// any errors and ignores all warnings.
	Reporter reporter.Reporter
}

// Compile compiles the given file names into syntax trees. The compiler's
// resolver is used to locate source code, which is then lexed and parsed.
// Results are in the same order as the given names.
//
// Syntax errors are routed through the compiler's Reporter; a reporter that
// returns nil lets compilation of that file continue and the (possibly
// incomplete) tree is still produced.
func (c *Compiler) Compile(ctx context.Context, files ...string) ([]parser.Result, error) {
	if len(files) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if par > cpus {
			par = cpus
		}
	}

	h := reporter.NewHandler(c.Reporter)

	e := executor{
		c:       c,
		h:       h,
		s:       semaphore.NewWeighted(int64(par)),
		results: map[string]*result{},
	}

	results := make([]*result, len(files))
	for i, f := range files {
		results[i] = e.compile(ctx, f)
	}

	parsed := make([]parser.Result, len(files))
	for i, r := range results {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if r.err != nil {
			return nil, r.err
		}
		parsed[i] = r.res
	}

	return parsed, nil
}

type result struct {
	ready chan struct{}
	res   parser.Result
	err   error
}

func (r *result) fail(err error) {
	r.err = err
	close(r.ready)
}

func (r *result) complete(res parser.Result) {
	r.res = res
	close(r.ready)
}

type executor struct {
	c *Compiler
	h *reporter.Handler
	s *semaphore.Weighted

	mu      sync.Mutex
	results map[string]*result
}

// compile starts compilation of the named file, deduplicating files that
// are requested more than once in the same Compile call.
func (e *executor) compile(ctx context.Context, file string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[file]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[file] = r
	go func() {
		e.doCompile(ctx, file, r)
	}()
	return r
}

func (e *executor) doCompile(ctx context.Context, file string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)

	sr, err := e.c.Resolver.FindFileByPath(file)
	if err != nil {
		r.fail(err)
		return
	}

	defer func() {
		// don't leave the source open if it can be closed
		if sr.Source == nil {
			return
		}
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	if sr.AST != nil {
		r.complete(parser.NewResult(sr.AST, nil))
		return
	}

	res, err := parser.Parse(file, sr.Source, e.h)
	if err != nil {
		r.fail(err)
		return
	}
	r.complete(res)
}
