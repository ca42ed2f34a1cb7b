// Package parser contains the lexer and parser for stmt source.
//
// The grammar is deliberately tiny:
//
//	Program   := Statement*
//	Statement := Identifier ";"
//
// Syntax errors are reported through a [reporter.Handler] and are non-fatal:
// the parser recovers and keeps going, and the tree it returns is always
// well-formed, just possibly missing statements for the regions it could not
// make sense of.
package parser

import (
	"io"

	"github.com/bufbuild/stmtcompile/ast"
	"github.com/bufbuild/stmtcompile/reporter"
	"github.com/bufbuild/stmtcompile/token"
)

// Separator is the literal symbol that terminates a statement.
const Separator = ";"

// Parse lexes and parses the given source. See [ParseTokens] for the
// returned values' semantics.
func Parse(filename string, source io.Reader, handler *reporter.Handler) (Result, error) {
	stream, info, err := Lex(filename, source)
	if err != nil {
		return Result{}, err
	}
	return ParseTokens(stream, info, handler)
}

// ParseTokens parses a materialized token stream into a syntax tree in a
// single pass, with no backtracking.
//
// Syntax errors go to handler; as long as its reporter keeps returning nil
// the parse continues past them, and the returned error is nil even when
// diagnostics were emitted (callers that care should consult
// handler.Error()). A non-nil error is returned only when the reporter
// aborts, and the partial tree built so far is returned alongside it.
func ParseTokens(stream *token.Stream, info *ast.FileInfo, handler *reporter.Handler) (Result, error) {
	p := &stmtParser{
		cursor:  stream.Cursor(),
		info:    info,
		handler: handler,
	}
	root, err := p.parseProgram()
	return Result{root: root, info: info}, err
}

type stmtParser struct {
	cursor  *token.Cursor
	info    *ast.FileInfo
	handler *reporter.Handler
}

// parseProgram parses statements until the end of the stream. Every loop
// iteration consumes at least one token, whether or not the statement
// attempt succeeds, so the loop always terminates.
func (p *stmtParser) parseProgram() (*ast.Node, error) {
	program := ast.NewProgramNode()
	for !p.cursor.Done() {
		stmt, err := p.parseStatement()
		if stmt != nil {
			program.AddChild(stmt)
		}
		if err != nil {
			return program, err
		}
	}
	return program, nil
}

// parseStatement parses one Identifier ";" statement. On failure it returns
// a nil node; the error is non-nil only if the handler's reporter aborted.
//
// Recovery rules: an unexpected leading token is consumed, so the next
// attempt starts on fresh input. A missing separator consumes only the
// identifier, leaving the mismatched token in place since it may well begin
// the next statement.
func (p *stmtParser) parseStatement() (*ast.Node, error) {
	tok := p.cursor.Peek()
	if tok.Kind != token.Ident {
		p.cursor.Next()
		return nil, p.handler.HandleErrorf(p.pos(tok), "unexpected token: %s", tok.Text)
	}
	p.cursor.Next()

	if sep := p.cursor.Peek(); sep.Text != Separator {
		return nil, p.handler.HandleErrorf(p.pos(sep), "expected separator after identifier")
	}
	p.cursor.Next()

	return ast.NewStatementNode(tok.Text), nil
}

func (p *stmtParser) pos(tok token.Token) ast.SourcePos {
	if p.info == nil {
		return ast.UnknownPos("")
	}
	return p.info.SourcePos(tok.Offset)
}
