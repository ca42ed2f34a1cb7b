package parser

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/bufbuild/stmtcompile/ast"
	"github.com/bufbuild/stmtcompile/token"
)

type runeReader struct {
	data []byte
	pos  int
	mark int
}

func (rr *runeReader) eof() bool {
	return rr.pos >= len(rr.data)
}

// readRune decodes the rune at the current position and advances past it.
// An invalid UTF-8 byte is returned as-is with size 1, so the reader always
// makes forward progress.
func (rr *runeReader) readRune() (r rune, size int) {
	r, sz := utf8.DecodeRune(rr.data[rr.pos:])
	if r == utf8.RuneError && sz <= 1 {
		r = rune(rr.data[rr.pos])
		sz = 1
	}
	rr.pos += sz
	return r, sz
}

func (rr *runeReader) offset() int {
	return rr.pos
}

func (rr *runeReader) unreadRune(sz int) {
	newPos := rr.pos - sz
	if newPos < rr.mark {
		panic("unread past mark")
	}
	rr.pos = newPos
}

func (rr *runeReader) setMark() {
	rr.mark = rr.pos
}

func (rr *runeReader) getMark() string {
	return string(rr.data[rr.mark:rr.pos])
}

// stmtLex scans stmt source text, producing one token per call to Next.
type stmtLex struct {
	input *runeReader
	info  *ast.FileInfo
}

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

func newLexer(in io.Reader, filename string) (*stmtLex, error) {
	br := bufio.NewReader(in)

	// if file has UTF8 byte order marker preface, consume it
	marker, err := br.Peek(3)
	if err == nil && bytes.Equal(marker, utf8Bom) {
		_, _ = br.Discard(3)
	}

	contents, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	return &stmtLex{
		input: &runeReader{data: contents},
		info:  ast.NewFileInfo(filename, contents),
	}, nil
}

func (l *stmtLex) maybeNewLine(r rune) {
	if r == '\n' {
		l.info.AddLine(l.input.offset())
	}
}

// Next returns the next token in the input. Lexing never fails: any
// character outside the identifier and number rules becomes a one-rune
// Unrecognized token, and once the input is exhausted every call returns
// the same EOF sentinel.
func (l *stmtLex) Next() token.Token {
	for {
		l.input.setMark()

		if l.input.eof() {
			return token.Token{Kind: token.EOF, Offset: l.input.offset()}
		}

		offset := l.input.offset()
		c, _ := l.input.readRune()

		if c == '\n' || c == '\r' || c == '\t' || c == '\f' || c == '\v' || c == ' ' {
			// skip whitespace
			l.maybeNewLine(c)
			continue
		}

		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			// identifier
			l.readIdentifier()
			return token.Token{Kind: token.Ident, Text: l.input.getMark(), Offset: offset}
		}

		if c >= '0' && c <= '9' {
			// number
			l.readNumber()
			return token.Token{Kind: token.Literal, Text: l.input.getMark(), Offset: offset}
		}

		return token.Token{Kind: token.Unrecognized, Text: l.input.getMark(), Offset: offset}
	}
}

// readIdentifier scans the maximal run of letters, digits, and underscores
// whose first rune has already been consumed.
func (l *stmtLex) readIdentifier() {
	for !l.input.eof() {
		c, sz := l.input.readRune()
		if c != '_' && !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			l.input.unreadRune(sz)
			break
		}
	}
}

// readNumber scans the maximal run of digits whose first rune has already
// been consumed.
func (l *stmtLex) readNumber() {
	for !l.input.eof() {
		c, sz := l.input.readRune()
		if c < '0' || c > '9' {
			l.input.unreadRune(sz)
			break
		}
	}
}

// Lex tokenizes the given source into a materialized stream. The returned
// FileInfo accumulates line offsets as the source is scanned and can
// translate token offsets into positions.
//
// The only possible error is a failure reading source; classification
// itself never fails.
func Lex(filename string, source io.Reader) (*token.Stream, *ast.FileInfo, error) {
	lex, err := newLexer(source, filename)
	if err != nil {
		return nil, nil, err
	}
	return token.Materialize(lex), lex.info, nil
}
