// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import "fmt"

// Lexer is any source of tokens. Each call to Next returns the next token in
// the input; after the input is exhausted, every call returns the same EOF
// sentinel.
type Lexer interface {
	Next() Token
}

// Stream is a finite, eagerly materialized token stream.
//
// A well-formed stream ends with exactly one EOF sentinel, which appears
// nowhere else. Unrecognized tokens are ordinary elements of the stream; only
// EOF terminates it.
type Stream struct {
	tokens []Token
}

// Materialize drains lex into a new Stream, stopping once the EOF sentinel
// has been appended.
func Materialize(lex Lexer) *Stream {
	var tokens []Token
	for {
		tok := lex.Next()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return &Stream{tokens: tokens}
		}
	}
}

// NewStream creates a stream over the given tokens. If the tokens do not end
// with an EOF sentinel, one is appended.
func NewStream(tokens []Token) *Stream {
	if n := len(tokens); n == 0 || !tokens[n-1].IsEOF() {
		offset := 0
		if n > 0 {
			last := tokens[n-1]
			offset = last.Offset + len(last.Text)
		}
		tokens = append(tokens, Token{Kind: EOF, Offset: offset})
	}
	return &Stream{tokens: tokens}
}

// Len returns the number of tokens in the stream, including the EOF sentinel.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Get returns the i-th token of the stream.
func (s *Stream) Get(i int) Token {
	return s.tokens[i]
}

// Cursor returns a new cursor positioned at the start of the stream.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{stream: s}
}

// Cursor is an iterator over a [Stream]. Unlike a plain range loop, it
// supports peeking. The cursor's index is monotonically non-decreasing and
// stops at the EOF sentinel; Next never advances past it.
type Cursor struct {
	stream *Stream
	idx    int
}

// Peek returns the current token without consuming it. At end of stream it
// returns the EOF sentinel.
func (c *Cursor) Peek() Token {
	return c.stream.tokens[c.idx]
}

// Next consumes and returns the current token. Once the EOF sentinel is
// reached, Next returns it forever without advancing further.
func (c *Cursor) Next() Token {
	tok := c.stream.tokens[c.idx]
	if !tok.IsEOF() {
		c.idx++
	}
	return tok
}

// Done reports whether the cursor has reached the EOF sentinel.
func (c *Cursor) Done() bool {
	return c.Peek().IsEOF()
}

// Index returns the cursor's position in the stream.
func (c *Cursor) Index() int {
	return c.idx
}

// String implements [fmt.Stringer] for debugging.
func (c *Cursor) String() string {
	return fmt.Sprintf("token.Cursor(%d/%d)", c.idx, c.stream.Len())
}
