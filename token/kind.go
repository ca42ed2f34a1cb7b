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

const (
	Unrecognized Kind = iota // Unrecognized garbage in the input file.

	EOF      // End of input. The lexer emits exactly one of these, last.
	Space    // Non-comment contiguous whitespace.
	Comment  // A single comment.
	Ident    // An identifier.
	Keyword  // A reserved word.
	Operator // An operator symbol.
	Literal  // A run of digits that is some kind of number.
)

// Kind identifies what kind of token a particular [Token] is.
//
// The stmt lexer currently produces only EOF, Ident, Literal, and
// Unrecognized. Space is consumed silently, and Keyword, Operator, and
// Comment are declared for the token type's forward compatibility but have
// no classification rules behind them yet.
type Kind byte

// IsSkippable returns whether this is a token that should not be examined
// during syntactic analysis.
func (k Kind) IsSkippable() bool {
	return k == Space || k == Comment
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case EOF:
		return "EOF"
	case Space:
		return "Space"
	case Comment:
		return "Comment"
	case Ident:
		return "Ident"
	case Keyword:
		return "Keyword"
	case Operator:
		return "Operator"
	case Literal:
		return "Literal"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}
