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

// Package token defines the lexical elements of the stmt language and a
// materialized stream type for iterating over them.
package token

import "fmt"

// Token is a single lexical element of a stmt file.
//
// Tokens are immutable once produced by the lexer: they are plain values
// holding the classified kind, the exact matched source text, and the byte
// offset at which that text begins.
type Token struct {
	Kind   Kind
	Text   string
	Offset int
}

// IsEOF reports whether this is the end-of-input sentinel.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.IsEOF() {
		return "EOF"
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}
