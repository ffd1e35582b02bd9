// This file is part of Matrix65.
//
// Matrix65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Matrix65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Matrix65.  If not, see <https://www.gnu.org/licenses/>.

package commandline

import (
	"strings"
	"unicode"
)

// Tokens represents tokenised input and a position within it.
type Tokens struct {
	input  string
	tokens []string

	// byte offset of each token in the input string
	offsets []int

	curr int
}

// TokeniseInput splits the input into whitespace separated tokens.
func TokeniseInput(input string) *Tokens {
	tk := &Tokens{input: input}

	inToken := false
	for i, r := range input {
		if unicode.IsSpace(r) {
			inToken = false
			continue
		}
		if !inToken {
			tk.tokens = append(tk.tokens, "")
			tk.offsets = append(tk.offsets, i)
			inToken = true
		}
		tk.tokens[len(tk.tokens)-1] += string(r)
	}

	return tk
}

// Reset the token position to the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// Len returns the total number of tokens.
func (tk *Tokens) Len() int {
	return len(tk.tokens)
}

// Remaining returns the number of tokens not yet walked.
func (tk *Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get the next token and advance.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Peek at the next token without advancing.
func (tk *Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Remainder returns the unwalked tail of the input with its original
// spacing, trimmed of trailing whitespace.
func (tk *Tokens) Remainder() string {
	if tk.curr >= len(tk.tokens) {
		return ""
	}
	return strings.TrimRightFunc(tk.input[tk.offsets[tk.curr]:], unicode.IsSpace)
}
