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

import "strings"

// TabCompletion completes the first word of the input against a fixed list
// of command names, cycling through the candidates on repeated calls.
type TabCompletion struct {
	options []string

	// the match cycle in progress. lastGuess lets us tell a repeated tab
	// from fresh input
	matches   []string
	matchIdx  int
	lastGuess string
}

// NewTabCompletion is the preferred method of initialisation for the
// TabCompletion type.
func NewTabCompletion(options []string) *TabCompletion {
	return &TabCompletion{options: options}
}

// Complete the input. Repeated calls with the result of the previous call
// cycle through all candidates.
func (tc *TabCompletion) Complete(input string) string {
	// a repeated tab on the previous guess cycles to the next candidate
	if input == tc.lastGuess && len(tc.matches) > 0 {
		tc.matchIdx = (tc.matchIdx + 1) % len(tc.matches)
		tc.lastGuess = tc.matches[tc.matchIdx] + " "
		return tc.lastGuess
	}

	// completion only works on the command word itself
	if strings.ContainsAny(strings.TrimSpace(input), " \t") {
		return input
	}

	prefix := strings.ToUpper(strings.TrimSpace(input))
	tc.matches = tc.matches[:0]
	for _, o := range tc.options {
		if strings.HasPrefix(o, prefix) {
			tc.matches = append(tc.matches, o)
		}
	}
	if len(tc.matches) == 0 {
		tc.lastGuess = ""
		return input
	}

	tc.matchIdx = 0
	tc.lastGuess = tc.matches[0] + " "
	return tc.lastGuess
}

// Reset the completion cycle.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.lastGuess = ""
	tc.matchIdx = 0
}
