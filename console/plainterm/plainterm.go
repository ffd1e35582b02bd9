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

// Package plainterm implements the console.Terminal interface with no
// frills at all. It keeps the terminal in whatever mode it started,
// probably cooked mode, which makes it the right choice for redirected
// input and dumb terminals.
package plainterm

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/matrix65/console"
	"github.com/jetsetilly/matrix65/curated"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface.
type PlainTerminal struct {
	input  io.Reader
	output io.Writer

	// prompts are only printed when a human is watching
	realInput bool
}

// Initialise implements the console.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	pt.realInput = term.IsTerminal(int(os.Stdin.Fd()))
	return nil
}

// CleanUp implements the console.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion implements the console.Terminal interface. Tab
// completion is meaningless in cooked mode.
func (pt *PlainTerminal) RegisterTabCompletion(console.TabCompletion) {
}

// TermPrintLine implements the console.Terminal interface.
func (pt *PlainTerminal) TermPrintLine(style console.Style, s string) {
	switch style {
	case console.StyleInput:
		// no input line redrawing in cooked mode
		return
	case console.StyleError:
		s = fmt.Sprintf("* %s", s)
	}

	pt.output.Write([]byte(s))
	if style != console.StylePrompt {
		pt.output.Write([]byte("\n"))
	}
}

// TermRead implements the console.Terminal interface.
func (pt *PlainTerminal) TermRead(buffer []byte, prompt string) (int, error) {
	if pt.realInput {
		pt.output.Write([]byte(prompt))
	}

	n := 0
	b := make([]byte, 1)
	for n < len(buffer) {
		_, err := pt.input.Read(b)
		if err != nil {
			if err == io.EOF {
				if n > 0 {
					return n, nil
				}
				return 0, curated.Errorf(console.UserInterrupt)
			}
			return n, err
		}
		if b[0] == '\n' {
			return n, nil
		}
		buffer[n] = b[0]
		n++
	}
	return n, nil
}
