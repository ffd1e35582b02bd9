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

// Package colorterm implements the console.Terminal interface for ANSI
// terminals. It supports colour output, command history and tab completion.
package colorterm

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jetsetilly/matrix65/console"
	"github.com/jetsetilly/matrix65/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// ColorTerminal implements the console.Terminal interface for a posix
// terminal with ANSI capability.
type ColorTerminal struct {
	input  *os.File
	output *os.File
	reader *bufio.Reader

	// terminal attributes for the two modes the terminal switches between.
	// canonical for output, raw while editing an input line
	canAttr unix.Termios
	rawAttr unix.Termios

	commandHistory [][]byte
	tabCompletion  console.TabCompletion
}

// Initialise implements the console.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	ct.input = os.Stdin
	ct.output = os.Stdout
	ct.reader = bufio.NewReader(ct.input)

	if err := termios.Tcgetattr(ct.input.Fd(), &ct.canAttr); err != nil {
		return curated.Errorf("colorterm: %v", err)
	}

	ct.rawAttr = ct.canAttr
	termios.Cfmakeraw(&ct.rawAttr)

	// keep output post-processing in raw mode so a newline still implies a
	// carriage return
	ct.rawAttr.Oflag = ct.canAttr.Oflag

	ct.commandHistory = make([][]byte, 0)

	return nil
}

// CleanUp implements the console.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.print("\r")
	ct.canonicalMode()
}

// RegisterTabCompletion implements the console.Terminal interface.
func (ct *ColorTerminal) RegisterTabCompletion(tc console.TabCompletion) {
	ct.tabCompletion = tc
}

func (ct *ColorTerminal) rawMode() {
	_ = termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.rawAttr)
}

func (ct *ColorTerminal) canonicalMode() {
	_ = termios.Tcsetattr(ct.input.Fd(), termios.TCIFLUSH, &ct.canAttr)
}

// print writes the formatted string to the output terminal.
func (ct *ColorTerminal) print(s string, a ...interface{}) {
	if len(a) > 0 {
		s = fmt.Sprintf(s, a...)
	}
	ct.output.WriteString(s)
}
