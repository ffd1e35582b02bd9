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

package console

// UserInterrupt is the error pattern returned by TermRead() when the user
// has asked to leave the session, with ctrl-c or otherwise.
const UserInterrupt = "user interrupt"

// Style describes the category of text being printed, for terminals capable
// of telling them apart.
type Style int

// List of valid Style values.
const (
	// the prompt. printed without a trailing newline
	StylePrompt Style = iota

	// text the user is currently editing. only meaningful to terminals
	// that redraw the input line
	StyleInput

	// responses from the machine
	StyleResponse

	// what the program is doing on the user's behalf
	StyleFeedback

	// help text
	StyleHelp

	// errors. terminals must print these even when nothing else
	StyleError
)

// Terminal defines the operations required by the console's command line
// interface.
type Terminal interface {
	// Initialise the terminal. not all terminal implementations will need
	// to do anything
	Initialise() error

	// Restore the terminal to its original state, if possible
	CleanUp()

	// Register a tab completion implementation to use with the terminal.
	// not all implementations need to respond meaningfully to this
	RegisterTabCompletion(TabCompletion)

	// TermRead fills the buffer with one line of user input, returning the
	// number of characters inserted
	TermRead(buffer []byte, prompt string) (int, error)

	// TermPrintLine prints a line of output in the given style
	TermPrintLine(style Style, s string)
}

// TabCompletion defines the operations required for tab completion. The
// commandline sub-package provides an implementation.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}
