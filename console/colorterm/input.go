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

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/matrix65/console"
	"github.com/jetsetilly/matrix65/curated"
)

// TermRead implements the console.Terminal interface. The terminal is
// switched to raw mode for the duration of the read.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt string) (int, error) {
	ct.rawMode()
	defer ct.canonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput stores the latest input when scrolling through history, so
	// nothing typed is lost if the user comes back to where they left off
	buffInput := make([]byte, cap(buffer))
	buffN := 0

	// the method for cursor placement is as follows: for each iteration of
	// the loop, store the current cursor position, clear the current line,
	// output the prompt and the input buffer, then restore the cursor. for
	// this to work the cursor must start in its initial position
	ct.print("\r%s", cursorMove(len(prompt)))

	for {
		ct.print(cursorStore)
		ct.TermPrintLine(console.StylePrompt, clearLine+prompt)
		ct.TermPrintLine(console.StyleInput, string(buffer[:n]))
		ct.print(cursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, curated.Errorf("colorterm: %v", err)
		}

		switch r {
		case keyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(buffer[:cursor]))

				// the difference in length between the new input and the
				// old input
				d := len(s) - cursor

				// append everything after the cursor to the new string and
				// copy into the input buffer
				s += string(buffer[cursor:n])
				copy(buffer, []byte(s))

				// advance cursor to the end of the completed word
				ct.print(cursorMove(d))
				cursor += d
				n += d
			}

		case keyInterrupt:
			ct.print("\n")
			return 0, curated.Errorf(console.UserInterrupt)

		case keyCarriageReturn:
			// append to command history if the input is not the same as
			// the most recent entry
			newEntry := n > 0
			if newEntry && len(ct.commandHistory) > 0 {
				last := ct.commandHistory[len(ct.commandHistory)-1]
				if len(last) == n {
					newEntry = false
					for i := 0; i < n; i++ {
						if buffer[i] != last[i] {
							newEntry = true
							break
						}
					}
				}
			}
			if newEntry {
				nh := make([]byte, n)
				copy(nh, buffer[:n])
				ct.commandHistory = append(ct.commandHistory, nh)
			}

			ct.print("\n")
			return n, nil

		case keyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, curated.Errorf("colorterm: %v", err)
			}
			switch r {
			case escCursor:
				r, _, err := ct.reader.ReadRune()
				if err != nil {
					return n, curated.Errorf("colorterm: %v", err)
				}

				switch r {
				case cursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// store the current input for possible later
						// editing if we're at the end of the history
						if history == len(ct.commandHistory) {
							copy(buffInput, buffer[:n])
							buffN = n
						}

						if history > 0 {
							history--
							copy(buffer, ct.commandHistory[history])
							n = len(ct.commandHistory[history])
							ct.print(cursorMove(n - cursor))
							cursor = n
						}
					}

				case cursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if history < len(ct.commandHistory)-1 {
							history++
							copy(buffer, ct.commandHistory[history])
							n = len(ct.commandHistory[history])
							ct.print(cursorMove(n - cursor))
							cursor = n
						} else if history == len(ct.commandHistory)-1 {
							history++
							copy(buffer, buffInput)
							n = buffN
							ct.print(cursorMove(n - cursor))
							cursor = n
						}
					}

				case cursorForward:
					// move forward through current command input
					if cursor < n {
						ct.print(cursorForwardOne)
						cursor++
					}

				case cursorBackward:
					// move backward through current command input
					if cursor > 0 {
						ct.print(cursorBackwardOne)
						cursor--
					}

				case escDelete:
					// the delete key sends a closing tilde too
					_, _, _ = ct.reader.ReadRune()
					if cursor < n {
						copy(buffer[cursor:], buffer[cursor+1:n])
						n--
						history = len(ct.commandHistory)
					}
				}
			}

		case keyBackspace, keyDel:
			if cursor > 0 {
				copy(buffer[cursor-1:], buffer[cursor:n])
				ct.print(cursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) && n < len(buffer)-utf8.UTFMax {
				ct.print("%c", r)
				m := utf8.EncodeRune(er, r)
				copy(buffer[cursor+m:], buffer[cursor:n])
				copy(buffer[cursor:], er[:m])
				cursor += m
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}
