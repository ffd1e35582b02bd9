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

import (
	"github.com/jetsetilly/matrix65/console/commandline"
	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/monitor"
)

const prompt = "m65 > "

// maximum length of a command line.
const inputBuffer = 255

// Console is one interactive session: a terminal on one side and a machine
// on the other.
type Console struct {
	mon  *monitor.Monitor
	term Terminal
}

// NewConsole is the preferred method of initialisation for the Console
// type.
func NewConsole(mon *monitor.Monitor, term Terminal) *Console {
	return &Console{
		mon:  mon,
		term: term,
	}
}

// Run the session until the user quits or the channel to the machine
// faults. The error the session ended with, if any, is returned.
func (con *Console) Run() error {
	if err := con.term.Initialise(); err != nil {
		return err
	}
	defer con.term.CleanUp()

	con.term.RegisterTabCompletion(commandline.NewTabCompletion(commandNames()))

	input := make([]byte, inputBuffer)

	for {
		n, err := con.term.TermRead(input, prompt)
		if err != nil {
			if curated.Is(err, UserInterrupt) {
				return nil
			}
			return err
		}

		toks := commandline.TokeniseInput(string(input[:n]))
		if toks.Len() == 0 {
			continue
		}

		quit, err := con.dispatch(toks)
		if err != nil {
			con.term.TermPrintLine(StyleError, err.Error())

			// a faulted channel means the session is over. anything else
			// is just a failed command
			if con.mon.State() == monitor.StateFaulted {
				return err
			}
		}
		if quit {
			return nil
		}
	}
}
