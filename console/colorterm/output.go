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
	"github.com/jetsetilly/matrix65/console"
)

// TermPrintLine implements the console.Terminal interface.
func (ct *ColorTerminal) TermPrintLine(style console.Style, s string) {
	if style != console.StyleInput {
		ct.print("\r")
	}

	switch style {
	case console.StylePrompt:
		ct.print(boldPen)
	case console.StyleResponse:
		ct.print(pens["yellow"])
	case console.StyleFeedback:
		ct.print(dimPens["white"])
	case console.StyleHelp:
		ct.print(dimPens["white"])
		ct.print("  ")
	case console.StyleError:
		ct.print(pens["red"])
		ct.print("* ")
	}

	ct.print(s)
	ct.print(normalPen)

	if style != console.StylePrompt && style != console.StyleInput {
		ct.print("\n")
	}
}
