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

import "fmt"

// ansi colour numbers.
var ansiColors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// ansi target. a pen draws text, bright pens draw saturated text.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// pens is the table of bright colours to be used for text.
var pens map[string]string

// dimPens is the table of muted colours to be used for text.
var dimPens map[string]string

// normalPen is the CSI sequence for regular text.
const normalPen = "\033[m"

// boldPen is the CSI sequence for bold text.
const boldPen = "\033[1m"

func init() {
	pens = make(map[string]string)
	dimPens = make(map[string]string)
	for name, col := range ansiColors {
		pens[name] = fmt.Sprintf("\033[%d%dm", targetBrightPen, col)
		dimPens[name] = fmt.Sprintf("\033[%d%dm", targetPen, col)
	}
}

// CSI sequences for line editing.
const (
	clearLine         = "\033[2K"
	cursorStore       = "\033[s"
	cursorRestore     = "\033[u"
	cursorForwardOne  = "\033[1C"
	cursorBackwardOne = "\033[1D"
)

// cursorMove is the CSI sequence to move the cursor n characters forward
// (positive) or backward (negative).
func cursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
