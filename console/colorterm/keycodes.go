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

// list of ASCII codes for non-alphanumeric characters.
const (
	keyInterrupt      = 3
	keyTab            = 9
	keyCarriageReturn = 13
	keyEsc            = 27
	keyBackspace      = 8
	keyDel            = 127
)

// list of ASCII codes for characters that can follow keyEsc.
const (
	escDelete = '3'
	escCursor = '['
)

// list of ASCII codes for characters that can follow escCursor.
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)
