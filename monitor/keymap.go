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

package monitor

import "unicode"

// keyNone is the matrix code for "no key held".
const keyNone = 0x7f

// keyShift is the second matrix code written when a key is typed with the
// shift modifier held.
const keyShift = 0x0f

// matrixCodes is the keyboard matrix position for each directly typeable
// character.
var matrixCodes = map[rune]byte{
	'\r': 0x01,
	'3':  0x08, 'w': 0x09, 'a': 0x0a, '4': 0x0b,
	'z': 0x0c, 's': 0x0d, 'e': 0x0e,
	'5': 0x10, 'r': 0x11, 'd': 0x12, '6': 0x13,
	'c': 0x14, 'f': 0x15, 't': 0x16, 'x': 0x17,
	'7': 0x18, 'y': 0x19, 'g': 0x1a, '8': 0x1b,
	'b': 0x1c, 'h': 0x1d, 'u': 0x1e, 'v': 0x1f,
	'9': 0x20, 'i': 0x21, 'j': 0x22, '0': 0x23,
	'm': 0x24, 'k': 0x25, 'o': 0x26, 'n': 0x27,
	'+': 0x28, 'p': 0x29, 'l': 0x2a, '-': 0x2b,
	'.': 0x2c, ':': 0x2d, '@': 0x2e, ',': 0x2f,
	'}': 0x30, '*': 0x31, ';': 0x32,
	'=': 0x35, '/': 0x37, '1': 0x38, '_': 0x39,
	'2': 0x3b, ' ': 0x3c, 'q': 0x3e,
}

// shiftedSymbols maps a character to the unshifted key it lives on. typing
// one of these holds shift and presses the base key.
var shiftedSymbols = map[rune]rune{
	'!': '1', '"': '2', '#': '3', '$': '4', '%': '5',
	'(': '8', ')': '9',
	'?': '/', '<': ',', '>': '.',
}

// keyCodes translates a character into the pair of matrix codes to write to
// the keyboard register. The second return value is false for characters
// with no position in the matrix; such characters cannot be typed.
func keyCodes(r rune) (byte, byte, bool) {
	c2 := byte(keyNone)

	// upper case letters are typed as shift plus the lower case key
	if unicode.IsUpper(r) {
		r = unicode.ToLower(r)
		c2 = keyShift
	}

	if base, ok := shiftedSymbols[r]; ok {
		r = base
		c2 = keyShift
	}

	c1, ok := matrixCodes[r]
	if !ok {
		return keyNone, keyNone, false
	}
	return c1, c2, true
}
