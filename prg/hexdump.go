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

package prg

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// bytes per hexdump line.
const hexdumpWidth = 16

// Hexdump writes a human readable view of data to output. Addressing starts
// at origin, which will usually be the address the bytes were peeked from.
func Hexdump(output io.Writer, origin uint32, data []byte) {
	for i := 0; i < len(data); i += hexdumpWidth {
		end := i + hexdumpWidth
		if end > len(data) {
			end = len(data)
		}
		line := data[i:end]

		hex := strings.Builder{}
		chr := strings.Builder{}
		for _, b := range line {
			hex.WriteString(fmt.Sprintf("%02x ", b))
			if b < 0x80 && unicode.IsPrint(rune(b)) {
				chr.WriteByte(b)
			} else {
				chr.WriteString(".")
			}
		}

		fmt.Fprintf(output, "%07x  %-48s %s\n", origin+uint32(i), hex.String(), chr.String())
	}
}
