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

package cbmdisk

import "strings"

// filename padding byte in directory entries.
const petsciiPad = 0xa0

// petsciiName converts a padded PETSCII filename field to a host string.
// Only the printable subset matters for filenames; graphics characters
// become question marks.
func petsciiName(field []byte) string {
	s := strings.Builder{}
	for _, b := range field {
		if b == petsciiPad {
			break
		}
		switch {
		case b >= 0x20 && b <= 0x5f:
			s.WriteByte(b)
		case b >= 0xc1 && b <= 0xda:
			// shifted letters occupy a second alphabet
			s.WriteByte(b - 0x80)
		default:
			s.WriteByte('?')
		}
	}
	return s.String()
}
