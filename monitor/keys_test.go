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

import (
	"strings"
	"testing"

	"github.com/jetsetilly/matrix65/test"
)

func TestType(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)

	err := m.Type("list\r")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ft.typedText(), "list\r")

	// every keystroke is a poke to the keyboard register, plus the final
	// release
	for _, l := range ft.trace {
		test.Equate(t, strings.HasPrefix(l, "sffd3615 "), true)
	}
	test.Equate(t, len(ft.trace), 6)
}

func TestTypeEscapes(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)

	// the two character escape sequences and a literal newline all press
	// Return
	err := m.Type(`run\r` + "\n" + `load\n`)
	test.ExpectedSuccess(t, err)
	test.Equate(t, ft.typedText(), "run\r\rload\r")
}

func TestTypeShifted(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)

	err := m.Type("Run!")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ft.typedText(), "R"+"un"+"!")
}

func TestTypeUnmappable(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)

	// characters with no matrix position are skipped, not fatal
	err := m.Type("a~b")
	test.ExpectedSuccess(t, err)
	test.Equate(t, ft.typedText(), "ab")
}

func TestKeyCodes(t *testing.T) {
	c1, c2, ok := keyCodes('a')
	test.Equate(t, ok, true)
	test.Equate(t, c1, 0x0a)
	test.Equate(t, c2, keyNone)

	// upper case is shift plus the lower case key
	c1, c2, ok = keyCodes('A')
	test.Equate(t, ok, true)
	test.Equate(t, c1, 0x0a)
	test.Equate(t, c2, keyShift)

	// shifted symbols live on their base key
	c1, c2, ok = keyCodes('!')
	test.Equate(t, ok, true)
	test.Equate(t, c1, 0x38)
	test.Equate(t, c2, keyShift)

	_, _, ok = keyCodes('~')
	test.Equate(t, ok, false)
}
