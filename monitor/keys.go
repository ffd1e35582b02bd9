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

	"github.com/jetsetilly/matrix65/logger"
)

// Type injects the string as keystrokes through the keyboard matrix
// register, as though it had been typed on the machine's own keyboard.
//
// The escape sequences \r and \n both press Return, as does a literal
// newline in the string. Characters with no position in the keyboard
// matrix are skipped with a log entry; they do not fail the operation.
func (m *Monitor) Type(text string) error {
	text = strings.ReplaceAll(text, "\\r", "\r")
	text = strings.ReplaceAll(text, "\\n", "\r")
	text = strings.ReplaceAll(text, "\n", "\r")

	logger.Logf("monitor", "typing %d key(s)", len(text))

	for _, r := range text {
		c1, c2, ok := keyCodes(r)
		if !ok {
			logger.Logf("monitor", "no matrix position for %q. skipping", r)
			continue
		}
		if _, err := m.ch.Send(keyPress(c1, c2)); err != nil {
			return err
		}
	}

	_, err := m.ch.Send(keyRelease())
	return err
}
