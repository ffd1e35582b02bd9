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
	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/logger"
)

// ResetTimeout is the error pattern returned when the machine does not come
// back to a responsive monitor within ResetWait of being reset.
const ResetTimeout = "monitor: no monitor prompt within %v of reset"

// Reset the target machine and wait for it to boot back to a responsive
// monitor. Everything in flight on the target is lost, which is the point.
func (m *Monitor) Reset() error {
	logger.Log("monitor", "resetting machine")

	if err := m.ch.sendRaw(resetMachine()); err != nil {
		return err
	}

	if err := m.ch.bannerWait(m.ResetWait); err != nil {
		if curated.Is(err, responseTimeout) {
			return curated.Errorf(ResetTimeout, m.ResetWait)
		}
		return err
	}
	return nil
}
