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
	"time"
)

// DefaultDeadline is the default overall deadline for one monitor response.
const DefaultDeadline = 2 * time.Second

// Monitor is a session with the matrix mode monitor. It owns the channel,
// and through it the serial connection, exclusively. All operations are
// strictly synchronous; there is never more than one command in flight.
type Monitor struct {
	ch *Channel

	// verify every write by reading the range back. the protocol has no
	// checksums so this is the only integrity check available
	Verify bool

	// how long Reset() waits for the machine to boot back to a responsive
	// monitor
	ResetWait time.Duration

	// how long the loader waits for a requested mode switch to take effect
	ModeSwitchWait time.Duration
}

// NewMonitor is the preferred method of initialisation of the Monitor type.
// The deadline applies to every command/response exchange.
func NewMonitor(trans Transport, deadline time.Duration) *Monitor {
	return &Monitor{
		ch:             NewChannel(trans, deadline),
		ResetWait:      15 * time.Second,
		ModeSwitchWait: 5 * time.Second,
	}
}

// State of the underlying channel. A Faulted monitor cannot be used again;
// reopen the serial port and construct a new Monitor.
func (m *Monitor) State() State {
	return m.ch.State()
}

// Stop the target CPU.
func (m *Monitor) Stop() error {
	_, err := m.ch.Send(stopCPU())
	return err
}

// Start the target CPU after a Stop().
func (m *Monitor) Start() error {
	_, err := m.ch.Send(startCPU())
	return err
}

// Jump sets the target's program counter to addr and resumes execution
// there.
func (m *Monitor) Jump(addr uint16) error {
	_, err := m.ch.Send(jump(addr))
	return err
}
