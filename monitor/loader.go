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

	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/logger"
	"github.com/jetsetilly/matrix65/prg"
)

// error patterns for the loader.
const (
	// the machine would not leave native mode within ModeSwitchWait
	ModeSwitchTimeout = "monitor: machine did not enter legacy mode within %v"
)

// the two BASIC program start addresses the loader treats specially.
const (
	// start of BASIC program text in the legacy (C64) memory map
	LegacyBasicStart = 0x0801

	// start of BASIC program text in the native memory map
	NativeBasicStart = 0x2001
)

// ExecutionMode describes how a program will be started once transferred.
type ExecutionMode int

// List of valid ExecutionMode values.
const (
	// transferred and started with a direct jump to the load address
	ModeDirect ExecutionMode = iota

	// the machine is switched to its legacy personality first and the
	// program is started by typing RUN, as a seated user would
	ModeLegacyBasic
)

func (m ExecutionMode) String() string {
	switch m {
	case ModeDirect:
		return "direct jump"
	case ModeLegacyBasic:
		return "legacy BASIC"
	}
	return "unknown"
}

// DecideMode chooses the execution mode for a program from its load address
// alone. Only the legacy BASIC start address gets the mode switch and typed
// RUN treatment; everything else, the native BASIC start included, is
// started with a direct jump.
func DecideMode(loadAddress uint16) ExecutionMode {
	if loadAddress == LegacyBasicStart {
		return ModeLegacyBasic
	}
	return ModeDirect
}

// LoadOptions adjust how Load() delivers a program.
type LoadOptions struct {
	// reset the machine before transferring. recommended; it puts the
	// target in a known state
	Reset bool

	// start the program once transferred. when false the program is placed
	// in memory and nothing more
	Run bool
}

// Load transfers a program to the target and optionally starts it. The
// program's load address decides the delivery: the legacy BASIC start
// address means switching the machine to its legacy personality before the
// transfer and typing RUN after it; any other address means a direct jump.
func (m *Monitor) Load(p *prg.Program, opts LoadOptions) error {
	mode := DecideMode(p.LoadAddress)
	logger.Logf("monitor", "load %s at %04x (%s)", p.ShortName(), p.LoadAddress, mode)

	if opts.Reset {
		if err := m.Reset(); err != nil {
			return err
		}
	}

	if mode == ModeLegacyBasic {
		if err := m.ensureLegacyMode(); err != nil {
			return err
		}
	}

	if err := m.Poke(uint32(p.LoadAddress), p.Body); err != nil {
		return err
	}

	if !opts.Run {
		return nil
	}

	if mode == ModeLegacyBasic {
		return m.Type("run\r")
	}

	_, err := m.ch.Send(jump(p.LoadAddress))
	return err
}

// EnterLegacyMode switches the machine to its legacy personality if it is
// not already there.
func (m *Monitor) EnterLegacyMode() error {
	return m.ensureLegacyMode()
}

// ensureLegacyMode switches the machine to its legacy personality if it is
// not already there. The switch is performed with typed keystrokes, the same
// way a seated user would do it, and confirmed by polling the mode register.
func (m *Monitor) ensureLegacyMode() error {
	b, err := m.Peek(regMode, 1)
	if err != nil {
		return err
	}
	if b[0] != modeNativeMagic {
		return nil
	}

	logger.Log("monitor", "switching to legacy mode")

	if err := m.Type("go64\ry\r"); err != nil {
		return err
	}

	// the switch is a soft reboot of sorts. poll until the mode register
	// stops reporting native mode
	deadline := time.Now().Add(m.ModeSwitchWait)
	for time.Now().Before(deadline) {
		b, err := m.Peek(regMode, 1)
		if err != nil {
			return err
		}
		if b[0] != modeNativeMagic {
			return nil
		}
		time.Sleep(m.ModeSwitchWait / 50)
	}

	return curated.Errorf(ModeSwitchTimeout, m.ModeSwitchWait)
}
