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
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/matrix65/prg"
	"github.com/jetsetilly/matrix65/test"
)

func TestDecideMode(t *testing.T) {
	test.Equate(t, DecideMode(LegacyBasicStart).String(), "legacy BASIC")

	// only the legacy BASIC start address gets the mode switch treatment
	test.Equate(t, DecideMode(NativeBasicStart).String(), "direct jump")
	test.Equate(t, DecideMode(0xc000).String(), "direct jump")
	test.Equate(t, DecideMode(0x0000).String(), "direct jump")
}

func testProgram(loadAddress uint16, n int) *prg.Program {
	body := make([]byte, n)
	for i := range body {
		body[i] = byte(i ^ 0x55)
	}
	return &prg.Program{Name: "test.prg", LoadAddress: loadAddress, Body: body}
}

func TestLoadLegacyFromNativeMode(t *testing.T) {
	ft := newFakeTarget()
	ft.mem[regMode] = modeNativeMagic

	m := NewMonitor(ft, testDeadline)
	m.ModeSwitchWait = 100 * time.Millisecond

	p := testProgram(LegacyBasicStart, 100)
	err := m.Load(p, LoadOptions{Run: true})
	test.ExpectedSuccess(t, err)

	// the machine was switched out of native mode before the transfer and
	// the program started by typing RUN
	test.Equate(t, strings.HasPrefix(ft.typedText(), "go64\ry\r"), true)
	test.Equate(t, strings.HasSuffix(ft.typedText(), "run\r"), true)

	for i := range p.Body {
		test.Equate(t, ft.mem[uint32(LegacyBasicStart)+uint32(i)], p.Body[i])
	}

	// the transfer happens after the mode switch and the RUN keystrokes
	// after the transfer. 'r' is not typed by the mode switch sequence, so
	// its first press is the R of RUN
	keys := -1
	load := -1
	run := -1
	runPress := fmt.Sprintf("sffd3615 %02x", matrixCodes['r'])
	for i, l := range ft.trace {
		if keys == -1 && strings.HasPrefix(l, "sffd3615 ") {
			keys = i
		}
		if load == -1 && strings.HasPrefix(l, "l0801 ") {
			load = i
		}
		if run == -1 && strings.HasPrefix(l, runPress) {
			run = i
		}
	}
	test.Equate(t, keys >= 0 && load >= 0 && keys < load, true)
	test.Equate(t, run > load, true)

	// started by keystroke, never by jump
	test.Equate(t, len(ft.jumps), 0)
}

func TestLoadLegacyAlreadyThere(t *testing.T) {
	ft := newFakeTarget()
	ft.mem[regMode] = 0x00

	m := NewMonitor(ft, testDeadline)

	p := testProgram(LegacyBasicStart, 32)
	err := m.Load(p, LoadOptions{Run: true})
	test.ExpectedSuccess(t, err)

	// no mode switch needed. straight to typing RUN
	test.Equate(t, ft.typedText(), "run\r")
	test.Equate(t, len(ft.jumps), 0)
}

func TestLoadDirect(t *testing.T) {
	ft := newFakeTarget()

	// native mode. a direct load must not care
	ft.mem[regMode] = modeNativeMagic

	m := NewMonitor(ft, testDeadline)

	p := testProgram(NativeBasicStart, 64)
	err := m.Load(p, LoadOptions{Run: true})
	test.ExpectedSuccess(t, err)

	// no keystrokes at all. the program is started with a jump to its load
	// address
	test.Equate(t, ft.typedText(), "")
	test.Equate(t, len(ft.jumps), 1)
	test.Equate(t, ft.jumps[0], NativeBasicStart)

	for i := range p.Body {
		test.Equate(t, ft.mem[uint32(NativeBasicStart)+uint32(i)], p.Body[i])
	}
}

func TestLoadWithoutRun(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)

	p := testProgram(0xc000, 64)
	err := m.Load(p, LoadOptions{})
	test.ExpectedSuccess(t, err)

	// placed in memory and nothing more
	test.Equate(t, ft.typedText(), "")
	test.Equate(t, len(ft.jumps), 0)
	test.Equate(t, ft.mem[0xc000], p.Body[0])
}

func TestLoadWithReset(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)
	m.ResetWait = 100 * time.Millisecond

	p := testProgram(0xc000, 16)
	err := m.Load(p, LoadOptions{Reset: true, Run: true})
	test.ExpectedSuccess(t, err)

	test.Equate(t, ft.resets, 1)
	test.Equate(t, ft.trace[0], "!")
}

func TestLoadAbortsOnTransferFailure(t *testing.T) {
	ft := newFakeTarget()

	// answer the CPU stop and the first chunk, then go silent
	ft.muteFrom = 2

	m := NewMonitor(ft, testDeadline)

	p := testProgram(NativeBasicStart, 600)
	err := m.Load(p, LoadOptions{Run: true})
	test.ExpectedFailure(t, err)

	// a failed transfer must never start the program
	test.Equate(t, len(ft.jumps), 0)
	test.Equate(t, m.State().String(), "faulted")
}
