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

	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/logger"
	"github.com/jetsetilly/matrix65/test"
)

func TestPeek(t *testing.T) {
	ft := newFakeTarget()
	for i := 0; i < 64; i++ {
		ft.mem[0x1000+uint32(i)] = byte(i * 3)
	}

	m := NewMonitor(ft, testDeadline)

	// an awkward length that crosses dump line boundaries
	data, err := m.Peek(0x1000, 40)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(data), 40)
	for i := 0; i < 40; i++ {
		test.Equate(t, data[i], byte(i*3))
	}

	// the CPU is stopped for the duration and restarted afterwards
	test.Equate(t, ft.trace[0], "t1")
	test.Equate(t, ft.trace[len(ft.trace)-1], "t0")
	test.Equate(t, ft.cpuStopped, false)

	// the first dump names the address, continuations do not
	test.Equate(t, ft.trace[1], "m0001000")
	test.Equate(t, ft.trace[2], "m")
}

func TestPeekZeroLength(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)

	data, err := m.Peek(0x1000, 0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(data), 0)
	test.Equate(t, len(ft.trace), 0)
}

func TestPeekProtocolMismatch(t *testing.T) {
	ft := newFakeTarget()
	ft.garble = true
	m := NewMonitor(ft, testDeadline)

	_, err := m.Peek(0x1000, 16)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, ProtocolMismatch), true)

	// a parse failure resyncs the channel rather than faulting it
	test.Equate(t, m.State().String(), "idle")
}

func TestPeekMismatchResyncFailure(t *testing.T) {
	logger.Clear()

	ft := newFakeTarget()
	ft.garble = true

	// answer the CPU stop and the garbled dump, then go silent
	ft.muteFrom = 2

	m := NewMonitor(ft, testDeadline)

	// the caller still sees the mismatch, not the failed recovery
	_, err := m.Peek(0x1000, 16)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, ProtocolMismatch), true)
	test.Equate(t, m.State().String(), "faulted")

	// the failed recovery is in the session log
	s := strings.Builder{}
	logger.Write(&s)
	test.Equate(t, strings.Contains(s.String(), "resync after mismatch"), true)
}

func TestPokeFastLoad(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)

	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i)
	}

	err := m.Poke(0x4000, data)
	test.ExpectedSuccess(t, err)

	for i := range data {
		test.Equate(t, ft.mem[0x4000+uint32(i)], data[i])
	}

	// chunks at strictly ascending contiguous addresses, end exclusive
	test.Equate(t, ft.trace[1], "l4000 4100")
	test.Equate(t, ft.trace[2], "l4100 4200")
	test.Equate(t, ft.trace[3], "l4200 4300")
	test.Equate(t, ft.trace[4], "l4300 43e8")
	test.Equate(t, ft.trace[5], "t0")
}

func TestPokeFastLoadAtTopOfMemory(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)

	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(255 - i)
	}

	// a write ending exactly at the top of the 16-bit space. the exclusive
	// end address wraps to zero
	err := m.Poke(0xff00, data)
	test.ExpectedSuccess(t, err)

	test.Equate(t, ft.trace[1], "lff00 0000")
	test.Equate(t, ft.mem[0xff00], data[0])
	test.Equate(t, ft.mem[0xffff], data[255])
}

func TestPokeWideAddress(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)

	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(0x80 + i)
	}

	// beyond the 16-bit address space the fast load path is unavailable
	err := m.Poke(0x8010000, data)
	test.ExpectedSuccess(t, err)

	for i := range data {
		test.Equate(t, ft.mem[0x8010000+uint32(i)], data[i])
	}

	test.Equate(t, strings.HasPrefix(ft.trace[1], "s8010000 "), true)
	test.Equate(t, strings.HasPrefix(ft.trace[2], "s8010010 "), true)
	test.Equate(t, strings.HasPrefix(ft.trace[3], "s8010020 "), true)
}

func TestPokeVerify(t *testing.T) {
	ft := newFakeTarget()
	m := NewMonitor(ft, testDeadline)
	m.Verify = true

	data := []byte{0x01, 0x02, 0x03, 0x04}
	err := m.Poke(0x4000, data)
	test.ExpectedSuccess(t, err)

	// the verify pass runs inside the one CPU stop. exactly one t1 and one
	// t0 on the wire
	stops := 0
	for _, l := range ft.trace {
		if l == "t1" || l == "t0" {
			stops++
		}
	}
	test.Equate(t, stops, 2)
}

func TestParseDumpLine(t *testing.T) {
	// both field shapes the firmware has printed over the years
	addr, data, err := parseDumpLine(":00001000 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f")
	test.ExpectedSuccess(t, err)
	test.Equate(t, addr, 0x1000)
	test.Equate(t, len(data), 16)
	test.Equate(t, data[15], 0x0f)

	addr, data, err = parseDumpLine(":00001000000102030405060708090a0b0c0d0e0f")
	test.ExpectedSuccess(t, err)
	test.Equate(t, addr, 0x1000)
	test.Equate(t, len(data), 16)

	_, _, err = parseDumpLine("garbage")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, ProtocolMismatch), true)

	_, _, err = parseDumpLine(":00001000 00 01")
	test.ExpectedFailure(t, err)
}
