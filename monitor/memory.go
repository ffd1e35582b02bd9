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
	"encoding/hex"
	"strings"

	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/logger"
)

// error patterns for memory access.
const (
	// a response arrived wearing the prompt but did not parse as the
	// expected shape. never silently tolerated; the channel is resynced
	// and the error surfaced
	ProtocolMismatch = "monitor: protocol mismatch: %v"

	// a verified write read back differently. the transfer is not retried
	VerifyMismatch = "monitor: verify mismatch at %07x"
)

// Peek reads n bytes of target memory starting at addr.
func (m *Monitor) Peek(addr uint32, n int) ([]byte, error) {
	if n <= 0 {
		return []byte{}, nil
	}

	if _, err := m.ch.Send(stopCPU()); err != nil {
		return nil, err
	}
	defer m.resumeCPU()

	return m.peek(addr, n)
}

// peek is Peek without the CPU stop/start bracketing. also used by the
// verify pass of Poke(), which runs with the CPU already stopped.
func (m *Monitor) peek(addr uint32, n int) ([]byte, error) {
	logger.Logf("monitor", "peek %d byte(s) at %07x", n, addr)

	data := make([]byte, 0, n)
	next := addr
	cmd := dumpMemory(addr)

	for len(data) < n {
		resp, err := m.ch.Send(cmd)
		if err != nil {
			return nil, err
		}

		lines := resp.Lines()
		if len(lines) == 0 {
			m.resyncAfterMismatch()
			return nil, curated.Errorf(ProtocolMismatch, "empty response to memory dump")
		}

		for _, l := range lines {
			la, lb, err := parseDumpLine(l)
			if err != nil {
				m.resyncAfterMismatch()
				return nil, err
			}
			if la != next {
				m.resyncAfterMismatch()
				return nil, curated.Errorf(ProtocolMismatch, "memory dump out of sequence")
			}
			data = append(data, lb...)
			next += uint32(len(lb))
		}

		cmd = dumpNext()
	}

	return data[:n], nil
}

// parseDumpLine interprets one line of a memory dump response. The shape is
// a colon, an eight digit hex address and sixteen byte fields. Byte fields
// may or may not be space separated; the firmware has printed both shapes
// over the years.
func parseDumpLine(line string) (uint32, []byte, error) {
	if len(line) < 1+dumpAddrWidth || line[0] != ':' {
		return 0, nil, curated.Errorf(ProtocolMismatch, "not a memory dump line")
	}

	addr, err := strtoaddr(line[1 : 1+dumpAddrWidth])
	if err != nil {
		return 0, nil, curated.Errorf(ProtocolMismatch, "bad address field in memory dump")
	}

	fields := strings.ReplaceAll(line[1+dumpAddrWidth:], " ", "")
	data, err := hex.DecodeString(fields)
	if err != nil || len(data) != DumpLineBytes {
		return 0, nil, curated.Errorf(ProtocolMismatch, "bad byte fields in memory dump")
	}

	return addr, data, nil
}

// Poke writes the data bytes to target memory starting at addr. Writes
// larger than one command's safe payload are split into consecutive chunks
// at strictly ascending, contiguous addresses. If the Verify field is set
// the written range is read back and compared.
func (m *Monitor) Poke(addr uint32, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	if _, err := m.ch.Send(stopCPU()); err != nil {
		return err
	}
	defer m.resumeCPU()

	if err := m.poke(addr, data); err != nil {
		return err
	}

	if m.Verify {
		return m.verify(addr, data)
	}
	return nil
}

// poke is Poke without the CPU bracketing or the verify pass.
func (m *Monitor) poke(addr uint32, data []byte) error {
	logger.Logf("monitor", "poke %d byte(s) at %07x", len(data), addr)

	// the fast load path only addresses the 16-bit address space. anything
	// beyond it goes the slower setmem way, sixteen bytes a line
	if addr+uint32(len(data)) <= 0x10000 {
		for i := 0; i < len(data); i += FastLoadChunk {
			end := i + FastLoadChunk
			if end > len(data) {
				end = len(data)
			}
			if _, err := m.ch.Send(fastLoad(uint16(addr)+uint16(i), data[i:end])); err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i < len(data); i += setMemoryMaxBytes {
		end := i + setMemoryMaxBytes
		if end > len(data) {
			end = len(data)
		}
		if _, err := m.ch.Send(setMemory(addr+uint32(i), data[i:end])); err != nil {
			return err
		}
	}
	return nil
}

// verify reads the written range back and compares it to the intended
// bytes.
func (m *Monitor) verify(addr uint32, data []byte) error {
	readback, err := m.peek(addr, len(data))
	if err != nil {
		return err
	}
	for i := range data {
		if readback[i] != data[i] {
			return curated.Errorf(VerifyMismatch, addr+uint32(i))
		}
	}
	return nil
}

// resumeCPU restarts the target CPU after a memory operation. Best effort;
// if the channel has faulted the session is over anyway.
func (m *Monitor) resumeCPU() {
	_, _ = m.ch.Send(startCPU())
}

// resyncAfterMismatch recovers the channel after a response that did not
// parse. The mismatch is what the caller sees; a failed recovery shows up in
// the session log and every later command fails with the faulted error.
func (m *Monitor) resyncAfterMismatch() {
	if err := m.ch.Resync(); err != nil {
		logger.Logf("monitor", "resync after mismatch: %v", err)
	}
}

// strtoaddr parses a hexadecimal address field.
func strtoaddr(s string) (uint32, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return 0, err
	}
	var a uint32
	for _, v := range b {
		a = a<<8 | uint32(v)
	}
	return a, nil
}
