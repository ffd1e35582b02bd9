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
)

// The matrix mode monitor's command grammar. The verb letters and field
// widths are protocol constants from the MEGA65 monitor reference; they are
// gathered here rather than scattered through the package as literals.
const (
	// command lines end with a carriage return. the reset line is the one
	// exception, see resetMachine()
	lineTerminator = '\r'

	// the monitor signals it is ready for the next command by printing a
	// full stop at the start of a line
	promptSentinel = '.'
)

// verb letters.
const (
	verbSetMemory  = 's'
	verbDumpMemory = 'm'
	verbFastLoad   = 'l'
	verbJump       = 'g'
	verbTrace      = 't'
	verbReset      = '!'
)

// field widths and transfer limits.
const (
	// addresses on a command line are seven hex digits, covering the
	// machine's 28 bit bus
	addrWidth = 7

	// the address field of a memory dump response line is eight hex digits
	dumpAddrWidth = 8

	// a memory dump response line carries sixteen byte fields
	DumpLineBytes = 16

	// maximum bytes on one setmem line. the monitor's input buffer is line
	// oriented and 80 characters long; a sixteen byte line stays inside it
	// with the address field and separators included
	setMemoryMaxBytes = 16

	// bytes sent after one fast load command. the raw binary path is
	// bounded by the UART FIFO, which the monitor drains comfortably in
	// bursts of this size at the default baud rate
	FastLoadChunk = 256
)

// hardware registers the protocol relies on.
const (
	// keyboard matrix injection register. writing two matrix codes here
	// presses keys exactly as the keyboard hardware would
	regKeyboard = 0xffd3615

	// reads modeNativeMagic when the machine is in its native mode
	regMode         = 0xffd3030
	modeNativeMagic = 0x64
)

// Command is one outbound protocol unit: a single line for the monitor,
// optionally followed by a raw byte payload (the fast load path). Commands
// are immutable once constructed and are consumed by a single Send().
type Command struct {
	line    string
	payload []byte

	// terminator defaults to lineTerminator when zero
	terminator byte
}

func (cmd Command) String() string {
	return cmd.line
}

// encodedLine returns the wire form of the command line, terminator
// included but payload excluded.
func (cmd Command) encodedLine() []byte {
	t := cmd.terminator
	if t == 0 {
		t = lineTerminator
	}
	return append([]byte(cmd.line), t)
}

// stopCPU halts the target CPU. the monitor requires a halted CPU for
// coherent memory access.
func stopCPU() Command {
	return Command{line: fmt.Sprintf("%c1", verbTrace)}
}

// startCPU resumes the target CPU after stopCPU().
func startCPU() Command {
	return Command{line: fmt.Sprintf("%c0", verbTrace)}
}

// dumpMemory requests a memory dump beginning at addr.
func dumpMemory(addr uint32) Command {
	return Command{line: fmt.Sprintf("%c%0*x", verbDumpMemory, addrWidth, addr)}
}

// dumpNext continues the most recent memory dump.
func dumpNext() Command {
	return Command{line: string(rune(verbDumpMemory))}
}

// setMemory writes the data bytes at addr, expressed as hex fields on the
// command line. len(data) must not exceed setMemoryMaxBytes.
func setMemory(addr uint32, data []byte) Command {
	s := strings.Builder{}
	fmt.Fprintf(&s, "%c%0*x", verbSetMemory, addrWidth, addr)
	for _, b := range data {
		fmt.Fprintf(&s, " %02x", b)
	}
	return Command{line: s.String()}
}

// fastLoad writes the data bytes at addr as a raw binary payload following
// the command line. The end address is exclusive and wraps at the top of
// the 16-bit address space, as the monitor expects.
func fastLoad(addr uint16, data []byte) Command {
	end := addr + uint16(len(data))
	return Command{
		line:    fmt.Sprintf("%c%04x %04x", verbFastLoad, addr, end),
		payload: data,
	}
}

// jump sets the program counter to addr and resumes the CPU.
func jump(addr uint16) Command {
	return Command{line: fmt.Sprintf("%c%04x", verbJump, addr)}
}

// keyPress injects the two keyboard matrix codes through the keyboard
// register.
func keyPress(c1, c2 byte) Command {
	return setMemory(regKeyboard, []byte{c1, c2})
}

// keyRelease clears the keyboard matrix after typing.
func keyRelease() Command {
	return setMemory(regKeyboard, []byte{keyNone, keyNone, keyNone})
}

// resetMachine resets the target. The reset line is terminated with a
// newline rather than a carriage return; the monitor accepts the command on
// either terminator but the reset path has always been driven this way and
// the firmware's behaviour on the alternative is not documented.
func resetMachine() Command {
	return Command{line: string(rune(verbReset)), terminator: '\n'}
}
