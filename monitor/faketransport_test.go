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
	"strconv"
	"strings"
	"unicode"

	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/serialport"
)

// fakeTarget implements Transport and behaves like the matrix mode monitor
// on the other end of the wire: it parses the command lines it is written,
// keeps a sparse memory image, decodes keyboard matrix pokes back into
// keystrokes and produces the responses the real firmware would.
type fakeTarget struct {
	mem map[uint32]byte

	// bytes waiting to be read by the channel
	out []byte

	// the command line being accumulated
	inbuf []byte

	// raw payload bytes still expected after a fast load line
	payload     int
	payloadAddr uint32

	// echo written line bytes back, as a real serial monitor session does
	echo bool

	// swallow the next n responses
	mute int

	// stop responding once this many responses have been sent. -1 disables
	muteFrom  int
	responded int

	// every command line received, resync probes included
	trace []string

	// decoded keystrokes from keyboard register pokes
	typed []rune

	jumps      []uint16
	resets     int
	cpuStopped bool
	dumpAddr   uint32

	// dump responses become garbage when set
	garble bool

	revKeys  map[byte]rune
	revShift map[rune]rune
}

func newFakeTarget() *fakeTarget {
	rev := make(map[byte]rune)
	for r, c := range matrixCodes {
		rev[c] = r
	}
	revShift := make(map[rune]rune)
	for sym, base := range shiftedSymbols {
		revShift[base] = sym
	}
	return &fakeTarget{
		mem:      make(map[uint32]byte),
		muteFrom: -1,
		revKeys:  rev,
		revShift: revShift,
	}
}

// ReadByte implements the Transport interface.
func (t *fakeTarget) ReadByte() (byte, error) {
	if len(t.out) == 0 {
		return 0, curated.Errorf(serialport.ReadTimeout)
	}
	b := t.out[0]
	t.out = t.out[1:]
	return b, nil
}

// Write implements the Transport interface.
func (t *fakeTarget) Write(data []byte) error {
	for _, b := range data {
		if t.payload > 0 {
			t.mem[t.payloadAddr] = b
			t.payloadAddr++
			t.payload--
			if t.payload == 0 {
				t.respond("")
			}
			continue
		}

		if t.echo {
			t.out = append(t.out, b)
		}

		if b == '\r' || b == '\n' {
			line := string(t.inbuf)
			t.inbuf = t.inbuf[:0]
			t.handleLine(line)
			continue
		}
		t.inbuf = append(t.inbuf, b)
	}
	return nil
}

func (t *fakeTarget) handleLine(line string) {
	t.trace = append(t.trace, line)

	switch {
	case line == "":
		t.respond("")

	case line == "t1":
		t.cpuStopped = true
		t.respond("")

	case line == "t0":
		t.cpuStopped = false
		t.respond("")

	case line[0] == 'm':
		addr := t.dumpAddr
		if len(line) > 1 {
			a, err := strconv.ParseUint(line[1:], 16, 32)
			if err != nil {
				return
			}
			addr = uint32(a)
		}
		t.dumpAddr = addr + DumpLineBytes
		if t.garble {
			t.respond("not a dump line")
			return
		}
		t.respond(t.dumpLine(addr))

	case line[0] == 's':
		t.setmem(line)
		t.respond("")

	case line[0] == 'l':
		f := strings.Fields(line)
		start, err1 := strconv.ParseUint(f[0][1:], 16, 16)
		end, err2 := strconv.ParseUint(f[1], 16, 17)
		if err1 != nil || err2 != nil {
			return
		}
		t.payloadAddr = uint32(start)

		// the end address is exclusive and wraps at the top of the 16-bit
		// address space
		n := int(end) - int(start)
		if n <= 0 {
			n += 0x10000
		}
		t.payload = n

	case line[0] == 'g':
		a, err := strconv.ParseUint(line[1:], 16, 16)
		if err != nil {
			return
		}
		t.jumps = append(t.jumps, uint16(a))
		t.respond("")

	case line == "!":
		t.resets++
		t.respond("MEGA65 serial monitor")
	}
}

func (t *fakeTarget) dumpLine(addr uint32) string {
	s := strings.Builder{}
	fmt.Fprintf(&s, ":%08x", addr)
	for i := uint32(0); i < DumpLineBytes; i++ {
		fmt.Fprintf(&s, " %02x", t.mem[addr+i])
	}
	return s.String()
}

func (t *fakeTarget) setmem(line string) {
	f := strings.Fields(line)
	addr, err := strconv.ParseUint(f[0][1:], 16, 32)
	if err != nil {
		return
	}

	data := make([]byte, 0, len(f)-1)
	for _, v := range f[1:] {
		b, err := strconv.ParseUint(v, 16, 8)
		if err != nil {
			return
		}
		data = append(data, byte(b))
	}

	if uint32(addr) == regKeyboard {
		t.keyPoke(data)
		return
	}
	for i, b := range data {
		t.mem[uint32(addr)+uint32(i)] = b
	}
}

// keyPoke decodes a write to the keyboard matrix register back into the
// keystroke it represents.
func (t *fakeTarget) keyPoke(data []byte) {
	if len(data) < 2 || data[0] == keyNone {
		// key release
		return
	}

	r, ok := t.revKeys[data[0]]
	if !ok {
		return
	}
	if data[1] == keyShift {
		if sym, ok := t.revShift[r]; ok {
			r = sym
		} else {
			r = unicode.ToUpper(r)
		}
	}
	t.typed = append(t.typed, r)

	// the mode switch sequence reboots the machine into its legacy
	// personality, which reads differently from the mode register
	if strings.HasSuffix(string(t.typed), "go64\ry\r") {
		t.mem[regMode] = 0x00
	}
}

func (t *fakeTarget) respond(body string) {
	if t.mute > 0 {
		t.mute--
		return
	}
	if t.muteFrom >= 0 && t.responded >= t.muteFrom {
		return
	}
	t.responded++

	t.out = append(t.out, '\r', '\n')
	t.out = append(t.out, body...)
	if body != "" {
		t.out = append(t.out, '\r', '\n')
	}
	t.out = append(t.out, promptSentinel)
}

func (t *fakeTarget) typedText() string {
	return string(t.typed)
}
