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

package console_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/matrix65/console"
	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/monitor"
	"github.com/jetsetilly/matrix65/serialport"
	"github.com/jetsetilly/matrix65/test"
)

// scriptTerm feeds a fixed script of command lines to the console and
// records everything printed.
type scriptTerm struct {
	script  []string
	printed map[console.Style][]string
}

func newScriptTerm(script ...string) *scriptTerm {
	return &scriptTerm{
		script:  script,
		printed: make(map[console.Style][]string),
	}
}

func (st *scriptTerm) Initialise() error                           { return nil }
func (st *scriptTerm) CleanUp()                                    {}
func (st *scriptTerm) RegisterTabCompletion(console.TabCompletion) {}

func (st *scriptTerm) TermPrintLine(style console.Style, s string) {
	st.printed[style] = append(st.printed[style], s)
}

func (st *scriptTerm) TermRead(buffer []byte, prompt string) (int, error) {
	if len(st.script) == 0 {
		return 0, curated.Errorf(console.UserInterrupt)
	}
	line := st.script[0]
	st.script = st.script[1:]
	copy(buffer, line)
	return len(line), nil
}

// miniTransport answers memory dumps with zeroed memory and everything else
// with a bare prompt.
type miniTransport struct {
	out     []byte
	line    []byte
	payload int
}

func (mt *miniTransport) ReadByte() (byte, error) {
	if len(mt.out) == 0 {
		return 0, curated.Errorf(serialport.ReadTimeout)
	}
	b := mt.out[0]
	mt.out = mt.out[1:]
	return b, nil
}

func (mt *miniTransport) Write(data []byte) error {
	for _, b := range data {
		if mt.payload > 0 {
			mt.payload--
			if mt.payload == 0 {
				mt.respond("")
			}
			continue
		}
		if b == '\r' || b == '\n' {
			mt.handle(string(mt.line))
			mt.line = mt.line[:0]
			continue
		}
		mt.line = append(mt.line, b)
	}
	return nil
}

func (mt *miniTransport) handle(line string) {
	switch {
	case strings.HasPrefix(line, "m") && len(line) > 1:
		addr, _ := strconv.ParseUint(line[1:], 16, 32)
		mt.respond(fmt.Sprintf(":%08x%s", addr, strings.Repeat(" 00", 16)))
	case line == "m":
		mt.respond(fmt.Sprintf(":%08x%s", 0, strings.Repeat(" 00", 16)))
	case strings.HasPrefix(line, "l"):
		f := strings.Fields(line)
		start, _ := strconv.ParseUint(f[0][1:], 16, 16)
		end, _ := strconv.ParseUint(f[1], 16, 17)
		mt.payload = int(end - start)
	default:
		mt.respond("")
	}
}

func (mt *miniTransport) respond(body string) {
	mt.out = append(mt.out, '\r', '\n')
	if body != "" {
		mt.out = append(mt.out, body...)
		mt.out = append(mt.out, '\r', '\n')
	}
	mt.out = append(mt.out, '.')
}

func TestConsoleSession(t *testing.T) {
	term := newScriptTerm("help", "peek 0x1000 16", "quit")
	mon := monitor.NewMonitor(&miniTransport{}, 20*time.Millisecond)

	err := console.NewConsole(mon, term).Run()
	test.ExpectedSuccess(t, err)

	// one help line per command
	test.Equate(t, len(term.printed[console.StyleHelp]) > 8, true)

	// the peek printed one hexdump line
	test.Equate(t, len(term.printed[console.StyleResponse]), 1)
	test.Equate(t, strings.Contains(term.printed[console.StyleResponse][0], "00"), true)
}

func TestConsoleUnknownCommand(t *testing.T) {
	term := newScriptTerm("wibble", "quit")
	mon := monitor.NewMonitor(&miniTransport{}, 20*time.Millisecond)

	err := console.NewConsole(mon, term).Run()
	test.ExpectedSuccess(t, err)

	test.Equate(t, len(term.printed[console.StyleError]), 1)
	test.Equate(t, strings.Contains(term.printed[console.StyleError][0], "WIBBLE"), true)
}

func TestConsoleEndsOnInterrupt(t *testing.T) {
	term := newScriptTerm()
	mon := monitor.NewMonitor(&miniTransport{}, 20*time.Millisecond)

	err := console.NewConsole(mon, term).Run()
	test.ExpectedSuccess(t, err)
}
