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

package console

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/matrix65/cbmdisk"
	"github.com/jetsetilly/matrix65/console/commandline"
	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/logger"
	"github.com/jetsetilly/matrix65/monitor"
	"github.com/jetsetilly/matrix65/prg"
)

// error patterns for command handling.
const (
	UnknownCommand = "console: no such command: %s"
	CommandError   = "console: %s: %v"
)

type command struct {
	usage   string
	summary string
	handler func(*Console, *commandline.Tokens) (bool, error)
}

// numbers on the command line follow Go conventions: 0x for hexadecimal,
// plain digits for decimal.
//
// the map is assigned in init() rather than initialised in the var
// declaration because cmdHelp refers back to the commands map.
var commands map[string]command

func init() {
	commands = map[string]command{
		"PEEK": {
			usage:   "PEEK <address> [length]",
			summary: "read and display target memory",
			handler: (*Console).cmdPeek,
		},
		"POKE": {
			usage:   "POKE <address> <byte>...",
			summary: "write bytes to target memory",
			handler: (*Console).cmdPoke,
		},
		"LOAD": {
			usage:   "LOAD <file|url>",
			summary: "transfer a program to the target and run it",
			handler: (*Console).cmdLoad,
		},
		"DIR": {
			usage:   "DIR <image>",
			summary: "list the directory of a disk image",
			handler: (*Console).cmdDir,
		},
		"TYPE": {
			usage:   "TYPE <text>",
			summary: "type text on the target keyboard (\\r presses return)",
			handler: (*Console).cmdType,
		},
		"GO": {
			usage:   "GO <address>",
			summary: "jump to an address and resume execution",
			handler: (*Console).cmdGo,
		},
		"STOP": {
			usage:   "STOP",
			summary: "halt the target cpu",
			handler: (*Console).cmdStop,
		},
		"START": {
			usage:   "START",
			summary: "resume the target cpu",
			handler: (*Console).cmdStart,
		},
		"RESET": {
			usage:   "RESET",
			summary: "reset the target machine",
			handler: (*Console).cmdReset,
		},
		"LOG": {
			usage:   "LOG",
			summary: "show the session log",
			handler: (*Console).cmdLog,
		},
		"HELP": {
			usage:   "HELP",
			summary: "show this help",
			handler: (*Console).cmdHelp,
		},
		"QUIT": {
			usage:   "QUIT",
			summary: "end the session",
			handler: (*Console).cmdQuit,
		},
	}
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (con *Console) dispatch(toks *commandline.Tokens) (bool, error) {
	tok, _ := toks.Get()
	name := strings.ToUpper(tok)

	cmd, ok := commands[name]
	if !ok {
		return false, curated.Errorf(UnknownCommand, name)
	}
	return cmd.handler(con, toks)
}

// parseNumber reads one numeric token.
func parseNumber(toks *commandline.Tokens, what string, bits int) (uint64, error) {
	tok, ok := toks.Get()
	if !ok {
		return 0, fmt.Errorf("%s required", what)
	}
	v, err := strconv.ParseUint(tok, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("bad %s: %s", what, tok)
	}
	return v, nil
}

func (con *Console) cmdPeek(toks *commandline.Tokens) (bool, error) {
	addr, err := parseNumber(toks, "address", 32)
	if err != nil {
		return false, curated.Errorf(CommandError, "peek", err)
	}

	length := uint64(monitor.DumpLineBytes)
	if toks.Remaining() > 0 {
		length, err = parseNumber(toks, "length", 24)
		if err != nil {
			return false, curated.Errorf(CommandError, "peek", err)
		}
	}

	data, err := con.mon.Peek(uint32(addr), int(length))
	if err != nil {
		return false, err
	}

	s := strings.Builder{}
	prg.Hexdump(&s, uint32(addr), data)
	for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
		con.term.TermPrintLine(StyleResponse, l)
	}
	return false, nil
}

func (con *Console) cmdPoke(toks *commandline.Tokens) (bool, error) {
	addr, err := parseNumber(toks, "address", 32)
	if err != nil {
		return false, curated.Errorf(CommandError, "poke", err)
	}

	if toks.Remaining() == 0 {
		return false, curated.Errorf(CommandError, "poke", fmt.Errorf("at least one byte required"))
	}

	data := make([]byte, 0, toks.Remaining())
	for toks.Remaining() > 0 {
		b, err := parseNumber(toks, "byte", 8)
		if err != nil {
			return false, curated.Errorf(CommandError, "poke", err)
		}
		data = append(data, byte(b))
	}

	if err := con.mon.Poke(uint32(addr), data); err != nil {
		return false, err
	}

	con.term.TermPrintLine(StyleFeedback, fmt.Sprintf("%d byte(s) written", len(data)))
	return false, nil
}

func (con *Console) cmdLoad(toks *commandline.Tokens) (bool, error) {
	name, ok := toks.Get()
	if !ok {
		return false, curated.Errorf(CommandError, "load", fmt.Errorf("file or url required"))
	}

	p, err := prg.Load(name)
	if err != nil {
		return false, err
	}

	con.term.TermPrintLine(StyleFeedback,
		fmt.Sprintf("%s: %d bytes at %#04x", p.ShortName(), len(p.Body), p.LoadAddress))

	return false, con.mon.Load(p, monitor.LoadOptions{Run: true})
}

func (con *Console) cmdDir(toks *commandline.Tokens) (bool, error) {
	name, ok := toks.Get()
	if !ok {
		return false, curated.Errorf(CommandError, "dir", fmt.Errorf("image file required"))
	}

	img, err := cbmdisk.Open(name)
	if err != nil {
		return false, err
	}

	dir, err := img.Directory()
	if err != nil {
		return false, err
	}

	for _, e := range dir {
		con.term.TermPrintLine(StyleResponse,
			fmt.Sprintf("%-18q %4d blocks  %s", e.Name, e.Blocks, e.Type))
	}
	con.term.TermPrintLine(StyleFeedback, fmt.Sprintf("%d file(s)", len(dir)))
	return false, nil
}

func (con *Console) cmdType(toks *commandline.Tokens) (bool, error) {
	text := toks.Remainder()
	if text == "" {
		return false, curated.Errorf(CommandError, "type", fmt.Errorf("text required"))
	}
	return false, con.mon.Type(text + "\r")
}

func (con *Console) cmdGo(toks *commandline.Tokens) (bool, error) {
	addr, err := parseNumber(toks, "address", 16)
	if err != nil {
		return false, curated.Errorf(CommandError, "go", err)
	}
	return false, con.mon.Jump(uint16(addr))
}

func (con *Console) cmdStop(*commandline.Tokens) (bool, error) {
	return false, con.mon.Stop()
}

func (con *Console) cmdStart(*commandline.Tokens) (bool, error) {
	return false, con.mon.Start()
}

func (con *Console) cmdReset(*commandline.Tokens) (bool, error) {
	con.term.TermPrintLine(StyleFeedback, "waiting for machine to come back")
	return false, con.mon.Reset()
}

func (con *Console) cmdLog(*commandline.Tokens) (bool, error) {
	s := strings.Builder{}
	logger.Write(&s)
	if s.Len() == 0 {
		con.term.TermPrintLine(StyleFeedback, "log is empty")
		return false, nil
	}
	for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
		con.term.TermPrintLine(StyleResponse, l)
	}
	return false, nil
}

func (con *Console) cmdHelp(*commandline.Tokens) (bool, error) {
	for _, n := range commandNames() {
		con.term.TermPrintLine(StyleHelp, fmt.Sprintf("%-28s %s", commands[n].usage, commands[n].summary))
	}
	return false, nil
}

func (con *Console) cmdQuit(*commandline.Tokens) (bool, error) {
	return true, nil
}
