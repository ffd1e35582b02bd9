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

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/matrix65/cbmdisk"
	"github.com/jetsetilly/matrix65/console"
	"github.com/jetsetilly/matrix65/console/colorterm"
	"github.com/jetsetilly/matrix65/console/plainterm"
	"github.com/jetsetilly/matrix65/filehost"
	"github.com/jetsetilly/matrix65/logger"
	"github.com/jetsetilly/matrix65/modalflag"
	"github.com/jetsetilly/matrix65/monitor"
	"github.com/jetsetilly/matrix65/prg"
	"github.com/jetsetilly/matrix65/serialport"
	"github.com/jetsetilly/matrix65/statsview"
	"github.com/jetsetilly/matrix65/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PEEK", "POKE", "TYPE", "RESET", "DISK", "FILEHOST", "CONSOLE", "PORTS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "PEEK":
		err = peek(md)
	case "POKE":
		err = poke(md)
	case "TYPE":
		err = typeText(md)
	case "RESET":
		err = reset(md)
	case "DISK":
		err = disk(md)
	case "FILEHOST":
		err = fileHost(md)
	case "CONSOLE":
		err = interactive(md)
	case "PORTS":
		err = ports(md)
	case "VERSION":
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md.String(), err)
		os.Exit(20)
	}
}

// connection gathers the flags shared by every mode that talks to a
// machine.
type connection struct {
	port     *string
	baud     *int
	deadline *time.Duration
	verify   *bool
	log      *bool
}

func addConnectionFlags(md *modalflag.Modes) *connection {
	return &connection{
		port:     md.AddString("port", "", "serial device the machine is connected to"),
		baud:     md.AddInt("baud", serialport.DefaultBaud, "baud rate of the serial connection"),
		deadline: md.AddDuration("deadline", monitor.DefaultDeadline, "how long to wait for each response"),
		verify:   md.AddBool("verify", false, "read back and compare every memory write"),
		log:      md.AddBool("log", false, "echo the session log to stderr"),
	}
}

// open the serial connection and wrap a monitor session around it. the
// returned close function is safe to defer immediately.
func (cn *connection) open() (*monitor.Monitor, func(), error) {
	if *cn.log {
		logger.SetEcho(os.Stderr)
	}

	if *cn.port == "" {
		if devices, err := serialport.List(); err == nil && len(devices) > 0 {
			return nil, nil, fmt.Errorf("no -port given. available: %s", strings.Join(devices, ", "))
		}
		return nil, nil, fmt.Errorf("no -port given and no serial ports detected")
	}

	p, err := serialport.Open(*cn.port, *cn.baud, serialport.DefaultTimeout)
	if err != nil {
		return nil, nil, err
	}

	mon := monitor.NewMonitor(p, *cn.deadline)
	mon.Verify = *cn.verify

	return mon, p.Close, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	cn := addConnectionFlags(md)
	resetFirst := md.AddBool("reset", false, "reset the machine before transferring")
	noRun := md.AddBool("norun", false, "transfer only, do not start the program")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one program file or url required")
	}

	prog, err := prg.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	mon, closePort, err := cn.open()
	if err != nil {
		return err
	}
	defer closePort()

	return mon.Load(prog, monitor.LoadOptions{Reset: *resetFirst, Run: !*noRun})
}

func peek(md *modalflag.Modes) error {
	md.NewMode()
	cn := addConnectionFlags(md)
	length := md.AddInt("n", monitor.DumpLineBytes, "number of bytes to read")
	outFile := md.AddString("o", "", "write the bytes to a file instead of the terminal")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one address required")
	}

	addr, err := parseAddress(md.GetArg(0), 32)
	if err != nil {
		return err
	}

	mon, closePort, err := cn.open()
	if err != nil {
		return err
	}
	defer closePort()

	data, err := mon.Peek(uint32(addr), *length)
	if err != nil {
		return err
	}

	if *outFile != "" {
		return prg.Save(*outFile, data)
	}

	prg.Hexdump(os.Stdout, uint32(addr), data)
	return nil
}

func poke(md *modalflag.Modes) error {
	md.NewMode()
	cn := addConnectionFlags(md)

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	args := md.RemainingArgs()
	if len(args) < 2 {
		return fmt.Errorf("an address and at least one byte required")
	}

	addr, err := parseAddress(args[0], 32)
	if err != nil {
		return err
	}

	data := make([]byte, 0, len(args)-1)
	for _, a := range args[1:] {
		b, err := strconv.ParseUint(a, 0, 8)
		if err != nil {
			return fmt.Errorf("bad byte value: %s", a)
		}
		data = append(data, byte(b))
	}

	mon, closePort, err := cn.open()
	if err != nil {
		return err
	}
	defer closePort()

	return mon.Poke(uint32(addr), data)
}

func typeText(md *modalflag.Modes) error {
	md.NewMode()
	cn := addConnectionFlags(md)

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("text to type required")
	}

	mon, closePort, err := cn.open()
	if err != nil {
		return err
	}
	defer closePort()

	return mon.Type(strings.Join(md.RemainingArgs(), " ") + "\r")
}

func reset(md *modalflag.Modes) error {
	md.NewMode()
	cn := addConnectionFlags(md)
	legacy := md.AddBool("legacy", false, "boot into the legacy personality after the reset")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	mon, closePort, err := cn.open()
	if err != nil {
		return err
	}
	defer closePort()

	if err := mon.Reset(); err != nil {
		return err
	}
	if *legacy {
		return mon.EnterLegacyMode()
	}
	return nil
}

func disk(md *modalflag.Modes) error {
	md.NewMode()
	cn := addConnectionFlags(md)
	runFile := md.AddString("run", "", "transfer and run the named file from the image")
	resetFirst := md.AddBool("reset", false, "reset the machine before transferring")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one disk image required")
	}

	img, err := cbmdisk.Open(md.GetArg(0))
	if err != nil {
		return err
	}

	if *runFile == "" {
		dir, err := img.Directory()
		if err != nil {
			return err
		}
		for _, e := range dir {
			fmt.Printf("%-18q %4d blocks  %s\n", e.Name, e.Blocks, e.Type)
		}
		return nil
	}

	data, err := img.ReadFileByName(*runFile)
	if err != nil {
		return err
	}

	prog, err := prg.FromBytes(*runFile, data)
	if err != nil {
		return err
	}

	mon, closePort, err := cn.open()
	if err != nil {
		return err
	}
	defer closePort()

	return mon.Load(prog, monitor.LoadOptions{Reset: *resetFirst, Run: true})
}

func fileHost(md *modalflag.Modes) error {
	md.NewMode()
	url := md.AddString("url", "", "alternative catalogue endpoint")
	all := md.AddBool("all", false, "include entries that cannot be sent to the machine")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	fh := filehost.FileHost{URL: *url}

	var records []filehost.Record
	if *all {
		records, err = fh.List()
	} else {
		records, err = fh.ListLoadable()
	}
	if err != nil {
		return err
	}

	for _, r := range records {
		fmt.Printf("%-40s %-10s %s\n", r.Title, r.Kind, r.URL())
	}
	fmt.Printf("%d entries\n", len(records))
	return nil
}

func interactive(md *modalflag.Modes) error {
	md.NewMode()
	cn := addConnectionFlags(md)
	plain := md.AddBool("plain", false, "use the plain terminal instead of the colour terminal")
	stats := md.AddBool("stats", statsview.Available(), "run the statistics server")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	mon, closePort, err := cn.open()
	if err != nil {
		return err
	}
	defer closePort()

	if *stats {
		statsview.Launch(os.Stdout)
	}

	var term console.Terminal
	if *plain {
		term = &plainterm.PlainTerminal{}
	} else {
		term = &colorterm.ColorTerminal{}
	}

	return console.NewConsole(mon, term).Run()
}

func ports(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	devices, err := serialport.List()
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Println("no serial ports detected")
		return nil
	}
	for _, d := range devices {
		fmt.Println(d)
	}
	return nil
}

// parseAddress reads a numeric argument following Go conventions: 0x for
// hexadecimal, plain digits for decimal.
func parseAddress(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("bad address: %s", s)
	}
	return v, nil
}
