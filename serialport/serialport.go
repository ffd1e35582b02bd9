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

package serialport

import (
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/logger"
)

// error patterns for the serialport package. ReadTimeout is the pattern the
// monitor package polls for so it can tell wire silence from wire failure.
const (
	OpenFailure  = "serialport: open %s: %v"
	ReadFailure  = "serialport: read: %v"
	WriteFailure = "serialport: write: %v"
	ReadTimeout  = "serialport: read timeout"
	PortClosed   = "serialport: port is closed"
)

// DefaultBaud is the baud rate of the MEGA65's UART monitor interface.
const DefaultBaud = 2000000

// DefaultTimeout is a per-read timeout suitable for the default baud rate.
const DefaultTimeout = 100 * time.Millisecond

// Port is an open serial connection to the MEGA65. It implements the
// monitor.Transport interface.
type Port struct {
	device string
	port   serial.Port

	closeOnce sync.Once
	closed    bool
}

// Open the named serial device. The timeout applies to every subsequent
// ReadByte().
func Open(device string, baud int, timeout time.Duration) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: baud,
	}

	p, err := serial.Open(device, mode)
	if err != nil {
		return nil, curated.Errorf(OpenFailure, device, err)
	}

	if err := p.SetReadTimeout(timeout); err != nil {
		_ = p.Close()
		return nil, curated.Errorf(OpenFailure, device, err)
	}

	logger.Logf("serialport", "%s open at %d baud", device, baud)

	return &Port{
		device: device,
		port:   p,
	}, nil
}

// Device returns the name the port was opened with.
func (p *Port) Device() string {
	return p.device
}

// ReadByte returns the next byte from the wire, or the ReadTimeout error if
// nothing arrives within the configured timeout.
func (p *Port) ReadByte() (byte, error) {
	if p.closed {
		return 0, curated.Errorf(PortClosed)
	}

	b := make([]byte, 1)
	n, err := p.port.Read(b)
	if err != nil {
		return 0, curated.Errorf(ReadFailure, err)
	}

	// a read of zero bytes without error is how the underlying library
	// reports an expired read timeout
	if n == 0 {
		return 0, curated.Errorf(ReadTimeout)
	}

	return b[0], nil
}

// Write the entire buffer to the wire.
func (p *Port) Write(data []byte) error {
	if p.closed {
		return curated.Errorf(PortClosed)
	}

	n, err := p.port.Write(data)
	if err != nil {
		return curated.Errorf(WriteFailure, err)
	}
	if n != len(data) {
		return curated.Errorf(WriteFailure, "short write")
	}

	return nil
}

// Close the port. Idempotent.
func (p *Port) Close() {
	p.closeOnce.Do(func() {
		p.closed = true
		if err := p.port.Close(); err != nil {
			logger.Logf("serialport", "close: %v", err)
			return
		}
		logger.Logf("serialport", "%s closed", p.device)
	})
}
