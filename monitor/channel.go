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
	"bytes"
	"strings"
	"time"

	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/logger"
	"github.com/jetsetilly/matrix65/serialport"
)

// error patterns for the channel.
const (
	// the channel has exhausted its resync attempts. sticky; the serial
	// port must be reopened and a new Monitor constructed
	Faulted = "monitor: channel faulted"

	// the channel lost synchronisation but has recovered. the response to
	// the command that was in flight is lost and its outcome on the target
	// is unknown
	Resynced = "monitor: resynchronised: response to previous command lost"

	// no prompt within the response deadline. internal to the channel;
	// callers of Send() see Resynced or Faulted instead
	responseTimeout = "monitor: response timeout"
)

// number of resync attempts before the channel gives up and faults.
const maxResyncAttempts = 3

// Transport is the byte level connection the channel drives. Implemented by
// serialport.Port and by the fake targets used in tests.
type Transport interface {
	// ReadByte returns the next byte from the wire or, after the
	// transport's read timeout, an error matching serialport.ReadTimeout
	ReadByte() (byte, error)

	// Write the whole buffer
	Write(data []byte) error
}

// State records the condition of a Channel.
type State int

// List of valid State values.
const (
	StateIdle State = iota
	StateAwaitingPrompt
	StateResyncing
	StateFaulted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingPrompt:
		return "awaiting prompt"
	case StateResyncing:
		return "resyncing"
	case StateFaulted:
		return "faulted"
	}
	return "unknown"
}

// Response is the payload of one exchange: everything the monitor sent back
// for a command, with the command echo and the closing prompt removed. A
// Response is never retained across exchanges.
type Response []byte

// Lines splits the response into its non-empty text lines.
func (r Response) Lines() []string {
	raw := strings.FieldsFunc(string(r), func(c rune) bool {
		return c == '\r' || c == '\n'
	})

	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Channel is the synchronous request/response engine between the program
// and the matrix mode monitor. It is the sole owner of the Transport for
// the lifetime of the session; every exchange blocks until it resolves.
type Channel struct {
	trans Transport
	state State

	// overall deadline for one response. distinct from the transport's
	// per-read timeout, which only bounds a single silent read
	deadline time.Duration
}

// NewChannel is the preferred method of initialisation of the Channel type.
func NewChannel(trans Transport, deadline time.Duration) *Channel {
	return &Channel{
		trans:    trans,
		state:    StateIdle,
		deadline: deadline,
	}
}

// State of the channel.
func (ch *Channel) State() State {
	return ch.state
}

// Send one command and collect the monitor's response to it. A faulted
// channel fails immediately without touching the wire.
func (ch *Channel) Send(cmd Command) (Response, error) {
	if ch.state == StateFaulted {
		return nil, curated.Errorf(Faulted)
	}

	enc := cmd.encodedLine()

	if err := ch.trans.Write(enc); err != nil {
		ch.state = StateFaulted
		return nil, curated.Errorf("monitor: %v", err)
	}
	if len(cmd.payload) > 0 {
		if err := ch.trans.Write(cmd.payload); err != nil {
			ch.state = StateFaulted
			return nil, curated.Errorf("monitor: %v", err)
		}
	}

	ch.state = StateAwaitingPrompt
	raw, err := ch.await()
	if err == nil {
		ch.state = StateIdle
		return extractResponse(raw, cmd.line), nil
	}

	if !curated.Is(err, responseTimeout) {
		// a hard transport failure, not silence. the session is over
		ch.state = StateFaulted
		return nil, err
	}

	logger.Logf("monitor", "no prompt after %q", cmd.line)

	if err := ch.resync(); err != nil {
		return nil, err
	}
	return nil, curated.Errorf(Resynced)
}

// Resync forces the recovery procedure outside of a Send(). Used by the
// layers above when a response arrived wearing the prompt but did not parse
// as the expected shape.
func (ch *Channel) Resync() error {
	if ch.state == StateFaulted {
		return curated.Errorf(Faulted)
	}
	return ch.resync()
}

// resync sends benign carriage returns until the monitor answers with a
// prompt. bounded attempts; exhaustion faults the channel.
func (ch *Channel) resync() error {
	ch.state = StateResyncing

	for i := 0; i < maxResyncAttempts; i++ {
		logger.Logf("monitor", "resync attempt %d of %d", i+1, maxResyncAttempts)

		if err := ch.trans.Write([]byte{lineTerminator}); err != nil {
			ch.state = StateFaulted
			return curated.Errorf("monitor: %v", err)
		}

		// whatever arrives before the prompt is a discarded partial echo.
		// the target was slow, not broken
		if _, err := ch.await(); err == nil {
			ch.state = StateIdle
			return nil
		}
	}

	logger.Log("monitor", "resync failed. channel is faulted")
	ch.state = StateFaulted
	return curated.Errorf(Faulted)
}

// sendRaw writes a command without waiting for a response. For the commands
// that destroy the session they are sent into, reset above all.
func (ch *Channel) sendRaw(cmd Command) error {
	if ch.state == StateFaulted {
		return curated.Errorf(Faulted)
	}

	if err := ch.trans.Write(cmd.encodedLine()); err != nil {
		ch.state = StateFaulted
		return curated.Errorf("monitor: %v", err)
	}
	return nil
}

// bannerWait discards bytes from the transport until a prompt appears,
// bounded by the supplied wait rather than the channel's usual deadline.
// Used after a reset, when the machine prints its boot banner at its own
// pace. Exhausting the wait faults the channel.
func (ch *Channel) bannerWait(wait time.Duration) error {
	ch.state = StateAwaitingPrompt

	buffer := make([]byte, 0, 256)
	deadline := time.Now().Add(wait)

	for time.Now().Before(deadline) {
		b, err := ch.trans.ReadByte()
		if err != nil {
			if !curated.Has(err, serialport.ReadTimeout) {
				ch.state = StateFaulted
				return curated.Errorf("monitor: %v", err)
			}
			continue
		}

		buffer = append(buffer, b)
		if promptFound(buffer) {
			ch.state = StateIdle
			return nil
		}
	}

	ch.state = StateFaulted
	return curated.Errorf(responseTimeout)
}

// await accumulates bytes from the transport until the buffer ends at the
// prompt sentinel or the channel deadline passes.
func (ch *Channel) await() ([]byte, error) {
	buffer := make([]byte, 0, 256)
	deadline := time.Now().Add(ch.deadline)

	for {
		b, err := ch.trans.ReadByte()
		if err != nil {
			if !curated.Has(err, serialport.ReadTimeout) {
				return nil, curated.Errorf("monitor: %v", err)
			}
			if time.Now().After(deadline) {
				return nil, curated.Errorf(responseTimeout)
			}
			continue
		}

		buffer = append(buffer, b)
		if promptFound(buffer) {
			return buffer, nil
		}

		if time.Now().After(deadline) {
			// bytes are trickling in but the prompt never arrives
			return nil, curated.Errorf(responseTimeout)
		}
	}
}

// promptFound is true if the buffer ends with the prompt sentinel at the
// start of a line.
func promptFound(buffer []byte) bool {
	if len(buffer) == 0 || buffer[len(buffer)-1] != promptSentinel {
		return false
	}
	if len(buffer) == 1 {
		return true
	}
	p := buffer[len(buffer)-2]
	return p == '\n' || p == '\r'
}

// extractResponse removes the echo of the command line and the closing
// prompt from the raw exchange. The echo is matched by the literal bytes
// just written, never by command identity, which keeps the match robust to
// any echo timing.
func extractResponse(raw []byte, line string) Response {
	// an echo, if there is one, appears before the first line of the
	// response proper. a match after a newline is response data, not echo
	if idx := bytes.Index(raw, []byte(line)); idx >= 0 {
		if !bytes.ContainsRune(raw[:idx], '\n') {
			raw = raw[idx+len(line):]
		}
	}

	// the echoed terminator and any padding around the payload
	raw = bytes.TrimLeft(raw, "\r\n")

	// the closing prompt and its own line ending
	raw = bytes.TrimRight(raw, string(promptSentinel))
	raw = bytes.TrimRight(raw, "\r\n")

	return Response(raw)
}
