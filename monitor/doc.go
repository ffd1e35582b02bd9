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

// Package monitor drives the MEGA65's matrix mode monitor over a serial
// connection. The monitor is the machine's built-in diagnostic shell: it can
// read and write memory, start and stop the CPU, jump to an address and
// inject keystrokes as though they had been typed on the machine itself.
//
// The protocol is a line oriented text exchange with no framing and no
// checksums. The only delimiter the monitor offers is its prompt, a full
// stop at the start of a line, printed when it is ready for the next
// command. The Channel type builds a synchronous request/response engine on
// top of that single fact: send one command line, accumulate bytes until the
// prompt appears, strip the echo of what we sent, hand back the rest.
//
// When the prompt doesn't appear in time the channel resynchronises by
// sending bare carriage returns until the monitor answers with a prompt
// again. A bounded number of failed attempts moves the channel to the
// Faulted state. Faulted is sticky; the serial port must be reopened and a
// new Monitor constructed before any further exchange.
//
// The Monitor type layers the useful operations on top of the channel:
// Peek, Poke, Type, Reset and Load. All of them block until the exchange
// resolves; the channel is the session's mutual exclusion boundary and
// nothing else may touch the serial port while it is in use.
package monitor
