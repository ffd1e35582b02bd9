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

// Package serialport is the lowest layer of the connection to the MEGA65. It
// wraps the serial device in the narrowest interface the monitor protocol
// needs: a timed single-byte read and a whole-buffer write.
//
// The port is an exclusively owned resource. It is opened once per session
// and must be closed when the session ends, whatever the exit path. Close()
// is idempotent so a deferred call is always safe.
//
// No interpretation of the byte stream happens at this layer. The read
// timeout is the only synchronisation primitive offered to the layers above.
package serialport
