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

// Package console is the interactive session with a connected machine. It
// reads commands from a Terminal implementation, drives the monitor package
// accordingly and prints what comes back.
//
// Two Terminal implementations exist: colorterm offers colour output,
// command history and tab completion; plainterm is for dumb terminals and
// redirected input.
package console
