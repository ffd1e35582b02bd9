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

// Package logger is the central log for the matrix65 program. Log entries
// are tagged with the package or sub-system that raised them and are
// retained in memory, up to a maximum, for later inspection (the LOG command
// of the console, for instance, or the -log flag of the command line).
//
// The log is deliberately quiet by default. Use SetEcho() to forward new
// entries to an io.Writer as they arrive.
//
// Repeated entries are coalesced into a single entry with a repetition
// count. Serial protocol recovery can log the same complaint many times in
// quick succession and a scrolling wall of identical lines helps nobody.
package logger
