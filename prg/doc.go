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

// Package prg handles the packed program container used throughout the
// Commodore ecosystem: a two byte little-endian load address followed by the
// program body. The load address is more than a placement hint; the loader
// in the monitor package uses it to decide which execution environment the
// program expects.
//
// Programs can be read from a local file or fetched from an HTTP URL. The
// container is consumed as-is in both cases.
package prg
