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

// Package cbmdisk reads Commodore disk images, the D64 and D81 formats in
// particular. These are sector dumps of the 1541 and 1581 drives: a flat
// byte array addressed by track and sector, with a directory structure and
// per-file sector chains layered on top.
//
// The package only reads. Files are returned as raw bytes with the two byte
// load address header still in place; the prg package knows what to do with
// them from there.
package cbmdisk
