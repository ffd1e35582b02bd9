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

// Package commandline provides tokenisation and tab completion for the
// console's command language.
//
//	toks := commandline.TokeniseInput("peek 0x1000 16")
//	cmd, _ := toks.Get()
//
// Tokens walk left to right; the Remainder() function hands back whatever
// hasn't been walked yet with its original spacing intact, which is what a
// command like TYPE wants.
package commandline
