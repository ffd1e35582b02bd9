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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first call NewArgs() with the array
// of arguments and then Parse() with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "peek", "poke")
//	p, err := md.Parse()
//
// After a successful parse, Mode() names the sub-mode the user selected (the
// first sub-mode in the list is the default) and the program should call
// NewMode(), add the flags for that mode and Parse() again. Non-flag
// arguments are retrieved with RemainingArgs() or GetArg().
//
// Help messages (-help flag) are written to the Output field, decorated with
// the mode path and the list of available sub-modes.
package modalflag
