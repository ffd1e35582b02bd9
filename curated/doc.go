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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Rather than the
// formatted message, the formatting pattern itself is the identity of the
// error. For example:
//
//	e := curated.Errorf("serialport: %v", err)
//
//	if curated.Is(e, "serialport: %v") {
//		fmt.Println("true")
//	}
//
// Because placeholder values are frequently themselves curated errors, error
// chains form naturally. The Has() function checks for a pattern anywhere in
// the chain:
//
//	f := curated.Errorf("monitor: %v", e)
//	curated.Has(f, "serialport: %v")    // true
//	curated.Is(f, "serialport: %v")     // false
//
// The IsAny() function answers whether an error is curated at all. An
// uncurated error is one the program did not expect: how it is handled is a
// choice for the caller.
//
// Error messages are normalised on output so that adjacent duplicate parts,
// which occur easily when errors are handed up through several layers, are
// printed only once.
package curated
