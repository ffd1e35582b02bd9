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

package serialport

import (
	"go.bug.st/serial"

	"github.com/jetsetilly/matrix65/curated"
)

// List returns the names of the serial devices present on this machine.
// Useful when the user has given an invalid device name and needs a
// suggestion.
func List() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, curated.Errorf("serialport: %v", err)
	}
	return ports, nil
}
