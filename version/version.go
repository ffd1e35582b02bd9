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

// Package version records the version number of the project as a whole.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Matrix65"

// set through the linker with the -X flag during a release build. empty for
// any other build
var number string

// Version returns a string suitable for display to the user. For a release
// build this is the release number. Otherwise the vcs revision is used, with
// a "+dirty" suffix if the source had been modified at build time.
func Version() string {
	if number != "" {
		return number
	}

	var revision string
	var modified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if revision == "" {
		return "unreleased"
	}

	if modified {
		return revision + "+dirty"
	}

	return revision
}
