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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/matrix65/modalflag"
	"github.com/jetsetilly/matrix65/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"image.prg"})

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.GetArg(0), "image.prg")
	test.Equate(t, md.Mode(), "")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"image.prg"})
	md.AddSubModes("run", "peek", "poke")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))

	// the argument is not a sub-mode so the default applies and the argument
	// is carried over to the next parse
	test.Equate(t, md.Mode(), "RUN")

	md.NewMode()
	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.GetArg(0), "image.prg")
}

func TestSubModeWithFlags(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"peek", "-n", "32", "0800"})
	md.AddSubModes("run", "peek", "poke")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "PEEK")
	test.Equate(t, md.Path(), "PEEK")

	md.NewMode()
	n := md.AddInt("n", 16, "number of bytes")
	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseContinue))
	test.Equate(t, *n, 32)
	test.Equate(t, md.GetArg(0), "0800")
}

func TestHelp(t *testing.T) {
	output := &strings.Builder{}
	md := modalflag.Modes{Output: output}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("run", "peek")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(p), int(modalflag.ParseHelp))
	test.ExpectedSuccess(t, strings.Contains(output.String(), "available sub-modes: RUN, PEEK"))
}

func TestParseError(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-no-such-flag"})

	p, err := md.Parse()
	test.ExpectedFailure(t, err)
	test.Equate(t, int(p), int(modalflag.ParseError))
}
