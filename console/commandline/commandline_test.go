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

package commandline_test

import (
	"testing"

	"github.com/jetsetilly/matrix65/console/commandline"
	"github.com/jetsetilly/matrix65/test"
)

func TestTokeniseInput(t *testing.T) {
	toks := commandline.TokeniseInput("  peek 0x1000   16 ")
	test.Equate(t, toks.Len(), 3)

	tok, ok := toks.Get()
	test.Equate(t, ok, true)
	test.Equate(t, tok, "peek")

	tok, ok = toks.Peek()
	test.Equate(t, ok, true)
	test.Equate(t, tok, "0x1000")
	test.Equate(t, toks.Remaining(), 2)

	tok, _ = toks.Get()
	test.Equate(t, tok, "0x1000")
	tok, _ = toks.Get()
	test.Equate(t, tok, "16")

	_, ok = toks.Get()
	test.Equate(t, ok, false)

	toks.Reset()
	tok, _ = toks.Get()
	test.Equate(t, tok, "peek")
}

func TestTokensRemainder(t *testing.T) {
	toks := commandline.TokeniseInput(`type load "*",8  `)
	tok, _ := toks.Get()
	test.Equate(t, tok, "type")

	// original spacing survives, trailing space does not
	test.Equate(t, toks.Remainder(), `load "*",8`)

	toks = commandline.TokeniseInput("type")
	toks.Get()
	test.Equate(t, toks.Remainder(), "")
}

func TestTabCompletion(t *testing.T) {
	tc := commandline.NewTabCompletion([]string{"PEEK", "POKE", "PORTS", "QUIT"})

	s := tc.Complete("pe")
	test.Equate(t, s, "PEEK ")

	// a fresh prefix starts a new cycle
	s = tc.Complete("po")
	test.Equate(t, s, "POKE ")

	// tabbing again cycles through the candidates and wraps
	s = tc.Complete(s)
	test.Equate(t, s, "PORTS ")
	s = tc.Complete(s)
	test.Equate(t, s, "POKE ")

	// no candidates leaves the input alone
	s = tc.Complete("xyz")
	test.Equate(t, s, "xyz")

	// arguments are not completed
	s = tc.Complete("poke 0x1000")
	test.Equate(t, s, "poke 0x1000")

	tc.Reset()
	s = tc.Complete("q")
	test.Equate(t, s, "QUIT ")
}
