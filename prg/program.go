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

package prg

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/matrix65/curated"
	"github.com/jetsetilly/matrix65/logger"
)

// error patterns for the prg package.
const (
	LoadError = "prg: %v"
	TooShort  = "prg: %s: too short for a load address"
	TooLarge  = "prg: %s: larger than the 16-bit address space"
)

// Program is a packed program that has been split into its load address and
// body. The two byte header is not part of the body and is never written to
// target memory.
type Program struct {
	// name of the file or URL the program was read from
	Name string

	// the first two bytes of the container, little-endian
	LoadAddress uint16

	// the remaining bytes, placed at LoadAddress on transfer
	Body []byte
}

// ShortName returns a shortened version of the program name, suitable for
// display.
func (p *Program) ShortName() string {
	sn := path.Base(p.Name)
	sn = strings.TrimSuffix(sn, path.Ext(sn))
	return sn
}

// FromBytes splits a packed program container into load address and body.
// The name argument is decorative and is only used for error messages and
// display.
func FromBytes(name string, data []byte) (*Program, error) {
	if len(data) < 2 {
		return nil, curated.Errorf(TooShort, name)
	}

	// the monitor's fast-load path works in the 16-bit address space. a body
	// that would wrap around the top of memory is malformed
	if len(data)-2 > 0x10000 {
		return nil, curated.Errorf(TooLarge, name)
	}

	p := &Program{
		Name:        name,
		LoadAddress: uint16(data[0]) | uint16(data[1])<<8,
		Body:        data[2:],
	}

	logger.Logf("prg", "%s: %d bytes, load address %04x", p.ShortName(), len(p.Body), p.LoadAddress)

	return p, nil
}

// Load a packed program from a local file or an HTTP URL.
func Load(name string) (*Program, error) {
	data, err := ReadBytes(name)
	if err != nil {
		return nil, err
	}
	return FromBytes(name, data)
}

// ReadBytes returns the raw content of a local file or an HTTP URL, without
// any interpretation. Used by Load() and by the poke-from-file path of the
// command line.
func ReadBytes(name string) ([]byte, error) {
	scheme := "file"

	u, err := url.Parse(name)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(name)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, curated.Errorf(LoadError, resp.Status)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		return data, nil

	case "file":
		fallthrough
	case "":
		fallthrough
	default:
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, curated.Errorf(LoadError, err)
		}
		return data, nil
	}
}

// Save bytes to a local file. The counterpart of ReadBytes() for the peek
// -output path of the command line.
func Save(name string, data []byte) error {
	err := os.WriteFile(name, data, 0644)
	if err != nil {
		return curated.Errorf("prg: %v", err)
	}
	logger.Logf("prg", "%d bytes saved to %s", len(data), name)
	return nil
}
