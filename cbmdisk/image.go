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

package cbmdisk

import (
	"os"

	"github.com/jetsetilly/matrix65/curated"
)

// error patterns for disk image handling.
const (
	OpenError     = "cbmdisk: %v"
	UnknownFormat = "cbmdisk: unrecognised image size (%d bytes)"
	CorruptImage  = "cbmdisk: corrupt image: %v"
	FileNotFound  = "cbmdisk: no such file: %s"
)

// FileType of a directory entry.
type FileType byte

// List of valid FileType values.
const (
	DEL FileType = iota
	SEQ
	PRG
	USR
	REL
)

func (f FileType) String() string {
	switch f {
	case DEL:
		return "del"
	case SEQ:
		return "seq"
	case PRG:
		return "prg"
	case USR:
		return "usr"
	case REL:
		return "rel"
	}
	return "???"
}

// Entry is one file in the image's directory.
type Entry struct {
	Name string
	Type FileType

	// size in whole sectors, as the directory records it. the precise byte
	// size is only knowable by walking the file's chain
	Blocks int

	track  byte
	sector byte
}

// Image is a loaded disk image. The zero value is not usable; use Open() or
// FromBytes().
type Image struct {
	data []byte
	geom geometry
}

// Open a disk image file. The format is recognised from the image size, not
// the file extension.
func Open(filename string) (*Image, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(OpenError, err)
	}
	return FromBytes(data)
}

// FromBytes interprets an in-memory disk image.
func FromBytes(data []byte) (*Image, error) {
	for _, g := range []geometry{d64, d81} {
		if len(data) == g.size {
			return &Image{data: data, geom: g}, nil
		}
	}
	return nil, curated.Errorf(UnknownFormat, len(data))
}

// Format of the image.
func (img *Image) Format() string {
	return img.geom.name
}

// sector returns the 256 bytes of one sector.
func (img *Image) sector(track, sector byte) ([]byte, error) {
	o := img.geom.offset(track, sector)
	if o < 0 {
		return nil, curated.Errorf(CorruptImage, "sector reference off the disk")
	}
	return img.data[o : o+sectorSize], nil
}

// Directory lists the files in the image. Deleted and unclosed entries are
// omitted.
func (img *Image) Directory() ([]Entry, error) {
	entries := []Entry{}

	track := img.geom.dirTrack
	sector := img.geom.dirSector

	// a directory longer than the disk is a cycle in the chain
	for n := 0; track != 0 && n < len(img.data)/sectorSize; n++ {
		sec, err := img.sector(track, sector)
		if err != nil {
			return nil, err
		}

		// eight 32 byte entries per directory sector
		for i := 0; i < sectorSize; i += 32 {
			e := sec[i : i+32]

			// bit 7 is the closed flag. entries without it are deleted
			// or were never written
			if e[2]&0x80 == 0 {
				continue
			}

			entries = append(entries, Entry{
				Name:   petsciiName(e[5:21]),
				Type:   FileType(e[2] & 0x07),
				Blocks: int(e[30]) | int(e[31])<<8,
				track:  e[3],
				sector: e[4],
			})
		}

		track = sec[0]
		sector = sec[1]
	}

	return entries, nil
}

// ReadFile walks the entry's sector chain and returns the file's bytes. For
// a PRG file the two byte load address header is included.
func (img *Image) ReadFile(e Entry) ([]byte, error) {
	data := []byte{}

	track := e.track
	sector := e.sector

	for n := 0; n < len(img.data)/sectorSize; n++ {
		sec, err := img.sector(track, sector)
		if err != nil {
			return nil, err
		}

		if sec[0] == 0 {
			// final sector. the second byte is the index of the last
			// used byte
			last := int(sec[1])
			if last < 2 || last >= sectorSize {
				return nil, curated.Errorf(CorruptImage, "bad final sector length")
			}
			return append(data, sec[2:last+1]...), nil
		}

		data = append(data, sec[2:]...)
		track = sec[0]
		sector = sec[1]
	}

	return nil, curated.Errorf(CorruptImage, "cycle in file chain")
}

// ReadFileByName finds the named file in the directory and reads it.
func (img *Image) ReadFileByName(name string) ([]byte, error) {
	dir, err := img.Directory()
	if err != nil {
		return nil, err
	}
	for _, e := range dir {
		if e.Name == name {
			return img.ReadFile(e)
		}
	}
	return nil, curated.Errorf(FileNotFound, name)
}
