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

// sectorSize is common to every format this package reads.
const sectorSize = 256

// geometry describes how one disk format maps track/sector pairs onto the
// flat image.
type geometry struct {
	name string

	// total image size in bytes. some D64 dumps append one error byte per
	// sector; those images are larger and matched separately
	size int

	// track of the directory chain and the sector the chain starts at
	dirTrack  byte
	dirSector byte

	// sectorsIn returns the number of sectors on the given track, or zero
	// for a track outside the format
	sectorsIn func(track byte) int
}

// the 1541 packs fewer sectors onto the shorter inner tracks. four speed
// zones over 35 tracks.
var d64 = geometry{
	name:      "d64",
	size:      174848,
	dirTrack:  18,
	dirSector: 1,
	sectorsIn: func(track byte) int {
		switch {
		case track >= 1 && track <= 17:
			return 21
		case track <= 24:
			return 19
		case track <= 30:
			return 18
		case track <= 35:
			return 17
		}
		return 0
	},
}

// the 1581 is uniform. eighty tracks of forty sectors, directory chain on
// track 40 after the header and BAM sectors.
var d81 = geometry{
	name:      "d81",
	size:      819200,
	dirTrack:  40,
	dirSector: 3,
	sectorsIn: func(track byte) int {
		if track >= 1 && track <= 80 {
			return 40
		}
		return 0
	},
}

// offset of the given sector in the flat image, or -1 if the track/sector
// pair is outside the format.
func (g geometry) offset(track, sector byte) int {
	if g.sectorsIn(track) == 0 || int(sector) >= g.sectorsIn(track) {
		return -1
	}
	o := 0
	for t := byte(1); t < track; t++ {
		o += g.sectorsIn(t)
	}
	return (o + int(sector)) * sectorSize
}
