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

// Package filehost lists the community FileHost, the website where MEGA65
// software is published. The site exposes its catalogue as one JSON array;
// this package fetches it and picks out the entries that can be sent to the
// machine.
package filehost

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jetsetilly/matrix65/curated"
)

// error patterns for FileHost access.
const (
	ListError = "filehost: %v"
)

// default endpoints. ListURL serves the catalogue; DownloadBase prefixes
// every Record's Location
const (
	ListURL      = "https://files.mega65.org/php/readfilespublic.php"
	DownloadBase = "https://files.mega65.org/"
)

// Record is one entry in the FileHost catalogue. Every field arrives as a
// string, numbers included; that is simply how the site serves it.
type Record struct {
	FileID    string `json:"fileid"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Kind      string `json:"type"`
	OS        string `json:"os"`
	Rating    string `json:"rating"`
	Downloads string `json:"downloads"`
	Published string `json:"published"`
	SortDate  string `json:"sortdate"`
	VersionID string `json:"versionid"`
	Filename  string `json:"filename"`
	Size      string `json:"size"`
	Location  string `json:"location"`
	Author    string `json:"author"`
}

func (r Record) String() string {
	return fmt.Sprintf("%s (%s) by %s", r.Title, r.Kind, r.Author)
}

// URL the record's file can be downloaded from.
func (r Record) URL() string {
	return DownloadBase + r.Location
}

// Loadable is true if the record's file is something the machine can be
// sent directly: a program or a disk image.
func (r Record) Loadable() bool {
	switch strings.ToLower(lastExtension(r.Location)) {
	case "prg", "d64", "d81":
		return true
	}
	return false
}

func lastExtension(s string) string {
	i := strings.LastIndex(s, ".")
	if i == -1 {
		return ""
	}
	return s[i+1:]
}

// FileHost is a session with the catalogue server. The zero value uses the
// public site.
type FileHost struct {
	// the catalogue endpoint. the public site when empty
	URL string
}

// List fetches the full catalogue.
func (fh *FileHost) List() ([]Record, error) {
	url := fh.URL
	if url == "" {
		url = ListURL
	}

	client := http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, curated.Errorf(ListError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, curated.Errorf(ListError, fmt.Errorf("unexpected response: %s", resp.Status))
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, curated.Errorf(ListError, err)
	}
	return records, nil
}

// ListLoadable fetches the catalogue and keeps only the records that can be
// sent to the machine.
func (fh *FileHost) ListLoadable() ([]Record, error) {
	records, err := fh.List()
	if err != nil {
		return nil, err
	}

	loadable := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Loadable() {
			loadable = append(loadable, r)
		}
	}
	return loadable, nil
}
