// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separates key and value in the preferences file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile = "prefs: no preferences file (%s)"
	DiskError   = "prefs: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(dsk.entries)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to list of values to store/load from Disk. The key value
// is used to identify the value in the preferences file.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, keySep) {
		return curated.Errorf(DiskError, fmt.Sprintf("illegal key (%q)", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DiskError, fmt.Sprintf("duplicate key (%s)", key))
	}
	dsk.entries[key] = p
	return nil
}

// readFile returns the key/value pairs in the preferences file. Returns
// NoPrefsFile if the file does not exist.
func (dsk *Disk) readFile() (map[string]string, error) {
	entries := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return entries, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the boilerplate line is optional
	first := true

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false
			if line == WarningBoilerPlate {
				continue
			}
		}

		k, v, ok := strings.Cut(line, keySep)
		if !ok {
			continue
		}
		entries[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return entries, curated.Errorf(DiskError, err)
	}

	return entries, nil
}

// Save current preference values to disk. Entries in the file that have not
// been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	entries, err := dsk.readFile()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, p := range dsk.entries {
		entries[k] = p.String()
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(DiskError, err)
	}

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range slices.Sorted(maps.Keys(entries)) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, entries[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Values pushed to the command line stack
// take precedence over values in the file.
//
// If the preferences file does not exist and saveOnFirstUse is true then the
// current values are saved to a new file. Otherwise the NoPrefsFile error is
// returned, after any command line values have been applied.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	entries, readErr := dsk.readFile()
	if readErr != nil && !curated.Is(readErr, NoPrefsFile) {
		return readErr
	}

	for k, v := range entries {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(DiskError, err)
			}
		}
	}

	if readErr != nil {
		if saveOnFirstUse {
			return dsk.Save()
		}
		return readErr
	}

	return nil
}
