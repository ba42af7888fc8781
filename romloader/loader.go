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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal error patterns.
const (
	IOError         = "romloader: %v"
	HashMismatch    = "romloader: unexpected hash value (%s)"
	UnsupportedURL  = "romloader: unsupported URL scheme (%s)"
	EmptyProgram    = "romloader: program is empty"
	ProgramTooLarge = "romloader: program too large (%d bytes)"
)

// FileExtensions is the list of extensions commonly used for program files.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader specifies a program to load.
type Loader struct {
	// filename or URL of the program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the base filename of the program without the extension.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// HasKnownExtension returns true if the filename ends with one of the
// FileExtensions.
func (ld Loader) HasKnownExtension() bool {
	ext := strings.ToUpper(filepath.Ext(ld.Filename))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load the program data. Calling Load() on a Loader that has already loaded
// does nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(IOError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(IOError, resp.Status)
		}

		// read one byte more than will fit so that oversized programs can be
		// detected without reading the entire response
		data, err = io.ReadAll(io.LimitReader(resp.Body, memory.MaxProgramSize+1))
		if err != nil {
			return curated.Errorf(IOError, err)
		}

	case "file", "":
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(IOError, err)
		}

	default:
		// single letter schemes are windows drive letters
		if len(scheme) == 1 {
			data, err = os.ReadFile(ld.Filename)
			if err != nil {
				return curated.Errorf(IOError, err)
			}
		} else {
			return curated.Errorf(UnsupportedURL, scheme)
		}
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyProgram)
	}

	if len(data) > memory.MaxProgramSize {
		return curated.Errorf(ProgramTooLarge, len(data))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(HashMismatch, hash)
	}

	ld.Hash = hash
	ld.Data = data

	logger.Logf(logger.Allow, "romloader", "%s: %d bytes (%s)", ld.ShortName(), len(data), hash)

	return nil
}
