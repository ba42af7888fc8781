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

package romloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

var prg = []byte{0x60, 0x01, 0x12, 0x02}

func TestFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "spin.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, prg, 0o600))

	ld := romloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "spin")
	test.ExpectSuccess(t, ld.HasKnownExtension())
	test.ExpectFailure(t, ld.HasLoaded())

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, string(ld.Data), string(prg))
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(prg)))

	// a second load does nothing
	test.ExpectSuccess(t, ld.Load())
}

func TestHash(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "spin.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, prg, 0o600))

	ld := romloader.NewLoader(fn)
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(prg))
	test.ExpectSuccess(t, ld.Load())

	ld = romloader.NewLoader(fn)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romloader.HashMismatch))
	test.ExpectFailure(t, ld.HasLoaded())
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()

	ld := romloader.NewLoader(filepath.Join(dir, "missing.ch8"))
	err := ld.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, romloader.IOError))

	fn := filepath.Join(dir, "empty.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, nil, 0o600))
	ld = romloader.NewLoader(fn)
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.EmptyProgram))

	fn = filepath.Join(dir, "large.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, memory.MaxProgramSize+1), 0o600))
	ld = romloader.NewLoader(fn)
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.ProgramTooLarge))

	ld = romloader.NewLoader("ftp://example.com/prg.ch8")
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.UnsupportedURL))
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/spin.ch8" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(prg)
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/spin.ch8")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, string(ld.Data), string(prg))
	test.ExpectEquality(t, ld.ShortName(), "spin")

	ld = romloader.NewLoader(srv.URL + "/missing.ch8")
	test.ExpectFailure(t, ld.Load())
}
