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

package paths

import (
	"os"
	"path/filepath"
)

// the local base path for all resources. if this directory does not exist in
// the current directory then the user's config directory is used.
const localBasePath = ".gopher8"

// the name of the directory in the user's config directory.
const configBasePath = "gopher8"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base resource path. Empty resource strings are
// ignored.
//
// The existence of the resource is not checked.
func ResourcePath(resource ...string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)

	return filepath.Join(p...), nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(localBasePath); err == nil && fi.IsDir() {
		return localBasePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configBasePath), nil
}
