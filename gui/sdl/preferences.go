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

package sdl

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// DefaultScale is the default number of screen pixels per framebuffer pixel.
const DefaultScale = 10

// the largest scale value allowed.
const maxScale = 40

// Preferences for the SDL window.
type Preferences struct {
	dsk *prefs.Disk

	// number of screen pixels per framebuffer pixel
	Scale prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Scale.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < 1 || s > maxScale {
			return curated.Errorf("sdl: scale out of range (%d)", s)
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	err = p.dsk.Add("sdl.scale", &p.Scale)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Scale.Set(DefaultScale)
}

// Load SDL preferences from disk. A missing preferences file is not an error.
func (p *Preferences) Load() error {
	err := p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current SDL preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
