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

package audio

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// default values.
const (
	DefaultFrequency = 440.0
	DefaultVolume    = 0.25
)

// Preferences for the audio package.
type Preferences struct {
	dsk *prefs.Disk

	// frequency of the square wave in Hz
	Frequency prefs.Float

	// output volume in the range 0.0 to 1.0
	Volume prefs.Float
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Frequency.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 20.0 || f > 20000.0 {
			return curated.Errorf("audio: frequency out of range (%.1f)", f)
		}
		return nil
	})

	p.Volume.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f > 1.0 {
			return curated.Errorf("audio: volume out of range (%.2f)", f)
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("audio: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("audio: %v", err)
	}

	err = p.dsk.Add("audio.frequency", &p.Frequency)
	if err != nil {
		return nil, curated.Errorf("audio: %v", err)
	}
	err = p.dsk.Add("audio.volume", &p.Volume)
	if err != nil {
		return nil, curated.Errorf("audio: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Frequency.Set(DefaultFrequency)
	_ = p.Volume.Set(DefaultVolume)
}

// Load audio preferences from disk. A missing preferences file is not an error.
func (p *Preferences) Load() error {
	err := p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current audio preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
