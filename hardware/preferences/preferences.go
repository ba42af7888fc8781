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

// Package preferences contains the preference values used by the hardware
// package. Preferences are stored on disk with the other preferences of the
// application, under keys beginning with "vm.".
package preferences

import (
	"math/rand/v2"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// default values.
const (
	DefaultTickRate             = 60
	DefaultInstructionsPerFrame = 1
	DefaultWrapSprites          = false
	DefaultStackDepth           = 16
)

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// the number of frames per second. the delay and sound timers are
	// decremented once per frame
	TickRate prefs.Int

	// the maximum number of instructions executed per frame
	InstructionsPerFrame prefs.Int

	// sprites that extend beyond the edge of the display are wrapped around to
	// the opposite edge rather than clipped
	WrapSprites prefs.Bool

	// the number of return addresses the call stack can hold
	StackDepth prefs.Int

	// random values generated by the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed uint64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The preferences are set to their default values. Call Load() to load
// values from disk.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()
	p.Reseed(0)

	positive := func(name string) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if v.(int) < 1 {
				return curated.Errorf("preferences: %s must be greater than zero", name)
			}
			return nil
		}
	}
	p.TickRate.SetHookPre(positive("tick rate"))
	p.InstructionsPerFrame.SetHookPre(positive("instructions per frame"))
	p.StackDepth.SetHookPre(positive("stack depth"))

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Add("vm.tickRate", &p.TickRate)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("vm.instructionsPerFrame", &p.InstructionsPerFrame)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("vm.wrapSprites", &p.WrapSprites)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("vm.stackDepth", &p.StackDepth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.TickRate.Set(DefaultTickRate)
	_ = p.InstructionsPerFrame.Set(DefaultInstructionsPerFrame)
	_ = p.WrapSprites.Set(DefaultWrapSprites)
	_ = p.StackDepth.Set(DefaultStackDepth)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed uint64) {
	if seed == 0 {
		p.RandSeed = uint64(time.Now().UnixNano())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewPCG(p.RandSeed, p.RandSeed))
}

// Load hardware preferences from disk. A missing preferences file is not an
// error.
func (p *Preferences) Load() error {
	err := p.dsk.Load(false)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
