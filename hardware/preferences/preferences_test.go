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

package preferences_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.TickRate.Get().(int), 60)
	test.ExpectEquality(t, p.InstructionsPerFrame.Get().(int), 1)
	test.ExpectEquality(t, p.WrapSprites.Get().(bool), false)
	test.ExpectEquality(t, p.StackDepth.Get().(int), 16)

	// values must be positive
	test.ExpectFailure(t, p.InstructionsPerFrame.Set(0))
	test.ExpectFailure(t, p.TickRate.Set(-1))
	test.ExpectEquality(t, p.InstructionsPerFrame.Get().(int), 1)

	test.ExpectSuccess(t, p.InstructionsPerFrame.Set(10))
	p.SetDefaults()
	test.ExpectEquality(t, p.InstructionsPerFrame.Get().(int), 1)
}

func TestReseed(t *testing.T) {
	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	p.Reseed(100)
	a := p.RandSrc.Uint32()
	p.Reseed(100)
	b := p.RandSrc.Uint32()
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, p.RandSeed, 100)
}

func TestSaveAndLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopher8", 0o700))

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	// loading without a preferences file is not an error
	test.ExpectSuccess(t, p.Load())

	test.ExpectSuccess(t, p.WrapSprites.Set(true))
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.WrapSprites.Get().(bool), false)
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.WrapSprites.Get().(bool), true)
	test.ExpectEquality(t, q.String(), p.String())
}
