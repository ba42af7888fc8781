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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/test"
)

type countingDisplay struct {
	renders int
}

func (d *countingDisplay) Render(_ framebuffer.Pixels) error {
	d.renders++
	return nil
}

func TestVideoChaining(t *testing.T) {
	var px framebuffer.Pixels
	px[3][4] = true

	a := digest.NewVideo(nil)
	b := digest.NewVideo(nil)

	test.DemandSuccess(t, a.Render(px))
	test.DemandSuccess(t, b.Render(px))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// the same frame rendered twice results in a different hash because the
	// digests are chained
	h := a.Hash()
	test.DemandSuccess(t, a.Render(px))
	test.ExpectInequality(t, a.Hash(), h)
	test.ExpectEquality(t, a.Renders(), 2)

	// a different frame results in a different hash
	px[3][4] = false
	test.DemandSuccess(t, b.Render(px))
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), "0000000000000000000000000000000000000000")
	test.ExpectEquality(t, a.Renders(), 0)
}

func TestVideoForwarding(t *testing.T) {
	next := &countingDisplay{}
	dig := digest.NewVideo(next)

	var px framebuffer.Pixels
	test.DemandSuccess(t, dig.Render(px))
	test.DemandSuccess(t, dig.Render(px))
	test.ExpectEquality(t, next.renders, 2)
}

func TestAudio(t *testing.T) {
	a := digest.NewAudio(nil)
	b := digest.NewAudio(nil)

	test.DemandSuccess(t, a.EndFrame())
	test.DemandSuccess(t, b.EndFrame())
	test.ExpectEquality(t, a.Hash(), b.Hash())

	test.DemandSuccess(t, a.Play())
	test.DemandSuccess(t, a.EndFrame())
	test.DemandSuccess(t, b.EndFrame())
	test.ExpectInequality(t, a.Hash(), b.Hash())

	a.ResetDigest()
	b.ResetDigest()
	test.DemandSuccess(t, a.Stop())
	test.DemandSuccess(t, a.EndFrame())
	test.DemandSuccess(t, b.EndFrame())
	test.ExpectEquality(t, a.Hash(), b.Hash())
}
