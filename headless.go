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

package main

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/modalflag"
)

// headless runs a program for a fixed number of frames without a display,
// audio or input. The final state of the framebuffer is printed, optionally
// with the digests of the display and audio output.
func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	frames := md.AddInt("frames", 600, "number of frames to run")
	vf := addVMFlags(md)
	seed := md.AddInt("seed", 1, "random seed (0 for a time based seed)")
	showDigest := md.AddBool("digest", false, "print digest of display and audio output")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLogEcho(*log)

	ld, err := programFromArgs(md)
	if err != nil {
		return err
	}

	vm, err := newVM(md, vf)
	if err != nil {
		return err
	}
	vm.Prefs.Reseed(uint64(*seed))

	err = vm.LoadProgram(ld.Data)
	if err != nil {
		return err
	}

	vid := digest.NewVideo(nil)
	aud := digest.NewAudio(nil)
	vm.Plumb(vid, aud, nil)

	err = vm.RunForFrameCount(*frames, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", vm.FB.Pixels())
	fmt.Fprintf(output, "%s\n", vm)

	if *showDigest {
		fmt.Fprintf(output, "video: %s\n", vid.Hash())
		fmt.Fprintf(output, "audio: %s\n", aud.Hash())
	}

	return nil
}
