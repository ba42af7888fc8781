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

// Package otoaudio plays the sound of the VM's beeper with the oto library. It
// is an alternative to the sdlaudio package that does not require SDL.
//
// Unlike sdlaudio, samples are pulled from the generator by oto's own
// goroutine rather than being pushed once per frame.
package otoaudio

import (
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// latency of the oto output buffer.
const bufferSize = 50 * time.Millisecond

// Audio implements the hardware.Audio interface.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player
	gen    *audio.Generator
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(prefs *audio.Preferences) (*Audio, error) {
	aud := &Audio{
		gen: audio.NewGenerator(prefs),
	}

	op := &oto.NewContextOptions{
		SampleRate:   audio.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferSize,
	}

	var ready chan struct{}
	var err error

	aud.ctx, ready, err = oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("otoaudio: %v", err)
	}
	<-ready

	// the generator produces silence when the tone is not sounding so the
	// player can run continuously
	aud.player = aud.ctx.NewPlayer(aud.gen)
	aud.player.Play()

	logger.Logf(logger.Allow, "otoaudio", "frequency: %d samples/sec", audio.SampleRate)

	return aud, nil
}

// SetSample sets the sample used instead of the square wave.
func (aud *Audio) SetSample(s *audio.Sample) {
	aud.gen.SetSample(s)
}

// Play implements the hardware.Audio interface.
func (aud *Audio) Play() error {
	return aud.gen.Play()
}

// Stop implements the hardware.Audio interface.
func (aud *Audio) Stop() error {
	return aud.gen.Stop()
}

// Close the player.
func (aud *Audio) Close() error {
	if aud.player == nil {
		return nil
	}
	err := aud.player.Close()
	aud.player = nil
	if err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	return nil
}
