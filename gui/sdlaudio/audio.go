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

// Package sdlaudio plays the sound of the VM's beeper through an SDL2 audio
// device. Samples are queued once per frame from the EndFrame() function.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// the number of frames of audio that can be queued before new frames are
// dropped. larger values increase latency.
const maxQueuedFrames = 4

// if the queue falls below this number of frames then an extra frame is
// queued to prevent buffer underruns.
const minQueuedFrames = 1

// Audio implements the hardware.Audio and hardware.AudioFrame interfaces.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	gen *audio.Generator

	samples []int16
	buffer  []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio(prefs *audio.Preferences, framesPerSecond int) (*Audio, error) {
	aud := &Audio{
		gen: audio.NewGenerator(prefs),
	}

	n := audio.FrameSamples(framesPerSecond)
	aud.samples = make([]int16, n)
	aud.buffer = make([]uint8, n*2)

	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     audio.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  512,
	}

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

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

// EndFrame implements the hardware.AudioFrame interface.
func (aud *Audio) EndFrame() error {
	frameBytes := uint32(len(aud.buffer))
	queued := sdl.GetQueuedAudioSize(aud.id)

	if queued > frameBytes*maxQueuedFrames {
		return nil
	}

	n := 1
	if queued < frameBytes*minQueuedFrames {
		n = 2
	}

	for range n {
		aud.gen.GenerateInt16(aud.samples)
		for i, v := range aud.samples {
			aud.buffer[i*2] = uint8(v)
			aud.buffer[i*2+1] = uint8(uint16(v) >> 8)
		}
		if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
			return curated.Errorf("sdlaudio: %v", err)
		}
	}

	return nil
}

// Close the audio device.
func (aud *Audio) Close() {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
