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

// Package wavwriter records the sound of the VM's beeper to a WAV file.
package wavwriter

import (
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/audio"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// WavWriter implements the hardware.Audio and hardware.AudioFrame interfaces.
// Samples are accumulated in memory and written to disk when Close() is
// called.
type WavWriter struct {
	filename string
	gen      *audio.Generator

	// number of samples generated for every frame
	frameSamples int

	frame  []int16
	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, prefs *audio.Preferences, framesPerSecond int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename specified")
	}

	aw := &WavWriter{
		filename:     filename,
		gen:          audio.NewGenerator(prefs),
		frameSamples: audio.FrameSamples(framesPerSecond),
	}
	aw.frame = make([]int16, aw.frameSamples)

	return aw, nil
}

// SetSample sets the sample used instead of the square wave.
func (aw *WavWriter) SetSample(s *audio.Sample) {
	aw.gen.SetSample(s)
}

// Play implements the hardware.Audio interface.
func (aw *WavWriter) Play() error {
	return aw.gen.Play()
}

// Stop implements the hardware.Audio interface.
func (aw *WavWriter) Stop() error {
	return aw.gen.Stop()
}

// EndFrame implements the hardware.AudioFrame interface.
func (aw *WavWriter) EndFrame() error {
	aw.gen.GenerateInt16(aw.frame)
	for _, v := range aw.frame {
		aw.buffer = append(aw.buffer, int(v))
	}
	return nil
}

// Samples returns the number of samples recorded so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// Close writes the recording to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, audio.SampleRate, 16, 1, 1)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  audio.SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
