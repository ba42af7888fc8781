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
	"math"
	"sync"
)

// SampleRate is the number of samples per second produced by the Generator.
const SampleRate = 44100

// FrameSamples returns the number of samples in a frame for the given frame
// rate.
func FrameSamples(framesPerSecond int) int {
	if framesPerSecond < 1 {
		framesPerSecond = 1
	}
	return SampleRate / framesPerSecond
}

// Generator produces the beeper waveform. It is safe to call Generate() from a
// goroutine other than the one calling Play() and Stop().
type Generator struct {
	crit sync.Mutex

	prefs *Preferences

	sounding bool

	// position in the square wave cycle in the range 0.0 to 1.0
	phase float64

	// if sample is not nil it is played instead of the square wave. pos is
	// the (fractional) index of the next value
	sample *Sample
	pos    float64
}

// NewGenerator is the preferred method of initialisation for the Generator
// type.
func NewGenerator(p *Preferences) *Generator {
	return &Generator{
		prefs: p,
	}
}

// SetSample sets the sample to play instead of the square wave. A nil sample
// reverts to the square wave.
func (gen *Generator) SetSample(s *Sample) {
	gen.crit.Lock()
	defer gen.crit.Unlock()
	gen.sample = s
	gen.pos = 0
}

// Play implements the hardware.Audio interface.
func (gen *Generator) Play() error {
	gen.crit.Lock()
	defer gen.crit.Unlock()
	gen.sounding = true
	gen.phase = 0
	gen.pos = 0
	return nil
}

// Stop implements the hardware.Audio interface.
func (gen *Generator) Stop() error {
	gen.crit.Lock()
	defer gen.crit.Unlock()
	gen.sounding = false
	return nil
}

// Sounding returns true if the generator is producing sound.
func (gen *Generator) Sounding() bool {
	gen.crit.Lock()
	defer gen.crit.Unlock()
	return gen.sounding
}

// Generate fills buf with the next samples. Values are in the range -1.0 to
// 1.0 and are zero if the generator is not sounding.
func (gen *Generator) Generate(buf []float32) {
	gen.crit.Lock()
	defer gen.crit.Unlock()

	if !gen.sounding {
		clear(buf)
		return
	}

	vol := gen.prefs.Volume.Get().(float64)

	if gen.sample != nil && len(gen.sample.Data) > 0 {
		step := gen.sample.Rate / SampleRate
		l := float64(len(gen.sample.Data))
		for i := range buf {
			buf[i] = gen.sample.Data[int(gen.pos)] * float32(vol)
			gen.pos += step
			for gen.pos >= l {
				gen.pos -= l
			}
		}
		return
	}

	step := gen.prefs.Frequency.Get().(float64) / SampleRate
	for i := range buf {
		if gen.phase < 0.5 {
			buf[i] = float32(vol)
		} else {
			buf[i] = float32(-vol)
		}
		gen.phase += step
		gen.phase -= math.Floor(gen.phase)
	}
}

// GenerateInt16 is the same as Generate but produces signed 16 bit values.
func (gen *Generator) GenerateInt16(buf []int16) {
	f := make([]float32, len(buf))
	gen.Generate(f)
	for i := range f {
		buf[i] = int16(f[i] * math.MaxInt16)
	}
}

// Read implements the io.Reader interface. Samples are written to p as signed
// 16 bit little-endian values. Any odd byte at the end of p is not used.
func (gen *Generator) Read(p []byte) (int, error) {
	s := make([]int16, len(p)/2)
	gen.GenerateInt16(s)
	for i, v := range s {
		p[i*2] = uint8(v)
		p[i*2+1] = uint8(uint16(v) >> 8)
	}
	return len(s) * 2, nil
}
