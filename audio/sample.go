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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinal error patterns.
const (
	SampleError       = "audio: sample: %v"
	UnsupportedSample = "audio: sample: unsupported file type (%s)"
)

// Sample is mono PCM data. For stereo sources only the left channel is kept.
type Sample struct {
	// values in the range -1.0 to 1.0
	Data []float32

	// samples per second
	Rate float64
}

// Duration of the sample in seconds.
func (s Sample) Duration() float64 {
	if s.Rate == 0 {
		return 0
	}
	return float64(len(s.Data)) / s.Rate
}

// LoadSample loads a WAV or MP3 file. The type of file is decided by the
// filename extension.
func LoadSample(filename string) (*Sample, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(SampleError, err)
	}

	var s *Sample

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".wav":
		s, err = decodeWAV(bytes.NewReader(data))
	case ".mp3":
		s, err = decodeMP3(bytes.NewReader(data))
	default:
		return nil, curated.Errorf(UnsupportedSample, ext)
	}
	if err != nil {
		return nil, curated.Errorf(SampleError, err)
	}

	logger.Logf(logger.Allow, "audio", "sample %s: %.0fHz %.02fs", filepath.Base(filename), s.Rate, s.Duration())

	return s, nil
}

func decodeWAV(r io.ReadSeeker) (*Sample, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	// integer values are scaled according to the bit depth of the source
	scale := float32(int(1) << (dec.BitDepth - 1))
	if dec.BitDepth == 8 {
		// 8 bit wav data is unsigned
		scale = 128
	}

	s := &Sample{
		Data: make([]float32, 0, len(buf.Data)/chans),
		Rate: float64(dec.SampleRate),
	}

	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		if dec.BitDepth == 8 {
			v -= 128
		}
		s.Data = append(s.Data, float32(v)/scale)
	}

	if len(s.Data) == 0 {
		return nil, errors.New("wav file has no data")
	}

	return s, nil
}

func decodeMP3(r io.Reader) (*Sample, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}

	s := &Sample{
		Rate: float64(dec.SampleRate()),
	}

	// the decoded stream is always 16 bit little-endian with two channels.
	// only the left channel is used
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			s.Data = append(s.Data, float32(v)/32768)
		}
		if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	if len(s.Data) == 0 {
		return nil, errors.New("mp3 file has no data")
	}

	return s, nil
}
