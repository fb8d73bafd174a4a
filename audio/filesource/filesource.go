// This file is part of PiGUS.
//
// PiGUS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PiGUS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PiGUS.  If not, see <https://www.gnu.org/licenses/>.

// Package filesource plays a WAV or MP3 file as an audio.Source. It is used to
// test an audio sink without the card.
//
// The file is decoded into memory in its entirety and converted to 16 bit
// stereo at the output rate. Rendering loops back to the start of the file
// when the end is reached.
package filesource

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/logger"
)

// Sentinel error patterns.
const (
	DecodeError     = "filesource: %s: %v"
	UnsupportedFile = "filesource: unsupported file type (%s)"
)

const logTag = "filesource"

// Source implements the audio.Source interface.
type Source struct {
	// interleaved stereo at the output rate
	data []int16
	idx  int
}

// Load the named file. The type of file is decided by the extension.
func Load(filename string, rate int) (*Source, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeError, filename, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return FromWAV(f, rate)
	case ".mp3":
		return FromMP3(f, rate)
	}

	return nil, curated.Errorf(UnsupportedFile, filepath.Ext(filename))
}

// FromWAV decodes WAV data.
func FromWAV(r io.ReadSeeker, rate int) (*Source, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(DecodeError, "wav", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return nil, curated.Errorf(DecodeError, "wav", "no channels")
	}

	depth := int(dec.BitDepth)
	scale := func(v int) int16 {
		switch depth {
		case 8:
			return int16((v - 128) << 8)
		case 16:
			return int16(v)
		}
		if depth > 16 {
			return int16(v >> uint(depth-16))
		}
		return int16(v << uint(16-depth))
	}

	frames := len(buf.Data) / chans
	stereo := make([]int16, 0, frames*2)
	for i := 0; i+chans <= len(buf.Data); i += chans {
		l := scale(buf.Data[i])
		r := l
		if chans > 1 {
			r = scale(buf.Data[i+1])
		}
		stereo = append(stereo, l, r)
	}

	logger.Logf(logger.Allow, logTag, "wav: %d frames at %dHz (%d bit, %d channels)", frames, dec.SampleRate, depth, chans)

	return newSource(stereo, int(dec.SampleRate), rate)
}

// FromMP3 decodes MP3 data.
func FromMP3(r io.Reader, rate int) (*Source, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, "mp3", err)
	}

	// the decoded stream is always 16 bit little endian stereo
	var stereo []int16
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 2 {
			stereo = append(stereo, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf(DecodeError, "mp3", err)
		}
	}

	logger.Logf(logger.Allow, logTag, "mp3: %d frames at %dHz", len(stereo)/2, dec.SampleRate())

	return newSource(stereo, dec.SampleRate(), rate)
}

// newSource resamples the stereo data from one rate to another by nearest
// neighbour.
func newSource(stereo []int16, from int, to int) (*Source, error) {
	if len(stereo) < 2 {
		return nil, fmt.Errorf("filesource: no audio data")
	}
	if from <= 0 || to <= 0 || from == to {
		return &Source{data: stereo}, nil
	}

	inFrames := len(stereo) / 2
	outFrames := int(int64(inFrames) * int64(to) / int64(from))
	if outFrames < 1 {
		outFrames = 1
	}

	data := make([]int16, outFrames*2)
	for i := 0; i < outFrames; i++ {
		j := int(int64(i) * int64(from) / int64(to))
		data[i*2] = stereo[j*2]
		data[i*2+1] = stereo[j*2+1]
	}

	return &Source{data: data}, nil
}

// Frames returns the length of the source in frames at the output rate.
func (s *Source) Frames() int {
	return len(s.data) / 2
}

// RenderSound implements the audio.Source interface.
func (s *Source) RenderSound(buffer []int16) {
	for i := range buffer {
		buffer[i] = s.data[s.idx]
		s.idx++
		if s.idx >= len(s.data) {
			s.idx = 0
		}
	}
}
