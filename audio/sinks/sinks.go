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

// Package sinks creates an audio.Sink by name.
package sinks

import (
	"strings"

	"github.com/pigus/pigus/audio"
	"github.com/pigus/pigus/audio/nullsink"
	"github.com/pigus/pigus/audio/otosink"
	"github.com/pigus/pigus/audio/wavsink"
	"github.com/pigus/pigus/curated"
)

// List of sink names.
const (
	Oto  = "oto"
	WAV  = "wav"
	SDL  = "sdl"
	Null = "null"
)

// Sentinel error patterns.
const (
	UnknownSink     = "sinks: unknown sink (%s)"
	UnavailableSink = "sinks: %s sink not available in this build"
)

// Options for New().
type Options struct {
	Rate   int
	Frames int

	// filename for the WAV sink
	WavFile string
}

// Names returns the names of the sinks that are available in this build.
func Names() []string {
	n := []string{Oto, WAV, Null}
	if sdlAvailable {
		n = append(n, SDL)
	}
	return n
}

// New creates the named sink.
func New(name string, opts Options) (audio.Sink, error) {
	if opts.Rate <= 0 {
		opts.Rate = audio.DefaultRate
	}
	if opts.Frames <= 0 {
		opts.Frames = audio.DefaultFrames
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case Oto:
		s, err := otosink.NewSink(opts.Rate, opts.Frames)
		if err != nil {
			return nil, err
		}
		return s, nil
	case WAV:
		s, err := wavsink.NewSink(opts.WavFile, opts.Rate, opts.Frames, true)
		if err != nil {
			return nil, err
		}
		return s, nil
	case SDL:
		if !sdlAvailable {
			return nil, curated.Errorf(UnavailableSink, SDL)
		}
		return newSDL(opts.Rate, opts.Frames)
	case Null:
		return nullsink.NewSink(opts.Rate, opts.Frames), nil
	}

	return nil, curated.Errorf(UnknownSink, name)
}
