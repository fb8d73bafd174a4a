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

//go:build sdl

package sinks

import (
	"github.com/pigus/pigus/audio"
	"github.com/pigus/pigus/audio/sdlsink"
)

const sdlAvailable = true

func newSDL(rate int, frames int) (audio.Sink, error) {
	s, err := sdlsink.NewSink(rate, frames)
	if err != nil {
		return nil, err
	}
	return s, nil
}
