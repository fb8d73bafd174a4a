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

package sinks_test

import (
	"path/filepath"
	"testing"

	"github.com/pigus/pigus/audio/sinks"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/test"
)

func TestNew(t *testing.T) {
	s, err := sinks.New(" NULL ", sinks.Options{Rate: 0})
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, s.Write(make([]int16, 4)))
	test.ExpectedSuccess(t, s.Close())

	s, err = sinks.New(sinks.WAV, sinks.Options{WavFile: filepath.Join(t.TempDir(), "out.wav")})
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, s.Close())

	_, err = sinks.New("speaker", sinks.Options{})
	test.ExpectedSuccess(t, curated.Is(err, sinks.UnknownSink))
}

func TestNames(t *testing.T) {
	names := sinks.Names()
	test.ExpectedSuccess(t, len(names) >= 3)
	test.Equate(t, names[0], sinks.Oto)
}
