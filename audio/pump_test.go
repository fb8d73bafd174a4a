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

package audio_test

import (
	"errors"
	"testing"

	"github.com/pigus/pigus/audio"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/test"
)

type counter struct {
	calls int
}

func (c *counter) RenderSound(buffer []int16) {
	c.calls++
	for i := range buffer {
		buffer[i] = int16(i)
	}
}

type sink struct {
	lengths []int
	last    []int16
	fail    error
	limit   int
	stopped *bool
}

func (s *sink) Write(buffer []int16) error {
	if s.fail != nil {
		return s.fail
	}
	s.lengths = append(s.lengths, len(buffer))
	s.last = append(s.last[:0], buffer...)
	if len(s.lengths) >= s.limit && s.stopped != nil {
		*s.stopped = true
	}
	return nil
}

func (s *sink) Close() error { return nil }

type stopper bool

func (s *stopper) ShuttingDown() bool { return bool(*s) }

func TestPump(t *testing.T) {
	var stop stopper
	stopped := (*bool)(&stop)

	src := &counter{}
	snk := &sink{limit: 3, stopped: stopped}

	p := audio.NewPump(src, snk, 0)
	test.Equate(t, p.Frames(), audio.DefaultFrames)

	test.ExpectedSuccess(t, p.Run(&stop))
	test.Equate(t, src.calls, 3)
	test.Equate(t, p.Batches(), uint64(3))

	for _, l := range snk.lengths {
		test.Equate(t, l, audio.DefaultFrames*audio.Channels)
	}
	test.Equate(t, int(snk.last[511]), 511)
}

func TestPumpSinkError(t *testing.T) {
	var stop stopper
	p := audio.NewPump(&counter{}, &sink{fail: errors.New("no device")}, 16)
	err := p.Run(&stop)
	test.ExpectedSuccess(t, curated.Is(err, audio.SinkError))
	test.Equate(t, p.Batches(), uint64(0))

	// errors during shut down are not reported
	stop = true
	test.ExpectedSuccess(t, p.Run(&stop))
}

func TestTone(t *testing.T) {
	tone := audio.NewTone(audio.DefaultRate, 441)
	buf := make([]int16, 200*audio.Channels)
	tone.RenderSound(buf)

	// both channels carry the same signal
	for i := 0; i < len(buf); i += 2 {
		if buf[i] != buf[i+1] {
			t.Fatalf("channels differ at frame %d", i/2)
		}
	}

	// one complete cycle is 100 frames
	test.Equate(t, int(buf[0]), 0)
	if buf[25*2] <= 0 {
		t.Errorf("expected a positive half cycle: %d", buf[25*2])
	}
	if buf[175*2] >= 0 {
		t.Errorf("expected a negative half cycle: %d", buf[175*2])
	}
}
