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

package gpio_test

import (
	"context"
	"testing"

	"github.com/go-test/deep"
	"github.com/pigus/pigus/hardware/isa"
	"github.com/pigus/pigus/hardware/isa/gpio"
	"github.com/pigus/pigus/test"
)

func TestSimDrive(t *testing.T) {
	s := gpio.NewSim()
	test.ExpectedSuccess(t, s.Read().IOW() == false && s.Read().IOR() == false)

	s.Set(isa.MakeSample(false, true, 0x246, 0x00))
	s.DriveData(0x55)
	test.Equate(t, s.Read().Data(), 0x55)

	ok, v := s.Driving()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, v, 0x55)

	s.Set(isa.MakeSample(false, false, 0x246, 0x00))
	s.ReleaseData()
	test.Equate(t, s.Read().Data(), 0x00)

	h := s.History()
	test.DemandEquality(t, len(h), 2)
	test.ExpectedSuccess(t, h[0].Op == gpio.SimDrive && h[0].Host.IOR())
	test.ExpectedSuccess(t, h[1].Op == gpio.SimRelease && !h[1].Host.IOR())
}

func TestSimWatch(t *testing.T) {
	s := gpio.NewSim()
	ctx, cancel := context.WithCancel(context.Background())

	events := make(chan gpio.Event, 10)
	done := make(chan error)
	go func() {
		done <- s.Watch(ctx, []int{isa.LineIOW}, func(ev gpio.Event) {
			events <- ev
		})
	}()
	<-s.Watching()

	s.Set(isa.MakeSample(true, false, 0x240, 0x10))

	// read strobe is not watched
	s.Set(isa.MakeSample(true, true, 0x240, 0x10))
	s.Set(isa.MakeSample(false, false, 0x240, 0x10))

	cancel()
	test.ExpectedSuccess(t, <-done)
	close(events)

	var got []gpio.Event
	for ev := range events {
		got = append(got, ev)
	}

	want := []gpio.Event{
		{Line: isa.LineIOW, Falling: true, Sample: isa.MakeSample(true, false, 0x240, 0x10)},
		{Line: isa.LineIOW, Falling: false, Sample: isa.MakeSample(false, false, 0x240, 0x10)},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}
