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

//go:build !adlib

package hardware_test

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pigus/pigus/audio/nullsink"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/environment"
	"github.com/pigus/pigus/hardware"
	"github.com/pigus/pigus/hardware/isa"
	"github.com/pigus/pigus/hardware/isa/gpio"
	"github.com/pigus/pigus/hardware/memory/psram"
	"github.com/pigus/pigus/hardware/preferences"
	"github.com/pigus/pigus/hardware/strategy"
	"github.com/pigus/pigus/notifications"
	"github.com/pigus/pigus/prefs"
	"github.com/pigus/pigus/test"
)

type recorder struct {
	crit    sync.Mutex
	notices map[notifications.Notice]int
}

func (r *recorder) Notify(n notifications.Notice) error {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.notices[n]++
	return nil
}

func (r *recorder) count(n notifications.Notice) int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.notices[n]
}

// simulated hardware with no LED and no CPU pinning
const simPrefs = "gpio.device::sim; psram.device::sim; activity.led::; cores.pin::false"

func newEnvironment(t *testing.T) *environment.Environment {
	t.Helper()

	prefs.PushCommandLineStack(simPrefs)
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	env, err := environment.NewEnvironment(environment.MainCard, p)
	test.DemandSuccess(t, err)
	return env
}

// waitFor polls the condition until it is true or the test times out.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestDescribe(t *testing.T) {
	env := newEnvironment(t)

	card, err := hardware.NewCard(env, hardware.Options{})
	test.DemandSuccess(t, err)
	defer card.Close()

	test.DemandSuccess(t, card.Initialize())

	d := card.Describe()
	test.ExpectedSuccess(t, strings.Contains(d, "variant:  gus"))
	test.ExpectedSuccess(t, strings.Contains(d, "decode base 0x040"))
	test.ExpectedSuccess(t, strings.Contains(d, strategy.Selected.String()))

	_, ok := card.Lines.(*gpio.Sim)
	test.ExpectedSuccess(t, ok)
}

func TestInitializeResetsMemory(t *testing.T) {
	env := newEnvironment(t)
	chip := psram.NewChip(psram.DefaultSize)

	card, err := hardware.NewCard(env, hardware.Options{Link: chip})
	test.DemandSuccess(t, err)
	defer card.Close()

	test.DemandSuccess(t, card.Initialize())
	test.Equate(t, chip.Resets(), 1)
}

func TestBadBase(t *testing.T) {
	env := newEnvironment(t)
	test.DemandSuccess(t, env.Prefs.Base.Set(0x300))

	card, err := hardware.NewCard(env, hardware.Options{})
	test.DemandSuccess(t, err)
	defer card.Close()

	test.ExpectedFailure(t, card.Initialize())
}

// board stands in for gpio lines that are not simulated
type board struct {
	*gpio.Sim
}

func TestSpidevOnBusLines(t *testing.T) {
	env := newEnvironment(t)
	test.DemandSuccess(t, env.Prefs.PSRAMDevice.Set("/dev/spidev0.0"))

	sim := gpio.NewSim()
	_, err := hardware.NewCard(env, hardware.Options{Lines: board{sim}, Edges: sim})
	test.ExpectedSuccess(t, curated.Is(err, psram.PinConflict))

	// the simulated chip uses no lines
	test.DemandSuccess(t, env.Prefs.PSRAMDevice.Set(preferences.Sim))
	card, err := hardware.NewCard(env, hardware.Options{Lines: board{sim}, Edges: sim})
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, card.Close())
}

func TestRun(t *testing.T) {
	env := newEnvironment(t)
	sim := gpio.NewSim()
	rec := &recorder{notices: make(map[notifications.Notice]int)}

	card, err := hardware.NewCard(env, hardware.Options{
		Lines:  sim,
		Sink:   nullsink.NewSink(0, 0),
		Notify: rec,
	})
	test.DemandSuccess(t, err)
	defer card.Close()
	test.DemandSuccess(t, card.Initialize())

	done := make(chan error)
	go func() {
		done <- card.Run(context.Background())
	}()

	if card.Wiring.Watch != nil {
		<-sim.Watching()
	}

	// write the AdLib command latch
	sim.Set(isa.MakeSample(true, false, 0x248, 0x55))
	waitFor(t, "write", func() bool { return card.Dispatcher.Stats().Writes == 1 })
	sim.Set(isa.MakeSample(false, false, 0x248, 0x55))

	// and read it back
	sim.Set(isa.MakeSample(false, true, 0x24a, 0))
	waitFor(t, "read", func() bool {
		driving, _ := sim.Driving()
		return driving
	})
	_, v := sim.Driving()
	test.Equate(t, v, 0x55)

	sim.Set(isa.MakeSample(false, false, 0x24a, 0))
	waitFor(t, "release", func() bool {
		driving, _ := sim.Driving()
		return !driving
	})

	// outside of the card's ports
	sim.Set(isa.MakeSample(true, false, 0x388, 0x01))
	sim.Set(isa.MakeSample(false, false, 0x388, 0x01))

	waitFor(t, "activity", func() bool { return rec.count(notifications.NotifyActivity) > 0 })

	// the preferences file is watched
	other, err := preferences.NewPreferences(env.Prefs.Path())
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, other.AudioRate.Set(22050))
	test.DemandSuccess(t, other.Save())
	waitFor(t, "reload", func() bool { return rec.count(notifications.NotifyPrefsReloaded) > 0 })
	test.Equate(t, env.Prefs.AudioRate.Get(), 22050)

	card.Shutdown()

	select {
	case err := <-done:
		test.ExpectedSuccess(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("card did not stop")
	}

	test.Equate(t, rec.count(notifications.NotifyShutdown), 1)

	driving, _ := sim.Driving()
	test.ExpectedFailure(t, driving)

	stats := card.Dispatcher.Stats()
	test.Equate(t, stats.Writes, uint64(1))
	test.Equate(t, stats.Reads, uint64(1))
}
