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

package hardware

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/pigus/pigus/audio"
	"github.com/pigus/pigus/audio/sinks"
	"github.com/pigus/pigus/environment"
	"github.com/pigus/pigus/hardware/cores"
	"github.com/pigus/pigus/hardware/device"
	"github.com/pigus/pigus/hardware/device/variant"
	"github.com/pigus/pigus/hardware/dispatch"
	"github.com/pigus/pigus/hardware/isa"
	"github.com/pigus/pigus/hardware/isa/gpio"
	"github.com/pigus/pigus/hardware/led"
	"github.com/pigus/pigus/hardware/memory/psram"
	"github.com/pigus/pigus/hardware/preferences"
	"github.com/pigus/pigus/hardware/strategy"
	"github.com/pigus/pigus/logger"
	"github.com/pigus/pigus/notifications"
)

const logTag = "card"

// Options override parts of the card that are otherwise created from the
// preferences. The zero value is valid.
type Options struct {
	Lines gpio.Lines
	Edges gpio.EdgeSource
	Link  psram.Link
	Sink  audio.Sink

	// the source for the audio pump. the device is used if this is nil
	Source audio.Source

	// additional notifications
	Notify notifications.Notify

	// watch the terminal for the quit key
	Keyboard bool
}

// Card is the main container for the parts of the card.
type Card struct {
	env  *environment.Environment
	opts Options

	Lines      gpio.Lines
	Edges      gpio.EdgeSource
	Memory     *psram.PSRAM
	Device     device.Card
	Layout     device.Layout
	Ports      *dispatch.PortMap
	Dispatcher *dispatch.Dispatcher
	Scheduler  *cores.Scheduler
	Wiring     strategy.Wiring

	link psram.Link
	pump *audio.Pump
	sink audio.Sink

	led    *led.LED
	notify notifications.Multi

	// signals received by the bookkeeping core
	signalledWrites atomic.Uint64
	signalledReads  atomic.Uint64

	// the most recent value of Dispatcher.Activity()
	activity uint64
}

// NewCard is the preferred method of initialisation for the Card type.
func NewCard(env *environment.Environment, opts Options) (*Card, error) {
	c := &Card{
		env:  env,
		opts: opts,
	}

	p := env.Prefs

	if err := c.openLines(p); err != nil {
		return nil, err
	}

	if err := c.openMemory(p); err != nil {
		c.Lines.Close()
		return nil, err
	}

	c.Device = variant.New(p.IOBase(), c.Memory)
	c.Layout = c.Device.Layout()

	var err error

	c.Ports, err = dispatch.NewPortMapFromLayout(c.Layout)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.Dispatcher = dispatch.NewDispatcher(c.Device, c.Ports, c.Layout.BasePort, c.Lines)
	c.Dispatcher.SetTiming(p.SettleTime(), p.MaxHoldTime())

	c.Scheduler = cores.NewScheduler(cores.DefaultQueue)
	if p.PinCores.Get().(bool) {
		_ = c.Scheduler.Pin(cores.BusIOCore, p.BusCPU.Get().(int))
		_ = c.Scheduler.Pin(cores.AudioCore, p.AudioCPU.Get().(int))
		_ = c.Scheduler.Pin(cores.BookkeepingCore, p.BookkeepingCPU.Get().(int))
	}

	c.Wiring, err = strategy.Wire(strategy.Selected, c.Lines, c.Edges, c.Dispatcher, c.Scheduler)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.notify = notifications.Multi{opts.Notify}
	c.openLED(p.ActivityLED.String())

	return c, nil
}

func (c *Card) openLines(p *preferences.Preferences) error {
	c.Lines = c.opts.Lines
	c.Edges = c.opts.Edges

	if c.Lines == nil {
		dev := p.GPIODevice.String()
		if dev == preferences.Sim {
			sim := gpio.NewSim()
			c.Lines = sim
			if c.Edges == nil {
				c.Edges = sim
			}
		} else {
			bcm, err := gpio.OpenBCM(dev)
			if err != nil {
				return err
			}
			c.Lines = bcm
		}
	}

	if c.Edges == nil {
		if sim, ok := c.Lines.(*gpio.Sim); ok {
			c.Edges = sim
		} else {
			c.Edges = gpio.NewSysfs(c.Lines, p.SysfsBase.Get().(int))
		}
	}

	return nil
}

func (c *Card) openMemory(p *preferences.Preferences) error {
	c.link = c.opts.Link

	if c.link == nil {
		dev := p.PSRAMDevice.String()
		if dev == preferences.Sim {
			c.link = psram.NewChip(psram.DefaultSize)
		} else {
			// the chip must be on its own lines. the data lines are switched
			// between input and output during read cycles
			if _, sim := c.Lines.(*gpio.Sim); !sim {
				used := uint32(isa.BusLines) | 1<<uint(p.LevelShifter.Get().(int))
				if err := psram.CheckLines(dev, used); err != nil {
					return err
				}
			}

			spi, err := psram.OpenSpidev(dev, uint32(p.PSRAMSpeed.Get().(int)))
			if err != nil {
				return err
			}
			c.link = spi
		}
	}

	c.Memory = psram.NewPSRAM(c.link, psram.DefaultSize)
	c.Memory.SetFastRead(p.FastRead.Get().(bool))

	return nil
}

// openLED replaces the activity LED. An empty path means no LED.
func (c *Card) openLED(path string) {
	if c.led != nil {
		_ = c.led.Close()
		c.led = nil
	}
	c.notify = c.notify[:1]

	if path == "" {
		return
	}

	l, err := led.NewLED(path)
	if err != nil {
		logger.Logf(c.env, logTag, "no activity LED: %v", err)
		return
	}

	c.led = l
	c.notify = append(c.notify, l)
}

func (c *Card) String() string {
	return fmt.Sprintf("%s [%s strategy]", c.Device, c.Wiring.Strategy)
}

// Describe returns a description of the card's bus layout.
func (c *Card) Describe() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("variant:  %s (%s)\n", variant.Name, c.Layout.Name))
	s.WriteString(fmt.Sprintf("strategy: %s\n", c.Wiring))
	s.WriteString(fmt.Sprintf("io base:  %#03x (decode base %#03x)\n", c.env.Prefs.IOBase(), c.Layout.BasePort))
	s.WriteString(c.Ports.Describe(c.Layout.BasePort))
	return s.String()
}

// Initialize the card. The GPIO lines are configured, the remote memory is
// reset and the device is initialised. Any error means the card cannot be
// used.
func (c *Card) Initialize() error {
	if err := c.Lines.Configure(c.env.Prefs.LevelShifter.Get().(int)); err != nil {
		return err
	}

	if err := c.Memory.Reset(psram.MinTimings); err != nil {
		return err
	}

	if err := c.Device.Initialize(); err != nil {
		return err
	}

	logger.Logf(c.env, logTag, "%s", c)
	logger.Logf(c.env, logTag, "%s", c.Memory)

	return nil
}

// Run the card until the context is done or Shutdown() is called.
func (c *Card) Run(ctx context.Context) error {
	var err error

	c.sink = c.opts.Sink
	if c.sink == nil {
		p := c.env.Prefs
		c.sink, err = sinks.New(p.AudioSink.String(), sinks.Options{
			Rate:    p.AudioRate.Get().(int),
			Frames:  p.AudioFrames.Get().(int),
			WavFile: p.WavFile.String(),
		})
		if err != nil {
			return err
		}
	}

	src := c.opts.Source
	if src == nil {
		src = c.Device
	}
	c.pump = audio.NewPump(src, c.sink, c.env.Prefs.AudioFrames.Get().(int))

	if c.Wiring.Bus != nil {
		if err := c.Scheduler.Assign(cores.BusIOCore, c.Wiring.Bus); err != nil {
			return err
		}
	}
	if err := c.Scheduler.Assign(cores.AudioCore, func(ctx *cores.Context) error {
		return c.pump.Run(ctx)
	}); err != nil {
		return err
	}
	if err := c.Scheduler.Assign(cores.BookkeepingCore, c.bookkeeping); err != nil {
		return err
	}

	// the pump can be blocked in the sink when the scheduler shuts down.
	// closing the sink releases it
	go func() {
		<-c.Scheduler.Done()
		if err := c.sink.Close(); err != nil {
			logger.Logf(c.env, logTag, "%v", err)
		}
	}()

	logger.Logf(c.env, logTag, "running (%s)", c.Wiring)

	err = c.Scheduler.Run(ctx)

	c.Dispatcher.Release()
	logger.Logf(c.env, logTag, "stopped: %s", c.Dispatcher.Stats())

	return err
}

// Shutdown directs the card to stop running.
func (c *Card) Shutdown() {
	c.Scheduler.Shutdown()
}

// Close the hardware. The data lines are released.
func (c *Card) Close() error {
	if c.Dispatcher != nil {
		c.Dispatcher.Release()
	}
	if c.led != nil {
		_ = c.led.Close()
	}
	if cl, ok := c.link.(io.Closer); ok {
		_ = cl.Close()
	}
	return c.Lines.Close()
}
