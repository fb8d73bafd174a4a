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

package preferences

import (
	"fmt"
	"time"

	"github.com/pigus/pigus/audio"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/hardware/device/variant"
	"github.com/pigus/pigus/hardware/dispatch"
	"github.com/pigus/pigus/hardware/isa"
	"github.com/pigus/pigus/hardware/isa/gpio"
	"github.com/pigus/pigus/hardware/led"
	"github.com/pigus/pigus/hardware/memory/psram"
	"github.com/pigus/pigus/prefs"
	"github.com/pigus/pigus/resources"
)

// Sim is the value of the gpio.device and psram.device preferences that
// selects the simulated hardware.
const Sim = "sim"

// Range of the settle time in nanoseconds.
const (
	MinSettle = 1000
	MaxSettle = 2000
)

// default values that are not defined by other packages
const (
	defaultSysfsBase      = 512
	defaultBusCPU         = 3
	defaultAudioCPU       = 2
	defaultBookkeepingCPU = 0
	defaultWavFile        = "pigus.wav"
	defaultSink           = "oto"
)

// Preferences defines and collates all the preference values used by the card.
type Preferences struct {
	dsk *prefs.Disk

	// I/O base of the card as seen by the host
	Base prefs.Int

	// time the data lines are held before the read strobe is checked again,
	// in nanoseconds
	Settle prefs.Int

	// longest time the card will drive the data lines, in microseconds
	MaxHold prefs.Int

	// the GPIO line that enables the level shifter
	LevelShifter prefs.Int

	// the device to map the GPIO registers from or "sim"
	GPIODevice prefs.String

	// the number of the first GPIO line in the sysfs interface
	SysfsBase prefs.Int

	// pin core tasks to CPUs
	PinCores       prefs.Bool
	BusCPU         prefs.Int
	AudioCPU       prefs.Int
	BookkeepingCPU prefs.Int

	// audio output
	AudioSink   prefs.String
	AudioRate   prefs.Int
	AudioFrames prefs.Int
	WavFile     prefs.String

	// remote memory. the device is a spidev path or "sim"
	PSRAMDevice prefs.String
	PSRAMSpeed  prefs.Int
	FastRead    prefs.Bool

	// sysfs LED to blink on activity. empty for no LED
	ActivityLED prefs.String

	// echo the log to the terminal
	LogEcho prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. An empty path means the default prefs file.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.setHooks()
	p.SetDefaults()

	var err error

	if path == "" {
		path, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{"card.base", &p.Base},
		{"card.settle", &p.Settle},
		{"card.maxhold", &p.MaxHold},
		{"card.levelshifter", &p.LevelShifter},
		{"gpio.device", &p.GPIODevice},
		{"gpio.sysfsbase", &p.SysfsBase},
		{"cores.pin", &p.PinCores},
		{"cores.bus", &p.BusCPU},
		{"cores.audio", &p.AudioCPU},
		{"cores.bookkeeping", &p.BookkeepingCPU},
		{"audio.sink", &p.AudioSink},
		{"audio.rate", &p.AudioRate},
		{"audio.frames", &p.AudioFrames},
		{"audio.wavfile", &p.WavFile},
		{"psram.device", &p.PSRAMDevice},
		{"psram.speed", &p.PSRAMSpeed},
		{"psram.fastread", &p.FastRead},
		{"activity.led", &p.ActivityLED},
		{"log.echo", &p.LogEcho},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			return nil, err
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

func (p *Preferences) setHooks() {
	p.Base.SetHookPre(func(v prefs.Value) error {
		if b := v.(int); b < 0 || b > isa.NumAddresses-1 {
			return fmt.Errorf("card.base: %#x outside of the I/O space", b)
		}
		return nil
	})
	p.Settle.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s < MinSettle || s > MaxSettle {
			return fmt.Errorf("card.settle: %dns outside of range %d to %d", s, MinSettle, MaxSettle)
		}
		return nil
	})
	p.MaxHold.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return fmt.Errorf("card.maxhold: must be at least 1µs")
		}
		return nil
	})
	p.LevelShifter.SetHookPre(func(v prefs.Value) error {
		if l := v.(int); l < 2 || l > 31 {
			return fmt.Errorf("card.levelshifter: line %d is not available", l)
		}
		return nil
	})
	p.AudioFrames.SetHookPre(func(v prefs.Value) error {
		if f := v.(int); f < 16 || f > 4096 {
			return fmt.Errorf("audio.frames: %d outside of range 16 to 4096", f)
		}
		return nil
	})
	p.AudioRate.SetHookPre(func(v prefs.Value) error {
		if r := v.(int); r < 8000 || r > 192000 {
			return fmt.Errorf("audio.rate: %dHz outside of range 8000 to 192000", r)
		}
		return nil
	})
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Base.Set(int(variant.DefaultBase))
	p.Settle.Set(int(dispatch.DefaultSettle / time.Nanosecond))
	p.MaxHold.Set(int(dispatch.DefaultMaxHold / time.Microsecond))
	p.LevelShifter.Set(isa.LineLevelShifter)
	p.GPIODevice.Set(gpio.DefaultGPIOMem)
	p.SysfsBase.Set(defaultSysfsBase)
	p.PinCores.Set(true)
	p.BusCPU.Set(defaultBusCPU)
	p.AudioCPU.Set(defaultAudioCPU)
	p.BookkeepingCPU.Set(defaultBookkeepingCPU)
	p.AudioSink.Set(defaultSink)
	p.AudioRate.Set(audio.DefaultRate)
	p.AudioFrames.Set(audio.DefaultFrames)
	p.WavFile.Set(defaultWavFile)
	p.PSRAMDevice.Set(Sim)
	p.PSRAMSpeed.Set(psram.DefaultSpeed)
	p.FastRead.Set(false)
	p.ActivityLED.Set(led.DefaultLED)
	p.LogEcho.Set(false)
}

// Path returns the path of the prefs file.
func (p *Preferences) Path() string {
	return p.dsk.Path()
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// IOBase returns the card.base preference as a port number.
func (p *Preferences) IOBase() uint16 {
	return uint16(p.Base.Get().(int))
}

// SettleTime returns the card.settle preference as a duration.
func (p *Preferences) SettleTime() time.Duration {
	return time.Duration(p.Settle.Get().(int)) * time.Nanosecond
}

// MaxHoldTime returns the card.maxhold preference as a duration.
func (p *Preferences) MaxHoldTime() time.Duration {
	return time.Duration(p.MaxHold.Get().(int)) * time.Microsecond
}
