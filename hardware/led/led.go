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

// Package led blinks an LED when the host accesses the card. The LED is
// controlled through the Linux sysfs LED class, for example
// /sys/class/leds/ACT.
//
// The LED implements the notifications.Notify interface. It is lit by
// NotifyActivity and put out by NotifyIdle. The LED's original trigger is
// restored by NotifyShutdown or Close().
package led

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/notifications"
)

// DefaultLED is the activity LED on most Raspberry Pi boards.
const DefaultLED = "/sys/class/leds/ACT"

// LEDError is the pattern for all errors from the package.
const LEDError = "led: %v"

// LED is a sysfs LED.
type LED struct {
	crit sync.Mutex

	path    string
	trigger string
	lit     bool
	closed  bool
}

// NewLED is the preferred method of initialisation for the LED type. The
// LED's trigger is set to none so that it is controlled only by the card.
func NewLED(path string) (*LED, error) {
	l := &LED{
		path: path,
	}

	b, err := os.ReadFile(filepath.Join(path, "trigger"))
	if err != nil {
		return nil, curated.Errorf(LEDError, err)
	}
	l.trigger = selectedTrigger(string(b))

	if err := l.write("trigger", "none"); err != nil {
		return nil, err
	}
	if err := l.write("brightness", "0"); err != nil {
		return nil, err
	}

	return l, nil
}

// selectedTrigger returns the trigger in square brackets. The trigger file
// lists every trigger with the current one bracketed.
func selectedTrigger(s string) string {
	for _, f := range strings.Fields(s) {
		if strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]") {
			return strings.Trim(f, "[]")
		}
	}
	return ""
}

func (l *LED) write(file string, value string) error {
	err := os.WriteFile(filepath.Join(l.path, file), []byte(value), 0o644)
	if err != nil {
		return curated.Errorf(LEDError, err)
	}
	return nil
}

// Set the LED on or off.
func (l *LED) Set(on bool) error {
	l.crit.Lock()
	defer l.crit.Unlock()

	if l.closed || on == l.lit {
		return nil
	}
	l.lit = on

	if on {
		return l.write("brightness", "1")
	}
	return l.write("brightness", "0")
}

// Lit returns true if the LED is on.
func (l *LED) Lit() bool {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.lit
}

// Notify implements the notifications.Notify interface.
func (l *LED) Notify(notice notifications.Notice) error {
	switch notice {
	case notifications.NotifyActivity:
		return l.Set(true)
	case notifications.NotifyIdle:
		return l.Set(false)
	case notifications.NotifyShutdown:
		return l.Close()
	}
	return nil
}

// Close restores the original trigger. The LED is not changed by Set()
// after Close() has been called.
func (l *LED) Close() error {
	l.crit.Lock()
	defer l.crit.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true

	if l.trigger == "" {
		return nil
	}
	return l.write("trigger", l.trigger)
}
