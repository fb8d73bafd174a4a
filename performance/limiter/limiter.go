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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate. It is used to pace audio sinks that have no natural back pressure of
// their own (the WAV capture and null sinks for example).
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(44100 / 256)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		writeBatch()
//	}
package limiter

import (
	"sync"
	"time"
)

// Limiter will trigger at a fixed number of times per second.
type Limiter struct {
	crit     sync.Mutex
	interval time.Duration

	tick chan bool
	quit chan bool
	once sync.Once
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A rate of zero or less means that Wait() never blocks.
func NewLimiter(rate int) *Limiter {
	lim := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.SetLimit(rate)

	go lim.run()

	return lim
}

func (lim *Limiter) run() {
	t := time.Now()
	adjusted := lim.getInterval()

	for {
		select {
		case lim.tick <- true:
		case <-lim.quit:
			return
		}

		interval := lim.getInterval()
		if interval == 0 {
			t = time.Now()
			continue
		}

		if adjusted <= 0 {
			adjusted = interval
		}
		time.Sleep(adjusted)

		// correct for oversleeping on the next tick
		nt := time.Now()
		adjusted -= nt.Sub(t) - interval
		t = nt
	}
}

func (lim *Limiter) getInterval() time.Duration {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.interval
}

// SetLimit changes the rate at which the limiter triggers.
func (lim *Limiter) SetLimit(rate int) {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	if rate <= 0 {
		lim.interval = 0
		return
	}
	lim.interval = time.Second / time.Duration(rate)
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	select {
	case <-lim.tick:
	case <-lim.quit:
	}
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() will never block after Stop() has been called.
func (lim *Limiter) Stop() {
	lim.once.Do(func() {
		close(lim.quit)
	})
}
