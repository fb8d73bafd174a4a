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
	"os"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"
	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/hardware/cores"
	"github.com/pigus/pigus/hardware/device"
	"github.com/pigus/pigus/keywatch"
	"github.com/pigus/pigus/logger"
	"github.com/pigus/pigus/notifications"
)

// how often the bookkeeping core checks for bus activity and flushes the
// sample memory
const activityInterval = 50 * time.Millisecond

// how often statistics are logged
const statsInterval = 10 * time.Second

// bookkeeping is the task for the bookkeeping core.
func (c *Card) bookkeeping(ctx *cores.Context) error {
	wctx, cancel := context.WithCancel(ctx.Context())
	defer cancel()

	// the edge watcher runs alongside the bookkeeping loop
	var watchErr chan error
	if c.Wiring.Watch != nil {
		watchErr = make(chan error, 1)
		go func() {
			watchErr <- c.Wiring.Watch(wctx)
		}()
	}

	// the terminal must be restored before the task returns
	var keysDone chan struct{}
	if c.opts.Keyboard {
		keysDone = make(chan struct{})
		go func() {
			defer close(keysDone)
			err := keywatch.Watch(wctx, keywatch.DefaultTTY, func(key byte) {
				if key == 'q' || key == 'Q' {
					logger.Log(c.env, logTag, "quit key pressed")
					ctx.Shutdown()
				}
			})
			if err != nil && !curated.Is(err, keywatch.NotTerminal) {
				logger.Logf(c.env, logTag, "%v", err)
			}
		}()
	}

	var prefsEvent chan *fsnotify.FileEvent
	var prefsError chan error

	fsw, err := c.watchPrefs()
	if err != nil {
		logger.Logf(c.env, logTag, "preferences will not be reloaded: %v", err)
	} else {
		defer fsw.Close()
		prefsEvent = fsw.Event
		prefsError = fsw.Error
	}

	var failed error

	activity := time.NewTicker(activityInterval)
	defer activity.Stop()

	stats := time.NewTicker(statsInterval)
	defer stats.Stop()

	for {
		select {
		case <-ctx.Done():
			c.flush()
			c.notice(notifications.NotifyShutdown)
			cancel()
			if watchErr != nil {
				if err := <-watchErr; err != nil {
					logger.Logf(c.env, logTag, "%v", err)
				}
			}
			if keysDone != nil {
				<-keysDone
			}
			return failed

		case err := <-watchErr:
			// the edge watcher should only end when the card stops
			watchErr = nil
			if err != nil {
				failed = err
				ctx.Shutdown()
			}

		case sig := <-ctx.Inbox(cores.BusIOCore):
			switch sig {
			case cores.SignalIOW:
				c.signalledWrites.Add(1)
			case cores.SignalIOR:
				c.signalledReads.Add(1)
			case cores.SignalStats:
				c.logStats()
			case cores.SignalShutdown:
				ctx.Shutdown()
			}

		case sig := <-ctx.Inbox(cores.AudioCore):
			if sig == cores.SignalStats {
				c.logStats()
			}

		case <-activity.C:
			c.flush()
			a := c.Dispatcher.Activity()
			if a != c.activity {
				c.activity = a
				c.notice(notifications.NotifyActivity)
			} else {
				c.notice(notifications.NotifyIdle)
			}

		case <-stats.C:
			c.logStats()

		case ev := <-prefsEvent:
			if ev != nil && filepath.Clean(ev.Name) == filepath.Clean(c.env.Prefs.Path()) {
				c.reloadPrefs()
			}

		case err := <-prefsError:
			logger.Logf(c.env, logTag, "preferences watcher: %v", err)
		}
	}
}

// watchPrefs watches the directory containing the prefs file. The file can
// be replaced rather than written to by an editor.
func (c *Card) watchPrefs() (*fsnotify.Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Watch(filepath.Dir(c.env.Prefs.Path())); err != nil {
		fsw.Close()
		return nil, err
	}

	return fsw, nil
}

// reloadPrefs loads the prefs file and applies the preferences that can be
// changed while the card is running.
func (c *Card) reloadPrefs() {
	ledPath := c.env.Prefs.ActivityLED.String()

	if err := c.env.Prefs.Load(); err != nil {
		logger.Logf(c.env, logTag, "preferences not reloaded: %v", err)
		return
	}

	if c.env.Prefs.LogEcho.Get().(bool) {
		logger.SetEcho(logger.EchoWriter(os.Stdout), false)
	} else {
		logger.SetEcho(nil, false)
	}

	if p := c.env.Prefs.ActivityLED.String(); p != ledPath {
		c.openLED(p)
	}

	c.notice(notifications.NotifyPrefsReloaded)
}

// flush queued writes to the remote sample memory.
func (c *Card) flush() {
	f, ok := c.Device.(device.Flusher)
	if !ok {
		return
	}
	if _, err := f.FlushDRAM(); err != nil {
		logger.Logf(c.env, logTag, "%v", err)
	}
}

func (c *Card) notice(n notifications.Notice) {
	if err := c.notify.Notify(n); err != nil {
		logger.Logf(c.env, logTag, "%v", err)
	}
}

func (c *Card) logStats() {
	logger.Logf(c.env, logTag, "bus: %s", c.Dispatcher.Stats())
	logger.Logf(c.env, logTag, "signals: iow=%d ior=%d dropped=%d", c.signalledWrites.Load(), c.signalledReads.Load(),
		c.Scheduler.Dropped(cores.BusIOCore, cores.BookkeepingCore))
	if c.pump != nil {
		logger.Logf(c.env, logTag, "audio: %d batches of %d frames", c.pump.Batches(), c.pump.Frames())
	}
	if d, ok := c.Device.(interface{ DroppedPokes() uint64 }); ok {
		if n := d.DroppedPokes(); n > 0 {
			logger.Logf(c.env, logTag, "sample memory: %d writes dropped", n)
		}
	}
}
