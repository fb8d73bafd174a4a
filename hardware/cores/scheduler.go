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

package cores

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/logger"
	"golang.org/x/sync/errgroup"
)

// Sentinel error patterns.
const (
	AlreadyAssigned = "cores: %v core already has a task"
	UnknownCore     = "cores: unknown core (%v)"
	AffinityError   = "cores: affinity: %v"
)

// DefaultQueue is the capacity of each signal channel.
const DefaultQueue = 16

// Task is the function run by a core. It should return when the context is
// done.
type Task func(ctx *Context) error

// Scheduler assigns tasks to cores and runs them.
type Scheduler struct {
	tasks [NumCores]Task

	pin  bool
	cpus [NumCores]int

	// one channel for every ordered pair of cores. indexed by [from][to]
	channels [NumCores][NumCores]chan Signal
	dropped  [NumCores][NumCores]atomic.Uint64

	shuttingDown atomic.Bool
	done         chan struct{}
	once         sync.Once
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The queue argument is the capacity of each signal channel.
func NewScheduler(queue int) *Scheduler {
	if queue < 1 {
		queue = DefaultQueue
	}

	s := &Scheduler{
		done: make(chan struct{}),
	}

	for from := range s.channels {
		for to := range s.channels[from] {
			if from != to {
				s.channels[from][to] = make(chan Signal, queue)
			}
		}
	}

	for i := range s.cpus {
		s.cpus[i] = -1
	}

	return s
}

// Pin the core's task to a CPU when Run() is called. A negative cpu value
// leaves the task unpinned.
func (s *Scheduler) Pin(core Core, cpu int) error {
	if !core.valid() {
		return curated.Errorf(UnknownCore, core)
	}
	s.cpus[core] = cpu
	s.pin = true
	return nil
}

// Assign a task to a core. Each core can have at most one task.
func (s *Scheduler) Assign(core Core, task Task) error {
	if !core.valid() {
		return curated.Errorf(UnknownCore, core)
	}
	if s.tasks[core] != nil {
		return curated.Errorf(AlreadyAssigned, core)
	}
	s.tasks[core] = task
	return nil
}

// Assigned returns true if the core has a task.
func (s *Scheduler) Assigned(core Core) bool {
	return core.valid() && s.tasks[core] != nil
}

// Send a signal from one core to another. Send never blocks. The return
// value is false if the signal was dropped.
func (s *Scheduler) Send(from Core, to Core, sig Signal) bool {
	if !from.valid() || !to.valid() || from == to {
		return false
	}

	select {
	case s.channels[from][to] <- sig:
		return true
	default:
		s.dropped[from][to].Add(1)
		return false
	}
}

// Inbox returns the channel of signals sent from one core to another.
func (s *Scheduler) Inbox(from Core, to Core) <-chan Signal {
	if !from.valid() || !to.valid() {
		return nil
	}
	return s.channels[from][to]
}

// Dropped returns the number of signals from one core to another that were
// dropped because the channel was full.
func (s *Scheduler) Dropped(from Core, to Core) uint64 {
	if !from.valid() || !to.valid() {
		return 0
	}
	return s.dropped[from][to].Load()
}

// Shutdown directs every task to end. Calling Shutdown more than once has no
// additional effect.
func (s *Scheduler) Shutdown() {
	s.once.Do(func() {
		s.shuttingDown.Store(true)
		close(s.done)
	})
}

// ShuttingDown returns true once Shutdown() has been called.
func (s *Scheduler) ShuttingDown() bool {
	return s.shuttingDown.Load()
}

// Done returns a channel that is closed when Shutdown() is called.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// Run every assigned task and wait for them to end. The first task to end
// shuts down the others. The returned error is the first error returned by
// a task.
func (s *Scheduler) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	go func() {
		select {
		case <-ctx.Done():
			s.Shutdown()
		case <-s.done:
		}
	}()

	for c, task := range s.tasks {
		if task == nil {
			continue
		}

		core := Core(c)
		task := task

		g.Go(func() error {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			defer s.Shutdown()

			if s.pin && s.cpus[core] >= 0 {
				if err := setAffinity(s.cpus[core]); err != nil {
					logger.Logf(logger.Allow, "cores", "%v core not pinned: %v", core, curated.Errorf(AffinityError, err))
				} else {
					logger.Logf(logger.Allow, "cores", "%v core pinned to cpu %d", core, s.cpus[core])
				}
			}

			return task(&Context{
				core:  core,
				sched: s,
				ctx:   ctx,
			})
		})
	}

	err := g.Wait()
	s.Shutdown()
	return err
}
