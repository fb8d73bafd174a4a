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
)

// Context is passed to every task. It identifies the core the task is
// running on and gives access to the signal channels.
type Context struct {
	core  Core
	sched *Scheduler
	ctx   context.Context
}

// Core returns the core the task is running on.
func (c *Context) Core() Core {
	return c.core
}

// Context returns the context.Context for the task group. It is cancelled
// when any task returns an error.
func (c *Context) Context() context.Context {
	return c.ctx
}

// ShuttingDown returns true once the scheduler has been directed to shut
// down. It is a single atomic load and is suitable for checking on every
// iteration of a busy loop.
func (c *Context) ShuttingDown() bool {
	return c.sched.shuttingDown.Load()
}

// Done returns a channel that is closed when the scheduler is directed to
// shut down.
func (c *Context) Done() <-chan struct{} {
	return c.sched.done
}

// Send a signal to another core. It never blocks. Returns false if the
// signal was dropped.
func (c *Context) Send(to Core, sig Signal) bool {
	return c.sched.Send(c.core, to, sig)
}

// Inbox returns the channel of signals sent to this core from another core.
func (c *Context) Inbox(from Core) <-chan Signal {
	return c.sched.Inbox(from, c.core)
}

// Shutdown directs every task to end.
func (c *Context) Shutdown() {
	c.sched.Shutdown()
}
