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

package strategy

import (
	"context"
	"fmt"

	"github.com/pigus/pigus/hardware/cores"
	"github.com/pigus/pigus/hardware/dispatch"
	"github.com/pigus/pigus/hardware/isa"
	"github.com/pigus/pigus/hardware/isa/edge"
	"github.com/pigus/pigus/hardware/isa/gpio"
)

// Wiring is the result of Wire().
type Wiring struct {
	Strategy Strategy

	// the task for the bus core. nil if the strategy has no polling loop
	Bus cores.Task

	// the edge watcher. it blocks until the context is done. nil if the
	// strategy takes no edge events
	Watch func(ctx context.Context) error

	// the lines the edge watcher is watching
	Lines []int
}

func (w Wiring) String() string {
	return fmt.Sprintf("%s (polling %v, watching %v)", w.Strategy, w.Bus != nil, w.Lines)
}

// Wire creates the tasks for a strategy. Edge handlers post SignalIOW and
// SignalIOR from the bus core to the bookkeeping core through the scheduler.
func Wire(s Strategy, lines gpio.Lines, src gpio.EdgeSource, disp *dispatch.Dispatcher, sched *cores.Scheduler) (Wiring, error) {
	w := Wiring{Strategy: s}

	var mask edge.Edges

	switch s {
	case Polling:
		mask = edge.All
	case Hybrid:
		mask = edge.Read
		w.Lines = []int{isa.LineIOW}

		// writes arrive on the edge watcher and reads on the bus core
		disp.SetShared(true)
	case Interrupt:
		w.Lines = []int{isa.LineIOW, isa.LineIOR}
	default:
		return w, fmt.Errorf("strategy: unknown strategy (%d)", s)
	}

	if mask != edge.None {
		p := NewPoller(lines, disp, mask)
		w.Bus = p.Run
	}

	if len(w.Lines) > 0 {
		if src == nil {
			return w, fmt.Errorf("strategy: %s needs an edge source", s)
		}

		signal := func(sig cores.Signal) bool {
			return sched.Send(cores.BusIOCore, cores.BookkeepingCore, sig)
		}
		reads := s == Interrupt
		h := NewHandler(disp, signal, reads)

		w.Watch = func(ctx context.Context) error {
			if reads {
				defer disp.Release()
			}
			return src.Watch(ctx, w.Lines, h.Handle)
		}
	}

	return w, nil
}
