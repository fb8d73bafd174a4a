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
	"github.com/pigus/pigus/hardware/cores"
	"github.com/pigus/pigus/hardware/dispatch"
	"github.com/pigus/pigus/hardware/isa"
	"github.com/pigus/pigus/hardware/isa/edge"
	"github.com/pigus/pigus/hardware/isa/gpio"
)

// Handler dispatches edge events from a gpio.EdgeSource.
type Handler struct {
	disp   *dispatch.Dispatcher
	signal func(cores.Signal) bool

	// the handler services read cycles and so owns the data bus claim
	reads bool
}

// NewHandler is the preferred method of initialisation for the Handler type.
// The signal function is called with SignalIOW or SignalIOR after a cycle
// begin has been dispatched. It must not block and it can be nil.
//
// The reads argument should be true only if read strobe events are delivered
// to the handler. Otherwise the data bus claim belongs to a poller and the
// handler never expires it.
func NewHandler(disp *dispatch.Dispatcher, signal func(cores.Signal) bool, reads bool) *Handler {
	return &Handler{
		disp:   disp,
		signal: signal,
		reads:  reads,
	}
}

// Handle an edge event. The sample in the event is the one taken when the
// event was handled.
func (h *Handler) Handle(ev gpio.Event) {
	if h.reads {
		h.disp.Expire()
	}

	e := edge.Passthrough(ev.Line, ev.Falling)
	if e == edge.None {
		return
	}

	h.disp.Dispatch(e, isa.Decode(ev.Sample, h.disp.BasePort()))

	if h.signal == nil {
		return
	}

	switch e {
	case edge.WriteBegin:
		h.signal(cores.SignalIOW)
	case edge.ReadBegin:
		h.signal(cores.SignalIOR)
	}
}
