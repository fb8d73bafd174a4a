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
)

// Sampler reads every bus line at once.
type Sampler interface {
	Read() isa.Sample
}

// Poller samples the bus lines and dispatches the edges it finds.
type Poller struct {
	lines Sampler
	disp  *dispatch.Dispatcher
	trk   *edge.Tracker
}

// NewPoller is the preferred method of initialisation for the Poller type.
// Edges outside of the mask are ignored.
func NewPoller(lines Sampler, disp *dispatch.Dispatcher, mask edge.Edges) *Poller {
	return &Poller{
		lines: lines,
		disp:  disp,
		trk:   edge.NewTracker(mask),
	}
}

// Step samples the lines once and dispatches any edges. Returns the edges
// that were dispatched.
func (p *Poller) Step() edge.Edges {
	dec := isa.Decode(p.lines.Read(), p.disp.BasePort())
	e := p.trk.Classify(dec)
	if e != edge.None {
		p.disp.Dispatch(e, dec)
	}
	p.disp.Expire()
	return e
}

// Run calls Step() until the scheduler shuts down. Run never blocks and
// should be the only task on its core. The data bus is always released
// when Run returns.
func (p *Poller) Run(ctx *cores.Context) error {
	defer p.disp.Release()
	p.trk.Reset()
	for !ctx.ShuttingDown() {
		p.Step()
	}
	return nil
}
