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

package audio

import (
	"sync/atomic"

	"github.com/pigus/pigus/curated"
)

// Default values for the pump.
const (
	DefaultRate   = 44100
	DefaultFrames = 256
)

// Channels is the number of interleaved channels in every batch.
const Channels = 2

// SinkError is returned by Run() when the sink fails.
const SinkError = "audio: sink: %v"

// Source renders sound into a buffer of interleaved left and right samples.
// The length of the buffer is always a multiple of Channels.
type Source interface {
	RenderSound(buffer []int16)
}

// Sink receives batches of samples. Write() can block and the buffer must not
// be retained after Write() returns.
type Sink interface {
	Write(buffer []int16) error
	Close() error
}

// Stopper indicates whether the pump should stop.
type Stopper interface {
	ShuttingDown() bool
}

// Pump moves batches from a Source to a Sink.
type Pump struct {
	src    Source
	sink   Sink
	buffer []int16

	batches atomic.Uint64
}

// NewPump is the preferred method of initialisation for the Pump type. A
// frames value of zero or less means DefaultFrames.
func NewPump(src Source, sink Sink, frames int) *Pump {
	if frames <= 0 {
		frames = DefaultFrames
	}
	return &Pump{
		src:    src,
		sink:   sink,
		buffer: make([]int16, frames*Channels),
	}
}

// Frames returns the number of frames in each batch.
func (p *Pump) Frames() int {
	return len(p.buffer) / Channels
}

// Batches returns the number of batches written to the sink. It is safe to
// call from any goroutine.
func (p *Pump) Batches() uint64 {
	return p.batches.Load()
}

// Step renders and writes one batch.
func (p *Pump) Step() error {
	clear(p.buffer)
	p.src.RenderSound(p.buffer)
	if err := p.sink.Write(p.buffer); err != nil {
		return err
	}
	p.batches.Add(1)
	return nil
}

// Run calls Step() until the Stopper says otherwise. An error from the sink
// ends the pump unless it happens during shut down.
func (p *Pump) Run(stop Stopper) error {
	for !stop.ShuttingDown() {
		if err := p.Step(); err != nil {
			if stop.ShuttingDown() {
				return nil
			}
			return curated.Errorf(SinkError, err)
		}
	}
	return nil
}
