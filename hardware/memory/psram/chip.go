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

package psram

import (
	"fmt"
	"sync"
)

// Chip is a simulated PSRAM. It implements the Link interface.
type Chip struct {
	crit sync.Mutex

	mem []byte

	resetEnabled bool

	// number of completed reset sequences
	resets int

	// every frame sent to the chip
	frames [][]byte
}

// NewChip is the preferred method of initialisation for the Chip type.
func NewChip(size uint32) *Chip {
	return &Chip{
		mem: make([]byte, size),
	}
}

// Frames returns a copy of every frame sent to the chip.
func (c *Chip) Frames() [][]byte {
	c.crit.Lock()
	defer c.crit.Unlock()
	f := make([][]byte, len(c.frames))
	copy(f, c.frames)
	return f
}

// Resets returns the number of completed reset sequences.
func (c *Chip) Resets() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.resets
}

// Transfer implements the Link interface.
func (c *Chip) Transfer(tx []byte, rx []byte) error {
	c.crit.Lock()
	defer c.crit.Unlock()

	if len(tx) == 0 {
		return fmt.Errorf("empty frame")
	}
	if len(rx) != len(tx) {
		return fmt.Errorf("rx length (%d) not equal to tx length (%d)", len(rx), len(tx))
	}

	frame := make([]byte, len(tx))
	copy(frame, tx)
	c.frames = append(c.frames, frame)

	clear(rx)

	cmd := tx[0]

	// reset must immediately follow reset enable
	enabled := c.resetEnabled
	c.resetEnabled = false

	switch cmd {
	case cmdResetEnable:
		c.resetEnabled = true
		return nil
	case cmdReset:
		if enabled {
			c.resets++
		}
		return nil
	}

	if len(tx) < 4 {
		return fmt.Errorf("short frame for command %#02x", cmd)
	}
	addr := uint32(tx[1])<<16 | uint32(tx[2])<<8 | uint32(tx[3])

	switch cmd {
	case cmdWrite:
		for i, b := range tx[4:] {
			c.mem[(addr+uint32(i))%uint32(len(c.mem))] = b
		}
	case cmdRead, cmdFastRead:
		n := 4
		if cmd == cmdFastRead {
			n = 5
		}
		for i := n; i < len(rx); i++ {
			rx[i] = c.mem[(addr+uint32(i-n))%uint32(len(c.mem))]
		}
	default:
		return fmt.Errorf("unknown command %#02x", cmd)
	}

	return nil
}
