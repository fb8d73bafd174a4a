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

//go:build linux

package cores

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// setAffinity pins the calling thread to the cpu.
func setAffinity(cpu int) error {
	if cpu >= runtime.NumCPU() {
		return fmt.Errorf("cpu %d not available (%d cpus)", cpu, runtime.NumCPU())
	}

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	// pid zero is the calling thread
	return unix.SchedSetaffinity(0, &set)
}
