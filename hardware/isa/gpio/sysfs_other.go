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

//go:build !linux

package gpio

import (
	"context"
	"fmt"

	"github.com/pigus/pigus/curated"
)

// Sentinal error patterns.
const (
	EdgeError = "gpio: edge: %v"
)

// Sysfs is only available on linux.
type Sysfs struct{}

// NewSysfs is the preferred method of initialisation for the Sysfs type.
func NewSysfs(lines Lines, base int) *Sysfs {
	return &Sysfs{}
}

// Watch always fails on this platform.
func (s *Sysfs) Watch(ctx context.Context, lines []int, handle func(Event)) error {
	return curated.Errorf(EdgeError, fmt.Errorf("not supported on this platform"))
}
