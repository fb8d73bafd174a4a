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

//go:build windows

package keywatch

import (
	"context"

	"github.com/pigus/pigus/curated"
)

// Sentinel error patterns.
const (
	NotTerminal   = "keywatch: not a terminal"
	TerminalError = "keywatch: %v"
)

// DefaultTTY is the controlling terminal.
const DefaultTTY = ""

// Watch is not supported on this platform.
func Watch(ctx context.Context, tty string, handle func(key byte)) error {
	return curated.Errorf(NotTerminal)
}
