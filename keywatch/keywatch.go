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

//go:build !windows

package keywatch

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/pigus/pigus/curated"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// Sentinel error patterns.
const (
	NotTerminal   = "keywatch: not a terminal"
	TerminalError = "keywatch: %v"
)

// DefaultTTY is the controlling terminal.
const DefaultTTY = "/dev/tty"

// the read timeout so that the context is checked regularly
const readTimeout = 100 * time.Millisecond

// Watch the terminal for key presses. The handle function is called with
// every byte read from the terminal. Watch blocks until the context is done.
func Watch(ctx context.Context, tty string, handle func(key byte)) error {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return curated.Errorf(NotTerminal)
	}

	t, err := term.Open(tty, term.CBreakMode, term.ReadTimeout(readTimeout))
	if err != nil {
		return curated.Errorf(TerminalError, err)
	}
	defer func() {
		_ = t.Restore()
		_ = t.Close()
	}()

	b := make([]byte, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := t.Read(b)
		if err != nil && !errors.Is(err, io.EOF) {
			return curated.Errorf(TerminalError, err)
		}
		if n > 0 {
			handle(b[0])
		}
	}
}
