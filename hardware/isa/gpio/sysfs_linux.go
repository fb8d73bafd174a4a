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

package gpio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pigus/pigus/curated"
	"golang.org/x/sys/unix"
)

// Sentinal error patterns.
const (
	EdgeError = "gpio: edge: %v"
)

const sysfsRoot = "/sys/class/gpio"

// how long to wait for udev to set permissions on newly exported lines
const exportSettle = 100 * time.Millisecond

// poll timeout so that the context is checked regularly
const pollTimeout = 50

// Sysfs implements the EdgeSource interface with the kernel's sysfs GPIO edge
// detection.
type Sysfs struct {
	lines Lines

	// number of the first line of the GPIO chip in the sysfs numbering
	base int

	root string
}

// NewSysfs is the preferred method of initialisation for the Sysfs type. The
// lines argument is used to sample the bus when an edge is reported.
func NewSysfs(lines Lines, base int) *Sysfs {
	return &Sysfs{
		lines: lines,
		base:  base,
		root:  sysfsRoot,
	}
}

func (s *Sysfs) path(line int, file string) string {
	return filepath.Join(s.root, fmt.Sprintf("gpio%d", s.base+line), file)
}

func (s *Sysfs) export(line int) error {
	if _, err := os.Stat(s.path(line, "value")); err == nil {
		return nil
	}
	if err := os.WriteFile(filepath.Join(s.root, "export"), []byte(fmt.Sprintf("%d", s.base+line)), 0o200); err != nil {
		return err
	}
	time.Sleep(exportSettle)
	return nil
}

func (s *Sysfs) unexport(line int) {
	_ = os.WriteFile(filepath.Join(s.root, "unexport"), []byte(fmt.Sprintf("%d", s.base+line)), 0o200)
}

// Watch implements the EdgeSource interface.
func (s *Sysfs) Watch(ctx context.Context, lines []int, handle func(Event)) error {
	fds := make([]unix.PollFd, 0, len(lines))
	files := make([]*os.File, 0, len(lines))

	defer func() {
		for _, f := range files {
			f.Close()
		}
		for _, l := range lines {
			s.unexport(l)
		}
	}()

	for _, l := range lines {
		if err := s.export(l); err != nil {
			return curated.Errorf(EdgeError, err)
		}
		if err := os.WriteFile(s.path(l, "direction"), []byte("in"), 0o200); err != nil {
			return curated.Errorf(EdgeError, err)
		}
		if err := os.WriteFile(s.path(l, "edge"), []byte("both"), 0o200); err != nil {
			return curated.Errorf(EdgeError, err)
		}
		f, err := os.Open(s.path(l, "value"))
		if err != nil {
			return curated.Errorf(EdgeError, err)
		}
		files = append(files, f)
		fds = append(fds, unix.PollFd{Fd: int32(f.Fd()), Events: unix.POLLPRI | unix.POLLERR})

		// the first read clears the pending event
		var b [2]byte
		_, _ = unix.Pread(int(f.Fd()), b[:], 0)
	}

	var b [2]byte
	for {
		if ctx.Err() != nil {
			return nil
		}

		n, err := unix.Poll(fds, pollTimeout)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return curated.Errorf(EdgeError, err)
		}
		if n == 0 {
			continue
		}

		// the sample is taken before the value files are read so that it is
		// as close to the edge as possible
		sample := s.lines.Read()

		for i := range fds {
			if fds[i].Revents&(unix.POLLPRI|unix.POLLERR) == 0 {
				continue
			}
			if _, err := unix.Pread(int(fds[i].Fd), b[:], 0); err != nil {
				return curated.Errorf(EdgeError, err)
			}
			handle(Event{
				Line:    lines[i],
				Falling: b[0] == '0',
				Sample:  sample,
			})
		}
	}
}
