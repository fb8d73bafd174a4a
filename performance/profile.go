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

// Package performance contains helpers for measuring the PiGUS process. The
// Profile() function wraps a run of the card with the profiler requested on
// the command line.
package performance

import (
	"strings"

	"github.com/pigus/pigus/curated"
	"github.com/pkg/profile"
)

// Sentinal error patterns.
const (
	UnknownProfile = "performance: unknown profile type (%s)"
)

// ProfileTypes lists the values accepted by Profile().
var ProfileTypes = []string{"none", "cpu", "mem", "block", "mutex", "trace"}

// Profile runs the supplied function with the named profile running. The
// profile is written to path when the function returns.
func Profile(mode string, path string, run func() error) error {
	var opt func(*profile.Profile)

	switch strings.ToLower(mode) {
	case "", "none":
		return run()
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "block":
		opt = profile.BlockProfile
	case "mutex":
		opt = profile.MutexProfile
	case "trace":
		opt = profile.TraceProfile
	default:
		return curated.Errorf(UnknownProfile, mode)
	}

	defer profile.Start(opt, profile.ProfilePath(path), profile.Quiet, profile.NoShutdownHook).Stop()

	return run()
}
