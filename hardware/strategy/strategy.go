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

// Strategy is the way bus cycles are detected.
type Strategy int

// List of valid Strategy values.
const (
	Interrupt Strategy = iota
	Polling
	Hybrid
)

func (s Strategy) String() string {
	switch s {
	case Interrupt:
		return "interrupt"
	case Polling:
		return "polling"
	case Hybrid:
		return "hybrid"
	}
	return "unknown"
}
