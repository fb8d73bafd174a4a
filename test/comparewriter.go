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

package test

import (
	"strings"
	"sync"
)

// CompareWriter collects output so it can be compared with an expected
// string. Log echo can arrive from any core so writes are serialised.
type CompareWriter struct {
	crit   sync.Mutex
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return cw.buffer.Write(p)
}

// Clear forgets everything written so far.
func (cw *CompareWriter) Clear() {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	cw.buffer.Reset()
}

// Compare returns true if the collected output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.String() == s
}

// Contains returns true if s appears anywhere in the collected output.
func (cw *CompareWriter) Contains(s string) bool {
	return strings.Contains(cw.String(), s)
}

func (cw *CompareWriter) String() string {
	cw.crit.Lock()
	defer cw.crit.Unlock()
	return cw.buffer.String()
}
