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
	"testing"
	"unsafe"

	"github.com/pigus/pigus/test"
)

// the transfer struct must match the kernel's layout
func TestTransferLayout(t *testing.T) {
	test.Equate(t, int(unsafe.Sizeof(spiIOCTransfer{})), 32)
	test.Equate(t, int(unsafe.Offsetof(spiIOCTransfer{}.speedHz)), 20)
	test.Equate(t, int(unsafe.Offsetof(spiIOCTransfer{}.bitsPerWord)), 26)

	// _IOW('k', 0, 32)
	test.Equate(t, int(spiIOCMessage1), (1<<30)|(32<<16)|(int('k')<<8))
}
