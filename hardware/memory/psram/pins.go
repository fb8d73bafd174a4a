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
	"path/filepath"
	"slices"

	"github.com/pigus/pigus/curated"
)

// PinConflict is returned by CheckLines().
const PinConflict = "psram: %s uses gpio lines %v which are in use by the card"

// the gpio lines of each SPI controller on the BCM283x/BCM2711 header. the
// chip select lines are indexed by the chip select number of the spidev
// device.
var spiLines = map[int]struct {
	shared []int
	ce     []int
}{
	0: {shared: []int{9, 10, 11}, ce: []int{8, 7}},
	1: {shared: []int{19, 20, 21}, ce: []int{18, 17, 16}},
	3: {shared: []int{1, 2, 3}, ce: []int{0, 24}},
	4: {shared: []int{5, 6, 7}, ce: []int{4, 25}},
	5: {shared: []int{13, 14, 15}, ce: []int{12, 26}},
	6: {shared: []int{19, 20, 21}, ce: []int{18, 27}},
}

// SpidevLines returns the gpio lines used by a spidev device. The second
// value is false if the device name is not of the form /dev/spidevB.C or if
// the bus is not one of the controllers on the header. Controllers that are
// created by an overlay on other pins are not known.
func SpidevLines(device string) ([]int, bool) {
	var bus, cs int
	if n, err := fmt.Sscanf(filepath.Base(device), "spidev%d.%d", &bus, &cs); err != nil || n != 2 {
		return nil, false
	}

	l, ok := spiLines[bus]
	if !ok || cs < 0 || cs >= len(l.ce) {
		return nil, false
	}

	lines := append(slices.Clone(l.shared), l.ce[cs])
	slices.Sort(lines)
	return lines, true
}

// CheckLines returns an error if the spidev device uses any of the lines in
// the used mask. Unknown devices are not an error.
func CheckLines(device string, used uint32) error {
	lines, ok := SpidevLines(device)
	if !ok {
		return nil
	}

	var clash []int
	for _, l := range lines {
		if used&(1<<uint(l)) != 0 {
			clash = append(clash, l)
		}
	}
	if len(clash) > 0 {
		return curated.Errorf(PinConflict, device, clash)
	}

	return nil
}
