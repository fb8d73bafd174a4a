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

package variant_test

import (
	"testing"

	"github.com/pigus/pigus/hardware/device/variant"
	"github.com/pigus/pigus/test"
)

func TestVariant(t *testing.T) {
	c := variant.New(variant.DefaultBase, nil)
	test.DemandSuccess(t, c.Initialize())

	l := c.Layout()
	test.ExpectedSuccess(t, len(l.Write) > 0)
	test.ExpectedSuccess(t, len(l.Read) > 0)
	test.ExpectedSuccess(t, l.Name != "")
	test.ExpectedSuccess(t, variant.Name == "gus" || variant.Name == "adlib")
}
