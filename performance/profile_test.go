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

package performance_test

import (
	"testing"

	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/performance"
	"github.com/pigus/pigus/test"
)

func TestProfileNone(t *testing.T) {
	var ran bool
	err := performance.Profile("none", t.TempDir(), func() error {
		ran = true
		return nil
	})
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, ran)
}

func TestProfileUnknown(t *testing.T) {
	err := performance.Profile("foo", t.TempDir(), func() error {
		return nil
	})
	test.ExpectedSuccess(t, curated.Is(err, performance.UnknownProfile))
}
