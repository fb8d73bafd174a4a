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

package version_test

import (
	"strings"
	"testing"

	"github.com/pigus/pigus/test"
	"github.com/pigus/pigus/version"
)

func TestVersion(t *testing.T) {
	v, r, release := version.Version()
	test.ExpectedFailure(t, release)
	test.ExpectedSuccess(t, v == "unreleased" || v == "local")
	test.ExpectedSuccess(t, r != "")
	test.ExpectedSuccess(t, strings.HasPrefix(version.String(), version.ApplicationName))
}
