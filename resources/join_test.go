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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pigus/pigus/resources"
	"github.com/pigus/pigus/test"
)

func TestJoinPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	p, err := resources.JoinPath("captures", "out.wav")
	test.DemandSuccess(t, err)
	test.Equate(t, p, filepath.Join(".pigus", "captures", "out.wav"))

	// directory has been created but the file has not
	_, err = os.Stat(filepath.Dir(p))
	test.ExpectedSuccess(t, err)
	_, err = os.Stat(p)
	test.ExpectedSuccess(t, os.IsNotExist(err))

	// base path is not prepended twice
	q, err := resources.JoinPath(p)
	test.DemandSuccess(t, err)
	test.Equate(t, q, p)
}
