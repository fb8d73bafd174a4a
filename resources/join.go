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

package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// JoinPath returns path inside the PiGUS resource directory. The directories
// leading to the final element are created; the final element is not.
//
// A path that already starts with the resource directory is not prefixed a
// second time.
func JoinPath(path ...string) (string, error) {
	base, err := resourcePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(path...)
	if p != base && !strings.HasPrefix(p, base+string(filepath.Separator)) {
		p = filepath.Join(base, p)
	}

	err = os.MkdirAll(filepath.Dir(p), 0o700)
	if err != nil {
		return "", err
	}

	return p, nil
}
