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

import "testing"

// outcome reduces v to success or failure. The second value is false if the
// type cannot be judged.
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
func outcome(v any) (success bool, ok bool) {
	switch v := v.(type) {
	case nil:
		return true, true
	case bool:
		return v, true
	case error:
		return v == nil, true
	}
	return false, false
}

// ExpectedFailure fails the test unless v indicates failure. See outcome()
// for the supported types. A nil value is never a failure.
func ExpectedFailure(t *testing.T, v any) bool {
	t.Helper()

	success, ok := outcome(v)
	if !ok {
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}
	if success {
		t.Errorf("expected failure (%T)", v)
		return false
	}
	return true
}

// ExpectedSuccess fails the test unless v indicates success. See outcome()
// for the supported types.
func ExpectedSuccess(t *testing.T, v any) bool {
	t.Helper()

	success, ok := outcome(v)
	if !ok {
		t.Fatalf("unsupported type (%T) for expectation testing", v)
		return false
	}
	if !success {
		if err, isErr := v.(error); isErr {
			t.Errorf("expected success (error: %v)", err)
		} else {
			t.Errorf("expected success (%T)", v)
		}
		return false
	}
	return true
}
