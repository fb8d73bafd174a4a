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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments. Flags are declared between the two calls:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PORTS", "VERSION")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		profile := md.AddString("profile", "none", "run with profiling")
//		_, _ = md.Parse()
//		...
//	}
//
// The first sub-mode in the list is the default mode and is selected if the
// first non-flag argument is not a listed sub-mode. Sub-mode matching is case
// insensitive. The series of modes found by successive calls to Parse() is
// returned by Path(), with each mode separated by a slash.
//
// Help is handled automatically with the -help flag. The ParseHelp result
// indicates that help has been printed to the Output writer and that the
// program should not continue.
package modalflag
