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

// Package prefs facilitates the storage of preferential values in the PiGUS
// system. It is a fairly generic system and could be used elsewhere.
//
// Preference values are stored in types that implement a minimal interface
// of Set(), Get(), Reset() and String(). The Bool, String and Int
// types store their value in an atomic.Value and can be read from any core
// without locking. Hooks can be registered to run just before and just after
// a value is set.
//
// A Disk type associates preference values with keys in a prefs file. The
// file is shared between all users of the prefs package and is a simple
// list of key/value lines:
//
//	card.base :: 576
//	audio.sink :: oto
//
// Values can also be supplied from the command line with the
// PushCommandLineStack() function. Values on the stack take priority over
// values in the prefs file and are consumed the first time they are used.
package prefs
