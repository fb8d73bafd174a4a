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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pigus/pigus/curated"
	"github.com/pigus/pigus/prefs"
	"github.com/pigus/pigus/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "pigus_prefs_test")
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("error reading tmp file: %v", err)
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	if expected != string(data) {
		t.Errorf("expected data and data in prefs file do not match\nexpected:\n%s\nin file:\n%s", expected, string(data))
	}
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("test", &v))
	test.ExpectedSuccess(t, dsk.Add("testb", &w))
	test.ExpectedSuccess(t, dsk.Add("testc", &x))

	test.ExpectedSuccess(t, v.Set(true))
	test.ExpectedSuccess(t, w.Set("foo"))
	test.ExpectedSuccess(t, x.Set("TRUE"))
	test.ExpectedFailure(t, x.Set(1.5))

	test.ExpectedSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestb :: false\ntestc :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectedSuccess(t, dsk.Add("audio.sink", &v))
	test.ExpectedSuccess(t, v.Set("wav"))

	v.SetMaxLen(2)
	test.Equate(t, v.String(), "wa")

	test.ExpectedSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "audio.sink :: wa\n")
}

func TestIntAcceptsHex(t *testing.T) {
	var v prefs.Int
	test.ExpectedSuccess(t, v.Set("0x240"))
	test.Equate(t, v.Get().(int), 0x240)
	test.Equate(t, v.String(), "576")
	test.ExpectedFailure(t, v.Set("foo"))
	test.ExpectedSuccess(t, v.Set(uint16(0x220)))
	test.Equate(t, v.Get().(int), 0x220)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int
	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectedSuccess(t, v.Set("1500"))
	test.ExpectEquality(t, post, 1500)

	// pre hook prevents the value from changing
	test.ExpectedFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 1500)
}

func TestLoadPreservesForeignKeys(t *testing.T) {
	fn := tmpPrefFile(t)

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a prefs.Int
	test.ExpectedSuccess(t, dskA.Add("card.base", &a))
	test.ExpectedSuccess(t, a.Set(0x240))
	test.ExpectedSuccess(t, dskA.Save())

	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.Bool
	test.ExpectedSuccess(t, dskB.Add("cores.pin", &b))
	test.ExpectedSuccess(t, b.Set(true))
	test.ExpectedSuccess(t, dskB.Save())

	cmpTmpFile(t, fn, "card.base :: 576\ncores.pin :: true\n")

	// a fresh value for card.base is loaded from the file
	var c prefs.Int
	dskC, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, dskC.Add("card.base", &c))
	test.ExpectedSuccess(t, dskC.Load(false))
	test.Equate(t, c.Get().(int), 0x240)
}

func TestMissingFile(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectedSuccess(t, dsk.Add("audio.rate", &v))

	err = dsk.Load(false)
	test.ExpectedSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// save on first use creates the file
	test.ExpectedSuccess(t, v.Set(44100))
	test.ExpectedSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "audio.rate :: 44100\n")
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.ExpectedFailure(t, dsk.Add("Card Base", &v))
}

func TestCommandLineTakesPriority(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Int
	test.ExpectedSuccess(t, dsk.Add("card.settle", &v))
	test.ExpectedSuccess(t, v.Set(2000))
	test.ExpectedSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("card.settle::1500")
	defer prefs.PopCommandLineStack()

	var w prefs.Int
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	test.ExpectedSuccess(t, dsk.Add("card.settle", &w))
	test.ExpectedSuccess(t, dsk.Load(false))
	test.Equate(t, w.Get().(int), 1500)
}
