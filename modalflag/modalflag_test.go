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

package modalflag_test

import (
	"testing"

	"github.com/pigus/pigus/modalflag"
	"github.com/pigus/pigus/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.Equate(t, *testFlag, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "")
	test.Equate(t, *testFlag, true)
	test.Equate(t, len(md.RemainingArgs()), 2)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectedSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("run", "ports", "version")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: RUN, PORTS, VERSION\n" +
		"    default: RUN\n"

	if !tw.Compare(expectedHelp) {
		t.Errorf("unexpected help message:\n%s", tw)
	}
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"psramtest", "-fastread", "4096"})
	md.AddSubModes("RUN", "PSRAMTEST")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "PSRAMTEST")

	md.NewMode()
	fast := md.AddBool("fastread", false, "use fast read")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectedSuccess(t, err)
	test.Equate(t, *fast, true)
	test.Equate(t, md.GetArg(0), "4096")
	test.Equate(t, md.Path(), "PSRAMTEST")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"foo"})
	md.AddSubModes("RUN", "PORTS")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")

	// the unmatched argument is still available to the next mode
	md.NewMode()
	_, _ = md.Parse()
	test.Equate(t, md.GetArg(0), "foo")
}

func TestPortFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-base", "0x220"})
	base := md.AddPort("base", 0x240, "card base")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, *base, 0x220)

	md.NewArgs([]string{"-base", "nope"})
	base = md.AddPort("base", 0x240, "card base")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectedFailure(t, err)
	test.Equate(t, *base, 0x240)
}

func TestVisit(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "-base", "0x220"})
	md.AddPort("base", 0x240, "card base")
	md.AddBool("log", false, "echo log")
	md.AddString("prefs", "", "preferences")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)

	var set []string
	md.Visit(func(flag string) {
		set = append(set, flag)
	})
	test.ExpectEquality(t, len(set), 2)
	test.Equate(t, set[0], "base")
	test.Equate(t, set[1], "log")
}

func TestAdditionalHelp(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("run", "ports")
	md.AdditionalHelp("RUN starts the card")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: RUN, PORTS\n" +
		"    default: RUN\n" +
		"\n" +
		"RUN starts the card\n"

	if !tw.Compare(expectedHelp) {
		t.Errorf("unexpected help message:\n%s", tw)
	}

	// help text does not survive a new mode
	tw.Clear()
	md.NewArgs([]string{"-help"})
	md.NewMode()
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectedSuccess(t, tw.Compare("No help available\n"))
}
