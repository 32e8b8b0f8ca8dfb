// This file is part of Gopher83.
//
// Gopher83 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher83 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher83.  If not, see <https://www.gnu.org/licenses/>.

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher83/modalflag"
	"github.com/jetsetilly/gopher83/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "-model", "84p", "dump.bin"})
	log := md.AddBool("log", false, "echo log")
	model := md.AddString("model", "83p", "calculator model")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, *model, "84p")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "dump.bin")
	test.ExpectEquality(t, md.GetArg(1), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"ans", "dump.bin"})
	md.AddSubModes("VAT", "ANS", "SYMBOLS")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "ANS")
	test.ExpectEquality(t, md.GetArg(0), "dump.bin")

	// default mode
	md = modalflag.Modes{}
	md.NewArgs([]string{"dump.bin"})
	md.AddSubModes("VAT", "ANS")

	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "VAT")
	test.ExpectEquality(t, md.GetArg(0), "dump.bin")
}

func TestNestedModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-log", "debug", "-speed", "50", "run"})
	md.AddBool("log", false, "")
	md.AddSubModes("PLAY", "DEBUG")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DEBUG")

	md.NewMode()
	speed := md.AddInt("speed", 100, "")
	md.AddSubModes("STEP", "RUN")

	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *speed, 50)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.Path(), "DEBUG/RUN")
	test.ExpectEquality(t, md.String(), "DEBUG/RUN")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nothing"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	w := &strings.Builder{}
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, w.String(), "No help available\n")
}

func TestHelpFlagsAndModes(t *testing.T) {
	w := &strings.Builder{}
	md := modalflag.Modes{Output: w}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")
	md.AdditionalHelp("more")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expected := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n" +
		"\n" +
		"more\n"
	test.ExpectEquality(t, w.String(), expected)
}
