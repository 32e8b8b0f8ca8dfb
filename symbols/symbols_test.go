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

package symbols_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/symbols"
	"github.com/jetsetilly/gopher83/test"
)

func TestOSLabels(t *testing.T) {
	l := symbols.NewLabels()
	test.ExpectEquality(t, l.Len(), 20)
	test.ExpectEquality(t, l.MaxWidth(), len("appBackUpScreen"))

	n, ok := l.FindAddressLabel(memory.NewWideAddress(1, 0x8478, true))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, "OP1")

	// the same physical location seen through a different bank
	n, ok = l.FindAddressLabel(memory.NewWideAddress(1, 0xc478, true))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, "OP1")

	// same offset in a different page or in flash
	_, ok = l.FindAddressLabel(memory.NewWideAddress(0, 0x8478, true))
	test.ExpectFailure(t, ok)
	_, ok = l.FindAddressLabel(memory.NewWideAddress(1, 0x8478, false))
	test.ExpectFailure(t, ok)

	n, ok = l.FindAddressLabel(memory.NewWideAddress(0, 0xfe66, true))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, "symTable")

	test.ExpectSuccess(t, strings.Contains(l.String(), "RAM 01:8478 -> OP1\n"))
}

func TestSearch(t *testing.T) {
	l := symbols.NewLabels()

	r := l.Search("op2")
	if r == nil {
		t.Fatal("expected search result")
	}
	test.ExpectEquality(t, r.Symbol, "OP2")
	test.ExpectEquality(t, r.Address, memory.NewWideAddress(1, 0x8483, true))

	test.ExpectEquality(t, l.Search("nothing"), nil)
}

func TestRead(t *testing.T) {
	l := symbols.NewLabels()

	lab := `start = $4000
loop = 4010h
 bad line
main=0x4100
spaced name = $1
OP1 = $8478
`
	test.DemandSuccess(t, l.Read(strings.NewReader(lab), 0x1b, false))
	test.ExpectEquality(t, l.Len(), 24)

	n, ok := l.FindAddressLabel(memory.NewWideAddress(0x1b, 0x4010, false))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, "loop")

	n, ok = l.FindAddressLabel(memory.NewWideAddress(0x1b, 0x8100, false))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, "main")

	// a label added without preference does not replace an existing label
	test.ExpectSuccess(t, l.Add("other", memory.NewWideAddress(0x1b, 0x4000, false), false))
	n, _ = l.FindAddressLabel(memory.NewWideAddress(0x1b, 0x4000, false))
	test.ExpectEquality(t, n, "start")

	test.ExpectSuccess(t, l.Add("other", memory.NewWideAddress(0x1b, 0x4000, false), true))
	n, _ = l.FindAddressLabel(memory.NewWideAddress(0x1b, 0x4000, false))
	test.ExpectEquality(t, n, "other")

	l.Void()
	test.ExpectEquality(t, l.Len(), 0)
	_, ok = l.FindAddressLabel(memory.NewWideAddress(1, 0x8478, true))
	test.ExpectFailure(t, ok)
}

func TestReadFileMissing(t *testing.T) {
	l := symbols.NewLabels()
	err := l.ReadFile(filepath.Join(t.TempDir(), "missing.lab"), 0, false)
	test.ExpectSuccess(t, curated.Is(err, symbols.FileError))
}
