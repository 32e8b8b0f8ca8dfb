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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/debugger"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/test"
)

func TestBreakpoints(t *testing.T) {
	bp := debugger.NewBreakpoints()

	w := memory.NewWideAddress(0x1b, 0x4010, false)
	test.ExpectSuccess(t, bp.Add(memory.NormalBreak, w))
	test.ExpectSuccess(t, bp.Check(w, memory.NormalBreak))
	test.ExpectFailure(t, bp.Check(w, memory.ReadBreak))

	// the same location through a different bank
	test.ExpectSuccess(t, bp.Check(memory.NewWideAddress(0x1b, 0x8010, false), memory.NormalBreak))

	// different page or memory type
	test.ExpectFailure(t, bp.Check(memory.NewWideAddress(0x1a, 0x4010, false), memory.NormalBreak))
	test.ExpectFailure(t, bp.Check(memory.NewWideAddress(0x1b, 0x4010, true), memory.NormalBreak))

	err := bp.Add(memory.NormalBreak, w)
	test.ExpectSuccess(t, curated.Is(err, debugger.BreakpointExists))

	test.ExpectSuccess(t, bp.Add(memory.WriteBreak, w))
	test.ExpectSuccess(t, bp.Check(w, memory.WriteBreak))
	test.ExpectEquality(t, len(bp.List()), 2)

	test.ExpectSuccess(t, bp.Drop(memory.NormalBreak, w))
	test.ExpectFailure(t, bp.Check(w, memory.NormalBreak))
	test.ExpectSuccess(t, bp.Check(w, memory.WriteBreak))

	err = bp.Drop(memory.NormalBreak, w)
	test.ExpectSuccess(t, curated.Is(err, debugger.NoSuchBreakpoint))

	err = bp.Add(memory.NormalBreak|memory.ReadBreak, w)
	test.ExpectSuccess(t, curated.Is(err, debugger.InvalidBreakpoint))

	bp.Clear()
	test.ExpectEquality(t, len(bp.List()), 0)
	test.ExpectFailure(t, bp.Check(w, memory.WriteBreak))
}

func TestBreakpointsList(t *testing.T) {
	bp := debugger.NewBreakpoints()
	test.DemandSuccess(t, bp.Add(memory.ReadBreak, memory.NewWideAddress(0, 0xc000, true)))
	test.DemandSuccess(t, bp.Add(memory.NormalBreak, memory.NewWideAddress(2, 0x4000, false)))
	test.DemandSuccess(t, bp.Add(memory.NormalBreak, memory.NewWideAddress(1, 0x4000, false)))

	l := bp.List()
	test.DemandEquality(t, len(l), 3)
	test.ExpectEquality(t, l[0].Addr.Page, uint8(1))
	test.ExpectEquality(t, l[1].Addr.Page, uint8(2))
	test.ExpectEquality(t, l[2].Kind, memory.ReadBreak)

	s := &strings.Builder{}
	bp.Write(s)
	test.ExpectEquality(t, s.String(), " 0: exec ROM 01:4000\n 1: exec ROM 02:4000\n 2: read RAM 00:c000\n")

	bp.Clear()
	s.Reset()
	bp.Write(s)
	test.ExpectEquality(t, s.String(), "no breakpoints\n")
}

func TestMemoryBreaks(t *testing.T) {
	as, code := memory.NewAddressSpace(model.TI83P)
	test.DemandSuccess(t, code.OK())

	bp := debugger.NewBreakpoints()
	as.SetBreakChecker(bp)

	// RAM page 0 is in bank three after power on
	test.DemandSuccess(t, bp.Add(memory.WriteBreak, memory.NewWideAddress(0, 0xc123, true)))
	test.ExpectSuccess(t, as.CheckMemWriteBreak(0xc123))
	test.ExpectFailure(t, as.CheckMemReadBreak(0xc123))
	test.ExpectFailure(t, as.CheckMemWriteBreak(0xc124))

	test.DemandSuccess(t, bp.Add(memory.NormalBreak, memory.NewWideAddress(0, 0x4100, false)))
	test.ExpectSuccess(t, as.CheckBreak(as.Translate(0x4100)))
}

func TestMemviz(t *testing.T) {
	type node struct {
		Value int
		Next  *node
	}
	n := &node{Value: 1, Next: &node{Value: 2}}

	s := &strings.Builder{}
	debugger.Memviz(s, n)
	test.ExpectSuccess(t, strings.Contains(s.String(), "digraph"))
}
