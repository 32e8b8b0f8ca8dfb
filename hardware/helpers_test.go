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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher83/hardware"
	"github.com/jetsetilly/gopher83/hardware/cpu"
	"github.com/jetsetilly/gopher83/hardware/initcode"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/hardware/peripherals"
	"github.com/jetsetilly/gopher83/test"
)

// fakeCPU executes one byte instructions that do nothing but advance the
// program counter.
type fakeCPU struct {
	mem      cpu.Memory
	pc       uint16
	steps    int
	halted   bool
	returns  map[uint16]bool
	cycles   func(pc uint16) int
	onStep   func(f *fakeCPU)
	initCode initcode.Code
}

func (f *fakeCPU) Step() cpu.StepResult {
	f.steps++
	pc := f.pc

	if f.onStep != nil {
		f.onStep(f)
	}
	if !f.halted {
		f.pc++
	}

	t := 4
	if f.cycles != nil {
		t = f.cycles(pc)
	}

	return cpu.StepResult{
		TStates:  t,
		PC:       f.pc,
		Returned: f.returns[pc],
		Halted:   f.halted,
	}
}

func (f *fakeCPU) PC() uint16 {
	return f.pc
}

func (f *fakeCPU) Reset() {
	f.pc = 0
	f.halted = false
}

func (f *fakeCPU) Init() initcode.Code {
	return f.initCode
}

func (f *fakeCPU) factory() cpu.Factory {
	return func(mem cpu.Memory) cpu.Stepper {
		f.mem = mem
		return f
	}
}

// countingKeypad records the number of key presses and releases.
type countingKeypad struct {
	peripherals.Matrix
	presses  int
	releases int
}

func (k *countingKeypad) Press(group uint8, bit uint8) {
	k.presses++
	k.Matrix.Press(group, bit)
}

func (k *countingKeypad) Release(group uint8, bit uint8) {
	k.releases++
	k.Matrix.Release(group, bit)
}

// breakpoints is a simple implementation of memory.BreakChecker.
type breakpoints map[memory.WideAddress]bool

func (b breakpoints) Check(w memory.WideAddress, kind memory.BreakKind) bool {
	return kind == memory.NormalBreak && b[w]
}

type testCalc struct {
	*hardware.Calc
	cpu    *fakeCPU
	panel  *peripherals.Panel
	keypad *countingKeypad
}

func newTestCalc(t *testing.T, cfg hardware.Config, m model.Model, f *fakeCPU) testCalc {
	t.Helper()

	tc := testCalc{
		Calc:   hardware.NewCalc(cfg),
		cpu:    f,
		panel:  &peripherals.Panel{},
		keypad: &countingKeypad{},
	}

	err := tc.Load(m, nil, f.factory(), peripherals.Devices{
		LCD:    tc.panel,
		Keypad: tc.keypad,
	})
	test.DemandSuccess(t, err)

	return tc
}
