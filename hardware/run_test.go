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
	"math/rand"
	"testing"

	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/debugger/govern"
	"github.com/jetsetilly/gopher83/hardware"
	"github.com/jetsetilly/gopher83/hardware/events"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/test"
)

var noAutoTurnOn = hardware.Config{FrameRate: 30}

func TestNotLoaded(t *testing.T) {
	c := hardware.NewCalc(noAutoTurnOn)
	err := c.RunTStates(100)
	test.ExpectSuccess(t, curated.Is(err, hardware.NotLoaded))
	err = c.TurnOn()
	test.ExpectSuccess(t, curated.Is(err, hardware.NotLoaded))
	err = c.Reset()
	test.ExpectSuccess(t, curated.Is(err, hardware.NotLoaded))
}

// the overshoot of a run is carried into the next run so the clock never
// drifts from the sum of the requested budgets by more than one instruction
func TestRunTStatesTimeError(t *testing.T) {
	const maxCycles = 23

	f := &fakeCPU{
		pc: 0x4000,
		cycles: func(pc uint16) int {
			return 4 + int(pc%20)
		},
	}
	c := newTestCalc(t, noAutoTurnOn, model.TI83P, f)

	var total int64
	for _i := 0; _i < 50; _i++ {
		n := int64(100 + rand.Intn(5000))
		total += n

		prior := c.Clock.TimeError
		before := c.Clock.TStates

		test.DemandSuccess(t, c.RunTStates(n))

		test.ExpectSuccess(t, c.Clock.TStates-before >= n-prior)
		test.ExpectSuccess(t, c.Clock.TimeError >= 0)
		test.ExpectSuccess(t, c.Clock.TimeError < maxCycles)
	}

	test.ExpectEquality(t, c.Clock.TStates, total+c.Clock.TimeError)
}

func TestBreakpointNotRetriggeredOnResume(t *testing.T) {
	f := &fakeCPU{pc: 0x4000}

	var callbacks int
	cfg := noAutoTurnOn
	cfg.OnBreakpoint = func(*hardware.Calc) {
		callbacks++
	}

	c := newTestCalc(t, cfg, model.TI83P, f)

	var notices int
	_, err := c.Events.Register(events.Breakpoint, func(events.Kind, *hardware.Calc, any) {
		notices++
	}, nil)
	test.DemandSuccess(t, err)

	c.SetBreakpoints(breakpoints{
		memory.NewWideAddress(0, 0x4000, false): true,
		memory.NewWideAddress(0, 0x4001, false): true,
	})

	// the CPU is sitting on a breakpoint. one instruction is executed before
	// the next breakpoint halts the run
	test.DemandSuccess(t, c.RunTStates(1000))
	test.ExpectEquality(t, f.steps, 1)
	test.ExpectEquality(t, c.State(), govern.HaltedAtBreakpoint)
	test.ExpectEquality(t, callbacks, 1)
	test.ExpectEquality(t, notices, 1)

	// resuming executes the instruction at the breakpoint and continues
	c.SetState(govern.Running)
	test.DemandSuccess(t, c.RunTStates(1000))
	test.ExpectEquality(t, c.State(), govern.Running)
	test.ExpectEquality(t, f.steps, 1+250)
	test.ExpectEquality(t, callbacks, 1)
}

func TestRunToAddress(t *testing.T) {
	f := &fakeCPU{pc: 0x4000}
	c := newTestCalc(t, noAutoTurnOn, model.TI83P, f)

	test.DemandSuccess(t, c.RunToAddress(memory.NewWideAddress(0, 0x4010, false)))
	test.ExpectEquality(t, f.pc, uint16(0x4010))
	test.ExpectEquality(t, f.steps, 16)
	test.ExpectEquality(t, c.State(), govern.Running)
}

func TestRunToReturn(t *testing.T) {
	f := &fakeCPU{
		pc:      0x4000,
		returns: map[uint16]bool{0x4005: true},
	}
	c := newTestCalc(t, noAutoTurnOn, model.TI83P, f)

	test.DemandSuccess(t, c.RunToReturn())
	test.ExpectEquality(t, f.steps, 6)
	test.ExpectSuccess(t, c.LastStep.Returned)
}

func TestRunSteps(t *testing.T) {
	f := &fakeCPU{pc: 0x4000}
	c := newTestCalc(t, noAutoTurnOn, model.TI83P, f)

	// step counts are honoured even when the calculator is stopped
	c.SetState(govern.Stopped)
	test.DemandSuccess(t, c.RunSteps(3))
	test.ExpectEquality(t, f.steps, 3)

	// a time budget is not. only the first instruction is executed
	test.DemandSuccess(t, c.RunTStates(1000))
	test.ExpectEquality(t, f.steps, 4)

	// a step count with a breakpoint
	c.SetBreakpoints(breakpoints{
		memory.NewWideAddress(0, 0x4006, false): true,
	})
	test.DemandSuccess(t, c.RunSteps(10))
	test.ExpectEquality(t, f.steps, 6)
	test.ExpectEquality(t, c.State(), govern.HaltedAtBreakpoint)
}

func TestFrameEvents(t *testing.T) {
	f := &fakeCPU{
		pc:     0x4000,
		cycles: func(uint16) int { return 10 },
	}
	c := newTestCalc(t, noAutoTurnOn, model.TI83P, f)

	var frames int
	_, err := c.Events.Register(events.VideoFrame, func(events.Kind, *hardware.Calc, any) {
		frames++
	}, nil)
	test.DemandSuccess(t, err)

	// a frame period at 6MHz and 30fps is 200000 T-states
	test.DemandSuccess(t, c.RunTStates(650000))
	test.ExpectEquality(t, frames, 3)

	// the frame marker advances by whole periods
	test.ExpectApproximate(t, c.LCD.LastFrame(), 0.1, 1e-9)
}

func TestReset(t *testing.T) {
	f := &fakeCPU{pc: 0x4000}
	c := newTestCalc(t, noAutoTurnOn, model.TI83P, f)

	test.DemandSuccess(t, c.RunSteps(10))
	test.DemandSuccess(t, c.Mem.ChangePage(1, 3, false))

	test.DemandSuccess(t, c.Reset())
	test.ExpectEquality(t, f.pc, uint16(0))
	test.ExpectEquality(t, c.Clock.TStates, int64(0))
	test.ExpectEquality(t, c.Mem.Bank(1).Page, uint8(0))
}
