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

package hardware

import (
	"github.com/jetsetilly/gopher83/debugger/govern"
	"github.com/jetsetilly/gopher83/hardware/events"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/logger"
)

// RunRequest specifies when a call to RunFor() should stop. Conditions are
// combined. The first condition to be met ends the run.
type RunRequest struct {
	// number of T-states to run for. the overshoot of the previous run is
	// subtracted. zero means no limit
	TStates int64

	// stop before executing the instruction at this address
	StopAt *memory.WideAddress

	// stop after executing a return instruction
	StopOnReturn bool

	// stop after this number of instructions. zero means no limit. a run with
	// a step limit continues even if the Calc is not in a running state
	MaxSteps int
}

// RunFor runs the CPU until one of the conditions in the request is met, a
// breakpoint is hit or the run state is changed by a callback.
//
// The first instruction is always executed before any condition is tested.
// This means that resuming from a breakpoint does not immediately hit the
// same breakpoint.
func (c *Calc) RunFor(req RunRequest) error {
	if !c.loaded {
		return errorNotLoaded()
	}

	deadline := c.Clock.Deadline(req.TStates)

	c.step()
	steps := 1
	if c.finished(req, deadline, steps) {
		return nil
	}

	for c.state.IsRunning() || req.MaxSteps > 0 {
		w := c.Mem.Translate(c.CPU.PC())

		if req.StopAt != nil && w == *req.StopAt {
			return nil
		}

		if c.Mem.CheckBreak(w) {
			c.breakpoint(w)
			return nil
		}

		c.step()
		steps++

		if c.finished(req, deadline, steps) {
			return nil
		}
	}

	return nil
}

// RunTStates runs for a number of T-states. The overshoot of the run is
// carried into the next run.
func (c *Calc) RunTStates(n int64) error {
	return c.RunFor(RunRequest{TStates: n})
}

// RunToAddress runs until the CPU is about to execute the instruction at the
// address.
func (c *Calc) RunToAddress(w memory.WideAddress) error {
	return c.RunFor(RunRequest{StopAt: &w})
}

// RunToReturn runs until the CPU executes a return instruction.
func (c *Calc) RunToReturn() error {
	return c.RunFor(RunRequest{StopOnReturn: true})
}

// RunSteps executes a number of instructions.
func (c *Calc) RunSteps(n int) error {
	if n <= 0 {
		return nil
	}
	return c.RunFor(RunRequest{MaxSteps: n})
}

func (c *Calc) finished(req RunRequest, deadline int64, steps int) bool {
	if req.TStates > 0 && c.Clock.Reached(deadline) {
		return true
	}
	if req.StopOnReturn && c.LastStep.Returned {
		return true
	}
	if req.MaxSteps > 0 && steps >= req.MaxSteps {
		return true
	}
	return false
}

func (c *Calc) step() {
	c.LastStep = c.CPU.Step()
	c.Clock.Advance(c.LastStep.TStates)
	c.postStep()
}

// fire a video frame event once per frame period of emulated time. the frame
// marker is advanced by exactly one period so that a late frame is followed
// by an early one
func (c *Calc) postStep() {
	if c.LCD == nil {
		return
	}
	period := c.cfg.framePeriod()
	if c.Clock.Elapsed()-c.LCD.LastFrame() >= period {
		c.Events.Notify(events.VideoFrame, c)
		c.LCD.SetLastFrame(c.LCD.LastFrame() + period)
	}
}

func (c *Calc) breakpoint(w memory.WideAddress) {
	c.state = govern.HaltedAtBreakpoint
	logger.Logf(logger.Allow, "hardware", "breakpoint at %s", w)
	c.Events.Notify(events.Breakpoint, c)
	if c.cfg.OnBreakpoint != nil {
		c.cfg.OnBreakpoint(c)
	}
}
