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

// Package clocks defines the CPU clock speeds of the supported calculator
// models and the State type, which counts elapsed T-states.
//
// A T-state is one tick of the CPU clock. The run loop in the hardware
// package asks the State for a deadline, steps the CPU until the deadline is
// reached and then records the overshoot with Settle(). The overshoot is
// subtracted from the next deadline so that pacing error does not accumulate
// across calls.
package clocks

import (
	"time"

	"github.com/jetsetilly/gopher83/hardware/initcode"
	"github.com/jetsetilly/gopher83/hardware/model"
)

// CPU clock frequencies in Hz.
const (
	MHz2   = 2000000
	MHz4_8 = 4800000
	MHz6   = 6000000
)

// Frequency returns the CPU clock frequency for the model.
func Frequency(m model.Model) (int, initcode.Code) {
	switch m {
	case model.TI81:
		return MHz2, 0
	case model.TI85, model.TI86:
		return MHz4_8, 0
	case model.TI82, model.TI83, model.TI73, model.TI83P, model.TI83PSE,
		model.TI84P, model.TI84PSE, model.TI84PCSE:
		return MHz6, 0
	}
	return 0, initcode.Clock
}

// State records the number of T-states elapsed since the machine was
// initialised.
type State struct {
	TStates int64

	// overshoot of the most recent deadline. always in the range of zero to
	// the length of the longest instruction
	TimeError int64

	// frequency of the clock in Hz
	Freq int
}

// NewState is the preferred method of initialisation for the State type.
func NewState(m model.Model) (*State, initcode.Code) {
	f, code := Frequency(m)
	if code != 0 {
		return nil, code
	}
	return &State{Freq: f}, 0
}

// Reset the elapsed time.
func (c *State) Reset() {
	c.TStates = 0
	c.TimeError = 0
}

// Advance the clock by n T-states.
func (c *State) Advance(n int) {
	c.TStates += int64(n)
}

// Deadline returns the T-state count at which a run of the given budget
// should end, accounting for the overshoot of the previous run.
func (c *State) Deadline(budget int64) int64 {
	return c.TStates + budget - c.TimeError
}

// Reached checks whether the deadline has been reached. If it has then the
// overshoot is recorded for use by the next call to Deadline().
func (c *State) Reached(deadline int64) bool {
	if c.TStates >= deadline {
		c.TimeError = c.TStates - deadline
		return true
	}
	return false
}

// Elapsed returns the emulated time in seconds.
func (c *State) Elapsed() float64 {
	if c.Freq == 0 {
		return 0
	}
	return float64(c.TStates) / float64(c.Freq)
}

// Owed returns the number of T-states that correspond to the wall-clock
// duration, at the given speed. Speed is a percentage of the real machine's
// speed.
func (c *State) Owed(d time.Duration, speed int) int64 {
	return int64(d.Seconds() * float64(c.Freq) * float64(speed) / 100)
}
