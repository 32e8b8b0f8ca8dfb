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
	"sync"

	"github.com/jetsetilly/gopher83/debugger/govern"
	"github.com/jetsetilly/gopher83/hardware/clocks"
	"github.com/jetsetilly/gopher83/hardware/cpu"
	"github.com/jetsetilly/gopher83/hardware/events"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/hardware/peripherals"
)

// Sentinal errors.
const (
	InitError   = "hardware: init: %v"
	NotLoaded   = "hardware: no model loaded"
	TurnOnError = "hardware: turn on: %v"
)

// Calc is the main container for the emulated components of the calculator.
type Calc struct {
	cfg Config

	Model model.Model
	CPU   cpu.Stepper
	Mem   *memory.AddressSpace
	Clock *clocks.State

	// device models. the LCD and Keypad are always present once a model has
	// been loaded
	LCD    peripherals.LCD
	Keypad peripherals.Keypad
	Link   peripherals.Link

	// handlers are called with the Calc as the source of the event
	Events events.Bus[*Calc]

	// the result of the most recent CPU step
	LastStep cpu.StepResult

	state  govern.State
	loaded bool

	// breakpoints are kept by the Calc so they can be attached to the
	// memory of a newly loaded model
	breaks memory.BreakChecker

	// held for the duration of the power-on sequence
	turnOnCrit sync.Mutex

	// the ROM image of the most recent load
	rom []uint8
}

// NewCalc creates a new Calc. A model must be loaded with Load() before the
// Calc can be run.
func NewCalc(cfg Config) *Calc {
	return &Calc{
		cfg:   cfg,
		state: govern.Stopped,
	}
}

// Config returns the configuration of the Calc.
func (c *Calc) Config() Config {
	return c.cfg
}

// Loaded returns true if a model has been successfully loaded.
func (c *Calc) Loaded() bool {
	return c.loaded
}

// State returns the current run state.
func (c *Calc) State() govern.State {
	return c.state
}

// SetState changes the run state. Setting FakeRunning is not allowed outside
// of the power-on sequence and is changed to Running.
func (c *Calc) SetState(state govern.State) {
	if state == govern.FakeRunning {
		state = govern.Running
	}
	c.state = state
}

// SetBreakpoints sets the breakpoint set consulted by the run loop. The set
// remains in place when a new model is loaded.
func (c *Calc) SetBreakpoints(bc memory.BreakChecker) {
	c.breaks = bc
	if c.Mem != nil {
		c.Mem.SetBreakChecker(bc)
	}
}

// Reset the calculator. The CPU is reset, the clock is zeroed and the
// power-on bank mapping is restored. RAM is not cleared.
func (c *Calc) Reset() error {
	if !c.loaded {
		return errorNotLoaded()
	}
	c.CPU.Reset()
	c.Clock.Reset()
	c.Mem.ResetMapping()
	c.LCD.SetLastFrame(0)
	c.LastStep = cpu.StepResult{}
	return nil
}
