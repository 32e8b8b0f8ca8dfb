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
	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/debugger/govern"
	"github.com/jetsetilly/gopher83/hardware/peripherals"
	"github.com/jetsetilly/gopher83/logger"
)

// number of extra half budget runs allowed for the CPU to halt after the ON
// key has been released
const turnOnHaltTries = 3

// TurnOn simulates the user pressing the ON key. The boot code requires the
// key to be held while it runs so the key is pressed, held for half a second
// of emulated time and then released. The CPU is then given up to a further
// one and a half seconds to reach its idle (halted) state.
//
// Does nothing if the LCD is already active. Only one power-on sequence can
// run at a time. A second call made while a sequence is in progress waits for
// the first to complete.
func (c *Calc) TurnOn() error {
	if !c.loaded {
		return errorNotLoaded()
	}
	if c.LCD == nil || c.Keypad == nil {
		return curated.Errorf(TurnOnError, "no LCD or keypad")
	}

	if c.LCD.Active() {
		return nil
	}

	c.turnOnCrit.Lock()
	defer c.turnOnCrit.Unlock()

	// the sequence may have completed while we were waiting
	if c.LCD.Active() {
		return nil
	}

	prev := c.state
	c.state = govern.FakeRunning

	budget := int64(c.Clock.Freq)
	if c.Model.IsColor() {
		budget *= 2
	}

	// a breakpoint during the sequence ends it early. the key is still
	// released
	run := func(n int64) error {
		if c.state != govern.FakeRunning {
			return nil
		}
		return c.RunTStates(n)
	}

	if err := run(budget); err != nil {
		return curated.Errorf(TurnOnError, err)
	}

	c.Keypad.Press(peripherals.KeyGroupOn, peripherals.KeyBitOn)
	err := run(budget / 2)
	c.Keypad.Release(peripherals.KeyGroupOn, peripherals.KeyBitOn)
	if err != nil {
		return curated.Errorf(TurnOnError, err)
	}

	// the CPU always runs after the release so the boot code sees the key go
	// up, even if it halted while the key was down
	for i := 0; i == 0 || (i < turnOnHaltTries && !c.LastStep.Halted); i++ {
		if err := run(budget / 2); err != nil {
			return curated.Errorf(TurnOnError, err)
		}
	}

	if c.state == govern.FakeRunning {
		c.state = prev
	}

	logger.Logf(logger.Allow, "hardware", "turned on %s (lcd active: %v)", c.Model, c.LCD.Active())

	return nil
}
