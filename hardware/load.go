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
	"github.com/jetsetilly/gopher83/hardware/clocks"
	"github.com/jetsetilly/gopher83/hardware/cpu"
	"github.com/jetsetilly/gopher83/hardware/events"
	"github.com/jetsetilly/gopher83/hardware/initcode"
	"github.com/jetsetilly/gopher83/hardware/memory"
	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/hardware/peripherals"
	"github.com/jetsetilly/gopher83/logger"
)

func errorNotLoaded() error {
	return curated.Errorf(NotLoaded)
}

// Load prepares the calculator for the model. The ROM image is copied to the
// start of flash. The CPU is created with the factory function, which is
// given the memory of the new model.
//
// Each initialisation stage reports failure with a bit in an initcode.Code.
// If any stage fails then the load is abandoned and the Calc is left exactly
// as it was before the call.
func (c *Calc) Load(m model.Model, rom []uint8, newCPU cpu.Factory, dev peripherals.Devices) error {
	if !m.Valid() {
		return curated.Errorf(InitError, initcode.Model)
	}

	var code initcode.Code

	mem, mc := memory.NewAddressSpace(m)
	code |= mc

	clk, cc := clocks.NewState(m)
	code |= cc

	var stp cpu.Stepper
	if mem != nil && newCPU != nil {
		stp = newCPU(mem)
	}
	if stp == nil {
		code |= initcode.CPU
	} else {
		code |= stp.Init()
	}

	code |= deviceInit(dev)
	code |= audioInit(dev)

	if mem != nil && len(rom) > mem.Flash.Size() {
		logger.Logf(logger.Allow, "hardware", "ROM image (%d bytes) is larger than flash for %s", len(rom), m)
		code |= initcode.Memory
	}

	if code != 0 {
		logger.Logf(logger.Allow, "hardware", "loading %s failed: %s", m, code)
		return curated.Errorf(InitError, code)
	}

	// all stages have succeeded. commit the new machine
	mem.Flash.Load(rom)
	mem.SetBreakChecker(c.breaks)

	c.Model = m
	c.Mem = mem
	c.Clock = clk
	c.CPU = stp
	c.LCD = dev.LCD
	c.Keypad = dev.Keypad
	c.Link = dev.Link
	c.LastStep = cpu.StepResult{}
	c.rom = rom
	c.loaded = true
	c.state = govern.Running

	if c.Link != nil {
		c.Link.Disable()
	}

	logger.Logf(logger.Allow, "hardware", "loaded %s (%d pages flash, %d pages RAM)", m, mem.Flash.Pages(), mem.RAM.Pages())
	c.Events.Notify(events.ROMLoad, c)

	if c.cfg.AutoTurnOn {
		if err := c.TurnOn(); err != nil {
			return err
		}
	}

	return nil
}

// the LCD and keypad are required.
func deviceInit(dev peripherals.Devices) initcode.Code {
	if dev.LCD == nil || dev.Keypad == nil {
		return initcode.Devices
	}
	return 0
}

// audio is produced by the link port. a link port that samples audio must
// report a usable sample rate.
func audioInit(dev peripherals.Devices) initcode.Code {
	if dev.Link == nil {
		return 0
	}
	if a, ok := dev.Link.(peripherals.AudioSampler); ok && a.SampleRate() <= 0 {
		return initcode.Audio
	}
	return 0
}

// ROM returns the ROM image of the current model.
func (c *Calc) ROM() []uint8 {
	return c.rom
}
