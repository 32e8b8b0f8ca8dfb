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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher83/hardware/initcode"
)

// Memory defines the operations required by a CPU implementation to access
// the calculator's address space.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// StepResult describes the instruction executed by a call to Stepper.Step().
type StepResult struct {
	// number of T-states consumed by the instruction
	TStates int

	// program counter after the instruction
	PC uint16

	// the instruction was a return from a subroutine
	Returned bool

	// the CPU is halted
	Halted bool
}

func (r StepResult) String() string {
	s := fmt.Sprintf("PC=%04x T=%d", r.PC, r.TStates)
	if r.Returned {
		s += " ret"
	}
	if r.Halted {
		s += " halt"
	}
	return s
}

// Stepper is implemented by a CPU model. Step() must execute exactly one
// instruction.
type Stepper interface {
	Step() StepResult
	PC() uint16
	Reset()
	Init() initcode.Code
}

// Factory creates a Stepper for the supplied memory.
type Factory func(mem Memory) Stepper
