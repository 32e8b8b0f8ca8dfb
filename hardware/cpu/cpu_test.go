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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher83/hardware/cpu"
	"github.com/jetsetilly/gopher83/test"
)

func TestStepResultString(t *testing.T) {
	r := cpu.StepResult{TStates: 11, PC: 0x4000, Returned: true}
	test.ExpectEquality(t, r.String(), "PC=4000 T=11 ret")

	r = cpu.StepResult{TStates: 4, PC: 0x0038, Halted: true}
	test.ExpectEquality(t, r.String(), "PC=0038 T=4 halt")
}
