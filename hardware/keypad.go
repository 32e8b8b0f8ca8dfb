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
	"github.com/jetsetilly/gopher83/hardware/model"
)

// ShiftState is the state of the 2nd and Alpha modifier keys as recorded by
// the calculator's operating system.
type ShiftState int

// List of shift states.
const (
	ShiftNormal ShiftState = iota
	ShiftSecond
	ShiftAlpha
)

func (s ShiftState) String() string {
	switch s {
	case ShiftSecond:
		return "2nd"
	case ShiftAlpha:
		return "Alpha"
	}
	return "Normal"
}

// bits in the operating system's shift flags byte
const (
	shiftFlagSecond = 0x08
	shiftFlagAlpha  = 0x10
)

// the OS briefly clears the shift flags while processing a key. a normal
// state is only reported after this many consecutive normal polls
const normalPollThreshold = 10

// address of the shift flags byte for each model
var shiftFlagsAddress = map[model.Model]uint16{
	model.TI82:     0x853a,
	model.TI85:     0x8358,
	model.TI86:     0xc3f7,
	model.TI73:     0x856d,
	model.TI83P:    0x8a02,
	model.TI83PSE:  0x8a02,
	model.TI84P:    0x8a02,
	model.TI84PSE:  0x8a02,
	model.TI84PCSE: 0x8b38,
}

// KeypadMonitor polls the operating system's shift flags. The zero value is
// ready to use.
type KeypadMonitor struct {
	numNormal int
	state     ShiftState
}

// Poll reads the shift flags and returns the shift state. The changed value
// is true if the state is different to the state returned by the previous
// call.
func (k *KeypadMonitor) Poll(c *Calc) (state ShiftState, changed bool) {
	if !c.loaded {
		return k.state, false
	}

	addr, ok := shiftFlagsAddress[c.Model]
	if !ok {
		return k.state, false
	}

	flags, err := c.Mem.Read(addr)
	if err != nil {
		return k.state, false
	}

	prev := k.state

	switch {
	case flags&shiftFlagSecond == shiftFlagSecond:
		k.numNormal = 0
		k.state = ShiftSecond
	case flags&shiftFlagAlpha == shiftFlagAlpha:
		k.numNormal = 0
		k.state = ShiftAlpha
	default:
		k.numNormal++
		if k.numNormal > normalPollThreshold {
			k.state = ShiftNormal
		}
	}

	return k.state, k.state != prev
}
