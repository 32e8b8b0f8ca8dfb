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

package memory

import (
	"github.com/jetsetilly/gopher83/hardware/initcode"
	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/logger"
)

// layout describes the memory fitted to a model and the power-on mapping of
// bank 0.
type layout struct {
	flashPages   int
	ramPages     int
	bootPage     uint8
	flashVersion int
	ramVersion   int
}

var layouts = map[model.Model]layout{
	model.TI81:     {flashPages: 2, ramPages: 1},
	model.TI82:     {flashPages: 8, ramPages: 2},
	model.TI83:     {flashPages: 16, ramPages: 2},
	model.TI85:     {flashPages: 8, ramPages: 2},
	model.TI86:     {flashPages: 16, ramPages: 8},
	model.TI73:     {flashPages: 32, ramPages: 2, flashVersion: 1},
	model.TI83P:    {flashPages: 32, ramPages: 2, flashVersion: 1},
	model.TI83PSE:  {flashPages: 128, ramPages: 8, bootPage: 0x7f, flashVersion: 2},
	model.TI84P:    {flashPages: 64, ramPages: 8, bootPage: 0x3f, flashVersion: 3, ramVersion: 2},
	model.TI84PSE:  {flashPages: 128, ramPages: 8, bootPage: 0x7f, flashVersion: 2},
	model.TI84PCSE: {flashPages: 256, ramPages: 8, bootPage: 0xff, flashVersion: 2},
}

// NewAddressSpace creates the memory for the model and sets up the power-on
// bank mapping. Bank 0 holds the boot page, banks 1 and 2 hold flash page
// zero and bank 3 holds RAM page zero.
func NewAddressSpace(m model.Model) (*AddressSpace, initcode.Code) {
	l, ok := layouts[m]
	if !ok {
		logger.Logf(logger.Allow, "memory", "no memory layout for %s", m)
		return nil, initcode.Memory
	}

	as := &AddressSpace{
		Model:    m,
		Flash:    NewMemory(l.flashPages, false),
		RAM:      NewMemory(l.ramPages, true),
		bootPage: l.bootPage,
	}
	as.Flash.Version = l.flashVersion
	as.RAM.Version = l.ramVersion

	if err := as.ResetMapping(); err != nil {
		logger.Log(logger.Allow, "memory", err)
		return nil, initcode.Memory
	}

	return as, 0
}

// ResetMapping restores the power-on bank mapping. Memory contents are not
// changed.
func (as *AddressSpace) ResetMapping() error {
	as.bootmapped = false
	as.Port27RemapCount = 0
	as.Port28RemapCount = 0

	for _, b := range []struct {
		bank  int
		page  uint8
		isRAM bool
	}{
		{0, as.bootPage, false},
		{1, 0, false},
		{2, 0, false},
		{3, 0, true},
	} {
		if err := as.ChangePage(b.bank, b.page, b.isRAM); err != nil {
			return err
		}
	}

	return nil
}
