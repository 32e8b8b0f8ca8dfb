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

package peripherals

import "sync"

// NumKeyGroups is the number of groups in the key matrix, including the
// group used for the ON key.
const NumKeyGroups = 8

// Matrix is a key matrix that records which keys are held down. It is safe
// to use from more than one goroutine.
type Matrix struct {
	crit sync.Mutex
	keys [NumKeyGroups]uint8
}

// Press the key.
func (m *Matrix) Press(group uint8, bit uint8) {
	if int(group) >= NumKeyGroups || bit > 7 {
		return
	}
	m.crit.Lock()
	defer m.crit.Unlock()
	m.keys[group] |= 1 << bit
}

// Release the key.
func (m *Matrix) Release(group uint8, bit uint8) {
	if int(group) >= NumKeyGroups || bit > 7 {
		return
	}
	m.crit.Lock()
	defer m.crit.Unlock()
	m.keys[group] &^= 1 << bit
}

// IsPressed returns true if the key is held down.
func (m *Matrix) IsPressed(group uint8, bit uint8) bool {
	if int(group) >= NumKeyGroups || bit > 7 {
		return false
	}
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.keys[group]&(1<<bit) != 0
}

// Group returns the state of all keys in a group. A set bit indicates a
// pressed key.
func (m *Matrix) Group(group uint8) uint8 {
	if int(group) >= NumKeyGroups {
		return 0
	}
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.keys[group]
}
