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

import "sync/atomic"

// Panel is a minimal LCD. It records the power state and the frame boundary
// but has no pixels. The power state is set by the owner, usually by a port
// handler in the CPU implementation.
type Panel struct {
	active    atomic.Bool
	lastFrame float64
}

// Active implements the LCD interface.
func (p *Panel) Active() bool {
	return p.active.Load()
}

// SetActive changes the power state of the panel.
func (p *Panel) SetActive(active bool) {
	p.active.Store(active)
}

// LastFrame implements the LCD interface.
func (p *Panel) LastFrame() float64 {
	return p.lastFrame
}

// SetLastFrame implements the LCD interface.
func (p *Panel) SetLastFrame(t float64) {
	p.lastFrame = t
}
