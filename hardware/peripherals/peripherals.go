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

// Package peripherals defines the interfaces of the device models attached to
// the calculator: the LCD, the keypad and the link port (which also carries
// audio). The device models themselves are external to this module but the
// package provides the Matrix keypad and the Panel LCD as simple reference
// implementations.
package peripherals

// LCD is the display device. LastFrame() and SetLastFrame() record the
// emulated time, in seconds, of the most recent frame boundary.
type LCD interface {
	Active() bool
	LastFrame() float64
	SetLastFrame(t float64)
}

// Keypad is the key matrix. Keys are identified by group and bit.
type Keypad interface {
	Press(group uint8, bit uint8)
	Release(group uint8, bit uint8)
}

// Link is the link port device. Only the lifecycle hooks are used by the
// emulation core.
type Link interface {
	Enable()
	Disable()
}

// AudioSampler is optionally implemented by a Link device that can produce
// audio from the link port lines. DrainSamples() appends the samples
// produced since the previous call to buf and returns the result.
type AudioSampler interface {
	SampleRate() int
	DrainSamples(buf []int) []int
}

// Devices groups the device models attached to a calculator. The LCD and
// keypad are required. The link port is optional.
type Devices struct {
	LCD    LCD
	Keypad Keypad
	Link   Link
}

// The ON key.
const (
	KeyGroupOn uint8 = 0x05
	KeyBitOn   uint8 = 0x00
)
