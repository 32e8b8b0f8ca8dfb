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

// Package session runs a calculator on its own goroutine. The Session type
// owns the hardware.Calc and is the only code that touches it once Run() has
// been called. Other goroutines control the calculator by sending actions,
// which are processed in the order they are sent, or by using Do() to run a
// function on the session goroutine.
//
// While the calculator is running, the session advances the emulation in
// small time slices and paces it against the wall clock according to the
// speed setting. A speed of 100 is the speed of the real hardware.
//
// Changes to the run state and to the keypad shift state are reported
// through the notifications.Notify interface.
package session
