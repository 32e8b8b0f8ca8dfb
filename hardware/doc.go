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

// Package hardware is the base package for the calculator emulation. It and
// its sub-packages contain everything required for a headless emulation.
//
// The Calc type is the root of the emulation. It is created with NewCalc()
// and a model is loaded with Load(). The CPU implementation and the device
// models are supplied by the caller.
//
// The run loop is driven by RunFor(), which steps the CPU against a T-state
// budget, a target address, a return instruction or a step count. The
// RunTStates(), RunToAddress(), RunToReturn() and RunSteps() functions are
// convenient wrappers.
//
// A Calc must only be stepped by one goroutine at a time. The session package
// provides a goroutine that owns a Calc and serialises requests to it.
package hardware
