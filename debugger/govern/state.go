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

package govern

// State indicates the emulation's state. Exactly one state holds at a time.
type State int

// List of possible emulation states.
//
// FakeRunning is entered during the power-on sequence. The run loop treats it
// the same as Running but the previous state is restored once the sequence
// has completed.
const (
	Stopped State = iota
	Running
	FakeRunning
	HaltedAtBreakpoint
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Running:
		return "Running"
	case FakeRunning:
		return "FakeRunning"
	case HaltedAtBreakpoint:
		return "HaltedAtBreakpoint"
	}
	return ""
}

// IsRunning returns true if the state allows the run loop to continue.
func (s State) IsRunning() bool {
	return s == Running || s == FakeRunning
}
