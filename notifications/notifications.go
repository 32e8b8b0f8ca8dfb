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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional information
// to the user.
type Notice string

// List of defined notifications.
const (
	// the calculator has started or stopped running
	NotifyRunning Notice = "NotifyRunning"
	NotifyStopped Notice = "NotifyStopped"

	// execution has halted on a breakpoint. the data is the address
	NotifyBreakpoint Notice = "NotifyBreakpoint"

	// the calculator has been turned on
	NotifyTurnedOn Notice = "NotifyTurnedOn"

	// the shift state of the keypad has changed. the data is the name of the
	// new state
	NotifyKeypadState Notice = "NotifyKeypadState"

	// the last answer has been retrieved. the data is the decoded value
	NotifyLastAnswer Notice = "NotifyLastAnswer"
)

// Notify is used for direct communication between the emulation and the
// presentation layer.
type Notify interface {
	Notify(notice Notice, data ...string) error
}
