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

package session

import (
	"github.com/jetsetilly/gopher83/hardware"
)

// Key identifies a key on the keypad matrix.
type Key struct {
	Group uint8
	Bit   uint8
}

// keyQueue presses and releases queued keys at a rate the calculator's
// keyboard scanning can keep up with. Times are measured in T-states.
type keyQueue struct {
	queue []Key

	// the key currently held down
	held     bool
	heldKey  Key
	lastDown int64
	lastUp   int64
	anyUpYet bool
	keyTime  int64
}

func (q *keyQueue) push(keys ...Key) {
	q.queue = append(q.queue, keys...)
}

// service releases the held key after half the key time and presses the
// next queued key a full key time after the previous release.
func (q *keyQueue) service(c *hardware.Calc) {
	now := c.Clock.TStates

	// the clock has been reset
	if now < q.lastDown || now < q.lastUp {
		q.lastDown = now
		q.lastUp = now
	}

	if q.held {
		if now-q.lastDown >= q.keyTime/2 {
			c.Keypad.Release(q.heldKey.Group, q.heldKey.Bit)
			q.held = false
			q.lastUp = now
			q.anyUpYet = true
		}
		return
	}

	if len(q.queue) == 0 {
		return
	}

	if q.anyUpYet && now-q.lastUp < q.keyTime {
		return
	}

	q.heldKey = q.queue[0]
	q.queue = q.queue[1:]
	c.Keypad.Press(q.heldKey.Group, q.heldKey.Bit)
	q.held = true
	q.lastDown = now
}

// pending returns the number of keys yet to be released.
func (q *keyQueue) pending() int {
	n := len(q.queue)
	if q.held {
		n++
	}
	return n
}
