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

// Package events implements a fixed capacity table of event handlers.
// Handlers are registered for a Kind of event and are called synchronously,
// in registration order, when that kind of event is notified.
//
// The table is a flat array of slots. Notify() never allocates, which makes it
// suitable for calling from inside the emulation's run loop. A free slot is
// identified by the NoEvent kind.
//
// Handlers are called on the goroutine that calls Notify(). They must not
// block because doing so stalls emulated time. The Bus is not safe for
// concurrent use. Registration should happen on the goroutine that runs the
// emulation or before the emulation is started.
package events

import (
	"fmt"

	"github.com/jetsetilly/gopher83/curated"
)

// Kind of event.
type Kind int

// List of event kinds. NoEvent is the sentinel value for an unused slot.
const (
	NoEvent Kind = iota
	ROMLoad
	LCDEnqueue
	Breakpoint
	VideoFrame
	AudioFrame
)

func (k Kind) String() string {
	switch k {
	case NoEvent:
		return "NoEvent"
	case ROMLoad:
		return "ROMLoad"
	case LCDEnqueue:
		return "LCDEnqueue"
	case Breakpoint:
		return "Breakpoint"
	case VideoFrame:
		return "VideoFrame"
	case AudioFrame:
		return "AudioFrame"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Capacity is the number of slots in the table.
const Capacity = 255

// Sentinal errors.
const (
	CapacityExceeded = "events: capacity exceeded (%d slots)"
	NotRegistered    = "events: handle (%d) not registered"
	InvalidEvent     = "events: invalid event: %v"
)

// Handler is called when an event of the registered kind is notified. The
// source is the value passed to Notify() and the context is the value passed
// to Register().
type Handler[T any] func(kind Kind, source T, context any)

// Handle identifies a registration.
type Handle int

type slot[T any] struct {
	kind    Kind
	handler Handler[T]
	context any
}

// Bus is the table of registered handlers. The zero value is ready to use.
type Bus[T any] struct {
	slots [Capacity]slot[T]
}

// Register a handler for a kind of event. The handler is placed in the first
// free slot.
func (b *Bus[T]) Register(kind Kind, handler Handler[T], context any) (Handle, error) {
	if kind == NoEvent {
		return -1, curated.Errorf(InvalidEvent, "cannot register NoEvent")
	}
	if handler == nil {
		return -1, curated.Errorf(InvalidEvent, "nil handler")
	}

	for i := range b.slots {
		if b.slots[i].kind == NoEvent {
			b.slots[i] = slot[T]{kind: kind, handler: handler, context: context}
			return Handle(i), nil
		}
	}

	return -1, curated.Errorf(CapacityExceeded, Capacity)
}

// Unregister frees the slot identified by the handle.
func (b *Bus[T]) Unregister(h Handle) error {
	if h < 0 || int(h) >= Capacity || b.slots[h].kind == NoEvent {
		return curated.Errorf(NotRegistered, h)
	}
	b.slots[h] = slot[T]{}
	return nil
}

// Notify calls every handler registered for the kind, in slot order.
func (b *Bus[T]) Notify(kind Kind, source T) {
	for i := range b.slots {
		if b.slots[i].kind == kind && kind != NoEvent {
			b.slots[i].handler(kind, source, b.slots[i].context)
		}
	}
}

// Count returns the number of handlers registered for the kind.
func (b *Bus[T]) Count(kind Kind) int {
	var n int
	for i := range b.slots {
		if b.slots[i].kind == kind {
			n++
		}
	}
	return n
}
