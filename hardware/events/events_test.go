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

package events_test

import (
	"testing"

	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/hardware/events"
	"github.com/jetsetilly/gopher83/test"
)

func TestRegisterAndNotify(t *testing.T) {
	var bus events.Bus[*[]string]
	var log []string

	record := func(kind events.Kind, source *[]string, context any) {
		*source = append(*source, context.(string))
	}

	_, err := bus.Register(events.VideoFrame, record, "a")
	test.ExpectSuccess(t, err)
	_, err = bus.Register(events.Breakpoint, record, "b")
	test.ExpectSuccess(t, err)
	_, err = bus.Register(events.VideoFrame, record, "c")
	test.ExpectSuccess(t, err)

	// handlers for the kind are called in registration order
	bus.Notify(events.VideoFrame, &log)
	test.DemandEquality(t, len(log), 2)
	test.ExpectEquality(t, log[0], "a")
	test.ExpectEquality(t, log[1], "c")

	log = log[:0]
	bus.Notify(events.Breakpoint, &log)
	test.DemandEquality(t, len(log), 1)
	test.ExpectEquality(t, log[0], "b")

	// no handlers for this kind
	log = log[:0]
	bus.Notify(events.AudioFrame, &log)
	test.ExpectEquality(t, len(log), 0)
}

func TestInvalidRegistration(t *testing.T) {
	var bus events.Bus[int]
	_, err := bus.Register(events.NoEvent, func(events.Kind, int, any) {}, nil)
	test.ExpectSuccess(t, curated.Is(err, events.InvalidEvent))
	_, err = bus.Register(events.VideoFrame, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, events.InvalidEvent))
}

func TestCapacity(t *testing.T) {
	var bus events.Bus[*int]
	var count int

	inc := func(kind events.Kind, source *int, context any) {
		*source++
	}

	for i := 0; i < events.Capacity; i++ {
		_, err := bus.Register(events.VideoFrame, inc, nil)
		test.DemandSuccess(t, err)
	}

	// table is full
	_, err := bus.Register(events.VideoFrame, inc, nil)
	test.ExpectSuccess(t, curated.Is(err, events.CapacityExceeded))

	// existing registrations are intact
	test.ExpectEquality(t, bus.Count(events.VideoFrame), events.Capacity)
	bus.Notify(events.VideoFrame, &count)
	test.ExpectEquality(t, count, events.Capacity)
}

func TestUnregister(t *testing.T) {
	var bus events.Bus[*[]int]
	var log []int

	h := make([]events.Handle, 3)
	for i := range h {
		var err error
		h[i], err = bus.Register(events.VideoFrame, func(kind events.Kind, source *[]int, context any) {
			*source = append(*source, context.(int))
		}, i)
		test.DemandSuccess(t, err)
	}

	test.ExpectSuccess(t, bus.Unregister(h[1]))
	test.ExpectEquality(t, bus.Count(events.VideoFrame), 2)

	// already unregistered
	err := bus.Unregister(h[1])
	test.ExpectSuccess(t, curated.Is(err, events.NotRegistered))
	err = bus.Unregister(events.Handle(events.Capacity))
	test.ExpectSuccess(t, curated.Is(err, events.NotRegistered))

	// the freed slot is reused by the next registration
	h3, err := bus.Register(events.VideoFrame, func(kind events.Kind, source *[]int, context any) {
		*source = append(*source, 3)
	}, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h3, h[1])

	bus.Notify(events.VideoFrame, &log)
	test.DemandEquality(t, len(log), 3)
	test.ExpectEquality(t, log[0], 0)
	test.ExpectEquality(t, log[1], 3)
	test.ExpectEquality(t, log[2], 2)
}
