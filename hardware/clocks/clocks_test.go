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

package clocks_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher83/hardware/clocks"
	"github.com/jetsetilly/gopher83/hardware/model"
	"github.com/jetsetilly/gopher83/test"
)

func TestFrequency(t *testing.T) {
	f, code := clocks.Frequency(model.TI81)
	test.ExpectSuccess(t, code.OK())
	test.ExpectEquality(t, f, clocks.MHz2)

	f, _ = clocks.Frequency(model.TI86)
	test.ExpectEquality(t, f, clocks.MHz4_8)

	f, _ = clocks.Frequency(model.TI84PSE)
	test.ExpectEquality(t, f, clocks.MHz6)

	_, code = clocks.Frequency(model.Model(-1))
	test.ExpectFailure(t, code.OK())
}

func TestDeadline(t *testing.T) {
	c, code := clocks.NewState(model.TI83P)
	test.DemandSuccess(t, code.OK())

	d := c.Deadline(100)
	test.ExpectEquality(t, d, int64(100))

	c.Advance(96)
	test.ExpectFailure(t, c.Reached(d))

	// overshoot by three T-states
	c.Advance(7)
	test.ExpectSuccess(t, c.Reached(d))
	test.ExpectEquality(t, c.TimeError, int64(3))

	// the next deadline is shortened by the overshoot
	d = c.Deadline(100)
	test.ExpectEquality(t, d, int64(200))

	c.Reset()
	test.ExpectEquality(t, c.TStates, int64(0))
	test.ExpectEquality(t, c.TimeError, int64(0))
}

func TestElapsedAndOwed(t *testing.T) {
	c, _ := clocks.NewState(model.TI84P)
	c.Advance(clocks.MHz6 / 2)
	test.ExpectApproximate(t, c.Elapsed(), 0.5, 1e-9)

	test.ExpectEquality(t, c.Owed(time.Second, 100), int64(clocks.MHz6))
	test.ExpectEquality(t, c.Owed(time.Second, 50), int64(clocks.MHz6/2))
}
