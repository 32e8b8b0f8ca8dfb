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

package initcode_test

import (
	"testing"

	"github.com/jetsetilly/gopher83/hardware/initcode"
	"github.com/jetsetilly/gopher83/test"
)

func TestCode(t *testing.T) {
	var c initcode.Code
	test.ExpectSuccess(t, c.OK())
	test.ExpectEquality(t, c.String(), "ok")

	c |= initcode.Memory
	c |= initcode.Audio
	test.ExpectFailure(t, c.OK())
	test.ExpectEquality(t, c.String(), "memory|audio")
}
