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

// Package initcode defines the bit-flag result of each hardware
// initialisation stage. Stage results are combined with bitwise OR and any
// nonzero result aborts the load.
package initcode

import "strings"

// Code is a combination of failed initialisation stages. The zero value
// indicates success.
type Code uint32

// List of initialisation stages.
const (
	CPU Code = 1 << iota
	Memory
	Clock
	Devices
	Audio
	Model
)

var names = []struct {
	c Code
	s string
}{
	{CPU, "cpu"},
	{Memory, "memory"},
	{Clock, "clock"},
	{Devices, "devices"},
	{Audio, "audio"},
	{Model, "model"},
}

// OK returns true if no stage has failed.
func (c Code) OK() bool {
	return c == 0
}

func (c Code) String() string {
	if c == 0 {
		return "ok"
	}
	var s []string
	for _, n := range names {
		if c&n.c == n.c {
			s = append(s, n.s)
		}
	}
	return strings.Join(s, "|")
}
