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

// Package assert contains checks that are useful during development and
// testing.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for the calling goroutine. The value
// is different between goroutines and consistent for a given goroutine. It
// should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine records the identity of a goroutine so that later calls can be
// checked against it.
type Goroutine struct {
	id uint64
}

// Claim records the calling goroutine as the owner.
func (g *Goroutine) Claim() {
	g.id = GetGoRoutineID()
}

// Check panics if the calling goroutine is not the goroutine that made the
// most recent call to Claim(). It does nothing if Claim() has never been
// called.
func (g *Goroutine) Check() {
	if g.id == 0 {
		return
	}
	if id := GetGoRoutineID(); id != g.id {
		panic("assert: called from goroutine " + strconv.FormatUint(id, 10) +
			" but owned by goroutine " + strconv.FormatUint(g.id, 10))
	}
}
