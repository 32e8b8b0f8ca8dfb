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

package debugger

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/hardware/memory"
)

// Sentinal errors.
const (
	BreakpointExists  = "breakpoint: already exists (%s %s)"
	NoSuchBreakpoint  = "breakpoint: no such breakpoint (%s %s)"
	InvalidBreakpoint = "breakpoint: invalid type (%s)"
)

// breakpoints are keyed by physical location.
type location struct {
	isRAM bool
	page  uint8
	base  uint16
}

func locationOf(w memory.WideAddress) location {
	return location{
		isRAM: w.IsRAM,
		page:  w.Page,
		base:  w.Base(),
	}
}

// Breakpoint describes a single breakpoint.
type Breakpoint struct {
	Kind memory.BreakKind
	Addr memory.WideAddress
}

func (b Breakpoint) String() string {
	return fmt.Sprintf("%s %s", b.Kind, b.Addr)
}

// Breakpoints is a set of breakpoints. It implements the memory.BreakChecker
// interface.
type Breakpoints struct {
	crit sync.Mutex

	// the kinds of breakpoint at each location
	kinds map[location]memory.BreakKind

	// the address used when the breakpoint was added. used for reporting
	addrs map[location]memory.WideAddress
}

// NewBreakpoints is the preferred method of initialisation for the
// Breakpoints type.
func NewBreakpoints() *Breakpoints {
	return &Breakpoints{
		kinds: make(map[location]memory.BreakKind),
		addrs: make(map[location]memory.WideAddress),
	}
}

func validKind(kind memory.BreakKind) bool {
	switch kind {
	case memory.NormalBreak, memory.ReadBreak, memory.WriteBreak:
		return true
	}
	return false
}

// Add a breakpoint of the kind at the address.
func (bp *Breakpoints) Add(kind memory.BreakKind, w memory.WideAddress) error {
	if !validKind(kind) {
		return curated.Errorf(InvalidBreakpoint, kind)
	}

	bp.crit.Lock()
	defer bp.crit.Unlock()

	l := locationOf(w)
	if bp.kinds[l]&kind == kind {
		return curated.Errorf(BreakpointExists, kind, w)
	}
	bp.kinds[l] |= kind
	bp.addrs[l] = w

	return nil
}

// Drop the breakpoint of the kind at the address.
func (bp *Breakpoints) Drop(kind memory.BreakKind, w memory.WideAddress) error {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	l := locationOf(w)
	if bp.kinds[l]&kind != kind || !validKind(kind) {
		return curated.Errorf(NoSuchBreakpoint, kind, w)
	}

	bp.kinds[l] &^= kind
	if bp.kinds[l] == 0 {
		delete(bp.kinds, l)
		delete(bp.addrs, l)
	}

	return nil
}

// Clear all breakpoints.
func (bp *Breakpoints) Clear() {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	clear(bp.kinds)
	clear(bp.addrs)
}

// Check implements the memory.BreakChecker interface.
func (bp *Breakpoints) Check(w memory.WideAddress, kind memory.BreakKind) bool {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	return bp.kinds[locationOf(w)]&kind != 0
}

// List returns all breakpoints ordered by kind and then by address. Flash
// breakpoints are listed before RAM breakpoints.
func (bp *Breakpoints) List() []Breakpoint {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	var l []Breakpoint
	for loc, k := range bp.kinds {
		for _, kind := range []memory.BreakKind{memory.NormalBreak, memory.ReadBreak, memory.WriteBreak} {
			if k&kind == kind {
				l = append(l, Breakpoint{Kind: kind, Addr: bp.addrs[loc]})
			}
		}
	}

	sort.Slice(l, func(i, j int) bool {
		a, b := l[i], l[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Addr.IsRAM != b.Addr.IsRAM {
			return !a.Addr.IsRAM
		}
		if a.Addr.Page != b.Addr.Page {
			return a.Addr.Page < b.Addr.Page
		}
		return a.Addr.Base() < b.Addr.Base()
	})

	return l
}

// Write a list of breakpoints to the io.Writer.
func (bp *Breakpoints) Write(w io.Writer) {
	l := bp.List()
	if len(l) == 0 {
		io.WriteString(w, "no breakpoints\n")
		return
	}

	s := strings.Builder{}
	for i, b := range l {
		s.WriteString(fmt.Sprintf("%2d: %s\n", i, b))
	}
	io.WriteString(w, s.String())
}
