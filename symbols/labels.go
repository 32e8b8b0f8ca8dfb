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

package symbols

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jetsetilly/gopher83/curated"
	"github.com/jetsetilly/gopher83/hardware/memory"
)

// MaxLabels is the maximum number of labels in a table.
const MaxLabels = 10000

// Sentinal errors.
const (
	TableFull = "symbols: table full (%d labels)"
)

// Label is a named wide address.
type Label struct {
	Name string
	Addr memory.WideAddress
}

func (l Label) String() string {
	return fmt.Sprintf("%s -> %s", l.Addr, l.Name)
}

// Labels is a table of labels. Labels are searched in the order they were
// added.
type Labels struct {
	crit    sync.Mutex
	entries []Label

	// the longest label name in the table
	maxWidth int
}

// NewLabels is the preferred method of initialisation for the Labels type.
// The table is seeded with the standard OS labels.
func NewLabels() *Labels {
	l := &Labels{}
	for _, s := range osSymbols {
		l.add(s.name, osAddress(s.addr), false)
	}
	return l
}

// Add a label to the table. If a label already exists at the address it is
// replaced only if prefer is true.
func (l *Labels) Add(name string, w memory.WideAddress, prefer bool) error {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.add(name, w, prefer)
}

func (l *Labels) add(name string, w memory.WideAddress, prefer bool) error {
	for i := range l.entries {
		if l.entries[i].Addr == w {
			if prefer {
				l.entries[i].Name = name
				l.maxWidth = max(l.maxWidth, len(name))
			}
			return nil
		}
	}

	if len(l.entries) >= MaxLabels {
		return curated.Errorf(TableFull, MaxLabels)
	}

	l.entries = append(l.entries, Label{Name: name, Addr: w})
	l.maxWidth = max(l.maxWidth, len(name))

	return nil
}

// Void removes every label from the table.
func (l *Labels) Void() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
	l.maxWidth = 0
}

// Len returns the number of labels in the table.
func (l *Labels) Len() int {
	l.crit.Lock()
	defer l.crit.Unlock()
	return len(l.entries)
}

// MaxWidth returns the length of the longest label name.
func (l *Labels) MaxWidth() int {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.maxWidth
}

// FindAddressLabel returns the label for the wide address. Labels are page
// relative so a label matches if it is in the same RAM or flash page and at
// the same offset within that page, regardless of the CPU address it was seen
// at.
func (l *Labels) FindAddressLabel(w memory.WideAddress) (string, bool) {
	l.crit.Lock()
	defer l.crit.Unlock()

	for _, e := range l.entries {
		if e.Addr.SameBank(w) {
			return e.Name, true
		}
	}
	return "", false
}

// Write the table to the io.Writer.
func (l *Labels) Write(w io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()

	s := strings.Builder{}
	for _, e := range l.entries {
		s.WriteString(fmt.Sprintf("%s -> %s\n", e.Addr, e.Name))
	}
	io.WriteString(w, s.String())
}

func (l *Labels) String() string {
	s := strings.Builder{}
	l.Write(&s)
	return s.String()
}
