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
	"strings"

	"github.com/jetsetilly/gopher83/hardware/memory"
)

// SearchResults contains the normalised label found by Search().
type SearchResults struct {
	Symbol  string
	Address memory.WideAddress
}

// Search returns the label with the name. Matching is case-insensitive.
// Returns nil if there is no label with the name.
func (l *Labels) Search(name string) *SearchResults {
	l.crit.Lock()
	defer l.crit.Unlock()

	name = strings.ToUpper(name)
	for _, e := range l.entries {
		if strings.ToUpper(e.Name) == name {
			return &SearchResults{
				Symbol:  e.Name,
				Address: e.Addr,
			}
		}
	}

	return nil
}
