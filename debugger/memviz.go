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
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher83/curated"
)

// Sentinal errors.
const (
	MemvizError = "memviz: %v"
)

// Memviz writes a graphviz (dot) representation of the data structures to
// the io.Writer.
func Memviz(w io.Writer, structs ...any) {
	memviz.Map(w, structs...)
}

// MemvizFile is like Memviz() but writes to the named file. An existing file
// is truncated.
func MemvizFile(filename string, structs ...any) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(MemvizError, err)
	}

	Memviz(f, structs...)

	if err := f.Close(); err != nil {
		return curated.Errorf(MemvizError, err)
	}

	return nil
}
