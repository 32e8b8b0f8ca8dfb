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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// writeHelp amends the usage message produced by the flag package with the
// mode banner and the list of sub-modes.
func writeHelp(output io.Writer, banner string, usage string, subModes []string, additional string) {
	if output == nil {
		return
	}

	// the flag package always writes a "Usage:" line even when there are no
	// flags
	header, flags, _ := strings.Cut(usage, "\n")

	if flags == "" && len(subModes) == 0 {
		if banner == "" {
			io.WriteString(output, "No help available\n")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", banner)
		}
		return
	}

	if banner == "" {
		fmt.Fprintf(output, "%s\n", header)
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", header, banner)
	}

	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			io.WriteString(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additional != "" {
		fmt.Fprintf(output, "\n%s\n", additional)
	}
}
