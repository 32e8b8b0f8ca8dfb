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

package vat

import (
	"strings"

	"github.com/jetsetilly/gopher83/logger"
	"golang.org/x/text/encoding/charmap"
)

// decodeChars converts calculator characters to a string. Each byte is
// treated as an ISO 8859-1 character. The calculator character set above
// 0x7f does not match and those bytes are logged.
//
// TODO: translation table for the TI-83 Plus large font character set.
func decodeChars(b []uint8) string {
	var s strings.Builder
	s.Grow(len(b))
	for _, c := range b {
		if c > 0x7f {
			logger.Logf(logger.Allow, "vat", "character %#02x has no accurate mapping", c)
		}
		s.WriteRune(charmap.ISO8859_1.DecodeByte(c))
	}
	return s.String()
}
