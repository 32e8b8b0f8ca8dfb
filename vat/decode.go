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
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher83/curated"
)

// Unsupported is the result of decoding a type that has no string
// representation.
const Unsupported = "unsupported"

// Ref identifies a value in memory. A Ref is either the value of a symbol or
// an element of a list or matrix.
type Ref struct {
	Type    uint8
	Address uint16

	// Stride is the size in bytes of one element. it is zero for a Ref that
	// is not an array element
	Stride uint16
}

// IsElement returns true if the Ref is an array element.
func (r Ref) IsElement() bool {
	return r.Stride != 0
}

// element returns a Ref to the idx'th element of an array of the type t
// starting at base.
func element(t uint8, base uint16, idx int) Ref {
	stride := uint16(realSize)
	if t == Cplx {
		stride = complexSize
	}
	return Ref{
		Type:    t,
		Address: base + uint16(idx)*stride,
		Stride:  stride,
	}
}

// Decode renders the value referred to by r as a string. Types that cannot be
// rendered return Unsupported.
func Decode(mem Memory, r Ref) (string, error) {
	rd := reader{mem: mem}
	var s strings.Builder
	decode(&rd, r, &s)
	if rd.err != nil {
		return "", curated.Errorf(ReadError, rd.err)
	}
	return s.String(), nil
}

func decode(rd *reader, r Ref, s *strings.Builder) {
	switch r.Type {
	case Real, Cplx:
		decodeNumber(rd, int(r.Address), s)

	case List, CList:
		// elements of a real list are reals and elements of a complex list
		// are complex
		t := r.Type - 1
		n := int(rd.read16(r.Address))
		base := r.Address + 2

		s.WriteRune('{')
		for i := 0; i < n; i++ {
			if rd.err != nil {
				return
			}
			if i > 0 {
				s.WriteRune(',')
			}
			decode(rd, element(t, base, i), s)
		}
		s.WriteRune('}')

	case Mat:
		cols := int(rd.read(int(r.Address)))
		rows := int(rd.read(int(r.Address) + 1))
		base := r.Address + 2

		s.WriteRune('[')
		for j := 0; j < rows; j++ {
			if j > 0 {
				s.WriteString("\n ")
			}
			s.WriteRune('[')
			for i := 0; i < cols; i++ {
				if rd.err != nil {
					return
				}
				if i > 0 {
					s.WriteRune(',')
				}
				decode(rd, element(Real, base, j*cols+i), s)
			}
			s.WriteRune(']')
		}
		s.WriteRune(']')

	case Strng:
		n := int(rd.read16(r.Address))
		b := make([]uint8, 0, n)
		for i := 0; i < n; i++ {
			b = append(b, rd.read(int(r.Address)+2+i))
		}
		s.WriteString(decodeChars(b))

	default:
		s.WriteString(Unsupported)
	}
}

// number is the BCD floating point format used by the calculator.
type number struct {
	flags    uint8
	exponent int
	digits   [14]uint8

	// the number of digits up to and including the last non-zero digit.
	// always at least one
	sigDigits int
}

const (
	flagNegative = 0x80
	flagComplex  = 0x0c
	complexMask  = 0x0f
)

// readNumber reads the nine byte number at addr.
func readNumber(rd *reader, addr int) number {
	var n number

	n.flags = rd.read(addr)

	// the exponent is biased by 0x80. a stored value of zero (-128) is
	// treated as 128
	n.exponent = int(int8(rd.read(addr+1) ^ 0x80))
	if n.exponent == -128 {
		n.exponent = 128
	}

	n.sigDigits = 1
	for i := 0; i < len(n.digits); i += 2 {
		b := rd.read(addr + 2 + i/2)
		n.digits[i] = b >> 4
		n.digits[i+1] = b & 0x0f
		if n.digits[i] != 0 {
			n.sigDigits = i + 1
		}
		if n.digits[i+1] != 0 {
			n.sigDigits = i + 2
		}
	}

	return n
}

func (n number) negative() bool {
	return n.flags&flagNegative == flagNegative
}

func (n number) isComplex() bool {
	return n.flags&complexMask == flagComplex
}

// render the magnitude of the number. numbers with an exponent outside the
// range of -14 to 14 are rendered in scientific form.
func (n number) render(s *strings.Builder) {
	if n.exponent > 14 || n.exponent < -14 {
		for i := 0; i < n.sigDigits; i++ {
			s.WriteByte('0' + n.digits[i])
			if i == 0 && n.sigDigits > 1 {
				s.WriteRune('.')
			}
		}
		s.WriteString("*10^")
		s.WriteString(strconv.Itoa(n.exponent))
		return
	}

	// the decimal point follows the digit at the exponent index. digits
	// outside the stored digits are zero
	for i := min(n.exponent, 0); i < n.sigDigits || i < n.exponent+1; i++ {
		if i >= 0 && i < len(n.digits) {
			s.WriteByte('0' + n.digits[i])
		} else {
			s.WriteRune('0')
		}
		if i == n.exponent && i+1 < n.sigDigits {
			s.WriteRune('.')
		}
	}
}

func decodeNumber(rd *reader, addr int, s *strings.Builder) {
	re := readNumber(rd, addr)
	if re.negative() {
		s.WriteRune('-')
	}
	re.render(s)

	if !re.isComplex() {
		return
	}

	im := readNumber(rd, addr+realSize)
	if im.negative() {
		s.WriteRune('-')
	} else {
		s.WriteRune('+')
	}
	im.render(s)
	s.WriteRune('i')
}
