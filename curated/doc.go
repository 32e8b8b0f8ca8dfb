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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what differentiates
// one curated error from another and packages in this module declare their
// patterns as exported constants. For example, from the memory package:
//
//	const AddressError = "memory: address error: %v"
//
// The Is() function checks whether an error was created with a given pattern:
//
//	err := curated.Errorf(memory.AddressError, "page out of range")
//
//	if curated.Is(err, memory.AddressError) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf(hardware.InitError, err)
//
//	if curated.Has(f, memory.AddressError) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors.
//
// The Error() function implementation for curated errors normalises the
// error chain. Specifically, the chain will not contain duplicate adjacent
// parts, where a part is a sub-string separated by ': '. This means that an
// error with the text:
//
//	vat: vat: end pointer beyond program pointer
//
// will be printed as:
//
//	vat: end pointer beyond program pointer
//
// Curated errors also implement Unwrap() so errors.Is() and errors.As() from
// the standard library can find any error value passed to Errorf().
package curated
