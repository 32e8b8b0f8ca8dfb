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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Namely, that flags are added with AddBool(), AddString()
// and AddInt() and that the Parse() function returns a ParseResult:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	model := md.AddString("model", "TI-84 Plus", "calculator model")
//	md.AddSubModes("VAT", "ANS", "SYMBOLS")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "VAT":
//		...
//	}
//
// The first sub-mode is the default. If the first non-flag argument is not a
// sub-mode then the default mode is selected and the argument is left in
// place for RemainingArgs() and GetArg(). Sub-mode matching is case
// insensitive.
//
// Calling NewMode() after a successful Parse() starts a new layer of flags
// and sub-modes for the arguments that follow. Path() returns every mode
// selected so far, separated by a slash.
//
// The -help flag is handled automatically. The help message lists the flags
// and sub-modes of the current layer.
package modalflag
