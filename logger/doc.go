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

// Package logger is the central log repository for the emulator. Log entries
// are tagged and consecutive entries with the same tag and detail are
// collapsed into one entry with a repeat count.
//
// Most packages log to the central logger with the package level Log() and
// Logf() functions. Each call takes a Permission argument, which allows a
// caller to suppress logging from contexts where it isn't wanted. The Allow
// value should be used if a log entry should always be made.
//
// Tests and other components that want a private log can create one with
// NewLogger().
package logger
