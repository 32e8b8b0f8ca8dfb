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

// Package prefs facilitates the storage of preferential values. Values are
// typed (Bool, Int, Float, String) and are safe to read from any goroutine.
//
// Preference values are associated with a key and a Disk instance, which
// handles loading and saving to a file on disk. The file is a simple text
// file with one "key :: value" entry per line.
//
// Values can be overridden from the command line. A group of overrides is
// added with PushCommandLineStack() and is consulted by Disk.Load(). Each
// override is used at most once.
package prefs
