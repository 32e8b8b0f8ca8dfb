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

// Package test bundles helper functions that remove common boilerplate from
// the tests in this module. They are intended to be used with the standard go
// test harness.
//
// The Expect*() functions report a failure but allow the test to continue.
// The Demand*() functions stop the test immediately and should be used when
// the remainder of the test depends on the result. For example, testing that
// a slice is the expected length before indexing it.
//
// It is worth describing how success and failure values are interpreted
// because it is not obvious. A nil value is considered a success and will
// cause ExpectFailure() to fail and ExpectSuccess() to succeed. This is
// because of how errors usually work in Go, with nil meaning no error.
//
// The RingWriter and CappedWriter types implement io.Writer and can be used to
// capture output, for example from the logger package.
package test
