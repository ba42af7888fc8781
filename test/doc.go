// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions that remove boilerplate from the
// tests in the rest of the project. It is intended to be used alongside the
// standard testing package and is not a replacement for it.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report a failure with t.Fatalf() and should
// be used when later parts of the test rely on the value being correct.
//
// Success and failure are judged according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> always success
//
// The Writer type implements io.Writer and is used to capture output for later
// comparison.
package test
