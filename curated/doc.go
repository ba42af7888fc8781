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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. Errors are created with Errorf(), which takes a pattern and
// placeholder values in the same way as fmt.Errorf():
//
//	e := curated.Errorf("memory: fault at %#04x", addr)
//
// The pattern identifies the kind of error. Packages that raise errors export
// their patterns as constants so that callers can test for them:
//
//	if curated.Is(err, memory.MemoryFault) {
//		...
//	}
//
// Is() only checks the outermost error in the chain. Has() checks every curated
// error in the chain:
//
//	e := curated.Errorf(memory.MemoryFault, addr)
//	f := curated.Errorf("vm: %v", e)
//
//	curated.Is(f, memory.MemoryFault)  // false
//	curated.Has(f, memory.MemoryFault) // true
//
// IsAny() answers whether the error was created by Errorf() at all. In other
// words, whether the error was expected by the program or not.
//
// Chains are made of parts separated by ": ". When the message is produced,
// duplicate adjacent parts are removed, so that wrapping an error with the
// same prefix more than once does not result in a stuttering message:
//
//	vm: vm: stack underflow
//
// becomes
//
//	vm: stack underflow
//
// Non-curated errors passed as values are still reachable with the errors
// package in the standard library, because curated errors implement the
// Unwrap() []error convention.
package curated
