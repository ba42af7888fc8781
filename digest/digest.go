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

// Package digest is used to create a fingerprint of the VM's output. Digests
// are chained so that the fingerprint represents the entire history of the
// output and not just the most recent frame.
//
// Digests are useful for regression testing and for confirming that two runs
// of the same program with the same random seed behave identically.
package digest

// Digest implementations compute a hash of the output they receive.
type Digest interface {
	Hash() string
	ResetDigest()
}
