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

// Package modalflag wraps the flag package in the standard library, adding the
// concept of program modes. Each mode can have its own set of flags.
//
// Arguments are supplied with NewArgs() and processed with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS")
//	p, err := md.Parse()
//
// The first sub-mode is the default. After Parse() the selected mode is
// returned by Mode(). Flags for that mode are then added after a call to
// NewMode() and Parse() is called again:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 10, "display scaling")
//		p, err := md.Parse()
//		...
//	}
//
// Arguments that are neither flags nor a sub-mode are returned by
// RemainingArgs() and GetArg(). Sub-mode comparisons are case insensitive.
//
// Parse() returns ParseHelp if the -help flag was given. In that case the help
// text has already been written to the Output field.
package modalflag
