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

// Package prefs facilitates the storage of preferential values in the
// project. Preferences are typed values (Bool, Int, Float, String) that can be
// associated with a key in a Disk instance and saved to or loaded from a
// preferences file.
//
//	var scale prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("sdl.scale", &scale)
//	dsk.Load()
//
// The file is plain text, one "key :: value" entry per line. Entries in the
// file for keys that have not been added to a Disk instance are preserved when
// the file is saved. This means that more than one Disk instance can share the
// same file.
//
// Values can also be set from the command line with PushCommandLineStack().
// Values pushed this way take precedence over values in the preferences file
// when Disk.Load() is called.
package prefs
