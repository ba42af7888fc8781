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

// Package romloader is used to load program images from the local filesystem or
// from the network. Programs are identified by the SHA1 hash of their data.
//
// A Loader is created with NewLoader() and the data loaded with the Load()
// function.
//
//	ld := romloader.NewLoader("roms/pong.ch8")
//	if err := ld.Load(); err != nil {
//		return err
//	}
//	err = vm.LoadProgram(ld.Data)
//
// Filenames beginning with http:// or https:// are fetched with an HTTP GET.
package romloader
