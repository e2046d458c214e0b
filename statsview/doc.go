// This file is part of Gopherbrick.
//
// Gopherbrick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbrick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbrick.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview serves live runtime charts (heap, goroutines, GC pauses)
// over HTTP using github.com/go-echarts/statsview. It is useful when running
// a brick in real time for long periods.
//
// The server is only compiled in with the statsview build tag:
//
//	go build -tags statsview .
//
// Without the tag Launch() prints a short notice and Available() returns
// false. When launched, the charts are at /debug/statsview on Address and the
// standard pprof handlers at /debug/pprof/.
package statsview
