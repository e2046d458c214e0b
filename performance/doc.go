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

// Package performance measures how quickly a brick can be emulated.
//
// Check() runs a brick headless for a fixed wall clock duration and reports
// the effective clock rate, optionally while profiling. CalcSpeed() turns a
// cycle count and a duration into a rate and an accuracy relative to the
// configured clock.
//
// RunProfiler() wraps any function with the profiles named by a Profile
// value. ParseProfile() converts the command line form, for example
// "cpu,mem", into a Profile.
package performance
