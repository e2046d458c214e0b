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

package performance

// CalcSpeed takes the number of cycles executed and the duration (in seconds)
// and returns the effective clock speed in Hz and the accuracy of that value
// as a percentage of the specified clock.
func CalcSpeed(cycles float64, duration float64, clock float64) (hz float64, accuracy float64) {
	if duration <= 0 || clock <= 0 {
		return 0, 0
	}
	hz = cycles / duration
	accuracy = 100 * hz / clock
	return hz, accuracy
}
