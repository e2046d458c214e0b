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

// Package hardware is the base package for the brick emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Brick type is the root of the emulation. It owns one of the CPU cores
// and drives it from wall time by way of the Tick() function. Alternatively,
// the core can be stepped one instruction at a time with Step().
//
// The Brick also acts as the wiring between the pins of a keyboard matrix.
// A button that is connected through an output pin of the CPU receives the
// level of that output pin for as long as the button is pressed.
package hardware
