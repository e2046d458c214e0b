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

package registers

import (
	"fmt"
)

// Register is one of the 8-bit SPLB20 registers (A, X or Y).
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) *Register {
	return &Register{value: val, label: label}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Value returns the contents of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Load replaces the contents of the register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Increment and Decrement wrap around.
func (r *Register) Increment() { r.value++ }
func (r *Register) Decrement() { r.value-- }

// AND, EOR and ORA combine val with the register.
func (r *Register) AND(val uint8) { r.value &= val }
func (r *Register) EOR(val uint8) { r.value ^= val }
func (r *Register) ORA(val uint8) { r.value |= val }

// ROL rotates the register left through carry and returns the bit shifted out.
func (r *Register) ROL(carry bool) bool {
	out := r.value >> 7
	r.value = r.value<<1 | uint8(bit(carry))
	return out == 1
}

// ROR rotates the register right through carry and returns the bit shifted out.
func (r *Register) ROR(carry bool) bool {
	out := r.value & 0x01
	r.value = r.value>>1 | uint8(bit(carry))<<7
	return out == 1
}
