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

// bit converts a boolean flag to 0 or 1
func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// AddWithCarry adds val and the carry flag to the register. All four
// arithmetic flags in the status register are updated.
func (r *Register) AddWithCarry(val uint8, sr *StatusRegister) {
	a := int(r.value)
	v := int(val)
	c := bit(sr.Carry)

	result := a + v + c

	// units correction
	if sr.DecimalMode && (a&0x0f)+(v&0x0f)+c > 9 {
		result += 6
	}

	// sign and overflow are decided before the tens correction
	// overflow is a single bit taken from bit 7. a wider value would leak
	// into the sign bit of the status byte pushed by an NMI
	sr.Overflow = (^(a^v)&(a^result))&0x80 == 0x80
	sr.Sign = result&0x80 == 0x80

	// tens correction
	if sr.DecimalMode && result > 0x99 {
		result += 0x60
	}

	sr.Zero = result&0xff == 0
	sr.Carry = result > 0xff
	r.value = uint8(result & 0xff)
}

// SubtractWithCarry subtracts val from the register. A clear carry flag means
// that an additional one is subtracted. All four arithmetic flags in the
// status register are updated.
func (r *Register) SubtractWithCarry(val uint8, sr *StatusRegister) {
	a := int(r.value)
	v := int(val)
	borrow := 1 - bit(sr.Carry)

	result := a - v - borrow

	if sr.DecimalMode {
		if (a&0x0f)-(v&0x0f)-borrow < 0 {
			result -= 6
		}
		if result < 0 {
			result -= 0x60
		}
	}

	sr.Overflow = ((a^v)&(a^result))&0x80 == 0x80
	sr.Sign = result&0x80 == 0x80
	sr.Zero = result&0xff == 0
	sr.Carry = result >= 0
	r.value = uint8(result & 0xff)
}

// Compare val with the register. The register is unchanged. The sign, zero
// and carry flags are updated.
func (r *Register) Compare(val uint8, sr *StatusRegister) {
	result := int(r.value) - int(val)
	sr.Sign = result&0x80 == 0x80
	sr.Zero = result&0xff == 0
	sr.Carry = result >= 0
}
