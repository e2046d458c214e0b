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

// StatusRegister holds the flags of the SPLB20 core.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// a single flag in the packed form of the register. bit 5 is unused
type flag struct {
	mask  uint8
	label byte
	get   func(*StatusRegister) *bool
}

var flags = [...]flag{
	{0x80, 'S', func(sr *StatusRegister) *bool { return &sr.Sign }},
	{0x40, 'V', func(sr *StatusRegister) *bool { return &sr.Overflow }},
	{0x20, '-', nil},
	{0x10, 'B', func(sr *StatusRegister) *bool { return &sr.Break }},
	{0x08, 'D', func(sr *StatusRegister) *bool { return &sr.DecimalMode }},
	{0x04, 'I', func(sr *StatusRegister) *bool { return &sr.InterruptDisable }},
	{0x02, 'Z', func(sr *StatusRegister) *bool { return &sr.Zero }},
	{0x01, 'C', func(sr *StatusRegister) *bool { return &sr.Carry }},
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags in order, upper case when set.
func (sr StatusRegister) String() string {
	s := make([]byte, 0, len(flags))
	for _, f := range flags {
		c := f.label
		if f.get != nil && !*f.get(&sr) {
			c += 'a' - 'A'
		}
		s = append(s, c)
	}
	return string(s)
}

// Reset leaves only the interrupt disable flag set.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0x04)
}

// SetNZ sets the sign and zero flags according to the value.
func (sr *StatusRegister) SetNZ(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v == 0
}

// Value packs the flags into a byte suitable for pushing onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8
	for _, f := range flags {
		if f.get != nil && *f.get(&sr) {
			v |= f.mask
		}
	}
	return v
}

// FromValue unpacks a byte taken from the stack.
func (sr *StatusRegister) FromValue(v uint8) {
	for _, f := range flags {
		if f.get != nil {
			*f.get(sr) = v&f.mask == f.mask
		}
	}
}
