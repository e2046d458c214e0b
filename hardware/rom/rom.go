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

// Package rom implements the read-only program memory shared by all the CPU
// cores. Addresses are always resolved modulo the size of the ROM so there is
// no such thing as an out of range read. An undersized image is therefore
// mirrored across the address space of the core that reads it.
package rom

import (
	"errors"
	"math/bits"
)

// ErrInvalidROM is returned by New() when the ROM data is empty.
var ErrInvalidROM = errors.New("rom: invalid rom")

// ROM is an immutable byte buffer with wraparound addressing.
type ROM struct {
	data []uint8
}

// New is the preferred method of initialisation for the ROM type. The data is
// copied and so the caller is free to reuse the slice.
func New(data []uint8) (*ROM, error) {
	if len(data) == 0 {
		return nil, ErrInvalidROM
	}
	r := &ROM{
		data: make([]uint8, len(data)),
	}
	copy(r.data, data)
	return r, nil
}

// resolve address to an index in the data slice. negative addresses wrap too.
func (r *ROM) resolve(address int) int {
	i := address % len(r.data)
	if i < 0 {
		i += len(r.data)
	}
	return i
}

// Size returns the number of bytes in the ROM.
func (r *ROM) Size() int {
	return len(r.data)
}

// Mask returns a bit mask large enough to cover every address in the ROM.
func (r *ROM) Mask() int {
	return (1 << bits.Len(uint(len(r.data)-1))) - 1
}

// Byte returns the byte at address.
func (r *ROM) Byte(address int) uint8 {
	return r.data[r.resolve(address)]
}

// Word returns the big-endian word at address.
func (r *ROM) Word(address int) uint16 {
	return uint16(r.Byte(address))<<8 | uint16(r.Byte(address+1))
}

// WordLSB returns the little-endian word at address.
func (r *ROM) WordLSB(address int) uint16 {
	return uint16(r.Byte(address)) | uint16(r.Byte(address+1))<<8
}

// Bytes packs count bytes starting at address into a single value. The first
// byte is the most significant. A count greater than four will lose the
// earliest bytes.
func (r *ROM) Bytes(address int, count int) uint32 {
	var v uint32
	for i := 0; i < count; i++ {
		v = v<<8 | uint32(r.Byte(address+i))
	}
	return v
}

// PatchByte patches the ROM. Out of range addresses are ignored. Only useful
// for testing.
func (r *ROM) PatchByte(address int, v uint8) {
	if address >= 0 && address < len(r.data) {
		r.data[address] = v
	}
}

// PatchWord patches the ROM with a big-endian word. Out of range addresses are
// ignored. Only useful for testing.
func (r *ROM) PatchWord(address int, v uint16) {
	if address >= 0 && address < len(r.data)-1 {
		r.data[address] = uint8(v >> 8)
		r.data[address+1] = uint8(v)
	}
}
