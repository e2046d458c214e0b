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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherbrick/hardware/cpu/registers"
	"github.com/jetsetilly/gopherbrick/test"
)

func TestRegister(t *testing.T) {
	r8 := registers.NewRegister(0, "A")
	test.ExpectEquality(t, r8.String(), "A=0x00")

	r8.Load(0x7f)
	r8.Increment()
	test.ExpectEquality(t, r8.Value(), uint8(0x80))
	test.ExpectEquality(t, r8.String(), "A=0x80")

	r8.Load(0)
	r8.Decrement()
	test.ExpectEquality(t, r8.Value(), uint8(0xff))

	r8.AND(0x0f)
	test.ExpectEquality(t, r8.Value(), uint8(0x0f))
	r8.ORA(0xf0)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))
	r8.EOR(0xaa)
	test.ExpectEquality(t, r8.Value(), uint8(0x55))
}

func TestRotate(t *testing.T) {
	r8 := registers.NewRegister(0x81, "A")

	carry := r8.ROL(false)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, r8.Value(), uint8(0x02))

	carry = r8.ROL(true)
	test.ExpectFailure(t, carry)
	test.ExpectEquality(t, r8.Value(), uint8(0x05))

	carry = r8.ROR(false)
	test.ExpectSuccess(t, carry)
	test.ExpectEquality(t, r8.Value(), uint8(0x02))

	carry = r8.ROR(true)
	test.ExpectFailure(t, carry)
	test.ExpectEquality(t, r8.Value(), uint8(0x81))
}

func TestBinaryArithmetic(t *testing.T) {
	var sr registers.StatusRegister
	r8 := registers.NewRegister(0x50, "A")

	// signed overflow
	r8.AddWithCarry(0x50, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0xa0))
	test.ExpectSuccess(t, sr.Overflow)
	test.ExpectSuccess(t, sr.Sign)
	test.ExpectFailure(t, sr.Carry)
	test.ExpectFailure(t, sr.Zero)

	// unsigned overflow
	r8.Load(0xff)
	r8.AddWithCarry(0x01, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
	test.ExpectFailure(t, sr.Overflow)
	test.ExpectSuccess(t, sr.Carry)
	test.ExpectSuccess(t, sr.Zero)

	// carry in
	r8.Load(0x01)
	r8.AddWithCarry(0x01, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0x03))
	test.ExpectFailure(t, sr.Carry)

	// subtraction with carry set subtracts the value only
	sr.Carry = true
	r8.Load(0x0a)
	r8.SubtractWithCarry(0x01, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0x09))
	test.ExpectSuccess(t, sr.Carry)

	// subtraction with carry clear subtracts another one
	sr.Carry = false
	r8.SubtractWithCarry(0x01, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0x07))
	test.ExpectSuccess(t, sr.Carry)

	// borrow
	sr.Carry = true
	r8.Load(0x00)
	r8.SubtractWithCarry(0x01, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))
	test.ExpectFailure(t, sr.Carry)
	test.ExpectSuccess(t, sr.Sign)
}

func TestDecimalArithmetic(t *testing.T) {
	var sr registers.StatusRegister
	sr.DecimalMode = true
	r8 := registers.NewRegister(0x09, "A")

	r8.AddWithCarry(0x01, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0x10))
	test.ExpectFailure(t, sr.Carry)
	test.ExpectFailure(t, sr.Sign)

	// the sign flag reflects the value before the tens correction
	r8.Load(0x99)
	r8.AddWithCarry(0x01, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0x00))
	test.ExpectSuccess(t, sr.Carry)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectSuccess(t, sr.Sign)
	test.ExpectFailure(t, sr.Overflow)

	sr.Carry = true
	r8.Load(0x10)
	r8.SubtractWithCarry(0x01, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0x09))
	test.ExpectSuccess(t, sr.Carry)

	sr.Carry = true
	r8.Load(0x00)
	r8.SubtractWithCarry(0x01, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0x99))
	test.ExpectFailure(t, sr.Carry)
	test.ExpectSuccess(t, sr.Sign)
	test.ExpectFailure(t, sr.Zero)
}

func TestCompare(t *testing.T) {
	var sr registers.StatusRegister
	r8 := registers.NewRegister(0x10, "X")

	r8.Compare(0x10, &sr)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectSuccess(t, sr.Carry)
	test.ExpectFailure(t, sr.Sign)

	r8.Compare(0x11, &sr)
	test.ExpectFailure(t, sr.Zero)
	test.ExpectFailure(t, sr.Carry)
	test.ExpectSuccess(t, sr.Sign)

	test.ExpectEquality(t, r8.Value(), uint8(0x10))
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), uint8(0x04))
	test.ExpectEquality(t, sr.String(), "sv-bdIzc")

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.Value(), uint8(0xdf))
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")

	sr.SetNZ(0)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectFailure(t, sr.Sign)
	sr.SetNZ(0x80)
	test.ExpectFailure(t, sr.Zero)
	test.ExpectSuccess(t, sr.Sign)
}

func TestOverflowPacking(t *testing.T) {
	var sr registers.StatusRegister
	r8 := registers.NewRegister(0x90, "A")

	// 0x90 + 0x90 overflows into a positive result
	r8.AddWithCarry(0x90, &sr)
	test.ExpectEquality(t, r8.Value(), uint8(0x20))
	test.ExpectSuccess(t, sr.Overflow)
	test.ExpectFailure(t, sr.Sign)

	// only bit 6 records the overflow in the packed value
	test.ExpectEquality(t, sr.Value(), uint8(0x41))
}
