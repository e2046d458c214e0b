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

package splb20

// memory map
const (
	lcdOrigin  = 0x00
	lcdSize    = 0x40
	sfrOrigin  = 0x40
	sfrSize    = 0x40
	ramOrigin  = 0x80
	ramSize    = 0x80
	dataOrigin = 0x1000
	dataSize   = 0x800
)

// special function registers
const (
	sfrLCDCfg   = 0x70
	sfrPDIR     = 0x71
	sfrPCFG     = 0x72
	sfrPLATCH   = 0x73
	sfrLCDBias  = 0x76
	sfrIntCfg   = 0x79
	sfrSysCtrl  = 0x7a
	sfrTCPreset = 0x7b
	sfrPrescale = 0x7c
	sfrKeyscan  = 0x7e
)

// bits of INT_CFG and IREQ
const (
	int2Hz     = 0x01
	int128Hz   = 0x02
	intKey     = 0x08
	intCounter = 0x10
	intNMI     = 0x80
)

// bits of SYS_CTRL
const (
	sysCtrlLCD   = 0x04
	sysCtrlTimer = 0x10
	sysCtrl32K   = 0x20
	sysCtrlCPU   = 0x40
	sysCtrlROSC  = 0x80
)

// PCFG bits that enable the tone output
const pcfgTone = 0xc0

type memory struct {
	lcd  [lcdSize]uint8
	ram  [ramSize]uint8
	data [dataSize]uint8

	lcdCfg    uint8
	lcdBias   uint8
	pcfg      uint8
	pdir      uint8
	pullup    uint8
	platch    uint8
	sysCtrl   uint8
	intCfg    uint8
	ireq      uint8
	tc        uint8
	tcPreset  uint8
	prescaler uint8
	keyscan   uint8
}

func (m *memory) reset() {
	*m = memory{}
}

func (mc *CPU) read(addr int) uint8 {
	switch {
	case addr >= lcdOrigin && addr < lcdOrigin+lcdSize:
		return mc.mem.lcd[addr-lcdOrigin]
	case addr >= ramOrigin && addr < ramOrigin+ramSize:
		return mc.mem.ram[addr-ramOrigin]
	case addr >= dataOrigin && addr < dataOrigin+dataSize:
		return mc.mem.data[addr-dataOrigin]
	case addr >= sfrOrigin && addr < sfrOrigin+sfrSize:
		return mc.readSFR(addr)
	case addr >= mc.romOffset:
		return mc.rom.Byte(addr - mc.romOffset)
	}
	return 0
}

func (mc *CPU) readSFR(addr int) uint8 {
	switch addr {
	case sfrLCDCfg:
		return mc.mem.lcdCfg
	case sfrPDIR:
		return mc.mem.pdir
	case sfrPCFG:
		return mc.mem.pcfg
	case sfrPLATCH:
		return mc.portRead()
	case sfrLCDBias:
		return mc.mem.lcdBias
	case sfrIntCfg:
		// reading the interrupt register acknowledges all requests
		v := mc.mem.ireq | (mc.mem.intCfg & intNMI)
		mc.mem.ireq = 0
		return v
	case sfrSysCtrl:
		return mc.mem.sysCtrl
	case sfrTCPreset:
		return mc.mem.tcPreset
	case sfrPrescale:
		return mc.mem.prescaler
	case sfrKeyscan:
		return mc.mem.keyscan
	}
	return 0
}

func (mc *CPU) write(addr int, v uint8) {
	switch {
	case addr >= lcdOrigin && addr < lcdOrigin+lcdSize:
		mc.mem.lcd[addr-lcdOrigin] = v
	case addr >= ramOrigin && addr < ramOrigin+ramSize:
		mc.mem.ram[addr-ramOrigin] = v
	case addr >= dataOrigin && addr < dataOrigin+dataSize:
		mc.mem.data[addr-dataOrigin] = v
	default:
		mc.writeSFR(addr, v)
	}
}

func (mc *CPU) writeSFR(addr int, v uint8) {
	switch addr {
	case sfrLCDCfg:
		mc.mem.lcdCfg = v
	case sfrPDIR:
		mc.mem.pdir = v
	case sfrPCFG:
		mc.mem.pcfg = v
		mc.sound.SetEnable(v&pcfgTone == pcfgTone, mc.cycles)
	case sfrPLATCH:
		mc.mem.platch = v
	case sfrLCDBias:
		mc.mem.lcdBias = v
	case sfrIntCfg:
		mc.mem.intCfg = v
	case sfrSysCtrl:
		// the stop bits only take effect on a transition from zero to one
		stop := mc.mem.sysCtrl | ^v
		mc.roscEnabled = stop&sysCtrlROSC != 0
		mc.cpuEnabled = stop&sysCtrlCPU != 0
		mc.mem.sysCtrl = v
		if (!mc.roscEnabled && mc.nonCrystal) || v&sysCtrlTimer != sysCtrlTimer {
			mc.sound.SetEnable(false, mc.cycles)
		} else {
			mc.sound.SetEnable(mc.mem.pcfg&pcfgTone == pcfgTone, mc.cycles)
		}
	case sfrTCPreset:
		mc.mem.tcPreset = v
		mc.sound.SetTcDiv(float64(v), mc.cycles)
	case sfrPrescale:
		mc.mem.prescaler = v
		if mc.nonCrystal {
			mc.sound.SetClockDiv(float64(uint32(1)<<(v&0x1f)), mc.cycles)
		}
	case sfrKeyscan:
		mc.mem.keyscan = v
	}
}
