package bus

import "github.com/jsalvi/nitrobus/internal/proc"

// wramModes tabulates the four WRAMCNT low-bit selections as
// (offset9, size9, offset7, size7) in bytes.
var wramModes = [4][4]uint32{
	{0x0000, 0x8000, 0x0000, 0x0000},
	{0x4000, 0x4000, 0x0000, 0x4000},
	{0x0000, 0x4000, 0x4000, 0x4000},
	{0x0000, 0x0000, 0x0000, 0x8000},
}

func (b *Bus) recomputeWRAM(value uint8) {
	m := wramModes[value&0x03]
	b.wramOffset9, b.wramSize9 = m[0], m[1]
	b.wramOffset7, b.wramSize7 = m[2], m[3]
}

// resolve returns the backing slice and in-slice offset a (processor,
// address) pair maps to, following the strict priority chain from §4.1.
// ok is false when no bank claims the address (the I/O window is handled
// separately by the caller before resolve is reached).
func (b *Bus) resolve(p proc.ID, address uint32, forRead bool) (bank []byte, offset uint32, ok bool) {
	if p == proc.Main {
		return b.resolveMain(address, forRead)
	}
	return b.resolveAux(address, forRead)
}

func (b *Bus) resolveMain(address uint32, forRead bool) ([]byte, uint32, bool) {
	if b.itcmEnable && address < b.itcmSize {
		return b.banks.ITCM[:], address % uint32(len(b.banks.ITCM)), true
	}
	if b.dtcmEnable && address >= b.dtcmBase && address < b.dtcmBase+b.dtcmSize {
		return b.banks.DTCM[:], (address - b.dtcmBase) % uint32(len(b.banks.DTCM)), true
	}
	if address >= 0x02000000 && address < 0x03000000 {
		return b.banks.MainRAM[:], address % uint32(len(b.banks.MainRAM)), true
	}
	if address >= 0x03000000 && address < 0x04000000 && b.wramSize9 != 0 {
		return b.banks.SharedWRAM[:], b.wramOffset9 + address%b.wramSize9, true
	}
	if address >= 0x05000000 && address < 0x06000000 {
		return b.banks.Palette[:], address % uint32(len(b.banks.Palette)), true
	}
	if address >= 0x06000000 && address < 0x07000000 {
		return b.vramMap(address)
	}
	if address >= 0x07000000 && address < 0x08000000 {
		return b.banks.OAM[:], address % uint32(len(b.banks.OAM)), true
	}
	if forRead && address >= 0xFFFF0000 && address < 0xFFFF0000+uint32(len(b.banks.Firmware9)) {
		return b.banks.Firmware9[:], address - 0xFFFF0000, true
	}
	return nil, 0, false
}

// resolveAux implements the aux priority chain, including the Open
// Question decision: when wramSize7 is zero, the whole [0x03000000,
// 0x03800000) span still falls through to the unconditional aux work RAM
// branch below it rather than being treated as unmapped, matching
// original_source's branch order.
func (b *Bus) resolveAux(address uint32, forRead bool) ([]byte, uint32, bool) {
	if forRead && address < uint32(len(b.banks.Firmware7)) {
		return b.banks.Firmware7[:], address, true
	}
	if address >= 0x02000000 && address < 0x03000000 {
		return b.banks.MainRAM[:], address % uint32(len(b.banks.MainRAM)), true
	}
	if address >= 0x03000000 && address < 0x03800000 && b.wramSize7 != 0 {
		return b.banks.SharedWRAM[:], b.wramOffset7 + address%b.wramSize7, true
	}
	if address >= 0x03000000 && address < 0x04000000 {
		return b.banks.AuxWRAM[:], address % uint32(len(b.banks.AuxWRAM)), true
	}
	return nil, 0, false
}
