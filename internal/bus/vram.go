package bus

import "github.com/jsalvi/nitrobus/internal/diag"

// plainBase is the fixed address at which bank i appears when its VRAMCNT
// selects MST 0 ("plain ARM9 access"), recovered from original_source
// since spec.md only describes the behaviour narratively.
var plainBase = [9]uint32{
	0x06800000, // A
	0x06820000, // B
	0x06840000, // C
	0x06860000, // D
	0x06880000, // E
	0x06890000, // F
	0x06894000, // G
	0x06898000, // H
	0x068A0000, // I
}

// vramBankSize is the addressable window size used by vramMap's range
// test for each bank — the full physical bank size in every case.
var vramBankSize = [9]uint32{0x20000, 0x20000, 0x20000, 0x20000, 0x10000, 0x4000, 0x4000, 0x8000, 0x4000}

// extPaletteSlot records which VRAM bank (0=A..8=I) an extended-palette
// slot currently resolves into and the slot's offset within that bank;
// original_source stores these as pointers straight into the winning
// bank's array, which Go's slice-indexed banks can't carry directly.
type extPaletteSlot struct {
	bank   int
	offset uint32
}

// recomputeVRAM applies one VRAMCNT byte write's routing effect. bank is
// the index 0..8 (A..I); value is the raw byte written to VRAMCNT_<bank>
// (the register's write mask is 0, so the stored byte does not carry it).
func (b *Bus) recomputeVRAM(bank int, value uint8) {
	b.vramBase[bank] = 0
	if value&0x80 == 0 {
		return
	}
	ofs := (value & 0x18) >> 3
	switch bank {
	case 0, 1: // A, B
		switch value & 0x03 {
		case 0:
			b.vramBase[bank] = plainBase[bank]
		case 1:
			b.vramBase[bank] = 0x06000000 + 0x20000*uint32(ofs)
		case 2:
			b.vramBase[bank] = 0x06400000 + 0x20000*uint32(ofs&1)
		default:
			diag.UnsupportedVRAMMST('A'+byte(bank), value&0x03)
		}
	case 2: // C
		switch value & 0x07 {
		case 0:
			b.vramBase[bank] = plainBase[bank]
		case 1:
			b.vramBase[bank] = 0x06000000 + 0x20000*uint32(ofs)
		case 4:
			b.vramBase[bank] = 0x06200000
		default:
			diag.UnsupportedVRAMMST('C', value&0x07)
		}
	case 3: // D
		switch value & 0x07 {
		case 0:
			b.vramBase[bank] = plainBase[bank]
		case 1:
			b.vramBase[bank] = 0x06000000 + 0x20000*uint32(ofs)
		case 4:
			b.vramBase[bank] = 0x06600000
		default:
			diag.UnsupportedVRAMMST('D', value&0x07)
		}
	case 4: // E
		switch value & 0x07 {
		case 0:
			b.vramBase[bank] = plainBase[bank]
		case 1:
			b.vramBase[bank] = 0x06000000
		case 2:
			b.vramBase[bank] = 0x06400000
		case 4:
			for i := 0; i < 4; i++ {
				b.extPalettesA[i] = extPaletteSlot{bank: 4, offset: uint32(i * 0x2000)}
			}
		default:
			diag.UnsupportedVRAMMST('E', value&0x07)
		}
	case 5: // F
		switch value & 0x07 {
		case 0:
			b.vramBase[bank] = plainBase[bank]
		case 1:
			b.vramBase[bank] = 0x06000000 + 0x8000*uint32(ofs&2) + 0x4000*uint32(ofs&1)
		case 2:
			b.vramBase[bank] = 0x06400000 + 0x8000*uint32(ofs&2) + 0x4000*uint32(ofs&1)
		case 4:
			for i := 0; i < 2; i++ {
				b.extPalettesA[int(ofs&1)*2+i] = extPaletteSlot{bank: 5, offset: uint32(i * 0x2000)}
			}
		case 5:
			b.extPalettesA[4] = extPaletteSlot{bank: 5, offset: 0}
		default:
			diag.UnsupportedVRAMMST('F', value&0x07)
		}
	case 6: // G
		switch value & 0x07 {
		case 0:
			b.vramBase[bank] = plainBase[bank]
		case 1:
			b.vramBase[bank] = 0x06000000 + 0x8000*uint32(ofs&2) + 0x4000*uint32(ofs&1)
		case 2:
			b.vramBase[bank] = 0x06400000 + 0x8000*uint32(ofs&2) + 0x4000*uint32(ofs&1)
		case 4:
			for i := 0; i < 2; i++ {
				b.extPalettesA[int(ofs&1)*2+i] = extPaletteSlot{bank: 6, offset: uint32(i * 0x2000)}
			}
		case 5:
			b.extPalettesA[4] = extPaletteSlot{bank: 6, offset: 0}
		default:
			diag.UnsupportedVRAMMST('G', value&0x07)
		}
	case 7: // H
		switch value & 0x03 {
		case 0:
			b.vramBase[bank] = plainBase[bank]
		case 1:
			b.vramBase[bank] = 0x06200000
		case 2:
			for i := 0; i < 4; i++ {
				b.extPalettesB[i] = extPaletteSlot{bank: 7, offset: uint32(i * 0x2000)}
			}
		default:
			diag.UnsupportedVRAMMST('H', value&0x03)
		}
	case 8: // I
		switch value & 0x03 {
		case 0:
			b.vramBase[bank] = plainBase[bank]
		case 1:
			b.vramBase[bank] = 0x06208000
		case 2:
			b.vramBase[bank] = 0x06600000
		case 3:
			b.extPalettesB[4] = extPaletteSlot{bank: 8, offset: 0}
		default:
			diag.UnsupportedVRAMMST('I', value&0x03)
		}
	}
}

// vramMap tests banks A..I in order and returns the bank slice and
// in-bank offset for address, or ok=false if no enabled bank claims it.
func (b *Bus) vramMap(address uint32) (bank []byte, offset uint32, ok bool) {
	for i := 0; i < 9; i++ {
		base := b.vramBase[i]
		if base == 0 {
			continue
		}
		size := vramBankSize[i]
		if address >= base && address < base+size {
			return b.banks.VRAM[i], address - base, true
		}
	}
	return nil, 0, false
}
