package bus

import "github.com/jsalvi/nitrobus/internal/proc"

// VRAMBase returns the current routed base address for bank i (0=A..8=I),
// or 0 if the bank is disabled.
func (b *Bus) VRAMBase(i int) uint32 { return b.vramBase[i] }

// WRAMWindow returns the shared work RAM offset/size currently mapped
// into the given processor's view.
func (b *Bus) WRAMWindow(p proc.ID) (offset, size uint32) {
	if p == proc.Main {
		return b.wramOffset9, b.wramSize9
	}
	return b.wramOffset7, b.wramSize7
}

// IORegisterFile exposes the raw byte/mask arrays for a processor, for an
// external save-state writer (out of scope here) to serialize without
// package-internal access.
func (b *Bus) IORegisterFile(p proc.ID) (data, existsMask, writeMask []byte) {
	f := b.io[p]
	return f.Data[:], f.ExistsMask[:], f.WriteMask[:]
}

// MainRAMBytes, SharedWRAMBytes, AuxWRAMBytes, PaletteBytes, OAMBytes and
// VRAMBankBytes expose the raw bank contents for the same reason.
func (b *Bus) MainRAMBytes() []byte    { return b.banks.MainRAM[:] }
func (b *Bus) SharedWRAMBytes() []byte { return b.banks.SharedWRAM[:] }
func (b *Bus) AuxWRAMBytes() []byte    { return b.banks.AuxWRAM[:] }
func (b *Bus) PaletteBytes() []byte    { return b.banks.Palette[:] }
func (b *Bus) OAMBytes() []byte        { return b.banks.OAM[:] }
func (b *Bus) VRAMBankBytes(i int) []byte { return b.banks.VRAM[i] }
