// Package bus implements the switched memory map and I/O register machine
// shared by the two processors: RAM bank ownership, address resolution,
// VRAM/WRAM routing, and the side-effectful I/O register file.
package bus

import (
	"github.com/jsalvi/nitrobus/internal/banks"
	"github.com/jsalvi/nitrobus/internal/diag"
	"github.com/jsalvi/nitrobus/internal/ioreg"
	"github.com/jsalvi/nitrobus/internal/proc"
)

// Bus owns every RAM bank and I/O register file and resolves (processor,
// address) pairs to bytes, dispatching side effects on I/O writes.
type Bus struct {
	banks *banks.Banks
	io    [proc.Count]*ioreg.File
	collab Collaborators

	// TCM configuration (main processor only).
	itcmEnable bool
	itcmSize   uint32
	dtcmEnable bool
	dtcmBase   uint32
	dtcmSize   uint32

	// WRAM routing.
	wramOffset9, wramSize9 uint32
	wramOffset7, wramSize7 uint32

	// VRAM routing.
	vramBase     [9]uint32
	extPalettesA [5]extPaletteSlot
	extPalettesB [5]extPaletteSlot

	// DMA latches, indexed [processor][channel].
	dmaSrc [proc.Count][4]uint32
	dmaDst [proc.Count][4]uint32

	// Timer reload latches, indexed [processor][channel].
	timerReload [proc.Count][4]uint16

	halted [proc.Count]bool
}

// New builds a Bus with zeroed banks and register files. collab's fields
// may be left nil; a nil collaborator is skipped without a log line,
// except that the FIFO-receive and cartridge-transfer reads log an
// unmapped read and return 0.
func New(collab Collaborators) *Bus {
	b := &Bus{
		banks:  banks.New(),
		collab: collab,
	}
	b.init()
	return b
}

func (b *Bus) init() {
	b.banks.Reset()
	b.io[proc.Main] = ioreg.New()
	b.io[proc.Aux] = ioreg.NewAux()
	b.itcmSize = uint32(len(b.banks.ITCM))
	b.dtcmSize = uint32(len(b.banks.DTCM))
}

func (b *Bus) ioFile(p proc.ID) *ioreg.File { return b.io[p] }

// LoadFirmware9/LoadFirmware7 install the read-only firmware images.
func (b *Bus) LoadFirmware9(data []byte) { b.banks.LoadFirmware9(data) }
func (b *Bus) LoadFirmware7(data []byte) { b.banks.LoadFirmware7(data) }

// SetTCM configures the main processor's instruction/data TCM windows.
func (b *Bus) SetTCM(itcmEnable bool, dtcmEnable bool, dtcmBase uint32) {
	b.itcmEnable = itcmEnable
	b.dtcmEnable = dtcmEnable
	b.dtcmBase = dtcmBase
}

// Halted reports whether HALTCNT has put a processor to sleep.
func (b *Bus) Halted(p proc.ID) bool { return b.halted[p] }

const ioWindowStart = 0x04000000
const ioWindowEnd = 0x05000000
const cartWindowStart = 0x08000000
const cartWindowEnd = 0x09000000

// Map resolves (processor, address) to a bank slice and in-bank offset,
// used by CPU instruction fetch. It does not dispatch I/O reads.
func (b *Bus) Map(p proc.ID, address uint32, forRead bool) (bank []byte, offset uint32, ok bool) {
	return b.resolve(p, address, forRead)
}

func inCartWindow(address uint32) bool {
	return address >= cartWindowStart && address < cartWindowEnd
}

func inIOWindow(address uint32) bool {
	return address >= ioWindowStart && address < ioWindowEnd
}

// Read8 reads one unsigned byte.
func (b *Bus) Read8(p proc.ID, address uint32) uint8 {
	if inCartWindow(address) {
		return 0xFF
	}
	if inIOWindow(address) {
		return uint8(b.ioRead(p, address, 1))
	}
	bank, off, ok := b.resolve(p, address, true)
	if !ok {
		diag.UnmappedRead(p, address, 1)
		return 0
	}
	return bank[off]
}

// ReadS8 reads one sign-extended byte.
func (b *Bus) ReadS8(p proc.ID, address uint32) int8 { return int8(b.Read8(p, address)) }

// Read16 reads a little-endian 16-bit value.
func (b *Bus) Read16(p proc.ID, address uint32) uint16 {
	if inCartWindow(address) {
		return 0xFFFF
	}
	if inIOWindow(address) {
		return uint16(b.ioRead(p, address, 2))
	}
	bank, off, ok := b.resolve(p, address, true)
	if !ok {
		diag.UnmappedRead(p, address, 2)
		return 0
	}
	if int(off)+1 >= len(bank) {
		return uint16(bank[off])
	}
	return uint16(bank[off]) | uint16(bank[off+1])<<8
}

// ReadS16 reads a sign-extended little-endian 16-bit value.
func (b *Bus) ReadS16(p proc.ID, address uint32) int16 { return int16(b.Read16(p, address)) }

// Read32 reads a little-endian 32-bit value.
func (b *Bus) Read32(p proc.ID, address uint32) uint32 {
	if inCartWindow(address) {
		return 0xFFFFFFFF
	}
	if inIOWindow(address) {
		return b.ioRead(p, address, 4)
	}
	bank, off, ok := b.resolve(p, address, true)
	if !ok {
		diag.UnmappedRead(p, address, 4)
		return 0
	}
	if int(off)+3 >= len(bank) {
		return uint32(b.Read16(p, address)) | uint32(b.Read16(p, address+2))<<16
	}
	return uint32(bank[off]) | uint32(bank[off+1])<<8 | uint32(bank[off+2])<<16 | uint32(bank[off+3])<<24
}

// Write8 writes one byte.
func (b *Bus) Write8(p proc.ID, address uint32, value uint8) {
	if inCartWindow(address) {
		return
	}
	if inIOWindow(address) {
		b.ioWrite(p, address, uint32(value), 1)
		return
	}
	bank, off, ok := b.resolve(p, address, false)
	if !ok {
		diag.UnmappedWrite(p, address, 1)
		return
	}
	bank[off] = value
}

// Write16 writes a little-endian 16-bit value.
func (b *Bus) Write16(p proc.ID, address uint32, value uint16) {
	if inCartWindow(address) {
		return
	}
	if inIOWindow(address) {
		b.ioWrite(p, address, uint32(value), 2)
		return
	}
	bank, off, ok := b.resolve(p, address, false)
	if !ok {
		diag.UnmappedWrite(p, address, 2)
		return
	}
	if int(off)+1 >= len(bank) {
		bank[off] = byte(value)
		return
	}
	bank[off] = byte(value)
	bank[off+1] = byte(value >> 8)
}

// Write32 writes a little-endian 32-bit value.
func (b *Bus) Write32(p proc.ID, address uint32, value uint32) {
	if inCartWindow(address) {
		return
	}
	if inIOWindow(address) {
		b.ioWrite(p, address, value, 4)
		return
	}
	bank, off, ok := b.resolve(p, address, false)
	if !ok {
		diag.UnmappedWrite(p, address, 4)
		return
	}
	if int(off)+3 >= len(bank) {
		b.Write16(p, address, uint16(value))
		b.Write16(p, address+2, uint16(value>>16))
		return
	}
	bank[off] = byte(value)
	bank[off+1] = byte(value >> 8)
	bank[off+2] = byte(value >> 16)
	bank[off+3] = byte(value >> 24)
}

// ioRead dispatches an I/O-window read, handling the two special-transfer
// addresses before falling back to the masked register file.
func (b *Bus) ioRead(p proc.ID, address uint32, width int) uint32 {
	ioAddr := address - ioWindowStart
	switch ioAddr {
	case 0x100000:
		if c := b.collab.FIFO[p]; c != nil {
			return c.Receive()
		}
		diag.UnmappedRead(p, address, width)
		return 0
	case 0x100010:
		if c := b.collab.Cartridge[p]; c != nil {
			return c.Transfer()
		}
		diag.UnmappedRead(p, address, width)
		return 0
	}

	f := b.io[p]
	off := uint16(ioAddr)
	if int(ioAddr) >= ioreg.Size || !f.Exists(off) {
		diag.UnknownIO(p, address, false)
		return 0
	}
	switch width {
	case 1:
		return uint32(f.Read8(off))
	case 2:
		return uint32(f.Read16(off))
	default:
		return f.Read32(off)
	}
}
