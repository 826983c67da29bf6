// Package cartridge implements NDS cartridge header parsing and a
// sequential word transfer over a flat ROM image; it does not load or
// emulate save memory (SRAM). Full cartridge
// emulation (encryption, command state machine, save chip protocols)
// remains out of scope and is left to the CartridgeDevice collaborator
// the bus talks to.
package cartridge

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// HeaderSize is the fixed length of the NDS cartridge header.
const HeaderSize = 0x170

// Header holds the fields of the 0x170-byte NDS cartridge header needed
// to size and locate the ARM9/ARM7 executable regions.
type Header struct {
	// Bytes 0x00-0x0B: game title, NUL-padded ASCII.
	title string
	// Bytes 0x0C-0x0F: four-character game code.
	gameCode string
	// Bytes 0x10-0x11: maker code.
	makerCode string

	arm9RomOffset  uint32
	arm9EntryAddr  uint32
	arm9RamAddr    uint32
	arm9Size       uint32
	arm7RomOffset  uint32
	arm7EntryAddr  uint32
	arm7RamAddr    uint32
	arm7Size       uint32

	// deviceCapacity is ROM size as 128KiB << value.
	deviceCapacity uint8
}

func parseHeader(b []byte) *Header {
	return &Header{
		title:          strings.TrimRight(string(b[0x00:0x0C]), "\x00"),
		gameCode:       string(b[0x0C:0x10]),
		makerCode:      string(b[0x10:0x12]),
		arm9RomOffset:  binary.LittleEndian.Uint32(b[0x20:0x24]),
		arm9EntryAddr:  binary.LittleEndian.Uint32(b[0x24:0x28]),
		arm9RamAddr:    binary.LittleEndian.Uint32(b[0x28:0x2C]),
		arm9Size:       binary.LittleEndian.Uint32(b[0x2C:0x30]),
		arm7RomOffset:  binary.LittleEndian.Uint32(b[0x30:0x34]),
		arm7EntryAddr:  binary.LittleEndian.Uint32(b[0x34:0x38]),
		arm7RamAddr:    binary.LittleEndian.Uint32(b[0x38:0x3C]),
		arm7Size:       binary.LittleEndian.Uint32(b[0x3C:0x40]),
		deviceCapacity: b[0x14],
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s (%s/%s) arm9[off=%#x size=%d] arm7[off=%#x size=%d]",
		h.title, h.gameCode, h.makerCode, h.arm9RomOffset, h.arm9Size, h.arm7RomOffset, h.arm7Size)
}

// ROMSizeBytes returns the cartridge capacity the header declares:
// 128 KiB left-shifted by deviceCapacity.
func (h *Header) ROMSizeBytes() uint32 {
	return 0x20000 << h.deviceCapacity
}

func (h *Header) ARM9() (romOffset, entryAddr, ramAddr, size uint32) {
	return h.arm9RomOffset, h.arm9EntryAddr, h.arm9RamAddr, h.arm9Size
}

func (h *Header) ARM7() (romOffset, entryAddr, ramAddr, size uint32) {
	return h.arm7RomOffset, h.arm7EntryAddr, h.arm7RamAddr, h.arm7Size
}

func (h *Header) GameCode() string { return h.gameCode }
func (h *Header) Title() string    { return h.title }
