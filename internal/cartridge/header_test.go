package cartridge

import (
	"encoding/binary"
	"testing"
)

func fakeHeaderBytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b[0x00:0x0C], "NITROBUS")
	copy(b[0x0C:0x10], "ABCJ")
	copy(b[0x10:0x12], "01")
	b[0x14] = 2 // deviceCapacity -> 0x20000 << 2 = 0x80000
	binary.LittleEndian.PutUint32(b[0x20:0x24], 0x4000)
	binary.LittleEndian.PutUint32(b[0x24:0x28], 0x02000000)
	binary.LittleEndian.PutUint32(b[0x28:0x2C], 0x02000000)
	binary.LittleEndian.PutUint32(b[0x2C:0x30], 0x10000)
	binary.LittleEndian.PutUint32(b[0x30:0x34], 0x8000)
	binary.LittleEndian.PutUint32(b[0x34:0x38], 0x02380000)
	binary.LittleEndian.PutUint32(b[0x38:0x3C], 0x02380000)
	binary.LittleEndian.PutUint32(b[0x3C:0x40], 0x8000)
	return b
}

func TestParseHeaderFields(t *testing.T) {
	h := parseHeader(fakeHeaderBytes())

	if got := h.Title(); got != "NITROBUS" {
		t.Fatalf("Title() = %q, want %q", got, "NITROBUS")
	}
	if got := h.GameCode(); got != "ABCJ" {
		t.Fatalf("GameCode() = %q, want %q", got, "ABCJ")
	}
	if got := h.ROMSizeBytes(); got != 0x80000 {
		t.Fatalf("ROMSizeBytes() = %#x, want 0x80000", got)
	}

	romOff, entry, ram, size := h.ARM9()
	if romOff != 0x4000 || entry != 0x02000000 || ram != 0x02000000 || size != 0x10000 {
		t.Fatalf("ARM9() = (%#x,%#x,%#x,%#x), want (0x4000,0x02000000,0x02000000,0x10000)", romOff, entry, ram, size)
	}

	romOff, entry, ram, size = h.ARM7()
	if romOff != 0x8000 || entry != 0x02380000 || ram != 0x02380000 || size != 0x8000 {
		t.Fatalf("ARM7() = (%#x,%#x,%#x,%#x), want (0x8000,0x02380000,0x02380000,0x8000)", romOff, entry, ram, size)
	}
}
