package ioreg

import "testing"

func TestWriteMaskFormula(t *testing.T) {
	f := New()
	f.Data[DISPCNT] = 0xFF
	f.ExistsMask[DISPCNT] = 0xFF
	f.WriteMask[DISPCNT] = 0x0F

	f.Write8(DISPCNT, 0x55)
	got := f.Read8(DISPCNT)
	want := ((0xFF &^ 0x0F) | (0x55 & 0x0F)) & 0xFF
	if got != uint8(want) {
		t.Fatalf("Write8/Read8 = %#x, want %#x", got, want)
	}
}

func TestReadOnlyRegisterIgnoresWrites(t *testing.T) {
	f := New()
	f.Data[VCOUNT] = 42
	f.Write16(VCOUNT, 0xBEEF)
	if got := f.Read16(VCOUNT); got != 42 {
		t.Fatalf("VCOUNT changed by write: got %d, want 42", got)
	}
}

func TestIRFAcknowledge(t *testing.T) {
	f := New()
	f.Data[IRF] = 0xFF
	f.Data[IRF+1] = 0xFF
	f.Data[IRF+2] = 0xFF
	f.Data[IRF+3] = 0xFF

	ack := uint32(0x00010001)
	cur := f.Read32(IRF)
	f.Data[IRF] = byte(cur) &^ byte(ack)
	for i := 1; i < 4; i++ {
		b := byte(ack >> (8 * i))
		f.Data[IRF+uint16(i)] &^= b
	}
	got := f.Read32(IRF)
	// Reads are masked by IRF's exists mask (0x003F3F7F on main).
	want := (uint32(0xFFFFFFFF) &^ ack) & 0x003F3F7F
	if got != want {
		t.Fatalf("IRF after ack = %#x, want %#x", got, want)
	}
}

func TestUnhostedOffsetDoesNotExist(t *testing.T) {
	f := New()
	if f.Exists(0x050) {
		t.Fatalf("offset 0x050 should not be hosted by any register")
	}
}

func TestLittleEndian32(t *testing.T) {
	f := New()
	f.Write32(DIVNUMER, 0x01020304)
	if got := f.Data[DIVNUMER]; got != 0x04 {
		t.Fatalf("low byte = %#x, want 0x04", got)
	}
	if got := f.Data[DIVNUMER+3]; got != 0x01 {
		t.Fatalf("high byte = %#x, want 0x01", got)
	}
	if got := f.Read32(DIVNUMER); got != 0x01020304 {
		t.Fatalf("Read32 = %#x, want 0x01020304", got)
	}
}
