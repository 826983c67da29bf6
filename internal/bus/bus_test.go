package bus

import (
	"testing"

	"github.com/jsalvi/nitrobus/internal/proc"
)

func TestWRAMCNTMode1RoutesMainAndAux(t *testing.T) {
	b := New(Collaborators{})

	b.Write8(proc.Main, 0x04000247, 0x01)

	if off, sz := b.WRAMWindow(proc.Aux); off != 0x0000 || sz != 0x4000 {
		t.Fatalf("aux WRAM window = (%#x,%#x), want (0,0x4000)", off, sz)
	}
	if off, sz := b.WRAMWindow(proc.Main); off != 0x4000 || sz != 0x4000 {
		t.Fatalf("main WRAM window = (%#x,%#x), want (0x4000,0x4000)", off, sz)
	}

	b.Write8(proc.Aux, 0x03003FFF, 0xAB)
	if got := b.Read8(proc.Main, 0x03004000); got != 0xAB {
		t.Fatalf("main read of aux-written byte = %#x, want 0xAB", got)
	}
}

func TestAllWRAMCNTModes(t *testing.T) {
	cases := []struct {
		mode             uint8
		off9, sz9, off7, sz7 uint32
	}{
		{0, 0x0000, 0x8000, 0x0000, 0x0000},
		{1, 0x4000, 0x4000, 0x0000, 0x4000},
		{2, 0x0000, 0x4000, 0x4000, 0x4000},
		{3, 0x0000, 0x0000, 0x0000, 0x8000},
	}
	for _, c := range cases {
		b := New(Collaborators{})
		b.Write8(proc.Main, 0x04000247, c.mode)
		if off, sz := b.WRAMWindow(proc.Main); off != c.off9 || sz != c.sz9 {
			t.Errorf("mode %d: main window = (%#x,%#x), want (%#x,%#x)", c.mode, off, sz, c.off9, c.sz9)
		}
		if off, sz := b.WRAMWindow(proc.Aux); off != c.off7 || sz != c.sz7 {
			t.Errorf("mode %d: aux window = (%#x,%#x), want (%#x,%#x)", c.mode, off, sz, c.off7, c.sz7)
		}
	}
}

func TestVRAMCNTAEnableAndDisable(t *testing.T) {
	b := New(Collaborators{})

	b.Write8(proc.Main, 0x04000240, 0x81)
	if got := b.VRAMBase(0); got != 0x06000000 {
		t.Fatalf("vram_base[0] = %#x, want 0x06000000", got)
	}
	b.VRAMBankBytes(0)[0] = 0x42
	if got := b.Read8(proc.Main, 0x06000000); got != 0x42 {
		t.Fatalf("read of 0x06000000 = %#x, want 0x42", got)
	}

	b.Write8(proc.Main, 0x04000240, 0x00)
	if got := b.VRAMBase(0); got != 0 {
		t.Fatalf("vram_base[0] after disable = %#x, want 0", got)
	}
	if got := b.Read8(proc.Main, 0x06000000); got != 0 {
		t.Fatalf("read of disabled bank = %#x, want 0", got)
	}
}

func TestVRAMBankCEngineBRouting(t *testing.T) {
	b := New(Collaborators{})
	b.Write8(proc.Main, 0x04000242, 0x84) // enable, MST=4
	if got := b.VRAMBase(2); got != 0x06200000 {
		t.Fatalf("vram_base[C] = %#x, want 0x06200000", got)
	}
}

func TestVRAMBankDEngineBRouting(t *testing.T) {
	b := New(Collaborators{})
	b.Write8(proc.Main, 0x04000243, 0x84)
	if got := b.VRAMBase(3); got != 0x06600000 {
		t.Fatalf("vram_base[D] = %#x, want 0x06600000", got)
	}
}

func TestVRAMBankEExtPaletteDoesNotSetBase(t *testing.T) {
	b := New(Collaborators{})
	b.Write8(proc.Main, 0x04000244, 0x84) // enable, MST=4: ext palette
	if got := b.VRAMBase(4); got != 0 {
		t.Fatalf("vram_base[E] for ext-palette MST = %#x, want 0 (no plain mapping)", got)
	}
	if got := b.extPalettesA[0]; got.bank != 4 || got.offset != 0 {
		t.Fatalf("extPalettesA[0] = %+v, want {bank:4 offset:0}", got)
	}
}

func TestDivision32By32(t *testing.T) {
	b := New(Collaborators{})
	b.Write16(proc.Main, 0x04000280, 0x0000)
	b.Write32(proc.Main, 0x04000290, 7)
	b.Write32(proc.Main, 0x04000298, 2)

	if got := b.Read32(proc.Main, 0x040002A0); got != 3 {
		t.Fatalf("DIVRESULT = %d, want 3", got)
	}
	if got := b.Read32(proc.Main, 0x040002A8); got != 1 {
		t.Fatalf("DIVREMRESULT = %d, want 1", got)
	}
	if got := b.Read16(proc.Main, 0x04000280); got&(1<<14) != 0 {
		t.Fatalf("DIVCNT div-by-zero bit set unexpectedly: %#x", got)
	}
}

func TestDivisionByZeroSetsErrorBit(t *testing.T) {
	b := New(Collaborators{})
	b.Write16(proc.Main, 0x04000280, 0x0000)
	b.Write32(proc.Main, 0x04000290, 7)
	b.Write32(proc.Main, 0x04000298, 0)

	if got := b.Read16(proc.Main, 0x04000280); got&(1<<14) == 0 {
		t.Fatalf("DIVCNT div-by-zero bit not set: %#x", got)
	}
}

func TestSQRT32And64Bit(t *testing.T) {
	b := New(Collaborators{})
	b.Write16(proc.Main, 0x040002B0, 0x0000) // 32-bit mode
	b.Write32(proc.Main, 0x040002B8, 16)
	if got := b.Read32(proc.Main, 0x040002B4); got != 4 {
		t.Fatalf("32-bit sqrt(16) = %d, want 4", got)
	}

	b.Write16(proc.Main, 0x040002B0, 0x0001) // 64-bit mode
	b.Write32(proc.Main, 0x040002B8, 144)
	b.Write32(proc.Main, 0x040002BC, 0)
	if got := b.Read32(proc.Main, 0x040002B4); got != 12 {
		t.Fatalf("64-bit sqrt(144) = %d, want 12", got)
	}
}

func TestIRFAcknowledgeClearsOnlySetBits(t *testing.T) {
	b := New(Collaborators{})
	b.io[proc.Main].Data[0x214] = 0xFF
	b.Write8(proc.Main, 0x04000214, 0x05)
	if got := b.io[proc.Main].Data[0x214]; got != 0xFA {
		t.Fatalf("IRF after ack = %#x, want 0xFA", got)
	}
}

func TestIPCSyncAuxToMainRaisesIRQAndCopiesNibble(t *testing.T) {
	b := New(Collaborators{})
	b.io[proc.Main].Data[0x181] = 0x40 // main's own IPCSYNC high byte enables remote IRQ

	b.Write8(proc.Aux, 0x04000181, 0x20)

	if got := b.io[proc.Main].Data[0x180]; got != 0x00 {
		t.Fatalf("main IPCSYNC receive nibble = %#x, want 0", got)
	}
	if got := b.io[proc.Main].Data[0x216]; got&(1<<0) == 0 {
		t.Fatalf("main IRF bit 16 not raised: %#x", got)
	}
}

func TestUnmappedReadReturnsZero(t *testing.T) {
	b := New(Collaborators{})
	if got := b.Read32(proc.Main, 0x01000000); got != 0 {
		t.Fatalf("unmapped read = %#x, want 0", got)
	}
}

func TestCartridgeWindowReadsAllOnes(t *testing.T) {
	b := New(Collaborators{})
	if got := b.Read32(proc.Main, 0x08000000); got != 0xFFFFFFFF {
		t.Fatalf("cart window read = %#x, want 0xFFFFFFFF", got)
	}
}

type recordingFIFO struct {
	sent []uint32
}

func (f *recordingFIFO) Send(v uint32)  { f.sent = append(f.sent, v) }
func (f *recordingFIFO) Receive() uint32 { return 0 }

func TestFIFOSendEarlyReturnSkipsLaterBytes(t *testing.T) {
	peer := &recordingFIFO{}
	b := New(Collaborators{FIFO: [proc.Count]FIFOPeer{proc.Main: peer}})

	// A 32-bit write touching 0x188..0x18B must send exactly once, using
	// the value visible at the moment byte 0 triggers the side effect.
	b.Write32(proc.Main, 0x04000188, 0xAABBCCDD)

	if len(peer.sent) != 1 {
		t.Fatalf("FIFO sent %d times, want 1", len(peer.sent))
	}
}
