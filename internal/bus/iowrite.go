package bus

import (
	"github.com/jsalvi/nitrobus/internal/diag"
	"github.com/jsalvi/nitrobus/internal/ioreg"
	"github.com/jsalvi/nitrobus/internal/proc"
)

// ioWrite masks the whole write width into the processor's register file
// atomically, mirroring original_source applying the wide masked-write
// formula before its per-byte side-effect loop runs. It then walks the
// touched bytes in ascending offset order applying side effects against
// the now-fully-committed data. An offset whose side effect is
// IPCFIFOSEND halts processing of the remaining bytes of this same write
// (spec.md §9's load-bearing early return).
func (b *Bus) ioWrite(p proc.ID, address uint32, value uint32, width int) {
	ioAddr := address - ioWindowStart
	f := b.io[p]
	if int(ioAddr) >= ioreg.Size || !f.Exists(uint16(ioAddr)) {
		diag.UnknownIO(p, address, true)
		return
	}

	old := make([]byte, width)
	for i := 0; i < width; i++ {
		off := uint16(int(ioAddr) + i)
		rawByte := uint8(value >> (8 * i))
		old[i] = f.Data[off]
		wm := f.WriteMask[off]
		f.Data[off] = (old[i] &^ wm) | (rawByte & wm)
	}

	for i := 0; i < width; i++ {
		off := uint16(int(ioAddr) + i)
		rawByte := uint8(value >> (8 * i))
		if b.applyIOByte(p, off, old[i], rawByte) {
			return
		}
	}
}

// applyIOByte dispatches the side effect for one already-committed byte
// offset. old is this byte's value before the enclosing write; masked is
// the byte ioWrite already stored via the normal write-mask formula.
// Side-effect handlers that need to override the plain masked commit
// (DMA/timer control "commit the new bit 7" semantics, IPCFIFOCNT,
// ROMCTRL's sticky bit, IRF acknowledge, POSTFLG's sticky bit 0)
// overwrite f.Data[off] again after the fact; VRAMCNT keeps the masked
// store but recomputes routing from the raw byte. It returns true when the
// caller must stop processing the remaining bytes of the enclosing write
// (IPCFIFOSEND).
func (b *Bus) applyIOByte(p proc.ID, off uint16, old, rawByte uint8) (stop bool) {
	f := b.io[p]
	masked := f.Data[off]
	// The write masks exclude the DMA/timer enable bit 7; those handlers
	// see and commit the written bit 7 instead.
	withBit7 := (masked &^ 0x80) | (rawByte & 0x80)

	switch off {
	case 0x0BB:
		f.Data[off] = b.onDMAControlHigh(p, 0, old, withBit7)
	case 0x0C7:
		f.Data[off] = b.onDMAControlHigh(p, 1, old, withBit7)
	case 0x0D3:
		f.Data[off] = b.onDMAControlHigh(p, 2, old, withBit7)
	case 0x0DF:
		f.Data[off] = b.onDMAControlHigh(p, 3, old, withBit7)

	case 0x100, 0x104, 0x108, 0x10C:
		ch := int(off-0x100) / 4
		f.Data[off] = masked
		b.onTimerReloadByte(p, ch, 0, rawByte)
	case 0x101, 0x105, 0x109, 0x10D:
		ch := int(off-0x101) / 4
		f.Data[off] = masked
		b.onTimerReloadByte(p, ch, 1, rawByte)
	case 0x102, 0x106, 0x10A, 0x10E:
		ch := int(off-0x102) / 4
		f.Data[off] = b.onTimerControlHigh(p, ch, old, withBit7)

	case 0x138:
		f.Data[off] = masked
		if rtc := b.collab.RTC[p]; rtc != nil {
			rtc.Write(f.Data[off])
		}

	case 0x181:
		f.Data[off] = masked
		b.onIPCSyncWrite(p, rawByte)

	case 0x184:
		f.Data[off] = b.onIPCFIFOCntLow(p, old, rawByte)
	case 0x185:
		f.Data[off] = b.onIPCFIFOCntHigh(p, old, rawByte)

	case 0x188, 0x189, 0x18A, 0x18B:
		f.Data[off] = masked
		b.onIPCFIFOSend(p, f.Read32(0x188))
		return true

	case 0x1A2:
		f.Data[off] = masked
		if spi := b.collab.SPI[p]; spi != nil {
			spi.Write(rawByte)
		}

	case 0x1A7:
		f.Data[off] = b.onROMCtrlByte3(p, old, rawByte)

	case 0x1C2:
		f.Data[off] = masked
		if spi := b.collab.SPI[p]; spi != nil {
			spi.Write(rawByte)
		}

	case 0x214, 0x215, 0x216, 0x217:
		f.Data[off] = old &^ rawByte

	case 0x240:
		f.Data[off] = masked
		b.recomputeVRAM(0, rawByte)
	case 0x241:
		// VRAMCNT_B on main; WRAMSTAT (read-only, no side effect) on
		// aux, which doesn't host VRAMCNT_B at all.
		f.Data[off] = masked
		if p == proc.Main {
			b.recomputeVRAM(1, rawByte)
		}
	case 0x242:
		f.Data[off] = masked
		b.recomputeVRAM(2, rawByte)
	case 0x243:
		f.Data[off] = masked
		b.recomputeVRAM(3, rawByte)
	case 0x244:
		f.Data[off] = masked
		b.recomputeVRAM(4, rawByte)
	case 0x245:
		f.Data[off] = masked
		b.recomputeVRAM(5, rawByte)
	case 0x246:
		f.Data[off] = masked
		b.recomputeVRAM(6, rawByte)
	case 0x247:
		f.Data[off] = masked
		b.recomputeWRAM(masked)
	case 0x248:
		f.Data[off] = masked
		b.recomputeVRAM(7, rawByte)
	case 0x249:
		f.Data[off] = masked
		b.recomputeVRAM(8, rawByte)

	case 0x280, 0x290, 0x298:
		f.Data[off] = masked
		b.recomputeDiv()
	case 0x2B0, 0x2B8:
		f.Data[off] = masked
		b.recomputeSqrt()

	case 0x300:
		f.Data[off] = masked | (rawByte & 0x01)

	case 0x301:
		f.Data[off] = masked
		if (rawByte&0xC0)>>6 == 2 {
			b.halted[p] = true
		}

	default:
		f.Data[off] = masked
	}
	return false
}

// onROMCtrlByte3 implements ROMCTRL byte 3: the reset-release bit (5) is
// sticky, and the transfer-start bit (7) triggers a cartridge transfer
// only on its 0→1 transition.
func (b *Bus) onROMCtrlByte3(p proc.ID, old, rawByte uint8) uint8 {
	withSticky := old | (rawByte & 0x20)
	startBit := withSticky & 0x80
	committed := (withSticky &^ 0x80) | (rawByte & 0x80)
	if startBit == 0 && rawByte&0x80 != 0 {
		if c := b.collab.Cartridge[p]; c != nil {
			c.StartTransfer()
		}
	}
	return committed
}
