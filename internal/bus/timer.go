package bus

import "github.com/jsalvi/nitrobus/internal/proc"

var timerCntLOffset = [4]uint16{0x100, 0x104, 0x108, 0x10C}
var timerCntHOffset = [4]uint16{0x102, 0x106, 0x10A, 0x10E}

// onTimerReloadByte redirects a TMnCNT_L byte write to the reload latch
// instead of the live counter; byteIndex is 0 for the low byte, 1 for the
// high byte of the 16-bit reload value.
func (b *Bus) onTimerReloadByte(p proc.ID, channel, byteIndex int, value uint8) {
	shift := uint(byteIndex * 8)
	mask := uint16(0xFF) << shift
	b.timerReload[p][channel] = (b.timerReload[p][channel] &^ mask) | uint16(value)<<shift
}

// onTimerControlHigh reloads the live counter from the latch on the 0→1
// transition of the control byte's enable bit, then returns the byte to
// commit.
func (b *Bus) onTimerControlHigh(p proc.ID, channel int, old, masked uint8) uint8 {
	if old&0x80 == 0 && masked&0x80 != 0 {
		f := b.ioFile(p)
		lo := timerCntLOffset[channel]
		reload := b.timerReload[p][channel]
		f.Data[lo] = byte(reload)
		f.Data[lo+1] = byte(reload >> 8)
	}
	return masked
}
