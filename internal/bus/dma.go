package bus

import "github.com/jsalvi/nitrobus/internal/proc"

// dmaCntHighOffsets are the high (bit-7-bearing) byte of each channel's
// DMAnCNT register.
var dmaCntHighOffsets = [4]uint16{0x0BB, 0x0C7, 0x0D3, 0x0DF}

// onDMAControlHigh implements the DMA control high byte side effect: on
// the 0→1 transition of bit 7, latch the channel's source/destination
// address registers before the new control byte is committed.
func (b *Bus) onDMAControlHigh(p proc.ID, channel int, old, masked uint8) uint8 {
	f := b.ioFile(p)
	if old&0x80 == 0 && masked&0x80 != 0 {
		b.dmaSrc[p][channel] = f.Read32(dmaSADOffset[channel])
		b.dmaDst[p][channel] = f.Read32(dmaDADOffset[channel])
	}
	return masked
}

var dmaSADOffset = [4]uint16{0x0B0, 0x0BC, 0x0C8, 0x0D4}
var dmaDADOffset = [4]uint16{0x0B4, 0x0C0, 0x0CC, 0x0D8}
