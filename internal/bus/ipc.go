package bus

import "github.com/jsalvi/nitrobus/internal/proc"

// syncGuardMask is the mask tested against the peer's IPCSYNC high byte
// (offset 0x181) before a remote IRQ fires. Writer-asymmetric per
// original_source: the main-processor write path tests bit 8 against the
// single high byte (out of an 8-bit value's range, so it never fires —
// preserved rather than "fixed" since this governs observable behaviour);
// the aux write path tests bit 6 of that same byte (bit 14 overall).
var syncGuardMask = [proc.Count]uint16{
	proc.Main: 0x100,
	proc.Aux:  0x40,
}

// onIPCSyncWrite implements the IPCSYNC low-byte side effect: copy the
// written nibble into the peer's SYNC-receive nibble, and raise IRQ bit
// 16 on the peer if bit 5 was written and the peer's own IPCSYNC high
// byte has its remote-IRQ-enable bit set.
func (b *Bus) onIPCSyncWrite(p proc.ID, value uint8) {
	peer := p.Other()
	peerFile := b.ioFile(peer)
	peerFile.Data[0x180] = value & 0x0F

	if value&0x20 != 0 && uint16(peerFile.Data[0x181])&syncGuardMask[p] != 0 {
		b.raiseIRQ(peer, 16)
	}
}

// onIPCFIFOCntLow implements the IPCFIFOCNT low byte side effect.
func (b *Bus) onIPCFIFOCntLow(p proc.ID, old, value uint8) uint8 {
	if old&0x01 != 0 && old&0x04 == 0 && value&0x04 != 0 {
		b.raiseIRQ(p, 17)
	}
	committed := (old &^ 0x04) | (value & 0x04)
	if value&0x08 != 0 {
		b.clearSendFIFO(p)
	}
	return committed
}

// onIPCFIFOCntHigh implements the IPCFIFOCNT high byte side effect.
func (b *Bus) onIPCFIFOCntHigh(p proc.ID, old, value uint8) uint8 {
	if old&0x01 == 0 && old&0x04 == 0 && value&0x04 != 0 {
		b.raiseIRQ(p, 18)
	}
	committed := (old &^ 0x04) | (value & 0x04)
	if value&0x40 != 0 {
		committed &^= 0x40
	}
	return committed
}

func (b *Bus) clearSendFIFO(p proc.ID) {
	c := b.collab.FIFO[p]
	if c == nil {
		return
	}
	if clearer, ok := c.(interface{ Clear() }); ok {
		clearer.Clear()
	}
}

// onIPCFIFOSend implements the IPCFIFOSEND side effect: invoke the
// peer-directed send. applyIOByte then returns true so ioWrite stops
// processing the remaining bytes of this write (the load-bearing early
// return).
func (b *Bus) onIPCFIFOSend(p proc.ID, value uint32) {
	if c := b.collab.FIFO[p]; c != nil {
		c.Send(value)
	}
}

// raiseIRQ sets bit n of the given processor's IRF register.
func (b *Bus) raiseIRQ(p proc.ID, bit uint) {
	f := b.ioFile(p)
	byteOff := uint16(0x214 + bit/8)
	f.Data[byteOff] |= 1 << (bit % 8)
}
