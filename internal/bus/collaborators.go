package bus

import "github.com/jsalvi/nitrobus/internal/proc"

// RTCDevice models the real-time clock side channel reachable through the
// RTC register. Out of scope for this module; with a nil RTCDevice, RTC
// writes only update the register byte and nothing is logged.
type RTCDevice interface {
	Write(value uint8)
}

// SPIDevice models the SPI/AUXSPI peripheral bus (firmware flash, touch
// screen, power management).
type SPIDevice interface {
	Write(value uint8) uint8
}

// CartridgeDevice models cartridge-slot transfers, out of scope here.
type CartridgeDevice interface {
	Transfer() uint32
	StartTransfer()
}

// FIFOPeer models one direction of the inter-processor FIFO queue.
type FIFOPeer interface {
	Send(value uint32)
	Receive() uint32
}

// Collaborators bundles the optional external dependencies Bus calls into
// for functionality this module treats as out of scope. Any field is
// safe to leave nil; Bus skips it rather than dereferencing it. Only the
// FIFO-receive and cartridge-transfer reads log (as an unmapped read)
// when their collaborator is nil; other skipped calls are not logged.
type Collaborators struct {
	RTC [proc.Count]RTCDevice
	SPI [proc.Count]SPIDevice
	Cartridge [proc.Count]CartridgeDevice

	// FIFO holds the queue each processor sends into; the receiving side
	// reads its peer's queue.
	FIFO [proc.Count]FIFOPeer
}
