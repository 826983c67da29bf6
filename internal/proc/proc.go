// Package proc names the two ARM-family CPUs sharing the mapped address
// space. Bus and gpu3d both index their per-processor state by ID rather
// than carrying a bespoke type per subsystem.
package proc

// ID selects which processor's view of the address space, register file
// or routing table is in effect.
type ID uint8

const (
	// Main is the ARM9-class processor: the wider, privileged side of
	// the bus with TCMs, the full VRAM map and firmware access.
	Main ID = iota
	// Aux is the ARM7-class processor: firmware-first address order,
	// no TCMs, and its own auxiliary work RAM.
	Aux

	// Count is the number of processors sharing the bus.
	Count
)

// String renders the processor name for diagnostics.
func (p ID) String() string {
	switch p {
	case Main:
		return "main"
	case Aux:
		return "aux"
	default:
		return "proc?"
	}
}

// Other returns the peer processor, used when a side effect targets the
// opposite CPU (IPC sync/FIFO, cross-processor IRQs).
func (p ID) Other() ID {
	if p == Main {
		return Aux
	}
	return Main
}
