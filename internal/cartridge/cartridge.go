package cartridge

import (
	"encoding/binary"
	"fmt"
	"os"
)

// ROM is a flat NDS cartridge image plus its parsed header. It implements
// bus.CartridgeDevice: ROMCTRL transfers pull sequential little-endian
// 32-bit words starting wherever StartTransfer last set the cursor.
type ROM struct {
	path   string
	h      *Header
	data   []byte
	cursor uint32
}

// New loads path as a flat NDS ROM image and parses its header. It does
// not decrypt or otherwise emulate the cartridge command protocol.
func New(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read ROM file %q: %w", path, err)
	}
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("ROM file %q is %d bytes, shorter than the %d-byte header", path, len(data), HeaderSize)
	}
	return &ROM{path: path, h: parseHeader(data[:HeaderSize]), data: data}, nil
}

func (r *ROM) String() string { return r.h.String() }

func (r *ROM) Header() *Header { return r.h }

// StartTransfer resets the read cursor to the start of the image; a real
// ROMCTRL transfer would instead seek to the command's target address,
// which is out of scope here.
func (r *ROM) StartTransfer() {
	r.cursor = 0
}

// Transfer returns the next little-endian 32-bit word and advances the
// cursor; reads past the end of the image return all-ones, matching the
// bus's own out-of-range read convention.
func (r *ROM) Transfer() uint32 {
	if int(r.cursor)+4 > len(r.data) {
		return 0xFFFFFFFF
	}
	v := binary.LittleEndian.Uint32(r.data[r.cursor:])
	r.cursor += 4
	return v
}
