package bus

import (
	"math"

	"github.com/jsalvi/nitrobus/internal/ioreg"
	"github.com/jsalvi/nitrobus/internal/proc"
)

// mainForMath is the processor whose I/O file hosts DIVCNT/SQRTCNT and
// their operand/result registers; original_source keeps these ARM9-only.
const mainForMath = proc.Main

// recomputeDiv re-runs the hardware divider. divcnt's low two bits select
// 32/32 (mode 0), 64/32 (modes 1 and 3), or 64/64 (mode 2) division. On a
// zero denominator the divide-by-zero bit (14) is set and the result
// registers are left untouched; per spec.md §7 this path is never logged.
func (b *Bus) recomputeDiv() {
	f := b.ioFile(mainForMath)
	cnt := f.Read16(0x280)
	cnt &^= 1 << 14

	numer64 := int64(f.Read32(0x290)) | int64(f.Read32(0x294))<<32
	denom64 := int64(f.Read32(0x298)) | int64(f.Read32(0x29C))<<32

	var quotient, remainder int64
	zero := false

	switch cnt & 0x03 {
	case 0:
		n, d := int32(numer64), int32(denom64)
		if d == 0 {
			zero = true
		} else {
			quotient, remainder = int64(n/d), int64(n%d)
		}
	case 1, 3:
		d := int32(denom64)
		if d == 0 {
			zero = true
		} else {
			quotient, remainder = numer64/int64(d), numer64%int64(d)
		}
	case 2:
		if denom64 == 0 {
			zero = true
		} else {
			quotient, remainder = numer64/denom64, numer64%denom64
		}
	}

	if zero {
		cnt |= 1 << 14
		f.Data[0x280] = byte(cnt)
		f.Data[0x281] = byte(cnt >> 8)
		return
	}

	f.Data[0x280] = byte(cnt)
	f.Data[0x281] = byte(cnt >> 8)
	setInt64(f, 0x2A0, quotient)
	setInt64(f, 0x2A8, remainder)
}

func setInt64(f *ioreg.File, base uint16, v int64) {
	u := uint64(v)
	for i := 0; i < 8; i++ {
		f.Data[base+uint16(i)] = byte(u >> (8 * i))
	}
}

// recomputeSqrt computes floor(sqrt(param)) over a 32- or 64-bit operand
// selected by SQRTCNT bit 0.
func (b *Bus) recomputeSqrt() {
	f := b.ioFile(mainForMath)
	cnt := f.Read16(0x2B0)

	var result uint32
	if cnt&0x01 != 0 {
		param := uint64(f.Read32(0x2B8)) | uint64(f.Read32(0x2BC))<<32
		result = uint32(math.Sqrt(float64(param)))
	} else {
		param := f.Read32(0x2B8)
		result = uint32(math.Sqrt(float64(param)))
	}
	f.Data[0x2B4] = byte(result)
	f.Data[0x2B5] = byte(result >> 8)
	f.Data[0x2B6] = byte(result >> 16)
	f.Data[0x2B7] = byte(result >> 24)
}
