// Package ioreg holds the byte-addressable I/O register file shared by
// both processors and the address constants each register lives at. The
// file is a flat 8 KiB window starting at 0x04000000; offsets below are
// relative to that base.
package ioreg

// 32-bit registers.
const (
	DISPCNT      = 0x000
	DMA0SAD      = 0x0B0
	DMA0DAD      = 0x0B4
	DMA0CNT      = 0x0B8
	DMA1SAD      = 0x0BC
	DMA1DAD      = 0x0C0
	DMA1CNT      = 0x0C4
	DMA2SAD      = 0x0C8
	DMA2DAD      = 0x0CC
	DMA2CNT      = 0x0D0
	DMA3SAD      = 0x0D4
	DMA3DAD      = 0x0D8
	DMA3CNT      = 0x0DC
	ROMCTRL      = 0x1A4
	IPCFIFOSEND  = 0x188
	IE           = 0x210
	IRF          = 0x214
	DIVNUMER     = 0x290
	DIVDENOM     = 0x298
	SQRTPARAM    = 0x2B8
	SQRTRESULT   = 0x2B4
	DIVRESULT    = 0x2A0
	DIVREMRESULT = 0x2A8
)

// 16-bit registers.
const (
	DISPSTAT  = 0x004
	VCOUNT    = 0x006
	BG0CNT    = 0x008
	BG1CNT    = 0x00A
	BG2CNT    = 0x00C
	BG3CNT    = 0x00E
	BG0HOFS   = 0x010
	BG0VOFS   = 0x012
	BG1HOFS   = 0x014
	BG1VOFS   = 0x016
	BG2HOFS   = 0x018
	BG2VOFS   = 0x01A
	BG3HOFS   = 0x01C
	BG3VOFS   = 0x01E
	TM0CNT_L  = 0x100
	TM0CNT_H  = 0x102
	TM1CNT_L  = 0x104
	TM1CNT_H  = 0x106
	TM2CNT_L  = 0x108
	TM2CNT_H  = 0x10A
	TM3CNT_L  = 0x10C
	TM3CNT_H  = 0x10E
	KEYINPUT  = 0x130
	RTC       = 0x138
	IPCSYNC   = 0x180
	IPCFIFOCNT = 0x184
	AUXSPICNT = 0x1A0
	AUXSPIDATA = 0x1A2
	SPICNT    = 0x1C0
	SPIDATA   = 0x1C2
	IME       = 0x208
	DIVCNT    = 0x280
	SQRTCNT   = 0x2B0
	POWCNT1   = 0x304
	EXTKEYIN  = 0x136
)

// 8-bit registers.
const (
	VRAMCNT_A = 0x240
	VRAMCNT_B = 0x241
	VRAMCNT_C = 0x242
	VRAMCNT_D = 0x243
	VRAMCNT_E = 0x244
	VRAMCNT_F = 0x245
	VRAMCNT_G = 0x246
	WRAMCNT   = 0x247
	VRAMCNT_H = 0x248
	VRAMCNT_I = 0x249
	POSTFLG   = 0x300
	HALTCNT   = 0x301
	// WRAMSTAT shares VRAMCNT_B's offset: on the aux processor this
	// offset hosts the (read-only) shared-WRAM status register instead
	// of VRAMCNT_B, which does not exist there.
	WRAMSTAT = 0x241
)

// timer index 0..3 byte offsets of TMnCNT_L/TMnCNT_H, used to seed the
// timer registers' masks (the bus's side-effect dispatch keeps its own
// copy of these offsets).
var TimerCntL = [4]uint16{TM0CNT_L, TM1CNT_L, TM2CNT_L, TM3CNT_L}
var TimerCntH = [4]uint16{TM0CNT_H, TM1CNT_H, TM2CNT_H, TM3CNT_H}

// DMA control high byte offsets (byte 3 of DMAnCNT), indexed by channel.
var DMACntHigh = [4]uint16{0x0BB, 0x0C7, 0x0D3, 0x0DF}

// DMASAD/DMADAD offsets, indexed by channel, used to latch dma_src/dma_dst
// on the DMA control 0→1 transition.
var DMASAD = [4]uint16{DMA0SAD, DMA1SAD, DMA2SAD, DMA3SAD}
var DMADAD = [4]uint16{DMA0DAD, DMA1DAD, DMA2DAD, DMA3DAD}

// DIV trigger offsets: a write that touches the byte at one of these
// offsets (the low byte of DIVCNT, DIVNUMER or DIVDENOM) re-runs the
// division; writes to the other bytes of those registers do not.
var DivTriggers = [3]uint16{0x280, 0x290, 0x298}

// SQRT trigger offsets.
var SqrtTriggers = [2]uint16{0x2B0, 0x2B8}
