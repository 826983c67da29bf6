package gpu3d

// TextureSource resolves a texture or palette base address to the VRAM
// bank byte slice currently routed there, grounded on
// original_source/src/gpu_3d_renderer.cpp's getTexture/getPalette (which
// index fixed-size VRAM slots); internal/bus.Bus implements this by
// reusing the same vram_map table CPU-visible reads go through.
type TextureSource interface {
	Texture(address uint32) (bank []byte, offset uint32, ok bool)
	Palette(address uint32) (bank []byte, offset uint32, ok bool)
}

func (r *Rasterizer) textureByte(address uint32) (uint8, bool) {
	bank, off, ok := r.src.Texture(address)
	if !ok || int(off) >= len(bank) {
		return 0, false
	}
	return bank[off], true
}

func (r *Rasterizer) textureU16(address uint32) (uint16, bool) {
	lo, ok := r.textureByte(address)
	if !ok {
		return 0, false
	}
	hi, ok := r.textureByte(address + 1)
	if !ok {
		return 0, false
	}
	return uint16(lo) | uint16(hi)<<8, true
}

func (r *Rasterizer) paletteColor(base uint32, index uint32) (uint32, bool) {
	v, ok := r.textureU16Palette(base + index*2)
	if !ok {
		return 0, false
	}
	return colorFromRGB5(v), true
}

func (r *Rasterizer) textureU16Palette(address uint32) (uint16, bool) {
	bank, off, ok := r.src.Palette(address)
	if !ok || int(off)+1 >= len(bank) {
		return 0, false
	}
	return uint16(bank[off]) | uint16(bank[off+1])<<8, true
}

// wrapCoord applies a polygon's repeat/flip/clamp policy to one texture
// coordinate axis.
func wrapCoord(c, size int32, repeat, flip bool) int32 {
	if repeat {
		count := 0
		for c < 0 {
			c += size
			count++
		}
		for c >= size {
			c -= size
			count++
		}
		if flip && count%2 != 0 {
			c = size - 1 - c
		}
		return c
	}
	if c < 0 {
		return 0
	}
	if c >= size {
		return size - 1
	}
	return c
}

// readTexel decodes the texel at (s,t) in texel space (already shifted
// past the fractional bits) per the polygon's texture descriptor.
func (r *Rasterizer) readTexel(p *Polygon, s, t int32) uint32 {
	tex := &p.Texture
	s = wrapCoord(s, tex.SizeS, tex.RepeatS, tex.FlipS)
	t = wrapCoord(t, tex.SizeT, tex.RepeatT, tex.FlipT)

	switch tex.Format {
	case FormatA3I5:
		idx, ok := r.textureByte(tex.Base + uint32(t*tex.SizeS+s))
		if !ok {
			return 0
		}
		if idx&0xE0 == 0 {
			return 0
		}
		c, ok := r.paletteColor(tex.PaletteBase, uint32(idx&0x1F))
		if !ok {
			return 0
		}
		return c | opaqueBit

	case Format4Color:
		b, ok := r.textureByte(tex.Base + uint32(t*tex.SizeS+s)/4)
		if !ok {
			return 0
		}
		idx := (b >> (uint(s%4) * 2)) & 0x03
		if tex.Transparent0 && idx == 0 {
			return 0
		}
		c, ok := r.paletteColor(tex.PaletteBase, uint32(idx))
		if !ok {
			return 0
		}
		return c | opaqueBit

	case Format16Color:
		b, ok := r.textureByte(tex.Base + uint32(t*tex.SizeS+s)/2)
		if !ok {
			return 0
		}
		idx := (b >> (uint(s%2) * 4)) & 0x0F
		if tex.Transparent0 && idx == 0 {
			return 0
		}
		c, ok := r.paletteColor(tex.PaletteBase, uint32(idx))
		if !ok {
			return 0
		}
		return c | opaqueBit

	case Format256Color:
		idx, ok := r.textureByte(tex.Base + uint32(t*tex.SizeS+s))
		if !ok {
			return 0
		}
		if tex.Transparent0 && idx == 0 {
			return 0
		}
		c, ok := r.paletteColor(tex.PaletteBase, uint32(idx))
		if !ok {
			return 0
		}
		return c | opaqueBit

	case FormatCompressed:
		return r.readCompressedTexel(tex, s, t)

	case FormatA5I3:
		idx, ok := r.textureByte(tex.Base + uint32(t*tex.SizeS+s))
		if !ok {
			return 0
		}
		if idx&0xF8 == 0 {
			return 0
		}
		c, ok := r.paletteColor(tex.PaletteBase, uint32(idx&0x07))
		if !ok {
			return 0
		}
		return c | opaqueBit

	default: // direct colour
		v, ok := r.textureU16(tex.Base + uint32(t*tex.SizeS+s)*2)
		if !ok {
			return 0
		}
		return colorFromRGB5(v)
	}
}

// readCompressedTexel implements format 5 (4x4 block compression): a
// 2-bit index selects a palette entry per a per-tile interpolation mode
// recorded in a mirror region. texture_base/0x20000 == 3 is left
// unhandled on purpose, matching original_source's ternary, which only
// special-cases == 2.
func (r *Rasterizer) readCompressedTexel(tex *TextureDescriptor, s, t int32) uint32 {
	tile := (t / 4) * (tex.SizeS / 4) + (s / 4)
	idxByte, ok := r.textureByte(tex.Base + uint32(tile*4) + uint32(t%4))
	if !ok {
		return 0
	}
	index := (idxByte >> (uint(s%4) * 2)) & 0x03

	descAddr := uint32(0x20000) + (tex.Base%0x20000)/2
	if tex.Base/0x20000 == 2 {
		descAddr += 0x10000
	}
	palBase, ok := r.textureU16(descAddr + uint32(tile)*2)
	if !ok {
		return 0
	}

	paletteAddr := tex.PaletteBase + uint32(palBase&0x3FFF)*4
	mode := (palBase & 0xC000) >> 14

	colorAt := func(i uint32) (uint32, bool) { return r.paletteColor(paletteAddr, i) }

	switch mode {
	case 0:
		if index == 3 {
			return 0
		}
		c, ok := colorAt(uint32(index))
		if !ok {
			return 0
		}
		return c | opaqueBit

	case 2:
		c, ok := colorAt(uint32(index))
		if !ok {
			return 0
		}
		return c | opaqueBit

	case 1:
		switch index {
		case 2:
			c1, ok1 := colorAt(0)
			c2, ok2 := colorAt(1)
			if !ok1 || !ok2 {
				return 0
			}
			return interpolateColor(c1, c2, 0, 1, 2)
		case 3:
			return 0
		default:
			c, ok := colorAt(uint32(index))
			if !ok {
				return 0
			}
			return c | opaqueBit
		}

	case 3:
		switch index {
		case 2:
			c1, ok1 := colorAt(0)
			c2, ok2 := colorAt(1)
			if !ok1 || !ok2 {
				return 0
			}
			return interpolateColor(c1, c2, 0, 3, 8)
		case 3:
			c1, ok1 := colorAt(0)
			c2, ok2 := colorAt(1)
			if !ok1 || !ok2 {
				return 0
			}
			return interpolateColor(c1, c2, 0, 5, 8)
		default:
			c, ok := colorAt(uint32(index))
			if !ok {
				return 0
			}
			return c | opaqueBit
		}
	}

	return 0 // mode is 2 bits; all four values are handled above
}
