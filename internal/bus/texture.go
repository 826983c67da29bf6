package bus

// Texture resolves a texture base address through the same VRAM routing
// table CPU-visible reads use, grounded on original_source's
// getTexture/getPalette which index the currently-mapped VRAM banks
// rather than a separate texture-only window.
func (b *Bus) Texture(address uint32) (bank []byte, offset uint32, ok bool) {
	return b.vramMap(address)
}

// Palette resolves a palette base address the same way; the rasterizer
// uses it for both the per-polygon palette and format 5's descriptor
// mirror region.
func (b *Bus) Palette(address uint32) (bank []byte, offset uint32, ok bool) {
	return b.vramMap(address)
}
