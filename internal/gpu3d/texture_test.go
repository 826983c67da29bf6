package gpu3d

import "testing"

// TestA3I5TransparencyEdge exercises format 1: a 3-bit alpha, 5-bit index
// texel where alpha==0 (top 3 bits clear) is fully transparent regardless
// of the palette index bits, per readTexel's `idx&0xE0 == 0` check.
func TestA3I5TransparencyEdge(t *testing.T) {
	pal := make([]byte, 64)
	putU16LE(pal, 2, rgb5(31, 0, 0)) // index 1: full red

	tex := []byte{
		0x01, // alpha 0, index 1 -> transparent despite a non-zero index
		0x21, // alpha 1 (bits 7:5 = 001), index 1 -> opaque red
	}

	r := New(&fakeSource{texture: tex, palette: pal})
	poly := &Polygon{Texture: TextureDescriptor{
		Format: FormatA3I5, SizeS: 2, SizeT: 1,
	}}

	if got := r.readTexel(poly, 0, 0); got&opaqueBit != 0 {
		t.Fatalf("alpha-0 texel = %#x, want opaque bit clear", got)
	}
	if got := r.readTexel(poly, 1, 0); got&opaqueBit == 0 {
		t.Fatalf("alpha-1 texel = %#x, want opaque bit set", got)
	}
}

// TestFormat4ColorTransparent0 exercises format 2: when Transparent0 is
// set, palette index 0 is transparent; any other index is opaque.
func TestFormat4ColorTransparent0(t *testing.T) {
	pal := make([]byte, 16)
	putU16LE(pal, 2, rgb5(0, 31, 0)) // index 1: full green

	// One byte holds four 2-bit indices: s=0 -> idx0, s=1 -> idx1, s=2 ->
	// idx0, s=3 -> idx1.
	tex := []byte{0b01_00_01_00}

	r := New(&fakeSource{texture: tex, palette: pal})
	poly := &Polygon{Texture: TextureDescriptor{
		Format: Format4Color, SizeS: 4, SizeT: 1, Transparent0: true,
	}}

	if got := r.readTexel(poly, 0, 0); got&opaqueBit != 0 {
		t.Fatalf("index-0 texel = %#x, want transparent", got)
	}
	got := r.readTexel(poly, 1, 0)
	if got&opaqueBit == 0 {
		t.Fatalf("index-1 texel = %#x, want opaque", got)
	}
	if got&(0x3F<<6) == 0 {
		t.Fatalf("index-1 texel = %#x, want green channel set", got)
	}
}

// TestFormat16ColorTransparent0 exercises format 3's index-0 transparency
// and a non-zero index decode.
func TestFormat16ColorTransparent0(t *testing.T) {
	pal := make([]byte, 32)
	putU16LE(pal, 2*5, rgb5(0, 0, 31)) // index 5: full blue

	// One byte holds two 4-bit indices: s=0 -> idx0, s=1 -> idx5.
	tex := []byte{0x50}

	r := New(&fakeSource{texture: tex, palette: pal})
	poly := &Polygon{Texture: TextureDescriptor{
		Format: Format16Color, SizeS: 2, SizeT: 1, Transparent0: true,
	}}

	if got := r.readTexel(poly, 0, 0); got&opaqueBit != 0 {
		t.Fatalf("index-0 texel = %#x, want transparent", got)
	}
	if got := r.readTexel(poly, 1, 0); got&opaqueBit == 0 {
		t.Fatalf("index-5 texel = %#x, want opaque", got)
	}
}

// TestFormat256ColorTransparent0 exercises format 4's index-0 transparency
// across a full byte-per-texel index.
func TestFormat256ColorTransparent0(t *testing.T) {
	pal := make([]byte, 512)
	putU16LE(pal, 2*200, rgb5(15, 15, 15))

	tex := []byte{0x00, 0xC8} // s=0 -> idx0, s=1 -> idx 200 (0xC8)

	r := New(&fakeSource{texture: tex, palette: pal})
	poly := &Polygon{Texture: TextureDescriptor{
		Format: Format256Color, SizeS: 2, SizeT: 1, Transparent0: true,
	}}

	if got := r.readTexel(poly, 0, 0); got&opaqueBit != 0 {
		t.Fatalf("index-0 texel = %#x, want transparent", got)
	}
	if got := r.readTexel(poly, 1, 0); got&opaqueBit == 0 {
		t.Fatalf("index-200 texel = %#x, want opaque", got)
	}
}

// TestA5I3TransparencyEdge exercises format 6: a 5-bit alpha, 3-bit index
// texel where the top 5 bits are all clear is fully transparent.
func TestA5I3TransparencyEdge(t *testing.T) {
	pal := make([]byte, 16)
	putU16LE(pal, 2*3, rgb5(31, 31, 0)) // index 3: yellow

	tex := []byte{
		0x03, // alpha 0 (bits 7:3 clear), index 3 -> transparent
		0x0B, // alpha 1 (bit 3 set), index 3 -> opaque
	}

	r := New(&fakeSource{texture: tex, palette: pal})
	poly := &Polygon{Texture: TextureDescriptor{
		Format: FormatA5I3, SizeS: 2, SizeT: 1,
	}}

	if got := r.readTexel(poly, 0, 0); got&opaqueBit != 0 {
		t.Fatalf("alpha-0 texel = %#x, want transparent", got)
	}
	if got := r.readTexel(poly, 1, 0); got&opaqueBit == 0 {
		t.Fatalf("alpha-1 texel = %#x, want opaque", got)
	}
}
