package gpu3d

import "github.com/jsalvi/nitrobus/internal/diag"

const (
	// LineCacheSize is the number of scanlines the rasterizer keeps
	// buffered at once; display line L occupies slot L % LineCacheSize.
	LineCacheSize = 48
	// LineWidth is the number of pixels per scanline.
	LineWidth = 256
	// initialDepth is the value the depth buffer resets to at the start
	// of every scanline.
	initialDepth = 0xFFFFFF
)

// Rasterizer owns the per-frame polygon list, the line cache ring, and
// the depth buffer, and produces one scanline at a time.
type Rasterizer struct {
	src TextureSource

	polygons []Polygon

	lineCache [LineCacheSize * LineWidth]uint32
	depth     [LineWidth]int64
}

// New constructs a Rasterizer that reads texels and palettes through src.
func New(src TextureSource) *Rasterizer {
	return &Rasterizer{src: src}
}

// SetPolygons replaces the frame's polygon list; the geometry stage calls
// this once per frame before any DrawScanline call for that frame.
func (r *Rasterizer) SetPolygons(polygons []Polygon) {
	r.polygons = polygons
}

// Line returns the cached pixel row for display line `line`, valid once
// DrawScanline(line) has been called.
func (r *Rasterizer) Line(line int) []uint32 {
	slot := line % LineCacheSize
	return r.lineCache[slot*LineWidth : (slot+1)*LineWidth]
}

// DrawScanline renders display line `line` into its line cache slot.
func (r *Rasterizer) DrawScanline(line int) {
	slot := line % LineCacheSize
	row := r.lineCache[slot*LineWidth : (slot+1)*LineWidth]
	for i := range row {
		row[i] = 0
	}
	for i := range r.depth {
		r.depth[i] = initialDepth
	}

	for i := range r.polygons {
		r.drawPolygon(line, &r.polygons[i])
	}
}

// drawPolygon sorts the polygon's vertices by Y, finds the four edge
// vertices bracketing `line`, and rasterizes the resulting span.
func (r *Rasterizer) drawPolygon(line int, p *Polygon) {
	n := p.Count
	var order [MaxVertices]int
	for i := 0; i < n; i++ {
		order[i] = i
	}
	for i := 0; i < n-1; i++ {
		for k := i + 1; k < n; k++ {
			if p.Vertices[order[k]].Y < p.Vertices[order[i]].Y {
				order[i], order[k] = order[k], order[i]
			}
		}
	}

	top := p.Vertices[order[0]].Y
	bottom := p.Vertices[order[n-1]].Y
	if int32(line) < top || int32(line) >= bottom {
		return
	}

	var crosses [MaxVertices - 2]int64
	v0 := &p.Vertices[order[0]]
	vLast := &p.Vertices[order[n-1]]
	for j := 0; j < n-2; j++ {
		vj := &p.Vertices[order[j+1]]
		crosses[j] = int64(vj.X-v0.X)*int64(vLast.Y-v0.Y) - int64(vj.Y-v0.Y)*int64(vLast.X-v0.X)
	}

	for j := 1; j < n; j++ {
		if int32(line) >= p.Vertices[order[j]].Y {
			continue
		}

		v2 := j
		for ; v2 < n-1; v2++ {
			if crosses[v2-1] <= 0 {
				break
			}
		}
		v1 := v2 - 1
		for ; v1 > 0; v1-- {
			if crosses[v1-1] <= 0 {
				break
			}
		}

		v4 := j
		for ; v4 < n-1; v4++ {
			if crosses[v4-1] > 0 {
				break
			}
		}
		v3 := v4 - 1
		for ; v3 > 0; v3-- {
			if crosses[v3-1] > 0 {
				break
			}
		}

		r.rasterize(line, p, &p.Vertices[order[v1]], &p.Vertices[order[v2]], &p.Vertices[order[v3]], &p.Vertices[order[v4]])
		return
	}
}

// rasterize draws the span of display line `line` bounded by the left
// edge (v1,v2) and the right edge (v3,v4).
func (r *Rasterizer) rasterize(line int, p *Polygon, v1, v2, v3, v4 *Vertex) {
	vw := [4]int64{v1.W, v2.W, v3.W, v4.W}
	var wShift uint
	for i := range vw {
		for vw[i] != int64(int16(vw[i])) {
			for j := range vw {
				vw[j] >>= 4
			}
			wShift += 4
		}
	}

	l := int64(line)
	x1 := interpolate(int64(v1.X), int64(v2.X), int64(v1.Y), l, int64(v2.Y))
	x2 := interpolate(int64(v3.X), int64(v4.X), int64(v3.Y), l, int64(v4.Y))

	var z1, z2 int64
	if !p.WBuffer {
		z1 = interpolate(int64(v1.Z), int64(v2.Z), int64(v1.Y), l, int64(v2.Y))
		z2 = interpolate(int64(v3.Z), int64(v4.Z), int64(v3.Y), l, int64(v4.Y))
	}

	w1 := interpolateW(vw[0], vw[1], int64(v1.Y), l, int64(v2.Y))
	w2 := interpolateW(vw[2], vw[3], int64(v3.Y), l, int64(v4.Y))

	slot := line % LineCacheSize
	row := r.lineCache[slot*LineWidth : (slot+1)*LineWidth]

	for x := x1; x < x2; x++ {
		if x < 0 || x >= LineWidth {
			continue
		}

		var depth int64
		if p.WBuffer {
			depth = interpolateW(w1, w2, x1, x, x2) << wShift
		} else {
			depth = interpolate(z1, z2, x1, x, x2)
		}

		if r.depth[x] < depth {
			continue
		}

		var w int64
		if p.WBuffer {
			w = depth >> wShift
		} else {
			w = interpolateW(w1, w2, x1, x, x2)
		}

		c1 := interpolateColorW(v1.Color, v2.Color, int64(v1.Y), l, int64(v2.Y), vw[0], w1, vw[1])
		c2 := interpolateColorW(v3.Color, v4.Color, int64(v3.Y), l, int64(v4.Y), vw[2], w2, vw[3])
		color := interpolateColorW(c1, c2, x1, x, x2, w1, w, w2)

		if p.Texture.Format != FormatNone {
			s1 := interpolateAttr(int64(v1.S), int64(v2.S), int64(v1.Y), l, int64(v2.Y), vw[0], w1, vw[1])
			s2 := interpolateAttr(int64(v3.S), int64(v4.S), int64(v3.Y), l, int64(v4.Y), vw[2], w2, vw[3])
			s := interpolateAttr(s1, s2, x1, x, x2, w1, w, w2)

			t1 := interpolateAttr(int64(v1.T), int64(v2.T), int64(v1.Y), l, int64(v2.Y), vw[0], w1, vw[1])
			t2 := interpolateAttr(int64(v3.T), int64(v4.T), int64(v3.Y), l, int64(v4.Y), vw[2], w2, vw[3])
			t := interpolateAttr(t1, t2, x1, x, x2, w1, w, w2)

			texel := r.readTexel(p, int32(s>>4), int32(t>>4))

			switch p.Mode {
			case BlendModulation:
				rCh := ((colorChannel(texel, 0) + 1) * (colorChannel(color, 0) + 1) - 1) / 64
				gCh := ((colorChannel(texel, 6) + 1) * (colorChannel(color, 6) + 1) - 1) / 64
				bCh := ((colorChannel(texel, 12) + 1) * (colorChannel(color, 12) + 1) - 1) / 64
				color = (texel & opaqueBit) | uint32(bCh&0x3F)<<12 | uint32(gCh&0x3F)<<6 | uint32(rCh&0x3F)
			default:
				diag.UnimplementedBlendMode(uint8(p.Mode))
				color = texel
			}
		}

		if color&opaqueBit != 0 {
			row[x] = color
			r.depth[x] = depth
		}
	}
}
