// Command nitrobus is a headless demo harness for the bus/rasterizer
// core: it loads a ROM image as a cartridge collaborator, wires it into
// a Bus, drives a fixed number of frames through the Rasterizer with a
// synthetic spinning polygon, and dumps the last frame as a PNG. It
// never touches a window toolkit; "host-side presentation" stays out of
// scope.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/jsalvi/nitrobus/internal/bus"
	"github.com/jsalvi/nitrobus/internal/cartridge"
	"github.com/jsalvi/nitrobus/internal/gpu3d"
	"github.com/jsalvi/nitrobus/internal/proc"
)

var (
	romPath = flag.String("rom", "", "Path to NDS ROM image to load as the cartridge collaborator")
	frames  = flag.Int("frames", 60, "Number of frames to simulate before dumping the final frame")
	outPath = flag.String("out", "frame.png", "Output path for the final frame PNG")
)

const screenHeight = 192

func main() {
	flag.Parse()
	if *romPath == "" {
		log.Fatal("-rom is required")
	}

	rom, err := cartridge.New(*romPath)
	if err != nil {
		log.Fatalf("invalid ROM: %v", err)
	}
	log.Printf("loaded %s", rom)

	b := bus.New(bus.Collaborators{
		Cartridge: [proc.Count]bus.CartridgeDevice{proc.Main: rom, proc.Aux: rom},
	})

	r := gpu3d.New(b)

	var img *image.RGBA
	for frame := 0; frame < *frames; frame++ {
		r.SetPolygons([]gpu3d.Polygon{spinningTriangle(frame)})
		for line := 0; line < screenHeight; line++ {
			r.DrawScanline(line)
		}
		if frame == *frames-1 {
			img = renderFrame(r)
		}
	}

	if err := saveFrame(img, *outPath); err != nil {
		log.Fatalf("couldn't save frame: %v", err)
	}
	log.Printf("wrote %s", *outPath)
}

// spinningTriangle builds a triangle rotating around the screen centre,
// with a different full-intensity colour channel per vertex (so colour is
// interpolated across it), used only to exercise DrawScanline in the absence of a
// real geometry engine (out of scope here).
func spinningTriangle(frame int) gpu3d.Polygon {
	const cx, cy, radius = 128, 96, 80
	angle := float64(frame) * (2 * math.Pi / 120)

	var verts [3]gpu3d.Vertex
	for i := 0; i < 3; i++ {
		a := angle + float64(i)*(2*math.Pi/3)
		x := cx + radius*math.Cos(a)
		y := cy + radius*math.Sin(a)
		verts[i] = gpu3d.Vertex{
			X: int32(x), Y: int32(y), Z: 0, W: 4096,
			Color: uint32(0x3F) << uint(i*6%18 & 0x3F), // vary channel per vertex
		}
	}

	p := gpu3d.Polygon{Count: 3}
	copy(p.Vertices[:], verts[:])
	return p
}

func renderFrame(r *gpu3d.Rasterizer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, gpu3d.LineWidth, screenHeight))
	for line := 0; line < screenHeight; line++ {
		row := r.Line(line)
		for x, px := range row {
			img.Set(x, line, rgb6ToColor(px))
		}
	}
	return img
}

func rgb6ToColor(px uint32) color.RGBA {
	r := uint8((px & 0x3F) * 255 / 63)
	g := uint8(((px >> 6) & 0x3F) * 255 / 63)
	b := uint8(((px >> 12) & 0x3F) * 255 / 63)
	a := uint8(0)
	if px&(1<<18) != 0 {
		a = 255
	}
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func saveFrame(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
