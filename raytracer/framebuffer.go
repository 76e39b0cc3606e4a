package raytracer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"
)

// Framebuffer is a packed 8-bit RGB pixel buffer, width*height*3 bytes,
// row-major, written once per pixel by disjoint render tasks.
type Framebuffer struct {
	Width, Height int
	Pixels        []byte
}

// NewFramebuffer allocates a zeroed buffer for the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{Width: width, Height: height, Pixels: make([]byte, width*height*3)}
}

// Set writes a single pixel's color. Safe to call concurrently from
// different goroutines as long as each (x,y) is only ever written once per
// frame (see Renderer's dispatch model).
func (f *Framebuffer) Set(x, y int, c ColorRGB) {
	r, g, b := c.MaxToOne().ToBytes()
	i := (y*f.Width + x) * 3
	f.Pixels[i] = r
	f.Pixels[i+1] = g
	f.Pixels[i+2] = b
}

// At returns the 8-bit RGB channels already written at (x,y), used by
// preview backends (cmd/raytracer's terminal backend) that need to read
// pixels back out rather than just encode the whole buffer.
func (f *Framebuffer) At(x, y int) (r, g, b byte) {
	i := (y*f.Width + x) * 3
	return f.Pixels[i], f.Pixels[i+1], f.Pixels[i+2]
}

// image builds a stdlib image.RGBA snapshot of the buffer for encoding.
func (f *Framebuffer) image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			i := (y*f.Width + x) * 3
			img.Set(x, y, color.RGBA{R: f.Pixels[i], G: f.Pixels[i+1], B: f.Pixels[i+2], A: 255})
		}
	}
	return img
}

// SaveToImage encodes the buffer as a BMP file at path, returning false on
// any I/O or encode failure instead of panicking (mirrors the original
// SaveBufferToImage's bool-return contract).
func (f *Framebuffer) SaveToImage(path string) bool {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, f.image()); err != nil {
		return false
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return false
	}
	return true
}

// DefaultBufferPath is the fixed output path used when no override is given.
const DefaultBufferPath = "RayTracing_Buffer.bmp"

// SaveToImageErr behaves like SaveToImage but returns the underlying error,
// for callers that want to log a reason for failure.
func (f *Framebuffer) SaveToImageErr(path string) error {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, f.image()); err != nil {
		return fmt.Errorf("encode bmp: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
