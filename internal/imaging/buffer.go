package imaging

import (
	"fmt"
	"image"
	"image/draw"
)

// PixelBuffer holds raw image data as a row-major sequence of 4-channel
// (R,G,B,A) byte samples. The pixel at (x, y) starts at offset (y*Width+x)*4.
//
// Buffers are immutable by convention: engine operations never write to
// their input buffer and always allocate a fresh output of identical
// geometry.
type PixelBuffer struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Pix is the interleaved RGBA data, len = Width*Height*4.
	Pix []uint8 `json:"-"`
}

// NewPixelBuffer allocates a zeroed (transparent black) buffer of the given
// dimensions.
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// Validate checks the buffer geometry invariant: the pixel data length must
// be a multiple of 4 and equal Width*Height*4.
//
// Every engine operation calls Validate before touching pixel data; a
// geometry violation is the one hard failure class of the engine.
func (b *PixelBuffer) Validate() error {
	if b == nil {
		return fmt.Errorf("nil pixel buffer")
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("invalid dimensions %dx%d", b.Width, b.Height)
	}
	if len(b.Pix)%4 != 0 {
		return fmt.Errorf("pixel data length %d is not a multiple of 4", len(b.Pix))
	}
	if want := b.Width * b.Height * 4; len(b.Pix) != want {
		return fmt.Errorf("pixel data length %d does not match %dx%dx4 = %d",
			len(b.Pix), b.Width, b.Height, want)
	}
	return nil
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &PixelBuffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Offset returns the index into Pix of the first (red) channel of the pixel
// at (x, y). Coordinates are not bounds-checked.
func (b *PixelBuffer) Offset(x, y int) int {
	return (y*b.Width + x) * 4
}

// RGBA returns the four channel values of the pixel at (x, y).
func (b *PixelBuffer) RGBA(x, y int) (r, g, bl, a uint8) {
	o := b.Offset(x, y)
	return b.Pix[o], b.Pix[o+1], b.Pix[o+2], b.Pix[o+3]
}

// FromImage converts any image.Image into a PixelBuffer with non-premultiplied
// RGBA samples. The fast path copies *image.NRGBA data directly; other color
// models go through a draw conversion.
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != width*4 || bounds.Min != (image.Point{}) {
		converted := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(converted, converted.Bounds(), img, bounds.Min, draw.Src)
		nrgba = converted
	}

	pix := make([]uint8, width*height*4)
	copy(pix, nrgba.Pix)
	return &PixelBuffer{Width: width, Height: height, Pix: pix}
}

// Image converts the buffer back into a standard *image.NRGBA sharing no
// memory with the buffer.
func (b *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}
