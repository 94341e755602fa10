package render

import (
	"image"
	"image/color"
)

// PixelBuffer is an in-memory RGBA Surface. Drawing happens on a back buffer
// and Present copies it to the front buffer that backends upload.
type PixelBuffer struct {
	w, h  int
	back  []byte
	front []byte
}

// NewPixelBuffer allocates a buffer for a w*h pixel surface.
func NewPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{w: w, h: h, back: make([]byte, 4*w*h), front: make([]byte, 4*w*h)}
}

// Size returns the pixel dimensions.
func (b *PixelBuffer) Size() (int, int) { return b.w, b.h }

// Pixels returns the last presented frame in RGBA order.
func (b *PixelBuffer) Pixels() []byte { return b.front }

// Clear fills the back buffer with bg.
func (b *PixelBuffer) Clear(bg color.Color) {
	c := rgba(bg)
	for i := 0; i < len(b.back); i += 4 {
		copy(b.back[i:i+4], c[:])
	}
}

// FillRects paints each rectangle with fg, clipped to the buffer.
func (b *PixelBuffer) FillRects(fg color.Color, rects []image.Rectangle) {
	c := rgba(fg)
	bounds := image.Rect(0, 0, b.w, b.h)
	for _, r := range rects {
		r = r.Intersect(bounds)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			row := 4 * (y*b.w + r.Min.X)
			for x := r.Min.X; x < r.Max.X; x++ {
				copy(b.back[row:row+4], c[:])
				row += 4
			}
		}
	}
}

// Present publishes the back buffer.
func (b *PixelBuffer) Present() error {
	copy(b.front, b.back)
	return nil
}

func rgba(c color.Color) [4]byte {
	r, g, bl, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), uint8(a >> 8)}
}
