package ledbadge

import "fmt"

// Rows is the fixed pixel height of the badge display.
const Rows = 11

// Bitmap is an immutable 1-bit pixel block with a fixed height of 11
// rows. The width is a non-negative multiple of 8; one byte holds 8
// horizontal pixels with the most significant bit leftmost. Rows are
// stored top to bottom, bytes within a row left to right.
type Bitmap struct {
	width int
	data  []byte
}

// NewBitmap builds a bitmap from row-major pixel data. The data length
// must be exactly Rows * width/8.
func NewBitmap(width int, data []byte) (Bitmap, error) {
	if width < 0 || width%8 != 0 {
		return Bitmap{}, fmt.Errorf("bitmap width must be a non-negative multiple of 8: %d", width)
	}
	if len(data) != Rows*width/8 {
		return Bitmap{}, fmt.Errorf("bitmap data length: got %d, want %d", len(data), Rows*width/8)
	}
	d := make([]byte, len(data))
	copy(d, data)
	return Bitmap{width: width, data: d}, nil
}

// Width returns the bitmap width in pixels.
func (b Bitmap) Width() int { return b.width }

// ByteLen returns the total payload size of the bitmap in bytes.
func (b Bitmap) ByteLen() int { return len(b.data) }

// Bytes returns a copy of the row-major pixel data.
func (b Bitmap) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Pixel reports whether the pixel at (x, y) is lit. Coordinates outside
// the bitmap are unlit.
func (b Bitmap) Pixel(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= Rows {
		return false
	}
	stride := b.width / 8
	return b.data[y*stride+x/8]&(1<<uint(7-x%8)) != 0
}

// concatBitmaps splices parts into one horizontal strip, preserving
// order, by appending each part's row bytes to the output row.
func concatBitmaps(parts []Bitmap) Bitmap {
	width := 0
	for _, p := range parts {
		width += p.width
	}
	stride := width / 8
	data := make([]byte, Rows*stride)
	off := 0
	for _, p := range parts {
		pw := p.width / 8
		for y := 0; y < Rows; y++ {
			copy(data[y*stride+off:], p.data[y*pw:(y+1)*pw])
		}
		off += pw
	}
	return Bitmap{width: width, data: data}
}
