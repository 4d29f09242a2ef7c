package ledbadge

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// FileLoader loads image files as badge bitmaps. The image is scaled to
// the 11-row display height preserving aspect ratio, thresholded to
// monochrome and right-padded to a multiple of 8 pixels. PNG, GIF,
// JPEG and BMP files are accepted.
type FileLoader struct {
	// Threshold is the luma value at or above which a pixel lights an
	// LED. Zero selects the default of 128.
	Threshold uint8
}

func (l FileLoader) LoadBitmap(path string) (Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bitmap{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Bitmap{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return RasterizeImage(img, l.threshold())
}

func (l FileLoader) threshold() uint8 {
	if l.Threshold == 0 {
		return 128
	}
	return l.Threshold
}

// RasterizeImage converts an arbitrary image to an 11-row monochrome
// bitmap with nearest-neighbour scaling. Pixels with luma at or above
// threshold are lit.
func RasterizeImage(img image.Image, threshold uint8) (Bitmap, error) {
	bounds := img.Bounds()
	sw := bounds.Dx()
	sh := bounds.Dy()
	if sw <= 0 || sh <= 0 {
		return Bitmap{}, fmt.Errorf("image has no pixels: %dx%d", sw, sh)
	}

	scale := float64(Rows) / float64(sh)
	width := int(float64(sw)*scale + 0.5)
	if width < 1 {
		width = 1
	}
	stride := (width + 7) / 8

	data := make([]byte, Rows*stride)
	for y := 0; y < Rows; y++ {
		sy := clampInt(int(float64(y)/scale), 0, sh-1)
		for x := 0; x < width; x++ {
			sx := clampInt(int(float64(x)/scale), 0, sw-1)
			r16, g16, b16, _ := img.At(bounds.Min.X+sx, bounds.Min.Y+sy).RGBA()
			l := lumaByte(uint8(r16>>8), uint8(g16>>8), uint8(b16>>8))
			if l >= threshold {
				data[y*stride+x/8] |= 1 << uint(7-x%8)
			}
		}
	}
	return Bitmap{width: stride * 8, data: data}, nil
}

func lumaByte(r, g, b uint8) uint8 {
	return uint8((77*int(r) + 150*int(g) + 29*int(b)) >> 8)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
