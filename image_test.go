package ledbadge

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRasterizeImageGeometry(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		wantWidth int
	}{
		{name: "native-height", w: 44, h: 11, wantWidth: 48},
		{name: "downscale", w: 88, h: 22, wantWidth: 48},
		{name: "upscale", w: 8, h: 4, wantWidth: 24},
		{name: "narrow", w: 1, h: 11, wantWidth: 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := image.NewGray(image.Rect(0, 0, tc.w, tc.h))
			bm, err := RasterizeImage(img, 128)
			if err != nil {
				t.Fatal(err)
			}
			if bm.Width() != tc.wantWidth {
				t.Fatalf("width: got %d want %d", bm.Width(), tc.wantWidth)
			}
			if bm.ByteLen() != Rows*bm.Width()/8 {
				t.Fatalf("byte length: got %d", bm.ByteLen())
			}
		})
	}
}

func TestRasterizeImageThreshold(t *testing.T) {
	// Left half white, right half black, already at display height.
	img := image.NewGray(image.Rect(0, 0, 16, 11))
	for y := 0; y < 11; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	bm, err := RasterizeImage(img, 128)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < Rows; y++ {
		for x := 0; x < 8; x++ {
			if !bm.Pixel(x, y) {
				t.Fatalf("white pixel unlit at (%d, %d)", x, y)
			}
		}
		for x := 8; x < 16; x++ {
			if bm.Pixel(x, y) {
				t.Fatalf("black pixel lit at (%d, %d)", x, y)
			}
		}
	}
}

func TestRasterizeImagePadding(t *testing.T) {
	// 12 source columns at native height pad to 16; the padding stays dark.
	img := image.NewGray(image.Rect(0, 0, 12, 11))
	for y := 0; y < 11; y++ {
		for x := 0; x < 12; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	bm, err := RasterizeImage(img, 128)
	if err != nil {
		t.Fatal(err)
	}
	if bm.Width() != 16 {
		t.Fatalf("width: got %d want 16", bm.Width())
	}
	for y := 0; y < Rows; y++ {
		for x := 12; x < 16; x++ {
			if bm.Pixel(x, y) {
				t.Fatalf("padding lit at (%d, %d)", x, y)
			}
		}
	}
}

func TestRasterizeImageEmpty(t *testing.T) {
	if _, err := RasterizeImage(image.NewGray(image.Rect(0, 0, 0, 0)), 128); err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestFileLoaderRoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 22, 11))
	for y := 0; y < 11; y++ {
		for x := 0; x < 22; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	path := filepath.Join(t.TempDir(), "checker.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	bm, err := FileLoader{}.LoadBitmap(path)
	if err != nil {
		t.Fatal(err)
	}
	if bm.Width() != 24 {
		t.Fatalf("width: got %d want 24", bm.Width())
	}
	if !bm.Pixel(0, 0) || bm.Pixel(1, 0) {
		t.Fatal("checker pattern not preserved at native scale")
	}
}

func TestFileLoaderMissingFile(t *testing.T) {
	loader := FileLoader{}
	if _, err := loader.LoadBitmap(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFileLoaderGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	loader := FileLoader{}
	if _, err := loader.LoadBitmap(path); err == nil {
		t.Fatal("expected decode error")
	}
}
