package ledbadge

import (
	"errors"
	"fmt"
	"testing"
)

type fakeLoader struct {
	bitmaps map[string]Bitmap
}

func (l fakeLoader) LoadBitmap(path string) (Bitmap, error) {
	bm, ok := l.bitmaps[path]
	if !ok {
		return Bitmap{}, fmt.Errorf("no such file: %s", path)
	}
	return bm, nil
}

func TestComposeASCIIWidth(t *testing.T) {
	// Without ':' every character is one 8-pixel glyph.
	for _, msg := range []string{"HI", "Hello, World!", "x", "1234567890"} {
		bm, err := ComposeMessage(msg, nil)
		if err != nil {
			t.Fatalf("compose %q: %v", msg, err)
		}
		if want := 8 * len(msg); bm.Width() != want {
			t.Fatalf("compose %q: width got %d want %d", msg, bm.Width(), want)
		}
		if bm.ByteLen() != Rows*len(msg) {
			t.Fatalf("compose %q: byte length got %d want %d", msg, bm.ByteLen(), Rows*len(msg))
		}
	}
}

func TestComposeEmptyMessage(t *testing.T) {
	if _, err := ComposeMessage("", nil); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("got %v, want ErrEmptyMessage", err)
	}
	if _, err := Compose(nil, nil); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("got %v, want ErrEmptyMessage", err)
	}
}

func TestComposeWithIcon(t *testing.T) {
	ball, ok := LookupIcon("ball")
	if !ok {
		t.Fatal("ball icon missing")
	}

	bm, err := ComposeMessage("I:ball:you", nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := 8*len("Iyou") + ball.Width(); bm.Width() != want {
		t.Fatalf("width: got %d want %d", bm.Width(), want)
	}
}

func TestComposeWithImage(t *testing.T) {
	logo, err := NewBitmap(16, make([]byte, 22))
	if err != nil {
		t.Fatal(err)
	}
	loader := fakeLoader{bitmaps: map[string]Bitmap{"img/logo.png": logo}}

	bm, err := ComposeMessage("a:img/logo.png:b", loader)
	if err != nil {
		t.Fatal(err)
	}
	if want := 8 + 16 + 8; bm.Width() != want {
		t.Fatalf("width: got %d want %d", bm.Width(), want)
	}
}

func TestComposeImageFailures(t *testing.T) {
	loader := fakeLoader{bitmaps: map[string]Bitmap{"empty.png": {}}}

	tests := []struct {
		name   string
		msg    string
		loader ImageLoader
	}{
		{name: "missing-file", msg: ":no/such/file.png:", loader: loader},
		{name: "nil-loader", msg: ":logo.png:", loader: nil},
		{name: "empty-bitmap", msg: ":empty.png:", loader: loader},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComposeMessage(tc.msg, tc.loader)
			var invalid *InvalidImageError
			if !errors.As(err, &invalid) {
				t.Fatalf("got %v, want InvalidImageError", err)
			}
		})
	}
}

func TestComposeUnknownRuneFallsBack(t *testing.T) {
	// Arbitrary text must always be displayable: unmapped characters
	// render as blank glyphs rather than failing.
	bm, err := ComposeMessage("aπb", nil)
	if err != nil {
		t.Fatal(err)
	}
	if bm.Width() != 24 {
		t.Fatalf("width: got %d want 24", bm.Width())
	}
	for y := 0; y < Rows; y++ {
		for x := 8; x < 16; x++ {
			if bm.Pixel(x, y) {
				t.Fatalf("fallback glyph region lit at (%d, %d)", x, y)
			}
		}
	}
}
