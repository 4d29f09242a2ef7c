package ledbadge

import (
	"errors"
	"fmt"
)

// ImageLoader turns an image file into a badge bitmap. Implementations
// must return a bitmap that satisfies the Bitmap invariant (11 rows,
// width a positive multiple of 8) or fail.
type ImageLoader interface {
	LoadBitmap(path string) (Bitmap, error)
}

// Compose resolves tokens to bitmaps and splices them into one
// horizontal strip in token order. Image tokens are resolved through
// loader; a nil loader rejects every image token. The result width is
// the sum of the resolved widths.
func Compose(tokens []Token, loader ImageLoader) (Bitmap, error) {
	if len(tokens) == 0 {
		return Bitmap{}, ErrEmptyMessage
	}
	parts := make([]Bitmap, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenChar:
			parts = append(parts, GlyphBitmap(tok.Char))
		case TokenIcon:
			bm, ok := LookupIcon(tok.Name)
			if !ok {
				return Bitmap{}, fmt.Errorf("unknown icon %q", tok.Name)
			}
			parts = append(parts, bm)
		case TokenImage:
			if loader == nil {
				return Bitmap{}, &InvalidImageError{Path: tok.Path, Err: errors.New("no image loader configured")}
			}
			bm, err := loader.LoadBitmap(tok.Path)
			if err != nil {
				return Bitmap{}, &InvalidImageError{Path: tok.Path, Err: err}
			}
			if bm.Width() == 0 {
				return Bitmap{}, &InvalidImageError{Path: tok.Path, Err: errors.New("loader produced an empty bitmap")}
			}
			parts = append(parts, bm)
		default:
			return Bitmap{}, fmt.Errorf("unknown token kind %d", tok.Kind)
		}
	}
	return concatBitmaps(parts), nil
}

// ComposeMessage tokenizes msg and composes the result in one step.
func ComposeMessage(msg string, loader ImageLoader) (Bitmap, error) {
	return Compose(Tokenize(msg), loader)
}
