package ledbadge

import (
	"sort"
	"strings"
)

type iconEntry struct {
	width int
	data  []byte
}

// builtinIcons maps lower-case icon names to their bitmaps. Icon widths
// are positive multiples of 8; wider icons span several byte columns.
var builtinIcons = map[string]iconEntry{
	"ball": {width: 8, data: []byte{
		0x00, 0x3c, 0x7e, 0xff, 0xff, 0xff, 0xff, 0x7e, 0x3c, 0x00, 0x00,
	}},
	"bike": {width: 24, data: []byte{
		0x00, 0x00, 0x00, 0x00, 0x1e, 0x00, 0x00, 0x12, 0x00, 0x00, 0x7f, 0x80, 0x00, 0x84, 0x80, 0x01, 0x08, 0x40, 0x3a, 0x10, 0xb8, 0x45, 0xef, 0x44, 0x45, 0x09, 0x44, 0x38, 0x00, 0x38, 0x00, 0x00, 0x00,
	}},
	"happy": {width: 8, data: []byte{
		0x00, 0x3c, 0x42, 0xa5, 0x81, 0xa5, 0x99, 0x42, 0x3c, 0x00, 0x00,
	}},
	"heart": {width: 8, data: []byte{
		0x00, 0x66, 0xff, 0xff, 0xff, 0x7e, 0x3c, 0x18, 0x00, 0x00, 0x00,
	}},
	"heart2": {width: 8, data: []byte{
		0x00, 0x66, 0x99, 0x81, 0x81, 0x42, 0x24, 0x18, 0x00, 0x00, 0x00,
	}},
	"invader": {width: 16, data: []byte{
		0x00, 0x00, 0x08, 0x10, 0x04, 0x20, 0x0f, 0xf0, 0x1b, 0xd8, 0x3f, 0xfc, 0x2f, 0xf4, 0x28, 0x14, 0x06, 0x60, 0x00, 0x00, 0x00, 0x00,
	}},
	"music": {width: 8, data: []byte{
		0x00, 0x1f, 0x11, 0x11, 0x11, 0x11, 0x77, 0xf7, 0x62, 0x00, 0x00,
	}},
	"phone": {width: 8, data: []byte{
		0x00, 0xc3, 0xe7, 0x7e, 0x3c, 0x3c, 0x3c, 0x3c, 0x7e, 0x00, 0x00,
	}},
	"sad": {width: 8, data: []byte{
		0x00, 0x3c, 0x42, 0xa5, 0x81, 0x99, 0xa5, 0x42, 0x3c, 0x00, 0x00,
	}},
	"skull": {width: 8, data: []byte{
		0x00, 0x3c, 0x7e, 0xdb, 0xdb, 0xff, 0x7e, 0x24, 0x3c, 0x00, 0x00,
	}},
	"star": {width: 8, data: []byte{
		0x00, 0x18, 0x18, 0xff, 0x7e, 0x3c, 0x3c, 0x66, 0x42, 0x00, 0x00,
	}},
}

// LookupIcon returns the built-in icon called name. Names are
// case-insensitive. The second result is false when no such icon
// exists; there is no empty icon.
func LookupIcon(name string) (Bitmap, bool) {
	e, ok := builtinIcons[strings.ToLower(name)]
	if !ok {
		return Bitmap{}, false
	}
	data := make([]byte, len(e.data))
	copy(data, e.data)
	return Bitmap{width: e.width, data: data}, true
}

// IconNames lists the built-in icon names in sorted order.
func IconNames() []string {
	names := make([]string, 0, len(builtinIcons))
	for n := range builtinIcons {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
