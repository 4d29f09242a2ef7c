package ledbadge

import (
	"sort"
	"testing"
)

func TestIconNamesSortedAndComplete(t *testing.T) {
	names := IconNames()
	if len(names) != len(builtinIcons) {
		t.Fatalf("name count: got %d want %d", len(names), len(builtinIcons))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("icon names not sorted: %v", names)
	}
	for _, n := range names {
		if _, ok := LookupIcon(n); !ok {
			t.Fatalf("listed icon %q does not resolve", n)
		}
	}
}

func TestLookupIcon(t *testing.T) {
	for _, name := range IconNames() {
		bm, ok := LookupIcon(name)
		if !ok {
			t.Fatalf("icon %q missing", name)
		}
		if bm.Width() <= 0 || bm.Width()%8 != 0 {
			t.Fatalf("icon %q: width %d must be a positive multiple of 8", name, bm.Width())
		}
		if bm.ByteLen() != Rows*bm.Width()/8 {
			t.Fatalf("icon %q: byte length %d for width %d", name, bm.ByteLen(), bm.Width())
		}
		if countLit(bm) == 0 {
			t.Fatalf("icon %q is blank", name)
		}
	}
}

func TestLookupIconCaseInsensitive(t *testing.T) {
	lower, ok := LookupIcon("heart")
	if !ok {
		t.Fatal("heart icon missing")
	}
	for _, name := range []string{"HEART", "Heart", "hEaRt"} {
		bm, ok := LookupIcon(name)
		if !ok {
			t.Fatalf("LookupIcon(%q): not found", name)
		}
		if bm.Width() != lower.Width() {
			t.Fatalf("LookupIcon(%q): width %d, want %d", name, bm.Width(), lower.Width())
		}
	}
}

func TestLookupIconUnknown(t *testing.T) {
	if _, ok := LookupIcon("notarealicon"); ok {
		t.Fatal("unknown icon must not resolve")
	}
	if _, ok := LookupIcon(""); ok {
		t.Fatal("empty name must not resolve")
	}
}

func TestIconWidths(t *testing.T) {
	tests := []struct {
		name  string
		width int
	}{
		{"ball", 8},
		{"heart", 8},
		{"invader", 16},
		{"bike", 24},
	}
	for _, tc := range tests {
		bm, ok := LookupIcon(tc.name)
		if !ok {
			t.Fatalf("icon %q missing", tc.name)
		}
		if bm.Width() != tc.width {
			t.Fatalf("icon %q: width got %d want %d", tc.name, bm.Width(), tc.width)
		}
	}
}
