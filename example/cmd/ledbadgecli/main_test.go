package main

import "testing"

func TestSplitToInts(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{name: "single", in: "4", want: []int{4}},
		{name: "commas", in: "1,2,3", want: []int{1, 2, 3}},
		{name: "spaces", in: "1 2 3", want: []int{1, 2, 3}},
		{name: "mixed", in: "1, 2,3", want: []int{1, 2, 3}},
		{name: "negative", in: "-1", want: []int{-1}},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "1,x", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := splitToInts(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("splitToInts(%q): expected error", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitToInts(%q): %v", tc.in, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("splitToInts(%q): got %v want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("splitToInts(%q)[%d]: got %d want %d", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestPickRepeatsLastValue(t *testing.T) {
	vals := []int{1, 2}
	tests := []struct {
		i    int
		want int
	}{
		{0, 1},
		{1, 2},
		{2, 2},
		{7, 2},
	}
	for _, tc := range tests {
		if got := pick(vals, tc.i); got != tc.want {
			t.Fatalf("pick(%v, %d): got %d want %d", vals, tc.i, got, tc.want)
		}
	}
}
