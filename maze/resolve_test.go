package maze

import (
	"slices"
	"testing"

	"github.com/lixenwraith/labyrinth/vmath"
)

func TestSelectIntersecting(t *testing.T) {
	elements := []Element{
		{Bounds: vmath.NewBox(vmath.V3(0, 0, 0), vmath.V3(1, 1, 1))},
		{Bounds: vmath.NewBox(vmath.V3(2, 2, 2), vmath.V3(3, 3, 3))},
		{Bounds: vmath.NewBox(vmath.V3(1, 0, 0), vmath.V3(2, 1, 1))}, // touches element 0 at x=1
		{Bounds: vmath.NewBox(vmath.V3(0, 0, 5), vmath.V3(1, 1, 6))}, // overlaps on X/Y only
	}

	tests := []struct {
		name   string
		region vmath.Box
		want   []int
	}{
		{"inside first", vmath.NewBox(vmath.V3(0.2, 0.2, 0.2), vmath.V3(0.4, 0.4, 0.4)), []int{0}},
		{"face touch counts", vmath.NewBox(vmath.V3(1, 0.5, 0.5), vmath.V3(1, 0.5, 0.5)), []int{0, 2}},
		{"no overlap", vmath.NewBox(vmath.V3(10, 10, 10), vmath.V3(11, 11, 11)), nil},
		{"all axes required", vmath.NewBox(vmath.V3(0, 0, 3), vmath.V3(1, 1, 4)), nil},
		{"tall column", vmath.NewBox(vmath.V3(0.5, 0.5, 0), vmath.V3(0.5, 0.5, 6)), []int{0, 3}},
	}
	for _, tt := range tests {
		got := SelectIntersecting(tt.region, elements)
		if !slices.Equal(got, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSelectIntersectingEmpty(t *testing.T) {
	if got := SelectIntersecting(vmath.Box{}, nil); len(got) != 0 {
		t.Errorf("Expected no hits, got %v", got)
	}
}
