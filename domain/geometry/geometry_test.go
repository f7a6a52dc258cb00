package geometry

import (
	"image"
	"testing"
)

func TestNormalize_MinMaxInvariant(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   Rect
	}{
		{"top_left_to_bottom_right", Pt(10, 10), Pt(50, 40), Rect{10, 10, 50, 40}},
		{"bottom_right_to_top_left", Pt(50, 40), Pt(10, 10), Rect{10, 10, 50, 40}},
		{"up_right_drag", Pt(10, 10), Pt(50, 5), Rect{10, 5, 50, 10}},
		{"down_left_drag", Pt(50, 5), Pt(10, 10), Rect{10, 5, 50, 10}},
		{"degenerate_same_point", Pt(5, 5), Pt(5, 5), Rect{5, 5, 5, 5}},
		{"negative_coords", Pt(-3, 7), Pt(2, -1), Rect{-3, -1, 2, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.p1, tt.p2)
			if got != tt.want {
				t.Errorf("Normalize(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
			if got.MinX > got.MaxX || got.MinY > got.MaxY {
				t.Errorf("normalized rect violates min<=max: %v", got)
			}
		})
	}
}

func TestNormalize_Symmetric(t *testing.T) {
	pairs := [][2]Point{
		{Pt(0, 0), Pt(10, 10)},
		{Pt(-5, 3), Pt(8, -2)},
		{Pt(1.5, 2.5), Pt(0.5, 9)},
		{Pt(7, 7), Pt(7, 7)},
	}
	for _, pp := range pairs {
		if Normalize(pp[0], pp[1]) != Normalize(pp[1], pp[0]) {
			t.Errorf("Normalize not symmetric for %v, %v", pp[0], pp[1])
		}
	}
}

func TestContains_EdgeSemantics(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Pt(15, 15), true},
		{"min_corner_inclusive", Pt(10, 10), true},
		{"max_corner_exclusive", Pt(20, 20), false},
		{"right_edge_exclusive", Pt(20, 15), false},
		{"bottom_edge_exclusive", Pt(15, 20), false},
		{"left_edge_inclusive", Pt(10, 15), true},
		{"top_edge_inclusive", Pt(15, 10), true},
		{"outside", Pt(9, 15), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestContains_NoDoubleHitOnSharedEdge(t *testing.T) {
	left := Rect{0, 0, 10, 10}
	right := Rect{10, 0, 20, 10}
	p := Pt(10, 5)
	if left.Contains(p) {
		t.Errorf("point on shared edge should not hit the left rect")
	}
	if !right.Contains(p) {
		t.Errorf("point on shared edge should hit the right rect")
	}
}

func TestScale(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	got := r.Scale(2.0, 2.0)
	want := Rect{0, 0, 20, 20}
	if got != want {
		t.Errorf("Scale(2,2) = %v, want %v", got, want)
	}

	asym := Rect{10, 20, 110, 70}.Scale(2.0, 1.5)
	if asym != (Rect{20, 30, 220, 105}) {
		t.Errorf("asymmetric scale = %v", asym)
	}
}

func TestPixels_Rounding(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want image.Rectangle
	}{
		{"integral", Rect{0, 0, 20, 20}, image.Rect(0, 0, 20, 20)},
		{"half_rounds_away", Rect{0.5, 1.5, 10.5, 11.5}, image.Rect(1, 2, 11, 12)},
		{"fractional_125_scale", Rect{0, 0, 12.5, 12.5}, image.Rect(0, 0, 13, 13)},
		{"below_half_rounds_down", Rect{0.4, 0.4, 9.4, 9.4}, image.Rect(0, 0, 9, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Pixels(); got != tt.want {
				t.Errorf("Pixels(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestUnionAndInflate(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, -5, 20, 8}
	u := a.Union(b)
	if u != (Rect{0, -5, 20, 10}) {
		t.Errorf("Union = %v", u)
	}

	inflated := a.Inflate(2)
	if inflated != (Rect{-2, -2, 12, 12}) {
		t.Errorf("Inflate(2) = %v", inflated)
	}
}

func TestFromPosSize_NegativeSizeNormalizes(t *testing.T) {
	r := FromPosSize(Pt(10, 10), Size{W: -4, H: 6})
	if r != (Rect{6, 10, 10, 16}) {
		t.Errorf("FromPosSize with negative width = %v", r)
	}
}
