package gfx

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{0, 0, 10, 10},
			b:    Rect{5, 5, 10, 10},
			want: true,
		},
		{
			name: "touching edges do not overlap",
			a:    Rect{0, 0, 10, 10},
			b:    Rect{10, 0, 10, 10},
			want: false,
		},
		{
			name: "contained",
			a:    Rect{0, 0, 100, 100},
			b:    Rect{20, 20, 10, 10},
			want: true,
		},
		{
			name: "disjoint",
			a:    Rect{0, 0, 10, 10},
			b:    Rect{50, 50, 10, 10},
			want: false,
		},
		{
			name: "empty never intersects",
			a:    Rect{0, 0, 0, 0},
			b:    Rect{0, 0, 10, 10},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 10, 20, 20}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{15, 15}, true},
		{"top-left corner inclusive", Point{10, 10}, true},
		{"bottom-right corner exclusive", Point{30, 30}, false},
		{"outside", Point{5, 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi int
		want      int
	}{
		{"below range", -5, 0, 100, 0},
		{"in range", 50, 0, 100, 50},
		{"above range", 150, 0, 100, 100},
		{"inverted range pins to lower bound", 40, 0, -20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestSizeUnion(t *testing.T) {
	got := Size{10, 30}.Union(Size{20, 5})
	if got != (Size{20, 30}) {
		t.Errorf("Union = %v, want {20 30}", got)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{100, 100, 50, 20}

	if c := r.Center(); c != (Point{125, 110}) {
		t.Errorf("Center = %v, want {125 110}", c)
	}
	if o := r.Offset(10, -10); o != (Rect{110, 90, 50, 20}) {
		t.Errorf("Offset = %v", o)
	}
	if i := r.Inflate(2, 3); i != (Rect{98, 97, 54, 26}) {
		t.Errorf("Inflate = %v", i)
	}
	if RectFromSize(Size{60, 30}) != (Rect{0, 0, 60, 30}) {
		t.Error("RectFromSize mismatch")
	}
}
