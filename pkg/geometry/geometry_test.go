package geometry

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Left != 10 || r.Top != 20 || r.Right != 40 || r.Bottom != 60 {
		t.Errorf("RectFromLTWH = %+v, want LTRB 10,20,40,60", r)
	}
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("Width/Height = %v/%v, want 30/40", r.Width(), r.Height())
	}
	if got := r.Size(); got != (Size{Width: 30, Height: 40}) {
		t.Errorf("Size() = %+v, want 30x40", got)
	}
}

func TestRect_IsEmpty(t *testing.T) {
	cases := []struct {
		name string
		rect Rect
		want bool
	}{
		{"normal", RectFromLTWH(0, 0, 10, 10), false},
		{"zero width", RectFromLTWH(5, 5, 0, 10), true},
		{"zero height", RectFromLTWH(5, 5, 10, 0), true},
		{"negative", Rect{Left: 10, Top: 10, Right: 0, Bottom: 0}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rect.IsEmpty(); got != tc.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRect_Translate(t *testing.T) {
	r := RectFromLTWH(1, 2, 3, 4).Translate(10, 20)
	want := RectFromLTWH(11, 22, 3, 4)
	if !r.ApproxEqual(want) {
		t.Errorf("Translate = %+v, want %+v", r, want)
	}
}

func TestRect_Union(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(5, 5, 10, 10)
	want := RectFromLTWH(0, 0, 15, 15)
	if got := a.Union(b); !got.ApproxEqual(want) {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestRect_ApproxEqual(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(0.00001, 0, 10, 10)
	c := RectFromLTWH(0.5, 0, 10, 10)
	if !a.ApproxEqual(b) {
		t.Error("rects within tolerance should compare equal")
	}
	if a.ApproxEqual(c) {
		t.Error("rects beyond tolerance should compare unequal")
	}
}
