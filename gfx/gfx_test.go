package gfx

import (
	"image"
	"testing"
)

func TestRectSize(t *testing.T) {
	r := Rect{Min: Point{X: 10, Y: 20}, Max: Point{X: 30, Y: 50}}
	if got := r.Size(); got != (Point{X: 20, Y: 30}) {
		t.Errorf("Size() = %v, want (20,30)", got)
	}
}

func TestRectScissorFloorsMin(t *testing.T) {
	cases := []struct {
		name string
		in   Rect
		want image.Rectangle
	}{
		{
			name: "integral",
			in:   Rect{Min: Point{X: 2, Y: 3}, Max: Point{X: 12, Y: 23}},
			want: image.Rect(2, 3, 12, 23),
		},
		{
			name: "fractional min",
			in:   Rect{Min: Point{X: 10.75, Y: 20.5}, Max: Point{X: 30.75, Y: 40.5}},
			want: image.Rect(10, 20, 30, 40),
		},
		{
			name: "empty",
			in:   Rect{Min: Point{X: 5, Y: 5}, Max: Point{X: 5, Y: 5}},
			want: image.Rect(5, 5, 5, 5),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Scissor(); got != tc.want {
				t.Errorf("Scissor() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPremultipliedAlphaBlend(t *testing.T) {
	mode := PremultipliedAlphaBlend()

	// dst.rgb = src.rgb*1 + dst.rgb*(1-src.a)
	if got, want := mode.Color, (BlendChannel{Src: BlendOne, Dst: BlendOneMinusSrcAlpha, Op: BlendAdd}); got != want {
		t.Errorf("color channel = %v, want %v", got, want)
	}
	// dst.a = src.a*(1-dst.a) + dst.a*1, the same over-law on alpha
	if got, want := mode.Alpha, (BlendChannel{Src: BlendOneMinusDstAlpha, Dst: BlendOne, Op: BlendAdd}); got != want {
		t.Errorf("alpha channel = %v, want %v", got, want)
	}

	// The descriptor is a value: every composition yields the same mode.
	if PremultipliedAlphaBlend() != mode {
		t.Error("descriptor differs across compositions")
	}
}
