package arith

import (
	"errors"
	"testing"
)

func TestRectangleArea(t *testing.T) {
	tests := []struct {
		rect Rectangle
		want uint32
	}{
		{Rectangle{Width: 3, Height: 4}, 12},
		{Rectangle{Width: 0, Height: 7}, 0},
		{Rectangle{Width: 7, Height: 0}, 0},
		{Rectangle{Width: 1, Height: 1}, 1},
		{Rectangle{Width: 65535, Height: 65537}, 4294967295},
		// 65536*65536 = 2^32 wraps to zero.
		{Rectangle{Width: 65536, Height: 65536}, 0},
		{Rectangle{Width: ^uint32(0), Height: 2}, ^uint32(0) - 1},
	}

	for _, tt := range tests {
		if got := tt.rect.Area(); got != tt.want {
			t.Errorf("%v.Area() = %d, want %d", tt.rect, got, tt.want)
		}
	}
}

func TestRectangleAreaProduct(t *testing.T) {
	for w := uint32(0); w < 300; w += 7 {
		for h := uint32(0); h < 300; h += 11 {
			r := Rectangle{Width: w, Height: h}
			if got := r.Area(); got != w*h {
				t.Fatalf("%v.Area() = %d, want %d", r, got, w*h)
			}
		}
	}
}

func TestRectangleCheckedArea(t *testing.T) {
	area, err := Rectangle{Width: 65535, Height: 65537}.CheckedArea()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if area != 4294967295 {
		t.Errorf("got %d, want 4294967295", area)
	}

	area, err = Rectangle{Width: 65536, Height: 65536}.CheckedArea()
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("got error %v, want ErrOverflow", err)
	}
	if area != 0 {
		t.Errorf("wrapped area = %d, want 0", area)
	}
}

func TestRectangleEquality(t *testing.T) {
	a := Rectangle{Width: 3, Height: 4}
	b := Rectangle{Width: 3, Height: 4}
	if a != b {
		t.Error("rectangles with equal sides should compare equal")
	}
	if a == (Rectangle{Width: 4, Height: 3}) {
		t.Error("rotated rectangle should not compare equal")
	}
}
