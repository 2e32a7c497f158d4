package arith

import "fmt"

// Rectangle is an axis-aligned rectangle described only by its size.
type Rectangle struct {
	Width  uint32
	Height uint32
}

// Area returns Width*Height, wrapping modulo 2^32.
func (r Rectangle) Area() uint32 {
	return r.Width * r.Height
}

// CheckedArea returns the area and an error wrapping ErrOverflow when the
// product does not fit in 32 bits.
func (r Rectangle) CheckedArea() (uint32, error) {
	area, overflow := mul32(r.Width, r.Height)
	if overflow {
		return area, fmt.Errorf("area of %dx%d: %w", r.Width, r.Height, ErrOverflow)
	}
	return area, nil
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
