package adis

import "testing"

func TestFieldGetSigned(t *testing.T) {
	t.Run("AllOnesIsMinusOne", func(t *testing.T) {
		if got := fieldGetSigned(0x0FFF, 0x0FFF); got != -1 {
			t.Errorf("expected -1, got %d", got)
		}
	})

	t.Run("SignBitOnly", func(t *testing.T) {
		if got := fieldGetSigned(0x0FFF, 0x0800); got != -2048 {
			t.Errorf("expected -2048, got %d", got)
		}
	})

	t.Run("MaxPositive", func(t *testing.T) {
		if got := fieldGetSigned(0x0FFF, 0x07FF); got != 2047 {
			t.Errorf("expected 2047, got %d", got)
		}
	})

	t.Run("ShiftedField", func(t *testing.T) {
		// Sign extension runs from the mask's absolute highest bit (7 here),
		// so the right-justified value 0b1111 stays positive. Signed fields
		// in the map all start at bit 0.
		if got := fieldGetSigned(0x00F0, 0x00F0); got != 15 {
			t.Errorf("expected 15, got %d", got)
		}
	})
}

func TestFieldGetPrepRoundTrip(t *testing.T) {
	masks := []uint32{0x0001, 0x001C, 0x0FFF, 0xFF00, 0xFFFFFFFF}
	for _, mask := range masks {
		max := fieldGet(mask, mask)
		for _, v := range []uint32{0, 1, max / 2, max} {
			if got := fieldGet(mask, fieldPrep(mask, v)); got != v {
				t.Errorf("mask 0x%x: round trip of %d gave %d", mask, v, got)
			}
		}
	}
}

func TestFieldPrepDoesNotLeak(t *testing.T) {
	// Bits outside the mask are dropped.
	if got := fieldPrep(0x00F0, 0x1F); got != 0x00F0 {
		t.Errorf("expected 0x00F0, got 0x%x", got)
	}
}
