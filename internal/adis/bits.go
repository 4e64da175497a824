package adis

import "math/bits"

// fieldGet right-justifies the bits of val selected by mask.
func fieldGet(mask, val uint32) uint32 {
	return (val & mask) >> uint(bits.TrailingZeros32(mask))
}

// fieldPrep left-justifies val into the position selected by mask. Bits of
// val that do not fit the mask are dropped; the write-field path checks the
// range before calling this.
func fieldPrep(mask, val uint32) uint32 {
	return (val << uint(bits.TrailingZeros32(mask))) & mask
}

// fieldGetSigned right-justifies the masked bits and sign-extends them from
// the highest set bit position of the mask. Every signed field in the map
// starts at bit 0, so that position is the field's sign bit.
func fieldGetSigned(mask, val uint32) int32 {
	return signExtend32(fieldGet(mask, val), lastSetBit(mask))
}

// signExtend32 sign-extends v from bit position idx (0-based).
func signExtend32(v uint32, idx int) int32 {
	shift := uint(31 - idx)
	return int32(v<<shift) >> shift
}

// lastSetBit returns the position of the highest set bit of mask, or -1 when
// mask is zero.
func lastSetBit(mask uint32) int {
	return 31 - bits.LeadingZeros32(mask)
}
