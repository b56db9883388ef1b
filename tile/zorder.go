package tile

import (
	"cmp"
	"slices"
)

// MortonCode returns the Z-order curve key of the tile: the bits of X
// interleaved into the even positions and the bits of Y into the odd
// positions. The key is a pure function of (X, Y); zoom is not mixed in,
// so keys of tiles from different zoom levels compare by raw coordinates
// only.
func (t ID) MortonCode() uint64 {
	var code uint64
	for i := uint(0); i < 32; i++ {
		code |= uint64(t.X&(1<<i)) << i
		code |= uint64(t.Y&(1<<i)) << (i + 1)
	}
	return code
}

// SortByZOrder sorts tiles in place by ascending Morton code. The sort is
// stable, so equal keys keep their input order.
func SortByZOrder(tiles []ID) {
	slices.SortStableFunc(tiles, func(a, b ID) int {
		return cmp.Compare(a.MortonCode(), b.MortonCode())
	})
}
