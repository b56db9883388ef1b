package tile

import (
	"cmp"
	"math/bits"
	"slices"

	"github.com/google/hilbert"
)

// HilbertID returns the tile's position on the global Hilbert curve as
// used by the PMTiles format: tiles of all zoom levels share one key
// space, with every zoom-z tile keyed after the (4^z - 1) / 3 tiles of
// the shallower levels.
func (t ID) HilbertID() uint64 {
	h, _ := hilbert.NewHilbert(1 << t.Z)
	curvePos, _ := h.MapInverse(int(t.X), int(t.Y))

	zoomOffset := (uint64(1)<<(2*t.Z) - 1) / 3
	return zoomOffset + uint64(curvePos)
}

// FromHilbertID is the inverse of HilbertID.
func FromHilbertID(id uint64) ID {
	z := uint32(bits.Len64(3*id+1)-1) / 2
	zoomOffset := (uint64(1)<<(2*z) - 1) / 3

	h, _ := hilbert.NewHilbert(1 << z)
	x, y, _ := h.Map(int(id - zoomOffset))

	return ID{X: uint32(x), Y: uint32(y), Z: z}
}

// SortByHilbertID sorts tiles in place by ascending global Hilbert ID.
func SortByHilbertID(tiles []ID) {
	slices.SortStableFunc(tiles, func(a, b ID) int {
		return cmp.Compare(a.HilbertID(), b.HilbertID())
	})
}
