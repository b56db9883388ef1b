package geom

import "github.com/paulmach/orb"

// Bound converts the box to an orb.Bound in the same planar coordinates.
func (b BBox) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinX, b.MinY},
		Max: orb.Point{b.MaxX, b.MaxY},
	}
}

// FromBound builds a box from an orb.Bound.
func FromBound(bound orb.Bound) BBox {
	return BBox{
		MinX: bound.Min.X(),
		MinY: bound.Min.Y(),
		MaxX: bound.Max.X(),
		MaxY: bound.Max.Y(),
	}
}
