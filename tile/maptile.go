package tile

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// MapTile converts the tile to its paulmach/orb equivalent.
func (t ID) MapTile() maptile.Tile {
	return maptile.New(t.X, t.Y, maptile.Zoom(t.Z))
}

// FromMapTile converts a paulmach/orb tile.
func FromMapTile(mt maptile.Tile) ID {
	return ID{X: mt.X, Y: mt.Y, Z: uint32(mt.Z)}
}

// AtPoint returns the tile containing the given WGS 84 longitude/latitude
// at the given zoom.
func AtPoint(lon, lat float64, zoom uint32) ID {
	return FromMapTile(maptile.At(orb.Point{lon, lat}, maptile.Zoom(zoom)))
}

// GeoBound returns the tile's footprint as a WGS 84 longitude/latitude
// bound, unlike Bounds which stays in projected meters.
func (t ID) GeoBound() orb.Bound {
	return t.MapTile().Bound()
}

// CoveredTilesGeo returns an iterator over the minimal tile rectangle
// covering the given WGS 84 bound at the given zoom.
func CoveredTilesGeo(bound orb.Bound, zoom uint32) *Iterator {
	minTile := maptile.At(orb.Point{bound.Min.X(), bound.Max.Y()}, maptile.Zoom(zoom))
	maxTile := maptile.At(orb.Point{bound.Max.X(), bound.Min.Y()}, maptile.Zoom(zoom))

	return NewIterator(zoom, minTile.X, minTile.Y, maxTile.X, maxTile.Y)
}
