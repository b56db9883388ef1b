package tile

import (
	"iter"
	"math"

	"github.com/eak1mov/go-tilegeom/geom"
)

// Iterator is a lazy cursor over the rectangular tile range
// [minX, maxX] x [minY, maxY] at one fixed zoom, enumerated row by row
// (all columns of a row, then the next row). Once exhausted it stays
// exhausted.
type Iterator struct {
	zoom uint32
	minX uint32
	maxX uint32
	maxY uint32
	x    uint32
	y    uint32
	done bool
}

// NewIterator creates an iterator over the inclusive tile range
// [minX, maxX] x [minY, maxY] at the given zoom. An inverted range
// (min greater than max on either axis) yields no tiles.
func NewIterator(zoom, minX, minY, maxX, maxY uint32) *Iterator {
	return &Iterator{
		zoom: zoom,
		minX: minX,
		maxX: maxX,
		maxY: maxY,
		x:    minX,
		y:    minY,
		done: minX > maxX || minY > maxY,
	}
}

// Next returns the next tile of the range. The second return value is
// false once the range is exhausted.
func (it *Iterator) Next() (ID, bool) {
	if it.done {
		return ID{}, false
	}

	current := ID{X: it.x, Y: it.y, Z: it.zoom}

	switch {
	case it.x < it.maxX:
		it.x++
	case it.y < it.maxY:
		it.x = it.minX
		it.y++
	default:
		it.done = true
	}

	return current, true
}

// All returns the remaining tiles of the range as an iterator sequence.
// The sequence drains the underlying cursor.
func (it *Iterator) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for t, ok := it.Next(); ok; t, ok = it.Next() {
			if !yield(t) {
				return
			}
		}
	}
}

// Pyramid returns the tiles of the range together with all their
// ancestors up to zoom 0, flattened into one sequence. Each base tile is
// followed by its ancestor chain; tiles already emitted earlier in the
// run are skipped, so every tile appears exactly once, in
// first-encounter order.
func (it *Iterator) Pyramid() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		seen := make(map[ID]struct{})

		for t, ok := it.Next(); ok; t, ok = it.Next() {
			for current, walking := t, true; walking; current, walking = current.Parent() {
				if _, emitted := seen[current]; emitted {
					// Ancestors of an emitted tile were emitted with it.
					break
				}
				seen[current] = struct{}{}

				if !yield(current) {
					return
				}
			}
		}
	}
}

// CoveredTiles returns an iterator over the minimal tile rectangle
// covering bbox at the given zoom.
func CoveredTiles(bbox geom.BBox, zoom uint32) *Iterator {
	tileSizeMeters := (2 * geom.WebMercatorExtent) / math.Exp2(float64(zoom))

	minTileX := uint32(math.Floor((bbox.MinX + geom.WebMercatorExtent) / tileSizeMeters))
	maxTileX := uint32(math.Ceil((bbox.MaxX+geom.WebMercatorExtent)/tileSizeMeters)) - 1
	minTileY := uint32(math.Floor((geom.WebMercatorExtent - bbox.MaxY) / tileSizeMeters))
	maxTileY := uint32(math.Ceil((geom.WebMercatorExtent-bbox.MinY)/tileSizeMeters)) - 1

	return NewIterator(zoom, minTileX, minTileY, maxTileX, maxTileY)
}
