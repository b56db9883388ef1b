// Package tile provides tile coordinate types and math for quad-tree
// tiling of the Web Mercator square: hierarchy navigation, space-filling
// curve codes, projection to and from planar bounding boxes, and lazy
// enumeration of tile ranges.
package tile

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/eak1mov/go-tilegeom/geom"
)

// ErrInvalidTileID is reported by ParseID for anything that is not three
// slash-separated non-negative integers.
var ErrInvalidTileID = errors.New("tilegeom: invalid tile id, expected z/x/y")

// ID represents tile coordinates in the XYZ scheme (Tiled web map).
type ID struct {
	X uint32
	Y uint32
	Z uint32
}

func (t ID) Valid() bool {
	return t.Z < 32 && t.X < (1<<t.Z) && t.Y < (1<<t.Z)
}

// ReversedY returns the row index under the opposite vertical convention,
// converting between XYZ (north-up) and TMS (south-up).
func (t ID) ReversedY() uint32 {
	return (1 << t.Z) - 1 - t.Y
}

// Bounds projects the tile to Web Mercator meters for the given pixel
// tile edge length (typically 256). Adjacent tiles share edges up to
// floating epsilon.
func (t ID) Bounds(tileSize uint32) geom.BBox {
	size := float64(tileSize)

	totalPixels := size * math.Exp2(float64(t.Z))
	pixelSize := (2 * geom.WebMercatorExtent) / totalPixels

	minX := math.FMA(float64(t.X)*size, pixelSize, -geom.WebMercatorExtent)
	maxY := math.FMA(float64(t.Y)*size, -pixelSize, geom.WebMercatorExtent)

	maxX := math.FMA(size, pixelSize, minX)
	minY := math.FMA(size, -pixelSize, maxY)

	return geom.BBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Parent returns the enclosing tile one zoom level up.
// The second return value is false for zoom 0 tiles, which have no parent.
func (t ID) Parent() (ID, bool) {
	if t.Z == 0 {
		return ID{}, false
	}
	return ID{X: t.X >> 1, Y: t.Y >> 1, Z: t.Z - 1}, true
}

// Ancestor returns the enclosing tile level zoom levels up. Ancestor(0)
// returns the tile itself. Requesting more levels than the tile's zoom
// returns false.
func (t ID) Ancestor(level uint32) (ID, bool) {
	current, ok := t, true
	for range level {
		current, ok = current.Parent()
		if !ok {
			return ID{}, false
		}
	}
	return current, ok
}

// Children returns the four tiles covering this tile one zoom level down,
// in the order top-left, top-right, bottom-left, bottom-right.
func (t ID) Children() [4]ID {
	z := t.Z + 1
	x := t.X << 1
	y := t.Y << 1

	return [4]ID{
		{X: x, Y: y, Z: z},
		{X: x + 1, Y: y, Z: z},
		{X: x, Y: y + 1, Z: z},
		{X: x + 1, Y: y + 1, Z: z},
	}
}

// Descendants returns every tile covering this tile level zoom levels
// down, 4^level tiles in total. Descendants(0) returns just the tile
// itself.
func (t ID) Descendants(level uint32) []ID {
	tiles := []ID{t}

	for range level {
		next := make([]ID, 0, len(tiles)*4)
		for _, current := range tiles {
			children := current.Children()
			next = append(next, children[:]...)
		}
		tiles = next
	}

	return tiles
}

// SectorInAncestor returns the tile's (column, row) position within the
// footprint of its ancestor level zoom levels up, counted from the
// top-left corner.
func (t ID) SectorInAncestor(level uint32) (uint32, uint32) {
	mask := uint32(1)<<level - 1
	return t.X & mask, t.Y & mask
}

// ChildrenBuffered returns a lazy sequence of child-zoom tiles covering
// this tile's children plus a frame of buffer tiles on every side,
// 2*(buffer+1) tiles per axis. Coordinates wrap around the child-zoom
// grid edges independently per axis.
func (t ID) ChildrenBuffered(buffer uint32) iter.Seq[ID] {
	z := t.Z + 1
	x := t.X << 1
	y := t.Y << 1

	span := (buffer + 1) * 2
	gridSize := uint32(1) << z

	wrap := func(v uint32) uint32 {
		if buffer > v {
			v += gridSize
		}
		v -= buffer
		if v >= gridSize {
			v -= gridSize
		}
		return v
	}

	return func(yield func(ID) bool) {
		for dx := uint32(0); dx < span; dx++ {
			for dy := uint32(0); dy < span; dy++ {
				if !yield(ID{X: wrap(x + dx), Y: wrap(y + dy), Z: z}) {
					return
				}
			}
		}
	}
}

// String formats the tile as "z/x/y".
func (t ID) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y)
}

// ParseID parses a tile from its "z/x/y" form.
func ParseID(s string) (ID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return ID{}, ErrInvalidTileID
	}

	z, errZ := strconv.ParseUint(parts[0], 10, 32)
	x, errX := strconv.ParseUint(parts[1], 10, 32)
	y, errY := strconv.ParseUint(parts[2], 10, 32)
	if errZ != nil || errX != nil || errY != nil {
		return ID{}, ErrInvalidTileID
	}

	return ID{X: uint32(x), Y: uint32(y), Z: uint32(z)}, nil
}

// MercatorTileCoords returns the (column, row) of the tile containing the
// given Web Mercator point at the given zoom. Row 0 is the northernmost
// row (XYZ convention).
func MercatorTileCoords(x, y float64, zoom uint32) (uint32, uint32) {
	scale := math.Exp2(float64(zoom))

	tileX := math.Floor((x + geom.WebMercatorExtent) / (2 * geom.WebMercatorExtent) * scale)
	tileY := math.Floor((1 - (y+geom.WebMercatorExtent)/(2*geom.WebMercatorExtent)) * scale)

	return uint32(tileX), uint32(tileY)
}
