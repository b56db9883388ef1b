package geom

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidBBox is reported by ParseBBox for malformed input. Numeric
// failures additionally wrap the underlying strconv error.
var ErrInvalidBBox = errors.New("tilegeom: invalid bbox")

// BBox is an axis-aligned rectangle in projected-plane meters.
// It does not enforce Min <= Max; callers are trusted on that.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func NewBBox(minX, minY, maxX, maxY float64) BBox {
	return BBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Contains reports whether the point lies inside the box. The test is
// half-open: x in [MinX, MaxX), y in [MinY, MaxY).
func (b BBox) Contains(x, y float64) bool {
	return x >= b.MinX && y >= b.MinY && x < b.MaxX && y < b.MaxY
}

func (b BBox) Width() float64 {
	return b.MaxX - b.MinX
}

func (b BBox) Height() float64 {
	return b.MaxY - b.MinY
}

// Buffered returns a copy of the box with every side moved outward by
// buffer meters. A negative buffer shrinks the box.
func (b BBox) Buffered(buffer float64) BBox {
	return BBox{
		MinX: b.MinX - buffer,
		MinY: b.MinY - buffer,
		MaxX: b.MaxX + buffer,
		MaxY: b.MaxY + buffer,
	}
}

// Array returns the box as [minX, minY, maxX, maxY].
func (b BBox) Array() [4]float64 {
	return [4]float64{b.MinX, b.MinY, b.MaxX, b.MaxY}
}

// FromArray builds a box from [minX, minY, maxX, maxY].
func FromArray(a [4]float64) BBox {
	return BBox{MinX: a[0], MinY: a[1], MaxX: a[2], MaxY: a[3]}
}

// String formats the box as "minX,minY,maxX,maxY" using the shortest
// decimal form that round-trips through ParseBBox.
func (b BBox) String() string {
	fields := make([]string, 0, 4)
	for _, v := range b.Array() {
		fields = append(fields, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return strings.Join(fields, ",")
}

// ParseBBox parses "minX,minY,maxX,maxY". Whitespace around each field is
// ignored. Exactly 4 comma-separated fields are required.
func ParseBBox(s string) (BBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BBox{}, fmt.Errorf("%w: expected exactly 4 comma-separated values", ErrInvalidBBox)
	}

	var coords [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BBox{}, fmt.Errorf("%w: %w", ErrInvalidBBox, err)
		}
		coords[i] = v
	}

	return FromArray(coords), nil
}
