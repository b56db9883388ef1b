// Package tilelist provides a flat binary encoding for lists of tile
// coordinates: fixed-width little-endian records, easily portable to
// other languages and utilities.
package tilelist

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/eak1mov/go-tilegeom/tile"
)

type record struct {
	Z uint32
	X uint32
	Y uint32
}

// WriteAll writes the tiles to writer as consecutive (Z, X, Y) records
// of little-endian uint32 values.
func WriteAll(tiles []tile.ID, writer io.Writer) error {
	records := make([]record, 0, len(tiles))
	for _, t := range tiles {
		records = append(records, record{Z: t.Z, X: t.X, Y: t.Y})
	}
	return binary.Write(writer, binary.LittleEndian, records)
}

// ReadAll decodes tiles written by WriteAll. Trailing bytes beyond the
// last whole record are ignored.
func ReadAll(data []byte) ([]tile.ID, error) {
	count := len(data) / binary.Size(record{})
	records := make([]record, count)

	err := binary.Read(bytes.NewReader(data), binary.LittleEndian, records)
	if err != nil {
		return nil, err
	}

	tiles := make([]tile.ID, 0, count)
	for _, r := range records {
		tiles = append(tiles, tile.ID{X: r.X, Y: r.Y, Z: r.Z})
	}
	return tiles, nil
}
