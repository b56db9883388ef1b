package tile_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"

	"github.com/eak1mov/go-tilegeom/geom"
	"github.com/eak1mov/go-tilegeom/tile"
)

func collectStrings(it *tile.Iterator, pyramid bool) []string {
	tiles := it.All()
	if pyramid {
		tiles = it.Pyramid()
	}

	var result []string
	for t := range tiles {
		result = append(result, t.String())
	}
	return result
}

func TestIterator(t *testing.T) {
	got := collectStrings(tile.NewIterator(3, 1, 2, 2, 4), false)
	want := []string{
		"3/1/2", "3/2/2",
		"3/1/3", "3/2/3",
		"3/1/4", "3/2/4",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("iteration mismatch (-want+got):\n%v", diff)
	}
}

func TestIteratorSingleTile(t *testing.T) {
	got := collectStrings(tile.NewIterator(5, 7, 9, 7, 9), false)
	if diff := cmp.Diff([]string{"5/7/9"}, got); diff != "" {
		t.Errorf("iteration mismatch (-want+got):\n%v", diff)
	}
}

func TestIteratorEmptyRange(t *testing.T) {
	if got := collectStrings(tile.NewIterator(3, 2, 0, 1, 5), false); got != nil {
		t.Errorf("inverted x range yielded %v, want nothing", got)
	}
	if got := collectStrings(tile.NewIterator(3, 0, 5, 5, 2), false); got != nil {
		t.Errorf("inverted y range yielded %v, want nothing", got)
	}
}

func TestIteratorTerminal(t *testing.T) {
	it := tile.NewIterator(1, 0, 0, 0, 0)
	if _, ok := it.Next(); !ok {
		t.Fatalf("expected one tile")
	}
	for range 3 {
		if _, ok := it.Next(); ok {
			t.Errorf("exhausted iterator yielded a tile")
		}
	}
}

func TestCoveredTiles(t *testing.T) {
	bbox := geom.NewBBox(1137489.0, 5980732.0, 1711100.0, 6428543.0)

	got := collectStrings(tile.CoveredTiles(bbox, 7), false)
	want := []string{
		"7/67/43", "7/68/43", "7/69/43",
		"7/67/44", "7/68/44", "7/69/44",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CoveredTiles mismatch (-want+got):\n%v", diff)
	}
}

func TestCoveredTilesWholeWorld(t *testing.T) {
	bbox := geom.NewBBox(
		-geom.WebMercatorExtent, -geom.WebMercatorExtent,
		geom.WebMercatorExtent, geom.WebMercatorExtent)

	got := collectStrings(tile.CoveredTiles(bbox, 0), false)
	if diff := cmp.Diff([]string{"0/0/0"}, got); diff != "" {
		t.Errorf("CoveredTiles mismatch (-want+got):\n%v", diff)
	}

	if got := collectStrings(tile.CoveredTiles(bbox, 2), false); len(got) != 16 {
		t.Errorf("zoom 2 world cover has %d tiles, want 16", len(got))
	}
}

func TestCoveredTilesMatchesBounds(t *testing.T) {
	// Covering a tile's own bounds at its zoom yields that tile; edges
	// landing on grid lines may pull in a direct neighbor, but never
	// more (floating epsilon only, no gaps).
	for _, tileID := range []tile.ID{
		{X: 0, Y: 0, Z: 0},
		{X: 67, Y: 43, Z: 7},
		{X: 1023, Y: 512, Z: 10},
	} {
		var count int
		var found bool
		for got := range tile.CoveredTiles(tileID.Bounds(256), tileID.Z).All() {
			count++
			if got == tileID {
				found = true
			}
		}
		if !found {
			t.Errorf("cover of %v bounds does not contain the tile", tileID)
		}
		if count > 4 {
			t.Errorf("cover of %v bounds has %d tiles", tileID, count)
		}
	}
}

func TestPyramid(t *testing.T) {
	got := collectStrings(tile.NewIterator(2, 1, 1, 2, 3), true)
	want := []string{
		"2/1/1", "1/0/0", "0/0/0",
		"2/2/1", "1/1/0",
		"2/1/2", "1/0/1",
		"2/2/2", "1/1/1",
		"2/1/3",
		"2/2/3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pyramid mismatch (-want+got):\n%v", diff)
	}

	unique := make(map[string]bool)
	for _, s := range got {
		if unique[s] {
			t.Errorf("tile %v emitted twice", s)
		}
		unique[s] = true
	}
}

func TestPyramidSingleTile(t *testing.T) {
	got := collectStrings(tile.NewIterator(3, 5, 2, 5, 2), true)
	want := []string{"3/5/2", "2/2/1", "1/1/0", "0/0/0"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pyramid mismatch (-want+got):\n%v", diff)
	}
}

func TestCoveredTilesGeo(t *testing.T) {
	world := orb.Bound{Min: orb.Point{-179.9, -85.0}, Max: orb.Point{179.9, 85.0}}

	got := collectStrings(tile.CoveredTilesGeo(world, 1), false)
	want := []string{
		"1/0/0", "1/1/0",
		"1/0/1", "1/1/1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CoveredTilesGeo mismatch (-want+got):\n%v", diff)
	}
}
