package tile_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb/maptile"

	"github.com/eak1mov/go-tilegeom/tile"
)

func TestMapTileRoundTrip(t *testing.T) {
	for _, tileID := range []tile.ID{
		{X: 0, Y: 0, Z: 0},
		{X: 67, Y: 43, Z: 7},
		{X: 1<<15 - 1, Y: 42, Z: 15},
	} {
		mt := tileID.MapTile()
		if diff := cmp.Diff(maptile.New(tileID.X, tileID.Y, maptile.Zoom(tileID.Z)), mt); diff != "" {
			t.Errorf("MapTile(%v) mismatch (-want+got):\n%v", tileID, diff)
		}
		if diff := cmp.Diff(tileID, tile.FromMapTile(mt)); diff != "" {
			t.Errorf("FromMapTile(MapTile(%v)) mismatch (-want+got):\n%v", tileID, diff)
		}
	}
}

func TestAtPoint(t *testing.T) {
	// East of Greenwich, south of the equator: the bottom-right quadrant
	// at zoom 1.
	got := tile.AtPoint(0.1, -0.1, 1)
	if diff := cmp.Diff(tile.ID{X: 1, Y: 1, Z: 1}, got); diff != "" {
		t.Errorf("AtPoint mismatch (-want+got):\n%v", diff)
	}
}

func TestGeoBoundMatchesBounds(t *testing.T) {
	// Longitude maps linearly to mercator x, so the two footprints can
	// be compared directly on that axis. Column 2 of 4 starts at the
	// prime meridian and spans 90 degrees.
	tileID := tile.ID{X: 2, Y: 1, Z: 2}

	geoBound := tileID.GeoBound()
	bounds := tileID.Bounds(256)

	const eps = 1e-6
	if math.Abs(geoBound.Min.Lon()) > eps || math.Abs(geoBound.Max.Lon()-90) > eps {
		t.Errorf("GeoBound() lon range = [%v, %v], want [0, 90]",
			geoBound.Min.Lon(), geoBound.Max.Lon())
	}
	if math.Abs(bounds.MinX) > eps || math.Abs(bounds.Width()-bounds.MaxX) > eps {
		t.Errorf("Bounds() x range = [%v, %v], want [0, extent/2]", bounds.MinX, bounds.MaxX)
	}
}
