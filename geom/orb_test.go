package geom_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb"

	"github.com/eak1mov/go-tilegeom/geom"
)

func TestBBoxBoundRoundTrip(t *testing.T) {
	bbox := geom.NewBBox(-100, -200, 300, 400)

	bound := bbox.Bound()
	if diff := cmp.Diff(orb.Bound{Min: orb.Point{-100, -200}, Max: orb.Point{300, 400}}, bound); diff != "" {
		t.Errorf("Bound() mismatch (-want+got):\n%v", diff)
	}

	if diff := cmp.Diff(bbox, geom.FromBound(bound)); diff != "" {
		t.Errorf("FromBound(Bound()) mismatch (-want+got):\n%v", diff)
	}
}
