// Package geom provides planar geometry primitives for the Web Mercator
// projection (EPSG:3857): the BBox value type and projection constants.
package geom

import "math"

// EarthRadius is the WGS 84 equatorial radius of the Earth in meters.
const EarthRadius = 6378137.0

// WebMercatorExtent is the half-width (and half-height) in meters of the
// projected Web Mercator square.
const WebMercatorExtent = math.Pi * EarthRadius
