// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2scatter scatters random points and single-letter labels around a center
// location, for placing markers on a map.
package s2scatter

import (
	"fmt"

	"github.com/golang/geo/s2"
)

// EarthRadius is the equatorial radius of the WGS-84 ellipsoid in meters, used to convert
// distances in meters to angular offsets.
const EarthRadius = 6378137.0

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// GeoPointFromLatLng converts an s2.LatLng to a GeoPoint.
func GeoPointFromLatLng(ll s2.LatLng) GeoPoint {
	return GeoPoint{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}
}

// LatLng returns p as an s2.LatLng.
func (p GeoPoint) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// Valid reports whether the latitude is in [-90, 90] and the longitude in [-180, 180].
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// DistanceMeters returns the great-circle distance between p and q on a sphere of
// EarthRadius.
func (p GeoPoint) DistanceMeters(q GeoPoint) float64 {
	return p.LatLng().Distance(q.LatLng()).Radians() * EarthRadius
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.Lat, p.Lng)
}
