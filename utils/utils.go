// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides helpers for generating reproducible marker centers.
package utils

import (
	"math/rand"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GenerateRandomCenters generates cnt random valid latitude/longitude pairs.
// The seed parameter ensures reproducibility.
func GenerateRandomCenters(cnt int, seed int64) []s2.LatLng {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	centers := make([]s2.LatLng, cnt)

	for i := 0; i < cnt; i++ {
		centers[i] = s2.LatLng{
			Lat: s1.Angle((random.Float64()*2 - 1) * 85 * s1.Degree.Radians()),
			Lng: s1.Angle((random.Float64()*2 - 1) * 180 * s1.Degree.Radians()),
		}
	}

	return centers
}
