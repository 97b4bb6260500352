// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/2dChan/s2scatter"
	"github.com/2dChan/s2scatter/markers"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

const (
	roleCenter = "center"
	roleMarker = "marker"
)

// GeoJSON writes set as a FeatureCollection: the center first, then one point per marker.
// The collection's bbox covers the markers.
func GeoJSON(w io.Writer, set *markers.Set) error {
	fc := &geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, set.Len()+1),
	}
	fc.Features = append(fc.Features, &geojson.Feature{
		ID:       roleCenter,
		Geometry: point(set.Center),
		Properties: map[string]interface{}{
			"role":     roleCenter,
			"radius_m": set.Radius,
		},
	})
	for _, m := range set.Markers {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       m.Label,
			Geometry: point(m.Position),
			Properties: map[string]interface{}{
				"role":  roleMarker,
				"label": m.Label,
			},
		})
	}

	if rect := set.Bounds(); !rect.IsEmpty() {
		lo, hi := rect.Lo(), rect.Hi()
		fc.BBox = geom.NewBounds(geom.XY).Set(
			lo.Lng.Degrees(), lo.Lat.Degrees(),
			hi.Lng.Degrees(), hi.Lat.Degrees(),
		)
	}

	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("render: encode geojson: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("render: write geojson: %w", err)
	}
	return nil
}

func point(p s2scatter.GeoPoint) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{p.Lng, p.Lat})
}
