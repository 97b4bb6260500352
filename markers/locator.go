// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package markers

import (
	"context"
	"fmt"

	"github.com/2dChan/s2scatter"
)

// Locator reports the current location of the device.
type Locator interface {
	Locate(ctx context.Context) (s2scatter.GeoPoint, error)
}

// StaticLocator always reports the same location. A nil *StaticLocator has no location.
type StaticLocator struct {
	Point s2scatter.GeoPoint
}

func (l *StaticLocator) Locate(ctx context.Context) (s2scatter.GeoPoint, error) {
	if err := ctx.Err(); err != nil {
		return s2scatter.GeoPoint{}, err
	}
	if l == nil {
		return s2scatter.GeoPoint{}, ErrNoLocation
	}
	return l.Point, nil
}

// Generate places markers around the location reported by loc, within the radius
// given as text.
func Generate(ctx context.Context, loc Locator, radiusText string, setters ...Option) (*Set, error) {
	if loc == nil {
		return nil, ErrNoLocation
	}
	center, err := loc.Locate(ctx)
	if err != nil {
		return nil, fmt.Errorf("markers: locate: %w", err)
	}
	radius, err := ParseRadius(radiusText)
	if err != nil {
		return nil, err
	}
	return New(center, radius, setters...)
}
