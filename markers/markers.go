// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package markers builds labelled marker sets around a location and computes the
// viewport that shows all of them.
package markers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/2dChan/s2scatter"
	"github.com/golang/geo/s2"
)

// DefaultCount is the number of markers placed when no count is given.
const DefaultCount = 10

var (
	ErrInvalidRadius = errors.New("markers: radius must be a positive number of meters")
	ErrInvalidCount  = fmt.Errorf("markers: count must be in [0, %d]", s2scatter.MaxLabels)
	ErrInvalidCenter = errors.New("markers: center is not a valid location")
	ErrNoLocation    = errors.New("markers: current location is unavailable")
	ErrOutOfRange    = errors.New("markers: placement area leaves the valid coordinate range")
)

type Marker struct {
	Label    string
	Position s2scatter.GeoPoint
}

// Set is a group of markers placed around Center.
type Set struct {
	Center  s2scatter.GeoPoint
	Radius  float64
	Markers []Marker
}

func (s *Set) Len() int {
	return len(s.Markers)
}

func (s *Set) Positions() []s2scatter.GeoPoint {
	points := make([]s2scatter.GeoPoint, len(s.Markers))
	for i, m := range s.Markers {
		points[i] = m.Position
	}
	return points
}

// Bounds returns the smallest latitude/longitude rectangle containing every marker.
// It is empty when the set has no markers.
func (s *Set) Bounds() s2.Rect {
	rect := s2.EmptyRect()
	for _, m := range s.Markers {
		rect = rect.AddPoint(m.Position.LatLng())
	}
	return rect
}

type Options struct {
	Count   int
	Sampler *s2scatter.Sampler
}

type Option func(*Options) error

// WithCount sets the number of markers. It must not exceed s2scatter.MaxLabels, since
// every marker needs its own label.
func WithCount(count int) Option {
	return func(o *Options) error {
		if count < 0 || count > s2scatter.MaxLabels {
			return fmt.Errorf("WithCount: %w, got %d", ErrInvalidCount, count)
		}
		o.Count = count
		return nil
	}
}

func WithSampler(s *s2scatter.Sampler) Option {
	return func(o *Options) error {
		if s == nil {
			return errors.New("WithSampler: sampler must not be nil")
		}
		o.Sampler = s
		return nil
	}
}

// New places count markers at random positions within radius meters of center, each
// with a distinct label.
func New(center s2scatter.GeoPoint, radius float64, setters ...Option) (*Set, error) {
	opts := Options{Count: DefaultCount}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if !center.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCenter, center)
	}
	if err := validateRadius(radius); err != nil {
		return nil, err
	}
	if opts.Sampler == nil {
		s, err := s2scatter.NewSampler()
		if err != nil {
			return nil, err
		}
		opts.Sampler = s
	}
	if opts.Sampler.Geometry() == s2scatter.GeometryLegacy {
		if err := checkLegacyArea(center, radius); err != nil {
			return nil, err
		}
	}

	labels := opts.Sampler.DistinctLabels(opts.Count)
	set := &Set{
		Center:  center,
		Radius:  radius,
		Markers: make([]Marker, len(labels)),
	}
	for i, label := range labels {
		set.Markers[i] = Marker{
			Label:    label,
			Position: opts.Sampler.RandomPoint(center, radius),
		}
	}

	return set, nil
}

// ParseRadius parses a user-entered radius in meters.
func ParseRadius(text string) (float64, error) {
	r, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRadius, text)
	}
	if err := validateRadius(r); err != nil {
		return 0, err
	}
	return r, nil
}

// checkLegacyArea rejects centers whose legacy sampling square would reach past the
// poles or the antimeridian. Near longitude ±90 the square is unbounded.
func checkLegacyArea(center s2scatter.GeoPoint, radius float64) error {
	latOffset, lngOffset := s2scatter.LegacyOffsets(center, radius)
	lngOffset = math.Abs(lngOffset)
	if math.IsNaN(lngOffset) || math.IsInf(lngOffset, 0) ||
		center.Lat-latOffset < -90 || center.Lat+latOffset > 90 ||
		center.Lng-lngOffset < -180 || center.Lng+lngOffset > 180 {
		return fmt.Errorf("%w: center %v, radius %v m, offsets ±%g° lat, ±%g° lng",
			ErrOutOfRange, center, radius, latOffset, lngOffset)
	}
	return nil
}

func validateRadius(r float64) error {
	if !(r > 0) || math.IsInf(r, 1) {
		return fmt.Errorf("%w, got %v", ErrInvalidRadius, r)
	}
	return nil
}
