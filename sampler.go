// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2scatter

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Geometry selects how RandomPoint converts the radius into a sampling area and how it
// decides whether a sample lies inside the circle.
type Geometry int

const (
	// GeometryLegacy samples a square of half-side radius/2, corrects the longitude offset
	// with the cosine of the center's longitude and accepts samples whose squared offset in
	// degrees is at most radius² in meters. It reproduces the marker placement of the
	// original map application.
	GeometryLegacy Geometry = iota
	// GeometryCorrected samples a square of half-side radius, corrects the longitude offset
	// with the cosine of the center's latitude and accepts samples whose great-circle
	// distance to the center is at most radius meters.
	GeometryCorrected
)

func (g Geometry) String() string {
	switch g {
	case GeometryLegacy:
		return "legacy"
	case GeometryCorrected:
		return "corrected"
	}
	return fmt.Sprintf("Geometry(%d)", int(g))
}

// ParseGeometry returns the Geometry named s.
func ParseGeometry(s string) (Geometry, error) {
	switch s {
	case "legacy", "":
		return GeometryLegacy, nil
	case "corrected":
		return GeometryCorrected, nil
	}
	return 0, fmt.Errorf("s2scatter: unknown geometry %q", s)
}

type SamplerOptions struct {
	Rand     *rand.Rand
	Geometry Geometry
}

type SamplerOption func(*SamplerOptions) error

// WithSeed makes the sampler reproducible.
func WithSeed(seed int64) SamplerOption {
	return func(o *SamplerOptions) error {
		//nolint:gosec
		o.Rand = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithRand makes the sampler draw from r. The sampler takes ownership of r.
func WithRand(r *rand.Rand) SamplerOption {
	return func(o *SamplerOptions) error {
		if r == nil {
			return errors.New("WithRand: rand must not be nil")
		}
		o.Rand = r
		return nil
	}
}

func WithGeometry(g Geometry) SamplerOption {
	return func(o *SamplerOptions) error {
		if g != GeometryLegacy && g != GeometryCorrected {
			return fmt.Errorf("WithGeometry: unknown geometry %v", g)
		}
		o.Geometry = g
		return nil
	}
}

// Sampler generates random marker positions and labels. It is safe for concurrent use.
type Sampler struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	geometry Geometry
}

// NewSampler returns a Sampler. Without WithSeed or WithRand it is seeded from the clock.
func NewSampler(setters ...SamplerOption) (*Sampler, error) {
	opts := SamplerOptions{Geometry: GeometryLegacy}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if opts.Rand == nil {
		//nolint:gosec
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Sampler{rnd: opts.Rand, geometry: opts.Geometry}, nil
}

// Geometry returns the geometry the sampler was built with.
func (s *Sampler) Geometry() Geometry {
	return s.geometry
}

// RandomPoint returns a random point within radius meters of center, found by rejection
// sampling. A radius that is not a positive finite number yields center itself.
//
// NOTE: with GeometryLegacy a center longitude of ±90° makes the longitude offset
// unbounded, and the loop is then unlikely to terminate.
func (s *Sampler) RandomPoint(center GeoPoint, radius float64) GeoPoint {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return center
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.geometry == GeometryCorrected {
		return s.correctedPoint(center, radius)
	}
	return s.legacyPoint(center, radius)
}

// LegacyOffsets returns the half-sizes in degrees of the area GeometryLegacy samples
// from around center. The longitude offset is negative when |center.Lng| > 90 and grows
// without bound as center.Lng approaches ±90.
func LegacyOffsets(center GeoPoint, radius float64) (lat, lng float64) {
	return radiansToDegrees(metersToLat(radius / 2)), radiansToDegrees(metersToLng(radius/2, center.Lng))
}

func (s *Sampler) legacyPoint(center GeoPoint, radius float64) GeoPoint {
	latOffset, lngOffset := LegacyOffsets(center, radius)

	for {
		p := GeoPoint{
			Lat: s.between(center.Lat-latOffset, center.Lat+latOffset),
			Lng: s.between(center.Lng-lngOffset, center.Lng+lngOffset),
		}
		if insideLegacy(center, p, radius) {
			return p
		}
	}
}

func (s *Sampler) correctedPoint(center GeoPoint, radius float64) GeoPoint {
	latOffset := radiansToDegrees(metersToLat(radius))
	lngOffset := math.Abs(radiansToDegrees(metersToLng(radius, center.Lat)))
	if lngOffset > 180 || math.IsNaN(lngOffset) {
		lngOffset = 180
	}

	for {
		lat := s.between(center.Lat-latOffset, center.Lat+latOffset)
		if lat < -90 || lat > 90 {
			continue
		}
		p := GeoPoint{
			Lat: lat,
			Lng: wrapLng(s.between(center.Lng-lngOffset, center.Lng+lngOffset)),
		}
		if center.DistanceMeters(p) <= radius {
			return p
		}
	}
}

func (s *Sampler) between(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rnd.Float64()
}

// metersToLat returns the latitude offset of meters in radians.
func metersToLat(meters float64) float64 {
	return meters / EarthRadius
}

// metersToLng returns the longitude offset of meters in radians at angle deg.
func metersToLng(meters, deg float64) float64 {
	return meters / (EarthRadius * math.Cos(math.Pi*deg/180))
}

func radiansToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// insideLegacy compares squared degree offsets against the squared radius in meters.
func insideLegacy(center, p GeoPoint, radius float64) bool {
	dLat := p.Lat - center.Lat
	dLng := p.Lng - center.Lng
	return dLat*dLat+dLng*dLng <= radius*radius
}

func wrapLng(lng float64) float64 {
	if lng >= -180 && lng <= 180 {
		return lng
	}
	return math.Remainder(lng, 360)
}

var defaultSampler = newDefaultSampler()

func newDefaultSampler() *Sampler {
	s, err := NewSampler()
	if err != nil {
		panic(err)
	}
	return s
}

// RandomPoint returns a random point within radius meters of center using a shared,
// clock-seeded sampler with GeometryLegacy.
func RandomPoint(center GeoPoint, radius float64) GeoPoint {
	return defaultSampler.RandomPoint(center, radius)
}

// DistinctLabels returns count distinct letters using a shared, clock-seeded sampler.
func DistinctLabels(count int) []string {
	return defaultSampler.DistinctLabels(count)
}
