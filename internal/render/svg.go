// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"errors"
	"io"
	"math"

	"github.com/2dChan/s2scatter"
	"github.com/2dChan/s2scatter/markers"
	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
)

const (
	// Latitudes beyond this are clamped before Mercator projection.
	maxMercatorLat = 85.05112878

	backgroundStyle = "fill:rgb(255,255,255)"
	centerStyle     = "fill:rgb(66,133,244);stroke:rgb(255,255,255);stroke-width:2"
	markerStyle     = "fill:rgb(219,68,55);stroke:rgb(170,40,30);stroke-width:1"
	labelStyle      = "fill:rgb(255,255,255);font-family:sans-serif;font-size:14px;text-anchor:middle"

	centerRadius = 6
	markerRadius = 12
)

type SVGOptions struct {
	Width   int
	Height  int
	Padding int
}

// DefaultSVGOptions returns the canvas size and padding used by the command line tool.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 800, Height: 600, Padding: 50}
}

func (o SVGOptions) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New("render: canvas size must be positive")
	}
	if o.Padding < 0 || 2*o.Padding >= o.Width || 2*o.Padding >= o.Height {
		return errors.New("render: padding does not fit the canvas")
	}
	return nil
}

// SVG draws the center and a labelled pin per marker, with the view fitted to the markers'
// bounds inside the padding.
func SVG(w io.Writer, set *markers.Set, opts SVGOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}

	vp := fitViewport(set, opts)
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, backgroundStyle)

	cx, cy := vp.toScreen(set.Center)
	canvas.Circle(cx, cy, centerRadius, centerStyle)

	for _, m := range set.Markers {
		x, y := vp.toScreen(m.Position)
		canvas.Circle(x, y, markerRadius, markerStyle)
		canvas.Text(x, y+5, m.Label, labelStyle)
	}
	canvas.End()

	return ew.err
}

// viewport maps projected points to canvas pixels.
type viewport struct {
	proj   s2.Projection
	origin r2.Point
	min    r2.Point
	scale  float64
	offset r2.Point
	height int
}

func fitViewport(set *markers.Set, opts SVGOptions) *viewport {
	vp := &viewport{
		proj:   s2.NewMercatorProjection(180),
		height: opts.Height,
	}
	vp.origin = vp.project(set.Center)

	points := set.Positions()
	if len(points) == 0 {
		points = []s2scatter.GeoPoint{set.Center}
	}
	bound := r2.EmptyRect()
	for _, p := range points {
		bound = bound.AddPoint(vp.unwrap(vp.project(p)))
	}

	innerW := float64(opts.Width - 2*opts.Padding)
	innerH := float64(opts.Height - 2*opts.Padding)
	size := bound.Size()
	switch {
	case size.X == 0 && size.Y == 0:
		vp.scale = 1
	case size.X == 0:
		vp.scale = innerH / size.Y
	case size.Y == 0:
		vp.scale = innerW / size.X
	default:
		vp.scale = math.Min(innerW/size.X, innerH/size.Y)
	}

	vp.min = bound.Lo()
	vp.offset = r2.Point{
		X: float64(opts.Padding) + (innerW-size.X*vp.scale)/2,
		Y: float64(opts.Padding) + (innerH-size.Y*vp.scale)/2,
	}
	return vp
}

func (vp *viewport) project(p s2scatter.GeoPoint) r2.Point {
	lat := math.Max(-maxMercatorLat, math.Min(maxMercatorLat, p.Lat))
	return vp.proj.FromLatLng(s2.LatLngFromDegrees(lat, p.Lng))
}

// unwrap moves p by a full turn when that brings it closer to the origin, so sets that
// cross the antimeridian stay contiguous.
func (vp *viewport) unwrap(p r2.Point) r2.Point {
	switch {
	case p.X-vp.origin.X > 180:
		p.X -= 360
	case vp.origin.X-p.X > 180:
		p.X += 360
	}
	return p
}

func (vp *viewport) toScreen(p s2scatter.GeoPoint) (int, int) {
	q := vp.unwrap(vp.project(p))
	x := vp.offset.X + (q.X-vp.min.X)*vp.scale
	y := vp.offset.Y + (q.Y-vp.min.Y)*vp.scale
	// Screen y grows downwards.
	return int(math.Round(x)), vp.height - int(math.Round(y))
}
