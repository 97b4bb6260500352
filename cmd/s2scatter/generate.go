// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"context"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/2dChan/s2scatter"
	"github.com/2dChan/s2scatter/internal/config"
	"github.com/2dChan/s2scatter/internal/render"
	"github.com/2dChan/s2scatter/markers"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Place random markers around a location",
	Long: "Places --count markers with distinct single-letter labels at random positions within " +
		"--radius meters of (--lat, --lng) and writes them as GeoJSON or SVG.",
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.Float64("lat", 0, "latitude of the center in degrees")
	f.Float64("lng", 0, "longitude of the center in degrees")
	f.String("radius", "1000", "radius in meters")
	f.Int("count", markers.DefaultCount, "number of markers")
	f.Int64("seed", 0, "random seed (0 seeds from the clock)")
	f.String("geometry", s2scatter.GeometryLegacy.String(), "placement geometry (legacy, corrected)")
	f.String("format", render.FormatGeoJSON, "output format (geojson, svg)")
	f.StringP("output", "o", "", "output file (default stdout)")
	f.Int("width", 800, "SVG width in pixels")
	f.Int("height", 600, "SVG height in pixels")
	f.Int("padding", 50, "SVG padding around the markers in pixels")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	if path := cfg.Render.Output; path != "" {
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrapf(err, "create %s", path)
		}
		defer f.Close()
		w = f

		if err := generate(cmd.Context(), cfg, w); err != nil {
			return err
		}
		return eris.Wrapf(f.Close(), "close %s", path)
	}
	return generate(cmd.Context(), cfg, w)
}

func generate(ctx context.Context, cfg *config.Config, w io.Writer) error {
	log := zap.L().With(zap.String("command", "generate"))

	geometry, err := s2scatter.ParseGeometry(cfg.Markers.Geometry)
	if err != nil {
		return eris.Wrap(err, "parse geometry")
	}
	samplerOpts := []s2scatter.SamplerOption{s2scatter.WithGeometry(geometry)}
	if cfg.Markers.Seed != 0 {
		samplerOpts = append(samplerOpts, s2scatter.WithSeed(cfg.Markers.Seed))
	}
	sampler, err := s2scatter.NewSampler(samplerOpts...)
	if err != nil {
		return eris.Wrap(err, "new sampler")
	}

	loc := &markers.StaticLocator{
		Point: s2scatter.GeoPoint{Lat: cfg.Markers.Lat, Lng: cfg.Markers.Lng},
	}
	set, err := markers.Generate(ctx, loc, cfg.Markers.Radius,
		markers.WithCount(cfg.Markers.Count),
		markers.WithSampler(sampler),
	)
	if err != nil {
		return eris.Wrap(err, "generate markers")
	}

	log.Info("placed markers",
		zap.Int("count", set.Len()),
		zap.Float64("radius_m", set.Radius),
		zap.Stringer("center", set.Center),
		zap.Stringer("geometry", geometry),
	)
	log.Debug("viewport", zap.Stringer("bounds", set.Bounds()))

	opts := render.SVGOptions{
		Width:   cfg.Render.Width,
		Height:  cfg.Render.Height,
		Padding: cfg.Render.Padding,
	}
	if err := render.Write(w, set, cfg.Render.Format, opts); err != nil {
		return eris.Wrap(err, "render markers")
	}
	return nil
}
