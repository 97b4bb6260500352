// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/2dChan/s2scatter"
	"github.com/2dChan/s2scatter/internal/config"
	"github.com/2dChan/s2scatter/internal/render"
	"github.com/2dChan/s2scatter/markers"
)

func testConfig() *config.Config {
	return &config.Config{
		Markers: config.MarkersConfig{
			Lat:      50.45,
			Lng:      30.52,
			Radius:   "1000",
			Count:    markers.DefaultCount,
			Seed:     42,
			Geometry: "legacy",
		},
		Render: config.RenderConfig{
			Format:  render.FormatGeoJSON,
			Width:   800,
			Height:  600,
			Padding: 50,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
	}
}

type featureCollection struct {
	Type     string `json:"type"`
	Features []struct {
		ID         string         `json:"id"`
		Properties map[string]any `json:"properties"`
		Geometry   struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["generate"], "expected subcommand %q not found", "generate")
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "s2scatter", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestGenerateCommand_Flags(t *testing.T) {
	for _, name := range []string{"lat", "lng", "radius", "count", "seed", "geometry", "format",
		"output", "width", "height", "padding"} {
		require.NotNil(t, generateCmd.Flags().Lookup(name), "generate command should have --%s flag", name)
	}
	assert.Equal(t, "10", generateCmd.Flags().Lookup("count").DefValue)
	assert.Equal(t, "legacy", generateCmd.Flags().Lookup("geometry").DefValue)
}

func TestGenerate_GeoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(context.Background(), testConfig(), &buf))

	var fc featureCollection
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, markers.DefaultCount+1)

	assert.Equal(t, "center", fc.Features[0].Properties["role"])
	assert.Equal(t, []float64{30.52, 50.45}, fc.Features[0].Geometry.Coordinates)

	labels := make(map[string]bool)
	for _, f := range fc.Features[1:] {
		label, _ := f.Properties["label"].(string)
		assert.Len(t, label, 1)
		assert.False(t, labels[label], "duplicate label %q", label)
		labels[label] = true
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, generate(context.Background(), testConfig(), &a))
	require.NoError(t, generate(context.Background(), testConfig(), &b))
	assert.Equal(t, a.String(), b.String())
}

func TestGenerate_SVG(t *testing.T) {
	cfg := testConfig()
	cfg.Render.Format = render.FormatSVG
	cfg.Markers.Geometry = "corrected"

	var buf bytes.Buffer
	require.NoError(t, generate(context.Background(), cfg, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "<?xml"))
	assert.Equal(t, markers.DefaultCount, strings.Count(buf.String(), "</text>"))
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{"non-numeric radius", func(c *config.Config) { c.Markers.Radius = "far" }, markers.ErrInvalidRadius},
		{"non-positive radius", func(c *config.Config) { c.Markers.Radius = "-1" }, markers.ErrInvalidRadius},
		{"too many markers", func(c *config.Config) { c.Markers.Count = s2scatter.MaxLabels + 1 }, markers.ErrInvalidCount},
		{"bad center", func(c *config.Config) { c.Markers.Lat = 120 }, markers.ErrInvalidCenter},
		{"unknown format", func(c *config.Config) { c.Render.Format = "kml" }, render.ErrUnknownFormat},
		{"unknown geometry", func(c *config.Config) { c.Markers.Geometry = "flat" }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			err := generate(context.Background(), cfg, &bytes.Buffer{})
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRootCommand_GenerateToFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	orig := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(orig) })

	out := filepath.Join(dir, "markers.geojson")
	rootCmd.SetArgs([]string{"generate", "--lat", "48.8566", "--lng", "2.3522", "--radius", "500",
		"--count", "4", "--seed", "3", "--output", out, "--log-level", "error"})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var fc featureCollection
	require.NoError(t, json.Unmarshal(data, &fc))
	assert.Len(t, fc.Features, 5)
	assert.Equal(t, "500", cfg.Markers.Radius)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
