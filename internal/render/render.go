// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render writes marker sets as GeoJSON or SVG.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/2dChan/s2scatter/markers"
)

const (
	FormatGeoJSON = "geojson"
	FormatSVG     = "svg"
)

var ErrUnknownFormat = errors.New("render: unknown format")

// Write renders set to w in the given format.
func Write(w io.Writer, set *markers.Set, format string, opts SVGOptions) error {
	switch format {
	case FormatGeoJSON:
		return GeoJSON(w, set)
	case FormatSVG:
		return SVG(w, set, opts)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// errWriter remembers the first write error so that writers without error returns can
// still report failure.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
