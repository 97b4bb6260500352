// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomCenters_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero centers", 0, 42},
		{"one center", 1, 42},
		{"ten centers", 10, 0},
		{"hundred centers", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			centers := GenerateRandomCenters(tt.cnt, tt.seed)
			if len(centers) != tt.cnt {
				t.Errorf("GenerateRandomCenters(%v, %v) len = %v, want %v", tt.cnt, tt.seed,
					len(centers), tt.cnt)
			}
		})
	}
}

func TestGenerateRandomCenters_Valid(t *testing.T) {
	const (
		cnt  = 1000
		seed = 0
	)
	centers := GenerateRandomCenters(cnt, seed)
	for i, ll := range centers {
		if !ll.IsValid() {
			t.Errorf("GenerateRandomCenters(%v, %v)[%d] = %v, want valid", cnt, seed, i, ll)
		}
		if lat := ll.Lat.Degrees(); lat < -85 || lat > 85 {
			t.Errorf("GenerateRandomCenters(%v, %v)[%d] lat = %v, want within ±85", cnt, seed,
				i, lat)
		}
	}
}

func TestGenerateRandomCenters_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomCenters(cnt, seed)
	b := GenerateRandomCenters(cnt, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomCenters(%v, %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}
