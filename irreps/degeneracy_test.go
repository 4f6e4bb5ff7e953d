package irreps

import (
	"reflect"
	"testing"
)

func TestGroupDegenerate(t *testing.T) {
	tests := []struct {
		name  string
		freqs []float64
		tol   float64
		want  [][]int
	}{
		{
			name:  "near pair groups",
			freqs: []float64{1.0000, 1.00005, 2.0000},
			tol:   1e-4,
			want:  [][]int{{0, 1}, {2}},
		},
		{
			name:  "zero tolerance singles",
			freqs: []float64{1.0000, 1.00005, 2.0000},
			tol:   0,
			want:  [][]int{{0}, {1}, {2}},
		},
		{
			name:  "chain spans wide range",
			freqs: []float64{1.0, 1.00008, 1.00016, 5.0},
			tol:   1e-4,
			want:  [][]int{{0, 1, 2}, {3}},
		},
		{
			name:  "single mode",
			freqs: []float64{3.2},
			tol:   1e-4,
			want:  [][]int{{0}},
		},
		{
			name:  "empty",
			freqs: nil,
			tol:   1e-4,
			want:  nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := GroupDegenerate(tc.freqs, tc.tol)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("GroupDegenerate(%v, %v) = %v, want %v", tc.freqs, tc.tol, got, tc.want)
			}
		})
	}
}

func TestGroupDegenerate_CoversAllModes(t *testing.T) {
	freqs := []float64{-2, -2, 0, 0, 0, 1.5, 3.3, 3.3001}

	blocks := GroupDegenerate(freqs, 1e-3)

	seen := make(map[int]bool)
	for _, b := range blocks {
		for _, i := range b {
			if seen[i] {
				t.Fatalf("mode %d appears twice", i)
			}
			seen[i] = true
		}
	}
	if len(seen) != len(freqs) {
		t.Errorf("covered %d modes, want %d", len(seen), len(freqs))
	}
}
