package irreps

import (
	"reflect"
	"testing"
)

func TestPairConsecutive(t *testing.T) {
	tests := []struct {
		name string
		n    int
		dim  int
		want [][]int
	}{
		{
			name: "six modes pairwise",
			n:    6,
			dim:  2,
			want: [][]int{{0, 1}, {2, 3}, {4, 5}},
		},
		{
			name: "five modes leave a remainder",
			n:    5,
			dim:  2,
			want: [][]int{{0, 1}, {2, 3}, {4}},
		},
		{
			name: "dimension three",
			n:    7,
			dim:  3,
			want: [][]int{{0, 1, 2}, {3, 4, 5}, {6}},
		},
		{
			name: "empty",
			n:    0,
			dim:  2,
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PairConsecutive(tc.n, tc.dim)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("PairConsecutive(%d, %d) = %v, want %v", tc.n, tc.dim, got, tc.want)
			}
		})
	}
}
