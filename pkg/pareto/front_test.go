package pareto

import (
	"testing"
)

func TestCleanCover(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   []Point
	}{
		{
			"drops strictly dominated",
			[]Point{{1, 1}, {2, 2}, {0, 3}},
			[]Point{{2, 2}, {0, 3}},
		},
		{
			"keeps incomparable points",
			[]Point{{0, 5}, {5, 0}},
			[]Point{{0, 5}, {5, 0}},
		},
		{
			"keeps duplicates",
			[]Point{{3, 3}, {3, 3}},
			[]Point{{3, 3}, {3, 3}},
		},
		{
			"chain collapses to maximum",
			[]Point{{0, 0}, {1, 1}, {2, 2}},
			[]Point{{2, 2}},
		},
		{
			"empty input",
			nil,
			[]Point{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanCover(tt.points)
			if len(got) != len(tt.want) {
				t.Fatalf("cleanCover(%v) = %v, want %v", tt.points, got, tt.want)
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("cleanCover(%v) = %v, want %v", tt.points, got, tt.want)
					break
				}
			}
		})
	}
}

func TestCleanFront(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   []Point
	}{
		{
			"drops points above another",
			[]Point{{1, 1}, {2, 2}, {0, 3}},
			[]Point{{1, 1}, {0, 3}},
		},
		{
			"keeps incomparable points",
			[]Point{{0, 5}, {5, 0}},
			[]Point{{0, 5}, {5, 0}},
		},
		{
			"keeps duplicates",
			[]Point{{3, 3}, {3, 3}},
			[]Point{{3, 3}, {3, 3}},
		},
		{
			"chain collapses to minimum",
			[]Point{{0, 0}, {1, 1}, {2, 2}},
			[]Point{{0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanFront(tt.points)
			if len(got) != len(tt.want) {
				t.Fatalf("CleanFront(%v) = %v, want %v", tt.points, got, tt.want)
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("CleanFront(%v) = %v, want %v", tt.points, got, tt.want)
					break
				}
			}
		})
	}
}

// The two cleaners are duals: reversing the order relation swaps which side
// of a chain survives.
func TestCleanersAreDual(t *testing.T) {
	points := []Point{{0, 4}, {1, 3}, {2, 2}, {1, 4}, {0, 4}}
	maximal := cleanCover(points)
	minimal := CleanFront(points)
	for _, p := range maximal {
		for _, q := range minimal {
			if Less(p, q) {
				t.Errorf("maximal element %v sits strictly below minimal element %v", p, q)
			}
		}
	}
}
