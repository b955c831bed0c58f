package mandel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPlanePointOrigin(t *testing.T) {
	s := FullSet.Settings(1024, 768, 18, 3)
	if got := s.PlanePoint(0, 0); got != s.TopLeft {
		t.Errorf("PlanePoint(0, 0) = %v, want %v", got, s.TopLeft)
	}
}

func TestPlanePointGrid(t *testing.T) {
	s := FullSet.Settings(4, 4, 18, 3)
	var got []Complex
	for x := range 4 {
		got = append(got, s.PlanePoint(x, x))
	}
	want := []Complex{{-2, -2}, {-1.25, -1}, {-0.5, 0}, {0.25, 1}}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("PlanePoint diagonal (-want +got):\n%s", diff)
	}
}

func TestPlanePointApproachesBottomRight(t *testing.T) {
	prev := -1.0
	for _, n := range []uint32{4, 64, 1024, 16384} {
		s := FullSet.Settings(n, n, 18, 3)
		last := s.PlanePoint(int(n-1), int(n-1))
		dist := s.BottomRight.Sub(last).Abs()
		if prev >= 0 && dist >= prev {
			t.Errorf("n=%d: distance to bottom right %v did not shrink from %v", n, dist, prev)
		}
		prev = dist
	}
	if prev > 1e-3 {
		t.Errorf("distance to bottom right at highest resolution = %v", prev)
	}
}
