package intrapred

import "testing"

// TestDrIntraDerivativeKnownEntries pins a handful of the published
// AV1/dav1d dr_intra_derivative constants so a future edit can't silently
// regress back to a derived approximation.
func TestDrIntraDerivativeKnownEntries(t *testing.T) {
	cases := []struct {
		angle, want int
	}{
		{3, 1023},
		{45, 64},
		{67, 27},
		{87, 3},
	}
	for _, c := range cases {
		if got := drIntraDerivative[c.angle]; got != c.want {
			t.Errorf("drIntraDerivative[%d] = %d, want %d", c.angle, got, c.want)
		}
	}
}

// TestDrIntraDerivativeUnusedEntriesZero checks that angles never reachable
// by a base directional mode plus an angle_delta step are left at the zero
// value, since ipredZ1/ipredZ2/ipredZ3 never look them up.
func TestDrIntraDerivativeUnusedEntriesZero(t *testing.T) {
	for _, angle := range []int{0, 1, 2, 4, 5, 43, 44, 86, 88, 89} {
		if got := drIntraDerivative[angle]; got != 0 {
			t.Errorf("drIntraDerivative[%d] = %d, want 0 (unused angle)", angle, got)
		}
	}
}
