package transit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quickroute/transit"
)

func TestHaversineKm_SamePoint(t *testing.T) {
	s := transit.Stop{ID: 1, Lat: 44.854, Lon: -93.242}
	if d := transit.HaversineKm(s, s); d != 0 {
		t.Fatalf("distance to self = %v; want 0", d)
	}
}

func TestHaversineKm_Symmetric(t *testing.T) {
	a := transit.Stop{ID: 1, Lat: 44.854, Lon: -93.242} // Mall of America
	b := transit.Stop{ID: 2, Lat: 44.983, Lon: -93.277} // Target Field

	ab := transit.HaversineKm(a, b)
	ba := transit.HaversineKm(b, a)
	if math.Abs(ab-ba) > 1e-12 {
		t.Fatalf("asymmetric distance: %v vs %v", ab, ba)
	}
}

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Mall of America → Target Field is roughly 14.6 km as the crow flies.
	a := transit.Stop{ID: 1, Lat: 44.854, Lon: -93.242}
	b := transit.Stop{ID: 2, Lat: 44.983, Lon: -93.277}

	d := transit.HaversineKm(a, b)
	if d < 14.0 || d > 15.2 {
		t.Fatalf("HaversineKm = %v km; want ≈14.6 km", d)
	}
}

func TestHaversineKm_TriangleInequality(t *testing.T) {
	a := transit.Stop{ID: 1, Lat: 44.854, Lon: -93.242}
	b := transit.Stop{ID: 2, Lat: 44.920, Lon: -93.250}
	c := transit.Stop{ID: 3, Lat: 44.983, Lon: -93.277}

	if transit.HaversineKm(a, c) > transit.HaversineKm(a, b)+transit.HaversineKm(b, c)+1e-9 {
		t.Fatal("triangle inequality violated")
	}
}
