package trips

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestGenerate_DeterministicForSameSeed(t *testing.T) {
	a := Generate(500, rand.New(rand.NewSource(42)))
	b := Generate(500, rand.New(rand.NewSource(42)))

	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different trip sets")
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a := Generate(500, rand.New(rand.NewSource(1)))
	b := Generate(500, rand.New(rand.NewSource(2)))

	if reflect.DeepEqual(a, b) {
		t.Fatal("different seeds produced identical trip sets")
	}
}

func TestGenerate_RecordShape(t *testing.T) {
	trips := Generate(200, rand.New(rand.NewSource(7)))

	if len(trips) != 200 {
		t.Fatalf("expected 200 trips, got %d", len(trips))
	}

	ids := make(map[string]bool, len(trips))
	for i, tr := range trips {
		if tr.ID == "" {
			t.Fatalf("trip %d has empty ID", i)
		}
		if ids[tr.ID] {
			t.Fatalf("duplicate trip ID %s", tr.ID)
		}
		ids[tr.ID] = true

		if tr.DurationMinutes <= 0 || tr.DurationMinutes > 180 {
			t.Errorf("trip %d: duration %.2f out of range", i, tr.DurationMinutes)
		}
		if tr.DistanceKM <= 0 {
			t.Errorf("trip %d: non-positive distance %.2f", i, tr.DistanceKM)
		}
		if tr.UserType != "casual" && tr.UserType != "member" {
			t.Errorf("trip %d: unexpected user type %q", i, tr.UserType)
		}
		if tr.BikeType != "classic" && tr.BikeType != "electric" {
			t.Errorf("trip %d: unexpected bike type %q", i, tr.BikeType)
		}
		if tr.StartStation == "" || tr.EndStation == "" {
			t.Errorf("trip %d: missing station", i)
		}
	}
}

func TestGenerate_Empty(t *testing.T) {
	if got := Generate(0, rand.New(rand.NewSource(1))); len(got) != 0 {
		t.Fatalf("expected no trips, got %d", len(got))
	}
}
