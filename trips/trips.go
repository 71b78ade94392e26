// Package trips supplies synthetic bike-share trip records for the
// benchmark harness. The surrounding analytics pipeline normally feeds the
// harness cleaned records; this package stands in for it with a
// deterministic generator so benchmark inputs are reproducible from a seed.
package trips

import (
	"fmt"
	"math/rand"
	"time"
)

// Trip is one bike-share ride. The algorithm packages never see this type
// directly; they receive comparators built over its fields.
type Trip struct {
	ID              string
	StartStation    string
	EndStation      string
	UserType        string
	BikeType        string
	StartTime       time.Time
	DurationMinutes float64
	DistanceKM      float64
}

var stationNames = []string{
	"Central Station", "University Campus", "City Hall",
	"Riverside Park", "Market Square", "Tech Hub",
	"Old Town", "Harbor View", "Sports Arena",
	"West End", "North Gate", "Museum Quarter",
	"Business District", "Lakeside", "Airport Terminal",
}

var (
	userTypes = []string{"casual", "member"}
	bikeTypes = []string{"classic", "electric"}
)

// Generate produces n synthetic trips from rng. The same rng state always
// yields the same trips, so callers own reproducibility by seeding the
// source themselves; there is no package-level random state.
func Generate(n int, rng *rand.Rand) []Trip {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	out := make([]Trip, n)
	for i := range out {
		start := base.Add(
			time.Duration(rng.Intn(365))*24*time.Hour +
				time.Duration(6+rng.Intn(17))*time.Hour +
				time.Duration(rng.Intn(60))*time.Minute)

		// Trip lengths follow a short-ride-heavy exponential mix, like the
		// historical CSV data.
		duration := 3 + rng.ExpFloat64()*18
		if duration > 180 {
			duration = 180
		}

		out[i] = Trip{
			ID:              fmt.Sprintf("TR%06d", i),
			StartStation:    stationNames[rng.Intn(len(stationNames))],
			EndStation:      stationNames[rng.Intn(len(stationNames))],
			UserType:        pick(rng, userTypes, 0.35),
			BikeType:        pick(rng, bikeTypes, 0.6),
			StartTime:       start,
			DurationMinutes: roundTo(duration, 2),
			DistanceKM:      roundTo(duration*(0.15+rng.Float64()*0.1), 2),
		}
	}
	return out
}

// pick returns choices[0] with probability p, choices[1] otherwise.
func pick(rng *rand.Rand, choices []string, p float64) string {
	if rng.Float64() < p {
		return choices[0]
	}
	return choices[1]
}

func roundTo(v float64, decimals int) float64 {
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+0.5)) / scale
}
