package trips

import (
	"strings"

	"github.com/citybike/algobench/algo"
)

// Sortable field names. These are the key_field values the configuration
// surface accepts.
const (
	FieldDuration     = "duration_minutes"
	FieldDistance     = "distance_km"
	FieldStartStation = "start_station"
	FieldEndStation   = "end_station"
	FieldUserType     = "user_type"
	FieldStartTime    = "start_time"
	FieldTripID       = "trip_id"
)

// Fields lists every sortable field name.
func Fields() []string {
	return []string{
		FieldDuration, FieldDistance, FieldStartStation, FieldEndStation,
		FieldUserType, FieldStartTime, FieldTripID,
	}
}

// Comparator builds a comparator over the named field. Unknown fields fail
// here, at construction time, with a ConfigurationError; a comparator that
// has been handed out never fails mid-sort.
func Comparator(field string, dir algo.Direction) (algo.Comparator[Trip], error) {
	switch field {
	case FieldDuration:
		return algo.ByNumber(func(t Trip) float64 { return t.DurationMinutes }, dir), nil
	case FieldDistance:
		return algo.ByNumber(func(t Trip) float64 { return t.DistanceKM }, dir), nil
	case FieldStartTime:
		return algo.ByNumber(func(t Trip) float64 { return float64(t.StartTime.Unix()) }, dir), nil
	case FieldStartStation:
		return algo.ByString(func(t Trip) string { return t.StartStation }, dir), nil
	case FieldEndStation:
		return algo.ByString(func(t Trip) string { return t.EndStation }, dir), nil
	case FieldUserType:
		return algo.ByString(func(t Trip) string { return t.UserType }, dir), nil
	case FieldTripID:
		return algo.ByString(func(t Trip) string { return t.ID }, dir), nil
	default:
		return nil, algo.NewConfigurationError("key_field",
			"unknown field %q, want one of %s", field, strings.Join(Fields(), ", "))
	}
}
