package bench

import "time"

// Clock is the time source used to measure trials. The default uses the
// runtime's monotonic clock; tests inject a fake to make report output
// deterministic.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
