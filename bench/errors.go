package bench

import "fmt"

// AlgorithmFailure records an algorithm panicking or misbehaving during a
// timed trial. It fails the (algorithm, size) cell it occurred in; the
// harness keeps running the remaining cells and the report marks the cell
// as failed instead of showing numbers.
type AlgorithmFailure struct {
	Algorithm string
	Size      int
	Trial     int
	Err       error
}

func (e *AlgorithmFailure) Error() string {
	return fmt.Sprintf("algorithm %s failed on size %d (trial %d): %v",
		e.Algorithm, e.Size, e.Trial, e.Err)
}

func (e *AlgorithmFailure) Unwrap() error { return e.Err }
