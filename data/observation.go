package data

import "time"

// Observation is one timestamped probability record from the source data.
// The loaded set is immutable and ordered by EndTime within each scheme.
type Observation struct {
	EndTime         time.Time
	Probability     float64
	Scheme          string
	ForecasterCount int
}
