package pure

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan is the interval covered by a Stats snapshot.
type TimeSpan = timespan.TimeSpan

func newTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// Stats is a snapshot of a memo's counters.
//
// Window runs from construction, or the most recent Clear, to the moment the
// snapshot was taken. Clear zeroes every counter.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Failures uint64
	Entries  int
	Window   TimeSpan
}

// HitRatio is Hits over all lookups, or 0 before the first lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
