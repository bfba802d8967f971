package domain

import "time"

// Stats summarizes one fetch run. Earliest starts at the moment the run
// began and Latest at the zero time, so the pair is meaningful only when at
// least one publication date parsed; Range reports that explicitly.
type Stats struct {
	Total    int
	Parsed   int
	Earliest time.Time
	Latest   time.Time
}

// Observe folds one parsed publication timestamp into the range.
func (s *Stats) Observe(when time.Time) {
	s.Parsed++
	if when.Before(s.Earliest) {
		s.Earliest = when
	}
	if when.After(s.Latest) {
		s.Latest = when
	}
}

// Range returns the global publication-date span. ok is false when no
// record's date parsed, in which case the span is degenerate and must not
// be displayed.
func (s Stats) Range() (earliest, latest time.Time, ok bool) {
	return s.Earliest, s.Latest, s.Parsed > 0
}
