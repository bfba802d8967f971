package aggregate

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate leniently parses a feed-provided date string; feeds disagree
// wildly on formats. Zone-less inputs are read as UTC and every result is
// normalized to UTC so ranges compare cleanly. A failed parse is not an
// error: the record simply carries no usable date.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	when, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return time.Time{}, false
	}

	return when.UTC(), true
}
