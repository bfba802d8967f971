package session

import (
	"fmt"
	"strings"

	"FoodTechScanner/internal/domain"
)

// Summary renders the fetch report shown in the status panel, one line per
// domain in collection order.
func Summary(coll domain.Collection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Fetched %d articles in total:\n", coll.Total())
	for _, label := range coll.Labels() {
		fmt.Fprintf(&b, "- %s %s: %d articles\n", label.Emoji(), label, coll.Count(label))
	}

	return strings.TrimRight(b.String(), "\n")
}

// DateRange renders the global publication-date span. A run in which no
// date parsed has a degenerate span, reported explicitly instead of as a
// nonsense range.
func DateRange(stats domain.Stats) string {
	earliest, latest, ok := stats.Range()
	if !ok {
		return "📅 Date range: unavailable (no parsable publication dates)"
	}
	return fmt.Sprintf("📅 Date range: %s to %s", earliest.Format("2006-01-02"), latest.Format("2006-01-02"))
}
