package aggregate

import (
	"context"
	"log/slog"
	"time"

	"FoodTechScanner/internal/domain"
	"FoodTechScanner/internal/ports"
)

// Aggregator walks the source registration in order and assembles the
// in-memory snapshot: domain-bucketed articles plus fetch statistics.
type Aggregator struct {
	retriever ports.Retriever
	sources   []domain.Source
	logger    *slog.Logger
}

var _ ports.Collector = (*Aggregator)(nil)

// New wires the aggregator over the ordered source registration.
func New(retriever ports.Retriever, sources []domain.Source, logger *slog.Logger) *Aggregator {
	return &Aggregator{retriever: retriever, sources: sources, logger: logger}
}

// Collect fetches every source once, in registration order. Failed sources
// are logged and skipped, leaving the remaining results exactly as a run
// that never registered them. The returned snapshot replaces any previous
// one wholesale; nothing is merged.
func (a *Aggregator) Collect(ctx context.Context) (domain.Collection, domain.Stats) {
	coll := domain.NewCollection(labelOrder(a.sources)...)
	stats := domain.Stats{Earliest: time.Now().UTC()}

	for _, src := range a.sources {
		res := a.retriever.Retrieve(ctx, src)
		if res.Failed() {
			a.warn("source skipped", "url", src.URL, "failure", res.Failure.String(), "error", res.Err)
			continue
		}

		for _, art := range res.Articles {
			coll.Add(art)
			stats.Total++

			when, ok := ParseDate(art.PublishedRaw)
			if !ok {
				continue
			}
			stats.Observe(when)
		}
	}

	a.info("fetch run finished", "articles", stats.Total, "dated", stats.Parsed)
	return coll, stats
}

func labelOrder(sources []domain.Source) []domain.Label {
	var labels []domain.Label
	seen := map[domain.Label]struct{}{}
	for _, src := range sources {
		if _, ok := seen[src.Domain]; ok {
			continue
		}
		seen[src.Domain] = struct{}{}
		labels = append(labels, src.Domain)
	}
	return labels
}

func (a *Aggregator) warn(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Warn(msg, args...)
	}
}

func (a *Aggregator) info(msg string, args ...any) {
	if a.logger != nil {
		a.logger.Info(msg, args...)
	}
}
