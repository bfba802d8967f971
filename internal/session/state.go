package session

import (
	"FoodTechScanner/internal/browse"
	"FoodTechScanner/internal/domain"
	"FoodTechScanner/internal/ports"
)

// Store keys for the individual state fields.
const (
	keyCollection = "articles_by_domain"
	keyFetched    = "articles_fetched"
	keySummary    = "article_summary"
	keyDateRange  = "date_range"
	keyDomain     = "current_domain"
	keyPage       = "current_page"
)

// State is the explicit session context: everything the surface remembers
// between user actions. Transitions are pure; each returns the next state
// and the caller persists it through the store.
type State struct {
	Articles  domain.Collection
	Fetched   bool
	Summary   string
	DateRange string
	Domain    domain.Label
	Page      int
}

// Load materializes the state from the store, falling back to defaults on
// first access: empty collection, nothing fetched, defaultLabel selected,
// page one.
func Load(store ports.SessionStore, defaultLabel domain.Label) State {
	s := State{Domain: defaultLabel, Page: 1}

	if v, ok := store.Get(keyCollection); ok {
		if coll, ok := v.(domain.Collection); ok {
			s.Articles = coll
		}
	}
	if v, ok := store.Get(keyFetched); ok {
		if b, ok := v.(bool); ok {
			s.Fetched = b
		}
	}
	if v, ok := store.Get(keySummary); ok {
		if str, ok := v.(string); ok {
			s.Summary = str
		}
	}
	if v, ok := store.Get(keyDateRange); ok {
		if str, ok := v.(string); ok {
			s.DateRange = str
		}
	}
	if v, ok := store.Get(keyDomain); ok {
		if label, ok := v.(domain.Label); ok {
			s.Domain = label
		}
	}
	if v, ok := store.Get(keyPage); ok {
		if page, ok := v.(int); ok {
			s.Page = page
		}
	}

	return s
}

// Save writes every field back to the store.
func Save(store ports.SessionStore, s State) {
	store.Set(keyCollection, s.Articles)
	store.Set(keyFetched, s.Fetched)
	store.Set(keySummary, s.Summary)
	store.Set(keyDateRange, s.DateRange)
	store.Set(keyDomain, s.Domain)
	store.Set(keyPage, s.Page)
}

// ApplyFetch replaces the snapshot wholesale: new collection, rebuilt
// summary and date-range strings, fetched flag set, page back to one. The
// domain selection survives when still present, otherwise it falls back to
// the collection's first label.
func (s State) ApplyFetch(coll domain.Collection, stats domain.Stats) State {
	s.Articles = coll
	s.Fetched = true
	s.Summary = Summary(coll)
	s.DateRange = DateRange(stats)
	s.Page = 1

	if !hasLabel(coll, s.Domain) {
		if labels := coll.Labels(); len(labels) > 0 {
			s.Domain = labels[0]
		}
	}

	return s
}

// ApplyDomain switches the selected domain and resets the page, so a short
// domain never starts out beyond its last page.
func (s State) ApplyDomain(label domain.Label) State {
	if label == s.Domain {
		return s
	}
	s.Domain = label
	s.Page = 1
	return s
}

// ApplyPage clamps the requested page into [1, totalPages].
func (s State) ApplyPage(page, totalPages int) State {
	s.Page = browse.Clamp(page, totalPages)
	return s
}

func hasLabel(coll domain.Collection, label domain.Label) bool {
	for _, l := range coll.Labels() {
		if l == label {
			return true
		}
	}
	return false
}
