package feed

import (
	"testing"

	"github.com/mmcdole/gofeed"

	"FoodTechScanner/internal/domain"
)

var testSource = domain.Source{URL: "https://example.org/feed", Domain: domain.Aquaculture}

func TestNormalizeItemPrefersContentBlock(t *testing.T) {
	t.Parallel()

	item := &gofeed.Item{
		Title:       "Offshore pens scale up",
		Link:        "https://example.org/articles/1",
		Published:   "Mon, 05 Feb 2024 10:00:00 +0000",
		Content:     "<p>Full story body</p>",
		Description: "Short teaser",
	}

	art := NormalizeItem(item, testSource)

	if art.Content != "Full story body" {
		t.Fatalf("unexpected content: %q", art.Content)
	}
	if art.Title != "Offshore pens scale up" {
		t.Fatalf("unexpected title: %q", art.Title)
	}
	if art.Link != "https://example.org/articles/1" {
		t.Fatalf("unexpected link: %q", art.Link)
	}
	if art.PublishedRaw != "Mon, 05 Feb 2024 10:00:00 +0000" {
		t.Fatalf("unexpected published: %q", art.PublishedRaw)
	}
}

func TestNormalizeItemFallsBackToDescription(t *testing.T) {
	t.Parallel()

	item := &gofeed.Item{
		Title:       "Feed additive trial",
		Description: "Algae &amp; insect meal <b>cut costs</b>",
	}

	art := NormalizeItem(item, testSource)

	want := "Algae & insect meal\ncut costs"
	if art.Content != want {
		t.Fatalf("content = %q, want %q", art.Content, want)
	}
}

func TestNormalizeItemMissingFields(t *testing.T) {
	t.Parallel()

	art := NormalizeItem(&gofeed.Item{}, testSource)

	if art.Title != "" || art.Link != "" || art.PublishedRaw != "" || art.Content != "" {
		t.Fatalf("expected empty optional fields, got %+v", art)
	}
	if art.Domain != domain.Aquaculture {
		t.Fatalf("domain not stamped: %q", art.Domain)
	}
	if art.SourceURL != testSource.URL {
		t.Fatalf("source url not stamped: %q", art.SourceURL)
	}
}

func TestNormalizeItemNilEntry(t *testing.T) {
	t.Parallel()

	art := NormalizeItem(nil, testSource)

	if art.Domain != testSource.Domain || art.SourceURL != testSource.URL {
		t.Fatalf("registration fields missing on nil entry: %+v", art)
	}
}

func TestNormalizeItemDeterministic(t *testing.T) {
	t.Parallel()

	item := &gofeed.Item{
		Title:       "Offshore pens scale up",
		Link:        "https://example.org/articles/1",
		Published:   "Mon, 05 Feb 2024 10:00:00 +0000",
		Description: "Algae &amp; insect meal <b>cut costs</b>",
	}

	first := NormalizeItem(item, testSource)
	second := NormalizeItem(item, testSource)
	if first != second {
		t.Fatalf("same entry produced different records:\n%+v\n%+v", first, second)
	}
}
