package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"FoodTechScanner/internal/domain"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
  <channel>
    <title>Example Food Tech</title>
    <link>https://example.org</link>
    <description>test feed</description>
    <item>
      <title>Alt-protein funding rebounds</title>
      <link>https://example.org/articles/1</link>
      <description>Short teaser</description>
      <content:encoded><![CDATA[<p>Full story body</p>]]></content:encoded>
      <pubDate>Mon, 05 Feb 2024 10:00:00 +0000</pubDate>
    </item>
    <item>
      <title>Vertical farm opens</title>
      <description>&lt;p&gt;Leafy greens at scale&lt;/p&gt;</description>
    </item>
  </channel>
</rss>`

func TestRetrieveWellFormedFeed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeedXML))
	}))
	defer server.Close()

	src := domain.Source{URL: server.URL, Domain: domain.FutureFood}
	r := NewRetriever(server.Client(), nil)

	res := r.Retrieve(context.Background(), src)

	if res.Failed() {
		t.Fatalf("unexpected failure: %v (%s)", res.Err, res.Failure)
	}
	if len(res.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(res.Articles))
	}

	first := res.Articles[0]
	if first.Title != "Alt-protein funding rebounds" {
		t.Fatalf("unexpected title: %q", first.Title)
	}
	if first.Content != "Full story body" {
		t.Fatalf("content block not preferred: %q", first.Content)
	}
	if first.PublishedRaw != "Mon, 05 Feb 2024 10:00:00 +0000" {
		t.Fatalf("published not kept raw: %q", first.PublishedRaw)
	}
	if first.Domain != domain.FutureFood || first.SourceURL != server.URL {
		t.Fatalf("registration fields not stamped: %+v", first)
	}

	second := res.Articles[1]
	if second.Content != "Leafy greens at scale" {
		t.Fatalf("description not decoded and stripped: %q", second.Content)
	}
	if second.Link != "" || second.PublishedRaw != "" {
		t.Fatalf("missing fields should stay empty: %+v", second)
	}
}

func TestRetrieveMalformedFeed(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("definitely not a feed"))
	}))
	defer server.Close()

	r := NewRetriever(server.Client(), nil)
	res := r.Retrieve(context.Background(), domain.Source{URL: server.URL, Domain: domain.Agriculture})

	if res.Failure != domain.FailureMalformed {
		t.Fatalf("expected malformed failure, got %s (err=%v)", res.Failure, res.Err)
	}
	if len(res.Articles) != 0 {
		t.Fatalf("malformed feed must yield no articles, got %d", len(res.Articles))
	}
}

func TestRetrieveTransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	r := NewRetriever(server.Client(), nil)
	res := r.Retrieve(context.Background(), domain.Source{URL: server.URL, Domain: domain.Agriculture})

	if res.Failure != domain.FailureTransport {
		t.Fatalf("expected transport failure, got %s (err=%v)", res.Failure, res.Err)
	}
	if res.Err == nil {
		t.Fatal("expected a cause on the result")
	}
}
