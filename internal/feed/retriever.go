package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"FoodTechScanner/internal/domain"
	"FoodTechScanner/internal/ports"
)

const userAgent = "FoodTechScanner/1.0"

// Retriever fetches one registered feed over HTTP and normalizes its
// entries. Failures are classified and reported on the result instead of
// returned as hard errors: one broken source must never abort a fetch run.
type Retriever struct {
	client *http.Client
	parser *gofeed.Parser
	logger *slog.Logger
}

var _ ports.Retriever = (*Retriever)(nil)

// NewRetriever wires an HTTP client; a nil client defaults to a 20-second timeout.
func NewRetriever(client *http.Client, logger *slog.Logger) *Retriever {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Retriever{client: client, parser: gofeed.NewParser(), logger: logger}
}

// Retrieve performs a single attempt against the source. No retries.
func (r *Retriever) Retrieve(ctx context.Context, src domain.Source) domain.RetrievalResult {
	res := domain.RetrievalResult{Source: src}

	body, err := r.fetchBody(ctx, src.URL)
	if err != nil {
		res.Failure = domain.FailureTransport
		res.Err = err
		r.warn("feed unreachable", "url", src.URL, "error", err)
		return res
	}

	parsed, err := r.parser.ParseString(body)
	if err != nil {
		res.Failure = domain.FailureMalformed
		res.Err = fmt.Errorf("parse feed: %w", err)
		r.warn("feed malformed", "url", src.URL, "error", err)
		return res
	}

	res.Articles = make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		res.Articles = append(res.Articles, NormalizeItem(item, src))
	}

	r.info("collected articles", "url", src.URL, "domain", string(src.Domain), "count", len(res.Articles))
	return res
}

func (r *Retriever) fetchBody(ctx context.Context, feedURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("feed returned %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read feed body: %w", err)
	}

	return string(raw), nil
}

func (r *Retriever) warn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}

func (r *Retriever) info(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}
