package ports

import (
	"context"

	"FoodTechScanner/internal/domain"
)

// Retriever pulls one registered feed source and normalizes its entries.
type Retriever interface {
	Retrieve(ctx context.Context, src domain.Source) domain.RetrievalResult
}

// Collector runs the whole source registration and assembles the snapshot.
type Collector interface {
	Collect(ctx context.Context) (domain.Collection, domain.Stats)
}

// ChatClient sends one user message to an LLM API and returns the reply text.
type ChatClient interface {
	Complete(ctx context.Context, message string) (string, error)
}

// Curator asks the completion service to pick top articles per domain.
// It always returns display text: the raw reply on success, an error string
// otherwise.
type Curator interface {
	TopArticles(ctx context.Context, articles domain.Collection, prompt string) string
}

// SessionStore is the render surface's key/value state bag.
type SessionStore interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}
