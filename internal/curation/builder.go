package curation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"FoodTechScanner/internal/domain"
	"FoodTechScanner/internal/ports"
)

// Builder assembles the completion request for the whole collection and
// always hands back display text: the service's reply verbatim on success,
// an error string otherwise.
type Builder struct {
	chat   ports.ChatClient
	logger *slog.Logger
}

var _ ports.Curator = (*Builder)(nil)

// NewBuilder wires the builder over a chat client.
func NewBuilder(chat ports.ChatClient, logger *slog.Logger) *Builder {
	return &Builder{chat: chat, logger: logger}
}

// TopArticles sends prompt + preamble + serialized collection as one user
// message and passes the reply through unmodified. Any failure comes back
// as an "An error occurred:" string for the surface to render in place of
// the reply; session state is never touched from here.
func (b *Builder) TopArticles(ctx context.Context, articles domain.Collection, prompt string) string {
	message := fmt.Sprintf("%s\n\n%s\n\n%s", prompt, Preamble, Serialize(articles))

	requestID := uuid.New().String()
	b.info("curation dispatched", "request_id", requestID, "articles", articles.Total())

	reply, err := b.chat.Complete(ctx, message)
	if err != nil {
		b.warn("curation failed", "request_id", requestID, "error", err)
		return fmt.Sprintf("An error occurred: %v", err)
	}

	b.info("curation reply received", "request_id", requestID, "chars", len(reply))
	return reply
}

func (b *Builder) warn(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Warn(msg, args...)
	}
}

func (b *Builder) info(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Info(msg, args...)
	}
}
