package curation

import (
	"fmt"
	"strings"

	"FoodTechScanner/internal/domain"
)

// contentRunes caps per-article content in the serialized payload so a
// single long entry cannot blow the request past the model's context.
const contentRunes = 2000

// Serialize renders the collection as the deterministic, human-readable
// listing sent to the completion service: domains in collection order, each
// article numbered with title, link, date, source and capped content.
func Serialize(coll domain.Collection) string {
	var b strings.Builder

	for _, label := range coll.Labels() {
		fmt.Fprintf(&b, "## %s\n\n", label)
		for i, art := range coll.Articles(label) {
			fmt.Fprintf(&b, "%d. Title: %s\n", i+1, art.Title)
			fmt.Fprintf(&b, "   Link: %s\n", art.Link)
			fmt.Fprintf(&b, "   Date: %s\n", art.PublishedRaw)
			fmt.Fprintf(&b, "   Source: %s\n", art.SourceURL)
			fmt.Fprintf(&b, "   Content: %s\n\n", trimContent(art.Content))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// trimContent cuts long content at the last sentence boundary inside the
// cap, falling back to a hard cut.
func trimContent(content string) string {
	runes := []rune(content)
	if len(runes) <= contentRunes {
		return content
	}

	clipped := string(runes[:contentRunes])
	if idx := strings.LastIndex(clipped, ". "); idx >= 0 {
		return clipped[:idx+1]
	}
	return clipped + "..."
}
