package feed

import (
	"strings"

	"github.com/mmcdole/gofeed"

	"FoodTechScanner/internal/domain"
)

// NormalizeItem converts one raw feed entry into the uniform article record.
// The entry's dedicated content block wins over its summary/description, and
// the winner is decoded and stripped via PlainText. Missing fields degrade
// to empty strings; the domain label and source URL are stamped from the
// registration entry and are always set. Any entry shape yields a
// well-formed article.
func NormalizeItem(item *gofeed.Item, src domain.Source) domain.Article {
	art := domain.Article{Domain: src.Domain, SourceURL: src.URL}
	if item == nil {
		return art
	}

	art.Title = strings.TrimSpace(item.Title)
	art.Link = strings.TrimSpace(item.Link)
	art.PublishedRaw = strings.TrimSpace(item.Published)
	art.Content = PlainText(pickContent(item))

	return art
}

// pickContent prefers the explicit content block. gofeed folds RSS
// description and Atom summary into Description, which covers the remaining
// fallback levels.
func pickContent(item *gofeed.Item) string {
	if strings.TrimSpace(item.Content) != "" {
		return item.Content
	}
	return item.Description
}
