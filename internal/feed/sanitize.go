package feed

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
)

// PlainText converts feed-provided markup into readable text. Entities are
// decoded first (feeds routinely ship double-encoded markup), then every
// visible text fragment is trimmed and the fragments are joined with
// newlines, so paragraph and <br> breaks survive as line breaks. Script and
// style bodies are dropped. Input that is already plain text comes back
// unchanged apart from surrounding whitespace.
func PlainText(raw string) string {
	decoded := html.UnescapeString(raw)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decoded))
	if err != nil {
		return strings.TrimSpace(decoded)
	}

	var fragments []string
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		switch n.Type {
		case xhtml.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				fragments = append(fragments, t)
			}
			return
		case xhtml.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Nodes {
		walk(root)
	}

	return strings.Join(fragments, "\n")
}
