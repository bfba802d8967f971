package domain

// Label names one of the fixed subject-matter domains articles are bucketed into.
type Label string

const (
	Agriculture Label = "Agriculture"
	Aquaculture Label = "Aquaculture"
	FutureFood  Label = "Future Food"
	FoodSafety  Label = "Food Safety"
)

var labelEmoji = map[Label]string{
	Agriculture: "🌾",
	Aquaculture: "🐠",
	FutureFood:  "🍽️",
	FoodSafety:  "🧪",
}

// Emoji returns the display glyph for the label, with a generic fallback.
func (l Label) Emoji() string {
	if e, ok := labelEmoji[l]; ok {
		return e
	}
	return "📰"
}

// Article is the core entity: one normalized feed entry.
// Title, Content, Link and PublishedRaw degrade to empty strings when the
// entry omits them; Domain and SourceURL are stamped from the registration
// and are never empty.
type Article struct {
	Title        string
	Content      string
	Link         string
	PublishedRaw string
	Domain       Label
	SourceURL    string
}

// Source is one registration entry: a feed URL and the domain its articles
// are filed under. The registration is ordered and immutable after startup.
type Source struct {
	URL    string
	Domain Label
}
