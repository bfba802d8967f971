package domain

// Collection buckets articles by domain label. Label order follows first
// appearance (seed order, then any label first seen via Add), and articles
// keep their retrieval order within each bucket. The zero value is usable.
type Collection struct {
	labels  []Label
	buckets map[Label][]Article
}

// NewCollection seeds empty buckets for the given labels so that domains
// whose sources all fail still show up, just with no articles.
func NewCollection(labels ...Label) Collection {
	c := Collection{buckets: make(map[Label][]Article, len(labels))}
	for _, l := range labels {
		if _, ok := c.buckets[l]; ok {
			continue
		}
		c.labels = append(c.labels, l)
		c.buckets[l] = nil
	}
	return c
}

// Add files the article under its domain label.
func (c *Collection) Add(a Article) {
	if c.buckets == nil {
		c.buckets = map[Label][]Article{}
	}
	if _, ok := c.buckets[a.Domain]; !ok {
		c.labels = append(c.labels, a.Domain)
	}
	c.buckets[a.Domain] = append(c.buckets[a.Domain], a)
}

// Labels lists the bucket labels in first-appearance order.
func (c Collection) Labels() []Label {
	return c.labels
}

// Articles returns the bucket for a label; nil when the label is unknown.
func (c Collection) Articles(label Label) []Article {
	return c.buckets[label]
}

// Count reports the number of articles filed under a label.
func (c Collection) Count(label Label) int {
	return len(c.buckets[label])
}

// Total reports the number of articles across all buckets.
func (c Collection) Total() int {
	n := 0
	for _, bucket := range c.buckets {
		n += len(bucket)
	}
	return n
}
