package catalog

import (
	"strings"

	"versemate/internal/domain"
)

// TopicIndex wraps the circular topic catalog together with the lookup tables
// the page renderer needs: identity -> topic and topic id -> identity.
type TopicIndex struct {
	cat        *Catalog
	byIdentity map[domain.Identity]domain.Topic
	byTopicID  map[string]domain.Identity
}

// NewTopicIndex builds the topic catalog from seed rows. Categories keep
// their first-seen order (the store orders rows by sort_order); topics keep
// their order within each category. The returned catalog is circular: paging
// past the last topic wraps to the first.
func NewTopicIndex(topics []domain.Topic) (*TopicIndex, error) {
	type bucket struct {
		slug  string
		name  string
		items []domain.Topic
	}
	var order []string
	buckets := make(map[string]*bucket)
	for _, t := range topics {
		name := t.Category
		if name == "" {
			name = "General"
		}
		slug := slugify(name)
		b, ok := buckets[slug]
		if !ok {
			b = &bucket{slug: slug, name: name}
			buckets[slug] = b
			order = append(order, slug)
		}
		b.items = append(b.items, t)
	}

	groups := make([]Group, 0, len(order))
	for _, slug := range order {
		b := buckets[slug]
		groups = append(groups, Group{ID: b.slug, Name: b.name, Length: len(b.items)})
	}

	cat, err := New("topics", groups, true)
	if err != nil {
		return nil, err
	}

	ti := &TopicIndex{
		cat:        cat,
		byIdentity: make(map[domain.Identity]domain.Topic, len(topics)),
		byTopicID:  make(map[string]domain.Identity, len(topics)),
	}
	for _, slug := range order {
		for i, t := range buckets[slug].items {
			id := domain.Identity{Group: slug, Offset: i + 1}
			ti.byIdentity[id] = t
			ti.byTopicID[t.ID] = id
		}
	}
	return ti, nil
}

// Catalog returns the circular topic catalog.
func (ti *TopicIndex) Catalog() *Catalog { return ti.cat }

// Topic returns the topic bound to an identity.
func (ti *TopicIndex) Topic(id domain.Identity) (domain.Topic, bool) {
	t, ok := ti.byIdentity[id]
	return t, ok
}

// IdentityOf resolves a topic id to its catalog identity, used when a deep
// link names a topic rather than a position.
func (ti *TopicIndex) IdentityOf(topicID string) (domain.Identity, bool) {
	id, ok := ti.byTopicID[topicID]
	return id, ok
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		}
		return -1
	}, s)
}
