// Package catalog defines the content universe a navigator pages through: an
// ordered list of groups (books or topic categories) with known lengths, and
// the bidirectional mapping between flat absolute indexes and identities.
package catalog

import (
	"fmt"
	"sort"

	"versemate/internal/domain"
)

// Group is one book or topic category.
type Group struct {
	ID     string // stable id: decimal book id or category slug
	Name   string // display name
	Length int    // chapter or topic count, always positive
}

// Catalog is an immutable snapshot of a group list. Lengths never change for
// the lifetime of a navigation session, so all lookups are lock-free.
type Catalog struct {
	name     string
	groups   []Group
	starts   []int // cumulative start index per group
	byID     map[string]int
	total    int
	circular bool
}

// New builds a catalog from an ordered group list. Circular catalogs wrap at
// the ends instead of exposing boundaries.
func New(name string, groups []Group, circular bool) (*Catalog, error) {
	c := &Catalog{
		name:     name,
		groups:   make([]Group, len(groups)),
		starts:   make([]int, len(groups)),
		byID:     make(map[string]int, len(groups)),
		circular: circular,
	}
	copy(c.groups, groups)

	for i, g := range c.groups {
		if g.Length <= 0 {
			return nil, fmt.Errorf("catalog %s: group %q has non-positive length %d", name, g.ID, g.Length)
		}
		if _, dup := c.byID[g.ID]; dup {
			return nil, fmt.Errorf("catalog %s: duplicate group id %q", name, g.ID)
		}
		c.byID[g.ID] = i
		c.starts[i] = c.total
		c.total += g.Length
	}
	return c, nil
}

// Name returns the catalog name ("bible", "topics").
func (c *Catalog) Name() string { return c.name }

// Circular reports whether indexes wrap instead of hitting boundaries.
func (c *Catalog) Circular() bool { return c.circular }

// Total returns the number of content units across all groups.
func (c *Catalog) Total() int { return c.total }

// Groups returns the ordered group list.
func (c *Catalog) Groups() []Group { return c.groups }

// Group looks up a group by id.
func (c *Catalog) Group(id string) (Group, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Group{}, false
	}
	return c.groups[i], true
}

// IndexOf converts an identity to its absolute index. The second return is
// false when the group is unknown or the offset falls outside the group.
func (c *Catalog) IndexOf(id domain.Identity) (int, bool) {
	i, ok := c.byID[id.Group]
	if !ok {
		return 0, false
	}
	if id.Offset < 1 || id.Offset > c.groups[i].Length {
		return 0, false
	}
	return c.starts[i] + id.Offset - 1, true
}

// Resolve converts an absolute index back to an identity. For linear catalogs
// an out-of-range index is a boundary and the second return is false. For
// circular catalogs the index is first reduced modulo Total, so resolution
// never fails.
//
// A unit belongs to the first group whose cumulative end exceeds the index:
// groups are half-open intervals [start, start+length).
func (c *Catalog) Resolve(index int) (domain.Identity, bool) {
	if c.total == 0 {
		return domain.Identity{}, false
	}
	if c.circular {
		index = c.Normalize(index)
	} else if index < 0 || index >= c.total {
		return domain.Identity{}, false
	}

	g := sort.Search(len(c.groups), func(i int) bool {
		return c.starts[i]+c.groups[i].Length > index
	})
	return domain.Identity{
		Group:  c.groups[g].ID,
		Offset: index - c.starts[g] + 1,
	}, true
}

// Normalize reduces an index into [0, Total) for circular catalogs. Linear
// catalogs return the index unchanged; callers comparing visible positions
// use this so wrapped indexes compare equal.
func (c *Catalog) Normalize(index int) int {
	if !c.circular || c.total == 0 {
		return index
	}
	index %= c.total
	if index < 0 {
		index += c.total
	}
	return index
}
