package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versemate/internal/domain"
)

func linearTwoGroups(t *testing.T) *Catalog {
	t.Helper()
	c, err := New("test", []Group{
		{ID: "1", Name: "First", Length: 50},
		{ID: "2", Name: "Second", Length: 40},
	}, false)
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadGroups(t *testing.T) {
	_, err := New("bad", []Group{{ID: "1", Length: 0}}, false)
	assert.Error(t, err)

	_, err = New("bad", []Group{{ID: "1", Length: 3}, {ID: "1", Length: 4}}, false)
	assert.Error(t, err)
}

func TestCrossGroupBoundary(t *testing.T) {
	c := linearTwoGroups(t)

	idx, ok := c.IndexOf(domain.Identity{Group: "1", Offset: 50})
	require.True(t, ok)
	assert.Equal(t, 49, idx)

	idx, ok = c.IndexOf(domain.Identity{Group: "2", Offset: 1})
	require.True(t, ok)
	assert.Equal(t, 50, idx)

	id, ok := c.Resolve(49)
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "1", Offset: 50}, id)

	id, ok = c.Resolve(50)
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "2", Offset: 1}, id)
}

func TestLinearBoundaries(t *testing.T) {
	c := linearTwoGroups(t)

	_, ok := c.Resolve(-1)
	assert.False(t, ok, "index before the catalog is a boundary")

	_, ok = c.Resolve(c.Total())
	assert.False(t, ok, "index past the catalog is a boundary")

	id, ok := c.Resolve(0)
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "1", Offset: 1}, id)

	id, ok = c.Resolve(c.Total() - 1)
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "2", Offset: 40}, id)
}

func TestRoundTripWholeBible(t *testing.T) {
	c := Bible()
	require.Equal(t, 1189, c.Total(), "canon chapter count")

	for _, g := range c.Groups() {
		for off := 1; off <= g.Length; off++ {
			id := domain.Identity{Group: g.ID, Offset: off}
			idx, ok := c.IndexOf(id)
			require.True(t, ok, "IndexOf(%v)", id)
			back, ok := c.Resolve(idx)
			require.True(t, ok, "Resolve(%d)", idx)
			require.Equal(t, id, back)
		}
	}
}

func TestSingleChapterBookTraversal(t *testing.T) {
	c := Bible()

	// Obadiah (31, one chapter) sits between Amos (30, nine) and Jonah (32).
	idx, ok := c.IndexOf(domain.Identity{Group: "31", Offset: 1})
	require.True(t, ok)

	before, ok := c.Resolve(idx - 1)
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "30", Offset: 9}, before)

	after, ok := c.Resolve(idx + 1)
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "32", Offset: 1}, after)
}

func TestInvalidIdentity(t *testing.T) {
	c := linearTwoGroups(t)

	_, ok := c.IndexOf(domain.Identity{Group: "99", Offset: 1})
	assert.False(t, ok, "unknown group")

	_, ok = c.IndexOf(domain.Identity{Group: "1", Offset: 0})
	assert.False(t, ok, "offset below range")

	_, ok = c.IndexOf(domain.Identity{Group: "1", Offset: 51})
	assert.False(t, ok, "offset past the group")
}

func TestCircularWrap(t *testing.T) {
	c, err := New("wrap", []Group{
		{ID: "a", Length: 3},
		{ID: "b", Length: 2},
	}, true)
	require.NoError(t, err)

	last, ok := c.Resolve(c.Total() - 1)
	require.True(t, ok)
	wrapped, ok := c.Resolve(-1)
	require.True(t, ok)
	assert.Equal(t, last, wrapped)

	first, ok := c.Resolve(0)
	require.True(t, ok)
	wrapped, ok = c.Resolve(c.Total())
	require.True(t, ok)
	assert.Equal(t, first, wrapped)

	// Deep negative and far positive indexes reduce the same way.
	wrapped, ok = c.Resolve(-1 - 3*c.Total())
	require.True(t, ok)
	assert.Equal(t, last, wrapped)
}

func TestNormalize(t *testing.T) {
	circ, err := New("c", []Group{{ID: "a", Length: 5}}, true)
	require.NoError(t, err)
	assert.Equal(t, 4, circ.Normalize(-1))
	assert.Equal(t, 0, circ.Normalize(5))
	assert.Equal(t, 2, circ.Normalize(-3))

	lin := linearTwoGroups(t)
	assert.Equal(t, -1, lin.Normalize(-1), "linear catalogs never wrap")
}

func TestFindBook(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"Genesis", 1, true},
		{"gen", 1, true},
		{"GENE", 1, true},
		{"song of solomon", 22, true},
		{"Song", 22, true},
		{"1 John", 62, true},
		{"1john", 62, true},
		{"3 jo", 64, true},
		{"ju", 0, false}, // Judges vs Jude: ambiguous prefix
		{"nothing", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		b, ok := FindBook(tc.in)
		assert.Equal(t, tc.ok, ok, "FindBook(%q)", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, b.ID, "FindBook(%q)", tc.in)
		}
	}
}

func TestTopicIndex(t *testing.T) {
	topics := []domain.Topic{
		{ID: "faith-1", Name: "Faith", Category: "Beliefs"},
		{ID: "hope-1", Name: "Hope", Category: "Beliefs"},
		{ID: "prayer-1", Name: "Prayer", Category: "Practice"},
		{ID: "stray", Name: "Stray"},
	}
	ti, err := NewTopicIndex(topics)
	require.NoError(t, err)

	c := ti.Catalog()
	assert.True(t, c.Circular())
	assert.Equal(t, 4, c.Total())
	require.Len(t, c.Groups(), 3)
	assert.Equal(t, "beliefs", c.Groups()[0].ID)
	assert.Equal(t, "practice", c.Groups()[1].ID)
	assert.Equal(t, "general", c.Groups()[2].ID, "uncategorized topics land in General")

	id, ok := ti.IdentityOf("prayer-1")
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "practice", Offset: 1}, id)

	tp, ok := ti.Topic(domain.Identity{Group: "beliefs", Offset: 2})
	require.True(t, ok)
	assert.Equal(t, "Hope", tp.Name)

	_, ok = ti.Topic(domain.Identity{Group: "beliefs", Offset: 3})
	assert.False(t, ok)
}
