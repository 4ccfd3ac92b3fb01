package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versemate/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "seed.db"), "NASB1995", "en", nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestChapterVerses(t *testing.T) {
	s := newTestStore(t)

	err := s.InsertVerses([]domain.Verse{
		{BookID: 43, Chapter: 3, Number: 16, Text: "For God so loved the world..."},
		{BookID: 43, Chapter: 3, Number: 17, Text: "For God did not send the Son..."},
		{BookID: 43, Chapter: 4, Number: 1, Text: "Therefore when the Lord knew..."},
	})
	require.NoError(t, err)

	verses, err := s.ChapterVerses(43, 3)
	require.NoError(t, err)
	require.Len(t, verses, 2)
	assert.Equal(t, 16, verses[0].Number)
	assert.Equal(t, 17, verses[1].Number)

	// Chapter with no seeded text is empty, not an error.
	verses, err = s.ChapterVerses(1, 1)
	require.NoError(t, err)
	assert.Empty(t, verses)
}

func TestTopicsKeepSeedOrder(t *testing.T) {
	s := newTestStore(t)

	err := s.InsertTopics([]domain.Topic{
		{ID: "faith", Name: "Faith", Category: "Beliefs", Content: "# Faith"},
		{ID: "prayer", Name: "Prayer", Category: "Practice", Content: "# Prayer"},
		{ID: "hope", Name: "Hope", Category: "Beliefs", Content: "# Hope"},
	})
	require.NoError(t, err)

	topics, err := s.Topics()
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "faith", topics[0].ID)
	assert.Equal(t, "prayer", topics[1].ID)
	assert.Equal(t, "hope", topics[2].ID)
}

func TestBookmarkRoundTrip(t *testing.T) {
	s := newTestStore(t)

	b, err := s.AddBookmark(19, 23, "Psalm 23")
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)

	found, ok, err := s.FindBookmark(19, 23)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, b.ID, found.ID)
	assert.Equal(t, "Psalm 23", found.Label)

	marks, err := s.Bookmarks()
	require.NoError(t, err)
	require.Len(t, marks, 1)

	require.NoError(t, s.RemoveBookmark(b.ID))
	_, ok, err = s.FindBookmark(19, 23)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestToggleBookmark(t *testing.T) {
	s := newTestStore(t)

	added, err := s.ToggleBookmark(1, 1, "Genesis 1")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.ToggleBookmark(1, 1, "Genesis 1")
	require.NoError(t, err)
	assert.False(t, added, "second toggle removes")

	marks, err := s.Bookmarks()
	require.NoError(t, err)
	assert.Empty(t, marks)
}
