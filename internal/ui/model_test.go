package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"versemate/internal/catalog"
	"versemate/internal/config"
	"versemate/internal/domain"
	"versemate/internal/store"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "seed.db"), "NASB1995", "en", nil)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	cfg := config.DefaultConfig()
	cfg.SyncDebounceMs = 1

	m := NewModel(nil, cfg, st)
	t.Cleanup(m.Close)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func keyPress(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestStartsOnGenesisOne(t *testing.T) {
	m := newTestModel(t)

	id, ok := m.navs[0].ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "1", Offset: 1}, id)
	assert.Equal(t, domain.Identity{Group: "1", Offset: 1}, m.navs[0].route.CurrentIdentity())
}

func TestStepKeysMoveBibleNavigator(t *testing.T) {
	m := newTestModel(t)

	keyPress(m, "l")
	id, ok := m.navs[0].ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "1", Offset: 2}, id)

	keyPress(m, "h")
	id, _ = m.navs[0].ctrl.VisibleIdentity()
	assert.Equal(t, domain.Identity{Group: "1", Offset: 1}, id)

	// At the first chapter, stepping back is rejected at the boundary.
	keyPress(m, "h")
	id, _ = m.navs[0].ctrl.VisibleIdentity()
	assert.Equal(t, domain.Identity{Group: "1", Offset: 1}, id)
}

func TestTabSwitchesNavigators(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, "bible", m.nav().name)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "topics", m.nav().name)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "bible", m.nav().name)
}

func TestInboundIdentityChangeJumps(t *testing.T) {
	m := newTestModel(t)

	m.Update(EventMsg{Event: domain.IdentityChangedEvent{
		Navigator: "bible",
		Identity:  domain.Identity{Group: "43", Offset: 3},
	}})

	id, ok := m.navs[0].ctrl.VisibleIdentity()
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "43", Offset: 3}, id)
}

func TestGotoRoutesThroughHost(t *testing.T) {
	m := newTestModel(t)

	m.jumpTo("John 3")
	assert.Equal(t, domain.Identity{Group: "43", Offset: 3}, m.navs[0].route.CurrentIdentity())

	m.jumpTo("Genesis 99")
	assert.Contains(t, m.status, "chapters")
}

func TestBookmarkToggle(t *testing.T) {
	m := newTestModel(t)

	keyPress(m, "m")
	_, found, err := m.store.FindBookmark(1, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, m.status, "Genesis 1")

	keyPress(m, "m")
	_, found, err = m.store.FindBookmark(1, 1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBookmarkJumpFromOverlay(t *testing.T) {
	m := newTestModel(t)

	_, err := m.store.AddBookmark(19, 23, "Psalms 23")
	require.NoError(t, err)

	keyPress(m, "B")
	require.Equal(t, modeBookmarks, m.mode)
	require.Len(t, m.bookmarks, 1)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, domain.Identity{Group: "19", Offset: 23}, m.navs[0].route.CurrentIdentity())
}

func TestTopicsStartLoadingThenBind(t *testing.T) {
	m := newTestModel(t)

	require.True(t, m.navs[1].ctrl.Loading())

	idx, err := catalog.NewTopicIndex([]domain.Topic{
		{ID: "faith", Name: "Faith", Category: "Beliefs", Content: "# Faith"},
		{ID: "hope", Name: "Hope", Category: "Beliefs", Content: "# Hope"},
	})
	require.NoError(t, err)
	m.topicList = []domain.Topic{
		{ID: "faith", Name: "Faith", Category: "Beliefs"},
		{ID: "hope", Name: "Hope", Category: "Beliefs"},
	}
	m.applyTopics(topicsLoadedMsg{index: idx})

	assert.False(t, m.navs[1].ctrl.Loading())

	id, ok := m.findTopic("hope")
	require.True(t, ok)
	assert.Equal(t, domain.Identity{Group: "beliefs", Offset: 2}, id)
}

func TestHardJumpResetsScroll(t *testing.T) {
	m := newTestModel(t)

	key := "bible/1:1"
	m.scroll[key] = 7

	m.Update(EventMsg{Event: domain.IdentityChangedEvent{
		Navigator: "bible",
		Identity:  domain.Identity{Group: "43", Offset: 3},
	}})
	// Jump back to the scrolled chapter; the hard re-center clears it.
	m.Update(EventMsg{Event: domain.IdentityChangedEvent{
		Navigator: "bible",
		Identity:  domain.Identity{Group: "1", Offset: 1},
	}})
	m.Update(EventMsg{Event: domain.RecenteredEvent{
		Navigator: "bible", CenterIndex: 0, HardJump: true,
	}})

	_, exists := m.scroll[key]
	assert.False(t, exists)
}

func TestViewRendersCurrentChapter(t *testing.T) {
	m := newTestModel(t)

	require.NoError(t, m.store.InsertVerses([]domain.Verse{
		{BookID: 1, Chapter: 1, Number: 1, Text: "In the beginning God created the heavens and the earth."},
	}))

	view := m.View()
	assert.Contains(t, view, "Genesis 1")
	assert.True(t, strings.Contains(view, "beginning"))
}

func TestGotoModeCapturesKeys(t *testing.T) {
	m := newTestModel(t)

	keyPress(m, "g")
	require.Equal(t, modeGoto, m.mode)

	// Keys that normally step pages go to the text input instead.
	keyPress(m, "l")
	id, _ := m.navs[0].ctrl.VisibleIdentity()
	assert.Equal(t, domain.Identity{Group: "1", Offset: 1}, id)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeNormal, m.mode)
}
