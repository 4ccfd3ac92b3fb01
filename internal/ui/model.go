package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"versemate/internal/catalog"
	"versemate/internal/config"
	"versemate/internal/domain"
	"versemate/internal/eventbus"
	"versemate/internal/navigator"
	"versemate/internal/router"
	"versemate/internal/store"
)

// inputMode tracks which overlay, if any, owns the keyboard.
type inputMode int

const (
	modeNormal inputMode = iota
	modeGoto
	modeBookmarks
)

// navSet bundles everything one navigator instance owns: the controller,
// its debounced sync bridge, the host route it syncs with, and the slot
// pager that stands in for the swipe surface.
type navSet struct {
	name   string
	ctrl   *navigator.Controller
	bridge *navigator.Bridge
	route  *router.Service
	pager  *slotPager
}

// Model is the Bubble Tea model for the whole client. It hosts two
// navigator instances, bible and topics, and switches the view between
// them.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  *store.Store

	styles   *Styles
	keys     keyMap
	help     help.Model
	renderer *PageRenderer

	navs   [2]*navSet
	active int // index into navs

	topics    *catalog.TopicIndex
	topicList []domain.Topic

	mode      inputMode
	textInput textinput.Model
	showHelp  bool

	bookmarks  []domain.Bookmark
	markCursor int
	bookmarked bool // visible bible chapter has a bookmark

	// scroll offsets per identity, keyed "nav/group:offset". A hard jump
	// clears the target's entry; a soft edge re-center leaves it alone.
	scroll map[string]int

	width      int
	height     int
	status     string
	lastSettle time.Time

	reader  *ReaderOps
	program *tea.Program
}

// NewModel creates the UI model and both navigators. The bible navigator
// starts on its catalog immediately; topics start in loading mode until
// the seed rows arrive.
func NewModel(bus eventbus.EventBus, cfg *config.Config, st *store.Store) *Model {
	ti := textinput.New()
	ti.Prompt = "go to: "
	ti.CharLimit = 64

	m := &Model{
		bus:       bus,
		config:    cfg,
		store:     st,
		styles:    NewStyles(),
		keys:      newKeyMap(),
		help:      help.New(),
		textInput: ti,
		scroll:    make(map[string]int),
		reader:    NewReaderOps(nil),
	}
	m.renderer = NewPageRenderer(st, m.styles)

	m.navs[0] = m.newNavSet("bible")
	m.navs[1] = m.newNavSet("topics")

	m.navs[0].ctrl.Init(domain.Identity{Group: "1", Offset: 1}, catalog.Bible())
	m.navs[0].route.SetCurrentIdentity(domain.Identity{Group: "1", Offset: 1})
	m.navs[1].ctrl.Init(domain.Identity{}, nil)

	m.refreshBookmarked()
	return m
}

func (m *Model) newNavSet(name string) *navSet {
	n := &navSet{
		name:  name,
		route: router.NewService(name, m.bus),
		pager: &slotPager{},
	}
	n.ctrl = navigator.New(name, m.config.EffectiveWindowSize(), m.bus)
	n.ctrl.SetPager(n.pager)
	n.bridge = navigator.NewBridge(n.ctrl, n.route, m.config.SyncDebounce())
	n.ctrl.SetOutbound(n.bridge)
	n.ctrl.SetFeedback(func() { m.lastSettle = time.Now() })
	return n
}

// SetProgram sets the program reference for terminal management.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.reader.SetProgram(p)
}

// Close cancels both sync bridges. Must run before the program exits so
// no debounce timer fires against torn-down state.
func (m *Model) Close() {
	for _, n := range m.navs {
		n.bridge.Close()
	}
}

func (m *Model) nav() *navSet { return m.navs[m.active] }

// Init returns the initial commands: load topics and start the refresh
// tick that keeps the sync indicator honest.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadTopics(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadTopics reads topic rows off the event loop and delivers the built
// index as a message.
func (m *Model) loadTopics() tea.Cmd {
	return func() tea.Msg {
		topics, err := m.store.Topics()
		if err != nil {
			return topicsLoadedMsg{err: err}
		}
		if len(topics) == 0 {
			return topicsLoadedMsg{}
		}
		idx, err := catalog.NewTopicIndex(topics)
		return topicsLoadedMsg{index: idx, err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.renderer.SetWidth(maxInt(20, msg.Width-6))
		return m, nil

	case tickMsg:
		return m, tick()

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case seedChangedMsg:
		log.Printf("Seed database changed on disk, reloading")
		m.renderer.Reset()
		m.status = "seed database updated"
		return m, m.loadTopics()

	case topicsLoadedMsg:
		return m, m.applyTopics(msg)

	case readerClosedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("reader error: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) applyTopics(msg topicsLoadedMsg) tea.Cmd {
	if msg.err != nil {
		log.Printf("Error loading topics: %v", msg.err)
		m.status = fmt.Sprintf("topics: %v", msg.err)
		return nil
	}
	if msg.index == nil {
		// No topic rows yet; the navigator stays in loading mode.
		return nil
	}
	m.topics = msg.index
	m.topicList, _ = m.store.Topics()
	m.renderer.SetTopics(msg.index)
	cat := msg.index.Catalog()
	m.navs[1].ctrl.SetCatalog(cat)
	if id, ok := m.navs[1].ctrl.VisibleIdentity(); ok {
		m.navs[1].route.SetCurrentIdentity(id)
	}
	if m.bus != nil {
		m.bus.Publish(domain.CatalogLoadedEvent{
			Name:   cat.Name(),
			Groups: len(cat.Groups()),
			Total:  cat.Total(),
		})
	}
	return nil
}

// handleEvent processes domain events forwarded from the bus.
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case domain.IdentityChangedEvent:
		// The route changed; deliver it to the owning bridge, which drops
		// the echoes of our own outbound sync.
		for _, n := range m.navs {
			if n.name == e.Navigator {
				n.bridge.HandleInbound(e.Identity)
			}
		}

	case domain.RecenteredEvent:
		if e.HardJump {
			for _, n := range m.navs {
				if n.name != e.Navigator {
					continue
				}
				if id, ok := n.ctrl.VisibleIdentity(); ok {
					delete(m.scroll, n.name+"/"+id.String())
				}
			}
		}

	case domain.PageSettledEvent:
		if e.Navigator == "bible" {
			m.refreshBookmarked()
		}

	case domain.BoundaryRejectedEvent:
		m.status = "already at the edge"

	case domain.BookmarkAddedEvent, domain.BookmarkRemovedEvent:
		m.refreshBookmarked()
		if m.mode == modeBookmarks {
			m.reloadBookmarks()
		}

	case domain.CatalogLoadedEvent:
		m.status = fmt.Sprintf("%s catalog loaded: %d entries", e.Name, e.Total)

	case domain.ErrorEvent:
		m.status = e.Message
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeGoto:
		return m.handleGotoKey(msg)
	case modeBookmarks:
		return m.handleBookmarksKey(msg)
	}

	if m.showHelp {
		switch msg.String() {
		case "esc", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.nav().ctrl.StepNext()
		m.afterMove()

	case key.Matches(msg, m.keys.Previous):
		m.nav().ctrl.StepPrevious()
		m.afterMove()

	case key.Matches(msg, m.keys.ScrollUp):
		m.scrollBy(-1)

	case key.Matches(msg, m.keys.ScrollDn):
		m.scrollBy(1)

	case key.Matches(msg, m.keys.Goto):
		m.mode = modeGoto
		m.textInput.SetValue("")
		m.textInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Back):
		if _, ok := m.nav().route.Back(); !ok {
			m.status = "history empty"
		}

	case key.Matches(msg, m.keys.Bookmark):
		m.toggleBookmark()

	case key.Matches(msg, m.keys.Bookmarks):
		m.reloadBookmarks()
		m.markCursor = 0
		m.mode = modeBookmarks

	case key.Matches(msg, m.keys.Switch):
		m.active = 1 - m.active

	case key.Matches(msg, m.keys.Reader):
		return m, m.openReader()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

// afterMove clears the scroll offset of the page we landed on when the
// move was a hard snap.
func (m *Model) afterMove() {
	n := m.nav()
	if !n.pager.takeHard() {
		return
	}
	if id, ok := n.ctrl.VisibleIdentity(); ok {
		delete(m.scroll, n.name+"/"+id.String())
	}
}

func (m *Model) scrollBy(d int) {
	n := m.nav()
	id, ok := n.ctrl.VisibleIdentity()
	if !ok {
		return
	}
	k := n.name + "/" + id.String()
	off := m.scroll[k] + d
	if off < 0 {
		off = 0
	}
	m.scroll[k] = off
}

func (m *Model) handleGotoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.textInput.Blur()
		return m, nil
	case "enter":
		input := strings.TrimSpace(m.textInput.Value())
		m.mode = modeNormal
		m.textInput.Blur()
		if input == "" {
			return m, nil
		}
		m.jumpTo(input)
		return m, nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// jumpTo resolves goto-box input against the active catalog and routes
// there. The jump goes through the host route so it exercises the same
// inbound path a deep link would.
func (m *Model) jumpTo(input string) {
	n := m.nav()
	if n.name == "bible" {
		id, err := router.ParseReference(input)
		if err != nil {
			m.status = err.Error()
			return
		}
		n.route.SetCurrentIdentity(id)
		return
	}

	if m.topics == nil {
		m.status = "topics still loading"
		return
	}
	id, ok := m.findTopic(input)
	if !ok {
		m.status = fmt.Sprintf("no topic matching %q", input)
		return
	}
	n.route.SetCurrentIdentity(id)
}

// findTopic matches a topic by id, exact name, or unambiguous name prefix.
func (m *Model) findTopic(input string) (domain.Identity, bool) {
	if id, ok := m.topics.IdentityOf(input); ok {
		return id, true
	}
	needle := strings.ToLower(strings.TrimSpace(input))
	var match domain.Identity
	found := 0
	for _, t := range m.topicList {
		name := strings.ToLower(t.Name)
		if name == needle {
			id, ok := m.topics.IdentityOf(t.ID)
			return id, ok
		}
		if strings.HasPrefix(name, needle) {
			if id, ok := m.topics.IdentityOf(t.ID); ok {
				match = id
				found++
			}
		}
	}
	return match, found == 1
}

func (m *Model) handleBookmarksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "B", "q":
		m.mode = modeNormal
	case "j", "down":
		if m.markCursor < len(m.bookmarks)-1 {
			m.markCursor++
		}
	case "k", "up":
		if m.markCursor > 0 {
			m.markCursor--
		}
	case "d":
		if m.markCursor < len(m.bookmarks) {
			b := m.bookmarks[m.markCursor]
			if err := m.store.RemoveBookmark(b.ID); err != nil {
				m.status = err.Error()
			}
			m.reloadBookmarks()
			if m.markCursor >= len(m.bookmarks) && m.markCursor > 0 {
				m.markCursor--
			}
		}
	case "enter":
		if m.markCursor < len(m.bookmarks) {
			b := m.bookmarks[m.markCursor]
			m.mode = modeNormal
			m.active = 0
			m.navs[0].route.SetCurrentIdentity(domain.Identity{
				Group:  strconv.Itoa(b.BookID),
				Offset: b.Chapter,
			})
		}
	}
	return m, nil
}

func (m *Model) reloadBookmarks() {
	marks, err := m.store.Bookmarks()
	if err != nil {
		log.Printf("Error loading bookmarks: %v", err)
		m.status = err.Error()
		return
	}
	m.bookmarks = marks
}

// toggleBookmark bookmarks the visible bible chapter, or removes the
// existing bookmark.
func (m *Model) toggleBookmark() {
	n := m.navs[0]
	if m.active != 0 {
		m.status = "bookmarks work on bible chapters"
		return
	}
	id, ok := n.ctrl.VisibleIdentity()
	if !ok {
		return
	}
	bookID, err := strconv.Atoi(id.Group)
	if err != nil {
		return
	}
	book, _ := catalog.BookByID(bookID)
	label := fmt.Sprintf("%s %d", book.Name, id.Offset)
	added, err := m.store.ToggleBookmark(bookID, id.Offset, label)
	if err != nil {
		m.status = err.Error()
		return
	}
	if added {
		m.status = "bookmarked " + label
	} else {
		m.status = "removed bookmark " + label
	}
}

func (m *Model) refreshBookmarked() {
	id, ok := m.navs[0].ctrl.VisibleIdentity()
	if !ok {
		m.bookmarked = false
		return
	}
	bookID, err := strconv.Atoi(id.Group)
	if err != nil {
		m.bookmarked = false
		return
	}
	_, found, err := m.store.FindBookmark(bookID, id.Offset)
	if err != nil {
		log.Printf("Error checking bookmark: %v", err)
	}
	m.bookmarked = found
}

// openReader shows the visible page in the ov pager.
func (m *Model) openReader() tea.Cmd {
	n := m.nav()
	id, ok := n.ctrl.VisibleIdentity()
	if !ok {
		return nil
	}

	var content string
	if n.name == "bible" {
		bookID, err := strconv.Atoi(id.Group)
		if err != nil {
			return nil
		}
		book, ok := catalog.BookByID(bookID)
		if !ok {
			return nil
		}
		c, err := m.renderer.PlainChapter(book, id.Offset)
		if err != nil {
			m.status = err.Error()
			return nil
		}
		content = c
	} else {
		if m.topics == nil {
			return nil
		}
		t, ok := m.topics.Topic(id)
		if !ok {
			return nil
		}
		content = t.Name + "\n\n" + t.Content
	}

	return func() tea.Msg {
		return readerClosedMsg{err: m.reader.ShowInPager(content)}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
