package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"versemate/internal/catalog"
	"versemate/internal/domain"
	"versemate/internal/navigator"
)

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	if m.config.UISettings.ShowSlotStrip {
		b.WriteString(m.renderSlotStrip())
		b.WriteString("\n")
	}
	b.WriteString(m.renderPage())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	content := b.String()

	switch {
	case m.showHelp:
		content = m.overlay(m.renderHelp())
	case m.mode == modeGoto:
		content = m.overlay(m.renderGotoBox())
	case m.mode == modeBookmarks:
		content = m.overlay(m.renderBookmarks())
	}
	return content
}

// pageTitle names the identity a navigator is showing.
func (m *Model) pageTitle(n *navSet) string {
	id, ok := n.ctrl.VisibleIdentity()
	if !ok {
		return "loading"
	}
	if n.name == "bible" {
		if bookID, err := strconv.Atoi(id.Group); err == nil {
			if book, found := catalog.BookByID(bookID); found {
				return fmt.Sprintf("%s %d", book.Name, id.Offset)
			}
		}
		return id.String()
	}
	if m.topics != nil {
		if t, found := m.topics.Topic(id); found {
			return t.Name
		}
	}
	return id.String()
}

func (m *Model) renderHeader() string {
	n := m.nav()

	tabs := make([]string, len(m.navs))
	for i, nav := range m.navs {
		label := nav.name
		if i == m.active {
			tabs[i] = m.styles.Header.Render("[" + label + "]")
		} else {
			tabs[i] = m.styles.Dim.Render(" " + label + " ")
		}
	}

	title := m.styles.Title.Render(m.pageTitle(n))
	if m.bookmarked && m.active == 0 {
		title += " " + m.styles.Bookmark.Render("★")
	}

	var sync string
	if n.bridge.Pending() {
		sync = m.styles.Syncing.Render(" syncing")
	} else if time.Since(m.lastSettle) < 300*time.Millisecond {
		sync = m.styles.Syncing.Render(" •")
	}

	left := strings.Join(tabs, " ") + "  " + title + sync
	return m.styles.Main.Render(left)
}

// renderSlotStrip draws the window's slots: selected, hot, cold, and
// boundary placeholders, with the identity each slot is bound to.
func (m *Model) renderSlotStrip() string {
	n := m.nav()
	if n.ctrl.Loading() {
		return m.styles.Main.Render(m.styles.Dim.Render("( loading )"))
	}

	w := n.ctrl.Window()
	selected := n.ctrl.Selected()
	parts := make([]string, 0, w.Size())
	for _, slot := range w.Slots() {
		label := "·"
		if slot.Bound {
			label = slot.Identity.String()
		}
		var style lipgloss.Style
		switch {
		case !slot.Bound:
			style = m.styles.SlotBoundary
		case slot.Position == selected:
			style = m.styles.SlotSelected
		case navigator.Hot(slot.Position, selected):
			style = m.styles.SlotHot
		default:
			style = m.styles.SlotCold
		}
		parts = append(parts, style.Render(label))
	}
	return m.styles.Main.Render(m.styles.Dim.Render("[ ") +
		strings.Join(parts, m.styles.Dim.Render(" | ")) +
		m.styles.Dim.Render(" ]"))
}

func (m *Model) renderPage() string {
	n := m.nav()
	lines := m.pageLines(n)

	// Clip to the space between header/strip and status bar.
	reserved := 5
	if m.config.UISettings.ShowSlotStrip {
		reserved++
	}
	pageHeight := m.height - reserved
	if pageHeight < 1 {
		pageHeight = 1
	}

	var offset int
	if id, ok := n.ctrl.VisibleIdentity(); ok {
		offset = m.scroll[n.name+"/"+id.String()]
	}
	if offset > len(lines)-1 {
		offset = maxInt(0, len(lines)-1)
	}
	end := offset + pageHeight
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[offset:end]

	// Pad so the status bar stays put on short pages.
	for len(visible) < pageHeight {
		visible = append(visible, "")
	}
	return m.styles.Main.Render(strings.Join(visible, "\n"))
}

func (m *Model) pageLines(n *navSet) []string {
	if n.ctrl.Loading() {
		return m.renderer.LoadingLines()
	}
	id, ok := n.ctrl.VisibleIdentity()
	if !ok {
		return m.renderer.BoundaryLines()
	}
	if n.name == "bible" {
		bookID, err := strconv.Atoi(id.Group)
		if err != nil {
			return []string{m.styles.ErrorBanner.Render("bad identity " + id.String())}
		}
		book, found := catalog.BookByID(bookID)
		if !found {
			return []string{m.styles.ErrorBanner.Render("unknown book " + id.Group)}
		}
		return m.renderer.ChapterLines(book, id.Offset, m.config.UISettings.ShowVerseNumbers)
	}
	return m.renderer.TopicLines(id)
}

func (m *Model) renderStatus() string {
	n := m.nav()
	left := m.status
	if left == "" {
		left = fmt.Sprintf("history %d", n.route.Depth())
	}
	bar := m.styles.Status.Render(left)
	helpBar := m.help.View(m.keys)
	return m.styles.Main.Render(bar + "\n" + helpBar)
}

func (m *Model) renderGotoBox() string {
	var hint string
	if m.nav().name == "bible" {
		hint = `reference, e.g. "Gen 3" or "1 John 2"`
	} else {
		hint = "topic name"
	}
	body := m.styles.OverlayTitle.Render("Go to") + "\n\n" +
		m.textInput.View() + "\n" +
		m.styles.Dim.Render(hint)
	return m.styles.OverlayBox.Render(body)
}

func (m *Model) renderBookmarks() string {
	var b strings.Builder
	b.WriteString(m.styles.OverlayTitle.Render("Bookmarks"))
	b.WriteString("\n\n")
	if len(m.bookmarks) == 0 {
		b.WriteString(m.styles.Dim.Render("none yet; press m on a chapter"))
	}
	for i, mark := range m.bookmarks {
		label := mark.Label
		if label == "" {
			label = bookmarkFallbackLabel(mark)
		}
		if i == m.markCursor {
			b.WriteString(m.styles.OverlayCursor.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("enter jump · d delete · esc close"))
	return m.styles.OverlayBox.Render(b.String())
}

func bookmarkFallbackLabel(mark domain.Bookmark) string {
	if book, ok := catalog.BookByID(mark.BookID); ok {
		return fmt.Sprintf("%s %d", book.Name, mark.Chapter)
	}
	return fmt.Sprintf("%d:%d", mark.BookID, mark.Chapter)
}

func (m *Model) renderHelp() string {
	m.help.ShowAll = true
	body := m.styles.OverlayTitle.Render("VerseMate") + "\n\n" + m.help.View(m.keys)
	m.help.ShowAll = false
	return m.styles.HelpBox.Render(body)
}

// overlay centers a box on the screen, replacing the page behind it.
func (m *Model) overlay(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
