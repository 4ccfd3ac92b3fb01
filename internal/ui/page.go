package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/glamour"

	"versemate/internal/catalog"
	"versemate/internal/domain"
	"versemate/internal/store"
)

// PageRenderer produces the text content of a single page slot. Pages
// are rendered lazily and cached per identity so that re-binding the
// window after a recenter does not hit the database again for pages
// that stay visible.
type PageRenderer struct {
	store  *store.Store
	styles *Styles

	topics *catalog.TopicIndex
	md     *glamour.TermRenderer

	width int
	cache map[string][]string
}

// NewPageRenderer creates a renderer backed by the seed database.
func NewPageRenderer(st *store.Store, styles *Styles) *PageRenderer {
	return &PageRenderer{
		store:  st,
		styles: styles,
		width:  80,
		cache:  make(map[string][]string),
	}
}

// SetTopics installs the topic index used to resolve topic identities.
// Passing nil puts topic rendering back into loading mode.
func (r *PageRenderer) SetTopics(idx *catalog.TopicIndex) {
	r.topics = idx
	r.md = nil
	r.invalidatePrefix("topic:")
}

// SetWidth updates the wrap width. Changing the width drops the cache
// because every cached page was wrapped for the old width.
func (r *PageRenderer) SetWidth(w int) {
	if w == r.width {
		return
	}
	r.width = w
	r.md = nil
	r.cache = make(map[string][]string)
}

// Reset drops every cached page, used when the seed database is
// replaced on disk.
func (r *PageRenderer) Reset() {
	r.cache = make(map[string][]string)
}

// Invalidate drops the cached page for one identity.
func (r *PageRenderer) Invalidate(id domain.Identity) {
	delete(r.cache, id.String())
}

func (r *PageRenderer) invalidatePrefix(prefix string) {
	for k := range r.cache {
		if strings.HasPrefix(k, prefix) {
			delete(r.cache, k)
		}
	}
}

// BoundaryLines renders the placeholder shown in a boundary slot.
func (r *PageRenderer) BoundaryLines() []string {
	return []string{"", r.styles.Boundary.Render("· end of content ·")}
}

// LoadingLines renders the placeholder shown while a catalog loads.
func (r *PageRenderer) LoadingLines() []string {
	return []string{"", r.styles.Dim.Render("loading…")}
}

// ChapterLines renders a Bible chapter page, one wrapped line per
// element, with verse numbers when enabled.
func (r *PageRenderer) ChapterLines(book domain.Book, chapter int, showNumbers bool) []string {
	key := fmt.Sprintf("bible:%d:%d:%v", book.ID, chapter, showNumbers)
	if lines, ok := r.cache[key]; ok {
		return lines
	}

	verses, err := r.store.ChapterVerses(book.ID, chapter)
	if err != nil {
		log.Printf("Error loading %s %d: %v", book.Name, chapter, err)
		return []string{r.styles.ErrorBanner.Render("could not load chapter: " + err.Error())}
	}

	title := fmt.Sprintf("%s %d", book.Name, chapter)
	lines := []string{r.styles.Title.Render(title), ""}
	if len(verses) == 0 {
		lines = append(lines, r.styles.Dim.Render("no verses in seed database"))
	}
	for _, v := range verses {
		raw := v.Text
		if showNumbers {
			raw = fmt.Sprintf("%d %s", v.Number, v.Text)
		}
		for i, piece := range wrap(raw, r.width) {
			if i == 0 && showNumbers {
				num := fmt.Sprintf("%d", v.Number)
				rest := strings.TrimPrefix(piece, num)
				piece = r.styles.VerseNumber.Render(num) + r.styles.VerseText.Render(rest)
			} else {
				piece = r.styles.VerseText.Render(piece)
			}
			lines = append(lines, piece)
		}
		lines = append(lines, "")
	}

	r.cache[key] = lines
	return lines
}

// TopicLines renders a topic page. Topic content is markdown from the
// seed database and goes through glamour.
func (r *PageRenderer) TopicLines(id domain.Identity) []string {
	if r.topics == nil {
		return r.LoadingLines()
	}
	key := "topic:" + id.String()
	if lines, ok := r.cache[key]; ok {
		return lines
	}

	topic, ok := r.topics.Topic(id)
	if !ok {
		return []string{r.styles.ErrorBanner.Render("unknown topic " + id.String())}
	}

	rendered, err := r.renderMarkdown(topic)
	if err != nil {
		log.Printf("Error rendering topic %s: %v", topic.ID, err)
		rendered = topic.Content
	}

	lines := []string{r.styles.Title.Render(topic.Name), ""}
	lines = append(lines, strings.Split(strings.TrimRight(rendered, "\n"), "\n")...)
	r.cache[key] = lines
	return lines
}

func (r *PageRenderer) renderMarkdown(t domain.Topic) (string, error) {
	if r.md == nil {
		md, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(r.width),
		)
		if err != nil {
			return "", err
		}
		r.md = md
	}
	return r.md.Render(t.Content)
}

// PlainChapter returns a chapter as unstyled text for the external
// pager.
func (r *PageRenderer) PlainChapter(book domain.Book, chapter int) (string, error) {
	verses, err := r.store.ChapterVerses(book.ID, chapter)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n\n", book.Name, chapter)
	for _, v := range verses {
		fmt.Fprintf(&b, "%d  %s\n", v.Number, v.Text)
	}
	return b.String(), nil
}

// wrap splits plain text into width-sized pieces on word boundaries.
// Long words are left intact.
func wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
