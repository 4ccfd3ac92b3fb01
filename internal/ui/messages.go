package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"versemate/internal/catalog"
	"versemate/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer for the settle animation indicator
type tickMsg time.Time

// seedChangedMsg signals that the seed database file changed on disk
type seedChangedMsg struct{}

// SeedChanged builds the message the seed watcher sends into the program.
func SeedChanged() tea.Msg {
	return seedChangedMsg{}
}

// topicsLoadedMsg carries a freshly built topic index
type topicsLoadedMsg struct {
	index *catalog.TopicIndex
	err   error
}

// readerClosedMsg contains the result of the full-screen reader pager
type readerClosedMsg struct {
	err error
}
