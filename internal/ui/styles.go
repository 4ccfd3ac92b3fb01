package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Header        lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	VerseNumber   lipgloss.Style
	VerseText     lipgloss.Style
	SlotCold      lipgloss.Style
	SlotHot       lipgloss.Style
	SlotSelected  lipgloss.Style
	SlotBoundary  lipgloss.Style
	Boundary      lipgloss.Style
	Bookmark      lipgloss.Style
	InputPrompt   lipgloss.Style
	ErrorBanner   lipgloss.Style
	HelpBox       lipgloss.Style
	OverlayBox    lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayCursor lipgloss.Style
	Main          lipgloss.Style
	Syncing       lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		VerseNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		VerseText:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SlotCold:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SlotHot:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SlotSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		SlotBoundary: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Boundary: lipgloss.NewStyle().
			Faint(true).
			Italic(true).
			Padding(2, 4),
		Bookmark:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		InputPrompt: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ErrorBanner: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		OverlayBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		OverlayTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		OverlayCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		Main:    lipgloss.NewStyle().Padding(0, 2),
		Syncing: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	}
}
