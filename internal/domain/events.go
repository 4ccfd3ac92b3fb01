package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded    EventType = "CatalogLoaded"
	EventIdentityChanged  EventType = "IdentityChanged"
	EventPageSettled      EventType = "PageSettled"
	EventRecentered       EventType = "Recentered"
	EventBoundaryRejected EventType = "BoundaryRejected"
	EventBookmarkAdded    EventType = "BookmarkAdded"
	EventBookmarkRemoved  EventType = "BookmarkRemoved"
	EventConfigChanged    EventType = "ConfigChanged"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted when a catalog finishes loading, either at
// startup or after the seed database appears on disk.
type CatalogLoadedEvent struct {
	Name   string // "bible" or "topics"
	Groups int
	Total  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// IdentityChangedEvent is emitted by the router when the current identity
// changes, regardless of who changed it.
type IdentityChangedEvent struct {
	Navigator string // which navigator instance owns the identity
	Identity  Identity
}

func (e IdentityChangedEvent) Type() EventType { return EventIdentityChanged }

// PageSettledEvent is emitted when a swipe settles on a new page.
type PageSettledEvent struct {
	Navigator string
	Identity  Identity
	Slot      int
}

func (e PageSettledEvent) Type() EventType { return EventPageSettled }

// RecenteredEvent is emitted after the window's coordinate origin shifts.
// HardJump is true when the change came from outside (deep link, bookmark)
// and page scroll positions must reset.
type RecenteredEvent struct {
	Navigator   string
	CenterIndex int
	HardJump    bool
}

func (e RecenteredEvent) Type() EventType { return EventRecentered }

// BoundaryRejectedEvent is emitted when a swipe past the catalog edge is
// snapped back.
type BoundaryRejectedEvent struct {
	Navigator string
	Slot      int
}

func (e BoundaryRejectedEvent) Type() EventType { return EventBoundaryRejected }

// BookmarkAddedEvent is emitted when a bookmark is created.
type BookmarkAddedEvent struct {
	Bookmark Bookmark
}

func (e BookmarkAddedEvent) Type() EventType { return EventBookmarkAdded }

// BookmarkRemovedEvent is emitted when a bookmark is deleted.
type BookmarkRemovedEvent struct {
	ID string
}

func (e BookmarkRemovedEvent) Type() EventType { return EventBookmarkRemoved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct{}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
