package domain

import "fmt"

// Identity addresses one content unit inside a catalog: a chapter inside a
// book, or a topic inside a category. Offsets are 1-based, matching chapter
// numbering.
type Identity struct {
	Group  string // stable group id: decimal book id or category slug
	Offset int    // 1-based position within the group
}

// Zero reports whether the identity is unset.
func (id Identity) Zero() bool {
	return id.Group == "" && id.Offset == 0
}

func (id Identity) String() string {
	return fmt.Sprintf("%s:%d", id.Group, id.Offset)
}

// Book is one entry of the Bible canon.
type Book struct {
	ID       int    // 1..66, matches the seed database book_id
	Name     string // display name, e.g. "Song of Solomon"
	Abbrev   string // short form accepted by the goto box, e.g. "song"
	Chapters int
}

// Topic is one topic row from the seed database.
type Topic struct {
	ID       string // stable topic id
	Name     string
	Category string
	Content  string // markdown body
}

// Verse is one verse row from the seed database.
type Verse struct {
	BookID  int
	Chapter int
	Number  int
	Text    string
}

// Bookmark marks a chapter the user saved.
type Bookmark struct {
	ID      string // uuid
	BookID  int
	Chapter int
	Label   string
	Created int64 // unix seconds
}
