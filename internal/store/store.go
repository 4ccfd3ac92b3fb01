// Package store reads the bundled VerseMate seed database: verse text,
// topics, and user bookmarks. The navigator core never touches this package;
// content fetching is the page renderer's job.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure Go sqlite driver

	"versemate/internal/domain"
	"versemate/internal/eventbus"
)

// schema mirrors the seed database tables this client uses. CREATE IF NOT
// EXISTS so a first run without a bundled seed file still works; the reader
// then simply has no verse text until the seed appears.
const schema = `
CREATE TABLE IF NOT EXISTS offline_verses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    version_key TEXT NOT NULL,
    book_id INTEGER NOT NULL,
    chapter_number INTEGER NOT NULL,
    verse_number INTEGER NOT NULL,
    text TEXT NOT NULL,
    UNIQUE(version_key, book_id, chapter_number, verse_number)
);
CREATE INDEX IF NOT EXISTS idx_verses_lookup
    ON offline_verses(version_key, book_id, chapter_number);

CREATE TABLE IF NOT EXISTS offline_topics (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    language_code TEXT NOT NULL,
    topic_id TEXT NOT NULL,
    name TEXT NOT NULL,
    content TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT '',
    sort_order INTEGER,
    UNIQUE(language_code, topic_id)
);

CREATE TABLE IF NOT EXISTS offline_bookmarks (
    id TEXT PRIMARY KEY,
    book_id INTEGER NOT NULL,
    chapter_number INTEGER NOT NULL,
    label TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bookmarks_chapter
    ON offline_bookmarks(book_id, chapter_number);
`

// Store wraps the seed database.
type Store struct {
	db      *sql.DB
	path    string
	version string // Bible version key, e.g. "NASB1995"
	lang    string
	bus     eventbus.EventBus
}

// Open opens (or creates) the seed database at path.
func Open(path, versionKey, languageCode string, bus eventbus.EventBus) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return &Store{db: db, path: path, version: versionKey, lang: languageCode, bus: bus}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// ChapterVerses returns one chapter's verses in verse order. An empty slice
// means the seed has no text for that chapter yet.
func (s *Store) ChapterVerses(bookID, chapter int) ([]domain.Verse, error) {
	rows, err := s.db.Query(`
		SELECT verse_number, text FROM offline_verses
		WHERE version_key = ? AND book_id = ? AND chapter_number = ?
		ORDER BY verse_number`,
		s.version, bookID, chapter)
	if err != nil {
		return nil, fmt.Errorf("failed to query verses: %w", err)
	}
	defer rows.Close()

	var verses []domain.Verse
	for rows.Next() {
		v := domain.Verse{BookID: bookID, Chapter: chapter}
		if err := rows.Scan(&v.Number, &v.Text); err != nil {
			return nil, fmt.Errorf("failed to scan verse: %w", err)
		}
		verses = append(verses, v)
	}
	return verses, rows.Err()
}

// InsertVerses loads verse rows, replacing duplicates. Used by seeding
// tooling and tests.
func (s *Store) InsertVerses(verses []domain.Verse) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO offline_verses
		(version_key, book_id, chapter_number, verse_number, text)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()
	for _, v := range verses {
		if _, err := stmt.Exec(s.version, v.BookID, v.Chapter, v.Number, v.Text); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert verse: %w", err)
		}
	}
	return tx.Commit()
}

// Topics returns all topics in catalog order: sort_order first, then topic
// id for rows without one.
func (s *Store) Topics() ([]domain.Topic, error) {
	rows, err := s.db.Query(`
		SELECT topic_id, name, content, category FROM offline_topics
		WHERE language_code = ?
		ORDER BY sort_order IS NULL, sort_order, topic_id`,
		s.lang)
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.Content, &t.Category); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// InsertTopics loads topic rows, replacing duplicates.
func (s *Store) InsertTopics(topics []domain.Topic) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO offline_topics
		(language_code, topic_id, name, content, category, sort_order)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()
	for i, t := range topics {
		if _, err := stmt.Exec(s.lang, t.ID, t.Name, t.Content, t.Category, i); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert topic: %w", err)
		}
	}
	return tx.Commit()
}

// Bookmarks returns all bookmarks, newest first.
func (s *Store) Bookmarks() ([]domain.Bookmark, error) {
	rows, err := s.db.Query(`
		SELECT id, book_id, chapter_number, label, created_at
		FROM offline_bookmarks ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookmarks: %w", err)
	}
	defer rows.Close()

	var marks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(&b.ID, &b.BookID, &b.Chapter, &b.Label, &b.Created); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark: %w", err)
		}
		marks = append(marks, b)
	}
	return marks, rows.Err()
}

// FindBookmark looks up the bookmark on a chapter, if any.
func (s *Store) FindBookmark(bookID, chapter int) (domain.Bookmark, bool, error) {
	var b domain.Bookmark
	err := s.db.QueryRow(`
		SELECT id, book_id, chapter_number, label, created_at
		FROM offline_bookmarks WHERE book_id = ? AND chapter_number = ?
		LIMIT 1`, bookID, chapter).
		Scan(&b.ID, &b.BookID, &b.Chapter, &b.Label, &b.Created)
	if err == sql.ErrNoRows {
		return domain.Bookmark{}, false, nil
	}
	if err != nil {
		return domain.Bookmark{}, false, fmt.Errorf("failed to find bookmark: %w", err)
	}
	return b, true, nil
}

// AddBookmark creates a bookmark on a chapter.
func (s *Store) AddBookmark(bookID, chapter int, label string) (domain.Bookmark, error) {
	b := domain.Bookmark{
		ID:      uuid.NewString(),
		BookID:  bookID,
		Chapter: chapter,
		Label:   label,
		Created: time.Now().Unix(),
	}
	_, err := s.db.Exec(`
		INSERT INTO offline_bookmarks (id, book_id, chapter_number, label, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.BookID, b.Chapter, b.Label, b.Created)
	if err != nil {
		return domain.Bookmark{}, fmt.Errorf("failed to add bookmark: %w", err)
	}
	if s.bus != nil {
		s.bus.Publish(domain.BookmarkAddedEvent{Bookmark: b})
	}
	return b, nil
}

// RemoveBookmark deletes a bookmark by id.
func (s *Store) RemoveBookmark(id string) error {
	if _, err := s.db.Exec(`DELETE FROM offline_bookmarks WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to remove bookmark: %w", err)
	}
	if s.bus != nil {
		s.bus.Publish(domain.BookmarkRemovedEvent{ID: id})
	}
	return nil
}

// ToggleBookmark adds a bookmark on the chapter or removes the existing one.
// Returns true when a bookmark was added.
func (s *Store) ToggleBookmark(bookID, chapter int, label string) (bool, error) {
	existing, found, err := s.FindBookmark(bookID, chapter)
	if err != nil {
		return false, err
	}
	if found {
		return false, s.RemoveBookmark(existing.ID)
	}
	_, err = s.AddBookmark(bookID, chapter, label)
	return err == nil, err
}
