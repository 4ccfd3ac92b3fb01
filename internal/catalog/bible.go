package catalog

import (
	"strconv"
	"strings"

	"versemate/internal/domain"
)

// books is the 66-book Protestant canon with chapter counts. Book IDs match
// the seed database's book_id column.
var books = []domain.Book{
	{ID: 1, Name: "Genesis", Abbrev: "gen", Chapters: 50},
	{ID: 2, Name: "Exodus", Abbrev: "ex", Chapters: 40},
	{ID: 3, Name: "Leviticus", Abbrev: "lev", Chapters: 27},
	{ID: 4, Name: "Numbers", Abbrev: "num", Chapters: 36},
	{ID: 5, Name: "Deuteronomy", Abbrev: "deut", Chapters: 34},
	{ID: 6, Name: "Joshua", Abbrev: "josh", Chapters: 24},
	{ID: 7, Name: "Judges", Abbrev: "judg", Chapters: 21},
	{ID: 8, Name: "Ruth", Abbrev: "ruth", Chapters: 4},
	{ID: 9, Name: "1 Samuel", Abbrev: "1sam", Chapters: 31},
	{ID: 10, Name: "2 Samuel", Abbrev: "2sam", Chapters: 24},
	{ID: 11, Name: "1 Kings", Abbrev: "1kgs", Chapters: 22},
	{ID: 12, Name: "2 Kings", Abbrev: "2kgs", Chapters: 25},
	{ID: 13, Name: "1 Chronicles", Abbrev: "1chr", Chapters: 29},
	{ID: 14, Name: "2 Chronicles", Abbrev: "2chr", Chapters: 36},
	{ID: 15, Name: "Ezra", Abbrev: "ezra", Chapters: 10},
	{ID: 16, Name: "Nehemiah", Abbrev: "neh", Chapters: 13},
	{ID: 17, Name: "Esther", Abbrev: "esth", Chapters: 10},
	{ID: 18, Name: "Job", Abbrev: "job", Chapters: 42},
	{ID: 19, Name: "Psalms", Abbrev: "ps", Chapters: 150},
	{ID: 20, Name: "Proverbs", Abbrev: "prov", Chapters: 31},
	{ID: 21, Name: "Ecclesiastes", Abbrev: "eccl", Chapters: 12},
	{ID: 22, Name: "Song of Solomon", Abbrev: "song", Chapters: 8},
	{ID: 23, Name: "Isaiah", Abbrev: "isa", Chapters: 66},
	{ID: 24, Name: "Jeremiah", Abbrev: "jer", Chapters: 52},
	{ID: 25, Name: "Lamentations", Abbrev: "lam", Chapters: 5},
	{ID: 26, Name: "Ezekiel", Abbrev: "ezek", Chapters: 48},
	{ID: 27, Name: "Daniel", Abbrev: "dan", Chapters: 12},
	{ID: 28, Name: "Hosea", Abbrev: "hos", Chapters: 14},
	{ID: 29, Name: "Joel", Abbrev: "joel", Chapters: 3},
	{ID: 30, Name: "Amos", Abbrev: "amos", Chapters: 9},
	{ID: 31, Name: "Obadiah", Abbrev: "obad", Chapters: 1},
	{ID: 32, Name: "Jonah", Abbrev: "jonah", Chapters: 4},
	{ID: 33, Name: "Micah", Abbrev: "mic", Chapters: 7},
	{ID: 34, Name: "Nahum", Abbrev: "nah", Chapters: 3},
	{ID: 35, Name: "Habakkuk", Abbrev: "hab", Chapters: 3},
	{ID: 36, Name: "Zephaniah", Abbrev: "zeph", Chapters: 3},
	{ID: 37, Name: "Haggai", Abbrev: "hag", Chapters: 2},
	{ID: 38, Name: "Zechariah", Abbrev: "zech", Chapters: 14},
	{ID: 39, Name: "Malachi", Abbrev: "mal", Chapters: 4},
	{ID: 40, Name: "Matthew", Abbrev: "matt", Chapters: 28},
	{ID: 41, Name: "Mark", Abbrev: "mark", Chapters: 16},
	{ID: 42, Name: "Luke", Abbrev: "luke", Chapters: 24},
	{ID: 43, Name: "John", Abbrev: "john", Chapters: 21},
	{ID: 44, Name: "Acts", Abbrev: "acts", Chapters: 28},
	{ID: 45, Name: "Romans", Abbrev: "rom", Chapters: 16},
	{ID: 46, Name: "1 Corinthians", Abbrev: "1cor", Chapters: 16},
	{ID: 47, Name: "2 Corinthians", Abbrev: "2cor", Chapters: 13},
	{ID: 48, Name: "Galatians", Abbrev: "gal", Chapters: 6},
	{ID: 49, Name: "Ephesians", Abbrev: "eph", Chapters: 6},
	{ID: 50, Name: "Philippians", Abbrev: "phil", Chapters: 4},
	{ID: 51, Name: "Colossians", Abbrev: "col", Chapters: 4},
	{ID: 52, Name: "1 Thessalonians", Abbrev: "1thess", Chapters: 5},
	{ID: 53, Name: "2 Thessalonians", Abbrev: "2thess", Chapters: 3},
	{ID: 54, Name: "1 Timothy", Abbrev: "1tim", Chapters: 6},
	{ID: 55, Name: "2 Timothy", Abbrev: "2tim", Chapters: 4},
	{ID: 56, Name: "Titus", Abbrev: "titus", Chapters: 3},
	{ID: 57, Name: "Philemon", Abbrev: "phlm", Chapters: 1},
	{ID: 58, Name: "Hebrews", Abbrev: "heb", Chapters: 13},
	{ID: 59, Name: "James", Abbrev: "jas", Chapters: 5},
	{ID: 60, Name: "1 Peter", Abbrev: "1pet", Chapters: 5},
	{ID: 61, Name: "2 Peter", Abbrev: "2pet", Chapters: 3},
	{ID: 62, Name: "1 John", Abbrev: "1john", Chapters: 5},
	{ID: 63, Name: "2 John", Abbrev: "2john", Chapters: 1},
	{ID: 64, Name: "3 John", Abbrev: "3john", Chapters: 1},
	{ID: 65, Name: "Jude", Abbrev: "jude", Chapters: 1},
	{ID: 66, Name: "Revelation", Abbrev: "rev", Chapters: 22},
}

// Bible returns the linear 66-book catalog. Group ids are decimal book ids so
// identities line up with the seed database.
func Bible() *Catalog {
	groups := make([]Group, len(books))
	for i, b := range books {
		groups[i] = Group{ID: strconv.Itoa(b.ID), Name: b.Name, Length: b.Chapters}
	}
	c, err := New("bible", groups, false)
	if err != nil {
		// The canon table is a compile-time constant; a bad entry is a bug.
		panic(err)
	}
	return c
}

// Books returns the canon table.
func Books() []domain.Book {
	return books
}

// BookByID looks up a book by its numeric id.
func BookByID(id int) (domain.Book, bool) {
	if id < 1 || id > len(books) {
		return domain.Book{}, false
	}
	return books[id-1], true
}

// FindBook matches a book by name or abbreviation, case- and
// whitespace-insensitively ("song of solomon", "Song", "1john", "1 John").
func FindBook(name string) (domain.Book, bool) {
	key := normalizeBookName(name)
	if key == "" {
		return domain.Book{}, false
	}
	for _, b := range books {
		if key == normalizeBookName(b.Name) || key == normalizeBookName(b.Abbrev) {
			return b, true
		}
	}
	// Fall back to unambiguous prefixes of full names ("gene" -> Genesis).
	var match domain.Book
	found := 0
	for _, b := range books {
		if strings.HasPrefix(normalizeBookName(b.Name), key) {
			match = b
			found++
		}
	}
	if found == 1 {
		return match, true
	}
	return domain.Book{}, false
}

func normalizeBookName(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '.', '\t':
			return -1
		}
		return r
	}, s)
}
