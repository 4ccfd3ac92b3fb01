package router

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"versemate/internal/catalog"
	"versemate/internal/domain"
)

// reference is a parsed goto-box entry: a book name with an optional chapter
// and an optional verse. The verse only affects where the page scrolls, not
// which chapter identity we navigate to, so it is parsed and discarded here.
type reference struct {
	Book    string `parser:"@Book"`
	Chapter *int   `parser:"( @Number"`
	Verse   *int   `parser:"  ( \":\" @Number )? )?"`
}

// referenceLexer tokenizes references like "Genesis 1", "1 John 2",
// "Song of Solomon 3", "john 3:16".
var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Book names: optional leading ordinal, then words ("1 John", "Song of Solomon")
	{Name: "Book", Pattern: `(?:\d\s+)?[A-Za-z]+(?:\s+(?:of\s+)?[A-Za-z]+)*`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[reference](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// ParseReference turns free-form goto input into a chapter identity.
// Supported forms: "Genesis", "Gen 3", "Gen.3", "1 John 2", "john 3:16".
// A bare book name means its first chapter. The chapter is validated against
// the canon so the navigator only ever receives resolvable identities.
func ParseReference(input string) (domain.Identity, error) {
	normalized := strings.TrimSpace(strings.ReplaceAll(input, ".", " "))
	if normalized == "" {
		return domain.Identity{}, fmt.Errorf("empty reference")
	}

	ref, err := referenceParser.ParseString("", normalized)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("cannot parse reference %q: %w", input, err)
	}

	book, ok := catalog.FindBook(ref.Book)
	if !ok {
		return domain.Identity{}, fmt.Errorf("unknown book %q", ref.Book)
	}

	chapter := 1
	if ref.Chapter != nil {
		chapter = *ref.Chapter
	}
	if chapter < 1 || chapter > book.Chapters {
		return domain.Identity{}, fmt.Errorf("%s has %d chapters, not %d", book.Name, book.Chapters, chapter)
	}

	return domain.Identity{Group: strconv.Itoa(book.ID), Offset: chapter}, nil
}
