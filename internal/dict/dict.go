// Package dict provides ranked word completions for the word currently
// being fingerspelled.
package dict

import (
	_ "embed"
	"log"
	"strings"

	"github.com/ayusman/mudra/internal/store"
)

// seedWords is the bundled frequency-ordered lexicon used to populate an
// empty store on first run.
//
//go:embed words.txt
var seedWords string

// Suggester returns ranked completions for a lowercase word fragment. It
// may return fewer candidates than the caller wants, or none at all.
type Suggester interface {
	Suggest(word string) []string
}

// StoreSuggester serves completions from the store's lexicon, ordered by
// word frequency.
type StoreSuggester struct {
	words *store.WordRepository
	limit int
}

// NewStoreSuggester creates a suggester over the given word repository.
func NewStoreSuggester(words *store.WordRepository, limit int) *StoreSuggester {
	return &StoreSuggester{words: words, limit: limit}
}

// Suggest returns up to the configured number of completions. Lookup
// failures are logged and reported as no candidates; suggestion refresh is
// best-effort and must never stall the frame pipeline.
func (s *StoreSuggester) Suggest(word string) []string {
	candidates, err := s.words.Suggest(word, s.limit)
	if err != nil {
		log.Printf("suggestion lookup for %q failed: %v", word, err)
		return nil
	}
	return candidates
}

// Picked records that the signer chose this word from a suggestion slot,
// nudging it up the ranking.
func (s *StoreSuggester) Picked(word string) {
	if err := s.words.Bump(strings.ToLower(word)); err != nil {
		log.Printf("bump %q failed: %v", word, err)
	}
}

// Seed loads the bundled lexicon into an empty word repository. A store
// that already has words is left untouched.
func Seed(words *store.WordRepository) error {
	n, err := words.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	list := strings.Split(strings.TrimSpace(seedWords), "\n")
	if err := words.AddAll(list); err != nil {
		return err
	}

	log.Printf("Seeded lexicon with %d words", len(list))
	return nil
}
