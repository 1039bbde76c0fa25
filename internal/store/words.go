package store

import (
	"database/sql"
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// WordRepository provides access to the suggestion lexicon.
type WordRepository struct {
	db *sql.DB
}

// Words returns the word repository for this store.
func (s *Store) Words() *WordRepository {
	return &WordRepository{db: s.db}
}

// Add inserts a word with the given frequency, replacing any existing entry.
// Words are stored lowercase.
func (r *WordRepository) Add(word string, frequency int) error {
	_, err := r.db.Exec(
		`INSERT INTO words (word, frequency) VALUES (?, ?)
		 ON CONFLICT(word) DO UPDATE SET frequency = excluded.frequency`,
		strings.ToLower(word), frequency,
	)
	return err
}

// AddAll inserts a batch of words inside one transaction. Frequency is the
// position-derived rank: earlier words in the batch rank higher.
func (r *WordRepository) AddAll(words []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO words (word, frequency) VALUES (?, ?)
		 ON CONFLICT(word) DO NOTHING`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, err := stmt.Exec(w, len(words)-i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Suggest returns up to limit completions for the given lowercase prefix,
// highest frequency first. An empty prefix yields no candidates.
func (r *WordRepository) Suggest(prefix string, limit int) ([]string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" || limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.Query(
		`SELECT word FROM words
		 WHERE word LIKE ? ESCAPE '\'
		 ORDER BY frequency DESC, word ASC
		 LIMIT ?`,
		escapeLike(prefix)+"%", limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// Count returns the number of words in the lexicon.
func (r *WordRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&n)
	return n, err
}

// Bump increments a word's frequency, rewarding words the signer actually
// picked from the suggestion slots.
func (r *WordRepository) Bump(word string) error {
	_, err := r.db.Exec(
		`UPDATE words SET frequency = frequency + 1 WHERE word = ?`,
		strings.ToLower(word),
	)
	return err
}

// escapeLike escapes LIKE wildcards in a prefix.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
