package store

import (
	"database/sql"
	"errors"
	"time"
)

// Transcript represents a saved recognized sentence.
type Transcript struct {
	ID        string
	Sentence  string
	CreatedAt time.Time
}

// TranscriptRepository provides CRUD operations for transcripts.
type TranscriptRepository struct {
	db *sql.DB
}

// Transcripts returns the transcript repository for this store.
func (s *Store) Transcripts() *TranscriptRepository {
	return &TranscriptRepository{db: s.db}
}

// Create inserts a new transcript into the database.
func (r *TranscriptRepository) Create(t *Transcript) error {
	t.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO transcripts (id, sentence, created_at) VALUES (?, ?, ?)`,
		t.ID, t.Sentence, t.CreatedAt,
	)
	return err
}

// GetByID retrieves a transcript by its ID.
func (r *TranscriptRepository) GetByID(id string) (*Transcript, error) {
	t := &Transcript{}

	err := r.db.QueryRow(
		`SELECT id, sentence, created_at FROM transcripts WHERE id = ?`,
		id,
	).Scan(&t.ID, &t.Sentence, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

// List retrieves all transcripts, newest first.
func (r *TranscriptRepository) List() ([]*Transcript, error) {
	rows, err := r.db.Query(
		`SELECT id, sentence, created_at FROM transcripts ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transcripts []*Transcript
	for rows.Next() {
		t := &Transcript{}
		if err := rows.Scan(&t.ID, &t.Sentence, &t.CreatedAt); err != nil {
			return nil, err
		}
		transcripts = append(transcripts, t)
	}

	return transcripts, rows.Err()
}

// Delete removes a transcript by its ID.
func (r *TranscriptRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM transcripts WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
