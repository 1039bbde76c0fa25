package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Words table - the suggestion lexicon
		`CREATE TABLE IF NOT EXISTS words (
			word TEXT PRIMARY KEY,
			frequency INTEGER NOT NULL DEFAULT 0
		)`,

		// Transcripts table - saved recognized sentences
		`CREATE TABLE IF NOT EXISTS transcripts (
			id TEXT PRIMARY KEY,
			sentence TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Index for prefix lookups ordered by frequency
		`CREATE INDEX IF NOT EXISTS idx_words_frequency ON words(frequency DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_transcripts_created_at ON transcripts(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
