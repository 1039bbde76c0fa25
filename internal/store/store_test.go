package store

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_New(t *testing.T) {
	s := newTestStore(t)
	if s.DB() == nil {
		t.Fatal("DB() returned nil")
	}
}

func TestWordRepository_SuggestOrdering(t *testing.T) {
	s := newTestStore(t)
	words := s.Words()

	if err := words.Add("hello", 50); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := words.Add("help", 90); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := words.Add("helmet", 10); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := words.Add("world", 99); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, err := words.Suggest("hel", 4)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}

	want := []string{"help", "hello", "helmet"}
	if len(got) != len(want) {
		t.Fatalf("Suggest() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Suggest()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordRepository_SuggestEmptyPrefix(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Words().Suggest("", 4)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Suggest(\"\") = %v, want none", got)
	}
}

func TestWordRepository_SuggestLimit(t *testing.T) {
	s := newTestStore(t)
	words := s.Words()

	for _, w := range []string{"aa", "ab", "ac", "ad", "ae", "af"} {
		if err := words.Add(w, 1); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	got, err := words.Suggest("a", 4)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(got) != 4 {
		t.Errorf("Suggest() returned %d words, want 4", len(got))
	}
}

func TestWordRepository_AddAll(t *testing.T) {
	s := newTestStore(t)
	words := s.Words()

	if err := words.AddAll([]string{"the", "be", "", "to"}); err != nil {
		t.Fatalf("AddAll() error = %v", err)
	}

	n, err := words.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}

	// Earlier words rank higher.
	got, err := words.Suggest("t", 2)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(got) == 0 || got[0] != "the" {
		t.Errorf("Suggest() = %v, want \"the\" first", got)
	}
}

func TestWordRepository_Bump(t *testing.T) {
	s := newTestStore(t)
	words := s.Words()

	if err := words.Add("hello", 1); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := words.Add("help", 2); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := words.Bump("hello"); err != nil {
		t.Fatalf("Bump() error = %v", err)
	}
	if err := words.Bump("hello"); err != nil {
		t.Fatalf("Bump() error = %v", err)
	}

	got, err := words.Suggest("hel", 1)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(got) != 1 || got[0] != "hello" {
		t.Errorf("Suggest() = %v, want bumped \"hello\" first", got)
	}
}

func TestTranscriptRepository_CRUD(t *testing.T) {
	s := newTestStore(t)
	transcripts := s.Transcripts()

	tr := &Transcript{ID: uuid.NewString(), Sentence: "HELLO WORLD"}
	if err := transcripts.Create(tr); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := transcripts.GetByID(tr.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Sentence != "HELLO WORLD" {
		t.Errorf("Sentence = %q, want %q", got.Sentence, "HELLO WORLD")
	}

	list, err := transcripts.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() returned %d transcripts, want 1", len(list))
	}

	if err := transcripts.Delete(tr.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := transcripts.GetByID(tr.ID); err != ErrNotFound {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
	if err := transcripts.Delete(tr.ID); err != ErrNotFound {
		t.Errorf("Delete() twice error = %v, want ErrNotFound", err)
	}
}

func TestSettingRepository(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	if _, err := settings.Get("speech_rate"); err != ErrNotFound {
		t.Errorf("Get() on missing key error = %v, want ErrNotFound", err)
	}

	if err := settings.Set("speech_rate", "100"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := settings.Set("speech_rate", "120"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	got, err := settings.Get("speech_rate")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "120" {
		t.Errorf("Get() = %q, want %q", got, "120")
	}
}
