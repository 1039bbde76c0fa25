package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newLexiconStore(t *testing.T) *LexiconHandler {
	t.Helper()

	s := newTestStore(t)
	if err := s.Words().AddAll([]string{"hello", "help", "helmet", "world"}); err != nil {
		t.Fatalf("failed to seed words: %v", err)
	}
	return NewLexiconHandler(s)
}

func TestLexiconHandler_Suggest(t *testing.T) {
	handler := newLexiconStore(t)

	req := httptest.NewRequest(http.MethodGet, "/api/lexicon/suggest?prefix=hel", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var response suggestResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Prefix != "hel" {
		t.Errorf("prefix = %q, want %q", response.Prefix, "hel")
	}
	if len(response.Words) != 3 {
		t.Fatalf("got %d words, want 3: %v", len(response.Words), response.Words)
	}
	// AddAll ranks earlier entries higher.
	if response.Words[0] != "hello" {
		t.Errorf("first word = %q, want %q", response.Words[0], "hello")
	}
}

func TestLexiconHandler_Suggest_Limit(t *testing.T) {
	handler := newLexiconStore(t)

	req := httptest.NewRequest(http.MethodGet, "/api/lexicon/suggest?prefix=hel&limit=1", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response suggestResponse
	json.NewDecoder(rec.Body).Decode(&response)
	if len(response.Words) != 1 {
		t.Errorf("got %d words, want 1", len(response.Words))
	}
}

func TestLexiconHandler_Suggest_NoMatch(t *testing.T) {
	handler := newLexiconStore(t)

	req := httptest.NewRequest(http.MethodGet, "/api/lexicon/suggest?prefix=zzz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response suggestResponse
	json.NewDecoder(rec.Body).Decode(&response)
	if len(response.Words) != 0 {
		t.Errorf("got %d words, want 0", len(response.Words))
	}
}

func TestLexiconHandler_Suggest_MissingPrefix(t *testing.T) {
	handler := newLexiconStore(t)

	req := httptest.NewRequest(http.MethodGet, "/api/lexicon/suggest", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestLexiconHandler_Suggest_InvalidLimit(t *testing.T) {
	handler := newLexiconStore(t)

	for _, limit := range []string{"0", "-1", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/lexicon/suggest?prefix=hel&limit="+limit, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("limit %q: expected status %d, got %d", limit, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestLexiconHandler_Picked(t *testing.T) {
	s := newTestStore(t)
	if err := s.Words().AddAll([]string{"hello", "help"}); err != nil {
		t.Fatalf("failed to seed words: %v", err)
	}
	handler := NewLexiconHandler(s)

	// Bump "help" past "hello".
	for i := 0; i < 5; i++ {
		body, _ := json.Marshal(pickedRequest{Word: "help"})
		req := httptest.NewRequest(http.MethodPost, "/api/lexicon/picked", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
		}
	}

	words, err := s.Words().Suggest("hel", 2)
	if err != nil {
		t.Fatalf("Suggest() error = %v", err)
	}
	if len(words) == 0 || words[0] != "help" {
		t.Errorf("words = %v, want help first", words)
	}
}

func TestLexiconHandler_Picked_MissingWord(t *testing.T) {
	handler := newLexiconStore(t)

	body, _ := json.Marshal(pickedRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/lexicon/picked", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestLexiconHandler_UnknownResource(t *testing.T) {
	handler := newLexiconStore(t)

	req := httptest.NewRequest(http.MethodGet, "/api/lexicon/frequencies", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
