package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/spell"
)

func TestSpellHandler_Start(t *testing.T) {
	player := spell.NewPlayer(time.Minute) // slow so playback stays in flight
	defer player.Stop()
	handler := NewSpellHandler(player)

	body, _ := json.Marshal(startSpellRequest{Text: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/spell", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status %d, got %d: %s", http.StatusAccepted, rec.Code, rec.Body.String())
	}

	var response spellStatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !response.Playing {
		t.Error("expected playing = true")
	}
	if response.Total != 5 {
		t.Errorf("total = %d, want 5", response.Total)
	}
}

func TestSpellHandler_Start_NoLetters(t *testing.T) {
	handler := NewSpellHandler(spell.NewPlayer(time.Minute))

	body, _ := json.Marshal(startSpellRequest{Text: "123 !?"})
	req := httptest.NewRequest(http.MethodPost, "/api/spell", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestSpellHandler_Status(t *testing.T) {
	handler := NewSpellHandler(spell.NewPlayer(time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/spell", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response spellStatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Playing {
		t.Error("expected playing = false for idle player")
	}
}

func TestSpellHandler_Stop(t *testing.T) {
	player := spell.NewPlayer(time.Minute)
	handler := NewSpellHandler(player)

	player.Start("hello")

	req := httptest.NewRequest(http.MethodDelete, "/api/spell", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if player.Playing() {
		t.Error("player still playing after stop")
	}
}
