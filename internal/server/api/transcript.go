// Package api provides HTTP API handlers for the Mudra sign language
// translator.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/speech"
	"github.com/ayusman/mudra/internal/store"
)

// TranscriptHandler exposes the live transcript: the engine state, the
// suggestion slots, speech playback and saving the sentence.
type TranscriptHandler struct {
	engine *engine.Engine
	speech speech.Synthesizer
	store  *store.Store
}

// NewTranscriptHandler creates a handler over the given engine. Speech and
// store are optional; their endpoints report 503 when absent.
func NewTranscriptHandler(e *engine.Engine, synth speech.Synthesizer, s *store.Store) *TranscriptHandler {
	return &TranscriptHandler{engine: e, speech: synth, store: s}
}

// ServeHTTP routes /api/transcript and its sub-resources.
func (h *TranscriptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/transcript")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "":
		switch r.Method {
		case http.MethodGet:
			h.state(w, r)
		case http.MethodDelete:
			h.clear(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "suggestion":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.applySuggestion(w, r)
	case "speak":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.speak(w, r)
	case "save":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.save(w, r)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

type applySuggestionRequest struct {
	Slot int `json:"slot"`
}

type speakResponse struct {
	Sentence string `json:"sentence"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// state handles GET /api/transcript and returns the live engine snapshot.
func (h *TranscriptHandler) state(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Snapshot())
}

// applySuggestion handles POST /api/transcript/suggestion and replaces the
// active word with the candidate in the requested slot.
func (h *TranscriptHandler) applySuggestion(w http.ResponseWriter, r *http.Request) {
	var req applySuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Slot < 1 || req.Slot > engine.NumSuggestions {
		writeError(w, http.StatusBadRequest, "Slot out of range")
		return
	}

	h.engine.ApplySuggestion(req.Slot)
	writeJSON(w, http.StatusOK, h.engine.Snapshot())
}

// speak handles POST /api/transcript/speak and plays the sentence through
// the configured synthesizer.
func (h *TranscriptHandler) speak(w http.ResponseWriter, r *http.Request) {
	if h.speech == nil {
		writeError(w, http.StatusServiceUnavailable, "Speech synthesis not available")
		return
	}

	sentence := h.engine.Sentence()
	if sentence == "" {
		writeError(w, http.StatusBadRequest, "Nothing to speak")
		return
	}

	if err := h.speech.Speak(r.Context(), sentence); err != nil {
		writeError(w, http.StatusInternalServerError, "Speech synthesis failed")
		return
	}

	writeJSON(w, http.StatusOK, speakResponse{Sentence: sentence})
}

// save handles POST /api/transcript/save and persists the current sentence
// as a transcript.
func (h *TranscriptHandler) save(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusServiceUnavailable, "Storage not available")
		return
	}

	sentence := h.engine.Sentence()
	if sentence == "" {
		writeError(w, http.StatusBadRequest, "Nothing to save")
		return
	}

	transcript := &store.Transcript{
		ID:       uuid.New().String(),
		Sentence: sentence,
	}
	if err := h.store.Transcripts().Create(transcript); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save transcript")
		return
	}

	writeJSON(w, http.StatusCreated, toTranscriptResponse(transcript))
}

// clear handles DELETE /api/transcript and empties the sentence.
func (h *TranscriptHandler) clear(w http.ResponseWriter, r *http.Request) {
	h.engine.Clear()
	w.WriteHeader(http.StatusNoContent)
}
