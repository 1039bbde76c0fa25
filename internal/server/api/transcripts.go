package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/store"
)

// TranscriptsHandler handles HTTP requests for saved transcripts.
type TranscriptsHandler struct {
	store *store.Store
}

// NewTranscriptsHandler creates a new TranscriptsHandler with the given store.
func NewTranscriptsHandler(s *store.Store) *TranscriptsHandler {
	return &TranscriptsHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to
// appropriate methods.
func (h *TranscriptsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/transcripts or /api/transcripts/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/transcripts")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.create(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type createTranscriptRequest struct {
	Sentence string `json:"sentence"`
}

type transcriptResponse struct {
	ID        string `json:"id"`
	Sentence  string `json:"sentence"`
	CreatedAt string `json:"created_at"`
}

type listTranscriptsResponse struct {
	Transcripts []transcriptResponse `json:"transcripts"`
}

// toTranscriptResponse converts a store.Transcript to a transcriptResponse.
func toTranscriptResponse(t *store.Transcript) transcriptResponse {
	return transcriptResponse{
		ID:        t.ID,
		Sentence:  t.Sentence,
		CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// list handles GET /api/transcripts and returns all transcripts, newest
// first.
func (h *TranscriptsHandler) list(w http.ResponseWriter, r *http.Request) {
	transcripts, err := h.store.Transcripts().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list transcripts")
		return
	}

	response := listTranscriptsResponse{
		Transcripts: make([]transcriptResponse, 0, len(transcripts)),
	}
	for _, t := range transcripts {
		response.Transcripts = append(response.Transcripts, toTranscriptResponse(t))
	}

	writeJSON(w, http.StatusOK, response)
}

// create handles POST /api/transcripts and saves a sentence.
func (h *TranscriptsHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createTranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Sentence) == "" {
		writeError(w, http.StatusBadRequest, "Sentence is required")
		return
	}

	transcript := &store.Transcript{
		ID:       uuid.New().String(),
		Sentence: req.Sentence,
	}
	if err := h.store.Transcripts().Create(transcript); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create transcript")
		return
	}

	writeJSON(w, http.StatusCreated, toTranscriptResponse(transcript))
}

// get handles GET /api/transcripts/{id} and returns a single transcript.
func (h *TranscriptsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	transcript, err := h.store.Transcripts().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transcript not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get transcript")
		return
	}

	writeJSON(w, http.StatusOK, toTranscriptResponse(transcript))
}

// delete handles DELETE /api/transcripts/{id} and removes a transcript.
func (h *TranscriptsHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Transcripts().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transcript not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete transcript")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
