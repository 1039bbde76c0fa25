package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/store"
)

// LexiconHandler exposes the suggestion lexicon: prefix lookups and
// frequency feedback for picked words.
type LexiconHandler struct {
	store *store.Store
}

// NewLexiconHandler creates a new LexiconHandler with the given store.
func NewLexiconHandler(s *store.Store) *LexiconHandler {
	return &LexiconHandler{store: s}
}

// ServeHTTP routes /api/lexicon sub-resources.
func (h *LexiconHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/lexicon")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "suggest":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.suggest(w, r)
	case "picked":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.picked(w, r)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

type suggestResponse struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
}

type pickedRequest struct {
	Word string `json:"word"`
}

// suggest handles GET /api/lexicon/suggest?prefix=hel&limit=4.
func (h *LexiconHandler) suggest(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if strings.TrimSpace(prefix) == "" {
		writeError(w, http.StatusBadRequest, "Prefix is required")
		return
	}

	limit := engine.NumSuggestions
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	words, err := h.store.Words().Suggest(prefix, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to query lexicon")
		return
	}
	if words == nil {
		words = []string{}
	}

	writeJSON(w, http.StatusOK, suggestResponse{
		Prefix: strings.ToLower(strings.TrimSpace(prefix)),
		Words:  words,
	})
}

// picked handles POST /api/lexicon/picked and bumps the word's frequency so
// it ranks higher in future lookups.
func (h *LexiconHandler) picked(w http.ResponseWriter, r *http.Request) {
	var req pickedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "Word is required")
		return
	}

	if err := h.store.Words().Bump(req.Word); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update word")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
