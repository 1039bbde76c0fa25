package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/mudra/internal/spell"
)

// SpellHandler controls fingerspelling playback of typed text.
type SpellHandler struct {
	player *spell.Player
}

// NewSpellHandler creates a new SpellHandler over the given player.
func NewSpellHandler(p *spell.Player) *SpellHandler {
	return &SpellHandler{player: p}
}

// ServeHTTP routes /api/spell requests.
func (h *SpellHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.status(w, r)
	case http.MethodPost:
		h.start(w, r)
	case http.MethodDelete:
		h.stop(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type startSpellRequest struct {
	Text string `json:"text"`
}

type spellStatusResponse struct {
	Playing bool `json:"playing"`
	Shown   int  `json:"shown"`
	Total   int  `json:"total"`
}

// status handles GET /api/spell and reports playback progress.
func (h *SpellHandler) status(w http.ResponseWriter, r *http.Request) {
	shown, total := h.player.Progress()
	writeJSON(w, http.StatusOK, spellStatusResponse{
		Playing: h.player.Playing(),
		Shown:   shown,
		Total:   total,
	})
}

// start handles POST /api/spell and begins playback of the text's letter
// sequence, replacing any playback in flight.
func (h *SpellHandler) start(w http.ResponseWriter, r *http.Request) {
	var req startSpellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	letters := spell.Sequence(req.Text)
	if len(letters) == 0 {
		writeError(w, http.StatusBadRequest, "Text has no letters to spell")
		return
	}

	h.player.Start(req.Text)
	writeJSON(w, http.StatusAccepted, spellStatusResponse{
		Playing: true,
		Shown:   0,
		Total:   len(letters),
	})
}

// stop handles DELETE /api/spell and halts playback.
func (h *SpellHandler) stop(w http.ResponseWriter, r *http.Request) {
	h.player.Stop()
	w.WriteHeader(http.StatusNoContent)
}
