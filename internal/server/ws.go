// Package server provides the HTTP server for the Mudra sign language
// translator.
package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/spell"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// EngineHandler broadcasts engine state snapshots via WebSocket.
type EngineHandler struct {
	engine  *engine.Engine
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewEngineHandler creates a new EngineHandler over the given engine.
func NewEngineHandler(e *engine.Engine) *EngineHandler {
	h := &EngineHandler{
		engine:  e,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests. The current state is sent
// immediately so a new client never waits for the next change.
func (h *EngineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	conn.WriteJSON(stateMessage(h.engine.Snapshot()))

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends the engine state to all connected clients whenever it
// changes, polling at ~15 FPS.
func (h *EngineHandler) broadcast() {
	ticker := time.NewTicker(66 * time.Millisecond)
	defer ticker.Stop()

	var last engine.State

	for range ticker.C {
		h.mu.RLock()
		if len(h.clients) == 0 {
			h.mu.RUnlock()
			continue
		}
		h.mu.RUnlock()

		state := h.engine.Snapshot()
		if state == last {
			continue
		}
		last = state

		msg, _ := json.Marshal(stateMessage(state))

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		h.mu.RUnlock()
	}
}

func stateMessage(state engine.State) map[string]any {
	return map[string]any{
		"state":     state,
		"timestamp": time.Now().UnixMilli(),
	}
}

// SpellFeedHandler broadcasts fingerspelling playback steps via WebSocket.
type SpellFeedHandler struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewSpellFeedHandler creates a feed handler wired to the given player's
// step and done callbacks.
func NewSpellFeedHandler(p *spell.Player) *SpellFeedHandler {
	h := &SpellFeedHandler{
		clients: make(map[*websocket.Conn]bool),
	}
	p.OnStep(func(s spell.Step) {
		h.send(map[string]any{"type": "step", "step": s})
	})
	p.OnDone(func() {
		h.send(map[string]any{"type": "done"})
	})
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *SpellFeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *SpellFeedHandler) send(payload map[string]any) {
	msg, _ := json.Marshal(payload)

	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}
