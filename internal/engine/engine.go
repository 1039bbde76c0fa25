package engine

import (
	"sync"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/sign"
)

// State is an immutable snapshot of the engine for display and speech
// consumers.
type State struct {
	Sentence    string                 `json:"sentence"`
	ActiveWord  string                 `json:"active_word"`
	Current     string                 `json:"current"` // symbol held this frame
	Suggestions [NumSuggestions]string `json:"suggestions"`
	Frames      int                    `json:"frames"`
}

// Engine wires the disambiguator, debouncer and text buffer into the
// per-frame pipeline step. The pipeline goroutine is the single writer;
// render and API consumers read snapshots through the mutex.
type Engine struct {
	mu       sync.RWMutex
	debounce *Debouncer
	text     *TextBuffer
	suggest  SuggestFn
	current  sign.Symbol
	frames   int
}

// New creates an engine using the given dictionary. A nil suggest function
// disables suggestions.
func New(suggest SuggestFn) *Engine {
	return &Engine{
		debounce: NewDebouncer(),
		text:     NewTextBuffer(),
		suggest:  suggest,
		current:  sign.Space,
	}
}

// Step processes one frame's observation: resolve, debounce, apply, refresh
// suggestions. A nil observation (no hand this frame) mutates nothing.
// Returns the committed effect, if any.
func (e *Engine) Step(obs *detector.Observation) (*Effect, error) {
	if obs == nil {
		return nil, nil
	}

	resolved, err := sign.Resolve(obs.Class, &obs.Points)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	effect := e.debounce.Step(resolved)
	if effect != nil {
		e.text.Apply(effect)
		e.text.RefreshSuggestions(e.suggest)
	}
	e.current = resolved
	e.frames++

	return effect, nil
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return State{
		Sentence:    e.text.Sentence(),
		ActiveWord:  e.text.ActiveWord(),
		Current:     e.current.String(),
		Suggestions: e.text.Suggestions(),
		Frames:      e.frames,
	}
}

// ApplySuggestion replaces the active word with the candidate in the given
// slot (1-based) and refreshes the suggestion list.
func (e *Engine) ApplySuggestion(slot int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.text.ApplySuggestion(slot)
	e.text.RefreshSuggestions(e.suggest)
}

// Clear empties the sentence and suggestions. The debounce history is left
// alone so an in-flight confirm gesture is not disturbed.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.text.Clear()
}

// Sentence returns the committed text so far.
func (e *Engine) Sentence() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.text.Sentence()
}
