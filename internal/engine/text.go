package engine

import "strings"

// NumSuggestions is the number of suggestion slots. Slots beyond what the
// dictionary returns hold the empty placeholder.
const NumSuggestions = 4

// SuggestFn queries an external dictionary for ranked completions of a
// lowercase word fragment. It may return fewer candidates than asked for,
// or none.
type SuggestFn func(word string) []string

// TextBuffer owns the growing sentence and the suggestion slots. It is the
// single source of truth for every display and speech consumer; readers get
// copies, never references into its state.
type TextBuffer struct {
	sentence    strings.Builder
	suggestions [NumSuggestions]string
}

// NewTextBuffer creates an empty text buffer with placeholder suggestions.
func NewTextBuffer() *TextBuffer {
	return &TextBuffer{}
}

// Apply executes a commit effect. DeleteLast on an empty sentence is a
// no-op; Apply never fails.
func (t *TextBuffer) Apply(effect *Effect) {
	if effect == nil {
		return
	}
	switch effect.Kind {
	case EffectAppend:
		t.sentence.WriteByte(effect.Char)
	case EffectDeleteLast:
		s := t.sentence.String()
		if len(s) > 0 {
			t.sentence.Reset()
			t.sentence.WriteString(s[:len(s)-1])
		}
	}
}

// Sentence returns the committed text so far.
func (t *TextBuffer) Sentence() string {
	return t.sentence.String()
}

// ActiveWord returns the word currently being spelled: the suffix of the
// sentence after the last space, or the whole sentence if it has no space.
func (t *TextBuffer) ActiveWord() string {
	s := t.sentence.String()
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Suggestions returns the current suggestion slots. Unused slots hold the
// empty string.
func (t *TextBuffer) Suggestions() [NumSuggestions]string {
	return t.suggestions
}

// RefreshSuggestions re-queries the dictionary for the active word. With an
// empty active word all slots become placeholders. Candidate order is
// whatever the dictionary returned; no re-ranking happens here.
func (t *TextBuffer) RefreshSuggestions(suggest SuggestFn) {
	t.suggestions = [NumSuggestions]string{}

	word := t.ActiveWord()
	if word == "" || suggest == nil {
		return
	}

	candidates := suggest(strings.ToLower(word))
	for i := 0; i < NumSuggestions && i < len(candidates); i++ {
		t.suggestions[i] = candidates[i]
	}
}

// ApplySuggestion replaces the active word with the candidate in slot
// 1..NumSuggestions, upper-cased. A placeholder slot or an out-of-range
// index is a no-op.
func (t *TextBuffer) ApplySuggestion(slot int) {
	if slot < 1 || slot > NumSuggestions {
		return
	}
	candidate := t.suggestions[slot-1]
	if strings.TrimSpace(candidate) == "" {
		return
	}

	s := t.sentence.String()
	i := strings.LastIndexByte(s, ' ')
	t.sentence.Reset()
	t.sentence.WriteString(s[:i+1])
	t.sentence.WriteString(strings.ToUpper(candidate))
}

// Clear resets the sentence and suggestions. It does not touch any
// debounce state.
func (t *TextBuffer) Clear() {
	t.sentence.Reset()
	t.suggestions = [NumSuggestions]string{}
}
