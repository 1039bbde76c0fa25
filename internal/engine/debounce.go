// Package engine turns noisy per-frame symbols into a stable committed
// text stream with word suggestions.
package engine

import "github.com/ayusman/mudra/internal/sign"

// HistorySize is the capacity of the rolling symbol history. The commit
// lookback only reaches a couple of slots behind the current frame; ten
// matches the reference calibration.
const HistorySize = 10

// lookbackOffset is how many slots behind the current frame's write
// position the committed symbol is read from. It is a calibration constant:
// one slot back commits the symbol the signer was holding when the confirm
// gesture began.
const lookbackOffset = 1

// EffectKind discriminates commit effects.
type EffectKind int

const (
	// EffectAppend appends a character to the sentence.
	EffectAppend EffectKind = iota
	// EffectDeleteLast removes the last character of the sentence.
	EffectDeleteLast
)

// Effect is a committed edit produced by the debouncer, at most one per
// frame.
type Effect struct {
	Kind EffectKind
	Char byte // set only for EffectAppend
}

// Debouncer decides when a held symbol becomes a committed character.
// Only the next gesture triggers commits: a letter must be held until the
// signer confirms it, which is the sole defense against frame-to-frame
// classification jitter. No wall clock is consulted; the frame rate is the
// implicit debounce granularity.
type Debouncer struct {
	history [HistorySize]sign.Symbol
	prev    sign.Symbol
	count   int
}

// NewDebouncer creates a debouncer with an empty history. The ring starts
// filled with space symbols, matching a freshly cleared sentence.
func NewDebouncer() *Debouncer {
	d := &Debouncer{}
	for i := range d.history {
		d.history[i] = sign.Space
	}
	d.prev = sign.Space
	return d
}

// Step consumes the symbol resolved for the current frame and returns the
// commit effect to apply, or nil when nothing commits.
//
// A commit fires only on the rising edge of next (current symbol is next,
// previous was not). The committed symbol is read from the history slot
// lookbackOffset frames back; if that slot holds next itself the commit is
// suppressed to guard against double triggers. The current symbol is
// recorded into the ring only after the lookback is evaluated.
func (d *Debouncer) Step(resolved sign.Symbol) *Effect {
	var effect *Effect

	if resolved.Kind == sign.KindNext && d.prev.Kind != sign.KindNext {
		back := d.history[((d.count-lookbackOffset)%HistorySize+HistorySize)%HistorySize]
		switch back.Kind {
		case sign.KindNext:
			// transition noise, no commit
		case sign.KindBackspace:
			effect = &Effect{Kind: EffectDeleteLast}
		default:
			effect = &Effect{Kind: EffectAppend, Char: back.Char()}
		}
	}

	d.history[d.count%HistorySize] = resolved
	d.prev = resolved
	d.count++

	return effect
}

// Previous returns the symbol from the last processed frame.
func (d *Debouncer) Previous() sign.Symbol {
	return d.prev
}

// Reset clears the history and edge state.
func (d *Debouncer) Reset() {
	*d = *NewDebouncer()
}
