// Package sign resolves coarse classifier output into concrete
// fingerspelling symbols using geometric rules over hand landmarks.
package sign

// Kind discriminates the variants of a resolved symbol.
type Kind int

const (
	// KindLetter is a printable letter A-Z.
	KindLetter Kind = iota
	// KindSpace ends the current word.
	KindSpace
	// KindBackspace requests removal of the last committed character.
	KindBackspace
	// KindNext is the confirmation gesture. It is not printable; it commits
	// the symbol held two frames earlier.
	KindNext
)

// Symbol is the per-frame result of disambiguation: a letter, a space, a
// backspace marker, or the next (confirm) marker.
type Symbol struct {
	Kind   Kind
	Letter byte // set only for KindLetter
}

// Predefined control symbols.
var (
	Space     = Symbol{Kind: KindSpace}
	Backspace = Symbol{Kind: KindBackspace}
	Next      = Symbol{Kind: KindNext}
)

// Letter returns the symbol for an uppercase letter.
func Letter(c byte) Symbol {
	return Symbol{Kind: KindLetter, Letter: c}
}

// Char returns the character this symbol commits into the text buffer.
// Next and Backspace have no printable character and return 0.
func (s Symbol) Char() byte {
	switch s.Kind {
	case KindLetter:
		return s.Letter
	case KindSpace:
		return ' '
	default:
		return 0
	}
}

// String renders the symbol for display and logging.
func (s Symbol) String() string {
	switch s.Kind {
	case KindLetter:
		return string(s.Letter)
	case KindSpace:
		return "space"
	case KindBackspace:
		return "backspace"
	case KindNext:
		return "next"
	default:
		return "?"
	}
}
