package spell

import (
	"sync"
	"time"
)

// DefaultInterval is the pause between fingerspelled letters.
const DefaultInterval = 800 * time.Millisecond

// Step is one letter of an in-flight playback.
type Step struct {
	Letter      byte   `json:"-"`
	Char        string `json:"letter"`
	Description string `json:"description"`
	Index       int    `json:"index"` // 1-based position
	Total       int    `json:"total"`
}

// Player advances through a letter sequence on its own timer, one letter
// per interval. It runs independently of the recognition engine and shares
// no state with it.
type Player struct {
	interval time.Duration
	onStep   func(Step)
	onDone   func()

	mu      sync.Mutex
	letters []byte
	index   int
	playing bool
	stopCh  chan struct{}
}

// NewPlayer creates a player with the given letter interval; zero or
// negative means DefaultInterval.
func NewPlayer(interval time.Duration) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Player{interval: interval}
}

// OnStep sets the callback invoked for each letter shown.
func (p *Player) OnStep(fn func(Step)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onStep = fn
}

// OnDone sets the callback invoked when playback finishes or is stopped.
func (p *Player) OnDone(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onDone = fn
}

// Start begins playback of the text's fingerspelling sequence, replacing
// any playback already in flight. Text with no letters is a no-op.
func (p *Player) Start(text string) {
	letters := Sequence(text)
	if len(letters) == 0 {
		return
	}

	p.mu.Lock()
	if p.playing {
		close(p.stopCh)
	}
	p.letters = letters
	p.index = 0
	p.playing = true
	p.stopCh = make(chan struct{})
	stopCh := p.stopCh
	p.mu.Unlock()

	go p.run(letters, stopCh)
}

// Stop halts playback. Safe to call when idle.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		close(p.stopCh)
		p.playing = false
	}
}

// Playing reports whether a sequence is in flight.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Progress returns the number of letters shown so far and the total.
func (p *Player) Progress() (shown, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index, len(p.letters)
}

func (p *Player) run(letters []byte, stopCh chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for i, letter := range letters {
		step := Step{
			Letter:      letter,
			Char:        string(letter),
			Description: Describe(letter),
			Index:       i + 1,
			Total:       len(letters),
		}

		p.mu.Lock()
		p.index = i + 1
		onStep := p.onStep
		p.mu.Unlock()

		if onStep != nil {
			onStep(step)
		}

		select {
		case <-stopCh:
			return
		case <-ticker.C:
		}
	}

	p.mu.Lock()
	p.playing = false
	onDone := p.onDone
	p.mu.Unlock()

	if onDone != nil {
		onDone()
	}
}
