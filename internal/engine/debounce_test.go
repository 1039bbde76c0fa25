package engine

import (
	"testing"

	"github.com/ayusman/mudra/internal/sign"
)

func TestDebouncer_NextIsEdgeTriggered(t *testing.T) {
	d := NewDebouncer()

	// Hold a letter, then repeat the confirm gesture.
	d.Step(sign.Letter('A'))
	d.Step(sign.Letter('A'))

	commits := 0
	for i := 0; i < 3; i++ {
		if effect := d.Step(sign.Next); effect != nil {
			commits++
		}
	}

	if commits != 1 {
		t.Errorf("repeated next committed %d times, want 1", commits)
	}
}

func TestDebouncer_CommitsHeldLetter(t *testing.T) {
	d := NewDebouncer()

	d.Step(sign.Letter('A'))
	d.Step(sign.Letter('A'))
	effect := d.Step(sign.Next)

	if effect == nil {
		t.Fatal("expected commit on next, got nil")
	}
	if effect.Kind != EffectAppend || effect.Char != 'A' {
		t.Errorf("effect = %+v, want append 'A'", effect)
	}
}

func TestDebouncer_CommitsBackspace(t *testing.T) {
	d := NewDebouncer()

	d.Step(sign.Letter('A'))
	d.Step(sign.Backspace)
	effect := d.Step(sign.Next)

	if effect == nil {
		t.Fatal("expected commit on next, got nil")
	}
	if effect.Kind != EffectDeleteLast {
		t.Errorf("effect = %+v, want delete-last", effect)
	}
}

func TestDebouncer_CommitsSpace(t *testing.T) {
	d := NewDebouncer()

	d.Step(sign.Letter('H'))
	d.Step(sign.Space)
	effect := d.Step(sign.Next)

	if effect == nil {
		t.Fatal("expected commit on next, got nil")
	}
	if effect.Kind != EffectAppend || effect.Char != ' ' {
		t.Errorf("effect = %+v, want append ' '", effect)
	}
}

func TestDebouncer_NoCommitWithoutNext(t *testing.T) {
	d := NewDebouncer()

	// Letters alone never commit, however long they are held.
	for i := 0; i < 25; i++ {
		if effect := d.Step(sign.Letter('Q')); effect != nil {
			t.Fatalf("letter committed without next at frame %d", i)
		}
	}
}

func TestDebouncer_RisingEdgeAfterRelease(t *testing.T) {
	d := NewDebouncer()

	d.Step(sign.Letter('A'))
	d.Step(sign.Letter('A'))
	if effect := d.Step(sign.Next); effect == nil {
		t.Fatal("first confirm did not commit")
	}

	// Release, hold a new letter, confirm again.
	d.Step(sign.Letter('B'))
	d.Step(sign.Letter('B'))
	effect := d.Step(sign.Next)
	if effect == nil {
		t.Fatal("second confirm did not commit")
	}
	if effect.Char != 'B' {
		t.Errorf("second commit char = %q, want 'B'", effect.Char)
	}
}

func TestDebouncer_RingWraparound(t *testing.T) {
	d := NewDebouncer()

	// Push well past the ring capacity, then confirm the held letter.
	for i := 0; i < HistorySize*3; i++ {
		d.Step(sign.Letter('Z'))
	}
	effect := d.Step(sign.Next)

	if effect == nil {
		t.Fatal("expected commit after wraparound")
	}
	if effect.Kind != EffectAppend || effect.Char != 'Z' {
		t.Errorf("effect = %+v, want append 'Z'", effect)
	}
}

func TestDebouncer_Reset(t *testing.T) {
	d := NewDebouncer()
	d.Step(sign.Letter('A'))
	d.Step(sign.Next)

	d.Reset()

	if d.Previous() != sign.Space {
		t.Errorf("Previous() after reset = %v, want space", d.Previous())
	}
}
