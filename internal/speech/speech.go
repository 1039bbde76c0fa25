// Package speech provides sentence playback through an external
// text-to-speech command.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// ErrNoCommand is returned when no usable TTS executable was found.
var ErrNoCommand = errors.New("no text-to-speech command available")

// Synthesizer speaks a sentence on explicit request. It is never invoked
// automatically by the recognition pipeline.
type Synthesizer interface {
	Speak(ctx context.Context, sentence string) error
}

// CommandSynthesizer shells out to a platform TTS executable, passing the
// sentence as the final argument.
type CommandSynthesizer struct {
	command   string
	timeoutMs int
}

// candidateCommands are probed in order when no command is configured.
var candidateCommands = []string{"say", "espeak", "espeak-ng", "spd-say"}

// NewCommandSynthesizer creates a synthesizer for the given executable. An
// empty command probes the PATH for a known TTS program.
func NewCommandSynthesizer(command string, timeoutMs int) (*CommandSynthesizer, error) {
	if command == "" {
		command = probeCommand()
		if command == "" {
			return nil, ErrNoCommand
		}
	} else if _, err := exec.LookPath(command); err != nil {
		return nil, fmt.Errorf("tts command %q: %w", command, err)
	}

	return &CommandSynthesizer{
		command:   command,
		timeoutMs: timeoutMs,
	}, nil
}

// Command returns the resolved executable name.
func (s *CommandSynthesizer) Command() string {
	return s.command
}

// Speak runs the TTS command for the sentence, bounded by the configured
// timeout. An empty sentence is a no-op.
func (s *CommandSynthesizer) Speak(ctx context.Context, sentence string) error {
	if sentence == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.timeoutMs)*time.Millisecond)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.command, sentence)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("speech synthesis timeout after %dms", s.timeoutMs)
	}

	if err != nil {
		if stderrStr := stderr.String(); stderrStr != "" {
			return fmt.Errorf("speech synthesis failed: %w, stderr: %s", err, stderrStr)
		}
		return fmt.Errorf("speech synthesis failed: %w", err)
	}

	return nil
}

// probeCommand returns the first known TTS executable on the PATH.
func probeCommand() string {
	for _, name := range candidateCommands {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return ""
}

// MockSynthesizer records spoken sentences for tests.
type MockSynthesizer struct {
	Sentences []string
	Err       error
}

// Speak records the sentence or returns the configured error.
func (m *MockSynthesizer) Speak(ctx context.Context, sentence string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sentences = append(m.Sentences, sentence)
	return nil
}
