package app

import (
	"log"
	"time"
)

// runPipeline is the main recognition loop. Each tick it reads a frame,
// asks the detector for a hand observation, and steps the engine.
//
// The ticker is the only scheduling mechanism: the engine itself has no
// timers, and a frame with no hand passes through with no state change.
// Unlike a motion-gated pipeline, every frame is processed at full rate —
// fingerspelled letters are held static poses, so a motion gate would stall
// recognition exactly when the signer is doing everything right.
func (a *App) runPipeline(stopCh chan struct{}) {
	interval := time.Second / time.Duration(a.config.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			if !a.IsEnabled() {
				frame.Close()
				continue
			}

			obs, err := a.Detector().Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hand: %v", err)
				continue
			}

			// obs is nil when no hand was found; Step treats that as a
			// dropped frame.
			if _, err := a.engine.Step(obs); err != nil {
				log.Printf("Error stepping engine: %v", err)
			}
		}
	}
}

// StepOnce runs a single pipeline iteration synchronously. Tests and the
// tray preview use it to advance the engine without the ticker.
func (a *App) StepOnce() error {
	frame, err := a.Camera().ReadFrame()
	if err != nil {
		return err
	}
	defer frame.Close()

	if !a.IsEnabled() {
		return nil
	}

	obs, err := a.Detector().Detect(frame)
	if err != nil {
		return err
	}

	_, err = a.engine.Step(obs)
	return err
}
