// Package app provides the main application logic for the Mudra sign
// language translator.
package app

import (
	"log"
	"sync"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/dict"
	"github.com/ayusman/mudra/internal/engine"
	"github.com/ayusman/mudra/internal/store"
)

// Config holds configuration options for the application.
type Config struct {
	Store         *store.Store
	CameraID      int
	FPS           int
	Suggestions   int
	MinConfidence float64
}

// detectorConfig builds the detector settings from the app config, keeping
// the detector defaults for anything left unset.
func (c Config) detectorConfig() detector.Config {
	dc := detector.DefaultConfig()
	if c.MinConfidence > 0 {
		dc.MinConfidence = c.MinConfidence
	}
	return dc
}

// App owns the recognition pipeline: camera, detector, and the
// fingerspelling engine.
type App struct {
	config   Config
	camera   capture.Camera
	detector detector.Detector
	engine   *engine.Engine
	enabled  bool
	mu       sync.RWMutex
	stopCh   chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.FPS <= 0 {
		config.FPS = capture.DefaultFPS
	}
	if config.Suggestions <= 0 {
		config.Suggestions = engine.NumSuggestions
	}

	var suggest engine.SuggestFn
	if config.Store != nil {
		suggester := dict.NewStoreSuggester(config.Store.Words(), config.Suggestions)
		suggest = suggester.Suggest
	}

	a := &App{
		config:  config,
		camera:  capture.NewCamera(config.CameraID),
		engine:  engine.New(suggest),
		enabled: true,
	}

	// Try the vision sidecar first, fall back to the mock detector so the
	// rest of the app stays usable without Python installed.
	if svc, err := detector.NewServiceDetector(config.detectorConfig()); err == nil {
		a.detector = svc
		log.Println("Using vision service hand detection")
	} else {
		log.Printf("Vision service not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables recognition. Disabled frames are read and
// discarded so the camera stream stays live.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether recognition is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// Engine returns the fingerspelling engine.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Start begins the recognition pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(a.config.FPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Recognition pipeline started")
	return nil
}

// Stop halts the recognition pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Recognition pipeline stopped")
}
