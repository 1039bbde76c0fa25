package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/dict"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/speech"
	"github.com/ayusman/mudra/internal/spell"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

func main() {
	fmt.Println("Mudra - Sign Language Translator")

	configPath := flag.String("config", "", "path to config file")
	headless := flag.Bool("headless", false, "run without the system tray")
	flag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Fatalf("Failed to locate config: %v", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the store
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Failed to get home directory: %v", err)
	}

	dbDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(filepath.Join(dbDir, "mudra.db"))
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Seed the suggestion lexicon on first run
	if err := dict.Seed(st.Words()); err != nil {
		log.Fatalf("Failed to seed lexicon: %v", err)
	}

	a := app.New(app.Config{
		Store:         st,
		CameraID:      cfg.Camera.DeviceID,
		FPS:           cfg.Camera.FPS,
		Suggestions:   cfg.Engine.Suggestions,
		MinConfidence: cfg.Engine.MinConfidence,
	})

	var synth speech.Synthesizer
	if s, err := speech.NewCommandSynthesizer(cfg.Speech.Command, cfg.Speech.TimeoutMs); err == nil {
		synth = s
		log.Printf("Speech synthesis via %s", s.Command())
	} else {
		log.Printf("Speech synthesis unavailable: %v", err)
	}

	player := spell.NewPlayer(spell.DefaultInterval)

	// Find web directory
	webDir := cfg.Server.StaticDir
	if webDir == "" {
		webDir = findWebDir()
	}
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Camera:    a.Camera(),
		Engine:    a.Engine(),
		Speech:    synth,
		Spell:     player,
	})

	// Restore the recognition toggle from the last run
	if v, err := st.Settings().Get("recognition_enabled"); err == nil {
		a.SetEnabled(v != "false")
	}

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start recognition: %v", err)
	}
	defer a.Stop()

	fmt.Printf("Starting server on %s\n", cfg.Server.Addr)

	if *headless {
		if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	go func() {
		if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	runTray(a, st, synth, cfg.Server.Addr)
}

// runTray blocks in the system tray loop, mirroring the engine sentence
// into the menu once a second.
func runTray(a *app.App, st *store.Store, synth speech.Synthesizer, addr string) {
	t := tray.New()
	t.SetEnabled(a.IsEnabled())

	t.OnToggle(func(enabled bool) {
		a.SetEnabled(enabled)
		value := "true"
		if !enabled {
			value = "false"
		}
		if err := st.Settings().Set("recognition_enabled", value); err != nil {
			log.Printf("Error saving toggle state: %v", err)
		}
	})
	t.OnSpeak(func() {
		if synth == nil {
			return
		}
		sentence := a.Engine().Sentence()
		if sentence == "" {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := synth.Speak(ctx, sentence); err != nil {
			log.Printf("Error speaking sentence: %v", err)
		}
	})
	t.OnOpenUI(func() {
		openBrowser("http://localhost" + addr)
	})
	t.OnQuit(func() {
		a.Stop()
	})

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for range ticker.C {
			t.SetSentence(a.Engine().Sentence())
		}
	}()

	t.Run()
}

// openBrowser opens the URL with the platform's default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("Error opening browser: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.mudra/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".mudra", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
