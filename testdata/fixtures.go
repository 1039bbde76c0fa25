// Package testdata provides recorded signing scripts for replay in tests.
package testdata

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/ayusman/mudra/internal/detector"
)

//go:embed sequences/*.json
var sequencesFS embed.FS

// frame is one entry of a recorded script: a named pose held for a number
// of frames, or a gap with no hand in view.
type frame struct {
	Pose string `json:"pose"`
	Hold int    `json:"hold,omitempty"`
}

// poses maps script pose names to the classifier class and landmark layout
// the vision service would report for them.
var poses = map[string]func() *detector.Observation{
	"A":         func() *detector.Observation { return detector.Obs(0, detector.ALandmarks()) },
	"B":         func() *detector.Observation { return detector.Obs(1, detector.BLandmarks()) },
	"C":         func() *detector.Observation { return detector.Obs(2, detector.CLandmarks()) },
	"D":         func() *detector.Observation { return detector.Obs(1, detector.DLandmarks()) },
	"E":         func() *detector.Observation { return detector.Obs(0, detector.ELandmarks()) },
	"F":         func() *detector.Observation { return detector.Obs(1, detector.FLandmarks()) },
	"G":         func() *detector.Observation { return detector.Obs(3, detector.GLandmarks()) },
	"H":         func() *detector.Observation { return detector.Obs(3, detector.HLandmarks()) },
	"J":         func() *detector.Observation { return detector.Obs(7, detector.JLandmarks()) },
	"L":         func() *detector.Observation { return detector.Obs(4, detector.LLandmarks()) },
	"O":         func() *detector.Observation { return detector.Obs(2, detector.OLandmarks()) },
	"S":         func() *detector.Observation { return detector.Obs(0, detector.FistLandmarks()) },
	"Y":         func() *detector.Observation { return detector.Obs(7, detector.YLandmarks()) },
	"space":     func() *detector.Observation { return detector.Obs(1, detector.SpaceLandmarks()) },
	"next":      func() *detector.Observation { return detector.Obs(1, detector.NextLandmarks()) },
	"backspace": func() *detector.Observation { return detector.Obs(0, detector.BackspaceLandmarks()) },
	"none":      func() *detector.Observation { return nil },
}

// LoadSequence expands a recorded script into the per-frame observations
// the detector would have produced.
func LoadSequence(name string) ([]*detector.Observation, error) {
	data, err := sequencesFS.ReadFile("sequences/" + name)
	if err != nil {
		return nil, fmt.Errorf("load sequence %s: %w", name, err)
	}

	var frames []frame
	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("parse sequence %s: %w", name, err)
	}

	var observations []*detector.Observation
	for i, f := range frames {
		build, ok := poses[f.Pose]
		if !ok {
			return nil, fmt.Errorf("sequence %s frame %d: unknown pose %q", name, i, f.Pose)
		}

		hold := f.Hold
		if hold <= 0 {
			hold = 1
		}
		for j := 0; j < hold; j++ {
			observations = append(observations, build())
		}
	}

	return observations, nil
}
