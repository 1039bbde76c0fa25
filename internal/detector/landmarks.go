// Package detector provides hand detection interfaces and types for
// fingerspelling recognition.
package detector

import "math"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// NumClasses is the number of coarse shape classes produced by the
// classifier. Each class covers several visually similar hand shapes that
// the geometric rules in the sign package disambiguate further.
const NumClasses = 8

// CanvasSize is the side length of the square canvas the cropped hand is
// rendered onto before classification. Landmark coordinates are in this
// pixel space, so geometric thresholds are calibrated against it.
const CanvasSize = 400

// Point represents a 2D landmark position in canvas pixel coordinates.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Landmarks holds the 21 hand keypoints for one frame. A Landmarks value
// always has all 21 entries; a frame where fewer points were tracked never
// produces one (the detector reports no hand instead).
type Landmarks [NumLandmarks]Point

// Distance returns the Euclidean distance between landmarks a and b.
func (l *Landmarks) Distance(a, b int) float64 {
	dx := float64(l[a].X - l[b].X)
	dy := float64(l[a].Y - l[b].Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Observation is the per-frame output of a detector: tracked landmarks plus
// the coarse classification of the rendered hand shape. Observations are
// created fresh every frame, never mutated, and discarded after one pass
// through the pipeline.
type Observation struct {
	Points     Landmarks `json:"points"`
	Class      int       `json:"class"`       // argmax of the 8-way classifier
	SecondBest int       `json:"second_best"` // runner-up class
	Handedness string    `json:"handedness"`  // "Left" or "Right"
	Score      float64   `json:"score"`
}
