package detector

import "gocv.io/x/gocv"

// Detector defines the interface for hand detection and coarse shape
// classification implementations.
type Detector interface {
	// Detect analyzes a video frame and returns the observation for the
	// most prominent hand, or nil if no hand is detected. A nil
	// observation means the frame carries no usable hand and must be
	// skipped without touching any downstream state.
	Detect(frame *gocv.Mat) (*Observation, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64

	// CropMargin is the pixel margin added around the detected hand
	// bounding box before the crop is rendered onto the canvas.
	CropMargin int
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MinConfidence:   0.5,
		MinTrackingConf: 0.5,
		CropMargin:      29,
	}
}
