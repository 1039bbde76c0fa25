package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It replays a queue of pre-built observations, one per Detect call.
type MockDetector struct {
	queue []*Observation
	index int
	loop  bool
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetObservations sets the observation sequence returned by Detect.
// A nil entry simulates a frame with no hand detected.
func (m *MockDetector) SetObservations(obs []*Observation) {
	m.queue = obs
	m.index = 0
}

// SetLoop makes the queue repeat from the beginning once exhausted.
func (m *MockDetector) SetLoop(loop bool) {
	m.loop = loop
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the next queued observation. Once the queue is exhausted it
// reports no hand (nil observation) unless looping is enabled.
func (m *MockDetector) Detect(frame *gocv.Mat) (*Observation, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.index >= len(m.queue) {
		if !m.loop || len(m.queue) == 0 {
			return nil, nil
		}
		m.index = 0
	}
	obs := m.queue[m.index]
	m.index++
	return obs, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Synthetic hand shapes for tests, laid out on the 400x400 classifier
// canvas with y growing downward. Finger columns sit at x=160 (index),
// 200 (middle), 240 (ring), 280 (pinky); a raised finger has its tip above
// the PIP joint, a folded one has it below.

// fingerJoints maps finger number (0=index .. 3=pinky) to its MCP index.
// PIP/DIP/TIP follow consecutively.
var fingerBase = [4]int{IndexMCP, MiddleMCP, RingMCP, PinkyMCP}

// openHandLandmarks returns a hand with all four fingers raised and the
// thumb resting against the palm on the finger side, so that neither the
// space nor the next override can trigger.
func openHandLandmarks() Landmarks {
	var l Landmarks
	l[Wrist] = Point{X: 200, Y: 360}

	// Thumb folded across the palm to the right of the index column.
	l[ThumbCMC] = Point{X: 180, Y: 330}
	l[ThumbMCP] = Point{X: 190, Y: 300}
	l[ThumbIP] = Point{X: 195, Y: 250}
	l[ThumbTip] = Point{X: 200, Y: 200}

	cols := [4]int{160, 200, 240, 280}
	mcpY := [4]int{240, 235, 240, 250}
	tipY := [4]int{110, 95, 115, 150}
	for f := 0; f < 4; f++ {
		base := fingerBase[f]
		span := mcpY[f] - tipY[f]
		l[base] = Point{X: cols[f], Y: mcpY[f]}
		l[base+1] = Point{X: cols[f], Y: mcpY[f] - span*2/5}
		l[base+2] = Point{X: cols[f], Y: mcpY[f] - span*4/5}
		l[base+3] = Point{X: cols[f], Y: tipY[f]}
	}
	return l
}

// foldFinger curls finger f (0=index .. 3=pinky) so its tip sits well below
// the PIP joint.
func foldFinger(l *Landmarks, f int) {
	base := fingerBase[f]
	pip := l[base+1]
	l[base+2] = Point{X: pip.X + 1, Y: pip.Y + 45}
	l[base+3] = Point{X: pip.X + 2, Y: pip.Y + 75}
}

// fistLandmarks returns a hand with all four fingers folded.
func fistLandmarks() Landmarks {
	l := openHandLandmarks()
	for f := 0; f < 4; f++ {
		foldFinger(&l, f)
	}
	return l
}

// FistLandmarks is the class-0 base shape; resolves to S with the default
// thumb position.
func FistLandmarks() Landmarks {
	return fistLandmarks()
}

// ALandmarks is a fist with the thumb beside the fingers, tip left of the
// index PIP column.
func ALandmarks() Landmarks {
	l := fistLandmarks()
	l[ThumbTip] = Point{X: 140, Y: 200}
	l[ThumbIP] = Point{X: 145, Y: 240}
	return l
}

// ELandmarks is a fist with the thumb tucked below the folded fingertips.
func ELandmarks() Landmarks {
	l := fistLandmarks()
	l[ThumbTip] = Point{X: 200, Y: 290}
	l[ThumbIP] = Point{X: 198, Y: 270}
	return l
}

// BLandmarks is a flat hand, all fingers raised, thumb across the palm.
func BLandmarks() Landmarks {
	return openHandLandmarks()
}

// DLandmarks raises the index finger only.
func DLandmarks() Landmarks {
	l := openHandLandmarks()
	foldFinger(&l, 1)
	return l
}

// FLandmarks folds the index finger onto the thumb, other fingers raised.
func FLandmarks() Landmarks {
	l := openHandLandmarks()
	foldFinger(&l, 0)
	return l
}

// CLandmarks is a curved hand with a wide thumb-to-middle-tip gap.
func CLandmarks() Landmarks {
	l := fistLandmarks()
	l[ThumbTip] = Point{X: 200, Y: 180}
	return l
}

// OLandmarks closes the thumb onto the middle fingertip.
func OLandmarks() Landmarks {
	l := fistLandmarks()
	tip := l[MiddleTip]
	l[ThumbTip] = Point{X: tip.X + 3, Y: tip.Y - 5}
	return l
}

// GLandmarks separates index and middle tips widely (index raised, middle
// folded).
func GLandmarks() Landmarks {
	l := openHandLandmarks()
	foldFinger(&l, 1)
	return l
}

// HLandmarks keeps index and middle tips close together, both raised.
func HLandmarks() Landmarks {
	return openHandLandmarks()
}

// LLandmarks is the classic L: index up, remaining fingers folded, thumb
// out to the side.
func LLandmarks() Landmarks {
	l := openHandLandmarks()
	foldFinger(&l, 1)
	foldFinger(&l, 2)
	foldFinger(&l, 3)
	l[ThumbTip] = Point{X: 110, Y: 280}
	l[ThumbIP] = Point{X: 130, Y: 290}
	return l
}

// YLandmarks spreads thumb and folded index far apart.
func YLandmarks() Landmarks {
	l := openHandLandmarks()
	foldFinger(&l, 0)
	foldFinger(&l, 1)
	foldFinger(&l, 2)
	l[ThumbTip] = Point{X: 120, Y: 180}
	return l
}

// JLandmarks brings the thumb close to the folded index tip.
func JLandmarks() Landmarks {
	l := openHandLandmarks()
	foldFinger(&l, 0)
	tip := l[IndexTip]
	l[ThumbTip] = Point{X: tip.X + 6, Y: tip.Y - 4}
	return l
}

// SpaceLandmarks matches the space override: index and pinky raised,
// middle and ring folded.
func SpaceLandmarks() Landmarks {
	l := openHandLandmarks()
	foldFinger(&l, 1)
	foldFinger(&l, 2)
	return l
}

// NextLandmarks matches the next override: index, middle and ring raised
// with the thumb tucked left of the index knuckle column.
func NextLandmarks() Landmarks {
	l := openHandLandmarks()
	l[ThumbTip] = Point{X: 120, Y: 280}
	l[ThumbIP] = Point{X: 140, Y: 300}
	return l
}

// BackspaceLandmarks points the hand sideways: the wrist leads all four
// fingertips on the horizontal axis with the thumb held high.
func BackspaceLandmarks() Landmarks {
	var l Landmarks
	l[Wrist] = Point{X: 300, Y: 200}

	l[ThumbCMC] = Point{X: 290, Y: 170}
	l[ThumbMCP] = Point{X: 280, Y: 150}
	l[ThumbIP] = Point{X: 270, Y: 135}
	l[ThumbTip] = Point{X: 260, Y: 120}

	rows := [4]int{160, 200, 240, 270}
	tipX := [4]int{120, 110, 120, 140}
	for f := 0; f < 4; f++ {
		base := fingerBase[f]
		l[base] = Point{X: 240, Y: rows[f]}
		l[base+1] = Point{X: 200, Y: rows[f]}
		l[base+2] = Point{X: 160, Y: rows[f]}
		l[base+3] = Point{X: tipX[f], Y: rows[f]}
	}
	return l
}

// Obs wraps a landmark set and coarse class into an observation, for tests.
func Obs(class int, points Landmarks) *Observation {
	return &Observation{
		Points:     points,
		Class:      class,
		Handedness: "Right",
		Score:      0.95,
	}
}
