package detector

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestLandmarks_Distance(t *testing.T) {
	var pts Landmarks
	pts[IndexTip] = Point{X: 0, Y: 0}
	pts[ThumbTip] = Point{X: 3, Y: 4}

	if got := pts.Distance(IndexTip, ThumbTip); math.Abs(got-5) > epsilon {
		t.Errorf("Distance() = %f, want 5", got)
	}
	if got := pts.Distance(IndexTip, IndexTip); got != 0 {
		t.Errorf("Distance(same, same) = %f, want 0", got)
	}
}

func TestArgmax2(t *testing.T) {
	tests := []struct {
		name       string
		probs      []float64
		wantFirst  int
		wantSecond int
	}{
		{"clear winner", []float64{0.1, 0.7, 0.05, 0.15}, 1, 3},
		{"winner first", []float64{0.9, 0.05, 0.05}, 0, 1},
		{"winner last", []float64{0.1, 0.2, 0.7}, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := argmax2(tt.probs)
			if first != tt.wantFirst || second != tt.wantSecond {
				t.Errorf("argmax2(%v) = (%d, %d), want (%d, %d)",
					tt.probs, first, second, tt.wantFirst, tt.wantSecond)
			}
		})
	}
}

func TestServiceHand_ToObservation(t *testing.T) {
	points := make([]Point, NumLandmarks)
	for i := range points {
		points[i] = Point{X: i, Y: i * 2}
	}

	probs := make([]float64, NumClasses)
	probs[3] = 0.8
	probs[5] = 0.15

	hand := &serviceHand{Points: points, Handedness: "Right", Score: 0.93}

	obs, err := hand.toObservation(probs)
	if err != nil {
		t.Fatalf("toObservation() error = %v", err)
	}
	if obs.Class != 3 {
		t.Errorf("Class = %d, want 3", obs.Class)
	}
	if obs.SecondBest != 5 {
		t.Errorf("SecondBest = %d, want 5", obs.SecondBest)
	}
	if obs.Handedness != "Right" || obs.Score != 0.93 {
		t.Errorf("metadata = (%s, %f), want (Right, 0.93)", obs.Handedness, obs.Score)
	}
	if obs.Points[10] != (Point{X: 10, Y: 20}) {
		t.Errorf("Points[10] = %v, want {10 20}", obs.Points[10])
	}
}

func TestServiceHand_ToObservation_PartialHand(t *testing.T) {
	hand := &serviceHand{Points: make([]Point, 5)}

	obs, err := hand.toObservation(make([]float64, NumClasses))
	if err != nil {
		t.Fatalf("toObservation() error = %v", err)
	}
	if obs != nil {
		t.Error("expected nil observation for partial landmark set")
	}
}

func TestServiceHand_ToObservation_BadProbs(t *testing.T) {
	hand := &serviceHand{Points: make([]Point, NumLandmarks)}

	if _, err := hand.toObservation([]float64{0.5, 0.5}); err == nil {
		t.Error("expected error for wrong probability vector length")
	}
}

func TestMockDetector_Playback(t *testing.T) {
	mock := NewMockDetector()
	mock.SetObservations([]*Observation{
		Obs(0, ALandmarks()),
		nil,
		Obs(4, LLandmarks()),
	})

	obs, err := mock.Detect(nil)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if obs == nil || obs.Class != 0 {
		t.Fatalf("first observation = %v, want class 0", obs)
	}

	obs, _ = mock.Detect(nil)
	if obs != nil {
		t.Error("second observation should be nil (no hand)")
	}

	obs, _ = mock.Detect(nil)
	if obs == nil || obs.Class != 4 {
		t.Fatalf("third observation = %v, want class 4", obs)
	}

	// Past the end without looping.
	obs, _ = mock.Detect(nil)
	if obs != nil {
		t.Error("expected nil past end of queue")
	}
}

func TestMockDetector_Loop(t *testing.T) {
	mock := NewMockDetector()
	mock.SetObservations([]*Observation{Obs(0, ALandmarks())})
	mock.SetLoop(true)

	for i := 0; i < 5; i++ {
		obs, err := mock.Detect(nil)
		if err != nil {
			t.Fatalf("Detect() error = %v", err)
		}
		if obs == nil {
			t.Fatalf("iteration %d: expected looped observation", i)
		}
	}
}

func TestMockDetector_Error(t *testing.T) {
	mock := NewMockDetector()
	wantErr := errors.New("camera fault")
	mock.SetError(wantErr)

	if _, err := mock.Detect(nil); !errors.Is(err, wantErr) {
		t.Errorf("Detect() error = %v, want %v", err, wantErr)
	}
}
