package sign

import (
	"fmt"

	"github.com/ayusman/mudra/internal/detector"
)

// Distance thresholds in canvas pixel units, calibrated against the 400x400
// classifier canvas. Changing them breaks compatibility with the reference
// model.
const (
	thumbGapThreshold  = 42 // C/O and Y/J splits
	fingerGapThreshold = 72 // G/H split
)

// Resolve maps a coarse class and the frame's landmarks to a symbol.
//
// The decision tree dispatches on the class first, then refines with
// geometric predicates. Rule order matters: within class 0 the E check
// overrides the A check, and the two post-pass overrides (space, then next)
// run after the class rules, with next evaluated last so it wins if both
// somehow fire.
//
// Resolve is pure and deterministic. The only failure is a class outside
// [0, NumClasses), which indicates a misbehaving classifier upstream.
func Resolve(class int, pts *detector.Landmarks) (Symbol, error) {
	if class < 0 || class >= detector.NumClasses {
		return Symbol{}, fmt.Errorf("coarse class %d out of range [0,%d)", class, detector.NumClasses)
	}

	var sym Symbol
	switch class {
	case 0:
		sym = Letter('S')
		if pts[detector.ThumbTip].X < pts[detector.IndexPIP].X {
			sym = Letter('A')
		}
		if pts[detector.ThumbTip].Y > pts[detector.IndexTip].Y {
			sym = Letter('E')
		}
	case 1:
		indexUp := pts[detector.IndexPIP].Y > pts[detector.IndexTip].Y
		middleUp := pts[detector.MiddlePIP].Y > pts[detector.MiddleTip].Y
		middleDown := pts[detector.MiddlePIP].Y < pts[detector.MiddleTip].Y
		switch {
		case indexUp && middleUp:
			sym = Letter('B')
		case indexUp && middleDown:
			sym = Letter('D')
		default:
			sym = Letter('F')
		}
	case 2:
		if pts.Distance(detector.MiddleTip, detector.ThumbTip) > thumbGapThreshold {
			sym = Letter('C')
		} else {
			sym = Letter('O')
		}
	case 3:
		if pts.Distance(detector.IndexTip, detector.MiddleTip) > fingerGapThreshold {
			sym = Letter('G')
		} else {
			sym = Letter('H')
		}
	case 4:
		sym = Letter('L')
	case 5:
		sym = Letter('P')
	case 6:
		sym = Letter('X')
	case 7:
		if pts.Distance(detector.IndexTip, detector.ThumbTip) > thumbGapThreshold {
			sym = Letter('Y')
		} else {
			sym = Letter('J')
		}
	}

	// Backspace override: hand swung sideways so the wrist leads all four
	// fingertips, thumb held high. Evaluated before the space and next
	// overrides, which keep priority over it.
	if pts[detector.Wrist].X > pts[detector.IndexTip].X &&
		pts[detector.Wrist].X > pts[detector.MiddleTip].X &&
		pts[detector.Wrist].X > pts[detector.RingTip].X &&
		pts[detector.Wrist].X > pts[detector.PinkyTip].X &&
		pts[detector.ThumbTip].Y < pts[detector.IndexMCP].Y {
		sym = Backspace
	}

	// Space override: index and pinky up, middle and ring folded.
	if pts[detector.IndexPIP].Y > pts[detector.IndexTip].Y &&
		pts[detector.MiddlePIP].Y < pts[detector.MiddleTip].Y &&
		pts[detector.RingPIP].Y < pts[detector.RingTip].Y &&
		pts[detector.PinkyPIP].Y > pts[detector.PinkyTip].Y {
		sym = Space
	}

	// Next override: thumb tucked past the index knuckle with index, middle
	// and ring up. Evaluated last so it shadows everything above.
	if pts[detector.ThumbTip].X < pts[detector.IndexMCP].X &&
		pts[detector.IndexPIP].Y > pts[detector.IndexTip].Y &&
		pts[detector.MiddlePIP].Y > pts[detector.MiddleTip].Y &&
		pts[detector.RingPIP].Y > pts[detector.RingTip].Y {
		sym = Next
	}

	return sym, nil
}
