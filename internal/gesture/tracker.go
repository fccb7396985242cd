// Package gesture turns a single pointer's press, motion and release events
// into a drag offset and a classified swipe direction.
package gesture

import (
	"errors"
	"math"
)

// Intent is the classified direction of a drag.
type Intent int

const (
	None Intent = iota
	Left
	Right
	Up
)

func (i Intent) String() string {
	switch i {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "none"
	}
}

// PointerID names the input source that owns a gesture.
type PointerID string

const (
	PointerMouse    PointerID = "mouse"
	PointerKeyboard PointerID = "keyboard"
)

var ErrPointerBusy = errors.New("another pointer owns the active gesture")

// Sample is one pointer position reading.
type Sample struct {
	X, Y float64
}

// Offset is the displacement from the gesture origin.
type Offset struct {
	DX, DY float64
}

// DragState is the mutable per-gesture state.
type DragState struct {
	Origin  Sample
	Offset  Offset
	Active  bool
	Pointer PointerID
}

// Tracker follows one gesture at a time.
type Tracker struct {
	state     DragState
	threshold float64
}

func NewTracker(threshold float64) *Tracker {
	return &Tracker{threshold: threshold}
}

// Start begins a gesture at (x, y). A second pointer is rejected while a
// gesture is active; the owning pointer may restart its own gesture.
func (t *Tracker) Start(p PointerID, x, y float64) error {
	if t.state.Active && t.state.Pointer != p {
		return ErrPointerBusy
	}
	t.state = DragState{
		Origin:  Sample{X: x, Y: y},
		Active:  true,
		Pointer: p,
	}
	return nil
}

func (t *Tracker) Move(x, y float64) {
	if !t.state.Active {
		return
	}
	t.state.Offset = Offset{
		DX: x - t.state.Origin.X,
		DY: y - t.state.Origin.Y,
	}
}

// End classifies the final offset and resets the tracker. Both results are
// zero when no gesture is active.
func (t *Tracker) End() (Intent, Offset) {
	if !t.state.Active {
		return None, Offset{}
	}
	final := t.state.Offset
	t.state = DragState{}
	return Classify(final, t.threshold), final
}

// Cancel drops the active gesture without classifying it.
func (t *Tracker) Cancel() {
	t.state = DragState{}
}

func (t *Tracker) State() DragState { return t.state }

func (t *Tracker) Active() bool { return t.state.Active }

func (t *Tracker) Offset() Offset { return t.state.Offset }

func (t *Tracker) Threshold() float64 { return t.threshold }

// Classify maps a released offset to an intent. The horizontal test runs
// first with strict comparisons: a tie |dx| == |dy| fails it and falls
// through to the Up check, and an offset exactly at the threshold yields None.
func Classify(o Offset, threshold float64) Intent {
	absX, absY := math.Abs(o.DX), math.Abs(o.DY)
	if absX > threshold && absX > absY {
		if o.DX > 0 {
			return Right
		}
		return Left
	}
	if o.DY < -threshold {
		return Up
	}
	return None
}

// Preview is the in-progress counterpart of Classify, evaluated against the
// lower hint threshold.
func Preview(o Offset, threshold float64) Intent {
	absX, absY := math.Abs(o.DX), math.Abs(o.DY)
	if absX > absY && absX > threshold {
		if o.DX > 0 {
			return Right
		}
		return Left
	}
	if absY > threshold && o.DY < 0 {
		return Up
	}
	return None
}
