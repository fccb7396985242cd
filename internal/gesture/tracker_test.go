package gesture

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/conciergerie/internal/config"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   Offset
		want Intent
	}{
		{"right", Offset{DX: 150, DY: 10}, Right},
		{"left", Offset{DX: -101, DY: 0}, Left},
		{"left beats up when wider", Offset{DX: -180, DY: -170}, Left},
		{"up", Offset{DX: 20, DY: -120}, Up},
		{"up when vertical dominates", Offset{DX: 110, DY: -150}, Up},
		{"down is none", Offset{DX: 0, DY: 300}, None},
		{"tie below threshold", Offset{DX: 50, DY: -50}, None},
		{"exact horizontal threshold", Offset{DX: 100, DY: 0}, None},
		{"exact vertical threshold", Offset{DX: 0, DY: -100}, None},
		{"tie above threshold falls through to up", Offset{DX: 120, DY: -120}, Up},
		{"left tie falls through to up", Offset{DX: -150, DY: -150}, Up},
		{"downward tie is none", Offset{DX: 120, DY: 120}, None},
		{"zero", Offset{}, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.in, config.CommitThreshold); got != tt.want {
				t.Fatalf("Classify(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyHorizontalRegion(t *testing.T) {
	for dx := -400.0; dx <= 400; dx += 7 {
		for dy := -400.0; dy <= 400; dy += 11 {
			o := Offset{DX: dx, DY: dy}
			got := Classify(o, 100)
			absX, absY := abs(dx), abs(dy)
			switch {
			case absX > 100 && absX > absY && dx > 0:
				if got != Right {
					t.Fatalf("%+v: expected Right, got %v", o, got)
				}
			case absX > 100 && absX > absY && dx < 0:
				if got != Left {
					t.Fatalf("%+v: expected Left, got %v", o, got)
				}
			case dy < -100:
				if got != Up {
					t.Fatalf("%+v: expected Up, got %v", o, got)
				}
			default:
				if got != None {
					t.Fatalf("%+v: expected None, got %v", o, got)
				}
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestPreviewUsesHintThreshold(t *testing.T) {
	o := Offset{DX: 45, DY: 5}
	if got := Preview(o, config.HintThreshold); got != Right {
		t.Fatalf("expected Right preview, got %v", got)
	}
	if got := Classify(o, config.CommitThreshold); got != None {
		t.Fatalf("expected no commit for a short drag, got %v", got)
	}
	if got := Preview(Offset{DX: -5, DY: -31}, config.HintThreshold); got != Up {
		t.Fatalf("expected Up preview, got %v", got)
	}
	if got := Preview(Offset{DX: 30, DY: 0}, config.HintThreshold); got != None {
		t.Fatalf("expected None at the hint threshold, got %v", got)
	}
}

func TestTrackerLifecycle(t *testing.T) {
	tr := NewTracker(config.CommitThreshold)
	tr.Move(10, 10)
	if tr.Active() || tr.Offset() != (Offset{}) {
		t.Fatalf("move on inactive tracker must be a no-op")
	}
	if intent, off := tr.End(); intent != None || off != (Offset{}) {
		t.Fatalf("end on inactive tracker must be a no-op")
	}

	if err := tr.Start(PointerMouse, 200, 100); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	tr.Move(260, 90)
	tr.Move(350, 110)
	if got := tr.Offset(); got != (Offset{DX: 150, DY: 10}) {
		t.Fatalf("unexpected offset %+v", got)
	}
	intent, final := tr.End()
	if intent != Right {
		t.Fatalf("expected Right, got %v", intent)
	}
	if final != (Offset{DX: 150, DY: 10}) {
		t.Fatalf("unexpected final offset %+v", final)
	}
	if tr.Active() || tr.Offset() != (Offset{}) {
		t.Fatalf("end must reset the tracker, got %+v", tr.State())
	}
}

func TestTrackerEndResetsWithoutCommit(t *testing.T) {
	tr := NewTracker(config.CommitThreshold)
	_ = tr.Start(PointerMouse, 0, 0)
	tr.Move(20, 20)
	if intent, _ := tr.End(); intent != None {
		t.Fatalf("expected None, got %v", intent)
	}
	if tr.State() != (DragState{}) {
		t.Fatalf("expected zero state, got %+v", tr.State())
	}
}

func TestTrackerRejectsSecondPointer(t *testing.T) {
	tr := NewTracker(config.CommitThreshold)
	_ = tr.Start(PointerMouse, 0, 0)
	tr.Move(40, 0)
	err := tr.Start(PointerKeyboard, 0, 0)
	if !errors.Is(err, ErrPointerBusy) {
		t.Fatalf("expected ErrPointerBusy, got %v", err)
	}
	if tr.Offset().DX != 40 || tr.State().Pointer != PointerMouse {
		t.Fatalf("rejected start must not disturb the active gesture")
	}
}

func TestTrackerSamePointerRestarts(t *testing.T) {
	tr := NewTracker(config.CommitThreshold)
	_ = tr.Start(PointerMouse, 0, 0)
	tr.Move(90, 0)
	if err := tr.Start(PointerMouse, 500, 500); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if tr.Offset() != (Offset{}) || tr.State().Origin != (Sample{X: 500, Y: 500}) {
		t.Fatalf("restart should overwrite the gesture, got %+v", tr.State())
	}
}

func TestTrackerCancel(t *testing.T) {
	tr := NewTracker(config.CommitThreshold)
	_ = tr.Start(PointerMouse, 0, 0)
	tr.Move(300, 0)
	tr.Cancel()
	if intent, _ := tr.End(); intent != None {
		t.Fatalf("cancelled gesture must not classify, got %v", intent)
	}
}

func TestIntentString(t *testing.T) {
	for intent, want := range map[Intent]string{None: "none", Left: "left", Right: "right", Up: "up"} {
		if intent.String() != want {
			t.Fatalf("%d.String() = %q, want %q", intent, intent.String(), want)
		}
	}
}
