// Package swipe binds a gesture tracker to a card and dispatches committed
// swipes to per-direction handlers.
package swipe

import (
	"github.com/akyairhashvil/conciergerie/internal/config"
	"github.com/akyairhashvil/conciergerie/internal/gesture"
)

// Handler runs when a swipe commits. Its result is handed back to the caller
// of Release, which lets a UI layer return follow-up work.
type Handler[R any] func() R

// Card owns exactly one tracker; mouse and keyboard input share it.
type Card[R any] struct {
	tracker  *gesture.Tracker
	hint     float64
	handlers map[gesture.Intent]Handler[R]
}

type Option[R any] func(*Card[R])

// WithThresholds overrides the commit and hint thresholds.
func WithThresholds[R any](commit, hint float64) Option[R] {
	return func(c *Card[R]) {
		c.tracker = gesture.NewTracker(commit)
		c.hint = hint
	}
}

func OnLeft[R any](h func() R) Option[R] {
	return func(c *Card[R]) { c.bind(gesture.Left, h) }
}

func OnRight[R any](h func() R) Option[R] {
	return func(c *Card[R]) { c.bind(gesture.Right, h) }
}

func OnUp[R any](h func() R) Option[R] {
	return func(c *Card[R]) { c.bind(gesture.Up, h) }
}

func New[R any](opts ...Option[R]) *Card[R] {
	c := &Card[R]{
		tracker:  gesture.NewTracker(config.CommitThreshold),
		hint:     config.HintThreshold,
		handlers: make(map[gesture.Intent]Handler[R]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Card[R]) bind(i gesture.Intent, h Handler[R]) {
	if h == nil {
		delete(c.handlers, i)
		return
	}
	c.handlers[i] = h
}

// Binds reports whether a handler is attached for the direction.
func (c *Card[R]) Binds(i gesture.Intent) bool {
	_, ok := c.handlers[i]
	return ok
}

func (c *Card[R]) Press(p gesture.PointerID, x, y float64) error {
	return c.tracker.Start(p, x, y)
}

func (c *Card[R]) Drag(x, y float64) {
	c.tracker.Move(x, y)
}

// Release ends the gesture. When the final intent has a bound handler it runs
// once and its result is returned with fired set. The card is back at rest
// afterwards whatever the outcome.
func (c *Card[R]) Release() (intent gesture.Intent, result R, fired bool) {
	intent, _ = c.tracker.End()
	h, ok := c.handlers[intent]
	if intent == gesture.None || !ok {
		return intent, result, false
	}
	return intent, h(), true
}

// Cancel abandons an in-progress drag.
func (c *Card[R]) Cancel() {
	c.tracker.Cancel()
}

// Fling drives a synthetic keyboard gesture just past the commit threshold.
// It fails while a mouse drag owns the card.
func (c *Card[R]) Fling(i gesture.Intent) (result R, fired bool) {
	var dx, dy float64
	reach := c.tracker.Threshold() + 1
	switch i {
	case gesture.Left:
		dx = -reach
	case gesture.Right:
		dx = reach
	case gesture.Up:
		dy = -reach
	default:
		return result, false
	}
	if err := c.tracker.Start(gesture.PointerKeyboard, 0, 0); err != nil {
		return result, false
	}
	c.tracker.Move(dx, dy)
	_, result, fired = c.Release()
	return result, fired
}

// Frame is what a view needs to draw the card for the current input state.
type Frame struct {
	Offset  gesture.Offset
	Preview gesture.Intent
	Active  bool
}

func (c *Card[R]) Frame() Frame {
	st := c.tracker.State()
	if !st.Active {
		return Frame{}
	}
	return Frame{
		Offset:  st.Offset,
		Preview: gesture.Preview(st.Offset, c.hint),
		Active:  true,
	}
}

// Hint is one directional affordance.
type Hint struct {
	Direction   gesture.Intent
	Highlighted bool
}

// Hints lists affordances for bound directions in left, up, right order.
func (c *Card[R]) Hints() []Hint {
	preview := c.Frame().Preview
	var out []Hint
	for _, dir := range []gesture.Intent{gesture.Left, gesture.Up, gesture.Right} {
		if !c.Binds(dir) {
			continue
		}
		out = append(out, Hint{Direction: dir, Highlighted: preview == dir})
	}
	return out
}

// Overlay tints the card while a horizontal swipe is previewed.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayAccept
	OverlayReject
)

func (c *Card[R]) Overlay() Overlay {
	switch c.Frame().Preview {
	case gesture.Right:
		return OverlayAccept
	case gesture.Left:
		return OverlayReject
	default:
		return OverlayNone
	}
}
