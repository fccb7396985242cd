package notify

import (
	"time"

	"github.com/akyairhashvil/conciergerie/internal/config"
	"github.com/akyairhashvil/conciergerie/internal/models"
)

// Toast is a notification with its expiry.
type Toast struct {
	models.Notification
	Expires time.Time
}

// Toasts is the on-screen queue. The newest toast is last; older ones are
// pushed out once the queue is full.
type Toasts struct {
	items []Toast
	max   int
	ttl   time.Duration
	now   func() time.Time
}

func NewToasts() *Toasts {
	return &Toasts{max: config.MaxToasts, ttl: config.ToastDuration, now: time.Now}
}

// WithClock replaces the time source.
func (t *Toasts) WithClock(now func() time.Time) *Toasts {
	t.now = now
	return t
}

func (t *Toasts) Notify(n models.Notification) {
	t.items = append(t.items, Toast{Notification: n, Expires: t.now().Add(t.ttl)})
	if t.max > 0 && len(t.items) > t.max {
		t.items = t.items[len(t.items)-t.max:]
	}
}

// Prune drops expired toasts and reports whether any were removed.
func (t *Toasts) Prune() bool {
	now := t.now()
	kept := t.items[:0]
	for _, it := range t.items {
		if now.Before(it.Expires) {
			kept = append(kept, it)
		}
	}
	removed := len(kept) != len(t.items)
	t.items = kept
	return removed
}

// Active returns the live toasts, oldest first.
func (t *Toasts) Active() []Toast {
	now := t.now()
	var out []Toast
	for _, it := range t.items {
		if now.Before(it.Expires) {
			out = append(out, it)
		}
	}
	return out
}

// Latest is the newest live toast.
func (t *Toasts) Latest() (Toast, bool) {
	active := t.Active()
	if len(active) == 0 {
		return Toast{}, false
	}
	return active[len(active)-1], true
}

func (t *Toasts) Clear() {
	t.items = nil
}

func (t *Toasts) TTL() time.Duration {
	return t.ttl
}
