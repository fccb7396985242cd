// Package notify delivers user-facing notifications to the screen, the log
// and the outcome journal.
package notify

import (
	"context"
	"log"
	"time"

	"github.com/akyairhashvil/conciergerie/internal/database"
	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/util"
)

// Sink receives notifications. Notify must not block the UI loop.
//
//go:generate mockgen -destination=mock_notify/mock_sink.go -package=mock_notify github.com/akyairhashvil/conciergerie/internal/notify Sink
type Sink interface {
	Notify(n models.Notification)
}

// Func adapts a function to a Sink.
type Func func(models.Notification)

func (f Func) Notify(n models.Notification) { f(n) }

// Multi fans a notification out to every sink in order.
type Multi []Sink

func (m Multi) Notify(n models.Notification) {
	for _, s := range m {
		if s != nil {
			s.Notify(n)
		}
	}
}

// LogSink writes one line per notification.
type LogSink struct {
	Logger *log.Logger
}

func (l LogSink) Notify(n models.Notification) {
	logf := log.Printf
	if l.Logger != nil {
		logf = l.Logger.Printf
	}
	logf("notify: screen=%s item=%s outcome=%s tone=%s title=%q", n.Screen, n.ItemID, n.Outcome, n.Tone, n.Title)
}

// Journal appends notifications to the outcome log.
type Journal struct {
	Repo    database.OutcomeRepository
	Timeout time.Duration
}

func NewJournal(repo database.OutcomeRepository) *Journal {
	return &Journal{Repo: repo, Timeout: 2 * time.Second}
}

func (j *Journal) Notify(n models.Notification) {
	if j == nil || j.Repo == nil {
		return
	}
	ctx := context.Background()
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}
	util.LogError("journal outcome", j.Repo.AddOutcome(ctx, n))
}
