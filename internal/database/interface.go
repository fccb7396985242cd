package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/conciergerie/internal/models"
)

// ItemRepository reads and replaces the four screen lists.
type ItemRepository interface {
	GetTasks(ctx context.Context) ([]models.Task, error)
	GetSuggestions(ctx context.Context) ([]models.Suggestion, error)
	GetTodayTasks(ctx context.Context) ([]models.TodayTask, error)
	GetConnections(ctx context.Context) ([]models.Connection, error)
	ReplaceTasks(ctx context.Context, tasks []models.Task) error
	ReplaceSuggestions(ctx context.Context, suggestions []models.Suggestion) error
	ReplaceTodayTasks(ctx context.Context, tasks []models.TodayTask) error
	ReplaceConnections(ctx context.Context, conns []models.Connection) error
}

// OutcomeRepository is the notification journal.
type OutcomeRepository interface {
	AddOutcome(ctx context.Context, n models.Notification) error
	GetOutcomes(ctx context.Context, since time.Time) ([]models.OutcomeRecord, error)
}

// SettingsRepository persists user preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
type Repository interface {
	ItemRepository
	OutcomeRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
