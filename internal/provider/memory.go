package provider

import (
	"context"

	"github.com/akyairhashvil/conciergerie/internal/models"
)

// Memory serves a data set held in process memory.
type Memory struct {
	data DataSet
}

func NewMemory(ds DataSet) *Memory {
	return &Memory{data: ds}
}

func (m *Memory) Tasks(ctx context.Context) ([]models.Task, error) {
	return clone(m.data.Tasks), ctx.Err()
}

func (m *Memory) Suggestions(ctx context.Context) ([]models.Suggestion, error) {
	return clone(m.data.Suggestions), ctx.Err()
}

func (m *Memory) TodayTasks(ctx context.Context) ([]models.TodayTask, error) {
	return clone(m.data.Today), ctx.Err()
}

func (m *Memory) Connections(ctx context.Context) ([]models.Connection, error) {
	return clone(m.data.Connections), ctx.Err()
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
