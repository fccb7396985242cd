package testutil

import (
	"fmt"

	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/provider"
)

// TaskBuilder provides fluent API for creating test home tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask(id string) *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:       id,
			Title:    "Test Task " + id,
			Type:     models.TaskReminder,
			Status:   models.TaskPending,
			Priority: models.PriorityMedium,
		},
	}
}

func (b *TaskBuilder) WithTitle(t string) *TaskBuilder {
	b.task.Title = t
	return b
}

func (b *TaskBuilder) WithType(t models.TaskType) *TaskBuilder {
	b.task.Type = t
	return b
}

func (b *TaskBuilder) WithPriority(p models.Priority) *TaskBuilder {
	b.task.Priority = p
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// SuggestionBuilder provides fluent API for creating test suggestions.
type SuggestionBuilder struct {
	s models.Suggestion
}

func NewSuggestion(id string) *SuggestionBuilder {
	return &SuggestionBuilder{
		s: models.Suggestion{
			ID:          id,
			Title:       "Test Idea " + id,
			Description: "Try this",
			Type:        models.SuggestionSchedule,
			Priority:    models.PriorityLow,
		},
	}
}

func (b *SuggestionBuilder) WithType(t models.SuggestionType) *SuggestionBuilder {
	b.s.Type = t
	return b
}

func (b *SuggestionBuilder) WithTimeSlot(slot string) *SuggestionBuilder {
	b.s.TimeSlot = slot
	return b
}

func (b *SuggestionBuilder) Build() models.Suggestion {
	return b.s
}

// TodayBuilder provides fluent API for creating test checklist rows.
type TodayBuilder struct {
	t models.TodayTask
}

func NewToday(id string) *TodayBuilder {
	return &TodayBuilder{
		t: models.TodayTask{
			ID:     id,
			Title:  "Test Today " + id,
			Time:   "9:00 AM",
			Status: models.TodayTodo,
		},
	}
}

func (b *TodayBuilder) WithStatus(s models.TodayStatus) *TodayBuilder {
	b.t.Status = s
	return b
}

func (b *TodayBuilder) WithCategory(c string) *TodayBuilder {
	b.t.Category = c
	return b
}

func (b *TodayBuilder) Build() models.TodayTask {
	return b.t
}

// ConnectionBuilder provides fluent API for creating test connections.
type ConnectionBuilder struct {
	c models.Connection
}

func NewConnection(id string) *ConnectionBuilder {
	return &ConnectionBuilder{
		c: models.Connection{
			ID:          id,
			Name:        "Service " + id,
			Status:      models.ConnectionDisconnected,
			Description: "Test service",
		},
	}
}

func (b *ConnectionBuilder) WithStatus(s models.ConnectionStatus) *ConnectionBuilder {
	b.c.Status = s
	b.c.Enabled = s == models.ConnectionConnected
	return b
}

func (b *ConnectionBuilder) WithLastSync(s string) *ConnectionBuilder {
	b.c.LastSync = s
	return b
}

func (b *ConnectionBuilder) Build() models.Connection {
	return b.c
}

// DataSetBuilder assembles a provider data set from builders.
type DataSetBuilder struct {
	ds provider.DataSet
}

func NewDataSet() *DataSetBuilder {
	return &DataSetBuilder{}
}

// WithTasks adds n default tasks with ids "1".."n".
func (b *DataSetBuilder) WithTasks(n int) *DataSetBuilder {
	for i := 1; i <= n; i++ {
		b.ds.Tasks = append(b.ds.Tasks, NewTask(fmt.Sprint(i)).Build())
	}
	return b
}

func (b *DataSetBuilder) WithSuggestions(n int) *DataSetBuilder {
	for i := 1; i <= n; i++ {
		b.ds.Suggestions = append(b.ds.Suggestions, NewSuggestion(fmt.Sprint(i)).Build())
	}
	return b
}

func (b *DataSetBuilder) WithToday(items ...models.TodayTask) *DataSetBuilder {
	b.ds.Today = append(b.ds.Today, items...)
	return b
}

func (b *DataSetBuilder) WithConnections(items ...models.Connection) *DataSetBuilder {
	b.ds.Connections = append(b.ds.Connections, items...)
	return b
}

func (b *DataSetBuilder) Build() provider.DataSet {
	return b.ds
}

// Provider returns an in-memory provider over the built data set.
func (b *DataSetBuilder) Provider() *provider.Memory {
	return provider.NewMemory(b.ds)
}
