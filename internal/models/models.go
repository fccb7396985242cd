package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is the part of every list record the screens rely on.
type Item interface {
	ItemID() string
	ItemTitle() string
}

// Priority is shared by home tasks and suggestions.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// TaskType classifies a home feed card.
type TaskType string

const (
	TaskReminder   TaskType = "reminder"
	TaskSuggestion TaskType = "suggestion"
	TaskConflict   TaskType = "conflict"
	TaskMissed     TaskType = "missed"
)

type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDone    TaskStatus = "done"
	TaskLapsed  TaskStatus = "missed"
)

// Task is a swipeable card on the home feed.
type Task struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Type        TaskType   `yaml:"type"`
	Time        string     `yaml:"time,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Status      TaskStatus `yaml:"status,omitempty"`
	Priority    Priority   `yaml:"priority,omitempty"`
}

func (t Task) ItemID() string    { return t.ID }
func (t Task) ItemTitle() string { return t.Title }

type SuggestionType string

const (
	SuggestionSchedule SuggestionType = "schedule"
	SuggestionConflict SuggestionType = "conflict"
	SuggestionReminder SuggestionType = "reminder"
	SuggestionHabit    SuggestionType = "habit"
)

// Suggestion is an AI idea card.
type Suggestion struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Type        SuggestionType `yaml:"type"`
	Priority    Priority       `yaml:"priority"`
	TimeSlot    string         `yaml:"time_slot,omitempty"`
}

func (s Suggestion) ItemID() string    { return s.ID }
func (s Suggestion) ItemTitle() string { return s.Title }

type TodayStatus string

const (
	TodayTodo   TodayStatus = "todo"
	TodayDone   TodayStatus = "done"
	TodayMissed TodayStatus = "missed"
)

// TodayTask is one row of the daily checklist.
type TodayTask struct {
	ID       string      `yaml:"id"`
	Title    string      `yaml:"title"`
	Time     string      `yaml:"time"`
	Status   TodayStatus `yaml:"status"`
	Category string      `yaml:"category,omitempty"`
}

func (t TodayTask) ItemID() string    { return t.ID }
func (t TodayTask) ItemTitle() string { return t.Title }

type ConnectionStatus string

const (
	ConnectionConnected    ConnectionStatus = "connected"
	ConnectionDisconnected ConnectionStatus = "disconnected"
	ConnectionError        ConnectionStatus = "error"
)

// Connection is an external service the assistant reads from.
type Connection struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Status      ConnectionStatus `yaml:"status"`
	Description string           `yaml:"description"`
	LastSync    string           `yaml:"last_sync,omitempty"`
	Enabled     bool             `yaml:"enabled"`
}

func (c Connection) ItemID() string    { return c.ID }
func (c Connection) ItemTitle() string { return c.Name }

// Outcome names what a user did to an item.
type Outcome string

const (
	OutcomeAccept     Outcome = "accept"
	OutcomeReject     Outcome = "reject"
	OutcomeComplete   Outcome = "complete"
	OutcomeToggle     Outcome = "toggle"
	OutcomeReschedule Outcome = "reschedule"
	OutcomeDismiss    Outcome = "dismiss"
	OutcomeAdd        Outcome = "add"
	OutcomeConnect    Outcome = "connect"
	OutcomeDisconnect Outcome = "disconnect"
	OutcomeReconnect  Outcome = "reconnect"
	OutcomeSummary    Outcome = "summary"
)

type Tone string

const (
	ToneInfo  Tone = "info"
	ToneError Tone = "error"
)

// Notification is an ephemeral user-facing event.
type Notification struct {
	ID      uuid.UUID
	Title   string
	Body    string
	Tone    Tone
	Screen  string
	ItemID  string
	Outcome Outcome
	At      time.Time
}

func NewNotification(screen, itemID string, outcome Outcome, title, body string, tone Tone) Notification {
	return Notification{
		ID:      uuid.New(),
		Title:   title,
		Body:    body,
		Tone:    tone,
		Screen:  screen,
		ItemID:  itemID,
		Outcome: outcome,
		At:      time.Now(),
	}
}

// OutcomeRecord is a journaled notification.
type OutcomeRecord struct {
	ID             int64
	NotificationID string
	Screen         string
	ItemID         *string
	Outcome        Outcome
	Title          string
	Body           string
	Tone           Tone
	CreatedAt      time.Time
}
