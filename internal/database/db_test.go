package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/conciergerie/internal/models"
)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.migrate(ctx); err != nil {
		t.Fatalf("second migrate failed: %v", err)
	}
	empty, err := db.IsEmpty(ctx)
	if err != nil || !empty {
		t.Fatalf("fresh database should be empty: %v %v", empty, err)
	}
}

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?)", "theme", "dracula"); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	if err == nil {
		t.Fatalf("expected error from WithTx")
	}
	if _, ok := db.GetSetting(ctx, "theme"); ok {
		t.Fatalf("expected rollback to discard setting")
	}
}

func TestTasksRoundTripKeepsOrder(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	in := []models.Task{
		{ID: "b", Title: "Second by id, first by position", Type: models.TaskReminder, Time: "2:00 PM", Priority: models.PriorityHigh},
		{ID: "a", Title: "No optional fields", Type: models.TaskMissed},
	}
	if err := db.ReplaceTasks(ctx, in); err != nil {
		t.Fatalf("ReplaceTasks failed: %v", err)
	}
	got, err := db.GetTasks(ctx)
	if err != nil {
		t.Fatalf("GetTasks failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Fatalf("unexpected order %+v", got)
	}
	if got[0].Time != "2:00 PM" || got[0].Priority != models.PriorityHigh {
		t.Fatalf("optional fields lost: %+v", got[0])
	}
	if got[1].Status != models.TaskPending || got[1].Description != "" {
		t.Fatalf("defaults not applied: %+v", got[1])
	}

	if err := db.ReplaceTasks(ctx, in[:1]); err != nil {
		t.Fatalf("second ReplaceTasks failed: %v", err)
	}
	got, _ = db.GetTasks(ctx)
	if len(got) != 1 {
		t.Fatalf("replace should drop old rows, got %d", len(got))
	}
}

func TestReplaceRejectsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.ReplaceSuggestions(ctx, []models.Suggestion{
		{ID: "1", Title: "One", Description: "d", Type: models.SuggestionHabit, Priority: models.PriorityLow},
		{ID: "1", Title: "Again", Description: "d", Type: models.SuggestionHabit, Priority: models.PriorityLow},
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.ID != "1" {
		t.Fatalf("expected OpError naming the id, got %v", err)
	}
}

func TestTodayTasksAndConnections(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.ReplaceTodayTasks(ctx, []models.TodayTask{
		{ID: "1", Title: "Morning workout", Time: "7:00 AM", Status: models.TodayDone, Category: "Health"},
		{ID: "2", Title: "Grocery shopping", Time: "5:00 PM"},
	}); err != nil {
		t.Fatalf("ReplaceTodayTasks failed: %v", err)
	}
	today, err := db.GetTodayTasks(ctx)
	if err != nil {
		t.Fatalf("GetTodayTasks failed: %v", err)
	}
	if len(today) != 2 || today[0].Category != "Health" || today[1].Status != models.TodayTodo {
		t.Fatalf("unexpected today tasks %+v", today)
	}

	if err := db.ReplaceConnections(ctx, []models.Connection{
		{ID: "gmail", Name: "Gmail", Status: models.ConnectionConnected, Description: "Mail", LastSync: "5 minutes ago", Enabled: true},
		{ID: "sms", Name: "SMS", Status: models.ConnectionDisconnected, Description: "Texts"},
	}); err != nil {
		t.Fatalf("ReplaceConnections failed: %v", err)
	}
	conns, err := db.GetConnections(ctx)
	if err != nil {
		t.Fatalf("GetConnections failed: %v", err)
	}
	if len(conns) != 2 || !conns[0].Enabled || conns[1].Enabled || conns[1].LastSync != "" {
		t.Fatalf("unexpected connections %+v", conns)
	}
	empty, _ := db.IsEmpty(ctx)
	if empty {
		t.Fatalf("seeded database should not be empty")
	}
}

func TestOutcomeJournal(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	accept := models.NewNotification("home", "1", models.OutcomeAccept, "Accepted", "Call accepted", models.ToneInfo)
	reject := models.NewNotification("home", "2", models.OutcomeReject, "Declined", "Gym declined", models.ToneError)
	summary := models.NewNotification("home", "", models.OutcomeSummary, "Today's Summary", "", models.ToneInfo)
	reject.At = accept.At.Add(time.Second)
	summary.At = accept.At.Add(2 * time.Second)
	for _, n := range []models.Notification{accept, reject, summary, accept} {
		if err := db.AddOutcome(ctx, n); err != nil {
			t.Fatalf("AddOutcome failed: %v", err)
		}
	}

	records, err := db.GetOutcomes(ctx, time.Time{})
	if err != nil {
		t.Fatalf("GetOutcomes failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected duplicate notification to be ignored, got %d records", len(records))
	}
	if records[0].Outcome != models.OutcomeAccept || records[1].Tone != models.ToneError {
		t.Fatalf("unexpected records %+v", records)
	}
	if records[2].ItemID != nil {
		t.Fatalf("summary notice should have no item id")
	}
	if records[0].ItemID == nil || *records[0].ItemID != "1" {
		t.Fatalf("expected item id on accept record")
	}

	since, err := db.GetOutcomes(ctx, reject.At)
	if err != nil {
		t.Fatalf("GetOutcomes failed: %v", err)
	}
	if len(since) != 2 || since[0].Outcome != models.OutcomeReject {
		t.Fatalf("expected outcomes since the reject, got %+v", since)
	}
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, ok := db.GetSetting(ctx, "theme"); ok {
		t.Fatalf("expected missing setting")
	}
	if err := db.SetSetting(ctx, "theme", "default"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "theme", "dracula"); err != nil {
		t.Fatalf("SetSetting upsert failed: %v", err)
	}
	if v, ok := db.GetSetting(ctx, "theme"); !ok || v != "dracula" {
		t.Fatalf("GetSetting = %q, %v", v, ok)
	}
}

func TestOpErrorFormatting(t *testing.T) {
	err := wrapErr("insert", "task", "7", ErrNotFound)
	if err.Error() != "insert task 7: record not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("OpError must unwrap")
	}
	if wrapErr("x", "y", "", nil) != nil {
		t.Fatalf("nil error must stay nil")
	}
	noID := &OpError{Op: "list", Resource: "task", Err: ErrNotFound}
	if noID.Error() != "list task: record not found" {
		t.Fatalf("unexpected message %q", noID.Error())
	}
}
