package provider

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/conciergerie/internal/database"
	"github.com/akyairhashvil/conciergerie/internal/models"
	"github.com/akyairhashvil/conciergerie/internal/provider/mock_provider"
	"github.com/golang/mock/gomock"
)

func TestSampleIsValid(t *testing.T) {
	ds := Sample()
	if err := ds.Validate(); err != nil {
		t.Fatalf("sample data invalid: %v", err)
	}
	if len(ds.Tasks) != 4 || len(ds.Suggestions) != 6 || len(ds.Today) != 7 || len(ds.Connections) != 5 {
		t.Fatalf("unexpected sample sizes %d/%d/%d/%d", len(ds.Tasks), len(ds.Suggestions), len(ds.Today), len(ds.Connections))
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(Sample())
	tasks, err := m.Tasks(ctx)
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	tasks[0].Title = "changed"
	again, _ := m.Tasks(ctx)
	if again[0].Title == "changed" {
		t.Fatalf("provider data must be read-only to callers")
	}
}

func TestMemoryHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMemory(Sample()).Connections(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
tasks:
  - id: a
    title: Call the plumber
    type: reminder
    priority: high
today:
  - id: t1
    title: Stretch
    time: 7:00 AM
connections:
  - id: cal
    name: Calendar
    description: Events
    enabled: true
    status: connected
`)
	ds, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if ds.Tasks[0].Status != models.TaskPending {
		t.Fatalf("expected default task status, got %q", ds.Tasks[0].Status)
	}
	if ds.Today[0].Status != models.TodayTodo {
		t.Fatalf("expected default today status, got %q", ds.Today[0].Status)
	}
	if !ds.Connections[0].Enabled || len(ds.Suggestions) != 0 {
		t.Fatalf("unexpected data set %+v", ds)
	}
}

func TestParseYAMLRejects(t *testing.T) {
	tests := map[string]string{
		"unknown field": "tasks:\n  - id: a\n    title: x\n    colour: red\n",
		"duplicate id":  "today:\n  - {id: a, title: x, time: now}\n  - {id: a, title: y, time: now}\n",
		"missing title": "connections:\n  - {id: a, description: d}\n",
		"missing id":    "suggestions:\n  - {title: x, description: d}\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(body)); !errors.Is(err, ErrInvalidData) {
				t.Fatalf("expected ErrInvalidData, got %v", err)
			}
		})
	}
}

func TestEncodeLoadRoundTrip(t *testing.T) {
	body, err := Sample().Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	ds, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}
	if ds.Suggestions[2].TimeSlot != "Tomorrow 2:00 PM" || ds.Connections[3].Status != models.ConnectionError {
		t.Fatalf("data lost in round trip")
	}
	if _, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSeedAndSQLProvider(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Seed(ctx, db, Sample()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	p := NewSQL(db)
	got, err := Snapshot(ctx, p)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	want := Sample()
	if len(got.Tasks) != len(want.Tasks) || got.Tasks[3].ID != want.Tasks[3].ID {
		t.Fatalf("tasks mismatch: %+v", got.Tasks)
	}
	if got.Today[2].Status != models.TodayMissed {
		t.Fatalf("today status lost: %+v", got.Today[2])
	}
	if !got.Connections[0].Enabled || got.Connections[2].Enabled {
		t.Fatalf("connection flags lost")
	}
}

func TestSnapshotStopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock_provider.NewMockProvider(ctrl)
	boom := errors.New("boom")
	p.EXPECT().Tasks(gomock.Any()).Return([]models.Task{{ID: "1", Title: "x"}}, nil)
	p.EXPECT().Suggestions(gomock.Any()).Return(nil, boom)

	if _, err := Snapshot(context.Background(), p); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestItemsByScreen(t *testing.T) {
	ctx := context.Background()
	p := NewMemory(Sample())
	for _, screen := range Screens {
		items, err := Items(ctx, p, screen)
		if err != nil {
			t.Fatalf("Items(%s) failed: %v", screen, err)
		}
		if len(items) == 0 {
			t.Fatalf("Items(%s) returned nothing", screen)
		}
	}
	conns, _ := Items(ctx, p, "connections")
	if conns[0].ItemTitle() != "Google Calendar" {
		t.Fatalf("connections should be titled by name, got %q", conns[0].ItemTitle())
	}
	if _, err := Items(ctx, p, "settings"); !errors.Is(err, ErrUnknownScreen) {
		t.Fatalf("expected ErrUnknownScreen, got %v", err)
	}
}

func TestExportWritesLoadableFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	at := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	path, err := Export(context.Background(), NewMemory(Sample()), dir, at)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if filepath.Base(path) != "conciergerie_export_20260506_070809.yaml" {
		t.Fatalf("unexpected export name %s", path)
	}
	ds, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("exported file does not load: %v", err)
	}
	if len(ds.Today) != len(Sample().Today) {
		t.Fatalf("export lost rows")
	}
}
