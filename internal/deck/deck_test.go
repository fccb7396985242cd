package deck

import (
	"testing"

	"github.com/akyairhashvil/conciergerie/internal/models"
)

func fourTasks() []models.Task {
	return []models.Task{
		{ID: "1", Title: "Call with Sarah"},
		{ID: "2", Title: "Gym session"},
		{ID: "3", Title: "Team meeting"},
		{ID: "4", Title: "Client call"},
	}
}

func TestCursorWrapsFromLast(t *testing.T) {
	c := NewCursor(4)
	c.Set(3)
	if got := c.Advance(); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := c.Retreat(); got != 3 {
		t.Fatalf("expected retreat to wrap to 3, got %d", got)
	}
}

func TestCursorEmpty(t *testing.T) {
	c := NewCursor(0)
	if !c.Empty() || c.Advance() != 0 || c.Retreat() != 0 || c.Set(5) != 0 {
		t.Fatalf("empty cursor must stay at 0")
	}
	if NewCursor(-3).Len() != 0 {
		t.Fatalf("negative length must clamp to 0")
	}
}

func TestCursorSetAndResize(t *testing.T) {
	c := NewCursor(3)
	if c.Set(10) != 2 || c.Set(-1) != 0 {
		t.Fatalf("Set must clamp")
	}
	c.Set(2)
	c.Resize(2)
	if c.Index() != 1 {
		t.Fatalf("Resize must pull index into range, got %d", c.Index())
	}
}

func TestDeckFullCycleReturnsToStart(t *testing.T) {
	d := New(fourTasks())
	start, _ := d.Current()
	for i := 0; i < 4; i++ {
		d.Advance()
	}
	got, ok := d.Current()
	if !ok || got.ID != start.ID {
		t.Fatalf("expected full cycle back to %q, got %q", start.ID, got.ID)
	}
}

func TestDeckNeverTerminates(t *testing.T) {
	d := New(fourTasks())
	for i := 0; i < 100; i++ {
		if _, ok := d.Advance(); !ok {
			t.Fatalf("deck stopped at step %d", i)
		}
		if idx := d.Index(); idx < 0 || idx >= d.Len() {
			t.Fatalf("cursor out of range: %d", idx)
		}
	}
}

func TestDeckEmpty(t *testing.T) {
	d := New[models.Task](nil)
	if _, ok := d.Current(); ok {
		t.Fatalf("empty deck must have no current item")
	}
	if _, ok := d.Advance(); ok {
		t.Fatalf("empty deck must not advance")
	}
	if d.Position() != "0 of 0" {
		t.Fatalf("unexpected position %q", d.Position())
	}
}

func TestDeckCopiesInput(t *testing.T) {
	items := fourTasks()
	d := New(items)
	items[0].Title = "mutated"
	cur, _ := d.Current()
	if cur.Title == "mutated" {
		t.Fatalf("deck must not alias the provider slice")
	}
	out := d.Items()
	out[1].Title = "mutated"
	if d.Items()[1].Title == "mutated" {
		t.Fatalf("Items must return a copy")
	}
}

func TestDeckReplaceAppendPosition(t *testing.T) {
	d := New(fourTasks())
	if !d.Replace(models.Task{ID: "2", Title: "Gym moved"}) {
		t.Fatalf("Replace failed")
	}
	if d.Items()[1].Title != "Gym moved" {
		t.Fatalf("Replace did not update item")
	}
	if d.Replace(models.Task{ID: "nope"}) {
		t.Fatalf("Replace must report unknown IDs")
	}
	d.Append(models.Task{ID: "5", Title: "New"})
	if d.Len() != 5 || d.IndexOf("5") != 4 {
		t.Fatalf("Append failed")
	}
	d.Select(4)
	if d.Position() != "5 of 5" {
		t.Fatalf("unexpected position %q", d.Position())
	}
}

func TestDeckRemoveKeepsCursorValid(t *testing.T) {
	d := New(fourTasks())
	d.Select(2)
	if !d.Remove("1") {
		t.Fatalf("Remove failed")
	}
	if cur, _ := d.Current(); cur.ID != "3" {
		t.Fatalf("cursor should stay on item 3, got %s", cur.ID)
	}
	d.Select(2)
	d.Remove("4")
	if cur, _ := d.Current(); cur.ID != "3" || d.Index() != 1 {
		t.Fatalf("removing the last item should clamp the cursor, got %s at %d", cur.ID, d.Index())
	}
	if d.Remove("missing") {
		t.Fatalf("Remove must report unknown IDs")
	}
	d.Remove("2")
	d.Remove("3")
	if !d.Empty() || d.Position() != "0 of 0" {
		t.Fatalf("expected empty deck")
	}
	if _, ok := d.Current(); ok {
		t.Fatalf("empty deck has no current item")
	}
}
