package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/conciergerie/internal/models"
)

// ReplaceTasks overwrites the home feed, keeping slice order as position.
func (d *Database) ReplaceTasks(ctx context.Context, tasks []models.Task) error {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	if err := uniqueIDs("task", ids); err != nil {
		return err
	}
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		return replaceAll(tx, "tasks", len(tasks), func(i int) error {
			t := tasks[i]
			_, err := tx.ExecContext(ctx, `INSERT INTO tasks (id, position, title, type, time, description, status, priority)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, i, t.Title, string(t.Type), nullableString(t.Time), nullableString(t.Description),
				string(statusOr(t.Status, models.TaskPending)), nullableString(string(t.Priority)))
			return wrapErr("insert", "task", t.ID, err)
		})
	})
	return err
}

func statusOr(s, fallback models.TaskStatus) models.TaskStatus {
	if s == "" {
		return fallback
	}
	return s
}

func (d *Database) GetTasks(ctx context.Context) ([]models.Task, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, title, type, time, description, status, priority
		FROM tasks
		ORDER BY position ASC`)
	if err != nil {
		return nil, wrapErr("list", "task", "", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var timeStr, desc, priority sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &t.Type, &timeStr, &desc, &t.Status, &priority); err != nil {
			return nil, wrapErr("scan", "task", "", err)
		}
		t.Time, t.Description, t.Priority = timeStr.String, desc.String, models.Priority(priority.String)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (d *Database) ReplaceSuggestions(ctx context.Context, suggestions []models.Suggestion) error {
	ids := make([]string, len(suggestions))
	for i, s := range suggestions {
		ids[i] = s.ID
	}
	if err := uniqueIDs("suggestion", ids); err != nil {
		return err
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		return replaceAll(tx, "suggestions", len(suggestions), func(i int) error {
			s := suggestions[i]
			_, err := tx.ExecContext(ctx, `INSERT INTO suggestions (id, position, title, description, type, priority, time_slot)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				s.ID, i, s.Title, s.Description, string(s.Type), string(s.Priority), nullableString(s.TimeSlot))
			return wrapErr("insert", "suggestion", s.ID, err)
		})
	})
}

func (d *Database) GetSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, title, description, type, priority, time_slot
		FROM suggestions
		ORDER BY position ASC`)
	if err != nil {
		return nil, wrapErr("list", "suggestion", "", err)
	}
	defer rows.Close()

	var out []models.Suggestion
	for rows.Next() {
		var s models.Suggestion
		var slot sql.NullString
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Type, &s.Priority, &slot); err != nil {
			return nil, wrapErr("scan", "suggestion", "", err)
		}
		s.TimeSlot = slot.String
		out = append(out, s)
	}
	return out, rows.Err()
}

func (d *Database) ReplaceTodayTasks(ctx context.Context, tasks []models.TodayTask) error {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	if err := uniqueIDs("today task", ids); err != nil {
		return err
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		return replaceAll(tx, "today_tasks", len(tasks), func(i int) error {
			t := tasks[i]
			status := t.Status
			if status == "" {
				status = models.TodayTodo
			}
			_, err := tx.ExecContext(ctx, `INSERT INTO today_tasks (id, position, title, time, status, category)
				VALUES (?, ?, ?, ?, ?, ?)`,
				t.ID, i, t.Title, t.Time, string(status), nullableString(t.Category))
			return wrapErr("insert", "today task", t.ID, err)
		})
	})
}

func (d *Database) GetTodayTasks(ctx context.Context) ([]models.TodayTask, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, title, time, status, category
		FROM today_tasks
		ORDER BY position ASC`)
	if err != nil {
		return nil, wrapErr("list", "today task", "", err)
	}
	defer rows.Close()

	var out []models.TodayTask
	for rows.Next() {
		var t models.TodayTask
		var category sql.NullString
		if err := rows.Scan(&t.ID, &t.Title, &t.Time, &t.Status, &category); err != nil {
			return nil, wrapErr("scan", "today task", "", err)
		}
		t.Category = category.String
		out = append(out, t)
	}
	return out, rows.Err()
}

func (d *Database) ReplaceConnections(ctx context.Context, conns []models.Connection) error {
	ids := make([]string, len(conns))
	for i, c := range conns {
		ids[i] = c.ID
	}
	if err := uniqueIDs("connection", ids); err != nil {
		return err
	}
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		return replaceAll(tx, "connections", len(conns), func(i int) error {
			c := conns[i]
			_, err := tx.ExecContext(ctx, `INSERT INTO connections (id, position, name, status, description, last_sync, enabled)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				c.ID, i, c.Name, string(c.Status), c.Description, nullableString(c.LastSync), c.Enabled)
			return wrapErr("insert", "connection", c.ID, err)
		})
	})
}

func (d *Database) GetConnections(ctx context.Context) ([]models.Connection, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, name, status, description, last_sync, enabled
		FROM connections
		ORDER BY position ASC`)
	if err != nil {
		return nil, wrapErr("list", "connection", "", err)
	}
	defer rows.Close()

	var out []models.Connection
	for rows.Next() {
		var c models.Connection
		var lastSync sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.Description, &lastSync, &c.Enabled); err != nil {
			return nil, wrapErr("scan", "connection", "", err)
		}
		c.LastSync = lastSync.String
		out = append(out, c)
	}
	return out, rows.Err()
}

// IsEmpty reports whether no list has been seeded yet.
func (d *Database) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	err := d.DB.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(1) FROM tasks) + (SELECT COUNT(1) FROM suggestions)
		     + (SELECT COUNT(1) FROM today_tasks) + (SELECT COUNT(1) FROM connections)`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
