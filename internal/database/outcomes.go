package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/akyairhashvil/conciergerie/internal/models"
)

// AddOutcome journals a notification. Re-adding the same notification is a
// no-op.
func (d *Database) AddOutcome(ctx context.Context, n models.Notification) error {
	at := n.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := d.DB.ExecContext(ctx, `INSERT OR IGNORE INTO outcomes
		(notification_id, screen, item_id, outcome, title, body, tone, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID.String(), n.Screen, nullableString(n.ItemID), string(n.Outcome), n.Title,
		nullableString(n.Body), string(n.Tone), at.UTC())
	return wrapErr("add", "outcome", n.ID.String(), err)
}

// GetOutcomes returns journal entries oldest first, optionally since a time.
func (d *Database) GetOutcomes(ctx context.Context, since time.Time) ([]models.OutcomeRecord, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, notification_id, screen, item_id, outcome, title, body, tone, created_at
		FROM outcomes
		WHERE created_at >= ?
		ORDER BY created_at ASC, id ASC`, since.UTC())
	if err != nil {
		return nil, wrapErr("list", "outcome", "", err)
	}
	defer rows.Close()

	var out []models.OutcomeRecord
	for rows.Next() {
		var r models.OutcomeRecord
		var itemID, body sql.NullString
		if err := rows.Scan(&r.ID, &r.NotificationID, &r.Screen, &itemID, &r.Outcome, &r.Title, &body, &r.Tone, &r.CreatedAt); err != nil {
			return nil, wrapErr("scan", "outcome", "", err)
		}
		if itemID.Valid {
			id := itemID.String
			r.ItemID = &id
		}
		r.Body = body.String
		out = append(out, r)
	}
	return out, rows.Err()
}
