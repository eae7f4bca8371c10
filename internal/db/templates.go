package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/lifecal/backend/internal/model"
)

func (db *Postgres) ListActiveTemplates(ctx context.Context) ([]model.EventTemplate, error) {
	query := `
		SELECT id, name, event_type, default_duration, default_metadata, is_active, created_at, updated_at
		FROM event_templates
		WHERE is_active = TRUE
		ORDER BY name ASC
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.EventTemplate
	for rows.Next() {
		var t model.EventTemplate
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.EventType,
			&t.DefaultDuration,
			&t.DefaultMetadata,
			&t.IsActive,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.EventTemplate{}
	}
	return list, nil
}

func (db *Postgres) CountTemplates(ctx context.Context) (int, error) {
	var count int
	err := db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM event_templates`).Scan(&count)
	return count, err
}

func (db *Postgres) InsertTemplate(ctx context.Context, name, eventType string, defaultDuration int, defaultMetadata map[string]any) error {
	query := `
		INSERT INTO event_templates (id, name, event_type, default_duration, default_metadata, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := db.Pool.Exec(ctx, query, uuid.NewString(), name, eventType, defaultDuration, defaultMetadata)
	return err
}
